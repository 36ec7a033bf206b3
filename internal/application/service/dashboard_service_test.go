package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/solarline/pos-gateway/internal/domain/entity"
	"github.com/solarline/pos-gateway/internal/domain/enum"
)

func TestGetSnapshotAggregates(t *testing.T) {
	now := time.Date(2026, time.August, 30, 14, 0, 0, 0, time.UTC)
	client, closeFn := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/transactions/":
			json.NewEncoder(w).Encode(map[string]any{"results": []entity.Transaction{{
				ID:            1,
				Status:        enum.TransactionStatusSold,
				PaymentMethod: enum.PaymentMethodCash,
				TotalAmount:   decimal.NewFromInt(100),
				Quantity:      1,
				Timestamp:     now.Add(-time.Hour),
			}}})
		case "/expenses/":
			json.NewEncoder(w).Encode([]entity.Expense{{
				Amount: decimal.NewFromInt(25),
				Date:   now.AddDate(0, 0, -1),
			}})
		case "/products/":
			json.NewEncoder(w).Encode([]entity.Product{{ID: 1}, {ID: 2}})
		case "/customers/":
			json.NewEncoder(w).Encode([]entity.Customer{{ID: 1}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer closeFn()

	svc := NewDashboardService(client).WithClock(func() time.Time { return now })
	snap := svc.GetSnapshot(context.Background())

	if !snap.CashSales.Daily.Equal(decimal.NewFromInt(100)) {
		t.Errorf("cash sales daily = %s, want 100", snap.CashSales.Daily)
	}
	if !snap.Expenses.Weekly.Equal(decimal.NewFromInt(25)) {
		t.Errorf("expenses weekly = %s, want 25", snap.Expenses.Weekly)
	}
	if snap.TotalProducts != 2 || snap.TotalCustomers != 1 {
		t.Errorf("counts = %d products, %d customers", snap.TotalProducts, snap.TotalCustomers)
	}
	if len(snap.Recent) != 1 {
		t.Errorf("recent = %d, want 1", len(snap.Recent))
	}
}

func TestGetSnapshotDegradesOnPartialFailure(t *testing.T) {
	now := time.Date(2026, time.August, 30, 14, 0, 0, 0, time.UTC)
	client, closeFn := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/transactions/":
			json.NewEncoder(w).Encode([]entity.Transaction{{
				ID:            1,
				Status:        enum.TransactionStatusSold,
				PaymentMethod: enum.PaymentMethodCash,
				TotalAmount:   decimal.NewFromInt(40),
				Quantity:      1,
				Timestamp:     now,
			}})
		default:
			// Everything else is down.
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer closeFn()

	svc := NewDashboardService(client).WithClock(func() time.Time { return now })
	snap := svc.GetSnapshot(context.Background())

	if snap == nil {
		t.Fatal("snapshot must always render")
	}
	if !snap.CashSales.Overall.Equal(decimal.NewFromInt(40)) {
		t.Errorf("cash sales overall = %s, want 40", snap.CashSales.Overall)
	}
	if !snap.Expenses.Overall.IsZero() {
		t.Errorf("failed expense fetch should yield zero, got %s", snap.Expenses.Overall)
	}
	if snap.TotalProducts != 0 || snap.TotalCustomers != 0 {
		t.Errorf("failed fetches should yield zero counts, got %+v", snap)
	}
}
