package metrics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/solarline/pos-gateway/internal/domain/entity"
	"github.com/solarline/pos-gateway/internal/domain/enum"
)

// Bucket is a rolling-window rollup of one metric. Daily covers today from
// local midnight, Weekly the last 7 days, Monthly one calendar month back,
// Overall everything. Windows are inclusive and end at the reference
// instant, never calendar-aligned.
type Bucket struct {
	Daily   decimal.Decimal `json:"daily"`
	Weekly  decimal.Decimal `json:"weekly"`
	Monthly decimal.Decimal `json:"monthly"`
	Overall decimal.Decimal `json:"overall"`
}

// Snapshot is everything the dashboard renders in one screen load.
type Snapshot struct {
	CashSales        Bucket `json:"cash_sales"`
	ReceivedProducts Bucket `json:"received_products"`
	Profits          Bucket `json:"profits"`
	Expenses         Bucket `json:"expenses"`

	TotalProducts      int                  `json:"total_products"`
	TotalCustomers     int                  `json:"total_customers"`
	TotalSales         decimal.Decimal      `json:"total_sales"`
	PendingCollections int                  `json:"pending_collections"`
	Recent             []entity.Transaction `json:"recent_transactions"`
}

// Input carries the raw collections the snapshot is derived from. A failed
// fetch upstream should leave its slice nil, which degrades that slice's
// metrics to zero instead of failing the whole dashboard.
type Input struct {
	Transactions []entity.Transaction
	Expenses     []entity.Expense
	Products     []entity.Product
	Customers    []entity.Customer
}

const recentLimit = 5

// Aggregate recomputes the full snapshot from scratch. Pure over its
// inputs and the reference instant.
func Aggregate(in Input, now time.Time) Snapshot {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := today.AddDate(0, 0, -7)
	monthAgo := today.AddDate(0, -1, 0)

	var s Snapshot
	s.CashSales = zeroBucket()
	s.ReceivedProducts = zeroBucket()
	s.Profits = zeroBucket()
	s.Expenses = zeroBucket()
	s.TotalSales = decimal.Zero

	for i := range in.Transactions {
		t := &in.Transactions[i]
		ts := t.Timestamp

		if t.PaymentMethod == enum.PaymentMethodCash && t.Status.IsSale() {
			addTo(&s.CashSales, ts, today, weekAgo, monthAgo, t.TotalAmount)
		}
		if t.Status == enum.TransactionStatusReceived {
			addTo(&s.ReceivedProducts, ts, today, weekAgo, monthAgo, decimal.NewFromInt(int64(t.Quantity)))
		}
		if t.Status.IsSale() {
			addTo(&s.Profits, ts, today, weekAgo, monthAgo, t.Profit())
		}
		if t.Status.IsRevenue() {
			s.TotalSales = s.TotalSales.Add(t.TotalAmount)
		}
		if t.Status == enum.TransactionStatusPaidToCollect {
			s.PendingCollections++
		}
	}

	for i := range in.Expenses {
		e := &in.Expenses[i]
		addTo(&s.Expenses, e.Date, today, weekAgo, monthAgo, e.Amount)
	}

	s.TotalProducts = len(in.Products)
	s.TotalCustomers = len(in.Customers)
	s.Recent = recent(in.Transactions)
	return s
}

func zeroBucket() Bucket {
	return Bucket{Daily: decimal.Zero, Weekly: decimal.Zero, Monthly: decimal.Zero, Overall: decimal.Zero}
}

func addTo(b *Bucket, ts, today, weekAgo, monthAgo time.Time, v decimal.Decimal) {
	if !ts.Before(today) {
		b.Daily = b.Daily.Add(v)
	}
	if !ts.Before(weekAgo) {
		b.Weekly = b.Weekly.Add(v)
	}
	if !ts.Before(monthAgo) {
		b.Monthly = b.Monthly.Add(v)
	}
	b.Overall = b.Overall.Add(v)
}

// recent returns the newest transactions, at most recentLimit, without
// mutating the caller's slice.
func recent(txs []entity.Transaction) []entity.Transaction {
	out := make([]entity.Transaction, len(txs))
	copy(out, txs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if len(out) > recentLimit {
		out = out[:recentLimit]
	}
	return out
}
