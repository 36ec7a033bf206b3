package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/solarline/pos-gateway/internal/metrics"
	"github.com/solarline/pos-gateway/internal/upstream"
)

// DashboardService assembles the dashboard snapshot from upstream
// collections. Each source is fetched concurrently and degrades to its
// empty default on failure: the dashboard always renders.
type DashboardService struct {
	client *upstream.Client
	now    func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(client *upstream.Client) *DashboardService {
	return &DashboardService{client: client, now: time.Now}
}

// WithClock replaces the service's clock.
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

// GetSnapshot fetches the raw collections and recomputes every metric
// from scratch.
func (s *DashboardService) GetSnapshot(ctx context.Context) *metrics.Snapshot {
	var in metrics.Input
	var wg sync.WaitGroup

	wg.Add(4)
	go func() {
		defer wg.Done()
		txs, err := s.client.Transactions.List(ctx)
		if err != nil {
			log.Printf("dashboard: transactions unavailable: %v", err)
			return
		}
		in.Transactions = txs
	}()
	go func() {
		defer wg.Done()
		exps, err := s.client.Expenses.List(ctx)
		if err != nil {
			log.Printf("dashboard: expenses unavailable: %v", err)
			return
		}
		in.Expenses = exps
	}()
	go func() {
		defer wg.Done()
		products, err := s.client.Products.List(ctx)
		if err != nil {
			log.Printf("dashboard: products unavailable: %v", err)
			return
		}
		in.Products = products
	}()
	go func() {
		defer wg.Done()
		customers, err := s.client.Customers.List(ctx)
		if err != nil {
			log.Printf("dashboard: customers unavailable: %v", err)
			return
		}
		in.Customers = customers
	}()
	wg.Wait()

	snapshot := metrics.Aggregate(in, s.now())
	return &snapshot
}
