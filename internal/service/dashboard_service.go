package service

import (
	"context"

	"go-grocer-tab/internal/gateway"
	"go-grocer-tab/internal/model"
)

type DashboardService interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
	RecentActivity(ctx context.Context, limit int) ([]model.Customer, error)
}

// DashboardStats is the overview block: counts plus two derived money
// figures, inventory value = Σ price×stock and outstanding = Σ totalDue.
type DashboardStats struct {
	TotalCustomers   int     `json:"total_customers"`
	TotalProducts    int     `json:"total_products"`
	InventoryValue   float64 `json:"inventory_value"`
	TotalOutstanding float64 `json:"total_outstanding"`
}

type dashboardService struct {
	gw *gateway.Gateway
}

func NewDashboardService(gw *gateway.Gateway) DashboardService {
	return &dashboardService{gw: gw}
}

func (s *dashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	customers, err := s.gw.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.gw.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalCustomers: len(customers),
		TotalProducts:  len(products),
	}
	for _, p := range products {
		stats.InventoryValue += p.Price * float64(p.Stock)
	}
	for _, c := range customers {
		stats.TotalOutstanding += c.TotalDue
	}
	return stats, nil
}

// RecentActivity returns customers with open tabs among the first limit
// accounts, in collection order.
func (s *dashboardService) RecentActivity(ctx context.Context, limit int) ([]model.Customer, error) {
	customers, err := s.gw.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	if len(customers) > limit {
		customers = customers[:limit]
	}
	active := make([]model.Customer, 0, len(customers))
	for _, c := range customers {
		if len(c.Transactions) > 0 {
			active = append(active, c)
		}
	}
	return active, nil
}
