package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-grocer-tab/internal/gateway"
	"go-grocer-tab/internal/model"

	"github.com/sirupsen/logrus"
)

type CustomerService interface {
	Create(ctx context.Context, name string) (model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	Search(ctx context.Context, term string) ([]model.Customer, error)
	Get(ctx context.Context, id string) (*model.Customer, error)
}

type customerService struct {
	gw  *gateway.Gateway
	log *logrus.Entry
}

func NewCustomerService(gw *gateway.Gateway) CustomerService {
	return &customerService{
		gw:  gw,
		log: logrus.WithField("component", "customers"),
	}
}

// Create opens a fresh account with an empty tab. Names must be unique
// case-insensitively among current customers; the check runs against the
// cached list before any write request is sent.
func (s *customerService) Create(ctx context.Context, name string) (model.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Customer{}, fmt.Errorf("%w: customer name is required", ErrValidation)
	}

	customers, err := s.gw.ListCustomers(ctx)
	if err != nil {
		return model.Customer{}, err
	}
	for _, c := range customers {
		if strings.EqualFold(c.Name, name) {
			return model.Customer{}, ErrCustomerExists
		}
	}

	created, err := s.gw.CreateCustomer(ctx, model.Customer{
		Name:         name,
		TotalDue:     0,
		Transactions: []model.Transaction{},
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return model.Customer{}, err
	}
	s.log.WithField("customer", created.Name).Info("customer created")
	return created, nil
}

func (s *customerService) List(ctx context.Context) ([]model.Customer, error) {
	return s.gw.ListCustomers(ctx)
}

// Search filters the full customer list by case-insensitive substring match
// on the name. All filtering is client-side; the backend has no query params.
func (s *customerService) Search(ctx context.Context, term string) ([]model.Customer, error) {
	customers, err := s.gw.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(term)
	matched := make([]model.Customer, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), term) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// Get resolves one customer from the cached collection. A stale id (deleted
// or never existed) yields gateway.ErrNotFound.
func (s *customerService) Get(ctx context.Context, id string) (*model.Customer, error) {
	customers, err := s.gw.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID == id {
			return &customers[i], nil
		}
	}
	return nil, fmt.Errorf("%w: customer %s", gateway.ErrNotFound, id)
}
