package service

import (
	"context"
	"strings"

	"go-grocer-tab/internal/gateway"
	"go-grocer-tab/internal/model"
	"go-grocer-tab/pkg/validator"

	"github.com/sirupsen/logrus"
)

type InventoryService interface {
	Create(ctx context.Context, req model.Product) (model.Product, error)
	Update(ctx context.Context, id string, patch model.ProductPatch) (model.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Product, error)
	Search(ctx context.Context, term string) ([]model.Product, error)
}

type inventoryService struct {
	gw  *gateway.Gateway
	log *logrus.Entry
}

func NewInventoryService(gw *gateway.Gateway) InventoryService {
	return &inventoryService{
		gw:  gw,
		log: logrus.WithField("component", "inventory"),
	}
}

// Create validates and stores a new catalog entry. Product names are unique
// by convention only; no duplicate check is made. Category defaults to
// General when empty.
func (s *inventoryService) Create(ctx context.Context, req model.Product) (model.Product, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Category == "" {
		req.Category = model.CategoryGeneral
	}
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return model.Product{}, validationError(errs)
	}

	created, err := s.gw.CreateProduct(ctx, req)
	if err != nil {
		return model.Product{}, err
	}
	s.log.WithFields(logrus.Fields{"product": created.Name, "price": created.Price}).Info("product created")
	return created, nil
}

func (s *inventoryService) Update(ctx context.Context, id string, patch model.ProductPatch) (model.Product, error) {
	return s.gw.UpdateProduct(ctx, id, patch)
}

// Delete removes a catalog entry outright. Historical transactions that
// reference it keep their snapshotted name and price; nothing is cascaded.
func (s *inventoryService) Delete(ctx context.Context, id string) error {
	if err := s.gw.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.log.WithField("id", id).Info("product deleted")
	return nil
}

func (s *inventoryService) List(ctx context.Context) ([]model.Product, error) {
	return s.gw.ListProducts(ctx)
}

// Search filters the full catalog by case-insensitive substring match on the
// product name.
func (s *inventoryService) Search(ctx context.Context, term string) ([]model.Product, error) {
	products, err := s.gw.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(term)
	matched := make([]model.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
