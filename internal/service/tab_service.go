package service

import (
	"context"
	"fmt"
	"sync"

	"go-grocer-tab/internal/gateway"
	"go-grocer-tab/internal/model"

	"github.com/sirupsen/logrus"
)

// TabService maintains the tab ledger invariant: a customer's totalDue always
// equals the sum of their recorded transaction totals. AddItem is the only
// writer of that pair, and it sends both fields in one compound update.
type TabService interface {
	AddItem(ctx context.Context, customerID, productID string, quantity int) (model.Transaction, error)
	Settle(ctx context.Context, customerID string) error
}

type tabService struct {
	gw  *gateway.Gateway
	log *logrus.Entry

	// Per-customer locks serialize tab writes from this client. The append
	// and the new total are computed from a held snapshot, so two in-flight
	// writes against the same customer would otherwise lose one update.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewTabService(gw *gateway.Gateway) TabService {
	return &tabService{
		gw:    gw,
		log:   logrus.WithField("component", "tab"),
		locks: make(map[string]*sync.Mutex),
	}
}

// AddItem appends one line item to the customer's running tab.
//
// Steps: resolve the product from the cached catalog, snapshot its name and
// price into a fresh transaction, append to the customer's transaction list,
// and send transactions plus the matching totalDue as a single compound
// PATCH. Nothing is touched locally before the backend confirms, so a failed
// attempt leaves every value as it was.
func (s *tabService) AddItem(ctx context.Context, customerID, productID string, quantity int) (model.Transaction, error) {
	if quantity <= 0 {
		return model.Transaction{}, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if productID == "" {
		return model.Transaction{}, fmt.Errorf("%w: no product selected", ErrValidation)
	}

	lock := s.customerLock(customerID)
	lock.Lock()
	defer lock.Unlock()

	// 1. Resolve the product. A stale selection (deleted since the catalog
	// was shown) is a NotFound, not a remote failure.
	products, err := s.gw.ListProducts(ctx)
	if err != nil {
		return model.Transaction{}, err
	}
	var product *model.Product
	for i := range products {
		if products[i].ID == productID {
			product = &products[i]
			break
		}
	}
	if product == nil {
		return model.Transaction{}, fmt.Errorf("%w: product %s", gateway.ErrNotFound, productID)
	}

	// 2. Resolve the customer. The list is re-read after any invalidation,
	// so inside the lock this reflects the latest confirmed tab state.
	customers, err := s.gw.ListCustomers(ctx)
	if err != nil {
		return model.Transaction{}, err
	}
	var customer *model.Customer
	for i := range customers {
		if customers[i].ID == customerID {
			customer = &customers[i]
			break
		}
	}
	if customer == nil {
		return model.Transaction{}, fmt.Errorf("%w: customer %s", gateway.ErrNotFound, customerID)
	}

	// 3. Build the line item and the new ledger state. The full appended
	// array is sent because the backend's PATCH merge is shallow.
	tx := model.NewTransaction(*product, quantity)
	updated := make([]model.Transaction, 0, len(customer.Transactions)+1)
	updated = append(updated, customer.Transactions...)
	updated = append(updated, tx)
	newTotal := customer.TotalDue + tx.Total

	// 4. Compound update: both fields in one request.
	patch := model.CustomerPatch{
		TotalDue:     &newTotal,
		Transactions: updated,
	}
	if _, err := s.gw.UpdateCustomer(ctx, customer.ID, patch); err != nil {
		return model.Transaction{}, err
	}

	s.log.WithFields(logrus.Fields{
		"customer": customer.Name,
		"product":  tx.ProductName,
		"quantity": tx.Quantity,
		"total":    tx.Total,
	}).Info("item added to tab")
	return tx, nil
}

// Settle closes a customer's account in full. The original system conflates
// settling the balance with deleting the record, and that behavior is kept:
// on success the customer no longer exists. Settling a clean tab is refused.
func (s *tabService) Settle(ctx context.Context, customerID string) error {
	lock := s.customerLock(customerID)
	lock.Lock()
	defer lock.Unlock()

	customers, err := s.gw.ListCustomers(ctx)
	if err != nil {
		return err
	}
	var customer *model.Customer
	for i := range customers {
		if customers[i].ID == customerID {
			customer = &customers[i]
			break
		}
	}
	if customer == nil {
		return fmt.Errorf("%w: customer %s", gateway.ErrNotFound, customerID)
	}
	if customer.TotalDue <= 0 {
		return ErrNothingDue
	}

	if err := s.gw.DeleteCustomer(ctx, customerID); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"customer": customer.Name, "settled": customer.TotalDue}).Info("tab settled, account closed")
	return nil
}

func (s *tabService) customerLock(customerID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[customerID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[customerID] = lock
	}
	return lock
}
