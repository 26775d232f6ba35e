package model

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is one line item on a customer's tab. Product name and price
// are snapshotted at sale time on purpose: deleting the product later must
// not alter historical entries. Total is computed once at creation and is
// immutable afterwards.
type Transaction struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId" validate:"required"`
	ProductName string    `json:"productName"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity" validate:"required,gt=0"`
	Total       float64   `json:"total"`
	Date        time.Time `json:"date"`
}

// NewTransaction builds a line item from the current product state.
// The id is client-generated; the backend stores it as-is.
func NewTransaction(product Product, quantity int) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Quantity:    quantity,
		Total:       product.Price * float64(quantity),
		Date:        time.Now().UTC(),
	}
}
