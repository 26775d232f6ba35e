package model

import (
	"testing"
)

func TestNewTransactionSnapshotsProduct(t *testing.T) {
	product := Product{ID: "p1", Name: "Milk", Price: 2.50, Category: CategoryDairy, Stock: 10}

	tx := NewTransaction(product, 3)

	if tx.Total != 7.50 {
		t.Errorf("total = %v, want 7.50", tx.Total)
	}
	if tx.ProductID != "p1" || tx.ProductName != "Milk" || tx.Price != 2.50 {
		t.Errorf("snapshot fields wrong: %+v", tx)
	}
	if tx.ID == "" {
		t.Error("id not generated")
	}
	if tx.Date.IsZero() {
		t.Error("date not set")
	}

	// Snapshot means later product changes are invisible to the line item.
	product.Price = 9.99
	product.Name = "Gold Milk"
	if tx.Price != 2.50 || tx.ProductName != "Milk" {
		t.Error("transaction linked live to product")
	}
}

func TestNewTransactionIDsAreUnique(t *testing.T) {
	product := Product{ID: "p1", Name: "Milk", Price: 2.50}
	a := NewTransaction(product, 1)
	b := NewTransaction(product, 1)
	if a.ID == b.ID {
		t.Error("two transactions share an id")
	}
}

func TestCustomerTabState(t *testing.T) {
	c := Customer{}
	if c.TabState() != TabClean {
		t.Errorf("zero customer state = %s, want clean", c.TabState())
	}
	c.TotalDue = 0.01
	if c.TabState() != TabActive {
		t.Errorf("state with due = %s, want active", c.TabState())
	}
}

func TestCustomerLedgerTotal(t *testing.T) {
	c := Customer{
		TotalDue: 10,
		Transactions: []Transaction{
			{Total: 2.5},
			{Total: 7.5},
		},
	}
	if got := c.LedgerTotal(); got != 10 {
		t.Errorf("LedgerTotal = %v, want 10", got)
	}
}

func TestUserCheckPassword(t *testing.T) {
	u := User{Username: "admin", Password: "password123"}
	if !u.CheckPassword("password123") {
		t.Error("exact match rejected")
	}
	if u.CheckPassword("Password123") || u.CheckPassword("") {
		t.Error("plaintext compare must be exact")
	}
}
