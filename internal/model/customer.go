package model

import "time"

// TabState describes a customer's tab: Clean (nothing owed) or Active
// (open balance). Add-item moves Clean→Active or Active→Active; Settle is
// the only way out of Active and it deletes the customer record outright.
type TabState string

const (
	TabClean  TabState = "clean"
	TabActive TabState = "active"
)

// Customer is a store account with a running tab. TotalDue is derived state:
// it must equal the sum of Total over Transactions at all times. The tab
// ledger workflow is the only writer that preserves that invariant; the
// backend does not enforce it.
type Customer struct {
	ID           string        `json:"id"`
	Name         string        `json:"name" validate:"required"`
	CreatedAt    time.Time     `json:"createdAt"`
	TotalDue     float64       `json:"totalDue" validate:"gte=0"`
	Transactions []Transaction `json:"transactions"`
}

// TabState reports whether the customer currently owes anything.
func (c *Customer) TabState() TabState {
	if c.TotalDue > 0 {
		return TabActive
	}
	return TabClean
}

// LedgerTotal recomputes the sum of all recorded transaction totals.
// Used to audit the TotalDue invariant, never to silently repair it.
func (c *Customer) LedgerTotal() float64 {
	var sum float64
	for _, t := range c.Transactions {
		sum += t.Total
	}
	return sum
}

// CustomerPatch is a sparse update for PATCH /customers/:id. The backend
// performs a shallow merge, so callers must send the complete desired value
// of any array field; the tab workflow always sends the full appended
// Transactions slice together with the matching TotalDue.
type CustomerPatch struct {
	Name         *string       `json:"name,omitempty"`
	TotalDue     *float64      `json:"totalDue,omitempty"`
	Transactions []Transaction `json:"transactions,omitempty"`
}
