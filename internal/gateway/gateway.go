package gateway

import (
	"context"
	"net/http"

	"go-grocer-tab/internal/model"
)

// Gateway is the single point of truth for remote resource state. It owns an
// in-memory cache per resource tag and invalidates the whole tag on every
// successful mutation, so all active list subscribers re-read. Failed
// mutations leave the cache untouched.
type Gateway struct {
	client *Client
	hub    *Hub

	products  collection[model.Product]
	customers collection[model.Customer]
	users     collection[model.User]
}

// New wires a gateway to its transport and invalidation hub. The hub's Run
// loop must already be running (or be started by the caller) before any
// mutation is issued.
func New(client *Client, hub *Hub) *Gateway {
	return &Gateway{client: client, hub: hub}
}

// Subscribe registers an invalidation listener. The returned channel receives
// the tag of every collection changed by a successful mutation; listeners
// re-read via the List methods.
func (g *Gateway) Subscribe() chan Tag {
	ch := make(chan Tag, 8)
	g.hub.Register <- ch
	return ch
}

// Unsubscribe removes a listener and closes its channel.
func (g *Gateway) Unsubscribe(ch chan Tag) {
	g.hub.Unregister <- ch
}

// ---- Product ----

func (g *Gateway) ListProducts(ctx context.Context) ([]model.Product, error) {
	return g.products.get(ctx, func(ctx context.Context) ([]model.Product, error) {
		var out []model.Product
		err := g.client.do(ctx, http.MethodGet, "/products", nil, &out)
		return out, err
	})
}

// ProductsSnapshot returns the cached catalog without fetching, plus whether
// the view is fresh.
func (g *Gateway) ProductsSnapshot() ([]model.Product, bool) {
	return g.products.snapshot()
}

func (g *Gateway) CreateProduct(ctx context.Context, product model.Product) (model.Product, error) {
	var created model.Product
	if err := g.client.do(ctx, http.MethodPost, "/products", product, &created); err != nil {
		return model.Product{}, err
	}
	g.invalidate(TagProduct)
	return created, nil
}

func (g *Gateway) UpdateProduct(ctx context.Context, id string, patch model.ProductPatch) (model.Product, error) {
	var updated model.Product
	if err := g.client.do(ctx, http.MethodPatch, "/products/"+id, patch, &updated); err != nil {
		return model.Product{}, err
	}
	g.invalidate(TagProduct)
	return updated, nil
}

func (g *Gateway) DeleteProduct(ctx context.Context, id string) error {
	if err := g.client.do(ctx, http.MethodDelete, "/products/"+id, nil, nil); err != nil {
		return err
	}
	g.invalidate(TagProduct)
	return nil
}

// ---- Customer ----

func (g *Gateway) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return g.customers.get(ctx, func(ctx context.Context) ([]model.Customer, error) {
		var out []model.Customer
		err := g.client.do(ctx, http.MethodGet, "/customers", nil, &out)
		return out, err
	})
}

// CustomersSnapshot returns the cached customer list without fetching, plus
// whether the view is fresh.
func (g *Gateway) CustomersSnapshot() ([]model.Customer, bool) {
	return g.customers.snapshot()
}

func (g *Gateway) CreateCustomer(ctx context.Context, customer model.Customer) (model.Customer, error) {
	var created model.Customer
	if err := g.client.do(ctx, http.MethodPost, "/customers", customer, &created); err != nil {
		return model.Customer{}, err
	}
	g.invalidate(TagCustomer)
	return created, nil
}

// UpdateCustomer sends a sparse patch; the backend performs a shallow merge.
// Array-valued fields are replaced whole, never merged, so callers must send
// the complete desired value of Transactions.
func (g *Gateway) UpdateCustomer(ctx context.Context, id string, patch model.CustomerPatch) (model.Customer, error) {
	var updated model.Customer
	if err := g.client.do(ctx, http.MethodPatch, "/customers/"+id, patch, &updated); err != nil {
		return model.Customer{}, err
	}
	g.invalidate(TagCustomer)
	return updated, nil
}

func (g *Gateway) DeleteCustomer(ctx context.Context, id string) error {
	if err := g.client.do(ctx, http.MethodDelete, "/customers/"+id, nil, nil); err != nil {
		return err
	}
	g.invalidate(TagCustomer)
	return nil
}

// ---- User ----

// ListUsers returns the backend's user list. Users are read-only from the
// client's perspective; there is no mutation path and so never a TagUser
// invalidation from this process.
func (g *Gateway) ListUsers(ctx context.Context) ([]model.User, error) {
	return g.users.get(ctx, func(ctx context.Context) ([]model.User, error) {
		var out []model.User
		err := g.client.do(ctx, http.MethodGet, "/users", nil, &out)
		return out, err
	})
}

// UsersSnapshot returns the cached user list without fetching, plus whether
// the view is fresh.
func (g *Gateway) UsersSnapshot() ([]model.User, bool) {
	return g.users.snapshot()
}

func (g *Gateway) invalidate(tag Tag) {
	switch tag {
	case TagProduct:
		g.products.invalidate()
	case TagCustomer:
		g.customers.invalidate()
	case TagUser:
		g.users.invalidate()
	}
	g.hub.Broadcast <- tag
}
