package service

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"go-grocer-tab/internal/gateway"
	"go-grocer-tab/internal/mockstore"
	"go-grocer-tab/internal/model"
	"go-grocer-tab/internal/ws"
)

// flakyTransport injects transport-level failures so tests can observe what
// a failed mutation leaves behind.
type flakyTransport struct {
	base http.RoundTripper

	mu   sync.Mutex
	fail bool
}

func (f *flakyTransport) setFail(fail bool) {
	f.mu.Lock()
	f.fail = fail
	f.mu.Unlock()
}

func (f *flakyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	f.mu.Lock()
	fail := f.fail
	f.mu.Unlock()
	if fail {
		return nil, errors.New("injected network failure")
	}
	return f.base.RoundTrip(req)
}

// startBackend runs an in-process mock store on a loopback listener and
// returns a gateway wired to it through a failure-injectable transport.
func startBackend(t *testing.T) (*gateway.Gateway, *flakyTransport) {
	t.Helper()

	store, err := mockstore.Open("")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.SeedUsers(mockstore.DemoUsers()); err != nil {
		t.Fatalf("seed users: %v", err)
	}

	wsHub := ws.NewHub()
	go wsHub.Run()
	app := mockstore.NewApp(store, wsHub)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	baseURL := "http://" + ln.Addr().String()
	waitReady(t, baseURL)

	flaky := &flakyTransport{base: http.DefaultTransport}
	client := gateway.NewClient(baseURL, &http.Client{Transport: flaky})
	hub := gateway.NewHub()
	go hub.Run()
	return gateway.New(client, hub), flaky
}

func waitReady(t *testing.T, baseURL string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(baseURL + "/users")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("mock store never became ready")
}

func seedProduct(t *testing.T, gw *gateway.Gateway, name string, price float64, stock int) model.Product {
	t.Helper()
	created, err := gw.CreateProduct(context.Background(), model.Product{
		Name:     name,
		Price:    price,
		Category: model.CategoryGeneral,
		Stock:    stock,
	})
	if err != nil {
		t.Fatalf("seed product %s: %v", name, err)
	}
	return created
}

func seedCustomer(t *testing.T, gw *gateway.Gateway, name string) model.Customer {
	t.Helper()
	created, err := gw.CreateCustomer(context.Background(), model.Customer{
		Name:         name,
		TotalDue:     0,
		Transactions: []model.Transaction{},
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed customer %s: %v", name, err)
	}
	return created
}
