package mockstore

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-grocer-tab/internal/ws"

	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	store, err := Open("")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	hub := ws.NewHub()
	go hub.Run()
	return &testApp{t: t, app: NewApp(store, hub)}
}

type testApp struct {
	t   *testing.T
	app *fiber.App
}

func (a *testApp) do(method, path string, body any) (*http.Response, []byte) {
	a.t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			a.t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := a.app.Test(req, 5000)
	if err != nil {
		a.t.Fatalf("%s %s: %v", method, path, err)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		a.t.Fatalf("read response: %v", err)
	}
	resp.Body.Close()
	return resp, data
}

func TestCollectionLifecycle(t *testing.T) {
	app := newTestApp(t)

	resp, data := app.do(http.MethodPost, "/products", map[string]any{"name": "Milk", "price": 2.5, "stock": 10})
	if resp.StatusCode != 201 {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	var created map[string]any
	json.Unmarshal(data, &created)
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatal("no id assigned on create")
	}

	resp, data = app.do(http.MethodGet, "/products", nil)
	if resp.StatusCode != 200 {
		t.Fatalf("list status = %d", resp.StatusCode)
	}
	var list []map[string]any
	json.Unmarshal(data, &list)
	if len(list) != 1 || list[0]["name"] != "Milk" {
		t.Fatalf("list = %v", list)
	}

	resp, data = app.do(http.MethodPatch, "/products/"+id, map[string]any{"stock": 4})
	if resp.StatusCode != 200 {
		t.Fatalf("patch status = %d", resp.StatusCode)
	}
	var patched map[string]any
	json.Unmarshal(data, &patched)
	if patched["stock"] != 4.0 || patched["name"] != "Milk" {
		t.Errorf("patch result = %v, want shallow merge", patched)
	}

	resp, _ = app.do(http.MethodGet, "/products/"+id, nil)
	if resp.StatusCode != 200 {
		t.Errorf("get by id status = %d", resp.StatusCode)
	}

	resp, _ = app.do(http.MethodDelete, "/products/"+id, nil)
	if resp.StatusCode != 200 {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}
	_, data = app.do(http.MethodGet, "/products", nil)
	json.Unmarshal(data, &list)
	if len(list) != 0 {
		t.Errorf("list after delete = %v, want empty", list)
	}
}

func TestErrorStatuses(t *testing.T) {
	app := newTestApp(t)

	if resp, _ := app.do(http.MethodGet, "/products/missing", nil); resp.StatusCode != 404 {
		t.Errorf("get unknown id status = %d, want 404", resp.StatusCode)
	}
	if resp, _ := app.do(http.MethodPatch, "/customers/missing", map[string]any{"name": "x"}); resp.StatusCode != 404 {
		t.Errorf("patch unknown id status = %d, want 404", resp.StatusCode)
	}
	if resp, _ := app.do(http.MethodDelete, "/users/missing", nil); resp.StatusCode != 404 {
		t.Errorf("delete unknown id status = %d, want 404", resp.StatusCode)
	}
	if resp, _ := app.do(http.MethodGet, "/widgets", nil); resp.StatusCode != 404 {
		t.Errorf("unknown collection status = %d, want 404", resp.StatusCode)
	}

	// Invalid JSON body
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.app.Test(req, 5000)
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("bad body status = %d, want 400", resp.StatusCode)
	}
}
