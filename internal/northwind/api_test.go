package northwind

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"nwb/internal/fetch"
)

// routeRecorder serves canned JSON and remembers which paths were hit.
type routeRecorder struct {
	mu     sync.Mutex
	paths  []string
	bodies map[string]string
}

func (rr *routeRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rr.mu.Lock()
	rr.paths = append(rr.paths, r.URL.Path)
	rr.mu.Unlock()
	if body, ok := rr.bodies[r.URL.Path]; ok {
		w.Write([]byte(body))
		return
	}
	http.NotFound(w, r)
}

func newTestAPI(t *testing.T, bodies map[string]string) (*API, *routeRecorder) {
	t.Helper()
	rr := &routeRecorder{bodies: bodies}
	srv := httptest.NewServer(rr)
	t.Cleanup(srv.Close)
	return New(fetch.NewClient(fetch.Config{BaseURL: srv.URL})), rr
}

func TestOrdersRoute(t *testing.T) {
	api, rr := newTestAPI(t, map[string]string{
		"/Orders": `[{"orderId":10248,"customerId":"VINET","freight":32.38}]`,
	})

	orders, err := api.Orders(context.Background())
	if err != nil {
		t.Fatalf("Orders: %v", err)
	}
	if len(orders) != 1 || orders[0].OrderID != 10248 || orders[0].CustomerID != "VINET" {
		t.Fatalf("decoded: %+v", orders)
	}
	if rr.paths[0] != "/Orders" {
		t.Fatalf("path: %q", rr.paths[0])
	}
}

func TestScopedRoutes(t *testing.T) {
	api, rr := newTestAPI(t, map[string]string{
		"/Customers/VINET/Orders": `[]`,
		"/Employees/5/Orders":     `[]`,
		"/Orders/10248/OrderDetails": `[
			{"orderId":10248,"productId":11,"unitPrice":14,"quantity":12,"discount":0}
		]`,
		"/Orders/10248/Products": `[]`,
	})
	ctx := context.Background()

	if _, err := api.CustomerOrders(ctx, "VINET"); err != nil {
		t.Fatalf("CustomerOrders: %v", err)
	}
	if _, err := api.EmployeeOrders(ctx, 5); err != nil {
		t.Fatalf("EmployeeOrders: %v", err)
	}
	details, err := api.OrderDetails(ctx, 10248)
	if err != nil {
		t.Fatalf("OrderDetails: %v", err)
	}
	if len(details) != 1 || details[0].ProductID != 11 {
		t.Fatalf("details: %+v", details)
	}
	if _, err := api.OrderProducts(ctx, 10248); err != nil {
		t.Fatalf("OrderProducts: %v", err)
	}

	want := []string{
		"/Customers/VINET/Orders",
		"/Employees/5/Orders",
		"/Orders/10248/OrderDetails",
		"/Orders/10248/Products",
	}
	for i, p := range want {
		if rr.paths[i] != p {
			t.Fatalf("path %d: want %q, got %q", i, p, rr.paths[i])
		}
	}
}

func TestNullableShippedDate(t *testing.T) {
	api, _ := newTestAPI(t, map[string]string{
		"/Orders": `[{"orderId":1,"shippedDate":null},{"orderId":2,"shippedDate":"1996-07-16T00:00:00"}]`,
	})

	orders, err := api.Orders(context.Background())
	if err != nil {
		t.Fatalf("Orders: %v", err)
	}
	if orders[0].ShippedDate != nil {
		t.Fatalf("null shippedDate must decode to nil")
	}
	if orders[1].ShippedDate == nil || *orders[1].ShippedDate != "1996-07-16T00:00:00" {
		t.Fatalf("shippedDate: %v", orders[1].ShippedDate)
	}
}

func TestEmbeddedAddressDecoding(t *testing.T) {
	api, _ := newTestAPI(t, map[string]string{
		"/Customers/ALFKI": `{"customerId":"ALFKI","companyName":"Alfreds Futterkiste","address":"Obere Str. 57","city":"Berlin","country":"Germany"}`,
	})

	c, err := api.Customer(context.Background(), "ALFKI")
	if err != nil {
		t.Fatalf("Customer: %v", err)
	}
	if c.Country != "Germany" || c.City != "Berlin" || c.Address.Address != "Obere Str. 57" {
		t.Fatalf("address fields: %+v", c)
	}
}
