package northwind

import (
	"context"
	"strconv"

	"nwb/internal/fetch"
	"nwb/internal/model"
)

// DefaultBaseURL is the public demo dataset.
const DefaultBaseURL = "https://demodata.grapecity.com/northwind/api/v1"

// API is the typed surface over the REST routes: one method per
// documented endpoint, all read-only.
type API struct {
	c *fetch.Client
}

func New(c *fetch.Client) *API { return &API{c: c} }

// Client exposes the underlying fetch client for generic fetches such as
// the choropleth's GeoJSON feed.
func (a *API) Client() *fetch.Client { return a.c }

func (a *API) Orders(ctx context.Context) ([]model.Order, error) {
	var v []model.Order
	err := a.c.GetJSON(ctx, "/Orders", &v)
	return v, err
}

func (a *API) Order(ctx context.Context, id int) (model.Order, error) {
	var v model.Order
	err := a.c.GetJSON(ctx, "/Orders/"+strconv.Itoa(id), &v)
	return v, err
}

func (a *API) CustomerOrders(ctx context.Context, customerID string) ([]model.Order, error) {
	var v []model.Order
	err := a.c.GetJSON(ctx, "/Customers/"+customerID+"/Orders", &v)
	return v, err
}

func (a *API) EmployeeOrders(ctx context.Context, employeeID int) ([]model.Order, error) {
	var v []model.Order
	err := a.c.GetJSON(ctx, "/Employees/"+strconv.Itoa(employeeID)+"/Orders", &v)
	return v, err
}

func (a *API) ShipperOrders(ctx context.Context, shipperID int) ([]model.Order, error) {
	var v []model.Order
	err := a.c.GetJSON(ctx, "/Shippers/"+strconv.Itoa(shipperID)+"/Orders", &v)
	return v, err
}

func (a *API) OrderDetails(ctx context.Context, orderID int) ([]model.OrderDetail, error) {
	var v []model.OrderDetail
	err := a.c.GetJSON(ctx, "/Orders/"+strconv.Itoa(orderID)+"/OrderDetails", &v)
	return v, err
}

func (a *API) ProductOrderDetails(ctx context.Context, productID int) ([]model.OrderDetail, error) {
	var v []model.OrderDetail
	err := a.c.GetJSON(ctx, "/Products/"+strconv.Itoa(productID)+"/OrderDetails", &v)
	return v, err
}

func (a *API) OrderCustomer(ctx context.Context, orderID int) (model.Customer, error) {
	var v model.Customer
	err := a.c.GetJSON(ctx, "/Orders/"+strconv.Itoa(orderID)+"/Customer", &v)
	return v, err
}

func (a *API) OrderEmployee(ctx context.Context, orderID int) (model.Employee, error) {
	var v model.Employee
	err := a.c.GetJSON(ctx, "/Orders/"+strconv.Itoa(orderID)+"/Employee", &v)
	return v, err
}

func (a *API) OrderShipper(ctx context.Context, orderID int) (model.Shipper, error) {
	var v model.Shipper
	err := a.c.GetJSON(ctx, "/Orders/"+strconv.Itoa(orderID)+"/Shipper", &v)
	return v, err
}

func (a *API) OrderProducts(ctx context.Context, orderID int) ([]model.Product, error) {
	var v []model.Product
	err := a.c.GetJSON(ctx, "/Orders/"+strconv.Itoa(orderID)+"/Products", &v)
	return v, err
}

func (a *API) Employees(ctx context.Context) ([]model.Employee, error) {
	var v []model.Employee
	err := a.c.GetJSON(ctx, "/Employees", &v)
	return v, err
}

func (a *API) Employee(ctx context.Context, id int) (model.Employee, error) {
	var v model.Employee
	err := a.c.GetJSON(ctx, "/Employees/"+strconv.Itoa(id), &v)
	return v, err
}

func (a *API) EmployeeTerritories(ctx context.Context, employeeID int) ([]model.Territory, error) {
	var v []model.Territory
	err := a.c.GetJSON(ctx, "/Employees/"+strconv.Itoa(employeeID)+"/Territories", &v)
	return v, err
}

func (a *API) Customers(ctx context.Context) ([]model.Customer, error) {
	var v []model.Customer
	err := a.c.GetJSON(ctx, "/Customers", &v)
	return v, err
}

func (a *API) Customer(ctx context.Context, id string) (model.Customer, error) {
	var v model.Customer
	err := a.c.GetJSON(ctx, "/Customers/"+id, &v)
	return v, err
}

func (a *API) Products(ctx context.Context) ([]model.Product, error) {
	var v []model.Product
	err := a.c.GetJSON(ctx, "/Products", &v)
	return v, err
}

func (a *API) Product(ctx context.Context, id int) (model.Product, error) {
	var v model.Product
	err := a.c.GetJSON(ctx, "/Products/"+strconv.Itoa(id), &v)
	return v, err
}

func (a *API) Categories(ctx context.Context) ([]model.Category, error) {
	var v []model.Category
	err := a.c.GetJSON(ctx, "/Categories", &v)
	return v, err
}

func (a *API) Suppliers(ctx context.Context) ([]model.Supplier, error) {
	var v []model.Supplier
	err := a.c.GetJSON(ctx, "/Suppliers", &v)
	return v, err
}

func (a *API) Supplier(ctx context.Context, id int) (model.Supplier, error) {
	var v model.Supplier
	err := a.c.GetJSON(ctx, "/Suppliers/"+strconv.Itoa(id), &v)
	return v, err
}

func (a *API) Shippers(ctx context.Context) ([]model.Shipper, error) {
	var v []model.Shipper
	err := a.c.GetJSON(ctx, "/Shippers", &v)
	return v, err
}

func (a *API) Regions(ctx context.Context) ([]model.Region, error) {
	var v []model.Region
	err := a.c.GetJSON(ctx, "/Regions", &v)
	return v, err
}
