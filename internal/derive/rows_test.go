package derive

import (
	"testing"

	"nwb/internal/model"
)

func employeesFixture() []model.Employee {
	return []model.Employee{
		{EmployeeID: 2, FirstName: "Andrew", LastName: "Fuller", TitleOfCourtesy: "Dr."},
		{EmployeeID: 5, FirstName: "Steven", LastName: "Buchanan", TitleOfCourtesy: "Mr.",
			ReportsTo: intPtr(2)},
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

func TestOrderRowsDerivation(t *testing.T) {
	orders := []model.Order{
		{
			OrderID: 10248, CustomerID: "VINET", EmployeeID: 5,
			OrderDate: "1996-07-04T00:00:00", RequiredDate: "1996-08-01T00:00:00",
			ShippedDate: strPtr("1996-07-16T00:00:00"),
			Freight:     32.38, ShipName: "Vins et alcools Chevalier",
			ShipAddress: "59 rue de l'Abbaye", ShipCity: "Reims",
			ShipPostalCode: "51100", ShipCountry: "France",
		},
		{OrderID: 10249, EmployeeID: 6, OrderDate: "1997-03-01T00:00:00"},
	}

	rows, years := OrderRows(orders, employeesFixture())
	if len(rows) != 2 {
		t.Fatalf("want 2 rows, got %d", len(rows))
	}

	r := rows[0]
	if r.EmployeeName != "Mr. Buchanan Steven" {
		t.Fatalf("employee name: got %q", r.EmployeeName)
	}
	if r.OrderDate != "Jul 4, 1996" {
		t.Fatalf("order date: got %q", r.OrderDate)
	}
	if r.ShippedDate != "Jul 16, 1996" {
		t.Fatalf("shipped date: got %q", r.ShippedDate)
	}
	if r.AddressLine != "France, Reims, 59 rue de l'Abbaye, 51100" {
		t.Fatalf("address line: got %q", r.AddressLine)
	}

	// Employee 6 is not in the collection: the raw id is shown.
	if rows[1].EmployeeName != "6" {
		t.Fatalf("dangling employee: got %q", rows[1].EmployeeName)
	}
	if rows[1].ShippedDate != "N/A" {
		t.Fatalf("nil shipped date: got %q", rows[1].ShippedDate)
	}

	if len(years) != 2 || years[0] != 1996 || years[1] != 1997 {
		t.Fatalf("years: got %v", years)
	}
}

func TestOrderRowSearchExcludesEmployeeID(t *testing.T) {
	employees := []model.Employee{{EmployeeID: 77, FirstName: "Nancy", LastName: "Davolio", TitleOfCourtesy: "Ms."}}
	rows, _ := OrderRows([]model.Order{{OrderID: 10248, EmployeeID: 77}}, employees)
	for _, f := range rows[0].SearchText() {
		if f == "77" {
			t.Fatalf("raw employee id leaked into search fields")
		}
	}
}

func TestEmployeeRowsResolveManager(t *testing.T) {
	rows := EmployeeRows(employeesFixture())
	if rows[0].ReportsTo != "" {
		t.Fatalf("top manager: want empty, got %q", rows[0].ReportsTo)
	}
	if rows[1].ReportsTo != "Dr. Fuller Andrew" {
		t.Fatalf("manager: got %q", rows[1].ReportsTo)
	}
}

func TestProductRowsResolveNames(t *testing.T) {
	products := []model.Product{
		{ProductID: 1, ProductName: "Chai", CategoryID: 1, SupplierID: 1, UnitPrice: 18},
		{ProductID: 2, ProductName: "Chang", CategoryID: 9, SupplierID: 9},
	}
	categories := []model.Category{{CategoryID: 1, CategoryName: "Beverages"}}
	suppliers := []model.Supplier{{SupplierID: 1, CompanyName: "Exotic Liquids"}}

	rows := ProductRows(products, categories, suppliers)
	if rows[0].CategoryName != "Beverages" || rows[0].SupplierName != "Exotic Liquids" {
		t.Fatalf("resolved names: got %q / %q", rows[0].CategoryName, rows[0].SupplierName)
	}
	// Degraded lookups fall back to the raw key.
	if rows[1].CategoryName != "9" || rows[1].SupplierName != "9" {
		t.Fatalf("degraded names: got %q / %q", rows[1].CategoryName, rows[1].SupplierName)
	}
}

func TestCustomerSearchIncludesKey(t *testing.T) {
	rows := CustomerRows([]model.Customer{{CustomerID: "ALFKI", CompanyName: "Alfreds Futterkiste"}})
	found := false
	for _, f := range rows[0].SearchText() {
		if f == "ALFKI" {
			found = true
		}
	}
	if !found {
		t.Fatalf("customer key must stay searchable")
	}
}

func TestJoinFieldsSkipsEmpties(t *testing.T) {
	got := JoinFields("France", "", "Reims", "", "51100")
	if got != "France, Reims, 51100" {
		t.Fatalf("got %q", got)
	}
	if got := JoinFields("", ""); got != "" {
		t.Fatalf("all empty: got %q", got)
	}
}
