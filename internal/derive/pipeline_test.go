package derive

import (
	"testing"
	"time"

	"nwb/internal/model"
	"nwb/internal/table"
)

// The full list pipeline: derive, filter by year, sort by freight,
// paginate. Mirrors what the orders view does on every state change.
func TestOrdersPipeline(t *testing.T) {
	orders := []model.Order{
		{OrderID: 1, OrderDate: "1996-07-04T00:00:00", Freight: 10, ShipCountry: "France"},
		{OrderID: 2, OrderDate: "1996-08-01T00:00:00", Freight: 30, ShipCountry: "Germany"},
		{OrderID: 3, OrderDate: "1997-01-15T00:00:00", Freight: 20, ShipCountry: "France"},
		{OrderID: 4, OrderDate: "1996-09-09T00:00:00", Freight: 5, ShipCountry: "UK"},
		{OrderID: 5, OrderDate: "1997-02-02T00:00:00", Freight: 50, ShipCountry: "UK"},
	}

	rows, years := OrderRows(orders, nil)
	if len(years) != 2 {
		t.Fatalf("want years [1996 1997], got %v", years)
	}

	year := 1996
	filtered := table.Apply(rows,
		table.YearPredicate(&year, func(r OrderRow) time.Time { return r.OrderDateT }),
	)
	if len(filtered) != 3 {
		t.Fatalf("want 3 orders in 1996, got %d", len(filtered))
	}

	// Freight is a non-key numeric column: descending by default.
	sorted := table.Sort(filtered, OrderColFreight, false, OrderRow.Cell)
	wantIDs := []int{2, 1, 4}
	for i, r := range sorted {
		if r.OrderID != wantIDs[i] {
			t.Fatalf("sort order: want %v, got row %d at %d", wantIDs, r.OrderID, i)
		}
	}

	pag := table.NewPaginator(sorted, 2)
	if pag.PageCount() != 2 {
		t.Fatalf("want 2 pages, got %d", pag.PageCount())
	}
	first := pag.Page()
	if len(first) != 2 || first[0].OrderID != 2 || first[1].OrderID != 1 {
		t.Fatalf("first page: got %+v", first)
	}
	pag.SetActivePage(1)
	second := pag.Page()
	if len(second) != 1 || second[0].OrderID != 4 {
		t.Fatalf("second page: got %+v", second)
	}
}

// Tightening the filter while on a later page resets pagination only
// when the page falls out of range.
func TestPipelineFilterChangeResetsPage(t *testing.T) {
	orders := make([]model.Order, 30)
	for i := range orders {
		orders[i] = model.Order{OrderID: i + 1, OrderDate: "1996-07-04T00:00:00", ShipCountry: "France"}
	}
	rows, _ := OrderRows(orders, nil)

	pag := table.NewPaginator(rows, 10)
	pag.SetActivePage(2)

	pag.SetRows(rows[:15])
	if pag.ActivePage() != 0 {
		t.Fatalf("want reset to page 0, got %d", pag.ActivePage())
	}

	pag.SetActivePage(1)
	pag.SetRows(rows[:15])
	if pag.ActivePage() != 1 {
		t.Fatalf("in-range page must survive a row change, got %d", pag.ActivePage())
	}
}
