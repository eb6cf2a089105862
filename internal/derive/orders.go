package derive

import (
	"sort"
	"strconv"
	"time"

	"nwb/internal/export"
	"nwb/internal/model"
	"nwb/internal/table"
)

// OrderRow is a display-ready order: foreign keys resolved to labels and
// every field later used for filtering or sorting precomputed, so the
// filter and sort engines never re-parse dates per keystroke.
type OrderRow struct {
	OrderID       int
	CustomerID    string
	EmployeeID    int
	EmployeeName  string
	OrderDate     string
	ShippedDate   string
	RequiredDate  string
	OrderDateT    time.Time
	ShippedDateT  time.Time
	RequiredDateT time.Time
	Freight       float64
	ShipName      string
	AddressLine   string
	ShipCountry   string
}

// OrderCol enumerates the sortable order columns; OrderColID is the
// primary key column.
type OrderCol int

const (
	OrderColID OrderCol = iota
	OrderColCustomer
	OrderColEmployee
	OrderColOrderDate
	OrderColShippedDate
	OrderColRequiredDate
	OrderColFreight
	OrderColShipName
	OrderColAddress
)

// OrderColNone selects no column: sorting keeps the incoming order.
const OrderColNone OrderCol = -1

// OrderRows derives one row per order, resolving employee ids against the
// employees collection (raw id shown while it has not loaded), and
// returns the distinct order years for the year filter buttons, sorted.
func OrderRows(orders []model.Order, employees []model.Employee) ([]OrderRow, []int) {
	rows := make([]OrderRow, 0, len(orders))
	yearsSet := make(map[int]struct{})
	for _, o := range orders {
		if t := ParseDate(o.OrderDate); !t.IsZero() {
			yearsSet[t.Year()] = struct{}{}
		}
		rows = append(rows, OrderRow{
			OrderID:       o.OrderID,
			CustomerID:    o.CustomerID,
			EmployeeID:    o.EmployeeID,
			EmployeeName:  EmployeeNameByID(employees, o.EmployeeID),
			OrderDate:     FormatDate(o.OrderDate),
			ShippedDate:   FormatDatePtr(o.ShippedDate),
			RequiredDate:  FormatDate(o.RequiredDate),
			OrderDateT:    ParseDate(o.OrderDate),
			ShippedDateT:  ParseDatePtr(o.ShippedDate),
			RequiredDateT: ParseDate(o.RequiredDate),
			Freight:       o.Freight,
			ShipName:      o.ShipName,
			AddressLine: JoinFields(
				o.ShipCountry, o.ShipRegion, o.ShipCity, o.ShipAddress, o.ShipPostalCode,
			),
			ShipCountry: o.ShipCountry,
		})
	}
	years := make([]int, 0, len(yearsSet))
	for y := range yearsSet {
		years = append(years, y)
	}
	sort.Ints(years)
	return rows, years
}

func (r OrderRow) Cell(c OrderCol) table.Cell {
	switch c {
	case OrderColID:
		return table.IntCell(r.OrderID)
	case OrderColCustomer:
		return table.StringCell(r.CustomerID)
	case OrderColEmployee:
		return table.StringCell(r.EmployeeName)
	case OrderColOrderDate:
		return table.TimeCell(r.OrderDateT)
	case OrderColShippedDate:
		return table.TimeCell(r.ShippedDateT)
	case OrderColRequiredDate:
		return table.TimeCell(r.RequiredDateT)
	case OrderColFreight:
		return table.NumberCell(r.Freight)
	case OrderColShipName:
		return table.StringCell(r.ShipName)
	default:
		return table.StringCell(r.AddressLine)
	}
}

// SearchText lists the fields the free-text filter may match. EmployeeID
// is a link-only id and deliberately absent: an opaque number must not
// make a row match.
func (r OrderRow) SearchText() []string {
	return []string{
		strconv.Itoa(r.OrderID),
		r.CustomerID,
		r.EmployeeName,
		r.OrderDate,
		r.ShippedDate,
		r.RequiredDate,
		strconv.FormatFloat(r.Freight, 'f', -1, 64),
		r.ShipName,
		r.AddressLine,
		r.ShipCountry,
	}
}

func (r OrderRow) Export() export.Record {
	return export.Record{
		{Key: "orderId", Value: r.OrderID},
		{Key: "customerId", Value: r.CustomerID},
		{Key: "employee", Value: r.EmployeeName},
		{Key: "orderDate", Value: r.OrderDateT},
		{Key: "shippedDate", Value: r.ShippedDateT},
		{Key: "requiredDate", Value: r.RequiredDateT},
		{Key: "freight", Value: r.Freight},
		{Key: "shipName", Value: r.ShipName},
		{Key: "shipAddress", Value: r.AddressLine},
	}
}
