package derive

import (
	"strconv"

	"nwb/internal/export"
	"nwb/internal/model"
	"nwb/internal/table"
)

// OrderDetailRow is one order line with its product resolved and the line
// total precomputed.
type OrderDetailRow struct {
	OrderID     int
	ProductID   int
	ProductName string
	UnitPrice   float64
	Quantity    int
	Discount    float64 // fraction 0-1
	Total       float64
}

type DetailCol int

const (
	DetailColProduct DetailCol = iota
	DetailColUnitPrice
	DetailColQuantity
	DetailColDiscount
	DetailColTotal
)

const DetailColNone DetailCol = -1

func OrderDetailRows(details []model.OrderDetail, products []model.Product) []OrderDetailRow {
	rows := make([]OrderDetailRow, 0, len(details))
	for _, d := range details {
		rows = append(rows, OrderDetailRow{
			OrderID:     d.OrderID,
			ProductID:   d.ProductID,
			ProductName: ProductNameByID(products, d.ProductID),
			UnitPrice:   d.UnitPrice,
			Quantity:    d.Quantity,
			Discount:    d.Discount,
			Total:       LineTotal(d),
		})
	}
	return rows
}

// OrderTotal sums the line totals, rounded to cents.
func OrderTotal(rows []OrderDetailRow) float64 {
	var total float64
	for _, r := range rows {
		total += r.Total
	}
	return RoundMoney(total)
}

func (r OrderDetailRow) Cell(c DetailCol) table.Cell {
	switch c {
	case DetailColProduct:
		return table.StringCell(r.ProductName)
	case DetailColUnitPrice:
		return table.NumberCell(r.UnitPrice)
	case DetailColQuantity:
		return table.IntCell(r.Quantity)
	case DetailColDiscount:
		return table.NumberCell(r.Discount)
	default:
		return table.NumberCell(r.Total)
	}
}

// SearchText excludes the raw order and product ids.
func (r OrderDetailRow) SearchText() []string {
	return []string{
		r.ProductName,
		strconv.FormatFloat(r.UnitPrice, 'f', -1, 64),
		strconv.Itoa(r.Quantity),
	}
}

func (r OrderDetailRow) Export() export.Record {
	return export.Record{
		{Key: "orderId", Value: r.OrderID},
		{Key: "product", Value: r.ProductName},
		{Key: "unitPrice", Value: r.UnitPrice},
		{Key: "quantity", Value: r.Quantity},
		{Key: "discount", Value: r.Discount * 100},
		{Key: "total", Value: r.Total},
	}
}
