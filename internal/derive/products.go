package derive

import (
	"nwb/internal/export"
	"nwb/internal/model"
	"nwb/internal/table"
)

// ProductRow resolves a product's category and supplier labels.
type ProductRow struct {
	ProductID       int
	ProductName     string
	CategoryID      int
	CategoryName    string
	SupplierID      int
	SupplierName    string
	QuantityPerUnit string
	UnitPrice       float64
	UnitsInStock    int
	UnitsOnOrder    int
	ReorderLevel    int
	Discontinued    bool
}

type ProductCol int

const (
	ProductColID ProductCol = iota
	ProductColName
	ProductColCategory
	ProductColQuantityPerUnit
	ProductColUnitPrice
	ProductColUnitsInStock
	ProductColUnitsOnOrder
	ProductColReorderLevel
	ProductColDiscontinued
)

const ProductColNone ProductCol = -1

func ProductRows(products []model.Product, categories []model.Category, suppliers []model.Supplier) []ProductRow {
	rows := make([]ProductRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, ProductRow{
			ProductID:       p.ProductID,
			ProductName:     p.ProductName,
			CategoryID:      p.CategoryID,
			CategoryName:    CategoryNameByID(categories, p.CategoryID),
			SupplierID:      p.SupplierID,
			SupplierName:    SupplierNameByID(suppliers, p.SupplierID),
			QuantityPerUnit: p.QuantityPerUnit,
			UnitPrice:       p.UnitPrice,
			UnitsInStock:    p.UnitsInStock,
			UnitsOnOrder:    p.UnitsOnOrder,
			ReorderLevel:    p.ReorderLevel,
			Discontinued:    p.Discontinued,
		})
	}
	return rows
}

func (r ProductRow) Cell(c ProductCol) table.Cell {
	switch c {
	case ProductColID:
		return table.IntCell(r.ProductID)
	case ProductColName:
		return table.StringCell(r.ProductName)
	case ProductColCategory:
		return table.StringCell(r.CategoryName)
	case ProductColQuantityPerUnit:
		return table.StringCell(r.QuantityPerUnit)
	case ProductColUnitPrice:
		return table.NumberCell(r.UnitPrice)
	case ProductColUnitsInStock:
		return table.IntCell(r.UnitsInStock)
	case ProductColUnitsOnOrder:
		return table.IntCell(r.UnitsOnOrder)
	case ProductColReorderLevel:
		return table.IntCell(r.ReorderLevel)
	default:
		return table.BoolCell(r.Discontinued)
	}
}

// SearchText matches the list view: name, quantity per unit and the
// resolved category name. Raw category/supplier ids are link-only.
func (r ProductRow) SearchText() []string {
	return []string{r.ProductName, r.QuantityPerUnit, r.CategoryName}
}

func (r ProductRow) Export() export.Record {
	return export.Record{
		{Key: "productId", Value: r.ProductID},
		{Key: "productName", Value: r.ProductName},
		{Key: "category", Value: r.CategoryName},
		{Key: "supplier", Value: r.SupplierName},
		{Key: "quantityPerUnit", Value: r.QuantityPerUnit},
		{Key: "unitPrice", Value: r.UnitPrice},
		{Key: "unitsInStock", Value: r.UnitsInStock},
		{Key: "unitsOnOrder", Value: r.UnitsOnOrder},
		{Key: "reorderLevel", Value: r.ReorderLevel},
		{Key: "discontinued", Value: r.Discontinued},
	}
}

// FilterProductsBySupplier narrows raw products to one supplier, matching
// the supplier detail page.
func FilterProductsBySupplier(products []model.Product, supplierID int) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.SupplierID == supplierID {
			out = append(out, p)
		}
	}
	return out
}

// FilterProductsByCategory narrows raw products to one category.
func FilterProductsByCategory(products []model.Product, categoryID int) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}
