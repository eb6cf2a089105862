package derive

import (
	"nwb/internal/export"
	"nwb/internal/model"
	"nwb/internal/table"
)

type SupplierRow struct {
	SupplierID   int
	CompanyName  string
	ContactName  string
	ContactTitle string
	AddressLine  string
	Country      string
	Phone        string
}

type SupplierCol int

const (
	SupplierColID SupplierCol = iota
	SupplierColCompany
	SupplierColContactName
	SupplierColContactTitle
	SupplierColAddress
	SupplierColPhone
)

const SupplierColNone SupplierCol = -1

func SupplierRows(suppliers []model.Supplier) []SupplierRow {
	rows := make([]SupplierRow, 0, len(suppliers))
	for _, s := range suppliers {
		rows = append(rows, SupplierRow{
			SupplierID:   s.SupplierID,
			CompanyName:  s.CompanyName,
			ContactName:  s.ContactName,
			ContactTitle: s.ContactTitle,
			AddressLine: JoinFields(
				s.Country, s.Region, s.City, s.Address.Address, s.PostalCode,
			),
			Country: s.Country,
			Phone:   s.Phone,
		})
	}
	return rows
}

func (r SupplierRow) Cell(c SupplierCol) table.Cell {
	switch c {
	case SupplierColID:
		return table.IntCell(r.SupplierID)
	case SupplierColCompany:
		return table.StringCell(r.CompanyName)
	case SupplierColContactName:
		return table.StringCell(r.ContactName)
	case SupplierColContactTitle:
		return table.StringCell(r.ContactTitle)
	case SupplierColAddress:
		return table.StringCell(r.AddressLine)
	default:
		return table.StringCell(r.Phone)
	}
}

// SearchText excludes the raw supplier id, a link-only number.
func (r SupplierRow) SearchText() []string {
	return []string{
		r.CompanyName, r.ContactName, r.ContactTitle, r.AddressLine, r.Phone,
	}
}

func (r SupplierRow) Export() export.Record {
	return export.Record{
		{Key: "supplierId", Value: r.SupplierID},
		{Key: "companyName", Value: r.CompanyName},
		{Key: "contactName", Value: r.ContactName},
		{Key: "contactTitle", Value: r.ContactTitle},
		{Key: "address", Value: r.AddressLine},
		{Key: "phone", Value: r.Phone},
	}
}
