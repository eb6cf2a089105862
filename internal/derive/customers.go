package derive

import (
	"nwb/internal/export"
	"nwb/internal/model"
	"nwb/internal/table"
)

// CustomerRow flattens a customer's address into a single display line.
type CustomerRow struct {
	CustomerID   string
	CompanyName  string
	ContactName  string
	ContactTitle string
	AddressLine  string
	Country      string
	Phone        string
	Fax          string
}

type CustomerCol int

const (
	CustomerColID CustomerCol = iota
	CustomerColCompany
	CustomerColContactName
	CustomerColContactTitle
	CustomerColAddress
	CustomerColPhone
	CustomerColFax
)

const CustomerColNone CustomerCol = -1

func CustomerRows(customers []model.Customer) []CustomerRow {
	rows := make([]CustomerRow, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, CustomerRow{
			CustomerID:   c.CustomerID,
			CompanyName:  c.CompanyName,
			ContactName:  c.ContactName,
			ContactTitle: c.ContactTitle,
			AddressLine: JoinFields(
				c.Country, c.Region, c.City, c.Address.Address, c.PostalCode,
			),
			Country: c.Country,
			Phone:   c.Phone,
			Fax:     c.Fax,
		})
	}
	return rows
}

func (r CustomerRow) Cell(c CustomerCol) table.Cell {
	switch c {
	case CustomerColID:
		return table.StringCell(r.CustomerID)
	case CustomerColCompany:
		return table.StringCell(r.CompanyName)
	case CustomerColContactName:
		return table.StringCell(r.ContactName)
	case CustomerColContactTitle:
		return table.StringCell(r.ContactTitle)
	case CustomerColAddress:
		return table.StringCell(r.AddressLine)
	case CustomerColPhone:
		return table.StringCell(r.Phone)
	default:
		return table.StringCell(r.Fax)
	}
}

// SearchText covers every display field; the customer key is a meaningful
// string, not an opaque numeric link id, so it stays searchable.
func (r CustomerRow) SearchText() []string {
	return []string{
		r.CustomerID, r.CompanyName, r.ContactName, r.ContactTitle,
		r.AddressLine, r.Phone, r.Fax,
	}
}

func (r CustomerRow) Export() export.Record {
	return export.Record{
		{Key: "customerId", Value: r.CustomerID},
		{Key: "companyName", Value: r.CompanyName},
		{Key: "contactName", Value: r.ContactName},
		{Key: "contactTitle", Value: r.ContactTitle},
		{Key: "address", Value: r.AddressLine},
		{Key: "phone", Value: r.Phone},
		{Key: "fax", Value: r.Fax},
	}
}
