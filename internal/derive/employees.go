package derive

import (
	"time"

	"nwb/internal/export"
	"nwb/internal/model"
	"nwb/internal/table"
)

// EmployeeRow carries the display name plus the resolved manager label
// from the reportsTo self-reference.
type EmployeeRow struct {
	EmployeeID  int
	Name        string
	Title       string
	City        string
	Country     string
	HomePhone   string
	BirthDate   string
	BirthDateT  time.Time
	ReportsTo   string
	AddressLine string
}

type EmployeeCol int

const (
	EmployeeColID EmployeeCol = iota
	EmployeeColName
	EmployeeColTitle
	EmployeeColCity
	EmployeeColCountry
	EmployeeColPhone
	EmployeeColBirthDate
	EmployeeColReportsTo
)

const EmployeeColNone EmployeeCol = -1

// EmployeeRows derives display rows; the manager lookup runs against the
// same collection, so a dangling reportsTo degrades to the raw id.
func EmployeeRows(employees []model.Employee) []EmployeeRow {
	rows := make([]EmployeeRow, 0, len(employees))
	for _, e := range employees {
		reportsTo := ""
		if e.ReportsTo != nil {
			reportsTo = EmployeeNameByID(employees, *e.ReportsTo)
		}
		rows = append(rows, EmployeeRow{
			EmployeeID: e.EmployeeID,
			Name:       EmployeeFullName(e),
			Title:      e.Title,
			City:       e.City,
			Country:    e.Country,
			HomePhone:  e.HomePhone,
			BirthDate:  FormatDate(e.BirthDate),
			BirthDateT: ParseDate(e.BirthDate),
			ReportsTo:  reportsTo,
			AddressLine: JoinFields(
				e.Country, e.Region, e.City, e.Address.Address, e.PostalCode,
			),
		})
	}
	return rows
}

func (r EmployeeRow) Cell(c EmployeeCol) table.Cell {
	switch c {
	case EmployeeColID:
		return table.IntCell(r.EmployeeID)
	case EmployeeColName:
		return table.StringCell(r.Name)
	case EmployeeColTitle:
		return table.StringCell(r.Title)
	case EmployeeColCity:
		return table.StringCell(r.City)
	case EmployeeColCountry:
		return table.StringCell(r.Country)
	case EmployeeColPhone:
		return table.StringCell(r.HomePhone)
	case EmployeeColBirthDate:
		return table.TimeCell(r.BirthDateT)
	default:
		return table.StringCell(r.ReportsTo)
	}
}

// SearchText excludes the raw employee id: matching on an opaque link
// number would surprise anyone typing a freight value or a phone digit.
func (r EmployeeRow) SearchText() []string {
	return []string{
		r.Name, r.Title, r.City, r.Country, r.HomePhone,
		r.BirthDate, r.ReportsTo, r.AddressLine,
	}
}

func (r EmployeeRow) Export() export.Record {
	return export.Record{
		{Key: "employeeId", Value: r.EmployeeID},
		{Key: "name", Value: r.Name},
		{Key: "title", Value: r.Title},
		{Key: "city", Value: r.City},
		{Key: "country", Value: r.Country},
		{Key: "homePhone", Value: r.HomePhone},
		{Key: "birthDate", Value: r.BirthDateT},
		{Key: "reportsTo", Value: r.ReportsTo},
	}
}
