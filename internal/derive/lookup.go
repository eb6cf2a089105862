package derive

import (
	"strconv"

	"nwb/internal/model"
)

// EmployeeFullName renders the employee display name used everywhere an
// employee is linked.
func EmployeeFullName(e model.Employee) string {
	return e.TitleOfCourtesy + " " + e.LastName + " " + e.FirstName
}

// EmployeeNameByID resolves an employee id against a loaded collection.
// When the collection has not loaded yet (nil or the id is absent) the
// raw key is displayed instead of failing.
func EmployeeNameByID(employees []model.Employee, id int) string {
	for _, e := range employees {
		if e.EmployeeID == id {
			return EmployeeFullName(e)
		}
	}
	return strconv.Itoa(id)
}

func CategoryNameByID(categories []model.Category, id int) string {
	for _, c := range categories {
		if c.CategoryID == id {
			return c.CategoryName
		}
	}
	return strconv.Itoa(id)
}

func SupplierNameByID(suppliers []model.Supplier, id int) string {
	for _, s := range suppliers {
		if s.SupplierID == id {
			return s.CompanyName
		}
	}
	return strconv.Itoa(id)
}

func ShipperNameByID(shippers []model.Shipper, id int) string {
	for _, s := range shippers {
		if s.ShipperID == id {
			return s.CompanyName
		}
	}
	return strconv.Itoa(id)
}

func ProductNameByID(products []model.Product, id int) string {
	for _, p := range products {
		if p.ProductID == id {
			return p.ProductName
		}
	}
	return strconv.Itoa(id)
}

func RegionNameByID(regions []model.Region, id int) string {
	for _, r := range regions {
		if r.RegionID == id {
			return r.RegionDescription
		}
	}
	return strconv.Itoa(id)
}
