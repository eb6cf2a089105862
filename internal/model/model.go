package model

// Address is the postal block shared by customers, employees and suppliers.
type Address struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
	Region     string `json:"region"`
}

type Category struct {
	CategoryID   int    `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Description  string `json:"description"`
}

type Customer struct {
	Address
	CompanyName  string `json:"companyName"`
	ContactName  string `json:"contactName"`
	ContactTitle string `json:"contactTitle"`
	CustomerID   string `json:"customerId"`
	Fax          string `json:"fax"`
	Phone        string `json:"phone"`
}

type Employee struct {
	Address
	BirthDate       string `json:"birthDate"`
	EmployeeID      int    `json:"employeeId"`
	FirstName       string `json:"firstName"`
	HomePhone       string `json:"homePhone"`
	LastName        string `json:"lastName"`
	Notes           string `json:"notes"`
	ReportsTo       *int   `json:"reportsTo"`
	Title           string `json:"title"`
	TitleOfCourtesy string `json:"titleOfCourtesy"`
	PhotoPath       string `json:"photoPath"`
}

type Order struct {
	OrderID        int     `json:"orderId"`
	CustomerID     string  `json:"customerId"`
	EmployeeID     int     `json:"employeeId"`
	Freight        float64 `json:"freight"`
	OrderDate      string  `json:"orderDate"`
	RequiredDate   string  `json:"requiredDate"`
	ShippedDate    *string `json:"shippedDate"`
	ShipAddress    string  `json:"shipAddress"`
	ShipCity       string  `json:"shipCity"`
	ShipCountry    string  `json:"shipCountry"`
	ShipName       string  `json:"shipName"`
	ShipPostalCode string  `json:"shipPostalCode"`
	ShipRegion     string  `json:"shipRegion"`
	ShipVia        int     `json:"shipVia"`
}

// OrderDetail has a composite key (orderId, productId). Discount is a
// fraction in [0,1]; multiply by 100 only for display.
type OrderDetail struct {
	OrderID   int     `json:"orderId"`
	ProductID int     `json:"productId"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	Discount  float64 `json:"discount"`
}

type Product struct {
	ProductID       int     `json:"productId"`
	ProductName     string  `json:"productName"`
	CategoryID      int     `json:"categoryId"`
	SupplierID      int     `json:"supplierId"`
	QuantityPerUnit string  `json:"quantityPerUnit"`
	UnitPrice       float64 `json:"unitPrice"`
	UnitsInStock    int     `json:"unitsInStock"`
	UnitsOnOrder    int     `json:"unitsOnOrder"`
	ReorderLevel    int     `json:"reorderLevel"`
	Discontinued    bool    `json:"discontinued"`
}

type Shipper struct {
	ShipperID   int    `json:"shipperId"`
	CompanyName string `json:"companyName"`
	Phone       string `json:"phone"`
}

type Supplier struct {
	Address
	SupplierID   int    `json:"supplierId"`
	ContactName  string `json:"contactName"`
	ContactTitle string `json:"contactTitle"`
	CompanyName  string `json:"companyName"`
	Phone        string `json:"phone"`
}

type Territory struct {
	TerritoryID          string `json:"territoryId"`
	TerritoryDescription string `json:"territoryDescription"`
	RegionID             int    `json:"regionId"`
}

type Region struct {
	RegionID          int    `json:"regionId"`
	RegionDescription string `json:"regionDescription"`
}
