// Command nwbrowse lists Northwind entities with the same filter,
// sort, page, and export pipeline the browser views use. Filters can
// be given as flags or as a single shareable query string.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"nwb/internal/busy"
	"nwb/internal/config"
	"nwb/internal/derive"
	"nwb/internal/export"
	"nwb/internal/fetch"
	"nwb/internal/metrics"
	"nwb/internal/model"
	"nwb/internal/northwind"
	"nwb/internal/params"
	"nwb/internal/table"
)

var (
	configPath = flag.String("config", "", "path to YAML config")
	entity     = flag.String("entity", "orders", "orders|customers|employees|suppliers|products|order-details")

	customerID = flag.String("customer", "", "scope orders to one customer")
	employeeID = flag.Int("employee", 0, "scope orders to one employee")
	orderID    = flag.Int("order", 0, "order id for -entity order-details")
	supplierID = flag.Int("supplier", 0, "scope products to one supplier")
	categoryID = flag.Int("category", 0, "scope products to one category")

	query        = flag.String("query", "", "shareable query string, overrides the filter flags")
	textQ        = flag.String("q", "", "text filter")
	country      = flag.String("country", "", "country filter")
	year         = flag.Int("year", 0, "order year filter, 0 for all")
	discontinued = flag.String("discontinued", "", "product filter: true|false, empty for all")

	sortCol = flag.String("sort", "", "column to sort by, empty for incoming order")
	reverse = flag.Bool("reverse", false, "reverse the sort direction")

	page     = flag.Int("page", 0, "zero-based page")
	pageSize = flag.Int("page-size", 0, "rows per page, 0 for the configured default")

	exportFmt  = flag.String("export", "", "export instead of listing: csv|markdown|json|xlsx")
	outPath    = flag.String("out", "", "export output file, stdout when empty")
	printQuery = flag.Bool("print-query", false, "print the shareable query string and exit")

	metricsAddr = flag.String("metrics", "", "serve prometheus metrics on this address")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	p := stateFromFlags()
	if *printQuery {
		fmt.Println(p.Encode())
		return
	}

	reg := metrics.NewRegistry()
	if addr := firstNonEmpty(*metricsAddr, cfg.Metrics.Addr); addr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", reg.Handler())
			log.Printf("serving metrics on %s", addr)
			log.Fatal(http.ListenAndServe(addr, mux))
		}()
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("cache: %v", err)
	}
	defer closeStore()

	api := northwind.New(fetch.NewClient(fetch.Config{
		BaseURL:    cfg.API.BaseURL,
		Store:      store,
		TTL:        time.Duration(cfg.Cache.TTLSec) * time.Second,
		Retries:    cfg.Fetch.MaxRetries,
		HTTPClient: &http.Client{Timeout: time.Duration(cfg.API.TimeoutSec) * time.Second},
		Metrics:    reg,
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	size := cfg.Table.PageSize
	if *pageSize > 0 {
		size = *pageSize
	}

	if err := run(ctx, api, p, size); err != nil {
		log.Fatalf("%v", err)
	}
}

func stateFromFlags() *params.Builder {
	if *query != "" {
		return params.Parse(*query)
	}
	p := params.New()
	f := params.Filters{Text: *textQ, Country: *country}
	if *year != 0 {
		f.Year = year
	}
	switch *discontinued {
	case "true":
		t := true
		f.Discontinued = &t
	case "false":
		fa := false
		f.Discontinued = &fa
	}
	p.SetFilters(f)
	p.SetSort(*sortCol, *reverse)
	p.SetPage(*page)
	return p
}

func openStore(cfg config.Config) (fetch.Store, func(), error) {
	if cfg.Cache.Backend == "pebble" {
		s, err := fetch.NewPebbleStore(cfg.Cache.Dir)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {
			if err := s.Close(); err != nil {
				log.Printf("close cache: %v", err)
			}
		}, nil
	}
	return fetch.NewMemoryStore(), func() {}, nil
}

func run(ctx context.Context, api *northwind.API, p *params.Builder, pageSize int) error {
	switch *entity {
	case "orders":
		return runOrders(ctx, api, p, pageSize)
	case "customers":
		return runCustomers(ctx, api, p, pageSize)
	case "employees":
		return runEmployees(ctx, api, p, pageSize)
	case "suppliers":
		return runSuppliers(ctx, api, p, pageSize)
	case "products":
		return runProducts(ctx, api, p, pageSize)
	case "order-details":
		return runOrderDetails(ctx, api, p, pageSize)
	default:
		return fmt.Errorf("unknown entity %q", *entity)
	}
}

// notFound reports whether err came back from the API as a client
// error, which the views render as "not found" rather than a failure.
func notFound(err error) bool {
	var fe *fetch.Error
	if errors.As(err, &fe) {
		return fe.Kind == fetch.KindClient
	}
	return false
}

// view bundles everything one entity needs to run the pipeline:
// headers, the column name mapping, the cell accessor, and the export
// record builder.
type view[R any, C ~int] struct {
	title   string
	headers []string
	cols    map[string]C
	none    C
	cell    func(R, C) table.Cell
	record  func(R) export.Record
}

func render[R any, C ~int](rows []R, v view[R, C], p *params.Builder, pageSize int, preds ...table.Predicate[R]) error {
	if len(rows) == 0 {
		fmt.Println("No data")
		return nil
	}

	sortName, rev := p.Sort()
	col := v.none
	if sortName != "" {
		c, ok := v.cols[sortName]
		if !ok {
			return fmt.Errorf("unknown sort column %q for %s", sortName, v.title)
		}
		col = c
	}

	// The filter and sort run on the busy scheduler so a slow
	// recompute never lands ahead of a newer request.
	var visible []R
	done := make(chan struct{})
	sched := busy.NewScheduler[[]R](0, func() {
		fmt.Fprintln(os.Stderr, "recomputing...")
	})
	sched.Schedule(func() []R {
		filtered := table.Apply(rows, preds...)
		return table.Sort(filtered, col, rev, v.cell)
	}, func(out []R) {
		visible = out
		close(done)
	})
	<-done

	if *exportFmt != "" {
		records := make([]export.Record, len(visible))
		for i, r := range visible {
			records[i] = v.record(r)
		}
		return writeExport(records, v.title)
	}

	pag := table.NewPaginator(visible, pageSize)
	pag.SetActivePage(p.Page())

	if len(visible) == 0 {
		fmt.Println("No data")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(v.headers, "\t"))
	for _, r := range pag.Page() {
		cells := make([]string, len(v.headers))
		for i := range v.headers {
			cells[i] = cellText(v.cell(r, C(i)))
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("page %d of %d, %s\n",
		pag.ActivePage()+1, pag.PageCount(), derive.Pluralize(len(visible), v.title))
	return nil
}

func cellText(c table.Cell) string {
	switch c.Kind {
	case table.KindNumber:
		return trimFloat(c.Num)
	case table.KindTime:
		if c.T.IsZero() {
			return "N/A"
		}
		return c.T.Format("Jan 2, 2006")
	default:
		return c.Str
	}
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func writeExport(records []export.Record, title string) error {
	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch *exportFmt {
	case "csv":
		_, err := io.WriteString(out, export.CSV(records))
		return err
	case "markdown":
		_, err := io.WriteString(out, export.Markdown(records, title))
		return err
	case "json":
		s, err := export.JSON(records)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, s)
		return err
	case "xlsx":
		f, err := export.XLSX(records, title)
		if err != nil {
			return err
		}
		if *outPath == "" {
			return fmt.Errorf("xlsx export requires -out")
		}
		return f.Write(out)
	default:
		return fmt.Errorf("unknown export format %q", *exportFmt)
	}
}

func runOrders(ctx context.Context, api *northwind.API, p *params.Builder, pageSize int) error {
	var (
		orders []model.Order
		err    error
	)
	switch {
	case *customerID != "":
		if _, cerr := api.Customer(ctx, *customerID); cerr != nil {
			if notFound(cerr) {
				fmt.Printf("customer %s not found\n", *customerID)
				return nil
			}
			return cerr
		}
		orders, err = api.CustomerOrders(ctx, *customerID)
	case *employeeID != 0:
		if _, eerr := api.Employee(ctx, *employeeID); eerr != nil {
			if notFound(eerr) {
				fmt.Printf("employee %d not found\n", *employeeID)
				return nil
			}
			return eerr
		}
		orders, err = api.EmployeeOrders(ctx, *employeeID)
	default:
		orders, err = api.Orders(ctx)
	}
	if err != nil {
		return err
	}
	employees, err := api.Employees(ctx)
	if err != nil {
		return err
	}

	rows, _ := derive.OrderRows(orders, employees)
	f := p.Filters()
	preds := []table.Predicate[derive.OrderRow]{
		table.TextPredicate(f.Text, derive.OrderRow.SearchText),
		table.CountryPredicate(f.Country, func(r derive.OrderRow) string { return r.ShipCountry }),
		table.YearPredicate(f.Year, func(r derive.OrderRow) time.Time { return r.OrderDateT }),
	}
	return render(rows, view[derive.OrderRow, derive.OrderCol]{
		title:   "order",
		headers: []string{"ID", "Customer", "Employee", "Order Date", "Shipped Date", "Required Date", "Freight", "Ship Name", "Address"},
		cols: map[string]derive.OrderCol{
			"id":           derive.OrderColID,
			"customer":     derive.OrderColCustomer,
			"employee":     derive.OrderColEmployee,
			"orderDate":    derive.OrderColOrderDate,
			"shippedDate":  derive.OrderColShippedDate,
			"requiredDate": derive.OrderColRequiredDate,
			"freight":      derive.OrderColFreight,
			"shipName":     derive.OrderColShipName,
			"address":      derive.OrderColAddress,
		},
		none:   derive.OrderColNone,
		cell:   derive.OrderRow.Cell,
		record: derive.OrderRow.Export,
	}, p, pageSize, preds...)
}

func runCustomers(ctx context.Context, api *northwind.API, p *params.Builder, pageSize int) error {
	customers, err := api.Customers(ctx)
	if err != nil {
		return err
	}
	rows := derive.CustomerRows(customers)
	f := p.Filters()
	preds := []table.Predicate[derive.CustomerRow]{
		table.TextPredicate(f.Text, derive.CustomerRow.SearchText),
		table.CountryPredicate(f.Country, func(r derive.CustomerRow) string { return r.Country }),
	}
	return render(rows, view[derive.CustomerRow, derive.CustomerCol]{
		title:   "customer",
		headers: []string{"ID", "Company", "Contact", "Title", "Address", "Phone", "Fax"},
		cols: map[string]derive.CustomerCol{
			"id":           derive.CustomerColID,
			"company":      derive.CustomerColCompany,
			"contactName":  derive.CustomerColContactName,
			"contactTitle": derive.CustomerColContactTitle,
			"address":      derive.CustomerColAddress,
			"phone":        derive.CustomerColPhone,
			"fax":          derive.CustomerColFax,
		},
		none:   derive.CustomerColNone,
		cell:   derive.CustomerRow.Cell,
		record: derive.CustomerRow.Export,
	}, p, pageSize, preds...)
}

func runEmployees(ctx context.Context, api *northwind.API, p *params.Builder, pageSize int) error {
	employees, err := api.Employees(ctx)
	if err != nil {
		return err
	}
	rows := derive.EmployeeRows(employees)
	f := p.Filters()
	preds := []table.Predicate[derive.EmployeeRow]{
		table.TextPredicate(f.Text, derive.EmployeeRow.SearchText),
		table.CountryPredicate(f.Country, func(r derive.EmployeeRow) string { return r.Country }),
	}
	return render(rows, view[derive.EmployeeRow, derive.EmployeeCol]{
		title:   "employee",
		headers: []string{"ID", "Name", "Title", "City", "Country", "Phone", "Birth Date", "Reports To"},
		cols: map[string]derive.EmployeeCol{
			"id":        derive.EmployeeColID,
			"name":      derive.EmployeeColName,
			"title":     derive.EmployeeColTitle,
			"city":      derive.EmployeeColCity,
			"country":   derive.EmployeeColCountry,
			"phone":     derive.EmployeeColPhone,
			"birthDate": derive.EmployeeColBirthDate,
			"reportsTo": derive.EmployeeColReportsTo,
		},
		none:   derive.EmployeeColNone,
		cell:   derive.EmployeeRow.Cell,
		record: derive.EmployeeRow.Export,
	}, p, pageSize, preds...)
}

func runSuppliers(ctx context.Context, api *northwind.API, p *params.Builder, pageSize int) error {
	suppliers, err := api.Suppliers(ctx)
	if err != nil {
		return err
	}
	rows := derive.SupplierRows(suppliers)
	f := p.Filters()
	preds := []table.Predicate[derive.SupplierRow]{
		table.TextPredicate(f.Text, derive.SupplierRow.SearchText),
		table.CountryPredicate(f.Country, func(r derive.SupplierRow) string { return r.Country }),
	}
	return render(rows, view[derive.SupplierRow, derive.SupplierCol]{
		title:   "supplier",
		headers: []string{"ID", "Company", "Contact", "Title", "Address", "Phone"},
		cols: map[string]derive.SupplierCol{
			"id":           derive.SupplierColID,
			"company":      derive.SupplierColCompany,
			"contactName":  derive.SupplierColContactName,
			"contactTitle": derive.SupplierColContactTitle,
			"address":      derive.SupplierColAddress,
			"phone":        derive.SupplierColPhone,
		},
		none:   derive.SupplierColNone,
		cell:   derive.SupplierRow.Cell,
		record: derive.SupplierRow.Export,
	}, p, pageSize, preds...)
}

func runProducts(ctx context.Context, api *northwind.API, p *params.Builder, pageSize int) error {
	products, err := api.Products(ctx)
	if err != nil {
		return err
	}
	if *supplierID != 0 {
		products = derive.FilterProductsBySupplier(products, *supplierID)
	}
	if *categoryID != 0 {
		products = derive.FilterProductsByCategory(products, *categoryID)
	}
	categories, err := api.Categories(ctx)
	if err != nil {
		return err
	}
	suppliers, err := api.Suppliers(ctx)
	if err != nil {
		return err
	}

	rows := derive.ProductRows(products, categories, suppliers)
	f := p.Filters()
	preds := []table.Predicate[derive.ProductRow]{
		table.TextPredicate(f.Text, derive.ProductRow.SearchText),
		table.TriStatePredicate(f.Discontinued, func(r derive.ProductRow) bool { return r.Discontinued }),
	}
	return render(rows, view[derive.ProductRow, derive.ProductCol]{
		title:   "product",
		headers: []string{"ID", "Name", "Category", "Qty / Unit", "Unit Price", "In Stock", "On Order", "Reorder Level", "Discontinued"},
		cols: map[string]derive.ProductCol{
			"id":              derive.ProductColID,
			"name":            derive.ProductColName,
			"category":        derive.ProductColCategory,
			"quantityPerUnit": derive.ProductColQuantityPerUnit,
			"unitPrice":       derive.ProductColUnitPrice,
			"unitsInStock":    derive.ProductColUnitsInStock,
			"unitsOnOrder":    derive.ProductColUnitsOnOrder,
			"reorderLevel":    derive.ProductColReorderLevel,
			"discontinued":    derive.ProductColDiscontinued,
		},
		none:   derive.ProductColNone,
		cell:   derive.ProductRow.Cell,
		record: derive.ProductRow.Export,
	}, p, pageSize, preds...)
}

func runOrderDetails(ctx context.Context, api *northwind.API, p *params.Builder, pageSize int) error {
	if *orderID == 0 {
		return fmt.Errorf("-entity order-details requires -order")
	}
	if _, err := api.Order(ctx, *orderID); err != nil {
		if notFound(err) {
			fmt.Printf("order %d not found\n", *orderID)
			return nil
		}
		return err
	}
	details, err := api.OrderDetails(ctx, *orderID)
	if err != nil {
		return err
	}
	products, err := api.OrderProducts(ctx, *orderID)
	if err != nil {
		return err
	}

	rows := derive.OrderDetailRows(details, products)
	err = render(rows, view[derive.OrderDetailRow, derive.DetailCol]{
		title:   "order detail",
		headers: []string{"Product", "Unit Price", "Quantity", "Discount", "Total"},
		cols: map[string]derive.DetailCol{
			"product":   derive.DetailColProduct,
			"unitPrice": derive.DetailColUnitPrice,
			"quantity":  derive.DetailColQuantity,
			"discount":  derive.DetailColDiscount,
			"total":     derive.DetailColTotal,
		},
		none:   derive.DetailColNone,
		cell:   derive.OrderDetailRow.Cell,
		record: derive.OrderDetailRow.Export,
	}, p, pageSize)
	if err != nil {
		return err
	}
	if *exportFmt == "" && len(rows) > 0 {
		fmt.Printf("order total: %.2f\n", derive.OrderTotal(rows))
	}
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
