// Command chartgen renders the browser's charts as standalone SVG:
// monthly order counts, per-country bar charts, and world-map
// choropleths.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"nwb/internal/chart"
	"nwb/internal/config"
	"nwb/internal/derive"
	"nwb/internal/fetch"
	"nwb/internal/metrics"
	"nwb/internal/model"
	"nwb/internal/northwind"
)

var (
	configPath = flag.String("config", "", "path to YAML config")
	chartKind  = flag.String("chart", "monthly", "monthly|bar|worldmap")
	entity     = flag.String("entity", "orders", "orders|customers|suppliers")
	year       = flag.Int("year", 0, "restrict monthly counts to one year, 0 for all")
	employeeID = flag.Int("employee", 0, "scope orders to one employee")
	width      = flag.Float64("width", 0, "chart width, 0 for the configured default")
	height     = flag.Float64("height", 0, "chart height, 0 for the configured default")
	outPath    = flag.String("out", "", "output SVG file, stdout when empty")

	metricsAddr = flag.String("metrics", "", "serve prometheus metrics on this address")
)

// entityHues matches each view's accent color.
var entityHues = map[string]int{
	"orders":    216,
	"customers": 30,
	"suppliers": 120,
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *width > 0 {
		cfg.Charts.Width = *width
	}
	if *height > 0 {
		cfg.Charts.Height = *height
	}

	reg := metrics.NewRegistry()
	if *metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", reg.Handler())
			log.Fatal(http.ListenAndServe(*metricsAddr, mux))
		}()
	}

	store := fetch.NewMemoryStore()
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

	svg, err := render(ctx, api, cfg, reg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if *outPath == "" {
		fmt.Println(svg)
		return
	}
	if err := os.WriteFile(*outPath, []byte(svg), 0o644); err != nil {
		log.Fatalf("write %s: %v", *outPath, err)
	}
	log.Printf("wrote %s", *outPath)
}

func render(ctx context.Context, api *northwind.API, cfg config.Config, reg *metrics.Registry) (string, error) {
	hue, ok := entityHues[*entity]
	if !ok {
		return "", fmt.Errorf("unknown entity %q", *entity)
	}

	switch *chartKind {
	case "monthly":
		return renderMonthly(ctx, api, cfg)
	case "bar":
		counts, max, err := countryCounts(ctx, api)
		if err != nil {
			return "", err
		}
		c := chart.NewBarChart(cfg.Charts.Width, cfg.Charts.Height, hue, *entity)
		c.SetData(counts, max)
		return c.SVG(), nil
	case "worldmap":
		counts, max, err := countryCounts(ctx, api)
		if err != nil {
			return "", err
		}
		fc, err := loadGeometry(ctx, cfg, reg)
		if err != nil {
			return "", err
		}
		w := chart.NewWorldMap(cfg.Charts.Width, cfg.Charts.Height, hue, *entity)
		if err := w.SetGeometry(fc); err != nil {
			return "", err
		}
		w.SetData(counts, max)
		return w.SVG(), nil
	default:
		return "", fmt.Errorf("unknown chart %q", *chartKind)
	}
}

func renderMonthly(ctx context.Context, api *northwind.API, cfg config.Config) (string, error) {
	if *entity != "orders" {
		return "", fmt.Errorf("the monthly chart only covers orders")
	}
	orders, err := fetchOrders(ctx, api)
	if err != nil {
		return "", err
	}
	employees, err := api.Employees(ctx)
	if err != nil {
		return "", err
	}
	rows, _ := derive.OrderRows(orders, employees)

	buckets, _, _ := chart.MonthCounts(rows,
		func(r derive.OrderRow) time.Time { return r.OrderDateT }, *year)
	c := chart.NewMonthlyChart(cfg.Charts.Width, cfg.Charts.Height, "orders")
	c.SetData(buckets)
	return c.SVG(), nil
}

func countryCounts(ctx context.Context, api *northwind.API) (map[string]int, int, error) {
	switch *entity {
	case "orders":
		orders, err := fetchOrders(ctx, api)
		if err != nil {
			return nil, 0, err
		}
		counts, max := chart.CountryCounts(orders,
			func(o model.Order) string { return o.ShipCountry })
		return counts, max, nil
	case "customers":
		customers, err := api.Customers(ctx)
		if err != nil {
			return nil, 0, err
		}
		counts, max := chart.CountryCounts(customers,
			func(c model.Customer) string { return c.Country })
		return counts, max, nil
	case "suppliers":
		suppliers, err := api.Suppliers(ctx)
		if err != nil {
			return nil, 0, err
		}
		counts, max := chart.CountryCounts(suppliers,
			func(s model.Supplier) string { return s.Country })
		return counts, max, nil
	default:
		return nil, 0, fmt.Errorf("unknown entity %q", *entity)
	}
}

func fetchOrders(ctx context.Context, api *northwind.API) ([]model.Order, error) {
	if *employeeID != 0 {
		return api.EmployeeOrders(ctx, *employeeID)
	}
	return api.Orders(ctx)
}

// loadGeometry pulls the world outlines through a zero-base client so
// the absolute URL passes straight through the same cache and retry
// path as the API calls.
func loadGeometry(ctx context.Context, cfg config.Config, reg *metrics.Registry) (chart.FeatureCollection, error) {
	c := fetch.NewClient(fetch.Config{
		Retries:    cfg.Fetch.MaxRetries,
		HTTPClient: &http.Client{Timeout: time.Duration(cfg.API.TimeoutSec) * time.Second},
		Metrics:    reg,
	})
	var fc chart.FeatureCollection
	if err := c.GetJSON(ctx, cfg.Charts.GeoJSONURL, &fc); err != nil {
		return chart.FeatureCollection{}, fmt.Errorf("load geometry: %w", err)
	}
	return fc, nil
}
