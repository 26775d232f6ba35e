package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"go-grocer-tab/internal/config"
	"go-grocer-tab/internal/gateway"
	"go-grocer-tab/internal/model"
	"go-grocer-tab/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const usage = `Usage: grocer [flags] <command>

Commands:
  stats                                  store overview
  products [search]                      list or search the catalog
  add-product <name> <price> [category] [stock]
  del-product <id>
  customers [search]                     list or search accounts
  add-customer <name>
  tab <customer-id>                      show a customer's tab
  tab <customer-id> add <product-id> <qty>
  tab <customer-id> settle
`

func main() {
	storeURL := pflag.String("store", "", "backend URL (default from STORE_URL)")
	username := pflag.String("user", os.Getenv("GROCER_USER"), "login username")
	password := pflag.String("pass", os.Getenv("GROCER_PASS"), "login password")
	verbose := pflag.BoolP("verbose", "v", false, "log gateway activity")
	pflag.Parse()

	if !*verbose {
		logrus.SetLevel(logrus.WarnLevel)
	}

	cfg := config.Load()
	if *storeURL == "" {
		*storeURL = cfg.StoreURL
	}

	args := pflag.Args()
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	hub := gateway.NewHub()
	go hub.Run()
	gw := gateway.New(gateway.NewClient(*storeURL, nil), hub)

	auth := service.NewAuthService(gw)
	inventory := service.NewInventoryService(gw)
	customers := service.NewCustomerService(gw)
	tabs := service.NewTabService(gw)
	dashboard := service.NewDashboardService(gw)

	ctx := context.Background()

	// Every command requires a logged-in session.
	if _, err := auth.Login(ctx, *username, *password); err != nil {
		fail(err)
	}

	var err error
	switch args[0] {
	case "stats":
		err = printStats(ctx, dashboard)
	case "products":
		term := ""
		if len(args) > 1 {
			term = args[1]
		}
		err = printProducts(ctx, inventory, term)
	case "add-product":
		err = addProduct(ctx, inventory, args[1:])
	case "del-product":
		if len(args) != 2 {
			err = fmt.Errorf("usage: grocer del-product <id>")
			break
		}
		err = inventory.Delete(ctx, args[1])
	case "customers":
		term := ""
		if len(args) > 1 {
			term = args[1]
		}
		err = printCustomers(ctx, customers, term)
	case "add-customer":
		if len(args) != 2 {
			err = fmt.Errorf("usage: grocer add-customer <name>")
			break
		}
		_, err = customers.Create(ctx, args[1])
	case "tab":
		err = runTab(ctx, customers, tabs, args[1:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fail(err)
	}
}

func printStats(ctx context.Context, dashboard service.DashboardService) error {
	stats, err := dashboard.GetStats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Customers:        %d\n", stats.TotalCustomers)
	fmt.Printf("Products:         %d\n", stats.TotalProducts)
	fmt.Printf("Inventory value:  $%.2f\n", stats.InventoryValue)
	fmt.Printf("Outstanding:      $%.2f\n", stats.TotalOutstanding)

	active, err := dashboard.RecentActivity(ctx, 5)
	if err != nil {
		return err
	}
	if len(active) > 0 {
		fmt.Println("\nOpen tabs:")
		for _, c := range active {
			fmt.Printf("  %s owes $%.2f\n", c.Name, c.TotalDue)
		}
	}
	return nil
}

func printProducts(ctx context.Context, inventory service.InventoryService, term string) error {
	products, err := inventory.Search(ctx, term)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t$%.2f\t%d\n", p.ID, p.Name, p.Category, p.Price, p.Stock)
	}
	return w.Flush()
}

func addProduct(ctx context.Context, inventory service.InventoryService, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: grocer add-product <name> <price> [category] [stock]")
	}
	price, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid price %q", args[1])
	}
	product := model.Product{Name: args[0], Price: price}
	if len(args) > 2 {
		product.Category = args[2]
	}
	if len(args) > 3 {
		stock, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("invalid stock %q", args[3])
		}
		product.Stock = stock
	}
	created, err := inventory.Create(ctx, product)
	if err != nil {
		return err
	}
	fmt.Printf("added %s (%s)\n", created.Name, created.ID)
	return nil
}

func printCustomers(ctx context.Context, customers service.CustomerService, term string) error {
	list, err := customers.Search(ctx, term)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTAB\tDUE")
	for _, c := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t$%.2f\n", c.ID, c.Name, c.TabState(), c.TotalDue)
	}
	return w.Flush()
}

func runTab(ctx context.Context, customers service.CustomerService, tabs service.TabService, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: grocer tab <customer-id> [add <product-id> <qty> | settle]")
	}
	customerID := args[0]

	if len(args) == 1 {
		customer, err := customers.Get(ctx, customerID)
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s), $%.2f due\n", customer.Name, customer.TabState(), customer.TotalDue)
		for _, t := range customer.Transactions {
			fmt.Printf("  %s  %-20s x%d  $%.2f\n", t.Date.Format("2006-01-02"), t.ProductName, t.Quantity, t.Total)
		}
		return nil
	}

	switch args[1] {
	case "add":
		if len(args) != 4 {
			return fmt.Errorf("usage: grocer tab <customer-id> add <product-id> <qty>")
		}
		qty, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[3])
		}
		tx, err := tabs.AddItem(ctx, customerID, args[2], qty)
		if err != nil {
			return err
		}
		fmt.Printf("added %s x%d ($%.2f) to tab\n", tx.ProductName, tx.Quantity, tx.Total)
		return nil
	case "settle":
		if err := tabs.Settle(ctx, customerID); err != nil {
			return err
		}
		fmt.Println("tab settled, account closed")
		return nil
	default:
		return fmt.Errorf("unknown tab action %q", args[1])
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
