package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pharmadesk/pharmadesk/app/models"
	"github.com/pharmadesk/pharmadesk/app/services"
	"github.com/pharmadesk/pharmadesk/app/views"
	"github.com/pharmadesk/pharmadesk/config"
	"github.com/pharmadesk/pharmadesk/pkg/report"
)

var orderSortFlag string

// pharmadesk orders:list — the orders table.
var ordersListCmd = &cobra.Command{
	Use:   "orders:list",
	Short: "List orders (sort: newest, oldest, highest, lowest)",
	RunE: func(cmd *cobra.Command, args []string) error {
		opt, err := views.ParseOrderSort(orderSortFlag)
		if err != nil {
			return err
		}

		api, _, err := requireAPI()
		if err != nil {
			return err
		}
		orders, err := services.NewOrderService(api).List(cmd.Context())
		if err != nil {
			return err
		}

		printOrders(views.SortOrders(orders, opt))

		summary := views.Summarize(orders)
		fmt.Printf("\nOrders: %d    Revenue: %s\n", summary.Count, money(summary.Revenue))
		return nil
	},
}

// pharmadesk orders:recent — the dashboard's latest sales.
var ordersRecentCmd = &cobra.Command{
	Use:   "orders:recent",
	Short: "List recent orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, _, err := requireAPI()
		if err != nil {
			return err
		}
		orders, err := services.NewOrderService(api).Recent(cmd.Context())
		if err != nil {
			return err
		}
		printOrders(orders)
		return nil
	},
}

var (
	orderCustomer string
	orderItems    []string
)

// pharmadesk orders:add — place an order and print the receipt.
var ordersAddCmd = &cobra.Command{
	Use:   "orders:add",
	Short: "Place an order (--item <productID>:<qty>, repeatable)",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := models.OrderInput{Customer: orderCustomer}
		for _, raw := range orderItems {
			item, err := parseItem(raw)
			if err != nil {
				return err
			}
			in.Items = append(in.Items, item)
		}

		api, _, err := requireAPI()
		if err != nil {
			return err
		}
		order, err := services.NewOrderService(api).Create(cmd.Context(), in)
		if err != nil {
			return err
		}

		fmt.Printf("Order %s placed. Total %s\n\n", order.ID, money(order.TotalPrice))
		return buildReceipt(order).Write(os.Stdout)
	},
}

// parseItem splits "productID:qty"; a bare id means quantity 1.
func parseItem(raw string) (models.OrderItemInput, error) {
	id, qtyStr, found := strings.Cut(raw, ":")
	if !found {
		return models.OrderItemInput{ProductID: raw, Quantity: 1}, nil
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil || qty < 1 {
		return models.OrderItemInput{}, fmt.Errorf("invalid item %q: quantity must be a positive integer", raw)
	}
	return models.OrderItemInput{ProductID: id, Quantity: qty}, nil
}

// buildReceipt maps the server's canonical order onto the printable
// slip, so totals are the server's figures, not the form's.
func buildReceipt(order models.Order) report.Receipt {
	r := report.Receipt{
		Store:     "PharmaDesk",
		Customer:  order.Customer,
		CreatedAt: order.CreatedAt,
		Total:     order.TotalPrice,
		Currency:  config.Currency(),
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	for _, item := range order.Items {
		r.Items = append(r.Items, report.ReceiptLine{
			Name:     item.Product.Name,
			Quantity: item.Quantity,
			Price:    item.Product.Price,
			Total:    item.Total,
		})
	}
	return r
}

func printOrders(orders []models.Order) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tCUSTOMER\tITEMS\tTOTAL\tPLACED")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			o.ID, o.Customer, len(o.Items), money(o.TotalPrice),
			o.CreatedAt.Format("02 Jan 2006 15:04"))
	}
	w.Flush()
}

func init() {
	ordersListCmd.Flags().StringVar(&orderSortFlag, "sort", "", "sort option")

	ordersAddCmd.Flags().StringVar(&orderCustomer, "customer", "", "customer name")
	ordersAddCmd.Flags().StringArrayVar(&orderItems, "item", nil, "productID:qty (repeatable)")
}
