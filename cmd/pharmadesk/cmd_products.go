package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pharmadesk/pharmadesk/app/models"
	"github.com/pharmadesk/pharmadesk/app/services"
	"github.com/pharmadesk/pharmadesk/app/views"
)

var productSortFlag string

// pharmadesk products:list — the product table.
var productsListCmd = &cobra.Command{
	Use:   "products:list",
	Short: "List products (sort: alphabetical, newest, oldest, lowStock)",
	RunE: func(cmd *cobra.Command, args []string) error {
		opt, err := views.ParseProductSort(productSortFlag)
		if err != nil {
			return err
		}

		api, _, err := requireAPI()
		if err != nil {
			return err
		}
		products, err := services.NewProductService(api).List(cmd.Context())
		if err != nil {
			return err
		}

		printProducts(views.SortProducts(products, opt))

		totals := views.Totals(products)
		fmt.Printf("\nTotal units: %d    Inventory value: %s\n", totals.Units, money(totals.Value))
		return nil
	},
}

var (
	addName     string
	addPrice    float64
	addQuantity int
	addExpiry   string
	addImage    string
)

// pharmadesk products:add — create a product (multipart, optional image).
var productsAddCmd = &cobra.Command{
	Use:   "products:add",
	Short: "Add a product to the catalogue",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, _, err := requireAPI()
		if err != nil {
			return err
		}

		created, err := services.NewProductService(api).Create(cmd.Context(), models.ProductInput{
			Name:       addName,
			Price:      addPrice,
			Quantity:   addQuantity,
			ExpiryDate: addExpiry,
			ImagePath:  addImage,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Added %q (id %s)\n", created.Name, created.ID)
		return nil
	},
}

var (
	updName     string
	updPrice    float64
	updQuantity int
	updExpiry   string
)

// pharmadesk products:update <id> — edit a product. Unset flags keep the
// current value, like the prefilled edit form.
var productsUpdateCmd = &cobra.Command{
	Use:   "products:update <id>",
	Short: "Update a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		api, _, err := requireAPI()
		if err != nil {
			return err
		}
		svc := services.NewProductService(api)

		products, err := svc.List(cmd.Context())
		if err != nil {
			return err
		}
		var current *models.Product
		for i := range products {
			if products[i].ID == id {
				current = &products[i]
				break
			}
		}
		if current == nil {
			return fmt.Errorf("no product with id %s", id)
		}

		in := models.ProductUpdate{
			Name:       current.Name,
			Price:      current.Price,
			Quantity:   current.Quantity,
			ExpiryDate: current.ExpiryDate,
			Image:      current.Image,
		}
		if cmd.Flags().Changed("name") {
			in.Name = updName
		}
		if cmd.Flags().Changed("price") {
			in.Price = updPrice
		}
		if cmd.Flags().Changed("quantity") {
			in.Quantity = updQuantity
		}
		if cmd.Flags().Changed("expiry") {
			t, err := time.Parse("2006-01-02", updExpiry)
			if err != nil {
				return fmt.Errorf("--expiry must be YYYY-MM-DD: %w", err)
			}
			in.ExpiryDate = t
		}

		updated, err := svc.Update(cmd.Context(), id, in)
		if err != nil {
			return err
		}

		fmt.Printf("Updated %q\n", updated.Name)
		printProducts(views.ReplaceByID(products, updated))
		return nil
	},
}

// pharmadesk products:delete <id>.
var productsDeleteCmd = &cobra.Command{
	Use:   "products:delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, _, err := requireAPI()
		if err != nil {
			return err
		}
		if err := services.NewProductService(api).Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil
	},
}

// pharmadesk products:expiring — the 30-day window, earliest first.
var expiringCmd = &cobra.Command{
	Use:   "products:expiring",
	Short: "List products expiring within 30 days",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, _, err := requireAPI()
		if err != nil {
			return err
		}
		products, err := services.NewProductService(api).List(cmd.Context())
		if err != nil {
			return err
		}

		soon := views.ExpiringSoon(products, time.Now())
		printProducts(soon)
		fmt.Printf("\nExpiring soon: %d\n", len(soon))
		return nil
	},
}

// pharmadesk products:expired.
var expiredCmd = &cobra.Command{
	Use:   "products:expired",
	Short: "List expired products",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, _, err := requireAPI()
		if err != nil {
			return err
		}
		products, err := services.NewProductService(api).List(cmd.Context())
		if err != nil {
			return err
		}

		expired := views.Expired(products, time.Now())
		printProducts(expired)
		fmt.Printf("\nExpired: %d\n", len(expired))
		return nil
	},
}

func printProducts(products []models.Product) {
	now := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tQTY\tEXPIRY\tSTATUS")
	for _, p := range products {
		expiry, status := "-", "-"
		if !p.ExpiryDate.IsZero() {
			expiry = p.ExpiryDate.Format("02 Jan 2006")
			status = views.DaysLeftLabel(views.DaysUntil(p.ExpiryDate, now))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			p.ID, p.Name, money(p.Price), p.Quantity, expiry, status)
	}
	w.Flush()
}

func init() {
	productsListCmd.Flags().StringVar(&productSortFlag, "sort", "", "sort option")

	productsAddCmd.Flags().StringVar(&addName, "name", "", "product name")
	productsAddCmd.Flags().Float64Var(&addPrice, "price", 0, "unit price")
	productsAddCmd.Flags().IntVar(&addQuantity, "quantity", 0, "units in stock")
	productsAddCmd.Flags().StringVar(&addExpiry, "expiry", "", "expiry date (YYYY-MM-DD)")
	productsAddCmd.Flags().StringVar(&addImage, "image", "", "path to product image")

	productsUpdateCmd.Flags().StringVar(&updName, "name", "", "product name")
	productsUpdateCmd.Flags().Float64Var(&updPrice, "price", 0, "unit price")
	productsUpdateCmd.Flags().IntVar(&updQuantity, "quantity", 0, "units in stock")
	productsUpdateCmd.Flags().StringVar(&updExpiry, "expiry", "", "expiry date (YYYY-MM-DD)")
}
