package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pharmadesk/pharmadesk/app/services"
	"github.com/pharmadesk/pharmadesk/config"
	"github.com/pharmadesk/pharmadesk/pkg/report"
)

var reportOut string

// pharmadesk report:monthly — export the monthly sales report as PDF.
var reportMonthlyCmd = &cobra.Command{
	Use:   "report:monthly",
	Short: "Export the monthly sales report as a PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, _, err := requireAPI()
		if err != nil {
			return err
		}

		sales, err := services.NewAdminService(api).MonthlySales(cmd.Context())
		if err != nil {
			return err
		}

		year := time.Now().Year()
		if err := report.MonthlyReport(sales.Totals, year, config.Currency(), reportOut); err != nil {
			return err
		}

		fmt.Printf("Wrote %s\n", reportOut)
		return nil
	},
}

func init() {
	reportMonthlyCmd.Flags().StringVar(&reportOut, "out", "monthly_sales_report.pdf", "output file")
}
