package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pharmadesk/pharmadesk/app/services"
	"github.com/pharmadesk/pharmadesk/config"
	"github.com/pharmadesk/pharmadesk/pkg/session"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pharmadesk",
	Short: "pharmadesk — pharmacy inventory admin console",
	Long: "Pharmadesk is the admin console for the pharmacy inventory API:\n" +
		"browse and edit products and orders, watch expiry dates, export\n" +
		"sales reports, or run the local dashboard with 'serve'.",
	SilenceUsage: true,
}

func init() {
	// Auth
	rootCmd.AddCommand(signinCmd)
	rootCmd.AddCommand(signoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(profileUpdateCmd)

	// Products
	rootCmd.AddCommand(productsListCmd)
	rootCmd.AddCommand(productsAddCmd)
	rootCmd.AddCommand(productsUpdateCmd)
	rootCmd.AddCommand(productsDeleteCmd)
	rootCmd.AddCommand(expiringCmd)
	rootCmd.AddCommand(expiredCmd)

	// Orders
	rootCmd.AddCommand(ordersListCmd)
	rootCmd.AddCommand(ordersRecentCmd)
	rootCmd.AddCommand(ordersAddCmd)

	// Dashboard & reports
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(reportMonthlyCmd)

	// Local dashboard server
	rootCmd.AddCommand(serveCmd)
}

// sessionStore opens the persisted session under the configured path.
func sessionStore() *session.Store {
	return session.NewStore(config.SessionFile())
}

// requireAPI is the CLI's route guard: it restores the persisted
// session and refuses to proceed when there is none.
func requireAPI() (*services.Client, session.Session, error) {
	sess, err := sessionStore().Require()
	if err != nil {
		return nil, session.Session{}, err
	}
	return services.NewClient(sess), sess, nil
}

// money formats an amount with the configured currency symbol.
func money(v float64) string {
	return fmt.Sprintf("%s%.2f", config.Currency(), v)
}
