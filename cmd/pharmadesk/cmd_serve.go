package main

import (
	"github.com/spf13/cobra"

	"github.com/pharmadesk/pharmadesk/internal/server"
)

// pharmadesk serve — run the local dashboard server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the local dashboard (JSON views, /metrics, websocket notifications)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}
