package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the polar-backend binary; run bare it serves the API
var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Refrigerated rail freight operations desk",
	Long: `polar-backend serves the operations desk API: shipments, flights,
equipment, the activity log and CSV/PDF reports.

Available subcommands:
  serve  - Run the HTTP API
  export - Write a CSV report from the built-in data set`,
	SilenceUsage: true,
}

func init() {
	rootCmd.RunE = runServe
	rootCmd.PersistentFlags().IntVar(&servePort, "port", 0, "HTTP port (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
