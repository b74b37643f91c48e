package main

import (
	"fmt"
	"os"

	"polar-backend/internal/models"
	"polar-backend/internal/services"
	"polar-backend/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportOut    string
	exportStatus string
	exportQuery  string
)

// exportCmd renders a report from the built-in data set without starting the server
var exportCmd = &cobra.Command{
	Use:       "export shipments|equipment|planning",
	Short:     "Write a CSV report from the built-in data set",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"shipments", "equipment", "planning"},
	RunE:      runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportStatus, "status", "", "Planning: only shipments with this status")
	exportCmd.Flags().StringVarP(&exportQuery, "query", "q", "", "Planning: search text")
}

func runExport(cmd *cobra.Command, args []string) error {
	query := services.NewQueryService(store.New(store.DefaultSeed()))
	reports := services.NewReportService(query, "", zap.NewNop())

	var (
		data []byte
		err  error
	)
	switch args[0] {
	case "shipments":
		data, err = reports.ShipmentsCSV()
	case "equipment":
		data, err = reports.EquipmentCSV()
	case "planning":
		data, err = reports.PlanningCSV(models.ShipmentFilter{
			Search: exportQuery,
			Status: models.ShipmentStatus(exportStatus),
		})
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", args[0], err)
	}

	if exportOut == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(exportOut, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", exportOut, len(data))
	return nil
}
