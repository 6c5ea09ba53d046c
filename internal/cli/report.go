package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rogerio-castellano/inventory-manager/internal/console"
	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	var (
		threshold  int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the low-stock report for the sample inventory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store := newStore(cfg)
			if cmd.Flags().Changed("threshold") {
				store.SetLowStockThreshold(threshold)
			}

			report := store.LowStockReport()
			if jsonOutput {
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding report: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Text())
			return nil
		},
	}

	cmd.Flags().IntVar(&threshold, "threshold", 0, "Low-stock threshold (negative values count as 0)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newDashboardCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print the dashboard figures for the sample inventory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			m, err := newStore(cfg).GetDashboardMetrics()
			if err != nil {
				return fmt.Errorf("dashboard metrics: %w", err)
			}

			if jsonOutput {
				data, err := json.MarshalIndent(m, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding metrics: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), console.RenderDashboard(m))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
