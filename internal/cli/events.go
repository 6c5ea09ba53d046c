package cli

import (
	"errors"
	"fmt"

	"github.com/rogerio-castellano/inventory-manager/internal/config"
	"github.com/rogerio-castellano/inventory-manager/internal/redissvc"
	"github.com/spf13/cobra"
)

func newEventsCmd() *cobra.Command {
	var count int64

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Show the latest store events published to Redis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cfg.Redis.Enabled() {
				return fmt.Errorf("%w for key: REDIS_ADDR", config.ErrMissingConfig)
			}
			if count <= 0 || count > redissvc.EventsLogSize {
				return errors.New("--count must be between 1 and 100")
			}

			rdb, err := redissvc.Connect(cmd.Context(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
			if err != nil {
				return err
			}
			defer rdb.Close()

			events, err := redissvc.NewRedisService(rdb, newLogger(cfg)).RecentEvents(cmd.Context(), count)
			if err != nil {
				return err
			}
			for _, ev := range events {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-18s id=%d total=%d low=%d\n",
					ev.At.Format("2006-01-02 15:04:05"), ev.Kind, ev.ProductID,
					ev.Metrics.TotalProducts, ev.Metrics.LowStockCount)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&count, "count", 20, "Number of events to show")
	return cmd
}
