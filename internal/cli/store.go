package cli

import (
	"fmt"

	"github.com/rogerio-castellano/inventory-manager/internal/config"
	"github.com/rogerio-castellano/inventory-manager/internal/logger"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

// newStore builds the product store described by cfg. Nothing survives the process.
func newStore(cfg *config.Config) *repo.ProductStore {
	store := repo.NewEmptyProductStore()
	if cfg.Inventory.SeedSample {
		store = repo.NewProductStore()
	}
	store.SetLowStockThreshold(cfg.Inventory.LowStockThreshold)
	return store
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *logger.Logger {
	return logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
}

// logEvents logs every store change at debug level.
func logEvents(log *logger.Logger) repo.Listener {
	return func(ev repo.Event) {
		log.Debug().
			Str("kind", string(ev.Kind)).
			Int("product_id", ev.ProductID).
			Int("total_products", ev.Metrics.TotalProducts).
			Int("low_stock_count", ev.Metrics.LowStockCount).
			Msg("store event")
	}
}
