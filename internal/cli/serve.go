package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rogerio-castellano/inventory-manager/internal/auth"
	api "github.com/rogerio-castellano/inventory-manager/internal/http"
	"github.com/rogerio-castellano/inventory-manager/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-manager/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-manager/internal/metrics"
	"github.com/rogerio-castellano/inventory-manager/internal/redissvc"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long:  "Serve the inventory over HTTP until SIGINT or SIGTERM. Requires JWT_SECRET.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			log := newLogger(cfg)

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			store := newStore(cfg)
			if m, err := store.GetDashboardMetrics(); err == nil {
				metrics.SetGauges(m)
			}
			store.Subscribe(metrics.NewRecorder().Record)
			store.Subscribe(logEvents(log))

			if cfg.Redis.Enabled() {
				rdb, err := redissvc.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
				if err != nil {
					return err
				}
				defer rdb.Close()
				store.Subscribe(redissvc.NewRedisService(rdb, log).Listener())
				log.Info().Str("addr", cfg.Redis.Addr).Msg("publishing store events to redis")
			}

			users, err := repo.NewSeededUserRepository(repo.DefaultAccounts)
			if err != nil {
				return fmt.Errorf("seeding accounts: %w", err)
			}
			tokens := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL)

			limiter := rl.New(cfg.Login.RatePerSecond, cfg.Login.Burst)
			go limiter.StartVisitorCleanupLoop(ctx, time.Minute)

			server := handlers.NewServer(handlers.Deps{
				Products:      store,
				Metrics:       store,
				Authenticator: auth.NewCredentialAuthenticator(users),
				Tokens:        tokens,
				Log:           log,
			})
			srv := &http.Server{
				Addr: cfg.HTTP.Addr(),
				Handler: api.NewRouter(api.RouterDeps{
					Server:       server,
					Tokens:       tokens,
					LoginLimiter: limiter,
					Metrics:      metrics.Handler(),
					Log:          log,
				}),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info().Str("addr", srv.Addr).Msg("http server listening")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			select {
			case <-ctx.Done():
				log.Info().Msg("shutting down")
			case err := <-errCh:
				return fmt.Errorf("http server: %w", err)
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("http shutdown: %w", err)
			}
			log.Info().Msg("server stopped")
			return nil
		},
	}
}
