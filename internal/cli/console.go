package cli

import (
	"fmt"

	"github.com/rogerio-castellano/inventory-manager/internal/auth"
	"github.com/rogerio-castellano/inventory-manager/internal/console"
	"github.com/rogerio-castellano/inventory-manager/internal/logger"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
	"github.com/spf13/cobra"
)

func newConsoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Open the interactive inventory console",
		Long:  "Log in as admin or user and manage the products from the terminal. Changes are lost on exit.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			// Log lines would interleave with the prompts, so they go to stderr.
			log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: cmd.ErrOrStderr()})

			store := newStore(cfg)
			store.Subscribe(logEvents(log))

			users, err := repo.NewSeededUserRepository(repo.DefaultAccounts)
			if err != nil {
				return fmt.Errorf("seeding accounts: %w", err)
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			session := console.NewSession(console.Deps{
				Products:      store,
				Metrics:       store,
				Authenticator: auth.NewCredentialAuthenticator(users),
				Log:           log,
			}, cmd.InOrStdin(), cmd.OutOrStdout())
			return session.Run(ctx)
		},
	}
}
