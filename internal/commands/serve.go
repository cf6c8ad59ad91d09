package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finvera/ledger-core/cmd/httpserver"
	"github.com/finvera/ledger-core/internal/bankfeed"
	"github.com/finvera/ledger-core/internal/middleware"
	"github.com/finvera/ledger-core/pkg/configpkg"
	"github.com/finvera/ledger-core/pkg/dbpkg"
)

func newServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the ledger API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "./configs", "directory containing app.env")

	return cmd
}

func runServe(configPath string) error {
	config, err := configpkg.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := middleware.CreateLogger(config)

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	server, err := httpserver.New(db, logger, config)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	if config.BankFeedURL != "" {
		source := bankfeed.NewHTTPSource(config.BankFeedURL, nil)
		syncer := bankfeed.NewSyncer(source, server.Match, config.BankSyncInterval)

		go syncer.Run(logger.WithContext(context.Background()))

		logger.Info().
			Str("url", config.BankFeedURL).
			Dur("interval", config.BankSyncInterval).
			Msg("BANK FEED SYNC HAS STARTED")
	}

	logger.Info().Msg("LEDGER API SERVER HAS STARTED")

	if err := server.Engine.Run(config.ServerAddress); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}

	return nil
}
