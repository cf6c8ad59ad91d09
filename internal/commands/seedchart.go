package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finvera/ledger-core/internal/accountrepo"
	"github.com/finvera/ledger-core/internal/accountservice"
	"github.com/finvera/ledger-core/internal/domain"
	"github.com/finvera/ledger-core/internal/middleware"
	"github.com/finvera/ledger-core/pkg/configpkg"
	"github.com/finvera/ledger-core/pkg/dbpkg"
)

func newSeedChartCommand() *cobra.Command {
	var configPath string
	var entityID int32
	var chartFile string

	cmd := &cobra.Command{
		Use:   "seed-chart",
		Short: "Seed the chart of accounts for an entity",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeedChart(configPath, entityID, chartFile)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "./configs", "directory containing app.env")
	cmd.Flags().Int32Var(&entityID, "entity-id", 0, "entity to seed (required)")
	_ = cmd.MarkFlagRequired("entity-id")
	cmd.Flags().StringVar(&chartFile, "file", "", "chart definition YAML, defaults to the built in chart")

	return cmd
}

func runSeedChart(configPath string, entityID int32, chartFile string) error {
	config, err := configpkg.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := middleware.CreateLogger(config)

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	service := accountservice.New(accountrepo.NewRepoPGS(db))
	ctx := logger.WithContext(context.Background())

	var accounts []domain.Account

	if chartFile != "" {
		chart, err := accountservice.LoadChart(chartFile)
		if err != nil {
			return fmt.Errorf("loading chart file: %w", err)
		}

		accounts, err = service.SeedChart(ctx, entityID, chart)
		if err != nil {
			return fmt.Errorf("seeding chart: %w", err)
		}
	} else {
		accounts, err = service.SeedDefaultChart(ctx, entityID)
		if err != nil {
			return fmt.Errorf("seeding chart: %w", err)
		}
	}

	fmt.Printf("Seeded %d accounts for entity %d\n", len(accounts), entityID)

	return nil
}
