package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/healthhub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/healthhub-backend/internal/adapter/postgres/event"
	"github.com/heartmarshall/healthhub-backend/internal/adapter/postgres/track"
	"github.com/heartmarshall/healthhub-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/healthhub-backend/internal/app/seeder"
)

func seedCmd() *cobra.Command {
	var (
		seederConfig string
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a demo user whose tracks trigger every notification kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			seedCfg, err := seeder.LoadConfig(seederConfig)
			if err != nil {
				return err
			}
			if dryRun {
				seedCfg.DryRun = true
			}

			pool, err := postgres.NewPool(cmd.Context(), cfg.Database)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer pool.Close()

			s := seeder.New(logger, postgres.NewTxManager(pool), user.New(pool), track.New(pool), event.New(pool))
			res, err := s.Run(cmd.Context(), *seedCfg)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "user %s: %d tracks, %d events\n", res.UserID, res.Tracks, res.Events)
			return nil
		},
	}

	cmd.Flags().StringVar(&seederConfig, "seeder-config", "", "path to seeder YAML (default: SEEDER_* env)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "plan the data set without writing")
	return cmd
}
