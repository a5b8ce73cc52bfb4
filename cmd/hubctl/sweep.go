package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/healthhub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/healthhub-backend/internal/adapter/postgres/dismissal"
	"github.com/heartmarshall/healthhub-backend/internal/app"
)

func sweepCmd() *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Delete dismissals whose entity is no longer eligible, for every user",
		Long: "Reads normally reconcile dismissals lazily. sweep does the same for\n" +
			"all users at once and is meant to be run from cron.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("concurrency") {
				cfg.Hub.SweepConcurrency = concurrency
			}

			pool, err := postgres.NewPool(cmd.Context(), cfg.Database)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer pool.Close()

			report, err := app.SweepAll(cmd.Context(), logger,
				dismissal.New(pool), app.NewHubService(logger, pool, cfg.Hub), cfg.Hub.SweepConcurrency)

			fmt.Fprintf(cmd.OutOrStdout(), "users: %d, deleted: %d, failed: %d\n",
				report.Users, report.Deleted, report.Failed)
			return err
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "users reconciled in parallel (default from config)")
	return cmd
}
