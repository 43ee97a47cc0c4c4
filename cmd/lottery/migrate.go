package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/lottery-results-api/infrastructure/database/migrations"
	"github.com/vfg2006/lottery-results-api/infrastructure/database/postgres"
	"github.com/vfg2006/lottery-results-api/internal/config"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica as migrações do banco de snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return fmt.Errorf("erro ao carregar configuração: %w", err)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			conn, err := postgres.NewConnection(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := migrations.Up(conn.DB); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Migrações aplicadas")
			return nil
		},
	}
}
