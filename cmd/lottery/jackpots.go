package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vfg2006/lottery-results-api/internal/config"
	"github.com/vfg2006/lottery-results-api/internal/usecases/aggregating"
)

func newJackpotsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "jackpots",
		Short: "Executa uma agregação dos prêmios estimados",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return fmt.Errorf("erro ao carregar configuração: %w", err)
			}

			reg, err := loadRegistry(cfg)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			report := aggregating.NewDefaultService(cfg).RunJackpots(ctx, reg.JackpotEntries())

			return newPrinter(os.Stdout, jsonOutput).Jackpots(report)
		},
	}
}
