package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/lottery-results-api/internal/config"
	"github.com/vfg2006/lottery-results-api/pkg/middleware"
)

func newTokenCommand() *cobra.Command {
	var (
		caller string
		ttl    time.Duration
	)

	command := &cobra.Command{
		Use:   "token",
		Short: "Gera um token para as rotas /v1/cron assinado com CRON_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return fmt.Errorf("erro ao carregar configuração: %w", err)
			}

			token, err := middleware.IssueCronToken(cfg.Cron.Secret, caller, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	command.Flags().StringVar(&caller, "caller", "cli", "identificação de quem dispara as execuções")
	command.Flags().DurationVar(&ttl, "ttl", time.Hour, "validade do token")

	return command
}
