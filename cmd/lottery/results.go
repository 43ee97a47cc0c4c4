package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vfg2006/lottery-results-api/internal/config"
	"github.com/vfg2006/lottery-results-api/internal/domain"
	"github.com/vfg2006/lottery-results-api/internal/usecases/aggregating"
)

func newResultsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "results [slug]",
		Short: "Executa uma agregação de resultados, ou consulta uma única loteria",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return fmt.Errorf("erro ao carregar configuração: %w", err)
			}

			reg, err := loadRegistry(cfg)
			if err != nil {
				return err
			}

			aggregator := aggregating.NewDefaultService(cfg)
			p := newPrinter(os.Stdout, jsonOutput)
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			if len(args) == 1 {
				entry, ok := reg.Lookup(args[0])
				if !ok || entry.Results == nil {
					return fmt.Errorf("%w: %s", domain.ErrUnknownLottery, args[0])
				}

				outcome := aggregator.FetchResult(ctx, entry)
				if !outcome.Ok() {
					return fmt.Errorf("%w: %s", domain.ErrNoDataAvailable, outcome.Reason)
				}
				return p.Results(domain.ResultsReport{
					Records: []domain.LotteryResult{*outcome.Record},
					Failed:  []string{},
					Count:   1,
				})
			}

			return p.Results(aggregator.RunResults(ctx, reg.ResultEntries()))
		},
	}
}
