package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/lottery-results-api/internal/config"
	"github.com/vfg2006/lottery-results-api/internal/registry"
)

var (
	registryFile string
	jsonOutput   bool
)

func main() {
	var debugMode bool
	rootCommand := cobra.Command{
		Use:           "lottery",
		Short:         "Consulta manual dos provedores de resultados e prêmios",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&registryFile, "registry", "", "arquivo YAML do catálogo (padrão: catálogo embutido)")
	rootCommand.PersistentFlags().BoolVar(&jsonOutput, "json", false, "imprime a saída em JSON")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "habilita logs de depuração")

	rootCommand.AddCommand(
		newRegistryCommand(),
		newResultsCommand(),
		newJackpotsCommand(),
		newTokenCommand(),
		newMigrateCommand(),
	)

	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "falha ao executar o comando: %+v\n", err)
		os.Exit(1)
	}
}

func setupLogger(debugMode bool) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.SetOutput(os.Stderr)

	logrus.SetLevel(logrus.WarnLevel)
	if debugMode {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

func loadRegistry(cfg *config.Config) (*registry.Registry, error) {
	path := registryFile
	if path == "" && cfg != nil {
		path = cfg.Registry.File
	}

	if path == "" {
		return registry.Default()
	}
	return registry.LoadFile(path)
}
