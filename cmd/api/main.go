package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lottery-results-api/infrastructure/database/migrations"
	"github.com/vfg2006/lottery-results-api/infrastructure/database/postgres"
	"github.com/vfg2006/lottery-results-api/infrastructure/repository"
	"github.com/vfg2006/lottery-results-api/internal/api"
	"github.com/vfg2006/lottery-results-api/internal/api/handler"
	"github.com/vfg2006/lottery-results-api/internal/cache"
	"github.com/vfg2006/lottery-results-api/internal/config"
	"github.com/vfg2006/lottery-results-api/internal/domain"
	"github.com/vfg2006/lottery-results-api/internal/registry"
	"github.com/vfg2006/lottery-results-api/internal/scheduler"
	"github.com/vfg2006/lottery-results-api/internal/usecases/aggregating"
	"github.com/vfg2006/lottery-results-api/internal/usecases/jackpots"
	"github.com/vfg2006/lottery-results-api/internal/usecases/results"
	"github.com/vfg2006/lottery-results-api/pkg/log"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	log.Setup(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reg := loadRegistry(cfg.Registry)
	aggregator := aggregating.NewDefaultService(cfg)

	var (
		resultsOpts  []results.Option
		jackpotsOpts []jackpots.Option
		serverOpts   []api.Option
	)

	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)

		if err := migrations.Up(pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}

		resultsOpts = append(resultsOpts, results.WithRepository(repository.NewLotteryResultRepository(pgConn)))
		jackpotsOpts = append(jackpotsOpts, jackpots.WithRepository(repository.NewJackpotRepository(pgConn)))
		serverOpts = append(serverOpts, api.WithCloser(pgConn.Close))
	} else {
		logrus.Info("Persistência desabilitada, snapshots mantidos apenas em memória")
	}

	resultsService := results.NewService(cfg, reg, aggregator, cache.New[domain.LotteryResult](), resultsOpts...)
	jackpotsService := jackpots.NewService(cfg, reg, aggregator, cache.New[domain.JackpotData](), jackpotsOpts...)

	resultsSyncService, err := scheduler.NewResultsSyncService(cfg, resultsService)
	if err != nil {
		logrus.Fatal(err)
	}

	jackpotsSyncService, err := scheduler.NewJackpotsSyncService(cfg, jackpotsService)
	if err != nil {
		logrus.Fatal(err)
	}

	// Inicia os agendadores em background
	if err := resultsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de resultados")
	} else {
		logrus.Info("Agendador de resultados iniciado com sucesso")
	}

	if err := jackpotsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de prêmios")
	} else {
		logrus.Info("Agendador de prêmios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		resultsService,
		jackpotsService,
		handler.CronJobServices{
			ResultsSyncService:  resultsSyncService,
			JackpotsSyncService: jackpotsSyncService,
		},
		serverOpts...,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// loadRegistry usa o catálogo embutido quando REGISTRY_FILE não está definido
func loadRegistry(cfg config.Registry) *registry.Registry {
	var (
		reg *registry.Registry
		err error
	)

	if cfg.File != "" {
		reg, err = registry.LoadFile(cfg.File)
	} else {
		reg, err = registry.Default()
	}
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar catálogo de loterias")
	}

	logrus.WithFields(logrus.Fields{
		"lotteries": reg.Len(),
		"results":   len(reg.ResultEntries()),
		"jackpots":  len(reg.JackpotEntries()),
	}).Info("Catálogo de loterias carregado")

	return reg
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
