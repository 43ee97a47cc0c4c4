package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Providers     Providers     `mapstructure:",squash"`
	Aggregation   Aggregation   `mapstructure:",squash"`
	ResultsCache  ResultsCache  `mapstructure:",squash"`
	JackpotsCache JackpotsCache `mapstructure:",squash"`
	SlugCache     SlugCache     `mapstructure:",squash"`
	ResultsSync   ResultsSync   `mapstructure:",squash"`
	JackpotsSync  JackpotsSync  `mapstructure:",squash"`
	Cron          Cron          `mapstructure:",squash"`
	Registry      Registry      `mapstructure:",squash"`
	Cors          Cors          `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level" validate:"oneof=trace debug info warn warning error fatal panic"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port" validate:"required"`
}

type Database struct {
	DSN             string `mapstructure:"-"`
	Enabled         bool   `mapstructure:"database_enabled"`
	Driver          string `mapstructure:"database_driver"`
	Password        string `mapstructure:"database_password"`
	URL             string `mapstructure:"database_url" validate:"required_if=Enabled true"`
	User            string `mapstructure:"database_user"`
	ConnectAttempts uint   `mapstructure:"database_connect_attempts" validate:"gte=1"`
}

type Providers struct {
	GuidiURL             string `mapstructure:"guidi_base_url" validate:"required,url"`
	NYOpenDataURL        string `mapstructure:"ny_open_data_base_url" validate:"required,url"`
	LottolandResultsURL  string `mapstructure:"lottoland_results_base_url" validate:"required,url"`
	LottolandJackpotsURL string `mapstructure:"lottoland_jackpots_base_url" validate:"required,url"`
	UserAgent            string `mapstructure:"provider_user_agent"`
}

type Aggregation struct {
	CallTimeout time.Duration `mapstructure:"aggregation_call_timeout" validate:"gt=0"`
}

type ResultsCache struct {
	MaxAgeMinutes int `mapstructure:"results_cache_max_age_minutes" validate:"gt=0"`
}

type JackpotsCache struct {
	MaxAgeMinutes int `mapstructure:"jackpots_cache_max_age_minutes" validate:"gt=0"`
}

type SlugCache struct {
	Size int           `mapstructure:"slug_cache_size" validate:"gt=0"`
	TTL  time.Duration `mapstructure:"slug_cache_ttl" validate:"gt=0"`
}

type ResultsSync struct {
	CronSchedule string `mapstructure:"results_sync_cron" validate:"required_if=Enabled true"`
	Timezone     string `mapstructure:"results_sync_timezone"`
	Enabled      bool   `mapstructure:"results_sync_enabled"`
	RunOnStart   bool   `mapstructure:"results_sync_run_on_start"`
}

type JackpotsSync struct {
	CronSchedule string `mapstructure:"jackpots_sync_cron" validate:"required_if=Enabled true"`
	Timezone     string `mapstructure:"jackpots_sync_timezone"`
	Enabled      bool   `mapstructure:"jackpots_sync_enabled"`
	RunOnStart   bool   `mapstructure:"jackpots_sync_run_on_start"`
}

type Cron struct {
	Secret string `mapstructure:"cron_secret"`
}

type Registry struct {
	File string `mapstructure:"registry_file" validate:"omitempty,file"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func (c ResultsCache) MaxAge() time.Duration {
	return time.Duration(c.MaxAgeMinutes) * time.Minute
}

func (c JackpotsCache) MaxAge() time.Duration {
	return time.Duration(c.MaxAgeMinutes) * time.Minute
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("HOST", "")
	viper.SetDefault("PORT", "8000")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/lottery?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_CONNECT_ATTEMPTS", 5)

	viper.SetDefault("GUIDI_BASE_URL", "https://api.guidi.dev.br")
	viper.SetDefault("NY_OPEN_DATA_BASE_URL", "https://data.ny.gov")
	viper.SetDefault("LOTTOLAND_RESULTS_BASE_URL", "https://www.lottoland.com")
	viper.SetDefault("LOTTOLAND_JACKPOTS_BASE_URL", "https://media.lottoland.com")
	viper.SetDefault("PROVIDER_USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	viper.SetDefault("AGGREGATION_CALL_TIMEOUT", "15s")

	viper.SetDefault("RESULTS_CACHE_MAX_AGE_MINUTES", 240) // 4 horas
	viper.SetDefault("JACKPOTS_CACHE_MAX_AGE_MINUTES", 30)

	viper.SetDefault("SLUG_CACHE_SIZE", 64)
	viper.SetDefault("SLUG_CACHE_TTL", "30m")

	// Sorteios brasileiros terminam por volta das 20h; a segunda execução pega atrasos da Caixa
	viper.SetDefault("RESULTS_SYNC_CRON", "0 20,23 * * *")
	viper.SetDefault("RESULTS_SYNC_TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("RESULTS_SYNC_ENABLED", true)
	viper.SetDefault("RESULTS_SYNC_RUN_ON_START", true)

	viper.SetDefault("JACKPOTS_SYNC_CRON", "0 * * * *") // De hora em hora
	viper.SetDefault("JACKPOTS_SYNC_TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("JACKPOTS_SYNC_ENABLED", true)
	viper.SetDefault("JACKPOTS_SYNC_RUN_ON_START", true)

	viper.SetDefault("CRON_SECRET", "")
	viper.SetDefault("REGISTRY_FILE", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar configuração: %w", err)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
