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
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Cors       Cors       `mapstructure:",squash"`
	Forecast   Forecast   `mapstructure:",squash"`
	Cache      Cache      `mapstructure:",squash"`
	StockAlert StockAlert `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string        `mapstructure:"-"`
	Driver       string        `mapstructure:"database_driver"`
	Password     string        `mapstructure:"database_password"`
	URL          string        `mapstructure:"database_url"`
	User         string        `mapstructure:"database_user"`
	QueryTimeout time.Duration `mapstructure:"database_query_timeout"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Cors lista as origens liberadas para o painel de gestão
type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Forecast struct {
	Locale            string `mapstructure:"forecast_locale"`
	CancelledStatusID int    `mapstructure:"forecast_cancelled_status_id"`
	StockWindowDays   int    `mapstructure:"forecast_stock_window_days"`
}

type Cache struct {
	Enabled bool          `mapstructure:"cache_enabled"`
	Addr    string        `mapstructure:"redis_addr"`
	TTL     time.Duration `mapstructure:"cache_ttl"`
}

type StockAlert struct {
	CronSchedule string `mapstructure:"stock_alert_cron"`
	Enabled      bool   `mapstructure:"stock_alert_enabled"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", "8000")

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "localhost:5432/restaurant?sslmode=disable")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "root")
	v.SetDefault("DATABASE_QUERY_TIMEOUT", "10s")

	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5000,http://localhost:3000")

	v.SetDefault("FORECAST_LOCALE", "en")
	v.SetDefault("FORECAST_CANCELLED_STATUS_ID", 4) // status "cancelado" no sistema de gestão
	v.SetDefault("FORECAST_STOCK_WINDOW_DAYS", 30)

	v.SetDefault("CACHE_ENABLED", false)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("CACHE_TTL", "1m")

	v.SetDefault("STOCK_ALERT_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	v.SetDefault("STOCK_ALERT_ENABLED", false)

	v.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return load(v)
}

// load decodifica as chaves do viper na struct de configuração e valida o resultado
func load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Forecast.StockWindowDays <= 0 {
		return nil, fmt.Errorf("FORECAST_STOCK_WINDOW_DAYS deve ser positivo, recebido %d", config.Forecast.StockWindowDays)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

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
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
