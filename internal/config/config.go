package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	DemographicsSync DemographicsSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret     string `mapstructure:"auth_secret"`
	CronSecret string `mapstructure:"cron_secret"`
}

type DemographicsSync struct {
	CronSchedule              string `mapstructure:"demographics_sync_cron"`
	Enabled                   bool   `mapstructure:"demographics_sync_enabled"`
	Simplified                bool   `mapstructure:"demographics_sync_simplified"`
	TransactionTimeoutSeconds int    `mapstructure:"demographics_sync_tx_timeout_seconds"`
	PruneEmptyBuckets         bool   `mapstructure:"demographics_sync_prune_empty_buckets"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/swipelytics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("CRON_SECRET", "")

	// Defaults da sincronização demográfica
	viper.SetDefault("DEMOGRAPHICS_SYNC_CRON", "0 5 * * *")           // Todos os dias às 5h da manhã
	viper.SetDefault("DEMOGRAPHICS_SYNC_ENABLED", false)              // Habilitar a cron de agregação
	viper.SetDefault("DEMOGRAPHICS_SYNC_SIMPLIFIED", false)           // Modo simplificado (4 buckets)
	viper.SetDefault("DEMOGRAPHICS_SYNC_TX_TIMEOUT_SECONDS", 30)      // Orçamento de espera por transação de bucket
	viper.SetDefault("DEMOGRAPHICS_SYNC_PRUNE_EMPTY_BUCKETS", false)  // Apagar buckets cuja população zerou

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
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

// loadEnvFile tenta carregar o arquivo .env das localizações conhecidas
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

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
