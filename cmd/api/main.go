package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/swipelytics/insights-api/infrastructure/database/postgres"
	"github.com/swipelytics/insights-api/infrastructure/repository"
	"github.com/swipelytics/insights-api/internal/api"
	"github.com/swipelytics/insights-api/internal/config"
	"github.com/swipelytics/insights-api/internal/scheduler"
	"github.com/swipelytics/insights-api/internal/usecases/authenticating"
	"github.com/swipelytics/insights-api/internal/usecases/demographics"
	"github.com/swipelytics/insights-api/internal/usecases/usageprocessing"
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
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	profileRepo := repository.NewProfileRepository(pgConn)
	usageRepo := repository.NewUsageRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	ingestService := usageprocessing.NewService(profileRepo, usageRepo)

	demographicsService := demographics.NewService(profileRepo, usageRepo, cfg)

	// Inicializa o agendador da agregação demográfica
	demographicsSyncService := scheduler.NewDemographicsSyncService(demographicsService, cfg)

	if err := demographicsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de agregação demográfica")
	} else {
		logrus.Info("Agendador de agregação demográfica iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		ingestService,
		demographicsService,
		authenticator,
		demographicsSyncService,
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

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
