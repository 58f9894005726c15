package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-forecast-api/infrastructure/cache"
	"github.com/vfg2006/sales-forecast-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-forecast-api/infrastructure/repository"
	"github.com/vfg2006/sales-forecast-api/internal/api"
	"github.com/vfg2006/sales-forecast-api/internal/config"
	"github.com/vfg2006/sales-forecast-api/internal/scheduler"
	"github.com/vfg2006/sales-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-forecast-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Configure(cfg.App.LogLevel); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	dataSource := repository.NewForecastDataRepository(pgConn, cfg)

	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Cache.Addr)
		if err != nil {
			// Sem Redis o serviço segue lendo direto do banco
			logrus.WithError(err).Warn("Cache desabilitado: não foi possível conectar ao Redis")
		} else {
			defer redisClient.Close()
			dataSource = cache.NewForecastDataCache(dataSource, redisClient, cfg.Cache.TTL)
			logrus.WithField("ttl", cfg.Cache.TTL.String()).Info("Cache de dados de previsão habilitado")
		}
	}

	forecastService := forecasting.NewService(dataSource, cfg)

	stockAlertJob := scheduler.NewStockAlertJob(forecastService, cfg)
	if err := stockAlertJob.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de alerta de estoque")
	}

	server := api.New(cfg, forecastService, stockAlertJob)

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar conexão com PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Warn("PostgreSQL indisponível na inicialização, as previsões responderão com erro até a reconexão")
		return conn
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
