package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/franpass87/esperienze-insights-api/infrastructure/database/postgres"
	"github.com/franpass87/esperienze-insights-api/infrastructure/integrator/costfeed"
	"github.com/franpass87/esperienze-insights-api/infrastructure/notifier/mail"
	"github.com/franpass87/esperienze-insights-api/infrastructure/notifier/slack"
	"github.com/franpass87/esperienze-insights-api/infrastructure/repository"
	"github.com/franpass87/esperienze-insights-api/internal/api"
	"github.com/franpass87/esperienze-insights-api/internal/config"
	"github.com/franpass87/esperienze-insights-api/internal/scheduler"
	"github.com/franpass87/esperienze-insights-api/internal/usecases/analyzing"
	"github.com/franpass87/esperienze-insights-api/internal/usecases/authenticating"
	"github.com/franpass87/esperienze-insights-api/internal/usecases/digesting"
	"github.com/sirupsen/logrus"
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

	userRepo := repository.NewUserRepository(pgConn)
	eventRepo := repository.NewEventCountRepository(pgConn)
	orderRepo := repository.NewOrderAggregateRepository(pgConn)
	bookingRepo := repository.NewBookingReportRepository(pgConn)
	cacheRepo := repository.NewAnalyticsCacheRepository(pgConn)
	costRepo := repository.NewCampaignCostRepository(pgConn)
	settingsRepo := repository.NewDigestSettingsRepository(pgConn)
	statusRepo := repository.NewDispatchStatusRepository(pgConn)

	// Limpa entradas de cache expiradas remanescentes de execuções anteriores
	if removed, err := cacheRepo.DeleteExpired(); err != nil {
		logrus.WithError(err).Warn("Erro ao limpar cache de relatórios expirado")
	} else if removed > 0 {
		logrus.WithField("removed", removed).Info("Cache de relatórios expirado removido")
	}

	authenticator := authenticating.NewService(userRepo, cfg)

	costFeedService := costfeed.New(cfg, costRepo)

	// Inicializa o agregador de relatórios com suporte a cache
	analyticsService := analyzing.NewService(cfg, eventRepo, orderRepo, costFeedService).
		WithCache(cacheRepo)

	mailer := mail.NewSMTPMailer(cfg.SMTP)
	slackNotifier := slack.NewClient()

	digestService := digesting.NewService(
		bookingRepo,
		settingsRepo,
		statusRepo,
		mailer,
		slackNotifier,
	)

	// Inicializa o agendador do envio diário do digest
	digestSyncService := scheduler.NewDigestSyncService(digestService, cfg)

	if err := digestSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do digest")
	} else {
		logrus.Info("Agendador do digest iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyticsService,
		digestService,
		authenticator,
		digestSyncService,
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
