package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/loan-ledger-api/infrastructure/cache"
	"github.com/vfg2006/loan-ledger-api/infrastructure/database/postgres"
	"github.com/vfg2006/loan-ledger-api/infrastructure/migration"
	"github.com/vfg2006/loan-ledger-api/infrastructure/notification"
	"github.com/vfg2006/loan-ledger-api/infrastructure/repository"
	"github.com/vfg2006/loan-ledger-api/infrastructure/spreadsheet"
	"github.com/vfg2006/loan-ledger-api/internal/api"
	"github.com/vfg2006/loan-ledger-api/internal/api/handler"
	"github.com/vfg2006/loan-ledger-api/internal/config"
	"github.com/vfg2006/loan-ledger-api/internal/scheduler"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/authenticating"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/documenting"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/exporting"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/subscribing"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/summarizing"
	"github.com/vfg2006/loan-ledger-api/pkg/log"
	"github.com/vfg2006/loan-ledger-api/pkg/middleware"
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
	log.SetEnvironment(cfg.App.Environment)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.MigrateOnStart {
		if err := migration.Up(pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
		logrus.Info("Migrações aplicadas com sucesso")
	}

	userRepo := repository.NewUserRepository(pgConn)
	documentRepo := repository.NewDocumentRepository(pgConn)
	proofRepo := repository.NewPaymentProofRepository(pgConn)

	gate := subscribing.NewGate(cfg.Trial)
	authenticator := authenticating.NewService(userRepo, gate, cfg)

	excel := spreadsheet.NewExcel()

	// O painel só usa cache quando REDIS_ADDR está configurado
	summarizer := summarizing.NewService(documentRepo)
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logrus.WithError(err).Warn("Redis indisponível, painel sem cache")
		} else {
			defer redisCache.Close()
			summarizer = summarizer.WithCache(redisCache, cfg.Redis.DashboardTTL)
			logrus.Info("Cache do painel habilitado")
		}
	}

	documenter := documenting.NewService(documentRepo, excel).WithInvalidator(summarizer)

	subscriber := subscribing.NewService(userRepo, proofRepo, notification.NewSMTP(cfg.SMTP), gate, cfg.SMTP)

	exporter := exporting.NewService(documentRepo, excel, spreadsheet.NewPDF(), exporting.NewBackupRegistry(), cfg.Backup)

	backupSyncService := scheduler.NewBackupSyncService(exporter, cfg)
	if err := backupSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de backup")
	} else {
		logrus.Info("Agendador de backup iniciado com sucesso")
	}

	rateLimiter := middleware.NewIPRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.TrustedProxies...)
	rateLimiter.StartCleanup(ctx, 10*time.Minute)

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Documenter:    documenter,
		Summarizer:    summarizer,
		Subscriber:    subscriber,
		Exporter:      exporter,
		CronJobs:      handler.CronJobServices{BackupSyncService: backupSyncService},
		DB:            pgConn,
		RateLimiter:   rateLimiter,
	})
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
