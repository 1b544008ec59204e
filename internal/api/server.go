package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/loan-ledger-api/internal/api/handler"
	"github.com/vfg2006/loan-ledger-api/internal/api/handler/router"
	"github.com/vfg2006/loan-ledger-api/internal/config"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/authenticating"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/documenting"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/exporting"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/subscribing"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/summarizing"
	"github.com/vfg2006/loan-ledger-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services reúne os casos de uso expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Documenter    documenting.Documenter
	Summarizer    summarizing.Summarizer
	Subscriber    subscribing.Subscriber
	Exporter      exporting.Exporter
	CronJobs      handler.CronJobServices
	DB            handler.Pinger
	RateLimiter   *middleware.IPRateLimiter
}

func New(config *config.Config, services Services) (*Server, error) {
	if services.RateLimiter == nil {
		services.RateLimiter = middleware.NewIPRateLimiter(config.RateLimit.RequestsPerSecond, config.RateLimit.Burst, config.RateLimit.TrustedProxies...)
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(config *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithInstrumentation(middleware.Metrics),
		router.WithRoutes(handler.Healthcheck(services.DB)...),
		router.WithRoutes(handler.Authentication(services.Authenticator, services.RateLimiter)...),
		router.WithRoutes(handler.User(services.Authenticator, services.Subscriber)...),
		router.WithRoutes(handler.Documents(services.Documenter, services.Exporter, services.Subscriber, config.Document)...),
		router.WithRoutes(handler.Dashboard(services.Summarizer, config.Document)...),
		router.WithRoutes(handler.Backups(services.Exporter, config.Document)...),
		router.WithRoutes(handler.Payments(services.Subscriber, config.Document)...),
		router.WithRoutes(handler.Admin(services.Documenter, config.Document)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	// Aqui você pode adicionar operações de limpeza adicionais
	// como fechar conexões com bancos de dados, limpar recursos, etc.

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
