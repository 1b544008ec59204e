package handler

import (
	"net/http"

	"github.com/vfg2006/loan-ledger-api/internal/api/handler/router"
	"github.com/vfg2006/loan-ledger-api/internal/config"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/authenticating"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/documenting"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/exporting"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/subscribing"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/summarizing"
	"github.com/vfg2006/loan-ledger-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: middleware.MetricsHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator, limiter *middleware.IPRateLimiter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/login",
			Method:      http.MethodPost,
			Handler:     Login(service),
			Middlewares: middlewares{middleware.RateLimit(limiter)},
		},
		{
			Path:        "/v1/register",
			Method:      http.MethodPost,
			Handler:     Register(service),
			Middlewares: middlewares{middleware.RateLimit(limiter)},
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator, subscriber subscribing.Subscriber) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/subscription",
			Method:      http.MethodPut,
			Handler:     SetSubscription(subscriber),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

// Documents registra as rotas de planilhas; as escritas passam pelo gate de avaliação
func Documents(service documenting.Documenter, exporter exporting.Exporter, subscriber subscribing.Subscriber, cfg config.Document) []router.Route {
	writeGated := middlewares{middleware.AllRoles(), middleware.WriteGate(subscriber)}

	return []router.Route{
		{
			Path:        "/v1/documents",
			Method:      http.MethodGet,
			Handler:     ListDocuments(service, cfg),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/documents/:month",
			Method:      http.MethodGet,
			Handler:     GetDocument(service, cfg),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/documents/:month",
			Method:      http.MethodPost,
			Handler:     ReplaceDocument(service, cfg),
			Middlewares: writeGated,
		},
		{
			Path:        "/v1/documents/:month",
			Method:      http.MethodDelete,
			Handler:     DeleteDocument(service, cfg),
			Middlewares: writeGated,
		},
		{
			Path:        "/v1/documents/:month/upload",
			Method:      http.MethodPost,
			Handler:     UploadDocument(service, cfg),
			Middlewares: writeGated,
		},
		{
			Path:        "/v1/documents/:month/cell",
			Method:      http.MethodPut,
			Handler:     UpdateCell(service, cfg),
			Middlewares: writeGated,
		},
		{
			Path:        "/v1/documents/:month/bulk-update",
			Method:      http.MethodPost,
			Handler:     BulkUpdate(service, cfg),
			Middlewares: writeGated,
		},
		{
			Path:        "/v1/documents/:month/export",
			Method:      http.MethodGet,
			Handler:     ExportDocument(exporter, cfg),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Dashboard(service summarizing.Summarizer, cfg config.Document) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/summary",
			Method:      http.MethodGet,
			Handler:     DashboardSummary(service, cfg),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/by-months",
			Method:      http.MethodGet,
			Handler:     DashboardByMonths(service, cfg),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/by-products",
			Method:      http.MethodGet,
			Handler:     DashboardByProducts(service, cfg),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/full",
			Method:      http.MethodGet,
			Handler:     DashboardFull(service, cfg),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/by-days/:month",
			Method:      http.MethodGet,
			Handler:     DashboardByDays(service, cfg),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Backups(service exporting.Exporter, cfg config.Document) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/backups/download",
			Method:      http.MethodGet,
			Handler:     DownloadBackup(service, cfg),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/backups/last",
			Method:      http.MethodGet,
			Handler:     LastBackup(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func Payments(service subscribing.Subscriber, cfg config.Document) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/payments/proof",
			Method:      http.MethodPost,
			Handler:     SubmitPaymentProof(service, cfg),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/payments/proofs",
			Method:      http.MethodGet,
			Handler:     ListPaymentProofs(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/payments/proofs/:id/approve",
			Method:      http.MethodPost,
			Handler:     ApprovePaymentProof(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func Admin(service documenting.Documenter, cfg config.Document) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/stats",
			Method:      http.MethodGet,
			Handler:     AdminStats(service, cfg),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}
