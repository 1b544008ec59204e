package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/loan-ledger-api/internal/config"
	"github.com/vfg2006/loan-ledger-api/internal/domain"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/summarizing"
)

// dashboardView adapta uma visão do painel a um handler HTTP
func dashboardView[T any](cfg config.Document, view func(ctx context.Context, scope domain.DashboardScope) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := resolveScope(w, r, cfg.OperatingYear)
		if !ok {
			return
		}

		result, err := view(r.Context(), s.Dashboard())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular o painel")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func DashboardSummary(service summarizing.Summarizer, cfg config.Document) http.HandlerFunc {
	return dashboardView(cfg, service.Summary)
}

func DashboardByMonths(service summarizing.Summarizer, cfg config.Document) http.HandlerFunc {
	return dashboardView(cfg, service.ByMonths)
}

func DashboardByProducts(service summarizing.Summarizer, cfg config.Document) http.HandlerFunc {
	return dashboardView(cfg, service.ByProducts)
}

func DashboardFull(service summarizing.Summarizer, cfg config.Document) http.HandlerFunc {
	return dashboardView(cfg, service.Full)
}

// DashboardByDays agrega um único mês por dia
func DashboardByDays(service summarizing.Summarizer, cfg config.Document) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, ok := monthParam(w, r)
		if !ok {
			return
		}
		s, ok := resolveScope(w, r, cfg.OperatingYear)
		if !ok {
			return
		}

		days, err := service.ByDays(r.Context(), s.Dashboard(), month)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular o painel diário")
			return
		}

		writeJSON(w, http.StatusOK, days)
	}
}
