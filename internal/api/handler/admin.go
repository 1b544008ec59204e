package handler

import (
	"net/http"

	"github.com/vfg2006/loan-ledger-api/internal/config"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/documenting"
)

// AdminStats conta os documentos do ano por cliente e por mês
func AdminStats(service documenting.Documenter, cfg config.Document) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := resolveScope(w, r, cfg.OperatingYear)
		if !ok {
			return
		}

		stats, err := service.Stats(r.Context(), s.Year)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular estatísticas")
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}
