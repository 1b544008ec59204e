package handler

import (
	"net/http"

	"github.com/vfg2006/loan-ledger-api/internal/config"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/exporting"
)

// DownloadBackup baixa a planilha anual do cliente, uma aba por mês
func DownloadBackup(service exporting.Exporter, cfg config.Document) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := resolveScope(w, r, cfg.OperatingYear)
		if !ok {
			return
		}

		file, err := service.ExportYear(r.Context(), s.ClientID, s.Year)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar backup")
			return
		}

		writeFile(w, file)
	}
}

func LastBackup(service exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"last_backup": service.LastBackup(),
		})
	}
}
