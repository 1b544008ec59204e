package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/loan-ledger-api/internal/scheduler"
	"github.com/vfg2006/loan-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/loan-ledger-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeBackup = "backup"
)

// BackupTrigger é a parte do agendador de backup usada pelos handlers
type BackupTrigger interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

var _ BackupTrigger = (*scheduler.BackupSyncService)(nil)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	BackupSyncService BackupTrigger
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeBackup:
			if services.BackupSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de backup não disponível", nil)
				return
			}

			if !services.BackupSyncService.TriggerManualSync() {
				writeJSON(w, http.StatusConflict, map[string]any{
					"message": "Backup já está em execução",
					"type":    cronType,
				})
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: backup", nil)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.BackupSyncService != nil {
			status[CronJobTypeBackup] = services.BackupSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
