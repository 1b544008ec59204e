// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/loan-ledger-api/internal/config"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/exporting"
)

const (
	TriggerCron   = "cron"
	TriggerManual = "manual"
)

type BackupConfig struct {
	CronSchedule string
	Enabled      bool
	Year         int
}

// BackupSyncService exporta periodicamente as planilhas anuais de todos os clientes
type BackupSyncService struct {
	scheduler           *gocron.Scheduler
	exporter            exporting.Exporter
	config              BackupConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewBackupSyncService(exporter exporting.Exporter, cfg *config.Config) *BackupSyncService {
	backupConfig := BackupConfig{
		CronSchedule: cfg.Backup.CronSchedule, // Default: 2h da manhã todos os dias
		Enabled:      cfg.Backup.Enabled,      // Default: desabilitado
		Year:         cfg.Document.OperatingYear,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": backupConfig.CronSchedule,
		"year":          backupConfig.Year,
	}).Info("Configuração do agendador de backup carregada")

	return &BackupSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		exporter:  exporter,
		config:    backupConfig,
	}
}

func (s *BackupSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de backup desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de backup das planilhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunBackup(ctx, TriggerCron); err != nil {
			logrus.WithError(err).Error("Erro no backup das planilhas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar backup das planilhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de backup")
		s.scheduler.Stop()
	}()

	return nil
}

// RunBackup executa o backup; uma execução em andamento faz a chamada
// retornar exporting.ErrBackupRunning sem fazer nada.
func (s *BackupSyncService) RunBackup(ctx context.Context, trigger string) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Backup das planilhas já está em execução")
		return exporting.ErrBackupRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	info, err := s.exporter.RunBackup(ctx, s.config.Year, trigger)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"clients":   info.Clients,
		"documents": info.Documents,
		"failures":  len(info.Failures),
	}).Info("Backup das planilhas concluído")

	return nil
}

// TriggerManualSync dispara o backup em segundo plano
func (s *BackupSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Backup já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando backup manual das planilhas")
	go func() {
		if err := s.RunBackup(context.Background(), TriggerManual); err != nil {
			logrus.WithError(err).Error("Erro no backup manual das planilhas")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *BackupSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"year":                   s.config.Year,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
