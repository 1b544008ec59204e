package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/loan-ledger-api/internal/config"
	"github.com/vfg2006/loan-ledger-api/internal/domain"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/exporting"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/exporting/mocks"
	"go.uber.org/mock/gomock"
)

func newTestBackupService(t *testing.T, enabled bool) (*BackupSyncService, *mocks.MockExporter) {
	ctrl := gomock.NewController(t)
	exporter := mocks.NewMockExporter(ctrl)

	cfg := &config.Config{}
	cfg.Backup.CronSchedule = "0 2 * * *"
	cfg.Backup.Enabled = enabled
	cfg.Document.OperatingYear = 2026

	return NewBackupSyncService(exporter, cfg), exporter
}

func TestBackupSyncService_RunBackup(t *testing.T) {
	ctx := context.Background()

	t.Run("Executa o backup do ano de operação", func(t *testing.T) {
		service, exporter := newTestBackupService(t, true)

		exporter.EXPECT().RunBackup(ctx, 2026, TriggerCron).Return(&domain.BackupInfo{Clients: 2, Documents: 5}, nil)

		require.NoError(t, service.RunBackup(ctx, TriggerCron))

		status := service.GetStatus()
		assert.Equal(t, false, status["running"])
		assert.Equal(t, "", status["last_sync_error"])
		assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
	})

	t.Run("Erro fica registrado no status", func(t *testing.T) {
		service, exporter := newTestBackupService(t, true)

		exporter.EXPECT().RunBackup(ctx, 2026, TriggerManual).Return(nil, errors.New("conexão perdida"))

		err := service.RunBackup(ctx, TriggerManual)

		assert.Error(t, err)
		assert.Equal(t, "conexão perdida", service.GetStatus()["last_sync_error"])
	})

	t.Run("Execução concorrente é recusada", func(t *testing.T) {
		service, exporter := newTestBackupService(t, true)

		started := make(chan struct{})
		release := make(chan struct{})
		exporter.EXPECT().RunBackup(gomock.Any(), 2026, TriggerCron).DoAndReturn(
			func(context.Context, int, string) (*domain.BackupInfo, error) {
				close(started)
				<-release
				return &domain.BackupInfo{}, nil
			})

		done := make(chan error)
		go func() { done <- service.RunBackup(ctx, TriggerCron) }()

		<-started
		assert.ErrorIs(t, service.RunBackup(ctx, TriggerManual), exporting.ErrBackupRunning)
		assert.False(t, service.TriggerManualSync())
		assert.Equal(t, true, service.GetStatus()["running"])

		close(release)
		require.NoError(t, <-done)
	})
}

func TestBackupSyncService_Start(t *testing.T) {
	t.Run("Desabilitado não agenda", func(t *testing.T) {
		service, _ := newTestBackupService(t, false)

		require.NoError(t, service.Start(context.Background()))
		assert.Empty(t, service.scheduler.Jobs())
	})

	t.Run("Expressão cron inválida", func(t *testing.T) {
		service, _ := newTestBackupService(t, true)
		service.config.CronSchedule = "não é cron"

		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("Agenda e para com o contexto", func(t *testing.T) {
		service, _ := newTestBackupService(t, true)
		ctx, cancel := context.WithCancel(context.Background())

		require.NoError(t, service.Start(ctx))
		assert.Len(t, service.scheduler.Jobs(), 1)

		cancel()
	})
}
