package exporting

import (
	"sync"

	"github.com/vfg2006/loan-ledger-api/internal/domain"
)

// BackupRegistry guarda o resultado da última execução do backup
type BackupRegistry struct {
	mu   sync.RWMutex
	last *domain.BackupInfo
}

func NewBackupRegistry() *BackupRegistry {
	return &BackupRegistry{}
}

func (r *BackupRegistry) Record(info domain.BackupInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.last = &info
}

// Last retorna uma cópia da última execução, ou nil se nunca houve
func (r *BackupRegistry) Last() *domain.BackupInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.last == nil {
		return nil
	}

	info := *r.last
	info.Files = append([]string(nil), r.last.Files...)
	info.Failures = append([]string(nil), r.last.Failures...)
	return &info
}
