package subscribing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/loan-ledger-api/internal/config"
	"github.com/vfg2006/loan-ledger-api/internal/domain"
)

var referenceNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func fixedGate() *Gate {
	return NewGate(config.Trial{Days: 7, WarningDays: 3}).WithClock(func() time.Time { return referenceNow })
}

func TestGate_Status(t *testing.T) {
	tests := []struct {
		name          string
		user          *domain.User
		wantState     domain.SubscriptionState
		wantActive    bool
		wantRemaining int
		wantExpiring  bool
		wantCanWrite  bool
	}{
		{
			name:          "Cadastro recente em avaliação",
			user:          &domain.User{Role: domain.RoleClient, RegisteredAt: referenceNow.Add(-2 * day)},
			wantState:     domain.StateActiveTrial,
			wantActive:    true,
			wantRemaining: 5,
			wantCanWrite:  true,
		},
		{
			name:          "Dias restantes arredondados para cima e aviso de expiração",
			user:          &domain.User{Role: domain.RoleClient, RegisteredAt: referenceNow.Add(-5*day + time.Hour)},
			wantState:     domain.StateActiveTrial,
			wantActive:    true,
			wantRemaining: 3,
			wantExpiring:  true,
			wantCanWrite:  true,
		},
		{
			name:          "Um segundo antes do fim ainda pode escrever",
			user:          &domain.User{Role: domain.RoleClient, RegisteredAt: referenceNow.Add(-7*day + time.Second)},
			wantState:     domain.StateActiveTrial,
			wantActive:    true,
			wantRemaining: 1,
			wantExpiring:  true,
			wantCanWrite:  true,
		},
		{
			name:          "Exatamente no fim da avaliação fica somente leitura",
			user:          &domain.User{Role: domain.RoleClient, RegisteredAt: referenceNow.Add(-7 * day)},
			wantState:     domain.StateExpiredReadOnly,
			wantRemaining: 0,
		},
		{
			name:          "Um segundo após o fim fica somente leitura",
			user:          &domain.User{Role: domain.RoleClient, RegisteredAt: referenceNow.Add(-7*day - time.Second)},
			wantState:     domain.StateExpiredReadOnly,
			wantRemaining: 0,
		},
		{
			name:          "Seis dias após o cadastro resta um dia",
			user:          &domain.User{Role: domain.RoleClient, RegisteredAt: referenceNow.Add(-6 * day)},
			wantState:     domain.StateActiveTrial,
			wantActive:    true,
			wantRemaining: 1,
			wantExpiring:  true,
			wantCanWrite:  true,
		},
		{
			name:          "Avaliação vencida há meses",
			user:          &domain.User{Role: domain.RoleClient, RegisteredAt: referenceNow.AddDate(0, -3, 0)},
			wantState:     domain.StateExpiredReadOnly,
			wantRemaining: 0,
		},
		{
			name:         "Assinante com avaliação vencida",
			user:         &domain.User{Role: domain.RoleClient, IsSubscribed: true, RegisteredAt: referenceNow.AddDate(-1, 0, 0)},
			wantState:    domain.StateActiveSubscribed,
			wantCanWrite: true,
		},
		{
			name:         "Administrador sempre pode escrever",
			user:         &domain.User{Role: domain.RoleAdmin, RegisteredAt: referenceNow.AddDate(-1, 0, 0)},
			wantState:    domain.StateExpiredReadOnly,
			wantCanWrite: true,
		},
	}

	gate := fixedGate()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := gate.Status(tt.user)

			assert.Equal(t, tt.wantState, status.State)
			assert.Equal(t, tt.wantActive, status.IsTrialActive)
			assert.Equal(t, tt.wantRemaining, status.DaysRemaining)
			assert.Equal(t, tt.wantExpiring, status.ExpiringSoon)
			assert.Equal(t, tt.wantCanWrite, status.CanWrite)
			assert.Equal(t, tt.wantCanWrite, gate.CanWrite(tt.user))
			assert.Equal(t, tt.user.RegisteredAt.Add(7*day), status.TrialEndDate)
			assert.Equal(t, tt.user.IsSubscribed, status.IsSubscribed)
		})
	}
}

func TestGate_StatusIsRecomputed(t *testing.T) {
	now := referenceNow
	gate := NewGate(config.Trial{Days: 7, WarningDays: 3}).WithClock(func() time.Time { return now })
	user := &domain.User{Role: domain.RoleClient, RegisteredAt: referenceNow}

	assert.True(t, gate.CanWrite(user))

	now = referenceNow.Add(8 * day)
	assert.False(t, gate.CanWrite(user))

	user.IsSubscribed = true
	assert.True(t, gate.CanWrite(user))
}
