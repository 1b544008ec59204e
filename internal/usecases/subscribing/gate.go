package subscribing

import (
	"math"
	"time"

	"github.com/vfg2006/loan-ledger-api/internal/config"
	"github.com/vfg2006/loan-ledger-api/internal/domain"
)

const day = 24 * time.Hour

// Gate deriva o estado de acesso de uma conta a partir da data de cadastro
// e do indicador de assinatura. Nada é persistido.
type Gate struct {
	trialDays   int
	warningDays int
	now         func() time.Time
}

func NewGate(cfg config.Trial) *Gate {
	return &Gate{
		trialDays:   cfg.Days,
		warningDays: cfg.WarningDays,
		now:         time.Now,
	}
}

// WithClock troca o relógio usado nos cálculos
func (g *Gate) WithClock(now func() time.Time) *Gate {
	g.now = now
	return g
}

// Status calcula o estado do período de avaliação no instante atual
func (g *Gate) Status(user *domain.User) domain.TrialStatus {
	now := g.now()
	end := user.RegisteredAt.Add(time.Duration(g.trialDays) * day)

	remaining := 0
	if left := end.Sub(now); left > 0 {
		remaining = int(math.Ceil(float64(left) / float64(day)))
	}

	active := now.Before(end)

	status := domain.TrialStatus{
		IsTrialActive: active,
		DaysRemaining: remaining,
		TrialEndDate:  end,
		IsSubscribed:  user.IsSubscribed,
		ExpiringSoon:  active && remaining <= g.warningDays,
	}

	switch {
	case user.IsSubscribed:
		status.State = domain.StateActiveSubscribed
	case active:
		status.State = domain.StateActiveTrial
	default:
		status.State = domain.StateExpiredReadOnly
	}

	status.CanWrite = user.IsAdmin() || status.State != domain.StateExpiredReadOnly

	return status
}

// CanWrite informa se a conta pode alterar documentos
func (g *Gate) CanWrite(user *domain.User) bool {
	return g.Status(user).CanWrite
}
