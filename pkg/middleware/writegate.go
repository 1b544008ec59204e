package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vfg2006/loan-ledger-api/internal/usecases/subscribing"
	"github.com/vfg2006/loan-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/loan-ledger-api/pkg/log"
)

const (
	HeaderTrialDaysRemaining = "X-Trial-Days-Remaining"
	HeaderTrialExpiring      = "X-Trial-Expiring"
)

// WriteGate bloqueia escritas de contas com avaliação encerrada e sem
// assinatura. Administradores não passam pelo gate.
func WriteGate(subscriber subscribing.Subscriber) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if claims.IsAdmin() {
				next.ServeHTTP(w, r)
				return
			}

			status, err := subscriber.Status(r.Context(), claims.UserID)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).WithField("user_id", claims.UserID).Error("Erro ao consultar avaliação")

				code := apiErrors.ErrInternalServer
				var subErr *subscribing.SubscriptionError
				if errors.As(err, &subErr) {
					code = subErr.Code
				}
				apiErrors.WriteError(w, code, "Não foi possível verificar a assinatura", nil)
				return
			}

			w.Header().Set(HeaderTrialDaysRemaining, strconv.Itoa(status.DaysRemaining))
			if status.ExpiringSoon {
				w.Header().Set(HeaderTrialExpiring, "true")
			}

			if !status.CanWrite {
				apiErrors.WriteError(w, apiErrors.ErrTrialExpired, "Período de avaliação encerrado. Assine para continuar editando.", map[string]any{
					"trial_end_date": status.TrialEndDate,
					"state":          status.State,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
