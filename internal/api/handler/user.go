package handler

import (
	"net/http"

	"github.com/vfg2006/loan-ledger-api/internal/domain"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/authenticating"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/subscribing"
)

func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUser(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar usuários")
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}

// UpdateUser altera nome, e-mail, perfil ou status de uma conta
func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := intParam(w, r, "id")
		if !ok {
			return
		}

		var req domain.UpdateUserRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = id

		if err := service.UpdateUser(r.Context(), &req); err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar usuário")
			return
		}

		user, err := service.GetUserProfile(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar usuário")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// SetSubscription liga ou desliga a assinatura de um cliente
func SetSubscription(service subscribing.Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := intParam(w, r, "id")
		if !ok {
			return
		}

		var req domain.SubscriptionRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := service.SetSubscription(r.Context(), id, *req.IsSubscribed)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar assinatura")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
