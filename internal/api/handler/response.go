package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator"
	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/loan-ledger-api/internal/domain"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/authenticating"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/documenting"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/exporting"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/subscribing"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/summarizing"
	"github.com/vfg2006/loan-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/loan-ledger-api/pkg/log"
	"github.com/vfg2006/loan-ledger-api/pkg/middleware"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = validator.New()
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao enviar resposta")
	}
}

func writeFile(w http.ResponseWriter, file *domain.ExportFile) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Content); err != nil {
		log.L.WithError(err).WithField("file", file.FileName).Error("Erro ao enviar arquivo")
	}
}

// decodeBody decodifica o JSON do corpo e aplica as tags validate.
// Retorna false quando a resposta de erro já foi escrita.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, validationMessage(validationErrs), nil)
			return false
		}
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return false
	}

	return true
}

func validationMessage(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("campo %s é obrigatório", err.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("campo %s deve ser um e-mail válido", err.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("campo %s deve ter no mínimo %s", err.Field(), err.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("campo %s deve ser um de: %s", err.Field(), err.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("campo %s é inválido", err.Field()))
		}
	}
	return strings.Join(msgs, ", ")
}

func claimsFrom(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return claims, true
}

func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName(name)
	if raw == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, fmt.Sprintf("Parâmetro %s não fornecido", name), nil)
		return 0, false
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, fmt.Sprintf("Parâmetro %s inválido", name), nil)
		return 0, false
	}
	return value, true
}

func monthParam(w http.ResponseWriter, r *http.Request) (domain.Month, bool) {
	month, err := domain.ParseMonth(httprouter.ParamsFromContext(r.Context()).ByName("month"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido", map[string]any{
			"months": domain.Months,
		})
		return "", false
	}
	return month, true
}

// scope resolve o cliente e o ano da requisição. Clientes só enxergam os
// próprios dados; administradores podem informar ?client_id=. allClients
// indica um administrador sem client_id.
type scope struct {
	ClientID   int
	Year       int
	AllClients bool
}

func (s scope) Dashboard() domain.DashboardScope {
	if s.AllClients {
		return domain.DashboardScope{Year: s.Year}
	}
	clientID := s.ClientID
	return domain.DashboardScope{ClientID: &clientID, Year: s.Year}
}

func resolveScope(w http.ResponseWriter, r *http.Request, operatingYear int) (scope, bool) {
	claims, ok := claimsFrom(w, r)
	if !ok {
		return scope{}, false
	}

	query := r.URL.Query()
	result := scope{ClientID: claims.UserID, Year: operatingYear}

	if raw := query.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
			return scope{}, false
		}
		result.Year = year
	}

	raw := query.Get("client_id")
	if !claims.IsAdmin() {
		if raw != "" && raw != strconv.Itoa(claims.UserID) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Acesso negado aos dados de outro cliente", nil)
			return scope{}, false
		}
		return result, true
	}

	if raw == "" {
		result.AllClients = true
		return result, true
	}

	clientID, err := strconv.Atoi(raw)
	if err != nil || clientID <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "client_id inválido", nil)
		return scope{}, false
	}
	result.ClientID = clientID

	return result, true
}

// writeServiceError traduz os erros tipados dos casos de uso para a resposta da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var (
		authErr *authenticating.AuthError
		docErr  *documenting.DocumentError
		subErr  *subscribing.SubscriptionError
		expErr  *exporting.ExportError
		code    string
	)

	switch {
	case errors.As(err, &authErr):
		code = authErr.Code
	case errors.As(err, &docErr):
		code = docErr.Code
	case errors.As(err, &subErr):
		code = subErr.Code
	case errors.As(err, &expErr):
		code = expErr.Code
	case errors.Is(err, summarizing.ErrDatabaseOperation):
		code = apiErrors.ErrDatabaseOperation
	default:
		code = apiErrors.ErrInternalServer
	}

	status := apiErrors.StatusFor(code)
	if status >= http.StatusInternalServerError {
		logger.Error(message)
		apiErrors.WriteError(w, code, message, nil)
		return
	}

	logger.Warn(message)
	apiErrors.WriteError(w, code, err.Error(), nil)
}
