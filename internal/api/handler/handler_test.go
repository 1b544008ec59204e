package handler

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/loan-ledger-api/internal/api/handler/router"
	"github.com/vfg2006/loan-ledger-api/internal/config"
	"github.com/vfg2006/loan-ledger-api/internal/domain"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/loan-ledger-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/documenting"
	docmocks "github.com/vfg2006/loan-ledger-api/internal/usecases/documenting/mocks"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/exporting"
	expmocks "github.com/vfg2006/loan-ledger-api/internal/usecases/exporting/mocks"
	submocks "github.com/vfg2006/loan-ledger-api/internal/usecases/subscribing/mocks"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/summarizing"
	summocks "github.com/vfg2006/loan-ledger-api/internal/usecases/summarizing/mocks"
	"github.com/vfg2006/loan-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/loan-ledger-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

var (
	testDocCfg = config.Document{OperatingYear: 2026, MaxUploadSize: 1 << 20}
	clientUser = &domain.Claims{UserID: 10, UserRole: domain.RoleClient}
	adminUser  = &domain.Claims{UserID: 1, UserRole: domain.RoleAdmin}
)

type testDeps struct {
	auth       *authmocks.MockAuthenticator
	documenter *docmocks.MockDocumenter
	summarizer *summocks.MockSummarizer
	subscriber *submocks.MockSubscriber
	exporter   *expmocks.MockExporter
	backup     *fakeBackupTrigger
}

type fakeBackupTrigger struct {
	started bool
	running bool
}

func (f *fakeBackupTrigger) TriggerManualSync() bool {
	if f.running {
		return false
	}
	f.started = true
	return true
}

func (f *fakeBackupTrigger) GetStatus() map[string]any {
	return map[string]any{"running": f.running}
}

func newTestRouter(t *testing.T) (router.Router, testDeps) {
	ctrl := gomock.NewController(t)
	deps := testDeps{
		auth:       authmocks.NewMockAuthenticator(ctrl),
		documenter: docmocks.NewMockDocumenter(ctrl),
		summarizer: summocks.NewMockSummarizer(ctrl),
		subscriber: submocks.NewMockSubscriber(ctrl),
		exporter:   expmocks.NewMockExporter(ctrl),
		backup:     &fakeBackupTrigger{},
	}

	rt := router.New(
		router.WithRoutes(Authentication(deps.auth, middleware.NewIPRateLimiter(100, 100))...),
		router.WithRoutes(User(deps.auth, deps.subscriber)...),
		router.WithRoutes(Documents(deps.documenter, deps.exporter, deps.subscriber, testDocCfg)...),
		router.WithRoutes(Dashboard(deps.summarizer, testDocCfg)...),
		router.WithRoutes(Backups(deps.exporter, testDocCfg)...),
		router.WithRoutes(Payments(deps.subscriber, testDocCfg)...),
		router.WithRoutes(Admin(deps.documenter, testDocCfg)...),
		router.WithRoutes(CronJobs(CronJobServices{BackupSyncService: deps.backup})...),
	)

	return rt, deps
}

func do(rt http.Handler, claims *domain.Claims, method, target string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if claims != nil {
		req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func jsonBody(s string) *bytes.Buffer {
	return bytes.NewBufferString(s)
}

func multipartBody(t *testing.T, fileName string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func assertCode(t *testing.T, rec *httptest.ResponseRecorder, code string) {
	t.Helper()
	assert.Equal(t, apiErrors.StatusFor(code), rec.Code)

	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, code, body.Code)
}

func TestAuthenticationHandlers(t *testing.T) {
	t.Run("Login", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.auth.EXPECT().LoginUser(gomock.Any(), "ana@example.com", "Senha123").
			Return(&domain.LoginResponse{Token: "jwt"}, nil)

		rec := do(rt, nil, http.MethodPost, "/v1/login", jsonBody(`{"email":"ana@example.com","password":"Senha123"}`), "application/json")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"token":"jwt"`)
	})

	t.Run("Login com credenciais inválidas", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.auth.EXPECT().LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, ""))

		rec := do(rt, nil, http.MethodPost, "/v1/login", jsonBody(`{"email":"ana@example.com","password":"x"}`), "application/json")

		assertCode(t, rec, apiErrors.ErrInvalidCredentials)
	})

	t.Run("Registro valida o corpo", func(t *testing.T) {
		rt, _ := newTestRouter(t)

		rec := do(rt, nil, http.MethodPost, "/v1/register", jsonBody(`{"name":"Ana","email":"não-é-email","password":"Senha123"}`), "application/json")

		assertCode(t, rec, apiErrors.ErrMissingRequiredData)
		assert.Contains(t, rec.Body.String(), "Email")
	})

	t.Run("Registro", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.auth.EXPECT().Register(gomock.Any(), &domain.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "Senha123"}).
			Return(&domain.User{ID: 3, Name: "Ana", Role: domain.RoleClient}, nil)

		rec := do(rt, nil, http.MethodPost, "/v1/register", jsonBody(`{"name":"Ana","email":"ana@example.com","password":"Senha123"}`), "application/json")

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Troca de senha de outro usuário", func(t *testing.T) {
		rt, _ := newTestRouter(t)

		rec := do(rt, clientUser, http.MethodPost, "/v1/users/99/change-password", jsonBody(`{"current_password":"a","new_password":"Senha1234"}`), "application/json")

		assertCode(t, rec, apiErrors.ErrInsufficientPrivilege)
	})

	t.Run("Me", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.auth.EXPECT().GetUserProfile(gomock.Any(), 10).Return(&domain.User{ID: 10, Name: "Ana"}, nil)

		rec := do(rt, clientUser, http.MethodGet, "/v1/me", nil, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Ana"`)
	})
}

func TestUserHandlers(t *testing.T) {
	t.Run("Cliente não lista usuários", func(t *testing.T) {
		rt, _ := newTestRouter(t)

		rec := do(rt, clientUser, http.MethodGet, "/v1/users", nil, "")

		assertCode(t, rec, apiErrors.ErrInsufficientPrivilege)
	})

	t.Run("Assinatura exige is_subscribed", func(t *testing.T) {
		rt, _ := newTestRouter(t)

		rec := do(rt, adminUser, http.MethodPut, "/v1/users/10/subscription", jsonBody(`{}`), "application/json")

		assertCode(t, rec, apiErrors.ErrMissingRequiredData)
	})

	t.Run("Admin ativa assinatura", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.subscriber.EXPECT().SetSubscription(gomock.Any(), 10, true).Return(&domain.User{ID: 10, IsSubscribed: true}, nil)

		rec := do(rt, adminUser, http.MethodPut, "/v1/users/10/subscription", jsonBody(`{"is_subscribed":true}`), "application/json")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestDocumentHandlers(t *testing.T) {
	activeTrial := &domain.TrialStatus{DaysRemaining: 5, CanWrite: true, State: domain.StateActiveTrial}

	t.Run("Get usa o ano de operação e o próprio cliente", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.documenter.EXPECT().Get(gomock.Any(), 10, domain.March, 2026).
			Return(&domain.MergedDocument{ClientID: 10, Month: domain.March, Year: 2026}, nil)

		rec := do(rt, clientUser, http.MethodGet, "/v1/documents/marzo", nil, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"month":"Marzo"`)
	})

	t.Run("Mês inválido", func(t *testing.T) {
		rt, _ := newTestRouter(t)

		rec := do(rt, clientUser, http.MethodGet, "/v1/documents/march", nil, "")

		assertCode(t, rec, apiErrors.ErrInvalidFormat)
	})

	t.Run("Cliente não acessa outro client_id", func(t *testing.T) {
		rt, _ := newTestRouter(t)

		rec := do(rt, clientUser, http.MethodGet, "/v1/documents/Marzo?client_id=20", nil, "")

		assertCode(t, rec, apiErrors.ErrInsufficientPrivilege)
	})

	t.Run("Admin informa client_id e ano", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.documenter.EXPECT().List(gomock.Any(), 20, 2025).Return([]*domain.DocumentSummary{}, nil)

		rec := do(rt, adminUser, http.MethodGet, "/v1/documents?client_id=20&year=2025", nil, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Edição de célula passa pelo gate", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.subscriber.EXPECT().Status(gomock.Any(), 10).Return(activeTrial, nil)
		deps.documenter.EXPECT().ApplyCellEdit(gomock.Any(), 10, domain.March, 2026, domain.CellEdit{Row: 2, Col: 3, Value: "500"}).
			Return(&domain.MergedDocument{OverrideCount: 1}, nil)

		rec := do(rt, clientUser, http.MethodPut, "/v1/documents/Marzo/cell", jsonBody(`{"row":2,"col":3,"value":"500"}`), "application/json")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "5", rec.Header().Get(middleware.HeaderTrialDaysRemaining))
	})

	t.Run("Edição de célula aceita valor numérico", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.subscriber.EXPECT().Status(gomock.Any(), 10).Return(activeTrial, nil)
		deps.documenter.EXPECT().ApplyCellEdit(gomock.Any(), 10, domain.March, 2026, domain.CellEdit{Row: 2, Col: 6, Value: "100"}).
			Return(&domain.MergedDocument{OverrideCount: 1}, nil)

		rec := do(rt, clientUser, http.MethodPut, "/v1/documents/Marzo/cell", jsonBody(`{"row":2,"col":6,"value":100}`), "application/json")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Avaliação encerrada bloqueia escrita", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.subscriber.EXPECT().Status(gomock.Any(), 10).Return(&domain.TrialStatus{State: domain.StateExpiredReadOnly}, nil)

		rec := do(rt, clientUser, http.MethodPost, "/v1/documents/Marzo/bulk-update", jsonBody(`{"edits":[{"row":0,"col":0,"value":"x"}]}`), "application/json")

		assertCode(t, rec, apiErrors.ErrTrialExpired)
	})

	t.Run("Edição inválida", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.subscriber.EXPECT().Status(gomock.Any(), 10).Return(activeTrial, nil)
		deps.documenter.EXPECT().ApplyBulkEdits(gomock.Any(), 10, domain.March, 2026, gomock.Any()).
			Return(nil, documenting.NewDocumentError(documenting.ErrInvalidEdit, apiErrors.ErrInvalidRequest, "coluna 40"))

		rec := do(rt, clientUser, http.MethodPost, "/v1/documents/Marzo/bulk-update", jsonBody(`{"edits":[{"row":0,"col":40,"value":"x"}]}`), "application/json")

		assertCode(t, rec, apiErrors.ErrInvalidRequest)
	})

	t.Run("Lote vazio", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.subscriber.EXPECT().Status(gomock.Any(), 10).Return(activeTrial, nil)

		rec := do(rt, clientUser, http.MethodPost, "/v1/documents/Marzo/bulk-update", jsonBody(`{"edits":[]}`), "application/json")

		assertCode(t, rec, apiErrors.ErrMissingRequiredData)
	})

	t.Run("Substituição", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.subscriber.EXPECT().Status(gomock.Any(), 10).Return(activeTrial, nil)
		deps.documenter.EXPECT().Replace(gomock.Any(), 10, domain.April, 2026, []string{"Fecha", "Monto"}, gomock.Any()).
			Return(&domain.MergedDocument{Month: domain.April}, nil)

		rec := do(rt, clientUser, http.MethodPost, "/v1/documents/Abril", jsonBody(`{"headers":["Fecha","Monto"],"rows":[["01/04/2026",1500]]}`), "application/json")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Upload de xlsx", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.subscriber.EXPECT().Status(gomock.Any(), 10).Return(activeTrial, nil)
		deps.documenter.EXPECT().Import(gomock.Any(), 10, domain.March, 2026, gomock.Any()).
			Return(&domain.MergedDocument{Month: domain.March}, nil)

		body, contentType := multipartBody(t, "marzo.xlsx", []byte("PK"), nil)
		rec := do(rt, clientUser, http.MethodPost, "/v1/documents/Marzo/upload", body, contentType)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Upload com extensão errada", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.subscriber.EXPECT().Status(gomock.Any(), 10).Return(activeTrial, nil)

		body, contentType := multipartBody(t, "marzo.csv", []byte("a;b"), nil)
		rec := do(rt, clientUser, http.MethodPost, "/v1/documents/Marzo/upload", body, contentType)

		assertCode(t, rec, apiErrors.ErrInvalidFormat)
	})

	t.Run("Upload acima do limite", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.subscriber.EXPECT().Status(gomock.Any(), 10).Return(activeTrial, nil)

		body, contentType := multipartBody(t, "marzo.xlsx", bytes.Repeat([]byte("x"), int(testDocCfg.MaxUploadSize)+1), nil)
		rec := do(rt, clientUser, http.MethodPost, "/v1/documents/Marzo/upload", body, contentType)

		assertCode(t, rec, apiErrors.ErrPayloadTooLarge)
	})

	t.Run("Remoção de documento ausente", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.subscriber.EXPECT().Status(gomock.Any(), 10).Return(activeTrial, nil)
		deps.documenter.EXPECT().Delete(gomock.Any(), 10, domain.June, 2026).
			Return(documenting.NewDocumentError(documenting.ErrDocumentNotFound, apiErrors.ErrDocumentNotFound, ""))

		rec := do(rt, clientUser, http.MethodDelete, "/v1/documents/Junio", nil, "")

		assertCode(t, rec, apiErrors.ErrDocumentNotFound)
	})

	t.Run("Remoção", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.subscriber.EXPECT().Status(gomock.Any(), 10).Return(activeTrial, nil)
		deps.documenter.EXPECT().Delete(gomock.Any(), 10, domain.June, 2026).Return(nil)

		rec := do(rt, clientUser, http.MethodDelete, "/v1/documents/Junio", nil, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Exportação em pdf", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.exporter.EXPECT().ExportDocument(gomock.Any(), 10, domain.March, 2026, domain.ExportPDF).
			Return(&domain.ExportFile{FileName: "planilla_Marzo_2026.pdf", ContentType: "application/pdf", Content: []byte("%PDF")}, nil)

		rec := do(rt, clientUser, http.MethodGet, "/v1/documents/Marzo/export?format=PDF", nil, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="planilla_Marzo_2026.pdf"`, rec.Header().Get("Content-Disposition"))
		assert.Equal(t, "%PDF", rec.Body.String())
	})
}

func TestDashboardHandlers(t *testing.T) {
	t.Run("Admin sem client_id agrega todos", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.summarizer.EXPECT().Summary(gomock.Any(), domain.DashboardScope{Year: 2026}).
			Return(&domain.Summary{TotalClients: 4, TotalAmount: 1000}, nil)

		rec := do(rt, adminUser, http.MethodGet, "/v1/dashboard/summary", nil, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"totalClients":4`)
	})

	t.Run("Cliente agrega os próprios documentos", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.summarizer.EXPECT().ByMonths(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, scope domain.DashboardScope) ([]domain.MonthBucket, error) {
				require.NotNil(t, scope.ClientID)
				assert.Equal(t, 10, *scope.ClientID)
				return []domain.MonthBucket{{Month: domain.January}}, nil
			})

		rec := do(rt, clientUser, http.MethodGet, "/v1/dashboard/by-months", nil, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Por dias", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.summarizer.EXPECT().ByDays(gomock.Any(), gomock.Any(), domain.February).Return([]domain.DayBucket{{Day: "01/02/2026"}}, nil)

		rec := do(rt, clientUser, http.MethodGet, "/v1/dashboard/by-days/febrero", nil, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "01/02/2026")
	})

	t.Run("Falha de banco", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.summarizer.EXPECT().Full(gomock.Any(), gomock.Any()).Return(nil, summarizing.ErrDatabaseOperation)

		rec := do(rt, clientUser, http.MethodGet, "/v1/dashboard/full", nil, "")

		assertCode(t, rec, apiErrors.ErrDatabaseOperation)
	})

	t.Run("Ano inválido", func(t *testing.T) {
		rt, _ := newTestRouter(t)

		rec := do(rt, clientUser, http.MethodGet, "/v1/dashboard/full?year=abc", nil, "")

		assertCode(t, rec, apiErrors.ErrInvalidFormat)
	})
}

func TestBackupHandlers(t *testing.T) {
	t.Run("Download do ano sem documentos", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.exporter.EXPECT().ExportYear(gomock.Any(), 10, 2026).
			Return(nil, exporting.NewExportError(exporting.ErrNoDocuments, apiErrors.ErrDocumentNotFound, "2026"))

		rec := do(rt, clientUser, http.MethodGet, "/v1/backups/download", nil, "")

		assertCode(t, rec, apiErrors.ErrDocumentNotFound)
	})

	t.Run("Último backup", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.exporter.EXPECT().LastBackup().Return(&domain.BackupInfo{Clients: 3})

		rec := do(rt, adminUser, http.MethodGet, "/v1/backups/last", nil, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"clients":3`)
	})
}

func TestPaymentHandlers(t *testing.T) {
	t.Run("Envio de comprovante", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.subscriber.EXPECT().SubmitPaymentProof(gomock.Any(), 10, "pix de março", gomock.Any()).DoAndReturn(
			func(_ any, _ int, _ string, file *domain.Attachment) (*domain.PaymentProof, error) {
				assert.Equal(t, "comprovante.pdf", file.FileName)
				assert.Equal(t, []byte("%PDF-1.4"), file.Content)
				return &domain.PaymentProof{ID: "p1", Status: domain.PaymentProofPending}, nil
			})

		body, contentType := multipartBody(t, "comprovante.pdf", []byte("%PDF-1.4"), map[string]string{"note": "pix de março"})
		rec := do(rt, clientUser, http.MethodPost, "/v1/payments/proof", body, contentType)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Filtro de status inválido", func(t *testing.T) {
		rt, _ := newTestRouter(t)

		rec := do(rt, adminUser, http.MethodGet, "/v1/payments/proofs?status=rejected", nil, "")

		assertCode(t, rec, apiErrors.ErrInvalidFormat)
	})

	t.Run("Aprovação", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.subscriber.EXPECT().ApprovePaymentProof(gomock.Any(), "p1").
			Return(&domain.PaymentProof{ID: "p1", Status: domain.PaymentProofApproved}, nil)

		rec := do(rt, adminUser, http.MethodPost, "/v1/payments/proofs/p1/approve", nil, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"approved"`)
	})
}

func TestAdminAndCronHandlers(t *testing.T) {
	t.Run("Estatísticas", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.documenter.EXPECT().Stats(gomock.Any(), 2026).Return(&domain.DocumentStats{Year: 2026}, nil)

		rec := do(rt, adminUser, http.MethodGet, "/v1/admin/stats", nil, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Backup manual", func(t *testing.T) {
		rt, deps := newTestRouter(t)

		rec := do(rt, adminUser, http.MethodPost, "/v1/cron/backup/run", nil, "")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.True(t, deps.backup.started)
	})

	t.Run("Backup já em execução", func(t *testing.T) {
		rt, deps := newTestRouter(t)
		deps.backup.running = true

		rec := do(rt, adminUser, http.MethodPost, "/v1/cron/backup/run", nil, "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Tipo desconhecido", func(t *testing.T) {
		rt, _ := newTestRouter(t)

		rec := do(rt, adminUser, http.MethodPost, "/v1/cron/meta/run", nil, "")

		assertCode(t, rec, apiErrors.ErrInvalidRequest)
	})

	t.Run("Status", func(t *testing.T) {
		rt, _ := newTestRouter(t)

		rec := do(rt, adminUser, http.MethodGet, "/v1/cron/status", nil, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.Contains(rec.Body.String(), `"backup"`))
	})
}

type downDB struct{}

func (downDB) Ping(context.Context) error { return errors.New("conexão recusada") }

func TestHealthcheck(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthcheckHandler(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	HealthcheckHandler(downDB{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assertCode(t, rec, apiErrors.ErrCommunication)
}
