package handler

import (
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/loan-ledger-api/internal/config"
	"github.com/vfg2006/loan-ledger-api/internal/domain"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/subscribing"
	"github.com/vfg2006/loan-ledger-api/pkg/apiErrors"
)

// SubmitPaymentProof recebe o comprovante (campo "file") e a observação ("note")
func SubmitPaymentProof(service subscribing.Subscriber, cfg config.Document) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		file, fileName, ok := readUpload(w, r, cfg.MaxUploadSize)
		if !ok {
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler o arquivo enviado", nil)
			return
		}

		attachment := &domain.Attachment{
			FileName:    fileName,
			ContentType: http.DetectContentType(content),
			Content:     content,
		}

		proof, err := service.SubmitPaymentProof(r.Context(), claims.UserID, r.FormValue("note"), attachment)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao enviar comprovante")
			return
		}

		writeJSON(w, http.StatusCreated, proof)
	}
}

// ListPaymentProofs aceita ?status=pending|approved
func ListPaymentProofs(service subscribing.Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var status *domain.PaymentProofStatus

		if raw := r.URL.Query().Get("status"); raw != "" {
			s := domain.PaymentProofStatus(raw)
			if s != domain.PaymentProofPending && s != domain.PaymentProofApproved {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status inválido. Valores aceitos: pending, approved", nil)
				return
			}
			status = &s
		}

		proofs, err := service.ListPaymentProofs(r.Context(), status)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar comprovantes")
			return
		}

		writeJSON(w, http.StatusOK, proofs)
	}
}

func ApprovePaymentProof(service subscribing.Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		proofID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if proofID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do comprovante não fornecido", nil)
			return
		}

		proof, err := service.ApprovePaymentProof(r.Context(), proofID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao aprovar comprovante")
			return
		}

		writeJSON(w, http.StatusOK, proof)
	}
}
