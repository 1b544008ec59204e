package handler

import (
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/loan-ledger-api/internal/config"
	"github.com/vfg2006/loan-ledger-api/internal/domain"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/documenting"
	"github.com/vfg2006/loan-ledger-api/internal/usecases/exporting"
	"github.com/vfg2006/loan-ledger-api/pkg/apiErrors"
)

type ReplaceDocumentRequest struct {
	Headers []string    `json:"headers" validate:"required,min=1"`
	Rows    domain.Grid `json:"rows"`
}

type BulkUpdateRequest struct {
	Edits []domain.CellEdit `json:"edits" validate:"required,min=1,dive"`
}

// ListDocuments lista os meses do ano que já possuem documento
func ListDocuments(service documenting.Documenter, cfg config.Document) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := resolveScope(w, r, cfg.OperatingYear)
		if !ok {
			return
		}

		docs, err := service.List(r.Context(), s.ClientID, s.Year)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar documentos")
			return
		}

		writeJSON(w, http.StatusOK, docs)
	}
}

// GetDocument retorna a grade mesclada do mês, criando o documento vazio no primeiro acesso
func GetDocument(service documenting.Documenter, cfg config.Document) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, ok := monthParam(w, r)
		if !ok {
			return
		}
		s, ok := resolveScope(w, r, cfg.OperatingYear)
		if !ok {
			return
		}

		doc, err := service.Get(r.Context(), s.ClientID, month, s.Year)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar documento")
			return
		}

		writeJSON(w, http.StatusOK, doc)
	}
}

func ReplaceDocument(service documenting.Documenter, cfg config.Document) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, ok := monthParam(w, r)
		if !ok {
			return
		}
		s, ok := resolveScope(w, r, cfg.OperatingYear)
		if !ok {
			return
		}

		var req ReplaceDocumentRequest
		if !decodeBody(w, r, &req) {
			return
		}

		doc, err := service.Replace(r.Context(), s.ClientID, month, s.Year, req.Headers, req.Rows)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao salvar documento")
			return
		}

		writeJSON(w, http.StatusOK, doc)
	}
}

// UploadDocument importa um .xlsx enviado no campo multipart "file"
func UploadDocument(service documenting.Documenter, cfg config.Document) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, ok := monthParam(w, r)
		if !ok {
			return
		}
		s, ok := resolveScope(w, r, cfg.OperatingYear)
		if !ok {
			return
		}

		file, fileName, ok := readUpload(w, r, cfg.MaxUploadSize)
		if !ok {
			return
		}
		defer file.Close()

		if !strings.EqualFold(filepath.Ext(fileName), ".xlsx") {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Envie um arquivo .xlsx", nil)
			return
		}

		doc, err := service.Import(r.Context(), s.ClientID, month, s.Year, file)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao importar planilha")
			return
		}

		writeJSON(w, http.StatusOK, doc)
	}
}

func UpdateCell(service documenting.Documenter, cfg config.Document) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, ok := monthParam(w, r)
		if !ok {
			return
		}
		s, ok := resolveScope(w, r, cfg.OperatingYear)
		if !ok {
			return
		}

		var edit domain.CellEdit
		if !decodeBody(w, r, &edit) {
			return
		}

		doc, err := service.ApplyCellEdit(r.Context(), s.ClientID, month, s.Year, edit)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao editar célula")
			return
		}

		writeJSON(w, http.StatusOK, doc)
	}
}

func BulkUpdate(service documenting.Documenter, cfg config.Document) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, ok := monthParam(w, r)
		if !ok {
			return
		}
		s, ok := resolveScope(w, r, cfg.OperatingYear)
		if !ok {
			return
		}

		var req BulkUpdateRequest
		if !decodeBody(w, r, &req) {
			return
		}

		doc, err := service.ApplyBulkEdits(r.Context(), s.ClientID, month, s.Year, req.Edits)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao editar células")
			return
		}

		writeJSON(w, http.StatusOK, doc)
	}
}

func DeleteDocument(service documenting.Documenter, cfg config.Document) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, ok := monthParam(w, r)
		if !ok {
			return
		}
		s, ok := resolveScope(w, r, cfg.OperatingYear)
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), s.ClientID, month, s.Year); err != nil {
			writeServiceError(w, r, err, "Erro ao remover documento")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ExportDocument baixa a grade mesclada do mês como xlsx (padrão) ou pdf
func ExportDocument(service exporting.Exporter, cfg config.Document) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, ok := monthParam(w, r)
		if !ok {
			return
		}
		s, ok := resolveScope(w, r, cfg.OperatingYear)
		if !ok {
			return
		}

		format := domain.ExportFormat(strings.ToLower(r.URL.Query().Get("format")))

		file, err := service.ExportDocument(r.Context(), s.ClientID, month, s.Year, format)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao exportar documento")
			return
		}

		writeFile(w, file)
	}
}

// readUpload limita o corpo a maxSize e retorna o campo "file" do formulário
func readUpload(w http.ResponseWriter, r *http.Request, maxSize int64) (multipart.File, string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) || errors.Is(err, multipart.ErrMessageTooLarge) {
			apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Arquivo acima do tamanho permitido", map[string]any{
				"max_bytes": maxSize,
			})
			return nil, "", false
		}
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formulário multipart inválido", nil)
		return nil, "", false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo file é obrigatório", nil)
		return nil, "", false
	}

	return file, header.Filename, true
}
