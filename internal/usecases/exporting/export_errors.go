package exporting

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("formato de exportação não suportado")
	ErrNoDocuments       = errors.New("nenhum documento no ano")
	ErrRenderFailed      = errors.New("erro ao gerar arquivo")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
	ErrBackupRunning     = errors.New("backup já em execução")
)

// ExportError carrega o código da API junto com o erro base
type ExportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ExportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

func NewExportError(baseErr error, code string, details string) *ExportError {
	return &ExportError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
