package documenting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de documentos
var (
	// Erros de validação
	ErrInvalidEdit     = errors.New("edição de célula inválida")
	ErrInvalidHeaders  = errors.New("cabeçalho inválido")
	ErrInvalidWorkbook = errors.New("planilha inválida")
	ErrInvalidYear     = errors.New("ano inválido")

	// Erros de busca
	ErrDocumentNotFound = errors.New("documento não encontrado")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")

	ErrGenerateID = errors.New("erro ao gerar identificador")
)

// DocumentError é um erro com contexto adicional para documentos
type DocumentError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DocumentError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DocumentError) Unwrap() error {
	return e.Err
}

// NewDocumentError cria um novo DocumentError
func NewDocumentError(err error, code string, details string) *DocumentError {
	return &DocumentError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// IsValidationError verifica se o erro foi causado por dados inválidos do cliente
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidEdit) ||
		errors.Is(err, ErrInvalidHeaders) ||
		errors.Is(err, ErrInvalidWorkbook) ||
		errors.Is(err, ErrInvalidYear)
}
