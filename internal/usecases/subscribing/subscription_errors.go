package subscribing

import (
	"errors"
	"fmt"
)

var (
	ErrTrialExpired         = errors.New("período de avaliação encerrado")
	ErrUserNotFound         = errors.New("usuário não encontrado")
	ErrPaymentProofNotFound = errors.New("comprovante não encontrado")
	ErrProofAlreadyApproved = errors.New("comprovante já aprovado")
	ErrInvalidAttachment    = errors.New("arquivo do comprovante inválido")

	// Erros de serviços externos
	ErrNotificationFailed = errors.New("erro ao enviar e-mail")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")

	ErrGenerateID = errors.New("erro ao gerar identificador")
)

// SubscriptionError é um erro com contexto adicional para assinaturas
type SubscriptionError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	UserID  int    // ID do usuário envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *SubscriptionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *SubscriptionError) Unwrap() error {
	return e.Err
}

func NewSubscriptionError(err error, code string, details string) *SubscriptionError {
	return &SubscriptionError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewUserSubscriptionError(err error, code string, userID int, details string) *SubscriptionError {
	return &SubscriptionError{
		Err:     err,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
