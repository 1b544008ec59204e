package authenticating

import (
	"errors"
	"fmt"
)

var (
	// login e sessão
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUserDisabled       = errors.New("usuário desativado")
	ErrInvalidToken       = errors.New("token inválido")
	ErrExpiredToken       = errors.New("sessão expirada")

	// cadastro e perfil
	ErrUserNotFound        = errors.New("usuário não encontrado")
	ErrUserAlreadyExists   = errors.New("email já cadastrado")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrNoAdminPrivileges   = errors.New("apenas administradores podem realizar esta ação")

	// senha
	ErrWeakPassword = errors.New("senha fraca")
	ErrSamePassword = errors.New("nova senha deve ser diferente da atual")

	ErrDatabaseOperation = errors.New("erro ao acessar usuários no banco de dados")
)

// AuthError carrega o código da API e o usuário envolvido, quando houver
type AuthError struct {
	Err     error
	Code    string
	UserID  int
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsFailedLogin indica tentativa de login recusada (senha errada ou conta desativada)
func IsFailedLogin(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrUserDisabled)
}

// IsSessionError indica que o token recebido não serve mais e o cliente deve logar de novo
func IsSessionError(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrExpiredToken)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{Err: baseErr, Code: code, Details: details}
}

func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{Err: baseErr, Code: code, UserID: userID, Details: details}
}
