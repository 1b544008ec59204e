package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role é o perfil de acesso de uma conta
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

type User struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"password,omitempty"`
	Role         Role         `json:"role"`
	Active       bool         `json:"active"`
	IsSubscribed bool         `json:"is_subscribed"`
	SubscribedAt *time.Time   `json:"subscribed_at"`
	RegisteredAt time.Time    `json:"registered_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	Trial        *TrialStatus `json:"trial,omitempty"`
}

// IsAdmin informa se a conta é de administrador
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type SubscriptionRequest struct {
	IsSubscribed *bool `json:"is_subscribed" validate:"required"`
}

type Claims struct {
	UserID    int
	UserName  string
	UserEmail string
	UserRole  Role
	jwt.RegisteredClaims
}

// IsAdmin informa se o token é de administrador
func (c *Claims) IsAdmin() bool {
	return c.UserRole == RoleAdmin
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *User        `json:"user"`
	Trial *TrialStatus `json:"trial"`
}

type UpdateUserRequest struct {
	ID     int     `json:"-"`
	Name   *string `json:"name"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Active *bool   `json:"active"`
	Role   *Role   `json:"role" validate:"omitempty,oneof=admin client"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}
