package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleUser    = "user"
	RoleCashier = "cashier"
)

// User representa un usuario del back-office (administrador o cajero).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, user, cashier
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
