package domain

import "context"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User : créé hors bande (cmd/seeduser), jamais muté par l'API.
// PasswordHash contient un hash bcrypt, jamais le mot de passe en clair.
type User struct {
	UserID       uint
	Username     string
	PasswordHash string
	Role         string
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
}
