package domain

import (
	"errors"
	"time"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrInvalidToken = errors.New("invalid or expired token")

// User models an authenticated actor in the system. The role tag is
// free-form ("doctor", "nurse", "admin", ...); the API does not interpret it
// beyond carrying it in token claims.
type User struct {
	ID           uint       `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

// AuthContext identifies the verified principal behind a request. It is
// produced once per request by token verification and handed to every
// mutating operation; no auth state lives anywhere else.
type AuthContext struct {
	UserID   uint
	Username string
	Role     string
}
