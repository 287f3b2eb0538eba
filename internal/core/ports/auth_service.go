package ports

import (
	"context"

	"github.com/afyalink/health-system-api/internal/core/domain"
)

// RegisterInput carries the fields needed to create a system user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// AuthService defines registration, login and token verification.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Verify checks a bearer token without any server-side state lookup and
	// returns the principal it asserts.
	Verify(ctx context.Context, token string) (domain.AuthContext, error)
}
