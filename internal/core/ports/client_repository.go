package ports

import (
	"context"

	"github.com/afyalink/health-system-api/internal/core/domain"
)

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id uint) (*domain.Client, error)
	// Search returns a page of clients whose first or last name contains query
	// (case-insensitive), plus the total count over the full matching set.
	Search(ctx context.Context, query string, offset, limit int) ([]domain.Client, int64, error)
	Update(ctx context.Context, c *domain.Client) (*domain.Client, error)
	// Delete removes the client and all of its enrollment rows in a single
	// transaction.
	Delete(ctx context.Context, id uint) error
	// EnrolledPrograms returns the programs the client is enrolled in, joined
	// through the enrollment ledger.
	EnrolledPrograms(ctx context.Context, clientID uint) ([]EnrolledProgram, error)
}
