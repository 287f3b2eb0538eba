package ports

import (
	"context"
	"time"

	"github.com/afyalink/health-system-api/internal/core/domain"
)

// ClientInput carries all demographic fields for creating or replacing a
// client record. DateOfBirth is the ISO-8601 wire form (YYYY-MM-DD).
type ClientInput struct {
	FirstName     string
	LastName      string
	DateOfBirth   string
	Gender        string
	ContactNumber string
	Email         string
	Address       string
}

// SearchClientsInput carries the parameters for the search endpoint.
// Page is 1-based.
type SearchClientsInput struct {
	Query   string
	Page    int
	PerPage int
}

// SearchClientsResult is a page of matching clients plus totals computed over
// the full matching set.
type SearchClientsResult struct {
	Items       []domain.Client
	Total       int64
	Pages       int
	CurrentPage int
}

// EnrolledProgram is a program joined with the client's enrollment row.
type EnrolledProgram struct {
	Program    domain.Program
	EnrolledAt time.Time
	Status     domain.EnrollmentStatus
}

// ClientDetail is the full client view including enrolled programs.
type ClientDetail struct {
	Client   domain.Client
	Programs []EnrolledProgram
}

// ClientService defines use-case operations for the client registry.
type ClientService interface {
	Create(ctx context.Context, input ClientInput, by domain.AuthContext) (*domain.Client, error)
	Get(ctx context.Context, id uint) (*ClientDetail, error)
	Search(ctx context.Context, input SearchClientsInput) (*SearchClientsResult, error)
	Update(ctx context.Context, id uint, input ClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id uint) error
}
