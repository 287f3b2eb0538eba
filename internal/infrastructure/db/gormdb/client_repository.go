package gormdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/afyalink/health-system-api/internal/core/domain"
	"github.com/afyalink/health-system-api/internal/core/ports"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	rec := clientRecordFrom(c)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}
	created := rec.toDomain()
	return &created, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id uint) (*domain.Client, error) {
	var rec clientRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	found := rec.toDomain()
	return &found, nil
}

// Search matches the query as a case-insensitive substring against either
// name. Total is counted over the full matching set, not the returned page.
func (r *ClientRepository) Search(ctx context.Context, query string, offset, limit int) ([]domain.Client, int64, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	// Session makes the chain reusable for both the count and the page query.
	base := r.db.WithContext(ctx).Model(&clientRecord{}).
		Where("lower(first_name) LIKE ? OR lower(last_name) LIKE ?", pattern, pattern).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count clients: %w", err)
	}

	var recs []clientRecord
	if err := base.Order("id").Offset(offset).Limit(limit).Find(&recs).Error; err != nil {
		return nil, 0, fmt.Errorf("search clients: %w", err)
	}

	items := make([]domain.Client, 0, len(recs))
	for _, rec := range recs {
		items = append(items, rec.toDomain())
	}
	return items, total, nil
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	rec := clientRecordFrom(c)
	// Save writes every column, giving full-field replace semantics.
	if err := r.db.WithContext(ctx).Save(&rec).Error; err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	updated := rec.toDomain()
	return &updated, nil
}

// Delete removes the client's enrollment rows and the client itself in one
// transaction; a partial delete is never observable.
func (r *ClientRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", id).Delete(&enrollmentRecord{}).Error; err != nil {
			return fmt.Errorf("delete enrollments: %w", err)
		}
		res := tx.Delete(&clientRecord{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete client: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrClientNotFound
		}
		return nil
	})
}

// EnrolledPrograms joins through the enrollment ledger; Client.programs is a
// derived view, never stored independently.
func (r *ClientRepository) EnrolledPrograms(ctx context.Context, clientID uint) ([]ports.EnrolledProgram, error) {
	var enrollments []enrollmentRecord
	if err := r.db.WithContext(ctx).Where("client_id = ?", clientID).Order("id").Find(&enrollments).Error; err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	if len(enrollments) == 0 {
		return []ports.EnrolledProgram{}, nil
	}

	ids := make([]uint, 0, len(enrollments))
	for _, e := range enrollments {
		ids = append(ids, e.ProgramID)
	}

	var programs []programRecord
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&programs).Error; err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	byID := make(map[uint]programRecord, len(programs))
	for _, p := range programs {
		byID[p.ID] = p
	}

	out := make([]ports.EnrolledProgram, 0, len(enrollments))
	for _, e := range enrollments {
		p, ok := byID[e.ProgramID]
		if !ok {
			continue
		}
		out = append(out, ports.EnrolledProgram{
			Program:    p.toDomain(),
			EnrolledAt: e.EnrolledAt,
			Status:     domain.EnrollmentStatus(e.Status),
		})
	}
	return out, nil
}
