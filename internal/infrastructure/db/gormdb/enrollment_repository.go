package gormdb

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/afyalink/health-system-api/internal/core/domain"
)

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// CreateBatch inserts every row inside one transaction. A duplicate
// (client, program) pair fails the whole batch; no partial rows survive.
func (r *EnrollmentRepository) CreateBatch(ctx context.Context, rows []domain.Enrollment) ([]domain.Enrollment, error) {
	recs := make([]enrollmentRecord, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, enrollmentRecordFrom(row))
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&recs).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrAlreadyEnrolled
		}
		return nil, fmt.Errorf("insert enrollments: %w", err)
	}

	out := make([]domain.Enrollment, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toDomain())
	}
	return out, nil
}

func (r *EnrollmentRepository) Find(ctx context.Context, clientID, programID uint) (*domain.Enrollment, error) {
	var rec enrollmentRecord
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND program_id = ?", clientID, programID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("find enrollment: %w", err)
	}
	found := rec.toDomain()
	return &found, nil
}

func (r *EnrollmentRepository) UpdateStatus(ctx context.Context, clientID, programID uint, status domain.EnrollmentStatus) (*domain.Enrollment, error) {
	res := r.db.WithContext(ctx).Model(&enrollmentRecord{}).
		Where("client_id = ? AND program_id = ?", clientID, programID).
		Update("status", string(status))
	if res.Error != nil {
		return nil, fmt.Errorf("update enrollment status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrEnrollmentNotFound
	}
	return r.Find(ctx, clientID, programID)
}

func (r *EnrollmentRepository) Delete(ctx context.Context, clientID, programID uint) error {
	res := r.db.WithContext(ctx).
		Where("client_id = ? AND program_id = ?", clientID, programID).
		Delete(&enrollmentRecord{})
	if res.Error != nil {
		return fmt.Errorf("delete enrollment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrEnrollmentNotFound
	}
	return nil
}
