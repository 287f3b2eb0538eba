package gormdb

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/afyalink/health-system-api/internal/core/domain"
)

type ProgramRepository struct {
	db *gorm.DB
}

func NewProgramRepository(db *gorm.DB) *ProgramRepository {
	return &ProgramRepository{db: db}
}

func (r *ProgramRepository) Create(ctx context.Context, p *domain.Program) (*domain.Program, error) {
	rec := programRecordFrom(p)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrProgramExists
		}
		return nil, fmt.Errorf("insert program: %w", err)
	}
	created := rec.toDomain()
	return &created, nil
}

func (r *ProgramRepository) FindByID(ctx context.Context, id uint) (*domain.Program, error) {
	var rec programRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProgramNotFound
		}
		return nil, fmt.Errorf("find program: %w", err)
	}
	found := rec.toDomain()
	return &found, nil
}

func (r *ProgramRepository) List(ctx context.Context) ([]domain.Program, error) {
	var recs []programRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	out := make([]domain.Program, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toDomain())
	}
	return out, nil
}

func (r *ProgramRepository) Update(ctx context.Context, p *domain.Program) (*domain.Program, error) {
	rec := programRecordFrom(p)
	if err := r.db.WithContext(ctx).Save(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrProgramExists
		}
		return nil, fmt.Errorf("update program: %w", err)
	}
	updated := rec.toDomain()
	return &updated, nil
}

// Delete removes the program's enrollment rows and the program itself in one
// transaction, same contract as client deletion.
func (r *ProgramRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("program_id = ?", id).Delete(&enrollmentRecord{}).Error; err != nil {
			return fmt.Errorf("delete enrollments: %w", err)
		}
		res := tx.Delete(&programRecord{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete program: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrProgramNotFound
		}
		return nil
	})
}

func (r *ProgramRepository) CountEnrollments(ctx context.Context, programID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&enrollmentRecord{}).Where("program_id = ?", programID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count enrollments: %w", err)
	}
	return count, nil
}
