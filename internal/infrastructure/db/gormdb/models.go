package gormdb

import (
	"time"

	"github.com/afyalink/health-system-api/internal/core/domain"
)

// Record structs are the GORM-facing shapes; domain entities never carry
// storage tags. Mapping happens at the repository boundary.

type userRecord struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:80;not null"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:50"`
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

func (userRecord) TableName() string { return "system_users" }

type clientRecord struct {
	ID            uint   `gorm:"primaryKey"`
	FirstName     string `gorm:"size:50;not null;index"`
	LastName      string `gorm:"size:50;not null;index"`
	DateOfBirth   time.Time
	Gender        string `gorm:"size:10;not null"`
	ContactNumber string `gorm:"size:15"`
	Email         string `gorm:"size:100"`
	Address       string `gorm:"size:200"`
	CreatedAt     time.Time
	CreatedByID   uint `gorm:"index"`
}

func (clientRecord) TableName() string { return "clients" }

type programRecord struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex;size:100;not null"`
	Description  string
	DurationDays int `gorm:"not null;default:30"`
	CreatedAt    time.Time
	CreatedByID  uint `gorm:"index"`
}

func (programRecord) TableName() string { return "programs" }

// enrollmentRecord carries the composite unique index that enforces
// at-most-one enrollment per (client, program) pair regardless of status.
type enrollmentRecord struct {
	ID          uint `gorm:"primaryKey"`
	ClientID    uint `gorm:"not null;uniqueIndex:idx_enrollment_pair"`
	ProgramID   uint `gorm:"not null;uniqueIndex:idx_enrollment_pair"`
	EnrolledAt  time.Time
	Status      string `gorm:"size:20;not null;default:'active'"`
	CreatedByID uint
}

func (enrollmentRecord) TableName() string { return "enrollments" }

// Record to domain mapping.

func userRecordFrom(u *domain.User) userRecord {
	return userRecord{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
		LastLoginAt:  u.LastLoginAt,
	}
}

func (r userRecord) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         r.Role,
		CreatedAt:    r.CreatedAt,
		LastLoginAt:  r.LastLoginAt,
	}
}

func clientRecordFrom(c *domain.Client) clientRecord {
	return clientRecord{
		ID:            c.ID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		DateOfBirth:   c.DateOfBirth,
		Gender:        c.Gender,
		ContactNumber: c.ContactNumber,
		Email:         c.Email,
		Address:       c.Address,
		CreatedAt:     c.CreatedAt,
		CreatedByID:   c.CreatedBy,
	}
}

func (r clientRecord) toDomain() domain.Client {
	return domain.Client{
		ID:            r.ID,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		DateOfBirth:   r.DateOfBirth,
		Gender:        r.Gender,
		ContactNumber: r.ContactNumber,
		Email:         r.Email,
		Address:       r.Address,
		CreatedAt:     r.CreatedAt,
		CreatedBy:     r.CreatedByID,
	}
}

func programRecordFrom(p *domain.Program) programRecord {
	return programRecord{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		DurationDays: p.DurationDays,
		CreatedAt:    p.CreatedAt,
		CreatedByID:  p.CreatedBy,
	}
}

func (r programRecord) toDomain() domain.Program {
	return domain.Program{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		DurationDays: r.DurationDays,
		CreatedAt:    r.CreatedAt,
		CreatedBy:    r.CreatedByID,
	}
}

func enrollmentRecordFrom(e domain.Enrollment) enrollmentRecord {
	return enrollmentRecord{
		ID:          e.ID,
		ClientID:    e.ClientID,
		ProgramID:   e.ProgramID,
		EnrolledAt:  e.EnrolledAt,
		Status:      string(e.Status),
		CreatedByID: e.CreatedBy,
	}
}

func (r enrollmentRecord) toDomain() domain.Enrollment {
	return domain.Enrollment{
		ID:         r.ID,
		ClientID:   r.ClientID,
		ProgramID:  r.ProgramID,
		EnrolledAt: r.EnrolledAt,
		Status:     domain.EnrollmentStatus(r.Status),
		CreatedBy:  r.CreatedByID,
	}
}
