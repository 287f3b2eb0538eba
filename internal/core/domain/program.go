package domain

import (
	"errors"
	"time"
)

var ErrProgramNotFound = errors.New("program not found")
var ErrProgramExists = errors.New("program with this name already exists")
var ErrProgramNameRequired = errors.New("program name is required")

// DefaultProgramDuration is applied when a program is created without an
// explicit duration.
const DefaultProgramDuration = 30

// Program is a named health program clients can be enrolled in.
type Program struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	DurationDays int       `json:"duration_days"`
	CreatedAt    time.Time `json:"created_at"`
	CreatedBy    uint      `json:"created_by"`
}
