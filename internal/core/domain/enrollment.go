package domain

import (
	"errors"
	"time"
)

// EnrollmentStatus represents the lifecycle state of an enrollment.
type EnrollmentStatus string

const (
	StatusActive    EnrollmentStatus = "active"
	StatusCompleted EnrollmentStatus = "completed"
	StatusSuspended EnrollmentStatus = "suspended"
)

// validTransitions defines the allowed state machine transitions. It is only
// consulted when strict transition checking is enabled; by default the ledger
// accepts any status overwrite as a plain field write.
var validTransitions = map[EnrollmentStatus][]EnrollmentStatus{
	StatusActive:    {StatusCompleted, StatusSuspended},
	StatusSuspended: {StatusActive},
}

var ErrEnrollmentNotFound = errors.New("enrollment not found")
var ErrAlreadyEnrolled = errors.New("client is already enrolled in one or more of these programs")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrInvalidStatus = errors.New("status must be one of: active, completed, suspended")

// Valid reports whether s is a known enrollment status.
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusSuspended:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from the current status to next
// is valid under the strict policy.
func (s EnrollmentStatus) CanTransitionTo(next EnrollmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Enrollment is the join row tying one client to one program. The
// (client, program) pair is unique regardless of status.
type Enrollment struct {
	ID         uint             `json:"id"`
	ClientID   uint             `json:"client_id"`
	ProgramID  uint             `json:"program_id"`
	EnrolledAt time.Time        `json:"enrolled_at"`
	Status     EnrollmentStatus `json:"status"`
	CreatedBy  uint             `json:"created_by"`
}
