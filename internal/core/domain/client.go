package domain

import (
	"errors"
	"time"
)

var ErrClientNotFound = errors.New("client not found")
var ErrMissingRequiredFields = errors.New("first_name, last_name, date_of_birth and gender are required")
var ErrInvalidDateOfBirth = errors.New("invalid date format, use YYYY-MM-DD")

// DateLayout is the canonical wire format for calendar dates.
const DateLayout = "2006-01-02"

// Client is a patient registered with the health system.
type Client struct {
	ID            uint      `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	DateOfBirth   time.Time `json:"-"`
	Gender        string    `json:"gender"`
	ContactNumber string    `json:"contact_number,omitempty"`
	Email         string    `json:"email,omitempty"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	CreatedBy     uint      `json:"created_by"`
}
