package models

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeDB represents an employee record in the database
type EmployeeDB struct {
	EmployeeID    uuid.UUID `json:"_id" db:"id"`                          // Primary key, generated by the store
	FirstName     string    `json:"first_name" db:"first_name"`           // Given name
	LastName      string    `json:"last_name" db:"last_name"`             // Family name
	Email         string    `json:"email" db:"email"`                     // Unique email
	Position      string    `json:"position" db:"position"`               // Job title
	Salary        float64   `json:"salary" db:"salary"`                   // Salary amount
	DateOfJoining time.Time `json:"date_of_joining" db:"date_of_joining"` // Hire date
	Department    string    `json:"department" db:"department"`           // Department name
	CreatedAt     time.Time `json:"created_at" db:"created_at"`           // Creation timestamp
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`           // Last update timestamp
}

// EmployeeUpdate lists the employee fields a client may overwrite.
// A nil field keeps its stored value.
type EmployeeUpdate struct {
	FirstName     *string    `json:"first_name,omitempty"`
	LastName      *string    `json:"last_name,omitempty"`
	Email         *string    `json:"email,omitempty"`
	Position      *string    `json:"position,omitempty"`
	Salary        *float64   `json:"salary,omitempty"`
	DateOfJoining *time.Time `json:"date_of_joining,omitempty"`
	Department    *string    `json:"department,omitempty"`
}

// Employee lifecycle operations carried by EmployeeEvent.
const (
	EmployeeCreated = "created"
	EmployeeUpdated = "updated"
	EmployeeDeleted = "deleted"
)

// EmployeeEvent is published after an employee record is created, updated or deleted.
type EmployeeEvent struct {
	EventID    string `json:"event_id"`    // Unique identifier of the event
	EmployeeID string `json:"employee_id"` // Identifier of the affected employee
	Operation  string `json:"operation"`   // One of created, updated, deleted
	Timestamp  int64  `json:"timestamp"`   // Unix timestamp (in seconds) of the change
}
