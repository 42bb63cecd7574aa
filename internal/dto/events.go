package dto

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventThesisSubmitted = "thesis.submitted"
	EventThesisDeleted   = "thesis.deleted"
)

// ThesisEvent is the payload published on Kafka after a store mutation.
type ThesisEvent struct {
	Event       string    `json:"event"`
	ID          uuid.UUID `json:"id"`
	UserType    string    `json:"user_type,omitempty"`
	Name        string    `json:"name,omitempty"`
	ThesisTitle string    `json:"thesis_title,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
