// Package portal holds the two front-end components of the thesis portal,
// the submission Form and the admin Registry. Both talk to the record store
// only through the RecordStore they are constructed with.
package portal

import (
	"context"

	"github.com/SundayYogurt/thesis_service/internal/dto"
	"github.com/google/uuid"
)

// RecordStore is the managed store holding thesis submissions.
type RecordStore interface {
	Insert(ctx context.Context, submission dto.SubmitThesisRequest) (*dto.ThesisResponse, error)
	// SelectAll returns every submission ordered by created_at, newest first.
	SelectAll(ctx context.Context) ([]dto.ThesisResponse, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
