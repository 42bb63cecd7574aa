package services

import (
	"context"
	"log"
	"time"

	"github.com/SundayYogurt/thesis_service/internal/domain"
	"github.com/SundayYogurt/thesis_service/internal/dto"
	"github.com/SundayYogurt/thesis_service/internal/interfaces"
	"github.com/SundayYogurt/thesis_service/internal/repository"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

type ThesisService interface {
	// Public form
	Submit(ctx context.Context, input dto.SubmitThesisRequest) (*domain.ThesisSubmission, error)

	// Admin
	List(ctx context.Context) ([]domain.ThesisSubmission, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type thesisService struct {
	repo repository.ThesisRepository

	// messaging, may be nil
	producer interfaces.ProducerHandler
}

func NewThesisService(repo repository.ThesisRepository, producer interfaces.ProducerHandler) ThesisService {
	return &thesisService{
		repo:     repo,
		producer: producer,
	}
}

func (s *thesisService) Submit(ctx context.Context, input dto.SubmitThesisRequest) (*domain.ThesisSubmission, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.repo.Insert(ctx, input.ToModel())
	if err != nil {
		return nil, err
	}

	s.publish(ctx, dto.ThesisEvent{
		Event:       dto.EventThesisSubmitted,
		ID:          saved.ID,
		UserType:    string(saved.UserType),
		Name:        saved.Name,
		ThesisTitle: saved.ThesisTitle,
		CreatedAt:   saved.CreatedAt,
	})
	return saved, nil
}

func (s *thesisService) List(ctx context.Context) ([]domain.ThesisSubmission, error) {
	return s.repo.ListNewestFirst(ctx)
}

func (s *thesisService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, dto.ThesisEvent{
		Event:     dto.EventThesisDeleted,
		ID:        id,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

// publish never fails the store operation that triggered it.
func (s *thesisService) publish(ctx context.Context, event dto.ThesisEvent) {
	if s.producer == nil {
		return
	}

	payload, err := sonic.Marshal(event)
	if err != nil {
		log.Printf("[thesis] encode %s event error: %v", event.Event, err)
		return
	}

	if err := s.producer.PublishMessage(ctx, []byte(event.ID.String()), payload); err != nil {
		log.Printf("[thesis] publish %s id=%s error: %v", event.Event, event.ID, err)
	}
}
