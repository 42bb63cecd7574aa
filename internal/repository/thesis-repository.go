package repository

import (
	"context"
	"errors"
	"log"

	"github.com/SundayYogurt/thesis_service/internal/domain"
	"github.com/SundayYogurt/thesis_service/internal/helper"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ThesisRepository interface {
	Insert(ctx context.Context, submission *domain.ThesisSubmission) (*domain.ThesisSubmission, error)
	ListNewestFirst(ctx context.Context) ([]domain.ThesisSubmission, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type thesisRepository struct {
	db *gorm.DB
}

func NewThesisRepository(db *gorm.DB) ThesisRepository {
	return &thesisRepository{db: db}
}

func (r *thesisRepository) Insert(ctx context.Context, submission *domain.ThesisSubmission) (*domain.ThesisSubmission, error) {
	if submission == nil {
		return nil, domain.NewStoreError("insert", errors.New("nil submission"))
	}

	if err := r.db.WithContext(ctx).Create(submission).Error; err != nil {
		log.Printf("insert thesis submission error: %s", helper.DescribeDBError(err))
		return nil, domain.NewStoreError("insert", err)
	}

	return submission, nil
}

func (r *thesisRepository) ListNewestFirst(ctx context.Context) ([]domain.ThesisSubmission, error) {
	var submissions []domain.ThesisSubmission

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&submissions).Error
	if err != nil {
		log.Printf("list thesis submissions error: %s", helper.DescribeDBError(err))
		return nil, domain.NewStoreError("select", err)
	}

	return submissions, nil
}

func (r *thesisRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&domain.ThesisSubmission{}, "id = ?", id)
	if res.Error != nil {
		log.Printf("delete thesis submission %s error: %s", id, helper.DescribeDBError(res.Error))
		return domain.NewStoreError("delete", res.Error)
	}
	if res.RowsAffected == 0 {
		log.Printf("delete thesis submission %s: no such row", id)
		return domain.NewStoreError("delete", domain.ErrSubmissionNotFound)
	}
	return nil
}
