package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"whirkplace/internal/models/db_models"
)

type QuestionRepositoryInterface interface {
	Create(ctx context.Context, question *db_models.Question) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Question, error)
	Update(ctx context.Context, question *db_models.Question) error
	ListActive(ctx context.Context, orgID uuid.UUID) ([]db_models.Question, error)
	ListAll(ctx context.Context, orgID uuid.UUID) ([]db_models.Question, error)
	SetSortOrder(ctx context.Context, id uuid.UUID, order int) error
}

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) Create(ctx context.Context, question *db_models.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *QuestionRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Question, error) {
	var question db_models.Question
	err := r.db.WithContext(ctx).First(&question, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) Update(ctx context.Context, question *db_models.Question) error {
	return r.db.WithContext(ctx).Save(question).Error
}

func (r *QuestionRepository) ListActive(ctx context.Context, orgID uuid.UUID) ([]db_models.Question, error) {
	var questions []db_models.Question
	err := r.db.WithContext(ctx).
		Where("org_id = ? AND is_active = ?", orgID, true).
		Order("sort_order ASC, created_at ASC").
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) ListAll(ctx context.Context, orgID uuid.UUID) ([]db_models.Question, error) {
	var questions []db_models.Question
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("sort_order ASC, created_at ASC").
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) SetSortOrder(ctx context.Context, id uuid.UUID, order int) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Question{}).
		Where("id = ?", id).
		Update("sort_order", order).Error
}
