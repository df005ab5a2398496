package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"whirkplace/internal/models/db_models"
)

type KRARepositoryInterface interface {
	CreateTemplate(ctx context.Context, template *db_models.KRATemplate) error
	FindTemplateByID(ctx context.Context, id uuid.UUID) (*db_models.KRATemplate, error)
	UpdateTemplate(ctx context.Context, template *db_models.KRATemplate) error
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
	ListTemplates(ctx context.Context, orgID uuid.UUID) ([]db_models.KRATemplate, error)

	CreateAssignment(ctx context.Context, assignment *db_models.KRAAssignment) error
	FindAssignmentByID(ctx context.Context, id uuid.UUID) (*db_models.KRAAssignment, error)
	UpdateAssignment(ctx context.Context, assignment *db_models.KRAAssignment) error
	ListAssignmentsForUser(ctx context.Context, userID uuid.UUID) ([]db_models.KRAAssignment, error)
}

type KRARepository struct {
	db *gorm.DB
}

func NewKRARepository(db *gorm.DB) *KRARepository {
	return &KRARepository{db: db}
}

func (r *KRARepository) CreateTemplate(ctx context.Context, template *db_models.KRATemplate) error {
	return r.db.WithContext(ctx).Create(template).Error
}

func (r *KRARepository) FindTemplateByID(ctx context.Context, id uuid.UUID) (*db_models.KRATemplate, error) {
	var template db_models.KRATemplate
	err := r.db.WithContext(ctx).First(&template, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *KRARepository) UpdateTemplate(ctx context.Context, template *db_models.KRATemplate) error {
	return r.db.WithContext(ctx).Save(template).Error
}

func (r *KRARepository) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.KRATemplate{}, "id = ?", id).Error
}

func (r *KRARepository) ListTemplates(ctx context.Context, orgID uuid.UUID) ([]db_models.KRATemplate, error) {
	var templates []db_models.KRATemplate
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("created_at DESC").
		Find(&templates).Error
	return templates, err
}

func (r *KRARepository) CreateAssignment(ctx context.Context, assignment *db_models.KRAAssignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *KRARepository) FindAssignmentByID(ctx context.Context, id uuid.UUID) (*db_models.KRAAssignment, error) {
	var assignment db_models.KRAAssignment
	err := r.db.WithContext(ctx).First(&assignment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *KRARepository) UpdateAssignment(ctx context.Context, assignment *db_models.KRAAssignment) error {
	return r.db.WithContext(ctx).Save(assignment).Error
}

func (r *KRARepository) ListAssignmentsForUser(ctx context.Context, userID uuid.UUID) ([]db_models.KRAAssignment, error) {
	var assignments []db_models.KRAAssignment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&assignments).Error
	return assignments, err
}
