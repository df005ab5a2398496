package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"whirkplace/internal/models/db_models"
)

type OrgRepositoryInterface interface {
	Create(ctx context.Context, org *db_models.Organization) error
	CreateTx(tx *gorm.DB, org *db_models.Organization) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Organization, error)
	FindBySlug(ctx context.Context, slug string) (*db_models.Organization, error)
	Update(ctx context.Context, org *db_models.Organization) error
	ListAll(ctx context.Context) ([]db_models.Organization, error)
	CountCheckins(ctx context.Context, orgID uuid.UUID) (int64, error)
}

type OrgRepository struct {
	db *gorm.DB
}

func NewOrgRepository(db *gorm.DB) *OrgRepository {
	return &OrgRepository{db: db}
}

func (r *OrgRepository) Create(ctx context.Context, org *db_models.Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

func (r *OrgRepository) CreateTx(tx *gorm.DB, org *db_models.Organization) error {
	return tx.Create(org).Error
}

func (r *OrgRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Organization, error) {
	var org db_models.Organization
	err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *OrgRepository) FindBySlug(ctx context.Context, slug string) (*db_models.Organization, error) {
	var org db_models.Organization
	err := r.db.WithContext(ctx).First(&org, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *OrgRepository) Update(ctx context.Context, org *db_models.Organization) error {
	return r.db.WithContext(ctx).Save(org).Error
}

func (r *OrgRepository) ListAll(ctx context.Context) ([]db_models.Organization, error) {
	var orgs []db_models.Organization
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&orgs).Error
	return orgs, err
}

func (r *OrgRepository) CountCheckins(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Checkin{}).
		Joins("JOIN accounts ON accounts.id = checkins.user_id").
		Where("accounts.org_id = ?", orgID).
		Count(&count).Error
	return count, err
}
