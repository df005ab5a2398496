package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"whirkplace/internal/models/db_models"
)

type AccountRepositoryInterface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	Create(ctx context.Context, account *db_models.Account) error
	CreateTx(tx *gorm.DB, account *db_models.Account) error
	Update(ctx context.Context, account *db_models.Account) error
	ListByManager(ctx context.Context, managerID uuid.UUID) ([]db_models.Account, error)
	ListByOrg(ctx context.Context, orgID uuid.UUID) ([]db_models.Account, error)
}

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := r.db.WithContext(ctx).First(&account, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) Create(ctx context.Context, account *db_models.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *AccountRepository) CreateTx(tx *gorm.DB, account *db_models.Account) error {
	return tx.Create(account).Error
}

func (r *AccountRepository) Update(ctx context.Context, account *db_models.Account) error {
	return r.db.WithContext(ctx).Save(account).Error
}

func (r *AccountRepository) ListByManager(ctx context.Context, managerID uuid.UUID) ([]db_models.Account, error) {
	var accounts []db_models.Account
	err := r.db.WithContext(ctx).
		Where("manager_id = ?", managerID).
		Order("name ASC").
		Find(&accounts).Error
	return accounts, err
}

func (r *AccountRepository) ListByOrg(ctx context.Context, orgID uuid.UUID) ([]db_models.Account, error) {
	var accounts []db_models.Account
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("name ASC").
		Find(&accounts).Error
	return accounts, err
}
