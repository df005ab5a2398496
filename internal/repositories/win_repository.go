package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"whirkplace/internal/models/db_models"
)

type WinRepositoryInterface interface {
	Create(ctx context.Context, win *db_models.Win) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Win, error)
	ListByOrg(ctx context.Context, orgID uuid.UUID, page, pageSize int) ([]db_models.Win, error)
	AddReaction(ctx context.Context, reaction *db_models.WinReaction) error
	RemoveReaction(ctx context.Context, winID, userID uuid.UUID, emoji string) error
}

type WinRepository struct {
	db *gorm.DB
}

func NewWinRepository(db *gorm.DB) *WinRepository {
	return &WinRepository{db: db}
}

func (r *WinRepository) Create(ctx context.Context, win *db_models.Win) error {
	return r.db.WithContext(ctx).Create(win).Error
}

func (r *WinRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Win, error) {
	var win db_models.Win
	err := r.db.WithContext(ctx).
		Preload("Reactions").
		First(&win, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &win, nil
}

func (r *WinRepository) ListByOrg(ctx context.Context, orgID uuid.UUID, page, pageSize int) ([]db_models.Win, error) {
	var wins []db_models.Win
	err := r.db.WithContext(ctx).
		Preload("Reactions").
		Where("org_id = ?", orgID).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&wins).Error
	return wins, err
}

// AddReaction is idempotent: reacting twice with the same emoji is a no-op.
func (r *WinRepository) AddReaction(ctx context.Context, reaction *db_models.WinReaction) error {
	err := r.db.WithContext(ctx).Create(reaction).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (r *WinRepository) RemoveReaction(ctx context.Context, winID, userID uuid.UUID, emoji string) error {
	return r.db.WithContext(ctx).
		Delete(&db_models.WinReaction{}, "win_id = ? AND user_id = ? AND emoji = ?", winID, userID, emoji).Error
}
