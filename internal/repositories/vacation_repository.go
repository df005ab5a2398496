package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"whirkplace/internal/models/db_models"
)

type VacationRepositoryInterface interface {
	Create(ctx context.Context, vacation *db_models.Vacation) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Vacation, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
	HasVacationOn(ctx context.Context, userID uuid.UUID, date time.Time) (bool, error)
}

type VacationRepository struct {
	db *gorm.DB
}

func NewVacationRepository(db *gorm.DB) *VacationRepository {
	return &VacationRepository{db: db}
}

func (r *VacationRepository) Create(ctx context.Context, vacation *db_models.Vacation) error {
	return r.db.WithContext(ctx).Create(vacation).Error
}

func (r *VacationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Vacation, error) {
	var vacations []db_models.Vacation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&vacations).Error
	return vacations, err
}

func (r *VacationRepository) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Delete(&db_models.Vacation{}, "id = ? AND user_id = ?", id, userID)
	return result.RowsAffected > 0, result.Error
}

func (r *VacationRepository) HasVacationOn(ctx context.Context, userID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Vacation{}).
		Where("user_id = ? AND start_date <= ? AND end_date >= ?", userID, date, date).
		Count(&count).Error
	return count > 0, err
}
