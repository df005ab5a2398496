package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"whirkplace/internal/models/db_models"
)

type NotificationRepositoryInterface interface {
	FindPreference(ctx context.Context, accountID uuid.UUID) (*db_models.NotificationPreference, error)
	SavePreference(ctx context.Context, pref *db_models.NotificationPreference) error
	CreateNotification(ctx context.Context, notification *db_models.Notification) error
	ListForUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) FindPreference(ctx context.Context, accountID uuid.UUID) (*db_models.NotificationPreference, error) {
	var pref db_models.NotificationPreference
	err := r.db.WithContext(ctx).First(&pref, "account_id = ?", accountID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

func (r *NotificationRepository) SavePreference(ctx context.Context, pref *db_models.NotificationPreference) error {
	return r.db.WithContext(ctx).Save(pref).Error
}

func (r *NotificationRepository) CreateNotification(ctx context.Context, notification *db_models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *NotificationRepository) ListForUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Notification, error) {
	var notifications []db_models.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("id = ? AND user_id = ? AND read_at IS NULL", id, userID).
		Update("read_at", time.Now())
	return result.RowsAffected > 0, result.Error
}
