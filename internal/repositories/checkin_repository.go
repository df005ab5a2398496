package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"whirkplace/internal/models/db_models"
	"whirkplace/pkg/utils"
)

type ReviewUpdate struct {
	ReviewerID       uuid.UUID
	ReviewedAt       time.Time
	ReviewComments   string
	ResponseComments db_models.JSONMap
	ResponseFlags    db_models.FlagMap
}

type CheckinRepositoryInterface interface {
	Create(ctx context.Context, checkin *db_models.Checkin) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Checkin, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Checkin, error)
	WeeksSubmitted(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error)
	ApplyReview(ctx context.Context, checkinID uuid.UUID, update ReviewUpdate) (bool, error)
	ListPendingForUsers(ctx context.Context, userIDs []uuid.UUID) ([]db_models.Checkin, error)
	ListForUsersByWeek(ctx context.Context, userIDs []uuid.UUID, weekOf time.Time) ([]db_models.Checkin, error)

	CreateComment(ctx context.Context, comment *db_models.CheckinComment) error
	FindCommentByID(ctx context.Context, id uuid.UUID) (*db_models.CheckinComment, error)
	UpdateComment(ctx context.Context, comment *db_models.CheckinComment) error
	DeleteComment(ctx context.Context, id uuid.UUID) error
	ListComments(ctx context.Context, checkinID uuid.UUID) ([]db_models.CheckinComment, error)
}

type CheckinRepository struct {
	db *gorm.DB
}

func NewCheckinRepository(db *gorm.DB) *CheckinRepository {
	return &CheckinRepository{db: db}
}

func (r *CheckinRepository) Create(ctx context.Context, checkin *db_models.Checkin) error {
	err := r.db.WithContext(ctx).Create(checkin).Error
	// The (user_id, week_of) unique index is the only guard against a
	// concurrent double submission; surface it as the domain error.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrDuplicateSubmission
	}
	return err
}

func (r *CheckinRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Checkin, error) {
	var checkin db_models.Checkin
	err := r.db.WithContext(ctx).First(&checkin, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &checkin, nil
}

func (r *CheckinRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Checkin, error) {
	var checkins []db_models.Checkin
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("week_of DESC").
		Find(&checkins).Error
	return checkins, err
}

func (r *CheckinRepository) WeeksSubmitted(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	var weeks []time.Time
	err := r.db.WithContext(ctx).
		Model(&db_models.Checkin{}).
		Where("user_id = ? AND week_of >= ?", userID, since).
		Order("week_of DESC").
		Pluck("week_of", &weeks).Error
	return weeks, err
}

// ApplyReview commits the pending -> reviewed transition. The review_status
// predicate makes the first committer win; the caller treats a false return
// as an already-reviewed record.
func (r *CheckinRepository) ApplyReview(ctx context.Context, checkinID uuid.UUID, update ReviewUpdate) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&db_models.Checkin{}).
		Where("id = ? AND review_status = ?", checkinID, db_models.ReviewStatusPending).
		Updates(map[string]interface{}{
			"review_status":     db_models.ReviewStatusReviewed,
			"reviewer_id":       update.ReviewerID,
			"reviewed_at":       update.ReviewedAt,
			"review_comments":   update.ReviewComments,
			"response_comments": update.ResponseComments,
			"response_flags":    update.ResponseFlags,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *CheckinRepository) ListPendingForUsers(ctx context.Context, userIDs []uuid.UUID) ([]db_models.Checkin, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var checkins []db_models.Checkin
	err := r.db.WithContext(ctx).
		Where("user_id IN ? AND review_status = ?", userIDs, db_models.ReviewStatusPending).
		Order("week_of ASC").
		Find(&checkins).Error
	return checkins, err
}

func (r *CheckinRepository) ListForUsersByWeek(ctx context.Context, userIDs []uuid.UUID, weekOf time.Time) ([]db_models.Checkin, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var checkins []db_models.Checkin
	err := r.db.WithContext(ctx).
		Where("user_id IN ? AND week_of = ?", userIDs, weekOf).
		Find(&checkins).Error
	return checkins, err
}

func (r *CheckinRepository) CreateComment(ctx context.Context, comment *db_models.CheckinComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *CheckinRepository) FindCommentByID(ctx context.Context, id uuid.UUID) (*db_models.CheckinComment, error) {
	var comment db_models.CheckinComment
	err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CheckinRepository) UpdateComment(ctx context.Context, comment *db_models.CheckinComment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *CheckinRepository) DeleteComment(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.CheckinComment{}, "id = ?", id).Error
}

func (r *CheckinRepository) ListComments(ctx context.Context, checkinID uuid.UUID) ([]db_models.CheckinComment, error) {
	var comments []db_models.CheckinComment
	err := r.db.WithContext(ctx).
		Where("checkin_id = ?", checkinID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}
