package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "whirkplace/internal/models/db_models"
)

type DashboardRepository interface {
	// KPIs / counts
	CountMembers(ctx context.Context, orgID uuid.UUID) (int64, error)
	CountPendingReviews(ctx context.Context, orgID uuid.UUID) (int64, error)
	CountWins(ctx context.Context, orgID uuid.UUID, start, end time.Time) (int64, error)

	// Time series
	MoodSeries(ctx context.Context, orgID uuid.UUID, start, end time.Time) ([]MoodRow, error)
	SubmissionSeries(ctx context.Context, orgID uuid.UUID, start, end time.Time) ([]WeekCountRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------
type MoodRow struct {
	WeekOf  time.Time `gorm:"column:week_of"`
	AvgMood float64   `gorm:"column:avg_mood"`
	Count   int64     `gorm:"column:count"`
}

type WeekCountRow struct {
	WeekOf time.Time `gorm:"column:week_of"`
	Count  int64     `gorm:"column:count"`
}

func (r *dashboardRepository) CountMembers(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Account{}).
		Where("org_id = ?", orgID).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountPendingReviews(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Checkin{}).
		Joins("JOIN accounts ON accounts.id = checkins.user_id").
		Where("accounts.org_id = ? AND checkins.review_status = ?", orgID, dbm.ReviewStatusPending).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountWins(ctx context.Context, orgID uuid.UUID, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Win{}).
		Where("org_id = ? AND created_at BETWEEN ? AND ?", orgID, start.Unix(), end.Unix()).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) MoodSeries(ctx context.Context, orgID uuid.UUID, start, end time.Time) ([]MoodRow, error) {
	var rows []MoodRow
	err := r.db.WithContext(ctx).
		Model(&dbm.Checkin{}).
		Select("checkins.week_of AS week_of, AVG(checkins.overall_mood) AS avg_mood, COUNT(*) AS count").
		Joins("JOIN accounts ON accounts.id = checkins.user_id").
		Where("accounts.org_id = ? AND checkins.week_of BETWEEN ? AND ?", orgID, start, end).
		Group("checkins.week_of").
		Order("checkins.week_of ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) SubmissionSeries(ctx context.Context, orgID uuid.UUID, start, end time.Time) ([]WeekCountRow, error) {
	var rows []WeekCountRow
	err := r.db.WithContext(ctx).
		Model(&dbm.Checkin{}).
		Select("checkins.week_of AS week_of, COUNT(*) AS count").
		Joins("JOIN accounts ON accounts.id = checkins.user_id").
		Where("accounts.org_id = ? AND checkins.week_of BETWEEN ? AND ?", orgID, start, end).
		Group("checkins.week_of").
		Order("checkins.week_of ASC").
		Scan(&rows).Error
	return rows, err
}
