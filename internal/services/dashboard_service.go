package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	resp "whirkplace/internal/models/response_models"
	"whirkplace/internal/repositories"
	"whirkplace/pkg/utils"
)

type DashboardService interface {
	BuildDashboard(ctx context.Context, orgID uuid.UUID, rng resp.TimeRange) (*resp.DashboardReport, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
}

func NewDashboardService(repo repositories.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo}
}

// normalizeRange ensures sane defaults and ordering
func normalizeRange(r resp.TimeRange) resp.TimeRange {
	out := r
	if out.End.IsZero() {
		out.End = utils.CanonicalWeekOf(time.Now())
	}
	if out.Start.IsZero() {
		out.Start = out.End.AddDate(0, 0, -12*7) // last 12 reporting weeks default
	}
	if out.Start.After(out.End) {
		out.Start, out.End = out.End, out.Start
	}
	return out
}

func (s *dashboardService) BuildDashboard(ctx context.Context, orgID uuid.UUID, rng resp.TimeRange) (*resp.DashboardReport, error) {
	rng = normalizeRange(rng)

	// ---------- Core counts ----------
	members, err := s.repo.CountMembers(ctx, orgID)
	if err != nil {
		return nil, err
	}

	pendingReviews, err := s.repo.CountPendingReviews(ctx, orgID)
	if err != nil {
		return nil, err
	}

	wins, err := s.repo.CountWins(ctx, orgID, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}

	// ---------- Series ----------
	moodRows, err := s.repo.MoodSeries(ctx, orgID, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}
	moodTrend := make([]resp.MoodPoint, 0, len(moodRows))
	for _, r := range moodRows {
		moodTrend = append(moodTrend, resp.MoodPoint{
			WeekOf:  utils.FormatWeekOf(r.WeekOf),
			AvgMood: r.AvgMood,
			Count:   r.Count,
		})
	}

	submissionRows, err := s.repo.SubmissionSeries(ctx, orgID, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}
	completion := make([]resp.CompletionPoint, 0, len(submissionRows))
	for _, r := range submissionRows {
		point := resp.CompletionPoint{
			WeekOf:    utils.FormatWeekOf(r.WeekOf),
			Submitted: r.Count,
			Expected:  members,
		}
		if members > 0 {
			point.Rate = float64(r.Count) / float64(members)
		}
		completion = append(completion, point)
	}

	return &resp.DashboardReport{
		Range:          rng,
		MoodTrend:      moodTrend,
		Completion:     completion,
		PendingReviews: pendingReviews,
		WinsPosted:     wins,
		ActiveMembers:  members,
	}, nil
}
