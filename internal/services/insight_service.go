package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"whirkplace/internal/repositories"
	"whirkplace/pkg/utils"
)

const insightSystemPrompt = "You are an assistant for engineering managers. " +
	"Summarize the team's weekly check-ins in a short digest: overall mood, " +
	"recurring themes, and anything that needs a follow-up conversation. " +
	"Be concrete and do not invent details."

type InsightServiceInterface interface {
	WeeklyDigest(ctx context.Context, managerID uuid.UUID, weekOf time.Time) (string, error)
}

type InsightService struct {
	accountRepo repositories.AccountRepositoryInterface
	checkinRepo repositories.CheckinRepositoryInterface
	chatClient  utils.ChatClientInterface
}

// NewInsightService accepts a nil chatClient; digests then report
// ErrInsightsDisabled instead of failing at startup.
func NewInsightService(
	accountRepo repositories.AccountRepositoryInterface,
	checkinRepo repositories.CheckinRepositoryInterface,
	chatClient utils.ChatClientInterface,
) InsightServiceInterface {
	return &InsightService{
		accountRepo: accountRepo,
		checkinRepo: checkinRepo,
		chatClient:  chatClient,
	}
}

func (s *InsightService) WeeklyDigest(ctx context.Context, managerID uuid.UUID, weekOf time.Time) (string, error) {
	if s.chatClient == nil {
		return "", utils.ErrInsightsDisabled
	}

	weekOf = utils.CanonicalWeekOf(weekOf)

	reports, err := s.accountRepo.ListByManager(ctx, managerID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if len(reports) == 0 {
		return "", utils.ErrNotFound
	}

	ids := make([]uuid.UUID, 0, len(reports))
	names := make(map[uuid.UUID]string, len(reports))
	for _, r := range reports {
		ids = append(ids, r.ID)
		names[r.ID] = r.Name
	}

	checkins, err := s.checkinRepo.ListForUsersByWeek(ctx, ids, weekOf)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if len(checkins) == 0 {
		return "", utils.ErrNotFound
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Week of %s. %d of %d team members checked in.\n\n",
		utils.FormatWeekOf(weekOf), len(checkins), len(reports))
	for _, c := range checkins {
		fmt.Fprintf(&b, "%s (mood %d/5):\n", names[c.UserID], c.OverallMood)
		for qid, answer := range c.Responses {
			question := c.QuestionSnapshots[qid]
			if question == "" {
				question = "Answer"
			}
			fmt.Fprintf(&b, "- %s: %s\n", question, answer)
		}
		b.WriteString("\n")
	}

	digest, err := s.chatClient.Complete(ctx, insightSystemPrompt, b.String())
	if err != nil {
		return "", utils.ErrInsightsDisabled
	}
	return digest, nil
}
