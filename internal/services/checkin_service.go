package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"whirkplace/internal/models/db_models"
	"whirkplace/internal/models/request_models"
	"whirkplace/internal/models/response_models"
	"whirkplace/internal/repositories"
	"whirkplace/pkg/utils"
)

type ReviewOutcome string

const (
	OutcomeApprove ReviewOutcome = "approve"
	OutcomeReject  ReviewOutcome = "reject"
)

type CheckinServiceInterface interface {
	OpenWeeks(ctx context.Context, userID uuid.UUID, today time.Time, lookback int) (*response_models.SubmissionWindow, error)
	SubmitCheckin(ctx context.Context, userID uuid.UUID, req request_models.SubmitCheckinRequest) (*db_models.Checkin, error)
	Review(ctx context.Context, reviewerID, checkinID uuid.UUID, req request_models.ReviewCheckinRequest) (*db_models.Checkin, error)
	History(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Checkin, error)
	HistoryForReport(ctx context.Context, managerID, reportID uuid.UUID, page, pageSize int) ([]db_models.Checkin, error)
	PendingForManager(ctx context.Context, managerID uuid.UUID) ([]db_models.Checkin, error)

	AddComment(ctx context.Context, userID, checkinID uuid.UUID, content string) (*db_models.CheckinComment, error)
	UpdateComment(ctx context.Context, userID, commentID uuid.UUID, content string) (*db_models.CheckinComment, error)
	DeleteComment(ctx context.Context, userID, commentID uuid.UUID, isAdmin bool) error
	ListComments(ctx context.Context, checkinID uuid.UUID) ([]db_models.CheckinComment, error)
}

type CheckinService struct {
	checkinRepo  repositories.CheckinRepositoryInterface
	questionRepo repositories.QuestionRepositoryInterface
	vacationRepo repositories.VacationRepositoryInterface
	accountRepo  repositories.AccountRepositoryInterface
	notifier     NotifierInterface
}

func NewCheckinService(
	checkinRepo repositories.CheckinRepositoryInterface,
	questionRepo repositories.QuestionRepositoryInterface,
	vacationRepo repositories.VacationRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	notifier NotifierInterface,
) CheckinServiceInterface {
	return &CheckinService{
		checkinRepo:  checkinRepo,
		questionRepo: questionRepo,
		vacationRepo: vacationRepo,
		accountRepo:  accountRepo,
		notifier:     notifier,
	}
}

func weekLabel(weeksAgo int) string {
	switch weeksAgo {
	case 0:
		return "This week"
	case 1:
		return "Last week"
	default:
		return fmt.Sprintf("%d weeks ago", weeksAgo)
	}
}

func openWeekEntry(weekOf time.Time, weeksAgo int) response_models.OpenWeek {
	return response_models.OpenWeek{
		WeekStart: utils.FormatWeekOf(utils.WeekStart(weekOf)),
		WeekEnd:   utils.FormatWeekOf(weekOf),
		WeekOf:    utils.FormatWeekOf(weekOf),
		Label:     weekLabel(weeksAgo),
	}
}

// OpenWeeks builds the submission window: the current reporting week as the
// primary call-to-action plus any missed weeks still inside the lookback,
// most recent first. Weeks with an existing check-in never appear, and the
// window never reaches back past the account's first reporting week.
func (s *CheckinService) OpenWeeks(ctx context.Context, userID uuid.UUID, today time.Time, lookback int) (*response_models.SubmissionWindow, error) {
	if lookback <= 0 {
		lookback = utils.DefaultLookbackWeeks
	}

	account, err := s.accountRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	currentWeek := utils.CanonicalWeekOf(today)
	firstWeek := utils.CanonicalWeekOf(time.Unix(account.CreatedAt, 0).UTC())

	cutoff := utils.WeekStart(currentWeek.AddDate(0, 0, -7*lookback))
	submittedWeeks, err := s.checkinRepo.WeeksSubmitted(ctx, userID, cutoff)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	submitted := make(map[string]bool, len(submittedWeeks))
	for _, w := range submittedWeeks {
		submitted[utils.FormatWeekOf(w)] = true
	}

	window := &response_models.SubmissionWindow{LateWeeks: []response_models.OpenWeek{}}
	for i := 0; i <= lookback; i++ {
		weekOf := currentWeek.AddDate(0, 0, -7*i)
		if weekOf.Before(firstWeek) {
			break
		}
		if submitted[utils.FormatWeekOf(weekOf)] {
			continue
		}
		entry := openWeekEntry(weekOf, i)
		if i == 0 {
			window.CurrentWeek = &entry
		} else {
			window.LateWeeks = append(window.LateWeeks, entry)
		}
	}

	onVacation, err := s.vacationRepo.HasVacationOn(ctx, userID, utils.DateOnly(today))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	window.OnVacation = onVacation

	return window, nil
}

// SubmitCheckin validates and files a check-in for a canonical week. The week
// must lie inside the open window; the (user, week) uniqueness lives in the
// database, so a concurrent duplicate loses with ErrDuplicateSubmission.
func (s *CheckinService) SubmitCheckin(ctx context.Context, userID uuid.UUID, req request_models.SubmitCheckinRequest) (*db_models.Checkin, error) {
	weekOf, err := utils.ParseWeekOf(req.WeekOf)
	if err != nil {
		return nil, err
	}
	if !weekOf.Equal(utils.CanonicalWeekOf(weekOf)) {
		return nil, fmt.Errorf("%w: week_of must be the Friday of a reporting week", utils.ErrValidation)
	}
	if req.OverallMood < 1 || req.OverallMood > 5 {
		return nil, fmt.Errorf("%w: overall_mood must be between 1 and 5", utils.ErrValidation)
	}
	if len(req.Responses) == 0 {
		return nil, fmt.Errorf("%w: responses must not be empty", utils.ErrValidation)
	}

	account, err := s.accountRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	now := time.Now()
	currentWeek := utils.CanonicalWeekOf(now)
	if weekOf.After(currentWeek) {
		return nil, fmt.Errorf("%w: cannot submit a check-in for a future week", utils.ErrValidation)
	}
	if utils.WeeksBetween(weekOf, currentWeek) > utils.DefaultLookbackWeeks {
		return nil, fmt.Errorf("%w: week is outside the late-submission window", utils.ErrValidation)
	}

	// Every question active right now must be answered; the answered text of
	// each is snapshotted so later edits don't corrupt historical display.
	questions, err := s.questionRepo.ListActive(ctx, account.OrgID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	snapshots := make(db_models.JSONMap, len(questions))
	for _, q := range questions {
		answer, ok := req.Responses[q.ID.String()]
		if !ok || strings.TrimSpace(answer) == "" {
			return nil, fmt.Errorf("%w: missing answer for question %q", utils.ErrValidation, q.Text)
		}
		snapshots[q.ID.String()] = q.Text
	}

	checkin := &db_models.Checkin{
		UserID:            userID,
		WeekOf:            weekOf,
		OverallMood:       req.OverallMood,
		Responses:         db_models.JSONMap(req.Responses),
		QuestionSnapshots: snapshots,
		ReviewStatus:      db_models.ReviewStatusPending,
		SubmittedAt:       now,
	}

	if err := s.checkinRepo.Create(ctx, checkin); err != nil {
		return nil, err
	}
	return checkin, nil
}

// ReviewCommentText normalizes reviewer comments: an empty comment gets the
// default text, a human-authored one gets the outcome tag prepended.
func ReviewCommentText(outcome ReviewOutcome, comments string) string {
	comments = strings.TrimSpace(comments)
	switch outcome {
	case OutcomeApprove:
		if comments == "" {
			return "Approved"
		}
		return db_models.ReviewTagApproved + " " + comments
	default:
		if comments == "" {
			return "Needs improvement"
		}
		return db_models.ReviewTagNeedsImprovement + " " + comments
	}
}

// Review transitions a pending check-in to reviewed. The transition is
// terminal: the repository only commits it while the record is still pending,
// so of two concurrent reviewers exactly one wins and the other observes
// ErrAlreadyReviewed. The author notification is fire-and-forget.
func (s *CheckinService) Review(ctx context.Context, reviewerID, checkinID uuid.UUID, req request_models.ReviewCheckinRequest) (*db_models.Checkin, error) {
	outcome := ReviewOutcome(req.Outcome)
	if outcome != OutcomeApprove && outcome != OutcomeReject {
		return nil, fmt.Errorf("%w: outcome must be approve or reject", utils.ErrValidation)
	}
	// Rejections demand an explanation, validated before any mutation.
	if outcome == OutcomeReject && strings.TrimSpace(req.Comments) == "" {
		return nil, fmt.Errorf("%w: rejecting a check-in requires a comment", utils.ErrValidation)
	}

	checkin, err := s.checkinRepo.FindByID(ctx, checkinID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if checkin == nil {
		return nil, utils.ErrNotFound
	}

	reviewer, err := s.accountRepo.FindByID(ctx, reviewerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if reviewer == nil {
		return nil, utils.ErrAccountNotFound
	}
	owner, err := s.accountRepo.FindByID(ctx, checkin.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if owner == nil {
		return nil, utils.ErrAccountNotFound
	}
	if err := reviewScope(reviewer, owner); err != nil {
		return nil, err
	}

	if checkin.ReviewStatus != db_models.ReviewStatusPending {
		return nil, utils.ErrAlreadyReviewed
	}

	// Per-question annotations replace whole keys, never deep-merge flag fields.
	responseComments := mergeComments(checkin.ResponseComments, req.ResponseComments)
	responseFlags := mergeFlags(checkin.ResponseFlags, req.ResponseFlags)

	update := repositories.ReviewUpdate{
		ReviewerID:       reviewerID,
		ReviewedAt:       time.Now(),
		ReviewComments:   ReviewCommentText(outcome, req.Comments),
		ResponseComments: responseComments,
		ResponseFlags:    responseFlags,
	}

	committed, err := s.checkinRepo.ApplyReview(ctx, checkinID, update)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !committed {
		return nil, utils.ErrAlreadyReviewed
	}

	checkin.ReviewStatus = db_models.ReviewStatusReviewed
	checkin.ReviewerID = &reviewerID
	checkin.ReviewedAt = &update.ReviewedAt
	checkin.ReviewComments = update.ReviewComments
	checkin.ResponseComments = responseComments
	checkin.ResponseFlags = responseFlags

	// Delivery failure never unwinds the committed review.
	s.notifier.CheckinReviewed(checkin, reviewer, owner)

	return checkin, nil
}

// reviewScope limits review to the owner's manager, or an admin of the
// owner's organization.
func reviewScope(reviewer, owner *db_models.Account) error {
	if reviewer.Role == db_models.RoleAdmin && reviewer.OrgID == owner.OrgID {
		return nil
	}
	if reviewer.Role == db_models.RoleManager && owner.ManagerID != nil && *owner.ManagerID == reviewer.ID {
		return nil
	}
	return utils.ErrForbidden
}

func mergeComments(existing db_models.JSONMap, incoming map[string]string) db_models.JSONMap {
	merged := make(db_models.JSONMap, len(existing)+len(incoming))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range incoming {
		merged[k] = v
	}
	return merged
}

func mergeFlags(existing db_models.FlagMap, incoming map[string]request_models.ResponseFlagsInput) db_models.FlagMap {
	merged := make(db_models.FlagMap, len(existing)+len(incoming))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range incoming {
		merged[k] = db_models.ResponseFlags{
			AddToOneOnOne:   v.AddToOneOnOne,
			FlagForFollowUp: v.FlagForFollowUp,
		}
	}
	return merged
}

func (s *CheckinService) History(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Checkin, error) {
	return s.checkinRepo.ListByUser(ctx, userID, page, pageSize)
}

func (s *CheckinService) HistoryForReport(ctx context.Context, managerID, reportID uuid.UUID, page, pageSize int) ([]db_models.Checkin, error) {
	manager, err := s.accountRepo.FindByID(ctx, managerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if manager == nil {
		return nil, utils.ErrAccountNotFound
	}
	report, err := s.accountRepo.FindByID(ctx, reportID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if report == nil {
		return nil, utils.ErrAccountNotFound
	}
	if err := reviewScope(manager, report); err != nil {
		return nil, err
	}
	return s.checkinRepo.ListByUser(ctx, reportID, page, pageSize)
}

func (s *CheckinService) PendingForManager(ctx context.Context, managerID uuid.UUID) ([]db_models.Checkin, error) {
	reports, err := s.accountRepo.ListByManager(ctx, managerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	ids := make([]uuid.UUID, 0, len(reports))
	for _, r := range reports {
		ids = append(ids, r.ID)
	}
	return s.checkinRepo.ListPendingForUsers(ctx, ids)
}

func (s *CheckinService) AddComment(ctx context.Context, userID, checkinID uuid.UUID, content string) (*db_models.CheckinComment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: comment content must not be empty", utils.ErrValidation)
	}
	checkin, err := s.checkinRepo.FindByID(ctx, checkinID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if checkin == nil {
		return nil, utils.ErrNotFound
	}

	comment := &db_models.CheckinComment{
		CheckinID: checkinID,
		UserID:    userID,
		Content:   content,
	}
	if err := s.checkinRepo.CreateComment(ctx, comment); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return comment, nil
}

func (s *CheckinService) UpdateComment(ctx context.Context, userID, commentID uuid.UUID, content string) (*db_models.CheckinComment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: comment content must not be empty", utils.ErrValidation)
	}
	comment, err := s.checkinRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if comment == nil {
		return nil, utils.ErrNotFound
	}
	if comment.UserID != userID {
		return nil, utils.ErrForbidden
	}
	comment.Content = content
	if err := s.checkinRepo.UpdateComment(ctx, comment); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return comment, nil
}

func (s *CheckinService) DeleteComment(ctx context.Context, userID, commentID uuid.UUID, isAdmin bool) error {
	comment, err := s.checkinRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if comment == nil {
		return utils.ErrNotFound
	}
	if comment.UserID != userID && !isAdmin {
		return utils.ErrForbidden
	}
	if err := s.checkinRepo.DeleteComment(ctx, commentID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CheckinService) ListComments(ctx context.Context, checkinID uuid.UUID) ([]db_models.CheckinComment, error) {
	return s.checkinRepo.ListComments(ctx, checkinID)
}
