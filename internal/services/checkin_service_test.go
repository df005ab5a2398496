package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"whirkplace/internal/models/db_models"
	"whirkplace/internal/models/request_models"
	"whirkplace/internal/models/response_models"
	"whirkplace/internal/repositories"
	"whirkplace/pkg/utils"
)

// ---------- fakes ----------

type fakeCheckinRepo struct {
	checkins map[uuid.UUID]*db_models.Checkin
	comments map[uuid.UUID]*db_models.CheckinComment

	createErr error
	// when set, ApplyReview refuses to commit, as if a rival reviewer
	// already flipped the row
	reviewLost bool
}

func newFakeCheckinRepo() *fakeCheckinRepo {
	return &fakeCheckinRepo{
		checkins: map[uuid.UUID]*db_models.Checkin{},
		comments: map[uuid.UUID]*db_models.CheckinComment{},
	}
}

func (f *fakeCheckinRepo) Create(ctx context.Context, checkin *db_models.Checkin) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, c := range f.checkins {
		if c.UserID == checkin.UserID && c.WeekOf.Equal(checkin.WeekOf) {
			return utils.ErrDuplicateSubmission
		}
	}
	if checkin.ID == uuid.Nil {
		checkin.ID = uuid.New()
	}
	f.checkins[checkin.ID] = checkin
	return nil
}

func (f *fakeCheckinRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Checkin, error) {
	return f.checkins[id], nil
}

func (f *fakeCheckinRepo) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Checkin, error) {
	var out []db_models.Checkin
	for _, c := range f.checkins {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCheckinRepo) WeeksSubmitted(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	var out []time.Time
	for _, c := range f.checkins {
		if c.UserID == userID && !c.WeekOf.Before(since) {
			out = append(out, c.WeekOf)
		}
	}
	return out, nil
}

func (f *fakeCheckinRepo) ApplyReview(ctx context.Context, checkinID uuid.UUID, update repositories.ReviewUpdate) (bool, error) {
	c, ok := f.checkins[checkinID]
	if !ok {
		return false, nil
	}
	if f.reviewLost || c.ReviewStatus != db_models.ReviewStatusPending {
		return false, nil
	}
	c.ReviewStatus = db_models.ReviewStatusReviewed
	c.ReviewerID = &update.ReviewerID
	c.ReviewedAt = &update.ReviewedAt
	c.ReviewComments = update.ReviewComments
	c.ResponseComments = update.ResponseComments
	c.ResponseFlags = update.ResponseFlags
	return true, nil
}

func (f *fakeCheckinRepo) ListPendingForUsers(ctx context.Context, userIDs []uuid.UUID) ([]db_models.Checkin, error) {
	var out []db_models.Checkin
	for _, c := range f.checkins {
		if c.ReviewStatus != db_models.ReviewStatusPending {
			continue
		}
		for _, id := range userIDs {
			if c.UserID == id {
				out = append(out, *c)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeCheckinRepo) ListForUsersByWeek(ctx context.Context, userIDs []uuid.UUID, weekOf time.Time) ([]db_models.Checkin, error) {
	var out []db_models.Checkin
	for _, c := range f.checkins {
		if !c.WeekOf.Equal(weekOf) {
			continue
		}
		for _, id := range userIDs {
			if c.UserID == id {
				out = append(out, *c)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeCheckinRepo) CreateComment(ctx context.Context, comment *db_models.CheckinComment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeCheckinRepo) FindCommentByID(ctx context.Context, id uuid.UUID) (*db_models.CheckinComment, error) {
	return f.comments[id], nil
}

func (f *fakeCheckinRepo) UpdateComment(ctx context.Context, comment *db_models.CheckinComment) error {
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeCheckinRepo) DeleteComment(ctx context.Context, id uuid.UUID) error {
	delete(f.comments, id)
	return nil
}

func (f *fakeCheckinRepo) ListComments(ctx context.Context, checkinID uuid.UUID) ([]db_models.CheckinComment, error) {
	var out []db_models.CheckinComment
	for _, c := range f.comments {
		if c.CheckinID == checkinID {
			out = append(out, *c)
		}
	}
	return out, nil
}

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*db_models.Account
}

func newFakeAccountRepo(accounts ...*db_models.Account) *fakeAccountRepo {
	f := &fakeAccountRepo{accounts: map[uuid.UUID]*db_models.Account{}}
	for _, a := range accounts {
		f.accounts[a.ID] = a
	}
	return f
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	return f.accounts[id], nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) Create(ctx context.Context, account *db_models.Account) error {
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeAccountRepo) CreateTx(tx *gorm.DB, account *db_models.Account) error {
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeAccountRepo) Update(ctx context.Context, account *db_models.Account) error {
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeAccountRepo) ListByManager(ctx context.Context, managerID uuid.UUID) ([]db_models.Account, error) {
	var out []db_models.Account
	for _, a := range f.accounts {
		if a.ManagerID != nil && *a.ManagerID == managerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAccountRepo) ListByOrg(ctx context.Context, orgID uuid.UUID) ([]db_models.Account, error) {
	var out []db_models.Account
	for _, a := range f.accounts {
		if a.OrgID == orgID {
			out = append(out, *a)
		}
	}
	return out, nil
}

type fakeQuestionRepo struct {
	active []db_models.Question
}

func (f *fakeQuestionRepo) Create(ctx context.Context, q *db_models.Question) error { return nil }
func (f *fakeQuestionRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Question, error) {
	return nil, nil
}
func (f *fakeQuestionRepo) Update(ctx context.Context, q *db_models.Question) error { return nil }
func (f *fakeQuestionRepo) ListActive(ctx context.Context, orgID uuid.UUID) ([]db_models.Question, error) {
	return f.active, nil
}
func (f *fakeQuestionRepo) ListAll(ctx context.Context, orgID uuid.UUID) ([]db_models.Question, error) {
	return f.active, nil
}
func (f *fakeQuestionRepo) SetSortOrder(ctx context.Context, id uuid.UUID, order int) error {
	return nil
}

type fakeVacationRepo struct {
	onVacation bool
}

func (f *fakeVacationRepo) Create(ctx context.Context, v *db_models.Vacation) error { return nil }
func (f *fakeVacationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Vacation, error) {
	return nil, nil
}
func (f *fakeVacationRepo) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	return true, nil
}
func (f *fakeVacationRepo) HasVacationOn(ctx context.Context, userID uuid.UUID, date time.Time) (bool, error) {
	return f.onVacation, nil
}

type fakeNotifier struct {
	reviewed  int
	commented int
	wins      int
	kras      int
}

func (f *fakeNotifier) CheckinReviewed(c *db_models.Checkin, reviewer, owner *db_models.Account) {
	f.reviewed++
}
func (f *fakeNotifier) CheckinCommented(c *db_models.Checkin, author, owner *db_models.Account) {
	f.commented++
}
func (f *fakeNotifier) WinPosted(w *db_models.Win, author, recipient *db_models.Account) { f.wins++ }
func (f *fakeNotifier) KRAAssigned(t *db_models.KRATemplate, assignee *db_models.Account) {
	f.kras++
}

// ---------- fixtures ----------

type checkinFixture struct {
	svc      CheckinServiceInterface
	checkins *fakeCheckinRepo
	accounts *fakeAccountRepo
	vacation *fakeVacationRepo
	notifier *fakeNotifier

	org     uuid.UUID
	member  *db_models.Account
	manager *db_models.Account
	admin   *db_models.Account

	questionID uuid.UUID
}

func newCheckinFixture(t *testing.T) *checkinFixture {
	t.Helper()

	org := uuid.New()
	manager := &db_models.Account{
		BaseModel: db_models.BaseModel{ID: uuid.New(), CreatedAt: time.Now().AddDate(-1, 0, 0).Unix()},
		OrgID:     org,
		Name:      "Morgan",
		Role:      db_models.RoleManager,
	}
	member := &db_models.Account{
		BaseModel: db_models.BaseModel{ID: uuid.New(), CreatedAt: time.Now().AddDate(-1, 0, 0).Unix()},
		OrgID:     org,
		Name:      "Riley",
		Role:      db_models.RoleMember,
		ManagerID: &manager.ID,
	}
	admin := &db_models.Account{
		BaseModel: db_models.BaseModel{ID: uuid.New(), CreatedAt: time.Now().AddDate(-1, 0, 0).Unix()},
		OrgID:     org,
		Name:      "Avery",
		Role:      db_models.RoleAdmin,
	}

	questionID := uuid.New()
	checkins := newFakeCheckinRepo()
	accounts := newFakeAccountRepo(member, manager, admin)
	vacation := &fakeVacationRepo{}
	notifier := &fakeNotifier{}
	questions := &fakeQuestionRepo{active: []db_models.Question{
		{BaseModel: db_models.BaseModel{ID: questionID}, Text: "What went well this week?"},
	}}

	return &checkinFixture{
		svc:        NewCheckinService(checkins, questions, vacation, accounts, notifier),
		checkins:   checkins,
		accounts:   accounts,
		vacation:   vacation,
		notifier:   notifier,
		org:        org,
		member:     member,
		manager:    manager,
		admin:      admin,
		questionID: questionID,
	}
}

func (fx *checkinFixture) submit(t *testing.T, weekOf time.Time) *db_models.Checkin {
	t.Helper()
	checkin, err := fx.svc.SubmitCheckin(context.Background(), fx.member.ID, request_models.SubmitCheckinRequest{
		WeekOf:      utils.FormatWeekOf(weekOf),
		OverallMood: 4,
		Responses:   map[string]string{fx.questionID.String(): "Shipped the release"},
	})
	if err != nil {
		t.Fatalf("SubmitCheckin(%s): %v", utils.FormatWeekOf(weekOf), err)
	}
	return checkin
}

// ---------- window ----------

func TestOpenWeeksFullWindow(t *testing.T) {
	fx := newCheckinFixture(t)
	today := time.Date(2025, time.October, 22, 15, 0, 0, 0, time.UTC)

	window, err := fx.svc.OpenWeeks(context.Background(), fx.member.ID, today, 0)
	if err != nil {
		t.Fatalf("OpenWeeks: %v", err)
	}
	if window.CurrentWeek == nil {
		t.Fatal("expected a current week entry")
	}
	if window.CurrentWeek.WeekOf != "2025-10-24" {
		t.Fatalf("current WeekOf = %s, want 2025-10-24", window.CurrentWeek.WeekOf)
	}
	if window.CurrentWeek.WeekStart != "2025-10-18" {
		t.Fatalf("current WeekStart = %s, want 2025-10-18", window.CurrentWeek.WeekStart)
	}
	if window.CurrentWeek.Label != "This week" {
		t.Fatalf("current Label = %q", window.CurrentWeek.Label)
	}
	if len(window.LateWeeks) != utils.DefaultLookbackWeeks {
		t.Fatalf("late weeks = %d, want %d", len(window.LateWeeks), utils.DefaultLookbackWeeks)
	}
	wantLate := []struct{ weekOf, label string }{
		{"2025-10-17", "Last week"},
		{"2025-10-10", "2 weeks ago"},
		{"2025-10-03", "3 weeks ago"},
		{"2025-09-26", "4 weeks ago"},
	}
	for i, want := range wantLate {
		if window.LateWeeks[i].WeekOf != want.weekOf || window.LateWeeks[i].Label != want.label {
			t.Fatalf("late[%d] = {%s %q}, want {%s %q}",
				i, window.LateWeeks[i].WeekOf, window.LateWeeks[i].Label, want.weekOf, want.label)
		}
	}
	if window.OnVacation {
		t.Fatal("OnVacation = true, want false")
	}
}

func TestOpenWeeksSkipsSubmittedWeeks(t *testing.T) {
	fx := newCheckinFixture(t)
	today := time.Now().UTC()
	currentWeek := utils.CanonicalWeekOf(today)

	fx.submit(t, currentWeek)
	fx.submit(t, currentWeek.AddDate(0, 0, -14))

	window, err := fx.svc.OpenWeeks(context.Background(), fx.member.ID, today, 0)
	if err != nil {
		t.Fatalf("OpenWeeks: %v", err)
	}
	if window.CurrentWeek != nil {
		t.Fatal("current week already submitted, want nil entry")
	}
	for _, w := range window.LateWeeks {
		if w.WeekOf == utils.FormatWeekOf(currentWeek.AddDate(0, 0, -14)) {
			t.Fatalf("late weeks still contain submitted week %s", w.WeekOf)
		}
	}
	if len(window.LateWeeks) != utils.DefaultLookbackWeeks-1 {
		t.Fatalf("late weeks = %d, want %d", len(window.LateWeeks), utils.DefaultLookbackWeeks-1)
	}
}

func TestOpenWeeksBoundedByAccountAge(t *testing.T) {
	fx := newCheckinFixture(t)
	today := time.Date(2025, time.October, 22, 0, 0, 0, 0, time.UTC)

	// Joined mid last week, so only the current and previous weeks are open.
	fx.member.CreatedAt = time.Date(2025, time.October, 14, 9, 0, 0, 0, time.UTC).Unix()

	window, err := fx.svc.OpenWeeks(context.Background(), fx.member.ID, today, 0)
	if err != nil {
		t.Fatalf("OpenWeeks: %v", err)
	}
	if window.CurrentWeek == nil {
		t.Fatal("expected a current week entry")
	}
	if len(window.LateWeeks) != 1 {
		t.Fatalf("late weeks = %d, want 1", len(window.LateWeeks))
	}
	if window.LateWeeks[0].WeekOf != "2025-10-17" {
		t.Fatalf("late[0] = %s, want 2025-10-17", window.LateWeeks[0].WeekOf)
	}
}

func TestOpenWeeksMonotonicAcrossDays(t *testing.T) {
	fx := newCheckinFixture(t)

	// Any two days inside the same reporting week yield an identical window.
	week := []time.Time{
		time.Date(2025, time.October, 18, 8, 0, 0, 0, time.UTC),
		time.Date(2025, time.October, 21, 12, 0, 0, 0, time.UTC),
		time.Date(2025, time.October, 24, 23, 0, 0, 0, time.UTC),
	}
	var first *string
	for _, day := range week {
		window, err := fx.svc.OpenWeeks(context.Background(), fx.member.ID, day, 0)
		if err != nil {
			t.Fatalf("OpenWeeks(%s): %v", day.Format("2006-01-02"), err)
		}
		key := window.CurrentWeek.WeekOf + "|" + strings.Join(lateWeekOfs(window.LateWeeks), ",")
		if first == nil {
			first = &key
			continue
		}
		if key != *first {
			t.Fatalf("window changed within the week: %s vs %s", key, *first)
		}
	}
}

func lateWeekOfs(weeks []response_models.OpenWeek) []string {
	out := make([]string, len(weeks))
	for i, w := range weeks {
		out[i] = w.WeekOf
	}
	return out
}

func TestOpenWeeksFlagsVacation(t *testing.T) {
	fx := newCheckinFixture(t)
	fx.vacation.onVacation = true

	window, err := fx.svc.OpenWeeks(context.Background(), fx.member.ID, time.Now().UTC(), 0)
	if err != nil {
		t.Fatalf("OpenWeeks: %v", err)
	}
	if !window.OnVacation {
		t.Fatal("OnVacation = false, want true")
	}
}

// ---------- submission ----------

func TestSubmitCheckinValidation(t *testing.T) {
	fx := newCheckinFixture(t)
	currentWeek := utils.CanonicalWeekOf(time.Now())
	answer := map[string]string{fx.questionID.String(): "Plenty"}

	cases := []struct {
		name string
		req  request_models.SubmitCheckinRequest
		want error
	}{
		{
			"malformed date",
			request_models.SubmitCheckinRequest{WeekOf: "last friday", OverallMood: 3, Responses: answer},
			utils.ErrInvalidDate,
		},
		{
			"non canonical day",
			request_models.SubmitCheckinRequest{WeekOf: utils.FormatWeekOf(currentWeek.AddDate(0, 0, -1)), OverallMood: 3, Responses: answer},
			utils.ErrValidation,
		},
		{
			"mood too low",
			request_models.SubmitCheckinRequest{WeekOf: utils.FormatWeekOf(currentWeek), OverallMood: 0, Responses: answer},
			utils.ErrValidation,
		},
		{
			"mood too high",
			request_models.SubmitCheckinRequest{WeekOf: utils.FormatWeekOf(currentWeek), OverallMood: 6, Responses: answer},
			utils.ErrValidation,
		},
		{
			"empty responses",
			request_models.SubmitCheckinRequest{WeekOf: utils.FormatWeekOf(currentWeek), OverallMood: 3, Responses: map[string]string{}},
			utils.ErrValidation,
		},
		{
			"future week",
			request_models.SubmitCheckinRequest{WeekOf: utils.FormatWeekOf(currentWeek.AddDate(0, 0, 7)), OverallMood: 3, Responses: answer},
			utils.ErrValidation,
		},
		{
			"beyond the lookback",
			request_models.SubmitCheckinRequest{WeekOf: utils.FormatWeekOf(currentWeek.AddDate(0, 0, -7*(utils.DefaultLookbackWeeks+1))), OverallMood: 3, Responses: answer},
			utils.ErrValidation,
		},
		{
			"blank answer to an active question",
			request_models.SubmitCheckinRequest{WeekOf: utils.FormatWeekOf(currentWeek), OverallMood: 3, Responses: map[string]string{fx.questionID.String(): "   "}},
			utils.ErrValidation,
		},
		{
			"missing active question",
			request_models.SubmitCheckinRequest{WeekOf: utils.FormatWeekOf(currentWeek), OverallMood: 3, Responses: map[string]string{uuid.NewString(): "off topic"}},
			utils.ErrValidation,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fx.svc.SubmitCheckin(context.Background(), fx.member.ID, tc.req)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
	if len(fx.checkins.checkins) != 0 {
		t.Fatalf("invalid submissions persisted %d check-ins", len(fx.checkins.checkins))
	}
}

func TestSubmitCheckinStoresSnapshots(t *testing.T) {
	fx := newCheckinFixture(t)
	currentWeek := utils.CanonicalWeekOf(time.Now())

	checkin := fx.submit(t, currentWeek)
	if checkin.ReviewStatus != db_models.ReviewStatusPending {
		t.Fatalf("ReviewStatus = %s, want pending", checkin.ReviewStatus)
	}
	if got := checkin.QuestionSnapshots[fx.questionID.String()]; got != "What went well this week?" {
		t.Fatalf("snapshot = %q", got)
	}
	if !checkin.WeekOf.Equal(currentWeek) {
		t.Fatalf("WeekOf = %s, want %s", utils.FormatWeekOf(checkin.WeekOf), utils.FormatWeekOf(currentWeek))
	}
}

func TestSubmitCheckinLateWeekAllowed(t *testing.T) {
	fx := newCheckinFixture(t)
	lateWeek := utils.CanonicalWeekOf(time.Now()).AddDate(0, 0, -7*utils.DefaultLookbackWeeks)
	fx.submit(t, lateWeek)
}

func TestSubmitCheckinDuplicateWeek(t *testing.T) {
	fx := newCheckinFixture(t)
	currentWeek := utils.CanonicalWeekOf(time.Now())
	fx.submit(t, currentWeek)

	_, err := fx.svc.SubmitCheckin(context.Background(), fx.member.ID, request_models.SubmitCheckinRequest{
		WeekOf:      utils.FormatWeekOf(currentWeek),
		OverallMood: 2,
		Responses:   map[string]string{fx.questionID.String(): "Again"},
	})
	if !errors.Is(err, utils.ErrDuplicateSubmission) {
		t.Fatalf("err = %v, want ErrDuplicateSubmission", err)
	}
}

// ---------- review ----------

func TestReviewCommentText(t *testing.T) {
	cases := []struct {
		name     string
		outcome  ReviewOutcome
		comments string
		want     string
	}{
		{"approve empty", OutcomeApprove, "", "Approved"},
		{"approve whitespace", OutcomeApprove, "   ", "Approved"},
		{"approve with text", OutcomeApprove, "Nice work", "[APPROVED] Nice work"},
		{"reject with text", OutcomeReject, "Too thin", "[NEEDS IMPROVEMENT] Too thin"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ReviewCommentText(tc.outcome, tc.comments); got != tc.want {
				t.Fatalf("ReviewCommentText = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestReviewApproveWithEmptyComment(t *testing.T) {
	fx := newCheckinFixture(t)
	checkin := fx.submit(t, utils.CanonicalWeekOf(time.Now()))

	reviewed, err := fx.svc.Review(context.Background(), fx.manager.ID, checkin.ID, request_models.ReviewCheckinRequest{
		Outcome: "approve",
	})
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if reviewed.ReviewStatus != db_models.ReviewStatusReviewed {
		t.Fatalf("ReviewStatus = %s, want reviewed", reviewed.ReviewStatus)
	}
	if reviewed.ReviewComments != "Approved" {
		t.Fatalf("ReviewComments = %q, want %q", reviewed.ReviewComments, "Approved")
	}
	if reviewed.ReviewerID == nil || *reviewed.ReviewerID != fx.manager.ID {
		t.Fatal("ReviewerID not recorded")
	}
	if fx.notifier.reviewed != 1 {
		t.Fatalf("reviewed notifications = %d, want 1", fx.notifier.reviewed)
	}
}

func TestReviewRejectRequiresComment(t *testing.T) {
	fx := newCheckinFixture(t)
	checkin := fx.submit(t, utils.CanonicalWeekOf(time.Now()))

	_, err := fx.svc.Review(context.Background(), fx.manager.ID, checkin.ID, request_models.ReviewCheckinRequest{
		Outcome:  "reject",
		Comments: "   ",
	})
	if !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}

	// The failed review must not have touched the record.
	stored := fx.checkins.checkins[checkin.ID]
	if stored.ReviewStatus != db_models.ReviewStatusPending {
		t.Fatalf("ReviewStatus = %s, want pending", stored.ReviewStatus)
	}
	if stored.ReviewComments != "" || stored.ReviewerID != nil {
		t.Fatal("rejected review left review fields behind")
	}
	if fx.notifier.reviewed != 0 {
		t.Fatal("a notification fired for a failed review")
	}
}

func TestReviewRejectWithComment(t *testing.T) {
	fx := newCheckinFixture(t)
	checkin := fx.submit(t, utils.CanonicalWeekOf(time.Now()))

	reviewed, err := fx.svc.Review(context.Background(), fx.manager.ID, checkin.ID, request_models.ReviewCheckinRequest{
		Outcome:  "reject",
		Comments: "Please expand on the blockers",
		ResponseComments: map[string]string{
			fx.questionID.String(): "This needs specifics",
		},
		ResponseFlags: map[string]request_models.ResponseFlagsInput{
			fx.questionID.String(): {AddToOneOnOne: true},
		},
	})
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if want := "[NEEDS IMPROVEMENT] Please expand on the blockers"; reviewed.ReviewComments != want {
		t.Fatalf("ReviewComments = %q, want %q", reviewed.ReviewComments, want)
	}
	if got := reviewed.ResponseComments[fx.questionID.String()]; got != "This needs specifics" {
		t.Fatalf("response comment = %q", got)
	}
	flags := reviewed.ResponseFlags[fx.questionID.String()]
	if !flags.AddToOneOnOne || flags.FlagForFollowUp {
		t.Fatalf("flags = %+v", flags)
	}
}

func TestReviewIsTerminal(t *testing.T) {
	fx := newCheckinFixture(t)
	checkin := fx.submit(t, utils.CanonicalWeekOf(time.Now()))

	if _, err := fx.svc.Review(context.Background(), fx.manager.ID, checkin.ID, request_models.ReviewCheckinRequest{Outcome: "approve"}); err != nil {
		t.Fatalf("first review: %v", err)
	}
	_, err := fx.svc.Review(context.Background(), fx.admin.ID, checkin.ID, request_models.ReviewCheckinRequest{Outcome: "reject", Comments: "changed my mind"})
	if !errors.Is(err, utils.ErrAlreadyReviewed) {
		t.Fatalf("second review err = %v, want ErrAlreadyReviewed", err)
	}
	if fx.notifier.reviewed != 1 {
		t.Fatalf("reviewed notifications = %d, want 1", fx.notifier.reviewed)
	}
}

func TestReviewConcurrentLoser(t *testing.T) {
	fx := newCheckinFixture(t)
	checkin := fx.submit(t, utils.CanonicalWeekOf(time.Now()))

	// The record still reads pending, but the guarded update refuses to
	// commit: a rival reviewer got there between the read and the write.
	fx.checkins.reviewLost = true

	_, err := fx.svc.Review(context.Background(), fx.manager.ID, checkin.ID, request_models.ReviewCheckinRequest{Outcome: "approve"})
	if !errors.Is(err, utils.ErrAlreadyReviewed) {
		t.Fatalf("err = %v, want ErrAlreadyReviewed", err)
	}
	if fx.notifier.reviewed != 0 {
		t.Fatal("losing reviewer still notified the author")
	}
}

func TestReviewScope(t *testing.T) {
	fx := newCheckinFixture(t)
	checkin := fx.submit(t, utils.CanonicalWeekOf(time.Now()))

	otherManager := &db_models.Account{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		OrgID:     fx.org,
		Role:      db_models.RoleManager,
	}
	foreignAdmin := &db_models.Account{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		OrgID:     uuid.New(),
		Role:      db_models.RoleAdmin,
	}
	fx.accounts.Create(context.Background(), otherManager)
	fx.accounts.Create(context.Background(), foreignAdmin)

	cases := []struct {
		name     string
		reviewer uuid.UUID
		want     error
	}{
		{"not their manager", otherManager.ID, utils.ErrForbidden},
		{"admin of another org", foreignAdmin.ID, utils.ErrForbidden},
		{"the member themselves", fx.member.ID, utils.ErrForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fx.svc.Review(context.Background(), tc.reviewer, checkin.ID, request_models.ReviewCheckinRequest{Outcome: "approve"})
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}

	// The org's own admin may review without being the manager.
	if _, err := fx.svc.Review(context.Background(), fx.admin.ID, checkin.ID, request_models.ReviewCheckinRequest{Outcome: "approve"}); err != nil {
		t.Fatalf("admin review: %v", err)
	}
}

func TestReviewUnknownCheckin(t *testing.T) {
	fx := newCheckinFixture(t)
	_, err := fx.svc.Review(context.Background(), fx.manager.ID, uuid.New(), request_models.ReviewCheckinRequest{Outcome: "approve"})
	if !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

// ---------- manager views ----------

func TestPendingForManager(t *testing.T) {
	fx := newCheckinFixture(t)
	checkin := fx.submit(t, utils.CanonicalWeekOf(time.Now()))

	pending, err := fx.svc.PendingForManager(context.Background(), fx.manager.ID)
	if err != nil {
		t.Fatalf("PendingForManager: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != checkin.ID {
		t.Fatalf("pending = %d entries", len(pending))
	}

	if _, err := fx.svc.Review(context.Background(), fx.manager.ID, checkin.ID, request_models.ReviewCheckinRequest{Outcome: "approve"}); err != nil {
		t.Fatalf("Review: %v", err)
	}
	pending, err = fx.svc.PendingForManager(context.Background(), fx.manager.ID)
	if err != nil {
		t.Fatalf("PendingForManager: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("pending after review = %d entries, want 0", len(pending))
	}
}

func TestHistoryForReportScope(t *testing.T) {
	fx := newCheckinFixture(t)
	fx.submit(t, utils.CanonicalWeekOf(time.Now()))

	history, err := fx.svc.HistoryForReport(context.Background(), fx.manager.ID, fx.member.ID, 1, 20)
	if err != nil {
		t.Fatalf("HistoryForReport: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history = %d entries, want 1", len(history))
	}

	stranger := &db_models.Account{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		OrgID:     fx.org,
		Role:      db_models.RoleManager,
	}
	fx.accounts.Create(context.Background(), stranger)
	if _, err := fx.svc.HistoryForReport(context.Background(), stranger.ID, fx.member.ID, 1, 20); !errors.Is(err, utils.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

// ---------- comments ----------

func TestCommentLifecycle(t *testing.T) {
	fx := newCheckinFixture(t)
	checkin := fx.submit(t, utils.CanonicalWeekOf(time.Now()))

	comment, err := fx.svc.AddComment(context.Background(), fx.manager.ID, checkin.ID, "How did the rollout go?")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}

	if _, err := fx.svc.AddComment(context.Background(), fx.manager.ID, checkin.ID, "  "); !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("blank comment err = %v, want ErrValidation", err)
	}
	if _, err := fx.svc.AddComment(context.Background(), fx.manager.ID, uuid.New(), "hello"); !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("unknown checkin err = %v, want ErrNotFound", err)
	}

	// Only the author may edit.
	if _, err := fx.svc.UpdateComment(context.Background(), fx.member.ID, comment.ID, "hijack"); !errors.Is(err, utils.ErrForbidden) {
		t.Fatalf("foreign edit err = %v, want ErrForbidden", err)
	}
	updated, err := fx.svc.UpdateComment(context.Background(), fx.manager.ID, comment.ID, "How did the rollout go yesterday?")
	if err != nil {
		t.Fatalf("UpdateComment: %v", err)
	}
	if updated.Content != "How did the rollout go yesterday?" {
		t.Fatalf("Content = %q", updated.Content)
	}

	// A non-author without the admin override may not delete.
	if err := fx.svc.DeleteComment(context.Background(), fx.member.ID, comment.ID, false); !errors.Is(err, utils.ErrForbidden) {
		t.Fatalf("foreign delete err = %v, want ErrForbidden", err)
	}
	if err := fx.svc.DeleteComment(context.Background(), fx.member.ID, comment.ID, true); err != nil {
		t.Fatalf("admin delete: %v", err)
	}

	comments, err := fx.svc.ListComments(context.Background(), checkin.ID)
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if len(comments) != 0 {
		t.Fatalf("comments after delete = %d, want 0", len(comments))
	}
}
