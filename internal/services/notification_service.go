package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"whirkplace/internal/models/db_models"
	"whirkplace/internal/models/request_models"
	"whirkplace/internal/repositories"
	"whirkplace/pkg/utils"
)

// NotifierInterface is the fire-and-forget side of notifications: callers
// never observe delivery failures, they are logged and dropped.
type NotifierInterface interface {
	CheckinReviewed(checkin *db_models.Checkin, reviewer, owner *db_models.Account)
	CheckinCommented(checkin *db_models.Checkin, author, owner *db_models.Account)
	WinPosted(win *db_models.Win, author, recipient *db_models.Account)
	KRAAssigned(template *db_models.KRATemplate, assignee *db_models.Account)
}

type NotificationServiceInterface interface {
	NotifierInterface

	GetPreferences(ctx context.Context, accountID uuid.UUID) (*db_models.NotificationPreference, error)
	UpdatePreferences(ctx context.Context, accountID uuid.UUID, req request_models.UpdatePreferencesRequest) (*db_models.NotificationPreference, error)
	ListForUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
}

type NotificationService struct {
	notificationRepo repositories.NotificationRepositoryInterface
	mailService      IMailService
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepositoryInterface,
	mailService IMailService,
) NotificationServiceInterface {
	return &NotificationService{
		notificationRepo: notificationRepo,
		mailService:      mailService,
	}
}

// GetPreferences returns the stored matrix, or the default matrix when the
// account has never saved one.
func (s *NotificationService) GetPreferences(ctx context.Context, accountID uuid.UUID) (*db_models.NotificationPreference, error) {
	pref, err := s.notificationRepo.FindPreference(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if pref == nil {
		pref = defaultPreferences(accountID)
	}
	return pref, nil
}

func (s *NotificationService) UpdatePreferences(ctx context.Context, accountID uuid.UUID, req request_models.UpdatePreferencesRequest) (*db_models.NotificationPreference, error) {
	pref, err := s.notificationRepo.FindPreference(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if pref == nil {
		pref = defaultPreferences(accountID)
	}

	pref.CheckinReminderEmail = *req.CheckinReminderEmail
	pref.CheckinReminderInApp = *req.CheckinReminderInApp
	pref.CheckinReviewedEmail = *req.CheckinReviewedEmail
	pref.CheckinReviewedInApp = *req.CheckinReviewedInApp
	pref.NewCommentEmail = *req.NewCommentEmail
	pref.NewCommentInApp = *req.NewCommentInApp
	pref.NewWinEmail = *req.NewWinEmail
	pref.NewWinInApp = *req.NewWinInApp
	pref.KRAAssignedEmail = *req.KRAAssignedEmail
	pref.KRAAssignedInApp = *req.KRAAssignedInApp

	if err := s.notificationRepo.SavePreference(ctx, pref); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return pref, nil
}

func defaultPreferences(accountID uuid.UUID) *db_models.NotificationPreference {
	return &db_models.NotificationPreference{
		AccountID:            accountID,
		CheckinReminderEmail: true,
		CheckinReminderInApp: true,
		CheckinReviewedEmail: true,
		CheckinReviewedInApp: true,
		NewCommentInApp:      true,
		NewWinInApp:          true,
		KRAAssignedEmail:     true,
		KRAAssignedInApp:     true,
	}
}

func (s *NotificationService) ListForUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Notification, error) {
	return s.notificationRepo.ListForUser(ctx, userID, page, pageSize)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	ok, err := s.notificationRepo.MarkRead(ctx, id, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !ok {
		return utils.ErrNotFound
	}
	return nil
}

// ------------------- Dispatch -------------------

func (s *NotificationService) CheckinReviewed(checkin *db_models.Checkin, reviewer, owner *db_models.Account) {
	title := "Your check-in was reviewed"
	body := fmt.Sprintf("%s reviewed your check-in for the week of %s: %s",
		reviewer.Name, checkin.WeekOf.Format("Jan 2, 2006"), checkin.ReviewComments)
	s.dispatch(owner, db_models.NotifyCheckinReviewed, title, body)
}

func (s *NotificationService) CheckinCommented(checkin *db_models.Checkin, author, owner *db_models.Account) {
	if author.ID == owner.ID {
		return
	}
	title := "New comment on your check-in"
	body := fmt.Sprintf("%s commented on your check-in for the week of %s",
		author.Name, checkin.WeekOf.Format("Jan 2, 2006"))
	s.dispatch(owner, db_models.NotifyNewComment, title, body)
}

func (s *NotificationService) WinPosted(win *db_models.Win, author, recipient *db_models.Account) {
	title := "You got a shoutout!"
	body := fmt.Sprintf("%s recognized you: %s", author.Name, win.Content)
	s.dispatch(recipient, db_models.NotifyNewWin, title, body)
}

func (s *NotificationService) KRAAssigned(template *db_models.KRATemplate, assignee *db_models.Account) {
	title := "New KRA assigned"
	body := fmt.Sprintf("You were assigned the KRA %q", template.Title)
	s.dispatch(assignee, db_models.NotifyKRAAssigned, title, body)
}

// dispatch runs in its own goroutine; the triggering request has usually
// already returned, so delivery uses a background context and failures are
// only ever logged.
func (s *NotificationService) dispatch(recipient *db_models.Account, kind db_models.NotificationKind, title, body string) {
	go func() {
		ctx := context.Background()

		pref, err := s.notificationRepo.FindPreference(ctx, recipient.ID)
		if err != nil {
			log.Printf("notification: loading preferences for %s: %v", recipient.ID, err)
			return
		}
		if pref == nil {
			pref = defaultPreferences(recipient.ID)
		}

		if pref.Allows(kind, false) {
			notification := &db_models.Notification{
				UserID: recipient.ID,
				Kind:   kind,
				Title:  title,
				Body:   body,
			}
			if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
				log.Printf("notification: writing in-app row for %s: %v", recipient.ID, err)
			}
		}

		if pref.Allows(kind, true) {
			if err := s.mailService.SendMailToNotifyUser(recipient.Email, title, body, "", ""); err != nil {
				log.Printf("notification: sending mail to %s: %v", recipient.Email, err)
			}
		}
	}()
}
