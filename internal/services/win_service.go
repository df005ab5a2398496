package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"whirkplace/internal/models/db_models"
	"whirkplace/internal/models/request_models"
	"whirkplace/internal/repositories"
	"whirkplace/pkg/utils"
)

type WinServiceInterface interface {
	CreateWin(ctx context.Context, authorID uuid.UUID, req request_models.CreateWinRequest) (*db_models.Win, error)
	ListFeed(ctx context.Context, orgID uuid.UUID, page, pageSize int) ([]db_models.Win, error)
	React(ctx context.Context, userID, winID uuid.UUID, emoji string) error
	Unreact(ctx context.Context, userID, winID uuid.UUID, emoji string) error
}

type WinService struct {
	winRepo     repositories.WinRepositoryInterface
	accountRepo repositories.AccountRepositoryInterface
	notifier    NotifierInterface
}

func NewWinService(
	winRepo repositories.WinRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	notifier NotifierInterface,
) WinServiceInterface {
	return &WinService{
		winRepo:     winRepo,
		accountRepo: accountRepo,
		notifier:    notifier,
	}
}

func (s *WinService) CreateWin(ctx context.Context, authorID uuid.UUID, req request_models.CreateWinRequest) (*db_models.Win, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: win content must not be empty", utils.ErrValidation)
	}

	author, err := s.accountRepo.FindByID(ctx, authorID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if author == nil {
		return nil, utils.ErrAccountNotFound
	}

	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return nil, utils.ErrValidation
	}
	recipient, err := s.accountRepo.FindByID(ctx, recipientID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if recipient == nil || recipient.OrgID != author.OrgID {
		return nil, utils.ErrAccountNotFound
	}

	win := &db_models.Win{
		OrgID:       author.OrgID,
		AuthorID:    authorID,
		RecipientID: recipientID,
		Content:     req.Content,
		Category:    req.Category,
		Tags:        req.Tags,
	}
	if err := s.winRepo.Create(ctx, win); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.notifier.WinPosted(win, author, recipient)

	return win, nil
}

func (s *WinService) ListFeed(ctx context.Context, orgID uuid.UUID, page, pageSize int) ([]db_models.Win, error) {
	return s.winRepo.ListByOrg(ctx, orgID, page, pageSize)
}

func (s *WinService) React(ctx context.Context, userID, winID uuid.UUID, emoji string) error {
	win, err := s.winRepo.FindByID(ctx, winID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if win == nil {
		return utils.ErrNotFound
	}

	reaction := &db_models.WinReaction{
		WinID:  winID,
		UserID: userID,
		Emoji:  emoji,
	}
	if err := s.winRepo.AddReaction(ctx, reaction); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *WinService) Unreact(ctx context.Context, userID, winID uuid.UUID, emoji string) error {
	if err := s.winRepo.RemoveReaction(ctx, winID, userID, emoji); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
