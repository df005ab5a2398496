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

type QuestionServiceInterface interface {
	CreateQuestion(ctx context.Context, orgID, createdBy uuid.UUID, req request_models.CreateQuestionRequest) (*db_models.Question, error)
	UpdateQuestion(ctx context.Context, orgID, questionID uuid.UUID, req request_models.UpdateQuestionRequest) (*db_models.Question, error)
	Reorder(ctx context.Context, orgID uuid.UUID, questionIDs []string) error
	ListActive(ctx context.Context, orgID uuid.UUID) ([]db_models.Question, error)
	ListAll(ctx context.Context, orgID uuid.UUID) ([]db_models.Question, error)
}

type QuestionService struct {
	questionRepo repositories.QuestionRepositoryInterface
}

func NewQuestionService(questionRepo repositories.QuestionRepositoryInterface) QuestionServiceInterface {
	return &QuestionService{questionRepo: questionRepo}
}

func (s *QuestionService) CreateQuestion(ctx context.Context, orgID, createdBy uuid.UUID, req request_models.CreateQuestionRequest) (*db_models.Question, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("%w: question text must not be empty", utils.ErrValidation)
	}

	question := &db_models.Question{
		OrgID:     orgID,
		Text:      req.Text,
		IsActive:  true,
		SortOrder: req.SortOrder,
		CreatedBy: createdBy,
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return question, nil
}

// UpdateQuestion edits text or the active flag. Historical check-ins are
// unaffected: they render from their own question snapshots.
func (s *QuestionService) UpdateQuestion(ctx context.Context, orgID, questionID uuid.UUID, req request_models.UpdateQuestionRequest) (*db_models.Question, error) {
	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if question == nil || question.OrgID != orgID {
		return nil, utils.ErrNotFound
	}

	if req.Text != nil {
		if strings.TrimSpace(*req.Text) == "" {
			return nil, fmt.Errorf("%w: question text must not be empty", utils.ErrValidation)
		}
		question.Text = *req.Text
	}
	if req.IsActive != nil {
		question.IsActive = *req.IsActive
	}

	if err := s.questionRepo.Update(ctx, question); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return question, nil
}

func (s *QuestionService) Reorder(ctx context.Context, orgID uuid.UUID, questionIDs []string) error {
	for order, idStr := range questionIDs {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return fmt.Errorf("%w: invalid question id %q", utils.ErrValidation, idStr)
		}
		question, err := s.questionRepo.FindByID(ctx, id)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if question == nil || question.OrgID != orgID {
			return utils.ErrNotFound
		}
		if err := s.questionRepo.SetSortOrder(ctx, id, order); err != nil {
			return utils.ErrDatabaseError
		}
	}
	return nil
}

func (s *QuestionService) ListActive(ctx context.Context, orgID uuid.UUID) ([]db_models.Question, error) {
	return s.questionRepo.ListActive(ctx, orgID)
}

func (s *QuestionService) ListAll(ctx context.Context, orgID uuid.UUID) ([]db_models.Question, error) {
	return s.questionRepo.ListAll(ctx, orgID)
}
