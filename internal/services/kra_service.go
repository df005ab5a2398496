package services

import (
	"context"

	"github.com/google/uuid"
	"whirkplace/internal/models/db_models"
	"whirkplace/internal/models/request_models"
	"whirkplace/internal/repositories"
	"whirkplace/pkg/utils"
)

type KRAServiceInterface interface {
	CreateTemplate(ctx context.Context, orgID, createdBy uuid.UUID, req request_models.CreateKRATemplateRequest) (*db_models.KRATemplate, error)
	UpdateTemplate(ctx context.Context, orgID, templateID uuid.UUID, req request_models.UpdateKRATemplateRequest) (*db_models.KRATemplate, error)
	DeleteTemplate(ctx context.Context, orgID, templateID uuid.UUID) error
	ListTemplates(ctx context.Context, orgID uuid.UUID) ([]db_models.KRATemplate, error)
	Assign(ctx context.Context, orgID, assignedBy, templateID uuid.UUID, req request_models.AssignKRARequest) (*db_models.KRAAssignment, error)
	UpdateStatus(ctx context.Context, userID, assignmentID uuid.UUID, status db_models.KRAAssignmentStatus) (*db_models.KRAAssignment, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.KRAAssignment, error)
}

type KRAService struct {
	kraRepo     repositories.KRARepositoryInterface
	accountRepo repositories.AccountRepositoryInterface
	notifier    NotifierInterface
}

func NewKRAService(
	kraRepo repositories.KRARepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	notifier NotifierInterface,
) KRAServiceInterface {
	return &KRAService{
		kraRepo:     kraRepo,
		accountRepo: accountRepo,
		notifier:    notifier,
	}
}

func itemList(items []request_models.KRAItemInput) db_models.KRAItemList {
	out := make(db_models.KRAItemList, 0, len(items))
	for _, item := range items {
		out = append(out, db_models.KRAItem{Title: item.Title, Weight: item.Weight})
	}
	return out
}

func (s *KRAService) CreateTemplate(ctx context.Context, orgID, createdBy uuid.UUID, req request_models.CreateKRATemplateRequest) (*db_models.KRATemplate, error) {
	template := &db_models.KRATemplate{
		OrgID:       orgID,
		Title:       req.Title,
		Description: req.Description,
		Items:       itemList(req.Items),
		CreatedBy:   createdBy,
	}
	if err := s.kraRepo.CreateTemplate(ctx, template); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return template, nil
}

func (s *KRAService) UpdateTemplate(ctx context.Context, orgID, templateID uuid.UUID, req request_models.UpdateKRATemplateRequest) (*db_models.KRATemplate, error) {
	template, err := s.kraRepo.FindTemplateByID(ctx, templateID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if template == nil || template.OrgID != orgID {
		return nil, utils.ErrNotFound
	}

	if req.Title != nil {
		template.Title = *req.Title
	}
	if req.Description != nil {
		template.Description = *req.Description
	}
	if req.Items != nil {
		template.Items = itemList(req.Items)
	}

	if err := s.kraRepo.UpdateTemplate(ctx, template); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return template, nil
}

func (s *KRAService) DeleteTemplate(ctx context.Context, orgID, templateID uuid.UUID) error {
	template, err := s.kraRepo.FindTemplateByID(ctx, templateID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if template == nil || template.OrgID != orgID {
		return utils.ErrNotFound
	}
	if err := s.kraRepo.DeleteTemplate(ctx, templateID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *KRAService) ListTemplates(ctx context.Context, orgID uuid.UUID) ([]db_models.KRATemplate, error) {
	return s.kraRepo.ListTemplates(ctx, orgID)
}

func (s *KRAService) Assign(ctx context.Context, orgID, assignedBy, templateID uuid.UUID, req request_models.AssignKRARequest) (*db_models.KRAAssignment, error) {
	template, err := s.kraRepo.FindTemplateByID(ctx, templateID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if template == nil || template.OrgID != orgID {
		return nil, utils.ErrNotFound
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, utils.ErrValidation
	}
	assignee, err := s.accountRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if assignee == nil || assignee.OrgID != orgID {
		return nil, utils.ErrAccountNotFound
	}

	assignment := &db_models.KRAAssignment{
		TemplateID: templateID,
		UserID:     userID,
		AssignedBy: assignedBy,
		Status:     db_models.KRAStatusAssigned,
	}
	if req.DueDate != "" {
		due, err := utils.ParseWeekOf(req.DueDate)
		if err != nil {
			return nil, err
		}
		assignment.DueDate = &due
	}

	if err := s.kraRepo.CreateAssignment(ctx, assignment); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.notifier.KRAAssigned(template, assignee)

	return assignment, nil
}

func (s *KRAService) UpdateStatus(ctx context.Context, userID, assignmentID uuid.UUID, status db_models.KRAAssignmentStatus) (*db_models.KRAAssignment, error) {
	assignment, err := s.kraRepo.FindAssignmentByID(ctx, assignmentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if assignment == nil {
		return nil, utils.ErrNotFound
	}
	if assignment.UserID != userID {
		return nil, utils.ErrForbidden
	}

	assignment.Status = status
	if err := s.kraRepo.UpdateAssignment(ctx, assignment); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return assignment, nil
}

func (s *KRAService) ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.KRAAssignment, error) {
	return s.kraRepo.ListAssignmentsForUser(ctx, userID)
}
