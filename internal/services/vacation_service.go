package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"whirkplace/internal/models/db_models"
	"whirkplace/internal/models/request_models"
	"whirkplace/internal/repositories"
	"whirkplace/pkg/utils"
)

type VacationServiceInterface interface {
	CreateVacation(ctx context.Context, userID uuid.UUID, req request_models.CreateVacationRequest) (*db_models.Vacation, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.Vacation, error)
	DeleteVacation(ctx context.Context, id, userID uuid.UUID) error
	IsOnVacation(ctx context.Context, userID uuid.UUID, date time.Time) (bool, error)
}

type VacationService struct {
	vacationRepo repositories.VacationRepositoryInterface
}

func NewVacationService(vacationRepo repositories.VacationRepositoryInterface) VacationServiceInterface {
	return &VacationService{vacationRepo: vacationRepo}
}

func (s *VacationService) CreateVacation(ctx context.Context, userID uuid.UUID, req request_models.CreateVacationRequest) (*db_models.Vacation, error) {
	start, err := utils.ParseWeekOf(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := utils.ParseWeekOf(req.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end_date must not be before start_date", utils.ErrValidation)
	}

	vacation := &db_models.Vacation{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
		Note:      req.Note,
	}
	if err := s.vacationRepo.Create(ctx, vacation); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return vacation, nil
}

func (s *VacationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.Vacation, error) {
	return s.vacationRepo.ListByUser(ctx, userID)
}

func (s *VacationService) DeleteVacation(ctx context.Context, id, userID uuid.UUID) error {
	ok, err := s.vacationRepo.Delete(ctx, id, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !ok {
		return utils.ErrNotFound
	}
	return nil
}

func (s *VacationService) IsOnVacation(ctx context.Context, userID uuid.UUID, date time.Time) (bool, error) {
	return s.vacationRepo.HasVacationOn(ctx, userID, utils.DateOnly(date))
}
