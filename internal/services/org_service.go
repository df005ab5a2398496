package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"whirkplace/internal/infra"
	"whirkplace/internal/models/db_models"
	"whirkplace/internal/models/request_models"
	"whirkplace/internal/models/response_models"
	"whirkplace/internal/repositories"
	"whirkplace/pkg/utils"
)

type OrgServiceInterface interface {
	CreateOrganization(ctx context.Context, req request_models.CreateOrganizationRequest) (*db_models.Organization, error)
	ListOrganizations(ctx context.Context) ([]response_models.OrgStatsResponse, error)
	Suspend(ctx context.Context, orgID uuid.UUID) error
	Activate(ctx context.Context, orgID uuid.UUID) error
}

type OrgService struct {
	db          *gorm.DB
	orgRepo     repositories.OrgRepositoryInterface
	accountRepo repositories.AccountRepositoryInterface
	dashRepo    repositories.DashboardRepository
}

func NewOrgService(
	db *gorm.DB,
	orgRepo repositories.OrgRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	dashRepo repositories.DashboardRepository,
) OrgServiceInterface {
	return &OrgService{
		db:          db,
		orgRepo:     orgRepo,
		accountRepo: accountRepo,
		dashRepo:    dashRepo,
	}
}

// CreateOrganization provisions a tenant and its first admin account in one
// transaction, so a half-created org never exists.
func (s *OrgService) CreateOrganization(ctx context.Context, req request_models.CreateOrganizationRequest) (*db_models.Organization, error) {
	existing, err := s.orgRepo.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}
	existingAccount, err := s.accountRepo.FindByEmail(ctx, req.AdminEmail)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.AdminPass)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	org := &db_models.Organization{
		Name:   req.Name,
		Slug:   req.Slug,
		Status: db_models.OrgStatusActive,
	}

	tx := infra.StartTransaction(s.db.WithContext(ctx))
	if tx.Error != nil {
		return nil, utils.ErrDatabaseError
	}

	err = s.orgRepo.CreateTx(tx, org)
	if err == nil {
		admin := &db_models.Account{
			OrgID:        org.ID,
			Name:         req.AdminName,
			Email:        req.AdminEmail,
			PasswordHash: hashedPassword,
			Role:         db_models.RoleAdmin,
		}
		err = s.accountRepo.CreateTx(tx, admin)
	}
	infra.ReleaseTransaction(tx, err)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return org, nil
}

func (s *OrgService) ListOrganizations(ctx context.Context) ([]response_models.OrgStatsResponse, error) {
	orgs, err := s.orgRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.OrgStatsResponse, 0, len(orgs))
	for _, org := range orgs {
		members, err := s.dashRepo.CountMembers(ctx, org.ID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		checkins, err := s.orgRepo.CountCheckins(ctx, org.ID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		pending, err := s.dashRepo.CountPendingReviews(ctx, org.ID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		out = append(out, response_models.OrgStatsResponse{
			ID:           org.ID.String(),
			Name:         org.Name,
			Slug:         org.Slug,
			Status:       string(org.Status),
			MemberCount:  members,
			CheckinCount: checkins,
			PendingCount: pending,
		})
	}
	return out, nil
}

func (s *OrgService) setStatus(ctx context.Context, orgID uuid.UUID, status db_models.OrgStatus) error {
	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if org == nil {
		return utils.ErrNotFound
	}
	org.Status = status
	if err := s.orgRepo.Update(ctx, org); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *OrgService) Suspend(ctx context.Context, orgID uuid.UUID) error {
	return s.setStatus(ctx, orgID, db_models.OrgStatusSuspended)
}

func (s *OrgService) Activate(ctx context.Context, orgID uuid.UUID) error {
	return s.setStatus(ctx, orgID, db_models.OrgStatusActive)
}
