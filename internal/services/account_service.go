package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"whirkplace/internal/models/db_models"
	"whirkplace/internal/models/request_models"
	"whirkplace/internal/models/response_models"
	"whirkplace/internal/repositories"
	mem "whirkplace/pkg/memcache"
	"whirkplace/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.AccountResponse, error)
	ListReports(ctx context.Context, managerID uuid.UUID) ([]response_models.AccountResponse, error)
	SetManager(ctx context.Context, adminID uuid.UUID, request request_models.SetManagerRequest) error
	SetRole(ctx context.Context, adminID uuid.UUID, request request_models.SetRoleRequest) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, request request_models.ForgotPasswordRequest) error
}

type AccountService struct {
	accountRepo repositories.AccountRepositoryInterface
	orgRepo     repositories.OrgRepositoryInterface
	resetTokens mem.ResetTokenStore
	mailService IMailService
}

func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	orgRepo repositories.OrgRepositoryInterface,
	resetTokens mem.ResetTokenStore,
	mailService IMailService,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		orgRepo:     orgRepo,
		resetTokens: resetTokens,
		mailService: mailService,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	// A suspended tenant locks out everyone except the platform operator.
	if account.Role != db_models.RoleSuperAdmin {
		org, err := a.orgRepo.FindByID(ctx, account.OrgID)
		if err != nil {
			return "", utils.ErrDatabaseError
		}
		if org == nil || org.Status == db_models.OrgStatusSuspended {
			return "", utils.ErrOrgSuspended
		}
	}

	token, err := utils.CreateToken(account.ID, account.OrgID, account.Role)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	org, err := a.orgRepo.FindBySlug(ctx, request.OrgSlug)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if org == nil {
		return utils.ErrNotFound
	}
	if org.Status == db_models.OrgStatusSuspended {
		return utils.ErrOrgSuspended
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		OrgID:        org.ID,
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleMember,
	}

	if err := a.accountRepo.Create(ctx, newAccount); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func accountResponse(account *db_models.Account) response_models.AccountResponse {
	resp := response_models.AccountResponse{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role,
		OrgID: account.OrgID.String(),
	}
	if account.ManagerID != nil {
		managerID := account.ManagerID.String()
		resp.ManagerID = &managerID
	}
	return resp
}

func (a *AccountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	resp := accountResponse(account)
	return &resp, nil
}

func (a *AccountService) ListReports(ctx context.Context, managerID uuid.UUID) ([]response_models.AccountResponse, error) {
	reports, err := a.accountRepo.ListByManager(ctx, managerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.AccountResponse, 0, len(reports))
	for i := range reports {
		out = append(out, accountResponse(&reports[i]))
	}
	return out, nil
}

func (a *AccountService) SetManager(ctx context.Context, adminID uuid.UUID, request request_models.SetManagerRequest) error {
	admin, err := a.accountRepo.FindByID(ctx, adminID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if admin == nil {
		return utils.ErrAccountNotFound
	}

	accountID, err := uuid.Parse(request.AccountID)
	if err != nil {
		return utils.ErrValidation
	}
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}
	if account.OrgID != admin.OrgID {
		return utils.ErrForbidden
	}

	if request.ManagerID == "" {
		account.ManagerID = nil
	} else {
		managerID, err := uuid.Parse(request.ManagerID)
		if err != nil {
			return utils.ErrValidation
		}
		manager, err := a.accountRepo.FindByID(ctx, managerID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if manager == nil || manager.OrgID != admin.OrgID {
			return utils.ErrAccountNotFound
		}
		account.ManagerID = &managerID
	}

	if err := a.accountRepo.Update(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) SetRole(ctx context.Context, adminID uuid.UUID, request request_models.SetRoleRequest) error {
	admin, err := a.accountRepo.FindByID(ctx, adminID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if admin == nil {
		return utils.ErrAccountNotFound
	}

	accountID, err := uuid.Parse(request.AccountID)
	if err != nil {
		return utils.ErrValidation
	}
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}
	if account.OrgID != admin.OrgID {
		return utils.ErrForbidden
	}

	account.Role = request.Role
	if err := a.accountRepo.Update(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) RequestPasswordReset(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	// Don't leak whether the email exists.
	if account == nil {
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}
	a.resetTokens.Set(token, account.Email, 30*time.Minute)

	if err := a.mailService.SendMailToResetPassword(account.Email, token); err != nil {
		log.Printf("password reset mail to %s failed: %v", account.Email, err)
	}
	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, request request_models.ForgotPasswordRequest) error {
	email := a.resetTokens.Consume(request.Token)
	if email == "" || email != request.Email {
		return utils.ErrInvalidCredentials
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	account.PasswordHash = hashedPassword

	if err := a.accountRepo.Update(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
