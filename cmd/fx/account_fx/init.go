package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"whirkplace/internal/api/controllers"
	"whirkplace/internal/repositories"
	"whirkplace/internal/services"
	mem "whirkplace/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService, provideAuthController,
)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepositoryInterface {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	orgRepo repositories.OrgRepositoryInterface,
	resetTokens mem.ResetTokenStore,
	mailService services.IMailService,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, orgRepo, resetTokens, mailService)
}

func provideAuthController(accountService services.AccountServiceInterface) *controllers.AuthController {
	return controllers.NewAuthController(accountService)
}
