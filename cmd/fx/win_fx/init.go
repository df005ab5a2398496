package win_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"whirkplace/internal/api/controllers"
	"whirkplace/internal/repositories"
	"whirkplace/internal/services"
)

var Module = fx.Provide(
	provideWinRepo, provideWinService, provideWinController,
)

func provideWinRepo(db *gorm.DB) repositories.WinRepositoryInterface {
	return repositories.NewWinRepository(db)
}

func provideWinService(
	winRepo repositories.WinRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	notifier services.NotifierInterface,
) services.WinServiceInterface {
	return services.NewWinService(winRepo, accountRepo, notifier)
}

func provideWinController(winService services.WinServiceInterface) *controllers.WinController {
	return controllers.NewWinController(winService)
}
