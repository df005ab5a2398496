package kra_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"whirkplace/internal/api/controllers"
	"whirkplace/internal/repositories"
	"whirkplace/internal/services"
)

var Module = fx.Provide(
	provideKRARepo, provideKRAService, provideKRAController,
)

func provideKRARepo(db *gorm.DB) repositories.KRARepositoryInterface {
	return repositories.NewKRARepository(db)
}

func provideKRAService(
	kraRepo repositories.KRARepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	notifier services.NotifierInterface,
) services.KRAServiceInterface {
	return services.NewKRAService(kraRepo, accountRepo, notifier)
}

func provideKRAController(kraService services.KRAServiceInterface) *controllers.KRAController {
	return controllers.NewKRAController(kraService)
}
