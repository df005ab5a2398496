package checkin_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"whirkplace/internal/api/controllers"
	"whirkplace/internal/repositories"
	"whirkplace/internal/services"
)

var Module = fx.Provide(
	provideCheckinRepo, provideCheckinService, provideCheckinController,
)

func provideCheckinRepo(db *gorm.DB) repositories.CheckinRepositoryInterface {
	return repositories.NewCheckinRepository(db)
}

func provideCheckinService(
	checkinRepo repositories.CheckinRepositoryInterface,
	questionRepo repositories.QuestionRepositoryInterface,
	vacationRepo repositories.VacationRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	notifier services.NotifierInterface,
) services.CheckinServiceInterface {
	return services.NewCheckinService(checkinRepo, questionRepo, vacationRepo, accountRepo, notifier)
}

func provideCheckinController(checkinService services.CheckinServiceInterface) *controllers.CheckinController {
	return controllers.NewCheckinController(checkinService)
}
