package vacation_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"whirkplace/internal/api/controllers"
	"whirkplace/internal/repositories"
	"whirkplace/internal/services"
)

var Module = fx.Provide(
	provideVacationRepo, provideVacationService, provideVacationController,
)

func provideVacationRepo(db *gorm.DB) repositories.VacationRepositoryInterface {
	return repositories.NewVacationRepository(db)
}

func provideVacationService(vacationRepo repositories.VacationRepositoryInterface) services.VacationServiceInterface {
	return services.NewVacationService(vacationRepo)
}

func provideVacationController(vacationService services.VacationServiceInterface) *controllers.VacationController {
	return controllers.NewVacationController(vacationService)
}
