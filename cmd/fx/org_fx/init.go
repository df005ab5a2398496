package org_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"whirkplace/internal/api/controllers"
	"whirkplace/internal/repositories"
	"whirkplace/internal/services"
)

var Module = fx.Provide(
	provideOrgRepo, provideOrgService, provideOrgController,
)

func provideOrgRepo(db *gorm.DB) repositories.OrgRepositoryInterface {
	return repositories.NewOrgRepository(db)
}

func provideOrgService(
	db *gorm.DB,
	orgRepo repositories.OrgRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	dashRepo repositories.DashboardRepository,
) services.OrgServiceInterface {
	return services.NewOrgService(db, orgRepo, accountRepo, dashRepo)
}

func provideOrgController(orgService services.OrgServiceInterface) *controllers.OrgController {
	return controllers.NewOrgController(orgService)
}
