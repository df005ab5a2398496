package notification_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"whirkplace/internal/api/controllers"
	"whirkplace/internal/repositories"
	"whirkplace/internal/services"
)

var Module = fx.Provide(
	provideNotificationRepo, provideNotificationService, provideNotifier, provideNotificationController,
)

func provideNotificationRepo(db *gorm.DB) repositories.NotificationRepositoryInterface {
	return repositories.NewNotificationRepository(db)
}

func provideNotificationService(
	notificationRepo repositories.NotificationRepositoryInterface,
	mailService services.IMailService,
) services.NotificationServiceInterface {
	return services.NewNotificationService(notificationRepo, mailService)
}

func provideNotifier(notificationService services.NotificationServiceInterface) services.NotifierInterface {
	return notificationService
}

func provideNotificationController(notificationService services.NotificationServiceInterface) *controllers.NotificationController {
	return controllers.NewNotificationController(notificationService)
}
