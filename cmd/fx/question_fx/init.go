package question_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"whirkplace/internal/api/controllers"
	"whirkplace/internal/repositories"
	"whirkplace/internal/services"
)

var Module = fx.Provide(
	provideQuestionRepo, provideQuestionService, provideQuestionController,
)

func provideQuestionRepo(db *gorm.DB) repositories.QuestionRepositoryInterface {
	return repositories.NewQuestionRepository(db)
}

func provideQuestionService(questionRepo repositories.QuestionRepositoryInterface) services.QuestionServiceInterface {
	return services.NewQuestionService(questionRepo)
}

func provideQuestionController(questionService services.QuestionServiceInterface) *controllers.QuestionController {
	return controllers.NewQuestionController(questionService)
}
