package insight_fx

import (
	"os"

	"go.uber.org/fx"
	"whirkplace/internal/api/controllers"
	"whirkplace/internal/repositories"
	"whirkplace/internal/services"
	"whirkplace/pkg/utils"
)

var Module = fx.Provide(
	provideChatClient, provideInsightService, provideInsightController,
)

// provideChatClient returns nil when no API key is configured; the
// insight service treats a nil client as the feature being disabled.
func provideChatClient() utils.ChatClientInterface {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil
	}
	return utils.NewOpenAIChatClient(apiKey)
}

func provideInsightService(
	accountRepo repositories.AccountRepositoryInterface,
	checkinRepo repositories.CheckinRepositoryInterface,
	chatClient utils.ChatClientInterface,
) services.InsightServiceInterface {
	return services.NewInsightService(accountRepo, checkinRepo, chatClient)
}

func provideInsightController(insightService services.InsightServiceInterface) *controllers.InsightController {
	return controllers.NewInsightController(insightService)
}
