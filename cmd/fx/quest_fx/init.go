package quest_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"expoquest/internal/repositories"
	"expoquest/internal/services"
)

var Module = fx.Provide(provideQuestRepo, provideQuestService)

func provideQuestRepo(db *gorm.DB) repositories.QuestRepository {
	return repositories.NewQuestRepository(db)
}

func provideQuestService(questRepo repositories.QuestRepository, pointsRepo repositories.PointsRepository) services.QuestServiceInterface {
	return services.NewQuestService(questRepo, pointsRepo)
}
