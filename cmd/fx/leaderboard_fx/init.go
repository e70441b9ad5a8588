package leaderboard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"expoquest/internal/repositories"
	"expoquest/internal/services"
)

var Module = fx.Provide(provideLeaderboardRepo, provideLeaderboardService)

func provideLeaderboardRepo(db *gorm.DB) repositories.LeaderboardRepository {
	return repositories.NewLeaderboardRepository(db)
}

func provideLeaderboardService(leaderboardRepo repositories.LeaderboardRepository) services.LeaderboardServiceInterface {
	return services.NewLeaderboardService(leaderboardRepo)
}
