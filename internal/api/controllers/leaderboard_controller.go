package controllers

import (
	"github.com/gin-gonic/gin"

	"expoquest/internal/services"
	"expoquest/pkg/utils"
)

type LeaderboardController struct {
	leaderboardService services.LeaderboardServiceInterface
}

func NewLeaderboardController(leaderboardService services.LeaderboardServiceInterface) *LeaderboardController {
	return &LeaderboardController{
		leaderboardService: leaderboardService,
	}
}

// Top godoc
// @Summary Event leaderboard
// @Description Top attendees by points with vendor visit counts
// @Tags Leaderboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /leaderboard [get]
func (l *LeaderboardController) Top(c *gin.Context) {
	entries, err := l.leaderboardService.Top(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "")
}
