package controllers

import (
	"github.com/gin-gonic/gin"

	"expoquest/internal/services"
	"expoquest/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// Dashboard godoc
// @Summary Attendee dashboard
// @Description Points, vendor visit progress and the visited vendor list
// @Tags Dashboard
// @Produce json
// @Param X-Attendee-ID header string true "Attendee session id"
// @Success 200 {object} utils.APIResponse
// @Router /me/dashboard [get]
func (d *DashboardController) Dashboard(c *gin.Context) {
	dashboard, err := d.dashboardService.BuildDashboard(c.Request.Context(), sessionAttendeeID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dashboard, "")
}

// Prizes godoc
// @Summary Prize qualification status
// @Tags Dashboard
// @Produce json
// @Param X-Attendee-ID header string true "Attendee session id"
// @Success 200 {object} utils.APIResponse
// @Router /me/prizes [get]
func (d *DashboardController) Prizes(c *gin.Context) {
	prizes, err := d.dashboardService.PrizeStatus(c.Request.Context(), sessionAttendeeID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, prizes, "")
}
