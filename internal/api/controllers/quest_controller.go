package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expoquest/internal/models/request_models"
	"expoquest/internal/services"
	"expoquest/pkg/utils"
)

type QuestController struct {
	questService services.QuestServiceInterface
}

func NewQuestController(questService services.QuestServiceInterface) *QuestController {
	return &QuestController{
		questService: questService,
	}
}

// List godoc
// @Summary Quest list with completion state
// @Tags Quests
// @Produce json
// @Param X-Attendee-ID header string true "Attendee session id"
// @Success 200 {object} utils.APIResponse
// @Router /quests [get]
func (q *QuestController) List(c *gin.Context) {
	quests, err := q.questService.ListForAttendee(c.Request.Context(), sessionAttendeeID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, quests, "")
}

// Submit godoc
// @Summary Submit quest answers
// @Description Validate answers against the quest rule and award points once
// @Tags Quests
// @Accept json
// @Produce json
// @Param X-Attendee-ID header string true "Attendee session id"
// @Param id path string true "Quest id"
// @Param request body request_models.QuestSubmitRequest true "Answers"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /quests/{id}/submit [post]
func (q *QuestController) Submit(c *gin.Context) {
	var req request_models.QuestSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := q.questService.Complete(c.Request.Context(), sessionAttendeeID(c), c.Param("id"), req.Answers)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Quest completed!")
}
