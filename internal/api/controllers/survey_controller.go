package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expoquest/internal/models/request_models"
	"expoquest/internal/services"
	"expoquest/pkg/utils"
)

type SurveyController struct {
	surveyService services.SurveyServiceInterface
}

func NewSurveyController(surveyService services.SurveyServiceInterface) *SurveyController {
	return &SurveyController{
		surveyService: surveyService,
	}
}

// Reflection godoc
// @Summary Submit the post-event reflection survey
// @Description One-time submission; awards a completion bonus
// @Tags Surveys
// @Accept json
// @Produce json
// @Param X-Attendee-ID header string true "Attendee session id"
// @Param request body request_models.ReflectionRequest true "Reflection answers"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /me/reflection [post]
func (s *SurveyController) Reflection(c *gin.Context) {
	var req request_models.ReflectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := s.surveyService.SubmitReflection(c.Request.Context(), sessionAttendeeID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, result.Message)
}

// ExitSurvey godoc
// @Summary Submit the exit survey
// @Tags Surveys
// @Accept json
// @Produce json
// @Param X-Attendee-ID header string true "Attendee session id"
// @Param request body request_models.ExitSurveyRequest true "Exit survey answers"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /me/exit-survey [post]
func (s *SurveyController) ExitSurvey(c *gin.Context) {
	var req request_models.ExitSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := s.surveyService.SubmitExitSurvey(c.Request.Context(), sessionAttendeeID(c), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Thanks for the feedback!")
}
