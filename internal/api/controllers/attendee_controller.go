package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"expoquest/internal/models/request_models"
	"expoquest/internal/services"
	"expoquest/pkg/utils"
)

type AttendeeController struct {
	attendeeService services.AttendeeServiceInterface
}

func NewAttendeeController(attendeeService services.AttendeeServiceInterface) *AttendeeController {
	return &AttendeeController{
		attendeeService: attendeeService,
	}
}

// Register godoc
// @Summary Register a new attendee
// @Description Create an attendee record and start a session
// @Tags Attendees
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /attendees/register [post]
func (a *AttendeeController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	attendee, err := a.attendeeService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attendee, "Registration complete")
}

// Login godoc
// @Summary Look up an attendee by email
// @Description Resume a session for a returning attendee
// @Tags Attendees
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /attendees/login [post]
func (a *AttendeeController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	attendee, err := a.attendeeService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attendee, "Welcome back")
}

// Me godoc
// @Summary Current attendee profile
// @Tags Attendees
// @Produce json
// @Param X-Attendee-ID header string true "Attendee session id"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /me [get]
func (a *AttendeeController) Me(c *gin.Context) {
	attendeeID := sessionAttendeeID(c)

	attendee, err := a.attendeeService.Resolve(c.Request.Context(), attendeeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attendee, "")
}

// sessionAttendeeID reads the attendee id the session middleware stored on
// the context. Routes using it must sit behind that middleware.
func sessionAttendeeID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get("attendee_id"); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
