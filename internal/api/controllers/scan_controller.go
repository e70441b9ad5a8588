package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"expoquest/internal/models/request_models"
	"expoquest/internal/services"
	"expoquest/pkg/utils"
)

type ScanController struct {
	scanService services.ScanServiceInterface
}

func NewScanController(scanService services.ScanServiceInterface) *ScanController {
	return &ScanController{
		scanService: scanService,
	}
}

// Scan godoc
// @Summary Record a station scan
// @Description Resolve a QR payload and award points. Vendor stations answer
// @Description with a review card first; repeat with confirmed=true to check in.
// @Tags Scans
// @Accept json
// @Produce json
// @Param X-Attendee-ID header string true "Attendee session id"
// @Param request body request_models.ScanRequest true "Scan payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /scan [post]
func (s *ScanController) Scan(c *gin.Context) {
	var req request_models.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	outcome, err := s.scanService.Scan(c.Request.Context(), sessionAttendeeID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if outcome.Review != nil {
		utils.RespondSuccess(c, outcome.Review, "Review this vendor to check in")
		return
	}
	utils.RespondSuccess(c, outcome.Result, outcome.Result.Message)
}

// Review godoc
// @Summary Station review card
// @Tags Scans
// @Produce json
// @Param id path string true "Station id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /stations/{id}/review [get]
func (s *ScanController) Review(c *gin.Context) {
	stationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid station id")
		return
	}

	review, err := s.scanService.Review(c.Request.Context(), stationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, review, "")
}
