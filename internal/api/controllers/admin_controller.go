package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"expoquest/internal/models/request_models"
	"expoquest/internal/services"
	"expoquest/pkg/utils"
)

type AdminController struct {
	adminService services.AdminServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

func (a *AdminController) ListStations(c *gin.Context) {
	stations, err := a.adminService.ListStations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stations, "")
}

func (a *AdminController) CreateStation(c *gin.Context) {
	var req request_models.CreateStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	station, err := a.adminService.CreateStation(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, station, "Station created")
}

func (a *AdminController) UpdateStation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid station id")
		return
	}

	var req request_models.UpdateStationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	station, err := a.adminService.UpdateStation(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, station, "Station updated")
}

func (a *AdminController) DeleteStation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid station id")
		return
	}

	if err := a.adminService.DeleteStation(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Station deleted")
}

// StationQR godoc
// @Summary Printable station QR code
// @Description PNG encoding of the station scan payload
// @Tags Admin
// @Produce png
// @Param id path string true "Station id"
// @Success 200 {file} byte
// @Failure 404 {object} utils.APIResponse
// @Router /admin/stations/{id}/qr [get]
func (a *AdminController) StationQR(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid station id")
		return
	}

	png, err := a.adminService.StationQR(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (a *AdminController) ListVendors(c *gin.Context) {
	vendors, err := a.adminService.ListVendors(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, vendors, "")
}

func (a *AdminController) CreateVendor(c *gin.Context) {
	var req request_models.VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	vendor, err := a.adminService.CreateVendor(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, vendor, "Vendor created")
}

func (a *AdminController) UpdateVendor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid vendor id")
		return
	}

	var req request_models.VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	vendor, err := a.adminService.UpdateVendor(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, vendor, "Vendor updated")
}

func (a *AdminController) DeleteVendor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid vendor id")
		return
	}

	if err := a.adminService.DeleteVendor(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Vendor deleted")
}

func (a *AdminController) ListAttendees(c *gin.Context) {
	attendees, err := a.adminService.ListAttendees(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, attendees, "")
}

func (a *AdminController) ListExitSurveys(c *gin.Context) {
	surveys, err := a.adminService.ListExitSurveys(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, surveys, "")
}

// Analytics godoc
// @Summary Event analytics report
// @Description Aggregate counts, demographic breakdowns and pre/post score movement
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /admin/analytics [get]
func (a *AdminController) Analytics(c *gin.Context) {
	report, err := a.adminService.BuildAnalytics(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, report, "")
}
