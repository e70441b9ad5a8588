package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service-layer errors onto HTTP responses. Domain
// failures get their own status and message; anything unrecognized is logged
// and answered generically.
func HandleServiceError(c *gin.Context, err error) {
	if ve, ok := AsValidationError(err); ok {
		RespondError(c, http.StatusBadRequest, ve.Message)
		return
	}

	switch {
	case errors.Is(err, ErrAttendeeNotFound):
		RespondError(c, http.StatusNotFound, "Attendee not found")
	case errors.Is(err, ErrEmailAlreadyRegistered):
		RespondError(c, http.StatusConflict, "An account with this email already exists")
	case errors.Is(err, ErrEventNotFound):
		RespondError(c, http.StatusNotFound, "Event not found")
	case errors.Is(err, ErrStationNotFound):
		RespondError(c, http.StatusNotFound, "Station not found")
	case errors.Is(err, ErrVendorNotFound):
		RespondError(c, http.StatusNotFound, "Vendor not found")
	case errors.Is(err, ErrQuestNotFound):
		RespondError(c, http.StatusNotFound, "Quest not found")
	case errors.Is(err, ErrAlreadyScanned):
		RespondError(c, http.StatusConflict, "You have already visited this station!")
	case errors.Is(err, ErrQuestAlreadyCompleted):
		RespondError(c, http.StatusConflict, "You have already completed this quest!")
	case errors.Is(err, ErrSurveyAlreadySubmitted):
		RespondError(c, http.StatusConflict, "You have already submitted this survey")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
