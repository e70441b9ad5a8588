package request_models

type LoginRequest struct {
	Email string `json:"email" binding:"required"`
}
