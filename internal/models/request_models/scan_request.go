package request_models

// ScanRequest carries the decoded QR payload. Confirmed is the data-sharing
// consent flag: vendor stations are only credited once the attendee has seen
// the review card and re-submitted with Confirmed set.
type ScanRequest struct {
	Payload   string `json:"payload" binding:"required"`
	Confirmed bool   `json:"confirmed"`
}
