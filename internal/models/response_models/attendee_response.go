package response_models

type AttendeeResponse struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	AttendeeCode   string `json:"attendee_code"`
	AttendeeNumber string `json:"attendee_number"`
	TotalPoints    int    `json:"total_points"`
	EventID        string `json:"event_id"`
}
