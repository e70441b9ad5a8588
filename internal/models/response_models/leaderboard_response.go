package response_models

type LeaderboardEntry struct {
	Rank         int    `json:"rank"`
	ID           string `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	TotalPoints  int    `json:"total_points"`
	VendorVisits int    `json:"vendor_visits"`
}
