package response_models

// ScanResult mirrors the record_scan contract: Success with points and the
// new running total, or a human-readable failure message.
type ScanResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	PointsEarned int    `json:"points_earned,omitempty"`
	NewTotal     int    `json:"new_total,omitempty"`
}

// StationReview is returned for vendor stations before crediting; the client
// shows it as the data-sharing consent gate.
type StationReview struct {
	ReviewRequired bool        `json:"review_required"`
	StationID      string      `json:"station_id"`
	StationName    string      `json:"station_name"`
	PointsBase     int         `json:"points_base"`
	Vendor         *VendorCard `json:"vendor,omitempty"`
}

type VendorCard struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	IndustryCategory string `json:"industry_category,omitempty"`
	PrimaryContact   string `json:"primary_contact,omitempty"`
	Email            string `json:"email,omitempty"`
	SolutionOverview string `json:"solution_overview,omitempty"`
	ValueProposition string `json:"value_proposition,omitempty"`
	ScannedAt        int64  `json:"scanned_at,omitempty"`
}
