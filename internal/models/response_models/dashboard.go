package response_models

// QualificationThreshold is the number of distinct vendor-station visits that
// gates prize eligibility.
const QualificationThreshold = 5

type DashboardResponse struct {
	TotalPoints  int          `json:"total_points"`
	VendorVisits int          `json:"vendor_visits"`
	Qualified    bool         `json:"qualified"`
	Threshold    int          `json:"threshold"`
	Interests    []VendorCard `json:"interests"`
}

type PrizeResponse struct {
	TotalPoints int    `json:"total_points"`
	Tier        string `json:"tier"`
	Qualified   bool   `json:"qualified"`
}
