package request_models

type CreateStationRequest struct {
	Name       string `json:"name" binding:"required"`
	Type       string `json:"type"`
	PointsBase int    `json:"points_base"`
}

type UpdateStationRequest struct {
	Name       *string `json:"name"`
	Type       *string `json:"type"`
	PointsBase *int    `json:"points_base"`
}

type VendorRequest struct {
	StationID        string `json:"station_id" binding:"required,uuid"`
	Name             string `json:"name" binding:"required"`
	PrimaryContact   string `json:"primary_contact"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	IndustryCategory string `json:"industry_category"`
	Description      string `json:"description"`
	SolutionOverview string `json:"solution_overview"`
	ValueProposition string `json:"value_proposition"`
}
