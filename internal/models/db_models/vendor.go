package db_models

import "github.com/google/uuid"

// Vendor enriches a vendor-type station with the marketing detail shown
// during scan review.
type Vendor struct {
	BaseModel
	StationID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"station_id"`
	Name      string    `gorm:"not null" json:"name"`

	PrimaryContact   string `json:"primary_contact"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	IndustryCategory string `json:"industry_category"`
	Description      string `json:"description"`
	SolutionOverview string `json:"solution_overview"`
	ValueProposition string `json:"value_proposition"`
}
