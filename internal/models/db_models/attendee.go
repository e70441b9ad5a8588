package db_models

import "github.com/google/uuid"

type Attendee struct {
	BaseModel
	EventID   uuid.UUID `gorm:"type:uuid;index" json:"event_id"`
	FirstName string    `gorm:"not null" json:"first_name"`
	LastName  string    `gorm:"not null" json:"last_name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	ZipCode   string    `json:"zip_code"`

	AgeRange           string   `json:"age_range"`
	AttendeeType       []string `gorm:"serializer:json" json:"attendee_type"`
	Organization       string   `json:"organization"`
	Interests          []string `gorm:"serializer:json" json:"interests"`
	TechAccess         string   `json:"tech_access"`
	DigitalSkillLevel  string   `json:"digital_skill_level"`
	ReasonForAttending string   `json:"reason_for_attending"`

	OptInCommunications  bool `json:"opt_in_communications"`
	AgreedToMediaRelease bool `json:"agreed_to_media_release"`

	// Pre-event self-assessment, captured at registration (1-5).
	ConfidenceTechAccessPre *int `json:"confidence_tech_access_pre"`
	ClarityTechPathwaysPre  *int `json:"clarity_tech_pathways_pre"`

	// Post-event reflection survey.
	ConfidenceTechAccessPost *int   `json:"confidence_tech_access_post"`
	ClarityTechPathwaysPost  *int   `json:"clarity_tech_pathways_post"`
	ValuableActivity         string `json:"valuable_activity"`
	FutureAction             string `json:"future_action"`

	// TotalPoints is the single running total. Every awarding path goes
	// through the points repository so it always equals the points_log sum.
	TotalPoints    int    `gorm:"not null;default:0" json:"total_points"`
	AttendeeCode   string `gorm:"index" json:"attendee_code"`
	AttendeeNumber string `json:"attendee_number"`
	WristbandID    string `json:"wristband_id"`

	Scans       []Scan            `gorm:"foreignKey:AttendeeID" json:"-"`
	Submissions []QuestSubmission `gorm:"foreignKey:AttendeeID" json:"-"`
}
