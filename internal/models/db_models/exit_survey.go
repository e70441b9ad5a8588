package db_models

import "github.com/google/uuid"

// ExitSurvey captures the exit-booth questionnaire, one row per attendee.
type ExitSurvey struct {
	BaseModel
	AttendeeID   uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"attendee_id"`
	NPS          int       `gorm:"not null" json:"nps"`
	Preparedness int       `gorm:"not null" json:"preparedness"`
	MostValuable string    `json:"most_valuable"`
	NextStep     string    `json:"next_step"`

	Attendee Attendee `gorm:"foreignKey:AttendeeID" json:"-"`
}
