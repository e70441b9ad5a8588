package db_models

import "github.com/google/uuid"

// QuestSubmission is one attendee's accepted answer for a catalog quest.
// QuestID is a string constant from the in-code catalog, not a foreign key.
type QuestSubmission struct {
	BaseModel
	AttendeeID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_submission_attendee_quest" json:"attendee_id"`
	QuestID      string    `gorm:"uniqueIndex:idx_submission_attendee_quest;not null" json:"quest_id"`
	Answer       string    `json:"answer"`
	PointsEarned int       `gorm:"not null" json:"points_earned"`

	Attendee Attendee `gorm:"foreignKey:AttendeeID" json:"-"`
}
