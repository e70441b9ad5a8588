package db_models

import "github.com/google/uuid"

// PointsLog is the append-only audit trail behind Attendee.TotalPoints.
// Rows are written in the same transaction as the total increment.
type PointsLog struct {
	BaseModel
	AttendeeID uuid.UUID `gorm:"type:uuid;index" json:"attendee_id"`
	Amount     int       `gorm:"not null" json:"amount"`
	Reason     string    `gorm:"not null" json:"reason"`

	Attendee Attendee `gorm:"foreignKey:AttendeeID" json:"-"`
}
