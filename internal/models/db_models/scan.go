package db_models

import "github.com/google/uuid"

// Scan records one attendee visiting one station. The composite unique index
// is what makes a second visit a structured failure instead of a double
// credit.
type Scan struct {
	BaseModel
	AttendeeID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_scan_attendee_station" json:"attendee_id"`
	StationID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_scan_attendee_station" json:"station_id"`

	Attendee Attendee `gorm:"foreignKey:AttendeeID" json:"-"`
	Station  Station  `gorm:"foreignKey:StationID" json:"-"`
}
