package db_models

// Event is the expo itself. The client assumes at most one active event and
// creates it lazily on first registration.
type Event struct {
	BaseModel
	Name string `gorm:"not null" json:"name"`

	Attendees []Attendee `gorm:"foreignKey:EventID" json:"-"`
	Stations  []Station  `gorm:"foreignKey:EventID" json:"-"`
}

// DefaultEventName is used when registration finds no event row.
const DefaultEventName = "Queens NY Expo 2026"
