package db_models

import "github.com/google/uuid"

type StationType string

const (
	StationTypeVendor   StationType = "vendor"
	StationTypeActivity StationType = "activity"
)

// Station is a physical QR-coded point in the venue. Vendor stations carry a
// joined Vendor record and require a consent confirmation before crediting.
type Station struct {
	BaseModel
	EventID    uuid.UUID   `gorm:"type:uuid;index" json:"event_id"`
	Name       string      `gorm:"not null" json:"name"`
	Type       StationType `gorm:"not null;default:activity" json:"type"`
	PointsBase int         `gorm:"not null;default:100" json:"points_base"`

	Vendor *Vendor `gorm:"foreignKey:StationID" json:"vendor,omitempty"`
	Scans  []Scan  `gorm:"foreignKey:StationID" json:"-"`
}
