package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"expoquest/internal/models/db_models"
)

type ScanRepository interface {
	ListByAttendee(ctx context.Context, attendeeID uuid.UUID) ([]db_models.Scan, error)
	CountVendorVisits(ctx context.Context, attendeeID uuid.UUID) (int64, error)
	Count(ctx context.Context) (int64, error)
	Has(ctx context.Context, attendeeID, stationID uuid.UUID) (bool, error)
}

type scanRepository struct {
	db *gorm.DB
}

func NewScanRepository(db *gorm.DB) ScanRepository {
	return &scanRepository{db: db}
}

func (r *scanRepository) ListByAttendee(ctx context.Context, attendeeID uuid.UUID) ([]db_models.Scan, error) {
	var scans []db_models.Scan
	err := r.db.WithContext(ctx).
		Preload("Station").
		Preload("Station.Vendor").
		Where("attendee_id = ?", attendeeID).
		Order("created_at").
		Find(&scans).Error
	if err != nil {
		return nil, err
	}
	return scans, nil
}

func (r *scanRepository) CountVendorVisits(ctx context.Context, attendeeID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("scans s").
		Joins("JOIN stations st ON st.id = s.station_id").
		Where("s.attendee_id = ?", attendeeID).
		Where("st.type = ?", db_models.StationTypeVendor).
		Where("s.deleted_at IS NULL").
		Count(&n).Error
	return n, err
}

func (r *scanRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Scan{}).Count(&n).Error
	return n, err
}

func (r *scanRepository) Has(ctx context.Context, attendeeID, stationID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Scan{}).
		Where("attendee_id = ? AND station_id = ?", attendeeID, stationID).
		Count(&n).Error
	return n > 0, err
}
