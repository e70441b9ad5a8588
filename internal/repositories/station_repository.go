package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"expoquest/internal/models/db_models"
)

type StationRepository interface {
	Create(ctx context.Context, station *db_models.Station) (uuid.UUID, error)
	Update(ctx context.Context, station *db_models.Station) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Station, error)
	GetByIDWithVendor(ctx context.Context, id uuid.UUID) (*db_models.Station, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.Station, error)
	Count(ctx context.Context) (int64, error)
}

type stationRepository struct {
	db *gorm.DB
}

func NewStationRepository(db *gorm.DB) StationRepository {
	return &stationRepository{db: db}
}

func (r *stationRepository) Create(ctx context.Context, station *db_models.Station) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(station).Error; err != nil {
		return uuid.Nil, err
	}
	return station.ID, nil
}

func (r *stationRepository) Update(ctx context.Context, station *db_models.Station) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(station)
		if result.Error != nil {
			return fmt.Errorf("failed to update station: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *stationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Station{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *stationRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Station, error) {
	var station db_models.Station
	err := r.db.WithContext(ctx).First(&station, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &station, nil
}

func (r *stationRepository) GetByIDWithVendor(ctx context.Context, id uuid.UUID) (*db_models.Station, error) {
	var station db_models.Station
	err := r.db.WithContext(ctx).
		Preload("Vendor").
		First(&station, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &station, nil
}

func (r *stationRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.Station, error) {
	var stations []db_models.Station
	err := r.db.WithContext(ctx).
		Preload("Vendor").
		Where("event_id = ?", eventID).
		Order("created_at").
		Find(&stations).Error
	if err != nil {
		return nil, err
	}
	return stations, nil
}

func (r *stationRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Station{}).Count(&n).Error
	return n, err
}
