package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"expoquest/internal/models/db_models"
)

type VendorRepository interface {
	Create(ctx context.Context, vendor *db_models.Vendor) (uuid.UUID, error)
	Update(ctx context.Context, vendor *db_models.Vendor) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Vendor, error)
	GetByStationID(ctx context.Context, stationID uuid.UUID) (*db_models.Vendor, error)
	List(ctx context.Context) ([]db_models.Vendor, error)
}

type vendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) Create(ctx context.Context, vendor *db_models.Vendor) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(vendor).Error; err != nil {
		return uuid.Nil, err
	}
	return vendor.ID, nil
}

func (r *vendorRepository) Update(ctx context.Context, vendor *db_models.Vendor) error {
	result := r.db.WithContext(ctx).Save(vendor)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *vendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Vendor{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *vendorRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Vendor, error) {
	var vendor db_models.Vendor
	err := r.db.WithContext(ctx).First(&vendor, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) GetByStationID(ctx context.Context, stationID uuid.UUID) (*db_models.Vendor, error) {
	var vendor db_models.Vendor
	err := r.db.WithContext(ctx).First(&vendor, "station_id = ?", stationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) List(ctx context.Context) ([]db_models.Vendor, error) {
	var vendors []db_models.Vendor
	err := r.db.WithContext(ctx).Order("created_at").Find(&vendors).Error
	if err != nil {
		return nil, err
	}
	return vendors, nil
}
