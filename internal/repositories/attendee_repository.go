package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"expoquest/internal/models/db_models"
)

type AttendeeRepository interface {
	Insert(ctx context.Context, attendee *db_models.Attendee) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Attendee, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Attendee, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	ListByPoints(ctx context.Context, limit int) ([]db_models.Attendee, error)
	ListAll(ctx context.Context) ([]db_models.Attendee, error)
	Count(ctx context.Context) (int64, error)
	UpdateReflection(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
}

type attendeeRepository struct {
	db *gorm.DB
}

func NewAttendeeRepository(db *gorm.DB) AttendeeRepository {
	return &attendeeRepository{db: db}
}

func (r *attendeeRepository) Insert(ctx context.Context, attendee *db_models.Attendee) error {
	return r.db.WithContext(ctx).Create(attendee).Error
}

func (r *attendeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Attendee, error) {
	var attendee db_models.Attendee
	err := r.db.WithContext(ctx).First(&attendee, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attendee, nil
}

func (r *attendeeRepository) FindByEmail(ctx context.Context, email string) (*db_models.Attendee, error) {
	var attendee db_models.Attendee
	err := r.db.WithContext(ctx).First(&attendee, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attendee, nil
}

func (r *attendeeRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Attendee{}).
		Where("id = ?", id).
		Count(&n).Error
	return n > 0, err
}

func (r *attendeeRepository) ListByPoints(ctx context.Context, limit int) ([]db_models.Attendee, error) {
	var attendees []db_models.Attendee
	err := r.db.WithContext(ctx).
		Order("total_points DESC").
		Limit(limit).
		Find(&attendees).Error
	if err != nil {
		return nil, err
	}
	return attendees, nil
}

func (r *attendeeRepository) ListAll(ctx context.Context) ([]db_models.Attendee, error) {
	var attendees []db_models.Attendee
	err := r.db.WithContext(ctx).Order("created_at").Find(&attendees).Error
	if err != nil {
		return nil, err
	}
	return attendees, nil
}

func (r *attendeeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Attendee{}).Count(&n).Error
	return n, err
}

func (r *attendeeRepository) UpdateReflection(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.Attendee{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
