package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"expoquest/internal/models/db_models"
)

type EventRepository interface {
	FindFirst(ctx context.Context) (*db_models.Event, error)
	Create(ctx context.Context, event *db_models.Event) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) FindFirst(ctx context.Context) (*db_models.Event, error) {
	var event db_models.Event
	err := r.db.WithContext(ctx).Order("created_at").First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Create(ctx context.Context, event *db_models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}
