package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"expoquest/internal/models/db_models"
)

type QuestRepository interface {
	ListSubmissions(ctx context.Context, attendeeID uuid.UUID) ([]db_models.QuestSubmission, error)
	HasSubmission(ctx context.Context, attendeeID uuid.UUID, questID string) (bool, error)
}

type questRepository struct {
	db *gorm.DB
}

func NewQuestRepository(db *gorm.DB) QuestRepository {
	return &questRepository{db: db}
}

func (r *questRepository) ListSubmissions(ctx context.Context, attendeeID uuid.UUID) ([]db_models.QuestSubmission, error) {
	var submissions []db_models.QuestSubmission
	err := r.db.WithContext(ctx).
		Where("attendee_id = ?", attendeeID).
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *questRepository) HasSubmission(ctx context.Context, attendeeID uuid.UUID, questID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.QuestSubmission{}).
		Where("attendee_id = ? AND quest_id = ?", attendeeID, questID).
		Count(&n).Error
	return n > 0, err
}
