package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"expoquest/internal/models/db_models"
)

type SurveyRepository interface {
	InsertExitSurvey(ctx context.Context, survey *db_models.ExitSurvey) error
	HasExitSurvey(ctx context.Context, attendeeID uuid.UUID) (bool, error)
	ListExitSurveys(ctx context.Context) ([]db_models.ExitSurvey, error)
}

type surveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) InsertExitSurvey(ctx context.Context, survey *db_models.ExitSurvey) error {
	return r.db.WithContext(ctx).Create(survey).Error
}

func (r *surveyRepository) HasExitSurvey(ctx context.Context, attendeeID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.ExitSurvey{}).
		Where("attendee_id = ?", attendeeID).
		Count(&n).Error
	return n > 0, err
}

func (r *surveyRepository) ListExitSurveys(ctx context.Context) ([]db_models.ExitSurvey, error) {
	var surveys []db_models.ExitSurvey
	err := r.db.WithContext(ctx).Order("created_at").Find(&surveys).Error
	if err != nil {
		return nil, err
	}
	return surveys, nil
}
