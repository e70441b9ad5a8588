package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"expoquest/internal/models/db_models"
	"expoquest/internal/models/request_models"
	"expoquest/internal/models/response_models"
	"expoquest/internal/repositories"
	"expoquest/pkg/utils"
)

// ReflectionBonusPoints is awarded once for completing the reflection survey.
const ReflectionBonusPoints = 50

type SurveyServiceInterface interface {
	SubmitReflection(ctx context.Context, attendeeID uuid.UUID, req request_models.ReflectionRequest) (*response_models.ScanResult, error)
	SubmitExitSurvey(ctx context.Context, attendeeID uuid.UUID, req request_models.ExitSurveyRequest) error
}

type SurveyService struct {
	attendeeRepo repositories.AttendeeRepository
	surveyRepo   repositories.SurveyRepository
	pointsRepo   repositories.PointsRepository
}

func NewSurveyService(attendeeRepo repositories.AttendeeRepository, surveyRepo repositories.SurveyRepository, pointsRepo repositories.PointsRepository) SurveyServiceInterface {
	return &SurveyService{
		attendeeRepo: attendeeRepo,
		surveyRepo:   surveyRepo,
		pointsRepo:   pointsRepo,
	}
}

func (s *SurveyService) SubmitReflection(ctx context.Context, attendeeID uuid.UUID, req request_models.ReflectionRequest) (*response_models.ScanResult, error) {
	attendee, err := s.attendeeRepo.FindByID(ctx, attendeeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if attendee == nil {
		return nil, utils.ErrAttendeeNotFound
	}
	if attendee.ConfidenceTechAccessPost != nil {
		return nil, utils.ErrSurveyAlreadySubmitted
	}

	err = s.attendeeRepo.UpdateReflection(ctx, attendeeID, map[string]interface{}{
		"confidence_tech_access_post": req.ConfidenceTechAccessPost,
		"clarity_tech_pathways_post":  req.ClarityTechPathwaysPost,
		"valuable_activity":           req.ValuableActivity,
		"future_action":               req.FutureAction,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	award, err := s.pointsRepo.AwardBonus(ctx, attendeeID, ReflectionBonusPoints, "Reflection survey")
	if err != nil {
		if errors.Is(err, utils.ErrAttendeeNotFound) {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ScanResult{
		Success:      true,
		Message:      "Thanks for sharing your reflection!",
		PointsEarned: award.PointsEarned,
		NewTotal:     award.NewTotal,
	}, nil
}

func (s *SurveyService) SubmitExitSurvey(ctx context.Context, attendeeID uuid.UUID, req request_models.ExitSurveyRequest) error {
	exists, err := s.attendeeRepo.Exists(ctx, attendeeID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !exists {
		return utils.ErrAttendeeNotFound
	}

	done, err := s.surveyRepo.HasExitSurvey(ctx, attendeeID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if done {
		return utils.ErrSurveyAlreadySubmitted
	}

	survey := &db_models.ExitSurvey{
		AttendeeID:   attendeeID,
		NPS:          req.NPS,
		Preparedness: req.Preparedness,
		MostValuable: req.MostValuable,
		NextStep:     req.NextStep,
	}
	if err := s.surveyRepo.InsertExitSurvey(ctx, survey); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
