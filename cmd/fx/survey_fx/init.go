package survey_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"expoquest/internal/repositories"
	"expoquest/internal/services"
)

var Module = fx.Provide(provideSurveyRepo, provideSurveyService)

func provideSurveyRepo(db *gorm.DB) repositories.SurveyRepository {
	return repositories.NewSurveyRepository(db)
}

func provideSurveyService(attendeeRepo repositories.AttendeeRepository, surveyRepo repositories.SurveyRepository, pointsRepo repositories.PointsRepository) services.SurveyServiceInterface {
	return services.NewSurveyService(attendeeRepo, surveyRepo, pointsRepo)
}
