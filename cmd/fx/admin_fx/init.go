package admin_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"expoquest/internal/repositories"
	"expoquest/internal/services"
)

var Module = fx.Provide(provideVendorRepo, provideAdminService)

func provideVendorRepo(db *gorm.DB) repositories.VendorRepository {
	return repositories.NewVendorRepository(db)
}

func provideAdminService(
	eventRepo repositories.EventRepository,
	stationRepo repositories.StationRepository,
	vendorRepo repositories.VendorRepository,
	attendeeRepo repositories.AttendeeRepository,
	scanRepo repositories.ScanRepository,
	surveyRepo repositories.SurveyRepository,
	leaderboardRepo repositories.LeaderboardRepository,
) services.AdminServiceInterface {
	return services.NewAdminService(eventRepo, stationRepo, vendorRepo, attendeeRepo, scanRepo, surveyRepo, leaderboardRepo)
}
