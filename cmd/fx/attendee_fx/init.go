package attendee_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"expoquest/internal/repositories"
	"expoquest/internal/services"
)

var Module = fx.Provide(provideAttendeeRepo, provideEventRepo, provideAttendeeService)

func provideAttendeeRepo(db *gorm.DB) repositories.AttendeeRepository {
	return repositories.NewAttendeeRepository(db)
}

func provideEventRepo(db *gorm.DB) repositories.EventRepository {
	return repositories.NewEventRepository(db)
}

func provideAttendeeService(attendeeRepo repositories.AttendeeRepository, eventRepo repositories.EventRepository) services.AttendeeServiceInterface {
	return services.NewAttendeeService(attendeeRepo, eventRepo)
}
