package dashboard_fx

import (
	"go.uber.org/fx"

	"expoquest/internal/repositories"
	"expoquest/internal/services"
)

var Module = fx.Provide(provideDashboardService)

func provideDashboardService(attendeeRepo repositories.AttendeeRepository, scanRepo repositories.ScanRepository) services.DashboardServiceInterface {
	return services.NewDashboardService(attendeeRepo, scanRepo)
}
