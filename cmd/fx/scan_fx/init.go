package scan_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"expoquest/internal/repositories"
	"expoquest/internal/services"
)

var Module = fx.Provide(provideStationRepo, provideScanRepo, providePointsRepo, provideScanService)

func provideStationRepo(db *gorm.DB) repositories.StationRepository {
	return repositories.NewStationRepository(db)
}

func provideScanRepo(db *gorm.DB) repositories.ScanRepository {
	return repositories.NewScanRepository(db)
}

func providePointsRepo(db *gorm.DB) repositories.PointsRepository {
	return repositories.NewPointsRepository(db)
}

func provideScanService(stationRepo repositories.StationRepository, scanRepo repositories.ScanRepository, pointsRepo repositories.PointsRepository) services.ScanServiceInterface {
	return services.NewScanService(stationRepo, scanRepo, pointsRepo)
}
