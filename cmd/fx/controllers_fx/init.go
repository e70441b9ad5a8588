package controllers_fx

import (
	"go.uber.org/fx"

	"expoquest/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAttendeeController),
	fx.Provide(controllers.NewScanController),
	fx.Provide(controllers.NewQuestController),
	fx.Provide(controllers.NewLeaderboardController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewSurveyController),
	fx.Provide(controllers.NewAdminController))
