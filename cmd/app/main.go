package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"expoquest/cmd/fx/admin_fx"
	"expoquest/cmd/fx/attendee_fx"
	"expoquest/cmd/fx/controllers_fx"
	"expoquest/cmd/fx/dashboard_fx"
	"expoquest/cmd/fx/db_fx"
	"expoquest/cmd/fx/leaderboard_fx"
	"expoquest/cmd/fx/quest_fx"
	"expoquest/cmd/fx/scan_fx"
	"expoquest/cmd/fx/survey_fx"
	"expoquest/internal/api/controllers"
	"expoquest/internal/infra"
	"expoquest/internal/services"
	"expoquest/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		db_fx.Module,
		attendee_fx.Module,
		scan_fx.Module,
		quest_fx.Module,
		leaderboard_fx.Module,
		dashboard_fx.Module,
		survey_fx.Module,
		admin_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(infra.Migrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	attendeeService services.AttendeeServiceInterface,
	attendeeController *controllers.AttendeeController,
	scanController *controllers.ScanController,
	questController *controllers.QuestController,
	leaderboardController *controllers.LeaderboardController,
	dashboardController *controllers.DashboardController,
	surveyController *controllers.SurveyController,
	adminController *controllers.AdminController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, attendeeService,
		attendeeController, scanController, questController,
		leaderboardController, dashboardController, surveyController, adminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	attendeeService services.AttendeeServiceInterface,
	attendeeController *controllers.AttendeeController,
	scanController *controllers.ScanController,
	questController *controllers.QuestController,
	leaderboardController *controllers.LeaderboardController,
	dashboardController *controllers.DashboardController,
	surveyController *controllers.SurveyController,
	adminController *controllers.AdminController) {

	r.GET("/health", func(c *gin.Context) {
		database := "configured"
		if os.Getenv("POSTGRES_URL") == "" {
			database = "degraded"
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": database})
	})

	attendees := r.Group("/attendees")
	attendees.POST("/register", attendeeController.Register)
	attendees.POST("/login", attendeeController.Login)

	r.GET("/leaderboard", leaderboardController.Top)
	r.GET("/stations/:id/review", scanController.Review)

	session := r.Group("/")
	session.Use(middleware.SessionMiddleware(attendeeService))
	session.POST("/scan", scanController.Scan)
	session.GET("/quests", questController.List)
	session.POST("/quests/:id/submit", questController.Submit)

	me := session.Group("/me")
	me.GET("", attendeeController.Me)
	me.GET("/dashboard", dashboardController.Dashboard)
	me.GET("/prizes", dashboardController.Prizes)
	me.POST("/reflection", surveyController.Reflection)
	me.POST("/exit-survey", surveyController.ExitSurvey)

	admin := r.Group("/admin")
	admin.GET("/stations", adminController.ListStations)
	admin.POST("/stations", adminController.CreateStation)
	admin.PUT("/stations/:id", adminController.UpdateStation)
	admin.DELETE("/stations/:id", adminController.DeleteStation)
	admin.GET("/stations/:id/qr", adminController.StationQR)
	admin.GET("/vendors", adminController.ListVendors)
	admin.POST("/vendors", adminController.CreateVendor)
	admin.PUT("/vendors/:id", adminController.UpdateVendor)
	admin.DELETE("/vendors/:id", adminController.DeleteVendor)
	admin.GET("/attendees", adminController.ListAttendees)
	admin.GET("/exit-surveys", adminController.ListExitSurveys)
	admin.GET("/analytics", adminController.Analytics)
}
