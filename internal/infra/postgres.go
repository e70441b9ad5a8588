package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"expoquest/internal/models/db_models"
)

const placeholderDSN = "postgres://localhost:5432/expoquest?sslmode=disable"

func InitPostgresql() *gorm.DB {

	dsn := os.Getenv("POSTGRES_URL")

	if dsn == "" {
		// No credentials configured. Open an inert handle so the process
		// still boots and serves; data routes fail downstream.
		log.Println("POSTGRES_URL missing, using placeholder connection. Data requests will fail.")
		db, err := gorm.Open(postgres.Open(placeholderDSN), &gorm.Config{
			DisableAutomaticPing: true,
			TranslateError:       true,
		})
		if err != nil {
			log.Fatalf("Error preparing placeholder database handle: %v", err)
		}
		return db
	}

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

// Migrate keeps the schema in step with the models. Safe to run on every
// boot; skipped when running against the placeholder handle.
func Migrate(db *gorm.DB) error {
	if os.Getenv("POSTGRES_URL") == "" {
		return nil
	}
	return db.AutoMigrate(
		&db_models.Event{},
		&db_models.Attendee{},
		&db_models.Station{},
		&db_models.Vendor{},
		&db_models.Scan{},
		&db_models.QuestSubmission{},
		&db_models.PointsLog{},
		&db_models.ExitSurvey{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
