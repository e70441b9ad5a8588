package testutil

import (
	"context"
	"path/filepath"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"expoquest/internal/models/db_models"
)

// OpenDB opens a throwaway sqlite database with the full schema migrated.
// TranslateError stays on so duplicate-key checks behave like production.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "expoquest.sqlite")
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := db.AutoMigrate(
		&db_models.Event{},
		&db_models.Attendee{},
		&db_models.Station{},
		&db_models.Vendor{},
		&db_models.Scan{},
		&db_models.QuestSubmission{},
		&db_models.PointsLog{},
		&db_models.ExitSurvey{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func SeedEvent(t *testing.T, db *gorm.DB) *db_models.Event {
	t.Helper()

	event := &db_models.Event{Name: db_models.DefaultEventName}
	if err := db.WithContext(context.Background()).Create(event).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return event
}

func SeedAttendee(t *testing.T, db *gorm.DB, eventID uuid.UUID, email string) *db_models.Attendee {
	t.Helper()

	attendee := &db_models.Attendee{
		EventID:   eventID,
		FirstName: "Test",
		LastName:  "Attendee",
		Email:     email,
	}
	if err := db.WithContext(context.Background()).Create(attendee).Error; err != nil {
		t.Fatalf("seed attendee: %v", err)
	}
	return attendee
}

func SeedStation(t *testing.T, db *gorm.DB, eventID uuid.UUID, name string, stationType db_models.StationType, points int) *db_models.Station {
	t.Helper()

	station := &db_models.Station{
		EventID:    eventID,
		Name:       name,
		Type:       stationType,
		PointsBase: points,
	}
	if err := db.WithContext(context.Background()).Create(station).Error; err != nil {
		t.Fatalf("seed station: %v", err)
	}
	return station
}

func SeedVendor(t *testing.T, db *gorm.DB, stationID uuid.UUID, name string) *db_models.Vendor {
	t.Helper()

	vendor := &db_models.Vendor{
		StationID:        stationID,
		Name:             name,
		IndustryCategory: "GovTech",
	}
	if err := db.WithContext(context.Background()).Create(vendor).Error; err != nil {
		t.Fatalf("seed vendor: %v", err)
	}
	return vendor
}
