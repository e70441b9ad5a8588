package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"expoquest/internal/models/db_models"
	"expoquest/internal/models/request_models"
	"expoquest/internal/repositories"
	"expoquest/internal/testutil"
	"expoquest/pkg/utils"
)

type scanFixture struct {
	db       *gorm.DB
	svc      ScanServiceInterface
	event    *db_models.Event
	attendee *db_models.Attendee
	repo     repositories.AttendeeRepository
}

func newScanFixture(t *testing.T) scanFixture {
	t.Helper()

	db := testutil.OpenDB(t)
	event := testutil.SeedEvent(t, db)
	attendee := testutil.SeedAttendee(t, db, event.ID, "scanner@example.com")

	svc := NewScanService(
		repositories.NewStationRepository(db),
		repositories.NewScanRepository(db),
		repositories.NewPointsRepository(db),
	)
	return scanFixture{
		db:       db,
		svc:      svc,
		event:    event,
		attendee: attendee,
		repo:     repositories.NewAttendeeRepository(db),
	}
}

func TestScanActivityStationAwardsPoints(t *testing.T) {
	f := newScanFixture(t)
	station := testutil.SeedStation(t, f.db, f.event.ID, "Robotics Demo", db_models.StationTypeActivity, 100)

	outcome, err := f.svc.Scan(context.Background(), f.attendee.ID, request_models.ScanRequest{Payload: station.ID.String()})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if outcome.Result == nil || outcome.Review != nil {
		t.Fatalf("expected a completed result, got %+v", outcome)
	}
	if !outcome.Result.Success || outcome.Result.PointsEarned != 100 || outcome.Result.NewTotal != 100 {
		t.Fatalf("unexpected result: %+v", outcome.Result)
	}

	fresh, err := f.repo.FindByID(context.Background(), f.attendee.ID)
	if err != nil || fresh == nil {
		t.Fatalf("reload attendee: %v", err)
	}
	if fresh.TotalPoints != 100 {
		t.Fatalf("attendee total = %d, want 100", fresh.TotalPoints)
	}
}

func TestScanDuplicateStationRejected(t *testing.T) {
	f := newScanFixture(t)
	station := testutil.SeedStation(t, f.db, f.event.ID, "Robotics Demo", db_models.StationTypeActivity, 100)

	req := request_models.ScanRequest{Payload: utils.StationQRPayload(station.ID)}
	if _, err := f.svc.Scan(context.Background(), f.attendee.ID, req); err != nil {
		t.Fatalf("first scan: %v", err)
	}

	_, err := f.svc.Scan(context.Background(), f.attendee.ID, req)
	if !errors.Is(err, utils.ErrAlreadyScanned) {
		t.Fatalf("second scan: got %v, want ErrAlreadyScanned", err)
	}

	fresh, _ := f.repo.FindByID(context.Background(), f.attendee.ID)
	if fresh.TotalPoints != 100 {
		t.Fatalf("duplicate scan changed the total: %d", fresh.TotalPoints)
	}
}

func TestScanVendorStationRequiresConfirmation(t *testing.T) {
	f := newScanFixture(t)
	station := testutil.SeedStation(t, f.db, f.event.ID, "Cityworks", db_models.StationTypeVendor, 150)
	testutil.SeedVendor(t, f.db, station.ID, "Cityworks")

	// First pass without consent: review card, no points.
	outcome, err := f.svc.Scan(context.Background(), f.attendee.ID, request_models.ScanRequest{Payload: station.ID.String()})
	if err != nil {
		t.Fatalf("review scan: %v", err)
	}
	if outcome.Review == nil || outcome.Result != nil {
		t.Fatalf("expected a review gate, got %+v", outcome)
	}
	if !outcome.Review.ReviewRequired || outcome.Review.StationName != "Cityworks" {
		t.Fatalf("unexpected review: %+v", outcome.Review)
	}
	if outcome.Review.Vendor == nil || outcome.Review.Vendor.Name != "Cityworks" {
		t.Fatalf("review missing vendor card: %+v", outcome.Review)
	}

	fresh, _ := f.repo.FindByID(context.Background(), f.attendee.ID)
	if fresh.TotalPoints != 0 {
		t.Fatalf("review pass awarded points: %d", fresh.TotalPoints)
	}

	// Second pass with consent: credited.
	outcome, err = f.svc.Scan(context.Background(), f.attendee.ID, request_models.ScanRequest{Payload: station.ID.String(), Confirmed: true})
	if err != nil {
		t.Fatalf("confirmed scan: %v", err)
	}
	if outcome.Result == nil || outcome.Result.PointsEarned != 150 {
		t.Fatalf("unexpected result: %+v", outcome)
	}

	// Re-scanning a credited vendor station reports the duplicate instead
	// of showing the review card again.
	_, err = f.svc.Scan(context.Background(), f.attendee.ID, request_models.ScanRequest{Payload: station.ID.String()})
	if !errors.Is(err, utils.ErrAlreadyScanned) {
		t.Fatalf("re-scan: got %v, want ErrAlreadyScanned", err)
	}
}

func TestScanUnknownStation(t *testing.T) {
	f := newScanFixture(t)

	_, err := f.svc.Scan(context.Background(), f.attendee.ID, request_models.ScanRequest{Payload: uuid.New().String()})
	if !errors.Is(err, utils.ErrStationNotFound) {
		t.Fatalf("got %v, want ErrStationNotFound", err)
	}
}

func TestScanMalformedPayload(t *testing.T) {
	f := newScanFixture(t)

	_, err := f.svc.Scan(context.Background(), f.attendee.ID, request_models.ScanRequest{Payload: "HTTPS://EXAMPLE.COM/NOT-A-STATION"})
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := utils.AsValidationError(err); !ok {
		t.Fatalf("want validation error, got %v", err)
	}
}
