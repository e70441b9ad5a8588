package services

import (
	"context"

	"github.com/google/uuid"

	"expoquest/internal/models/db_models"
	"expoquest/internal/models/response_models"
	"expoquest/internal/repositories"
	"expoquest/pkg/utils"
)

type DashboardServiceInterface interface {
	BuildDashboard(ctx context.Context, attendeeID uuid.UUID) (*response_models.DashboardResponse, error)
	PrizeStatus(ctx context.Context, attendeeID uuid.UUID) (*response_models.PrizeResponse, error)
}

type DashboardService struct {
	attendeeRepo repositories.AttendeeRepository
	scanRepo     repositories.ScanRepository
}

func NewDashboardService(attendeeRepo repositories.AttendeeRepository, scanRepo repositories.ScanRepository) DashboardServiceInterface {
	return &DashboardService{
		attendeeRepo: attendeeRepo,
		scanRepo:     scanRepo,
	}
}

func (d *DashboardService) BuildDashboard(ctx context.Context, attendeeID uuid.UUID) (*response_models.DashboardResponse, error) {
	attendee, err := d.attendeeRepo.FindByID(ctx, attendeeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if attendee == nil {
		return nil, utils.ErrAttendeeNotFound
	}

	scans, err := d.scanRepo.ListByAttendee(ctx, attendeeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	vendorVisits := 0
	interests := make([]response_models.VendorCard, 0)
	for _, scan := range scans {
		if scan.Station.Type != db_models.StationTypeVendor {
			continue
		}
		vendorVisits++
		if scan.Station.Vendor != nil {
			interests = append(interests, *vendorCardOf(scan.Station.Vendor, scan.CreatedAt))
		}
	}

	return &response_models.DashboardResponse{
		TotalPoints:  attendee.TotalPoints,
		VendorVisits: vendorVisits,
		Qualified:    vendorVisits >= response_models.QualificationThreshold,
		Threshold:    response_models.QualificationThreshold,
		Interests:    interests,
	}, nil
}

func (d *DashboardService) PrizeStatus(ctx context.Context, attendeeID uuid.UUID) (*response_models.PrizeResponse, error) {
	attendee, err := d.attendeeRepo.FindByID(ctx, attendeeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if attendee == nil {
		return nil, utils.ErrAttendeeNotFound
	}

	vendorVisits, err := d.scanRepo.CountVendorVisits(ctx, attendeeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.PrizeResponse{
		TotalPoints: attendee.TotalPoints,
		Tier:        prizeTier(attendee.TotalPoints),
		Qualified:   vendorVisits >= response_models.QualificationThreshold,
	}, nil
}

func prizeTier(points int) string {
	switch {
	case points >= 1000:
		return "Legendary"
	case points >= 500:
		return "Pro"
	default:
		return "Novice"
	}
}
