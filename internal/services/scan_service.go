package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"expoquest/internal/models/db_models"
	"expoquest/internal/models/request_models"
	"expoquest/internal/models/response_models"
	"expoquest/internal/repositories"
	"expoquest/pkg/utils"
)

// ScanOutcome is either a review gate (vendor station awaiting consent) or a
// completed scan result; exactly one field is set.
type ScanOutcome struct {
	Review *response_models.StationReview
	Result *response_models.ScanResult
}

type ScanServiceInterface interface {
	Scan(ctx context.Context, attendeeID uuid.UUID, req request_models.ScanRequest) (*ScanOutcome, error)
	Review(ctx context.Context, stationID uuid.UUID) (*response_models.StationReview, error)
}

type ScanService struct {
	stationRepo repositories.StationRepository
	scanRepo    repositories.ScanRepository
	pointsRepo  repositories.PointsRepository
}

func NewScanService(stationRepo repositories.StationRepository, scanRepo repositories.ScanRepository, pointsRepo repositories.PointsRepository) ScanServiceInterface {
	return &ScanService{
		stationRepo: stationRepo,
		scanRepo:    scanRepo,
		pointsRepo:  pointsRepo,
	}
}

func (s *ScanService) Scan(ctx context.Context, attendeeID uuid.UUID, req request_models.ScanRequest) (*ScanOutcome, error) {
	stationID, err := utils.ExtractStationID(req.Payload)
	if err != nil {
		// Malformed payload; rejected before any database work.
		return nil, err
	}

	station, err := s.stationRepo.GetByIDWithVendor(ctx, stationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if station == nil {
		return nil, utils.ErrStationNotFound
	}

	// Vendor stations share attendee contact details with the vendor, so
	// they are only credited after explicit confirmation. Re-scanning a
	// station already credited skips the gate and reports the duplicate.
	if station.Type == db_models.StationTypeVendor && !req.Confirmed {
		scanned, err := s.scanRepo.Has(ctx, attendeeID, stationID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if scanned {
			return nil, utils.ErrAlreadyScanned
		}
		return &ScanOutcome{Review: reviewOf(station)}, nil
	}

	award, err := s.pointsRepo.RecordScan(ctx, attendeeID, stationID)
	if err != nil {
		if errors.Is(err, utils.ErrAlreadyScanned) || errors.Is(err, utils.ErrStationNotFound) {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}

	return &ScanOutcome{Result: &response_models.ScanResult{
		Success:      true,
		Message:      fmt.Sprintf("Station visited! +%d points", award.PointsEarned),
		PointsEarned: award.PointsEarned,
		NewTotal:     award.NewTotal,
	}}, nil
}

func (s *ScanService) Review(ctx context.Context, stationID uuid.UUID) (*response_models.StationReview, error) {
	station, err := s.stationRepo.GetByIDWithVendor(ctx, stationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if station == nil {
		return nil, utils.ErrStationNotFound
	}
	return reviewOf(station), nil
}

func reviewOf(station *db_models.Station) *response_models.StationReview {
	review := &response_models.StationReview{
		ReviewRequired: station.Type == db_models.StationTypeVendor,
		StationID:      station.ID.String(),
		StationName:    station.Name,
		PointsBase:     station.PointsBase,
	}
	if station.Vendor != nil {
		review.Vendor = vendorCardOf(station.Vendor, 0)
	}
	return review
}

func vendorCardOf(vendor *db_models.Vendor, scannedAt int64) *response_models.VendorCard {
	return &response_models.VendorCard{
		ID:               vendor.ID.String(),
		Name:             vendor.Name,
		IndustryCategory: vendor.IndustryCategory,
		PrimaryContact:   vendor.PrimaryContact,
		Email:            vendor.Email,
		SolutionOverview: vendor.SolutionOverview,
		ValueProposition: vendor.ValueProposition,
		ScannedAt:        scannedAt,
	}
}
