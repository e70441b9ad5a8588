package services

import (
	"context"
	"sort"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"expoquest/internal/models/db_models"
	"expoquest/internal/models/request_models"
	"expoquest/internal/models/response_models"
	"expoquest/internal/repositories"
	"expoquest/pkg/utils"
)

type AdminServiceInterface interface {
	ListStations(ctx context.Context) ([]db_models.Station, error)
	CreateStation(ctx context.Context, req request_models.CreateStationRequest) (*db_models.Station, error)
	UpdateStation(ctx context.Context, id uuid.UUID, req request_models.UpdateStationRequest) (*db_models.Station, error)
	DeleteStation(ctx context.Context, id uuid.UUID) error
	StationQR(ctx context.Context, id uuid.UUID) ([]byte, error)

	ListVendors(ctx context.Context) ([]db_models.Vendor, error)
	CreateVendor(ctx context.Context, req request_models.VendorRequest) (*db_models.Vendor, error)
	UpdateVendor(ctx context.Context, id uuid.UUID, req request_models.VendorRequest) (*db_models.Vendor, error)
	DeleteVendor(ctx context.Context, id uuid.UUID) error

	ListAttendees(ctx context.Context) ([]db_models.Attendee, error)
	ListExitSurveys(ctx context.Context) ([]db_models.ExitSurvey, error)
	BuildAnalytics(ctx context.Context) (*response_models.AnalyticsReport, error)
}

type AdminService struct {
	eventRepo       repositories.EventRepository
	stationRepo     repositories.StationRepository
	vendorRepo      repositories.VendorRepository
	attendeeRepo    repositories.AttendeeRepository
	scanRepo        repositories.ScanRepository
	surveyRepo      repositories.SurveyRepository
	leaderboardRepo repositories.LeaderboardRepository
}

func NewAdminService(
	eventRepo repositories.EventRepository,
	stationRepo repositories.StationRepository,
	vendorRepo repositories.VendorRepository,
	attendeeRepo repositories.AttendeeRepository,
	scanRepo repositories.ScanRepository,
	surveyRepo repositories.SurveyRepository,
	leaderboardRepo repositories.LeaderboardRepository,
) AdminServiceInterface {
	return &AdminService{
		eventRepo:       eventRepo,
		stationRepo:     stationRepo,
		vendorRepo:      vendorRepo,
		attendeeRepo:    attendeeRepo,
		scanRepo:        scanRepo,
		surveyRepo:      surveyRepo,
		leaderboardRepo: leaderboardRepo,
	}
}

func (a *AdminService) ListStations(ctx context.Context) ([]db_models.Station, error) {
	event, err := a.eventRepo.FindFirst(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return []db_models.Station{}, nil
	}
	stations, err := a.stationRepo.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return stations, nil
}

func (a *AdminService) CreateStation(ctx context.Context, req request_models.CreateStationRequest) (*db_models.Station, error) {
	event, err := a.eventRepo.FindFirst(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		event = &db_models.Event{Name: db_models.DefaultEventName}
		if err := a.eventRepo.Create(ctx, event); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	stationType := db_models.StationType(req.Type)
	switch stationType {
	case db_models.StationTypeVendor, db_models.StationTypeActivity:
	case "":
		stationType = db_models.StationTypeActivity
	default:
		return nil, utils.NewValidationError("Station type must be vendor or activity")
	}

	points := req.PointsBase
	if points <= 0 {
		points = 100
	}

	station := &db_models.Station{
		EventID:    event.ID,
		Name:       req.Name,
		Type:       stationType,
		PointsBase: points,
	}
	if _, err := a.stationRepo.Create(ctx, station); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return station, nil
}

func (a *AdminService) UpdateStation(ctx context.Context, id uuid.UUID, req request_models.UpdateStationRequest) (*db_models.Station, error) {
	station, err := a.stationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if station == nil {
		return nil, utils.ErrStationNotFound
	}

	if req.Name != nil {
		station.Name = *req.Name
	}
	if req.Type != nil {
		stationType := db_models.StationType(*req.Type)
		if stationType != db_models.StationTypeVendor && stationType != db_models.StationTypeActivity {
			return nil, utils.NewValidationError("Station type must be vendor or activity")
		}
		station.Type = stationType
	}
	if req.PointsBase != nil {
		if *req.PointsBase <= 0 {
			return nil, utils.NewValidationError("Points must be positive")
		}
		station.PointsBase = *req.PointsBase
	}

	if err := a.stationRepo.Update(ctx, station); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return station, nil
}

func (a *AdminService) DeleteStation(ctx context.Context, id uuid.UUID) error {
	if err := a.stationRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// StationQR renders the PNG the admin console prints for the venue. The
// payload is the canonical JSON envelope, so even legacy scanner builds can
// resolve it.
func (a *AdminService) StationQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	station, err := a.stationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if station == nil {
		return nil, utils.ErrStationNotFound
	}
	png, err := qrcode.Encode(utils.StationQRPayload(station.ID), qrcode.Medium, 512)
	if err != nil {
		return nil, err
	}
	return png, nil
}

func (a *AdminService) ListVendors(ctx context.Context) ([]db_models.Vendor, error) {
	vendors, err := a.vendorRepo.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return vendors, nil
}

func (a *AdminService) CreateVendor(ctx context.Context, req request_models.VendorRequest) (*db_models.Vendor, error) {
	stationID, err := uuid.Parse(req.StationID)
	if err != nil {
		return nil, utils.NewValidationError("Invalid station id")
	}
	station, err := a.stationRepo.GetByID(ctx, stationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if station == nil {
		return nil, utils.ErrStationNotFound
	}

	existing, err := a.vendorRepo.GetByStationID(ctx, stationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.NewValidationError("This station already has a vendor")
	}

	// Binding a vendor makes the station a vendor station.
	if station.Type != db_models.StationTypeVendor {
		station.Type = db_models.StationTypeVendor
		if err := a.stationRepo.Update(ctx, station); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	vendor := &db_models.Vendor{
		StationID:        stationID,
		Name:             req.Name,
		PrimaryContact:   req.PrimaryContact,
		Email:            req.Email,
		Phone:            req.Phone,
		IndustryCategory: req.IndustryCategory,
		Description:      req.Description,
		SolutionOverview: req.SolutionOverview,
		ValueProposition: req.ValueProposition,
	}
	if _, err := a.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return vendor, nil
}

func (a *AdminService) UpdateVendor(ctx context.Context, id uuid.UUID, req request_models.VendorRequest) (*db_models.Vendor, error) {
	vendor, err := a.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if vendor == nil {
		return nil, utils.ErrVendorNotFound
	}

	vendor.Name = req.Name
	vendor.PrimaryContact = req.PrimaryContact
	vendor.Email = req.Email
	vendor.Phone = req.Phone
	vendor.IndustryCategory = req.IndustryCategory
	vendor.Description = req.Description
	vendor.SolutionOverview = req.SolutionOverview
	vendor.ValueProposition = req.ValueProposition

	if err := a.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return vendor, nil
}

func (a *AdminService) DeleteVendor(ctx context.Context, id uuid.UUID) error {
	if err := a.vendorRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AdminService) ListAttendees(ctx context.Context) ([]db_models.Attendee, error) {
	attendees, err := a.attendeeRepo.ListByPoints(ctx, 500)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return attendees, nil
}

func (a *AdminService) ListExitSurveys(ctx context.Context) ([]db_models.ExitSurvey, error) {
	surveys, err := a.surveyRepo.ListExitSurveys(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return surveys, nil
}

func (a *AdminService) BuildAnalytics(ctx context.Context) (*response_models.AnalyticsReport, error) {
	attendees, err := a.attendeeRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	totalScans, err := a.scanRepo.Count(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	totalStations, err := a.stationRepo.Count(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	qualified := 0
	if len(attendees) > 0 {
		rows, err := a.leaderboardRepo.Top(ctx, len(attendees))
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		for _, row := range rows {
			if row.VendorVisits >= response_models.QualificationThreshold {
				qualified++
			}
		}
	}

	report := &response_models.AnalyticsReport{
		TotalAttendees: len(attendees),
		TotalScans:     int(totalScans),
		TotalStations:  int(totalStations),
		QualifiedCount: qualified,
	}

	ageRanges := map[string]int{}
	zips := map[string]int{}
	types := map[string]int{}
	interests := map[string]int{}
	skills := map[string]int{}
	for _, attendee := range attendees {
		if attendee.AgeRange != "" {
			ageRanges[attendee.AgeRange]++
		}
		if attendee.ZipCode != "" {
			zips[attendee.ZipCode]++
		}
		if attendee.DigitalSkillLevel != "" {
			skills[attendee.DigitalSkillLevel]++
		}
		for _, t := range attendee.AttendeeType {
			types[t]++
		}
		for _, i := range attendee.Interests {
			interests[i]++
		}
	}
	total := len(attendees)
	report.AgeRanges = breakdown(ageRanges, total)
	report.ZipCodes = breakdown(zips, total)
	report.AttendeeType = breakdown(types, total)
	report.Interests = breakdown(interests, total)
	report.SkillLevels = breakdown(skills, total)

	report.ConfidenceTechAccess = movement(attendees,
		func(a db_models.Attendee) (*int, *int) { return a.ConfidenceTechAccessPre, a.ConfidenceTechAccessPost })
	report.ClarityTechPathways = movement(attendees,
		func(a db_models.Attendee) (*int, *int) { return a.ClarityTechPathwaysPre, a.ClarityTechPathwaysPost })

	return report, nil
}

// breakdown turns value counts into percentage bars, largest first.
func breakdown(counts map[string]int, total int) []response_models.BreakdownItem {
	items := make([]response_models.BreakdownItem, 0, len(counts))
	for value, count := range counts {
		var pct float64
		if total > 0 {
			pct = float64(count) * 100.0 / float64(total)
		}
		items = append(items, response_models.BreakdownItem{Value: value, Count: count, Percent: pct})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Value < items[j].Value
	})
	return items
}

func movement(attendees []db_models.Attendee, pick func(db_models.Attendee) (*int, *int)) response_models.ScoreMovement {
	var preSum, postSum, n int
	for _, attendee := range attendees {
		pre, post := pick(attendee)
		if pre == nil || post == nil {
			continue
		}
		preSum += *pre
		postSum += *post
		n++
	}
	if n == 0 {
		return response_models.ScoreMovement{}
	}
	return response_models.ScoreMovement{
		PreAverage:  float64(preSum) / float64(n),
		PostAverage: float64(postSum) / float64(n),
		Responses:   n,
	}
}
