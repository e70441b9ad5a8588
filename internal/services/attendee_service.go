package services

import (
	"context"
	"log"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"expoquest/internal/models/db_models"
	"expoquest/internal/models/request_models"
	"expoquest/internal/models/response_models"
	"expoquest/internal/repositories"
	"expoquest/pkg/utils"
)

var emailShape = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type AttendeeServiceInterface interface {
	Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.AttendeeResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AttendeeResponse, error)
	Resolve(ctx context.Context, id uuid.UUID) (*db_models.Attendee, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type AttendeeService struct {
	attendeeRepo repositories.AttendeeRepository
	eventRepo    repositories.EventRepository
}

func NewAttendeeService(attendeeRepo repositories.AttendeeRepository, eventRepo repositories.EventRepository) AttendeeServiceInterface {
	return &AttendeeService{
		attendeeRepo: attendeeRepo,
		eventRepo:    eventRepo,
	}
}

// validateRegistration applies the three registration steps' gates, in step
// order, so the client can surface the first failure against its step.
func validateRegistration(req request_models.RegisterRequest) error {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.ZipCode == "" {
		return utils.NewValidationError("Please fill in all required fields.")
	}
	if !emailShape.MatchString(req.Email) {
		return utils.NewValidationError("Please enter a valid email address.")
	}
	if req.AgeRange == "" || len(req.AttendeeType) == 0 {
		return utils.NewValidationError("Please select your age range and at least one attendee type.")
	}
	if req.TechAccess == "" || req.DigitalSkillLevel == "" ||
		req.ConfidenceTechAccessPre == nil || req.ClarityTechPathwaysPre == nil {
		return utils.NewValidationError("Please fill in all required fields.")
	}
	if !req.AgreedToMediaRelease {
		return utils.NewValidationError("You must agree to the Media Release & Photography Notice to continue.")
	}
	return nil
}

func (a *AttendeeService) Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.AttendeeResponse, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := a.attendeeRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyRegistered
	}

	// The event row is created lazily on first registration. Two clients
	// racing here can create two events; accepted, the first one stays
	// first by creation order.
	event, err := a.eventRepo.FindFirst(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		event = &db_models.Event{Name: db_models.DefaultEventName}
		if err := a.eventRepo.Create(ctx, event); err != nil {
			return nil, utils.ErrDatabaseError
		}
		log.Printf("Created event %q (%s)", event.Name, event.ID)
	}

	seq, err := a.attendeeRepo.Count(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	attendee := &db_models.Attendee{
		EventID:                 event.ID,
		FirstName:               strings.TrimSpace(req.FirstName),
		LastName:                strings.TrimSpace(req.LastName),
		Email:                   email,
		ZipCode:                 strings.TrimSpace(req.ZipCode),
		AgeRange:                req.AgeRange,
		AttendeeType:            req.AttendeeType,
		Organization:            req.Organization,
		Interests:               req.Interests,
		TechAccess:              req.TechAccess,
		DigitalSkillLevel:       req.DigitalSkillLevel,
		ReasonForAttending:      req.ReasonForAttending,
		OptInCommunications:     req.OptInCommunications,
		AgreedToMediaRelease:    req.AgreedToMediaRelease,
		ConfidenceTechAccessPre: req.ConfidenceTechAccessPre,
		ClarityTechPathwaysPre:  req.ClarityTechPathwaysPre,
		AttendeeCode:            utils.NewAttendeeCode(),
		AttendeeNumber:          utils.NewAttendeeNumber(seq + 1),
	}

	if err := a.attendeeRepo.Insert(ctx, attendee); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toAttendeeResponse(attendee), nil
}

func (a *AttendeeService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AttendeeResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, utils.NewValidationError("Please enter your email address")
	}

	attendee, err := a.attendeeRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if attendee == nil {
		return nil, utils.ErrAttendeeNotFound
	}

	return toAttendeeResponse(attendee), nil
}

// Resolve turns a locally stored attendee id into the current row. An id
// with no matching row is reported as not found so the client clears its
// stored session.
func (a *AttendeeService) Resolve(ctx context.Context, id uuid.UUID) (*db_models.Attendee, error) {
	attendee, err := a.attendeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if attendee == nil {
		return nil, utils.ErrAttendeeNotFound
	}
	return attendee, nil
}

func (a *AttendeeService) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return a.attendeeRepo.Exists(ctx, id)
}

func toAttendeeResponse(attendee *db_models.Attendee) *response_models.AttendeeResponse {
	return &response_models.AttendeeResponse{
		ID:             attendee.ID.String(),
		FirstName:      attendee.FirstName,
		LastName:       attendee.LastName,
		Email:          attendee.Email,
		AttendeeCode:   attendee.AttendeeCode,
		AttendeeNumber: attendee.AttendeeNumber,
		TotalPoints:    attendee.TotalPoints,
		EventID:        attendee.EventID.String(),
	}
}
