package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"expoquest/internal/models/request_models"
	"expoquest/internal/repositories"
	"expoquest/internal/testutil"
	"expoquest/pkg/utils"
)

func intp(v int) *int { return &v }

func validRegistration(email string) request_models.RegisterRequest {
	return request_models.RegisterRequest{
		FirstName:               "Ada",
		LastName:                "Lovelace",
		Email:                   email,
		ZipCode:                 "11354",
		AgeRange:                "25-34",
		AttendeeType:            []string{"student"},
		TechAccess:              "smartphone",
		DigitalSkillLevel:       "intermediate",
		AgreedToMediaRelease:    true,
		ConfidenceTechAccessPre: intp(3),
		ClarityTechPathwaysPre:  intp(2),
	}
}

func newAttendeeService(t *testing.T) AttendeeServiceInterface {
	t.Helper()

	db := testutil.OpenDB(t)
	return NewAttendeeService(
		repositories.NewAttendeeRepository(db),
		repositories.NewEventRepository(db),
	)
}

func TestRegisterCreatesAttendeeAndEvent(t *testing.T) {
	svc := newAttendeeService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, validRegistration("Ada@Example.COM"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.Email != "ada@example.com" {
		t.Fatalf("email not normalized: %q", resp.Email)
	}
	if resp.AttendeeNumber != "QT-0001" {
		t.Fatalf("attendee number = %q, want QT-0001", resp.AttendeeNumber)
	}
	if len(resp.AttendeeCode) != 6 {
		t.Fatalf("attendee code = %q", resp.AttendeeCode)
	}
	if resp.EventID == uuid.Nil.String() {
		t.Fatal("attendee not attached to an event")
	}

	second, err := svc.Register(ctx, validRegistration("second@example.com"))
	if err != nil {
		t.Fatalf("second register: %v", err)
	}
	if second.AttendeeNumber != "QT-0002" {
		t.Fatalf("second attendee number = %q", second.AttendeeNumber)
	}
	if second.EventID != resp.EventID {
		t.Fatal("second attendee created a new event")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAttendeeService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, validRegistration("dup@example.com")); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Register(ctx, validRegistration("DUP@example.com"))
	if !errors.Is(err, utils.ErrEmailAlreadyRegistered) {
		t.Fatalf("got %v, want ErrEmailAlreadyRegistered", err)
	}
}

func TestRegisterValidationSteps(t *testing.T) {
	svc := newAttendeeService(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		mutate  func(*request_models.RegisterRequest)
		wantMsg string
	}{
		{"missing name", func(r *request_models.RegisterRequest) { r.FirstName = "" }, "required fields"},
		{"bad email", func(r *request_models.RegisterRequest) { r.Email = "not-an-email" }, "valid email"},
		{"missing age range", func(r *request_models.RegisterRequest) { r.AgeRange = "" }, "age range"},
		{"missing attendee type", func(r *request_models.RegisterRequest) { r.AttendeeType = nil }, "age range"},
		{"missing pre score", func(r *request_models.RegisterRequest) { r.ConfidenceTechAccessPre = nil }, "required fields"},
		{"no media release", func(r *request_models.RegisterRequest) { r.AgreedToMediaRelease = false }, "Media Release"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegistration("steps@example.com")
			tc.mutate(&req)

			_, err := svc.Register(ctx, req)
			ve, ok := utils.AsValidationError(err)
			if !ok {
				t.Fatalf("want validation error, got %v", err)
			}
			if !strings.Contains(ve.Message, tc.wantMsg) {
				t.Fatalf("message %q does not mention %q", ve.Message, tc.wantMsg)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	svc := newAttendeeService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, validRegistration("login@example.com"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	resp, err := svc.Login(ctx, request_models.LoginRequest{Email: "  LOGIN@example.com "})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.ID != registered.ID {
		t.Fatalf("login resolved %q, want %q", resp.ID, registered.ID)
	}

	if _, err := svc.Login(ctx, request_models.LoginRequest{Email: "stranger@example.com"}); !errors.Is(err, utils.ErrAttendeeNotFound) {
		t.Fatalf("unknown email: got %v, want ErrAttendeeNotFound", err)
	}
	if _, err := svc.Login(ctx, request_models.LoginRequest{Email: "  "}); err == nil {
		t.Fatal("blank email should fail")
	}
}

func TestResolveOrphanSession(t *testing.T) {
	svc := newAttendeeService(t)

	_, err := svc.Resolve(context.Background(), uuid.New())
	if !errors.Is(err, utils.ErrAttendeeNotFound) {
		t.Fatalf("got %v, want ErrAttendeeNotFound", err)
	}
}
