package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"expoquest/internal/models/request_models"
	"expoquest/internal/repositories"
	"expoquest/pkg/utils"
)

func newSurveyFixture(t *testing.T) (SurveyServiceInterface, scanFixture) {
	t.Helper()

	f := newScanFixture(t)
	svc := NewSurveyService(
		repositories.NewAttendeeRepository(f.db),
		repositories.NewSurveyRepository(f.db),
		repositories.NewPointsRepository(f.db),
	)
	return svc, f
}

func TestReflectionAwardsBonusOnce(t *testing.T) {
	svc, f := newSurveyFixture(t)
	ctx := context.Background()

	req := request_models.ReflectionRequest{
		ConfidenceTechAccessPost: 4,
		ClarityTechPathwaysPost:  5,
		ValuableActivity:         "The mentoring lounge",
		FutureAction:             "Sign up for the coding class",
	}

	result, err := svc.SubmitReflection(ctx, f.attendee.ID, req)
	if err != nil {
		t.Fatalf("reflection: %v", err)
	}
	if result.PointsEarned != ReflectionBonusPoints || result.NewTotal != ReflectionBonusPoints {
		t.Fatalf("unexpected result: %+v", result)
	}

	fresh, _ := f.repo.FindByID(ctx, f.attendee.ID)
	if fresh.ConfidenceTechAccessPost == nil || *fresh.ConfidenceTechAccessPost != 4 {
		t.Fatalf("post score not stored: %+v", fresh.ConfidenceTechAccessPost)
	}
	if fresh.ValuableActivity != "The mentoring lounge" {
		t.Fatalf("valuable activity not stored: %q", fresh.ValuableActivity)
	}

	_, err = svc.SubmitReflection(ctx, f.attendee.ID, req)
	if !errors.Is(err, utils.ErrSurveyAlreadySubmitted) {
		t.Fatalf("second submission: got %v, want ErrSurveyAlreadySubmitted", err)
	}

	fresh, _ = f.repo.FindByID(ctx, f.attendee.ID)
	if fresh.TotalPoints != ReflectionBonusPoints {
		t.Fatalf("repeat submission changed the total: %d", fresh.TotalPoints)
	}
}

func TestExitSurveyOncePerAttendee(t *testing.T) {
	svc, f := newSurveyFixture(t)
	ctx := context.Background()

	req := request_models.ExitSurveyRequest{
		NPS:          9,
		Preparedness: 4,
		MostValuable: "Vendor booths",
		NextStep:     "Apply to the apprenticeship",
	}

	if err := svc.SubmitExitSurvey(ctx, f.attendee.ID, req); err != nil {
		t.Fatalf("exit survey: %v", err)
	}

	err := svc.SubmitExitSurvey(ctx, f.attendee.ID, req)
	if !errors.Is(err, utils.ErrSurveyAlreadySubmitted) {
		t.Fatalf("second submission: got %v, want ErrSurveyAlreadySubmitted", err)
	}

	if err := svc.SubmitExitSurvey(ctx, uuid.New(), req); !errors.Is(err, utils.ErrAttendeeNotFound) {
		t.Fatalf("unknown attendee: got %v", err)
	}
}
