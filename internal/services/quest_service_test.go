package services

import (
	"context"
	"errors"
	"testing"

	"expoquest/internal/repositories"
	"expoquest/pkg/utils"
)

func newQuestFixture(t *testing.T) (QuestServiceInterface, scanFixture) {
	t.Helper()

	f := newScanFixture(t)
	svc := NewQuestService(
		repositories.NewQuestRepository(f.db),
		repositories.NewPointsRepository(f.db),
	)
	return svc, f
}

func TestQuestCompleteAwardsOnce(t *testing.T) {
	svc, f := newQuestFixture(t)
	ctx := context.Background()

	result, err := svc.Complete(ctx, f.attendee.ID, "q1", []string{"Danny Rojas"})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if result.PointsEarned != 150 || result.NewTotal != 150 {
		t.Fatalf("unexpected result: %+v", result)
	}

	_, err = svc.Complete(ctx, f.attendee.ID, "q1", []string{"Danny Rojas"})
	if !errors.Is(err, utils.ErrQuestAlreadyCompleted) {
		t.Fatalf("second completion: got %v, want ErrQuestAlreadyCompleted", err)
	}

	// Completed quests answer with the conflict even for a wrong answer.
	_, err = svc.Complete(ctx, f.attendee.ID, "q1", []string{"someone else"})
	if !errors.Is(err, utils.ErrQuestAlreadyCompleted) {
		t.Fatalf("wrong answer after completion: got %v, want ErrQuestAlreadyCompleted", err)
	}

	fresh, _ := f.repo.FindByID(ctx, f.attendee.ID)
	if fresh.TotalPoints != 150 {
		t.Fatalf("repeat completion changed the total: %d", fresh.TotalPoints)
	}
}

func TestQuestCompleteRejectsWrongAnswer(t *testing.T) {
	svc, f := newQuestFixture(t)
	ctx := context.Background()

	_, err := svc.Complete(ctx, f.attendee.ID, "q1", []string{"someone else"})
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := utils.AsValidationError(err); !ok {
		t.Fatalf("want validation error, got %v", err)
	}

	// A rejected answer leaves the quest open.
	if _, err := svc.Complete(ctx, f.attendee.ID, "q1", []string{"danny rojas"}); err != nil {
		t.Fatalf("retry after wrong answer: %v", err)
	}
}

func TestQuestCompleteUnknownQuest(t *testing.T) {
	svc, f := newQuestFixture(t)

	_, err := svc.Complete(context.Background(), f.attendee.ID, "no_such_quest", []string{"answer"})
	if !errors.Is(err, utils.ErrQuestNotFound) {
		t.Fatalf("got %v, want ErrQuestNotFound", err)
	}
}

func TestQuestListMarksCompleted(t *testing.T) {
	svc, f := newQuestFixture(t)
	ctx := context.Background()

	if _, err := svc.Complete(ctx, f.attendee.ID, "daily_divide", []string{"community device libraries"}); err != nil {
		t.Fatalf("complete: %v", err)
	}

	views, err := svc.ListForAttendee(ctx, f.attendee.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != len(QuestCatalog) {
		t.Fatalf("got %d quests, want %d", len(views), len(QuestCatalog))
	}
	completed := map[string]bool{}
	for _, v := range views {
		completed[v.ID] = v.Completed
	}
	if !completed["daily_divide"] {
		t.Fatal("daily_divide should be marked completed")
	}
	if completed["q1"] {
		t.Fatal("q1 should still be open")
	}
}
