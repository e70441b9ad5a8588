package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"expoquest/internal/models/response_models"
	"expoquest/internal/repositories"
	"expoquest/pkg/utils"
)

type QuestServiceInterface interface {
	ListForAttendee(ctx context.Context, attendeeID uuid.UUID) ([]response_models.QuestView, error)
	Complete(ctx context.Context, attendeeID uuid.UUID, questID string, answers []string) (*response_models.QuestResult, error)
}

type QuestService struct {
	questRepo  repositories.QuestRepository
	pointsRepo repositories.PointsRepository
}

func NewQuestService(questRepo repositories.QuestRepository, pointsRepo repositories.PointsRepository) QuestServiceInterface {
	return &QuestService{
		questRepo:  questRepo,
		pointsRepo: pointsRepo,
	}
}

func (q *QuestService) ListForAttendee(ctx context.Context, attendeeID uuid.UUID) ([]response_models.QuestView, error) {
	submissions, err := q.questRepo.ListSubmissions(ctx, attendeeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	done := make(map[string]bool, len(submissions))
	for _, sub := range submissions {
		done[sub.QuestID] = true
	}

	views := make([]response_models.QuestView, 0, len(QuestCatalog))
	for _, quest := range QuestCatalog {
		views = append(views, response_models.QuestView{
			ID:          quest.ID,
			Title:       quest.Title,
			Description: quest.Description,
			Points:      quest.Points,
			Category:    quest.Category,
			AnswerCount: quest.AnswerCount,
			Completed:   done[quest.ID],
		})
	}
	return views, nil
}

func (q *QuestService) Complete(ctx context.Context, attendeeID uuid.UUID, questID string, answers []string) (*response_models.QuestResult, error) {
	quest := FindQuest(questID)
	if quest == nil {
		return nil, utils.ErrQuestNotFound
	}

	// A completed quest answers with the conflict even when the new
	// answers would not validate.
	done, err := q.questRepo.HasSubmission(ctx, attendeeID, quest.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if done {
		return nil, utils.ErrQuestAlreadyCompleted
	}

	// Wrong or incomplete answers are rejected here; nothing is recorded.
	if err := quest.Validate(answers); err != nil {
		return nil, err
	}

	answer := strings.TrimSpace(strings.Join(answers, "; "))

	award, err := q.pointsRepo.AwardQuest(ctx, attendeeID, quest.ID, quest.Title, answer, quest.Points)
	if err != nil {
		if errors.Is(err, utils.ErrQuestAlreadyCompleted) || errors.Is(err, utils.ErrAttendeeNotFound) {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}

	return &response_models.QuestResult{
		QuestID:      quest.ID,
		PointsEarned: award.PointsEarned,
		NewTotal:     award.NewTotal,
	}, nil
}
