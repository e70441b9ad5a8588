package services

import (
	"context"

	"expoquest/internal/models/response_models"
	"expoquest/internal/repositories"
	"expoquest/pkg/utils"
)

// LeaderboardSize caps the public leaderboard at the top 20.
const LeaderboardSize = 20

type LeaderboardServiceInterface interface {
	Top(ctx context.Context) ([]response_models.LeaderboardEntry, error)
}

type LeaderboardService struct {
	leaderboardRepo repositories.LeaderboardRepository
}

func NewLeaderboardService(leaderboardRepo repositories.LeaderboardRepository) LeaderboardServiceInterface {
	return &LeaderboardService{
		leaderboardRepo: leaderboardRepo,
	}
}

func (l *LeaderboardService) Top(ctx context.Context) ([]response_models.LeaderboardEntry, error) {
	rows, err := l.leaderboardRepo.Top(ctx, LeaderboardSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	entries := make([]response_models.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, response_models.LeaderboardEntry{
			Rank:         i + 1,
			ID:           row.ID,
			FirstName:    row.FirstName,
			LastName:     row.LastName,
			TotalPoints:  row.TotalPoints,
			VendorVisits: row.VendorVisits,
		})
	}
	return entries, nil
}
