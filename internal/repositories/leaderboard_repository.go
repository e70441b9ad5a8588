package repositories

import (
	"context"

	"gorm.io/gorm"

	"expoquest/internal/models/db_models"
)

type LeaderboardRow struct {
	ID           string `gorm:"column:id"`
	FirstName    string `gorm:"column:first_name"`
	LastName     string `gorm:"column:last_name"`
	TotalPoints  int    `gorm:"column:total_points"`
	VendorVisits int    `gorm:"column:vendor_visits"`
}

type LeaderboardRepository interface {
	Top(ctx context.Context, limit int) ([]LeaderboardRow, error)
}

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) Top(ctx context.Context, limit int) ([]LeaderboardRow, error) {
	var rows []LeaderboardRow
	err := r.db.WithContext(ctx).
		Table("attendees a").
		Select(`
			a.id,
			a.first_name,
			a.last_name,
			a.total_points,
			COUNT(st.id) AS vendor_visits`).
		Joins("LEFT JOIN scans s ON s.attendee_id = a.id AND s.deleted_at IS NULL").
		Joins("LEFT JOIN stations st ON st.id = s.station_id AND st.type = ?", db_models.StationTypeVendor).
		Where("a.deleted_at IS NULL").
		Group("a.id, a.first_name, a.last_name, a.total_points").
		Order("a.total_points DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
