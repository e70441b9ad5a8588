package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"expoquest/internal/models/db_models"
	"expoquest/pkg/utils"
)

// Award is the structured result of a successful point-earning action,
// matching what the scan and quest flows display to the attendee.
type Award struct {
	PointsEarned int
	NewTotal     int
}

// PointsRepository is the only writer of Attendee.TotalPoints. Every path
// increments the total and appends the audit row inside one transaction, so
// the total always equals the points_log sum.
type PointsRepository interface {
	RecordScan(ctx context.Context, attendeeID, stationID uuid.UUID) (*Award, error)
	AwardQuest(ctx context.Context, attendeeID uuid.UUID, questID, questTitle, answer string, points int) (*Award, error)
	AwardBonus(ctx context.Context, attendeeID uuid.UUID, points int, reason string) (*Award, error)
}

type pointsRepository struct {
	db *gorm.DB
}

func NewPointsRepository(db *gorm.DB) PointsRepository {
	return &pointsRepository{db: db}
}

func (r *pointsRepository) RecordScan(ctx context.Context, attendeeID, stationID uuid.UUID) (*Award, error) {
	var award *Award
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var station db_models.Station
		if err := tx.First(&station, "id = ?", stationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrStationNotFound
			}
			return err
		}

		var prior int64
		if err := tx.Model(&db_models.Scan{}).
			Where("attendee_id = ? AND station_id = ?", attendeeID, stationID).
			Count(&prior).Error; err != nil {
			return err
		}
		if prior > 0 {
			return utils.ErrAlreadyScanned
		}

		scan := &db_models.Scan{AttendeeID: attendeeID, StationID: stationID}
		if err := tx.Create(scan).Error; err != nil {
			// The composite unique index backs up the pre-check against
			// concurrent scans of the same code.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return utils.ErrAlreadyScanned
			}
			return err
		}

		total, err := credit(tx, attendeeID, station.PointsBase, "Station visit: "+station.Name)
		if err != nil {
			return err
		}
		award = &Award{PointsEarned: station.PointsBase, NewTotal: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return award, nil
}

func (r *pointsRepository) AwardQuest(ctx context.Context, attendeeID uuid.UUID, questID, questTitle, answer string, points int) (*Award, error) {
	var award *Award
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prior int64
		if err := tx.Model(&db_models.QuestSubmission{}).
			Where("attendee_id = ? AND quest_id = ?", attendeeID, questID).
			Count(&prior).Error; err != nil {
			return err
		}
		if prior > 0 {
			return utils.ErrQuestAlreadyCompleted
		}

		submission := &db_models.QuestSubmission{
			AttendeeID:   attendeeID,
			QuestID:      questID,
			Answer:       answer,
			PointsEarned: points,
		}
		if err := tx.Create(submission).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return utils.ErrQuestAlreadyCompleted
			}
			return err
		}

		total, err := credit(tx, attendeeID, points, "Quest: "+questTitle)
		if err != nil {
			return err
		}
		award = &Award{PointsEarned: points, NewTotal: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return award, nil
}

func (r *pointsRepository) AwardBonus(ctx context.Context, attendeeID uuid.UUID, points int, reason string) (*Award, error) {
	var award *Award
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		total, err := credit(tx, attendeeID, points, reason)
		if err != nil {
			return err
		}
		award = &Award{PointsEarned: points, NewTotal: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return award, nil
}

// credit is the one increment. Never read-then-write the total.
func credit(tx *gorm.DB, attendeeID uuid.UUID, amount int, reason string) (int, error) {
	result := tx.Model(&db_models.Attendee{}).
		Where("id = ?", attendeeID).
		UpdateColumn("total_points", gorm.Expr("total_points + ?", amount))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, utils.ErrAttendeeNotFound
	}

	entry := &db_models.PointsLog{AttendeeID: attendeeID, Amount: amount, Reason: reason}
	if err := tx.Create(entry).Error; err != nil {
		return 0, err
	}

	var attendee db_models.Attendee
	if err := tx.Select("total_points").First(&attendee, "id = ?", attendeeID).Error; err != nil {
		return 0, err
	}
	return attendee.TotalPoints, nil
}
