package db

import (
	"errors"
	"time"

	"github.com/kinwise-app/kinwise/internal/models"
	"gorm.io/gorm"
)

type LogRepository struct {
	database *gorm.DB
}

func NewLogRepository(database *gorm.DB) *LogRepository {
	return &LogRepository{database: database}
}

func (repo *LogRepository) ListMealLogs(memberID uint, from time.Time, to time.Time) ([]models.MealLog, error) {
	logs := make([]models.MealLog, 0)
	if err := repo.database.
		Where("member_id = ? AND logged_at >= ? AND logged_at < ?", memberID, from, to).
		Order("logged_at ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *LogRepository) CountMealLogs(memberID uint, from time.Time, to time.Time) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.MealLog{}).
		Where("member_id = ? AND logged_at >= ? AND logged_at < ?", memberID, from, to).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *LogRepository) SumWaterML(memberID uint, from time.Time, to time.Time) (int, error) {
	var total *int
	if err := repo.database.Model(&models.WaterLog{}).
		Select("SUM(amount_ml)").
		Where("member_id = ? AND logged_at >= ? AND logged_at < ?", memberID, from, to).
		Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

// LatestExerciseLog returns the most recent exercise log inside the range;
// the boolean is false when the range is empty.
func (repo *LogRepository) LatestExerciseLog(memberID uint, from time.Time, to time.Time) (models.ExerciseLog, bool, error) {
	var entry models.ExerciseLog
	err := repo.database.
		Where("member_id = ? AND logged_at >= ? AND logged_at < ?", memberID, from, to).
		Order("logged_at DESC, id DESC").
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ExerciseLog{}, false, nil
	}
	if err != nil {
		return models.ExerciseLog{}, false, err
	}
	return entry, true, nil
}

// ListRecentWeightLogs returns up to limit weight logs since the given
// instant, most recent first.
func (repo *LogRepository) ListRecentWeightLogs(memberID uint, since time.Time, limit int) ([]models.WeightLog, error) {
	logs := make([]models.WeightLog, 0)
	if err := repo.database.
		Where("member_id = ? AND logged_at >= ?", memberID, since).
		Order("logged_at DESC, id DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
