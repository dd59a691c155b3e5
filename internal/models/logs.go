package models

import "time"

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

type MealLog struct {
	ID       uint   `gorm:"primaryKey"`
	MemberID uint   `gorm:"not null;index:idx_meal_logs_member_time"`
	Name     string `gorm:"not null"`
	MealType string `gorm:"not null;default:snack"`
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	LoggedAt time.Time `gorm:"not null;index:idx_meal_logs_member_time"`
}

type WaterLog struct {
	ID       uint      `gorm:"primaryKey"`
	MemberID uint      `gorm:"not null;index:idx_water_logs_member_time"`
	AmountML int       `gorm:"not null"`
	LoggedAt time.Time `gorm:"not null;index:idx_water_logs_member_time"`
}

type ExerciseLog struct {
	ID              uint   `gorm:"primaryKey"`
	MemberID        uint   `gorm:"not null;index:idx_exercise_logs_member_time"`
	Name            string `gorm:"not null"`
	DurationMinutes int
	CaloriesBurned  float64
	LoggedAt        time.Time `gorm:"not null;index:idx_exercise_logs_member_time"`
}

type WeightLog struct {
	ID       uint      `gorm:"primaryKey"`
	MemberID uint      `gorm:"not null;index:idx_weight_logs_member_time"`
	WeightKG float64   `gorm:"not null"`
	LoggedAt time.Time `gorm:"not null;index:idx_weight_logs_member_time"`
}
