package models

import "time"

const (
	DefaultCalorieTarget = 2000
	DefaultProteinTarget = 120
	DefaultCarbTarget    = 250
	DefaultFatTarget     = 65
	DefaultWaterTargetML = 2000
)

const (
	GoalLoseWeight = "lose_weight"
	GoalGainMuscle = "gain_muscle"
	GoalMaintain   = "maintain"
)

type MemberType struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`
	// CourseDuration is the subscription length in days; 0 means unlimited.
	CourseDuration int `gorm:"not null;default:0"`
}

type Member struct {
	ID           uint   `gorm:"primaryKey"`
	LineUserID   string `gorm:"index"`
	DisplayName  string
	MemberTypeID *uint
	MemberType   *MemberType

	AICoachExpireDate        *time.Time
	NotificationsPausedUntil *time.Time
	IsActive                 bool `gorm:"not null;default:true"`

	NotifyMorningCoach     bool `gorm:"not null;default:true"`
	NotifyLunchCoach       bool `gorm:"not null;default:true"`
	NotifyDinnerCoach      bool `gorm:"not null;default:true"`
	NotifyEveningSummary   bool `gorm:"not null;default:true"`
	NotifyWaterReminder    bool `gorm:"not null;default:true"`
	NotifyWeeklyInsights   bool `gorm:"not null;default:true"`
	NotifyProgressPhoto    bool `gorm:"not null;default:true"`
	NotifyExerciseReminder bool `gorm:"not null;default:true"`

	MorningCoachTime   string `gorm:"not null;default:''"`
	LunchCoachTime     string `gorm:"not null;default:''"`
	DinnerCoachTime    string `gorm:"not null;default:''"`
	EveningSummaryTime string `gorm:"not null;default:''"`

	DailyCalorieTarget int `gorm:"not null;default:0"`
	DailyProteinTarget int `gorm:"not null;default:0"`
	DailyCarbTarget    int `gorm:"not null;default:0"`
	DailyFatTarget     int `gorm:"not null;default:0"`
	DailyWaterTarget   int `gorm:"not null;default:0"`

	GoalType      string `gorm:"not null;default:maintain"`
	CurrentWeight float64
	TargetWeight  float64

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}

func (member *Member) CourseDuration() int {
	if member.MemberType == nil {
		return 0
	}
	return member.MemberType.CourseDuration
}

func (member *Member) CalorieTarget() int {
	if member.DailyCalorieTarget > 0 {
		return member.DailyCalorieTarget
	}
	return DefaultCalorieTarget
}

func (member *Member) ProteinTarget() int {
	if member.DailyProteinTarget > 0 {
		return member.DailyProteinTarget
	}
	return DefaultProteinTarget
}

func (member *Member) WaterTargetML() int {
	if member.DailyWaterTarget > 0 {
		return member.DailyWaterTarget
	}
	return DefaultWaterTargetML
}
