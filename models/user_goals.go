package models

import "gorm.io/gorm"

// UserGoals holds each user's daily macro targets. One row per user, created
// lazily with defaults the first time goals are read.
type UserGoals struct {
    gorm.Model
    UserID        uint    `gorm:"uniqueIndex;not null"`
    DailyCalories float64 // e.g. 2000 kcal
    DailyProtein  float64 // e.g. 150 g
    DailyCarbs    float64 // e.g. 250 g
    DailyFats     float64 // e.g. 65 g
}

// Defaults applied when a user has no goals row yet.
const (
    DefaultDailyCalories = 2000
    DefaultDailyProtein  = 150
    DefaultDailyCarbs    = 250
    DefaultDailyFats     = 65
)
