package models

import "gorm.io/gorm"

// A reusable macro profile used to prefill new entries. FoodName is unique per
// user so the saved list stays a lookup table, not a log.
type SavedFood struct {
    gorm.Model
    UserID   uint   `gorm:"not null;uniqueIndex:idx_saved_foods_user_name"`
    FoodName string `gorm:"not null;uniqueIndex:idx_saved_foods_user_name"`
    Calories float64
    Protein  float64
    Carbs    float64
    Fats     float64
}
