package models

import "gorm.io/gorm"

// One logged food consumption event. Macro fields are nullable because the
// client may log calories-only entries; the effective contribution of every
// field is value × Quantity.
type FoodEntry struct {
    gorm.Model
    UserID   uint   `gorm:"index;not null"`
    FoodName string `gorm:"not null"`
    Calories float64
    Protein  *float64
    Carbs    *float64
    Fats     *float64
    Quantity float64 `gorm:"not null;default:1"`
}
