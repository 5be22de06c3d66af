package client

import (
	"fmt"
	"strings"

	"github.com/ibrahim-qi/macro-logger-app/models"
	"github.com/ibrahim-qi/macro-logger-app/services"
)

// ValidateEntryInput runs the client-side checks that block submission before
// any remote call is made.
func ValidateEntryInput(in services.EntryInput) error {
	if strings.TrimSpace(in.FoodName) == "" {
		return fmt.Errorf("%w: food name is required", ErrValidation)
	}
	if in.Calories < 0 {
		return fmt.Errorf("%w: calories cannot be negative", ErrValidation)
	}
	for name, v := range map[string]*float64{"protein": in.Protein, "carbs": in.Carbs, "fats": in.Fats} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%w: %s cannot be negative", ErrValidation, name)
		}
	}
	if in.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be greater than zero", ErrValidation)
	}
	return nil
}

// ValidateGoalsInput rejects out-of-range daily targets.
func ValidateGoalsInput(in services.GoalsInput) error {
	for name, v := range map[string]float64{
		"calories": in.DailyCalories,
		"protein":  in.DailyProtein,
		"carbs":    in.DailyCarbs,
		"fats":     in.DailyFats,
	} {
		if v <= 0 {
			return fmt.Errorf("%w: daily %s goal must be greater than zero", ErrValidation, name)
		}
	}
	return nil
}

// EntryFromSavedFood prefills a new entry from a saved template. The caller
// adjusts quantity before submitting.
func EntryFromSavedFood(food models.SavedFood, quantity float64) services.EntryInput {
	return services.EntryInput{
		FoodName: food.FoodName,
		Calories: food.Calories,
		Protein:  &food.Protein,
		Carbs:    &food.Carbs,
		Fats:     &food.Fats,
		Quantity: quantity,
	}
}
