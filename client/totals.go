package client

import "github.com/ibrahim-qi/macro-logger-app/models"

// DailyTotals is derived from the held entry set, never stored.
type DailyTotals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
}

// CalculateTotals sums each field × quantity over the entries. Absent macros
// count as zero. The sum is commutative, so input order is irrelevant, and no
// rounding happens here; display rounding is a UI concern.
func CalculateTotals(entries []models.FoodEntry) DailyTotals {
	var t DailyTotals
	for _, e := range entries {
		t.Calories += e.Calories * e.Quantity
		if e.Protein != nil {
			t.Protein += *e.Protein * e.Quantity
		}
		if e.Carbs != nil {
			t.Carbs += *e.Carbs * e.Quantity
		}
		if e.Fats != nil {
			t.Fats += *e.Fats * e.Quantity
		}
	}
	return t
}
