package client

import (
	"math/rand"
	"testing"

	"github.com/ibrahim-qi/macro-logger-app/models"
)

func TestCalculateTotals(t *testing.T) {
	entries := []models.FoodEntry{
		{FoodName: "Chicken", Calories: 200, Protein: ptr(20), Quantity: 1},
		{FoodName: "Rice", Calories: 100, Protein: ptr(0), Quantity: 2},
	}

	got := CalculateTotals(entries)
	want := DailyTotals{Calories: 400, Protein: 20, Carbs: 0, Fats: 0}
	if got != want {
		t.Errorf("totals = %+v, want %+v", got, want)
	}
}

func TestCalculateTotalsAbsentMacrosAreZero(t *testing.T) {
	entries := []models.FoodEntry{
		{FoodName: "Mystery snack", Calories: 150, Quantity: 2}, // no macros at all
		{FoodName: "Shake", Calories: 120, Protein: ptr(25), Carbs: ptr(3), Fats: ptr(1.5), Quantity: 1},
	}

	got := CalculateTotals(entries)
	want := DailyTotals{Calories: 420, Protein: 25, Carbs: 3, Fats: 1.5}
	if got != want {
		t.Errorf("totals = %+v, want %+v", got, want)
	}
}

func TestCalculateTotalsOrderIndependent(t *testing.T) {
	entries := []models.FoodEntry{
		{FoodName: "a", Calories: 120, Protein: ptr(10), Carbs: ptr(14), Quantity: 1.5},
		{FoodName: "b", Calories: 340, Fats: ptr(12), Quantity: 1},
		{FoodName: "c", Calories: 55, Protein: ptr(2), Quantity: 3},
		{FoodName: "d", Calories: 480, Carbs: ptr(60), Fats: ptr(18), Quantity: 0.5},
	}
	want := CalculateTotals(entries)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]models.FoodEntry, len(entries))
		copy(shuffled, entries)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		if got := CalculateTotals(shuffled); got != want {
			t.Fatalf("permutation %d: totals = %+v, want %+v", i, got, want)
		}
	}
}

func TestCalculateTotalsEmpty(t *testing.T) {
	if got := (DailyTotals{}); CalculateTotals(nil) != got {
		t.Errorf("empty input should produce zero totals")
	}
}
