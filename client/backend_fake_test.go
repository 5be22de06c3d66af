package client

import (
	"context"
	"sync"
	"time"

	"github.com/ibrahim-qi/macro-logger-app/models"
	"github.com/ibrahim-qi/macro-logger-app/services"
	"github.com/ibrahim-qi/macro-logger-app/utils"
)

// fakeBackend is an in-memory Backend for exercising the client components
// without a server. Hooks let tests stall or fail individual calls.
type fakeBackend struct {
	mu      sync.Mutex
	entries map[string][]models.FoodEntry // keyed by YYYY-MM-DD

	fetchHook func(day time.Time) // runs inside FetchEntries before it returns
	fetchErr  error
	updateErr error
	deleteErr error

	weekly     []models.PeriodSummary
	weeklyErr  error
	monthly    []models.PeriodSummary
	monthlyErr error

	weeklyCalls  int
	monthlyCalls int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{entries: make(map[string][]models.FoodEntry)}
}

func (f *fakeBackend) put(entries ...models.FoodEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range entries {
		key := e.CreatedAt.Format(utils.DateLayout)
		f.entries[key] = append(f.entries[key], e)
	}
}

func (f *fakeBackend) FetchEntries(_ context.Context, _ *Session, day time.Time) ([]models.FoodEntry, error) {
	if f.fetchHook != nil {
		f.fetchHook(day)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := make([]models.FoodEntry, len(f.entries[day.Format(utils.DateLayout)]))
	copy(out, f.entries[day.Format(utils.DateLayout)])
	return out, nil
}

func (f *fakeBackend) InsertEntry(_ context.Context, sess *Session, in services.EntryInput) (*models.FoodEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry := models.FoodEntry{
		UserID:   sess.UserID,
		FoodName: in.FoodName,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fats:     in.Fats,
		Quantity: in.Quantity,
	}
	entry.ID = uint(len(f.entries) + 100)
	entry.CreatedAt = time.Now()
	if in.CreatedAt != nil {
		entry.CreatedAt = *in.CreatedAt
	}
	key := entry.CreatedAt.Format(utils.DateLayout)
	f.entries[key] = append(f.entries[key], entry)
	return &entry, nil
}

func (f *fakeBackend) UpdateEntry(_ context.Context, _ *Session, id uint, patch services.EntryPatch) (*models.FoodEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for key, list := range f.entries {
		for i, e := range list {
			if e.ID != id {
				continue
			}
			if patch.FoodName != nil {
				e.FoodName = *patch.FoodName
			}
			if patch.Calories != nil {
				e.Calories = *patch.Calories
			}
			if patch.Quantity != nil {
				e.Quantity = *patch.Quantity
			}
			f.entries[key][i] = e
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeBackend) DeleteEntry(_ context.Context, _ *Session, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for key, list := range f.entries {
		for i, e := range list {
			if e.ID == id {
				f.entries[key] = append(list[:i], list[i+1:]...)
				return nil
			}
		}
	}
	return ErrNotFound
}

func (f *fakeBackend) FetchSavedFoods(context.Context, *Session, string) ([]models.SavedFood, error) {
	return nil, nil
}

func (f *fakeBackend) InsertSavedFood(_ context.Context, _ *Session, in services.SavedFoodInput) (*models.SavedFood, error) {
	return &models.SavedFood{FoodName: in.FoodName}, nil
}

func (f *fakeBackend) UpdateSavedFood(_ context.Context, _ *Session, _ uint, in services.SavedFoodInput) (*models.SavedFood, error) {
	return &models.SavedFood{FoodName: in.FoodName}, nil
}

func (f *fakeBackend) DeleteSavedFood(context.Context, *Session, uint) error { return nil }

func (f *fakeBackend) FetchGoals(context.Context, *Session, time.Time) (*services.GoalProgress, error) {
	return &services.GoalProgress{}, nil
}

func (f *fakeBackend) UpsertGoals(context.Context, *Session, services.GoalsInput) (*models.UserGoals, error) {
	return &models.UserGoals{}, nil
}

func (f *fakeBackend) WeeklySummary(context.Context, *Session, time.Time) ([]models.PeriodSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.weeklyCalls++
	return f.weekly, f.weeklyErr
}

func (f *fakeBackend) MonthlySummary(context.Context, *Session, int, int) ([]models.PeriodSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.monthlyCalls++
	return f.monthly, f.monthlyErr
}

var _ Backend = (*fakeBackend)(nil)

func ptr(v float64) *float64 { return &v }

func entryAt(id uint, name string, cal float64, qty float64, at time.Time) models.FoodEntry {
	e := models.FoodEntry{UserID: 1, FoodName: name, Calories: cal, Quantity: qty}
	e.ID = id
	e.CreatedAt = at
	return e
}
