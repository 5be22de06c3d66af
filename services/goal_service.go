package services

import (
	"time"

	"github.com/ibrahim-qi/macro-logger-app/models"
	"github.com/ibrahim-qi/macro-logger-app/utils"

	"gorm.io/gorm"
)

type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

type GoalsInput struct {
	DailyCalories float64 `json:"daily_calories" binding:"required,gt=0"`
	DailyProtein  float64 `json:"daily_protein" binding:"required,gt=0"`
	DailyCarbs    float64 `json:"daily_carbs" binding:"required,gt=0"`
	DailyFats     float64 `json:"daily_fats" binding:"required,gt=0"`
}

type MacroProgress struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
	Percent  float64 `json:"percent"`
}

type GoalProgress struct {
	Date     string                   `json:"date"`
	Goals    models.UserGoals         `json:"goals"`
	Progress map[string]MacroProgress `json:"progress"`
}

// GetOrCreate returns the user's goals row, creating it with the defaults the
// first time. A missing row is an implementation detail, never an error.
func (s *GoalService) GetOrCreate(userID uint) (*models.UserGoals, error) {
	goals := models.UserGoals{UserID: userID}
	err := s.db.
		Where("user_id = ?", userID).
		Attrs(models.UserGoals{
			DailyCalories: models.DefaultDailyCalories,
			DailyProtein:  models.DefaultDailyProtein,
			DailyCarbs:    models.DefaultDailyCarbs,
			DailyFats:     models.DefaultDailyFats,
		}).
		FirstOrCreate(&goals).Error
	if err != nil {
		return nil, err
	}
	return &goals, nil
}

// Upsert overwrites the user's targets, creating the row if it does not exist.
func (s *GoalService) Upsert(userID uint, in GoalsInput) (*models.UserGoals, error) {
	goals, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	goals.DailyCalories = in.DailyCalories
	goals.DailyProtein = in.DailyProtein
	goals.DailyCarbs = in.DailyCarbs
	goals.DailyFats = in.DailyFats
	if err := s.db.Save(goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// ProgressForDate sums the day's entries (field × quantity) against the user's
// targets. Percent is capped at 100 since the UI renders progress bars.
func (s *GoalService) ProgressForDate(userID uint, day time.Time) (*GoalProgress, error) {
	goals, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	from, to := utils.DayWindow(day)
	var entries []models.FoodEntry
	if err := s.db.
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Find(&entries).Error; err != nil {
		return nil, err
	}

	var cals, prot, carbs, fats float64
	for _, e := range entries {
		cals += e.Calories * e.Quantity
		if e.Protein != nil {
			prot += *e.Protein * e.Quantity
		}
		if e.Carbs != nil {
			carbs += *e.Carbs * e.Quantity
		}
		if e.Fats != nil {
			fats += *e.Fats * e.Quantity
		}
	}

	pct := func(consumed, target float64) float64 {
		if target <= 0 {
			return 0
		}
		p := consumed / target * 100
		if p > 100 {
			return 100
		}
		return p
	}

	return &GoalProgress{
		Date:  from.Format(utils.DateLayout),
		Goals: *goals,
		Progress: map[string]MacroProgress{
			"calories": {Consumed: cals, Goal: goals.DailyCalories, Percent: pct(cals, goals.DailyCalories)},
			"protein":  {Consumed: prot, Goal: goals.DailyProtein, Percent: pct(prot, goals.DailyProtein)},
			"carbs":    {Consumed: carbs, Goal: goals.DailyCarbs, Percent: pct(carbs, goals.DailyCarbs)},
			"fats":     {Consumed: fats, Goal: goals.DailyFats, Percent: pct(fats, goals.DailyFats)},
		},
	}, nil
}
