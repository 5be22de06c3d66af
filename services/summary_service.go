package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ibrahim-qi/macro-logger-app/models"
	"github.com/ibrahim-qi/macro-logger-app/utils"

	"gorm.io/gorm"
)

// SummaryService computes the weekly/monthly roll-ups in SQL. The result is
// zero or one row: an empty slice means nothing was logged in the period, and
// it is the client's job to render that as a zero-valued summary.
type SummaryService struct {
	db *gorm.DB
}

func NewSummaryService(db *gorm.DB) *SummaryService {
	return &SummaryService{db: db}
}

// Weekly aggregates the ISO week (Monday start) containing day.
func (s *SummaryService) Weekly(ctx context.Context, userID uint, day time.Time) ([]models.PeriodSummary, error) {
	from, to := utils.WeekWindow(day)
	end := to.AddDate(0, 0, -1) // inclusive display end
	label := fmt.Sprintf("%s – %s", from.Format("Jan 2"), end.Format("Jan 2, 2006"))
	return s.aggregate(ctx, userID, from, to, end, label)
}

// Monthly aggregates one calendar month. The month is validated at the API
// boundary; callers here pass a real time.Month.
func (s *SummaryService) Monthly(ctx context.Context, userID uint, year int, month time.Month) ([]models.PeriodSummary, error) {
	from, to := utils.MonthWindow(year, month)
	end := to.AddDate(0, 0, -1)
	return s.aggregate(ctx, userID, from, to, end, from.Format("January 2006"))
}

type summaryRow struct {
	TotalCalories float64
	TotalProtein  float64
	TotalCarbs    float64
	TotalFats     float64
	EntryCount    int64
	DaysLogged    int64
}

func (s *SummaryService) aggregate(ctx context.Context, userID uint, from, to, displayEnd time.Time, label string) ([]models.PeriodSummary, error) {
	var row summaryRow
	err := s.db.WithContext(ctx).
		Model(&models.FoodEntry{}).
		Select(`COALESCE(SUM(calories * quantity), 0) AS total_calories,
			COALESCE(SUM(COALESCE(protein, 0) * quantity), 0) AS total_protein,
			COALESCE(SUM(COALESCE(carbs, 0) * quantity), 0) AS total_carbs,
			COALESCE(SUM(COALESCE(fats, 0) * quantity), 0) AS total_fats,
			COUNT(*) AS entry_count,
			COUNT(DISTINCT created_at::date) AS days_logged`).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.EntryCount == 0 {
		return []models.PeriodSummary{}, nil
	}
	return []models.PeriodSummary{{
		TotalCalories: row.TotalCalories,
		TotalProtein:  row.TotalProtein,
		TotalCarbs:    row.TotalCarbs,
		TotalFats:     row.TotalFats,
		EntryCount:    row.EntryCount,
		DaysLogged:    row.DaysLogged,
		PeriodStart:   from.Format(utils.DateLayout),
		PeriodEnd:     displayEnd.Format(utils.DateLayout),
		PeriodLabel:   label,
	}}, nil
}
