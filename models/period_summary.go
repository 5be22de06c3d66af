package models

// PeriodSummary is the server-computed roll-up over a week or month. It is
// derived by SQL aggregation at read time and never persisted.
type PeriodSummary struct {
    TotalCalories float64 `json:"total_calories"`
    TotalProtein  float64 `json:"total_protein"`
    TotalCarbs    float64 `json:"total_carbs"`
    TotalFats     float64 `json:"total_fats"`
    EntryCount    int64   `json:"entry_count"`
    DaysLogged    int64   `json:"days_logged"`
    PeriodStart   string  `json:"period_start"`
    PeriodEnd     string  `json:"period_end"`
    PeriodLabel   string  `json:"period_label"`
}
