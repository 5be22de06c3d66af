package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ibrahim-qi/macro-logger-app/models"
)

func TestLoadWeeklySynthesizesZeroSummary(t *testing.T) {
	backend := newFakeBackend() // returns no rows
	c := NewSummaryClient(backend, testSession)

	day := mustDate(t, "2024-03-02")
	if err := c.LoadWeekly(context.Background(), day); err != nil {
		t.Fatalf("LoadWeekly: %v", err)
	}

	state := c.Weekly()
	if state.Loading || state.Err != nil {
		t.Fatalf("unexpected state: %+v", state)
	}
	s := state.Summary
	if s.EntryCount != 0 || s.DaysLogged != 0 || s.TotalCalories != 0 {
		t.Errorf("empty period must yield a zero summary, got %+v", s)
	}
	if s.PeriodStart != "2024-02-26" || s.PeriodEnd != "2024-03-03" {
		t.Errorf("zero summary should still carry the period window, got %s..%s", s.PeriodStart, s.PeriodEnd)
	}
}

func TestLoadMonthlyUsesServerRow(t *testing.T) {
	backend := newFakeBackend()
	backend.monthly = []models.PeriodSummary{{
		TotalCalories: 42000, TotalProtein: 3100, EntryCount: 58, DaysLogged: 27,
		PeriodStart: "2024-03-01", PeriodEnd: "2024-03-31", PeriodLabel: "March 2024",
	}}

	c := NewSummaryClient(backend, testSession)
	if err := c.LoadMonthly(context.Background(), 2024, 3); err != nil {
		t.Fatalf("LoadMonthly: %v", err)
	}
	if got := c.Monthly().Summary.EntryCount; got != 58 {
		t.Errorf("EntryCount = %d, want 58", got)
	}
}

func TestWeeklyAndMonthlyAreIndependent(t *testing.T) {
	backend := newFakeBackend()
	backend.weekly = []models.PeriodSummary{{TotalCalories: 9000, EntryCount: 12, DaysLogged: 6}}
	backend.monthlyErr = ErrNetwork

	c := NewSummaryClient(backend, testSession)
	if err := c.LoadWeekly(context.Background(), mustDate(t, "2024-03-02")); err != nil {
		t.Fatalf("LoadWeekly: %v", err)
	}
	if err := c.LoadMonthly(context.Background(), 2024, 3); !errors.Is(err, ErrNetwork) {
		t.Fatalf("LoadMonthly error = %v, want ErrNetwork", err)
	}

	// the monthly failure must not block or clear the weekly result
	if got := c.Weekly(); got.Err != nil || got.Summary.EntryCount != 12 {
		t.Errorf("weekly state disturbed by monthly failure: %+v", got)
	}
	if got := c.Monthly(); got.Err == nil {
		t.Error("monthly state should carry its own error")
	}
}

func TestLoadMonthlyValidatesBeforeCalling(t *testing.T) {
	backend := newFakeBackend()
	c := NewSummaryClient(backend, testSession)

	for _, month := range []int{0, 13, -2} {
		if err := c.LoadMonthly(context.Background(), 2024, month); !errors.Is(err, ErrValidation) {
			t.Errorf("month %d: error = %v, want ErrValidation", month, err)
		}
	}
	if backend.monthlyCalls != 0 {
		t.Errorf("invalid month must never reach the backend, calls = %d", backend.monthlyCalls)
	}
}

func TestNextWeekDisabledAtPresentBoundary(t *testing.T) {
	now := time.Date(2024, 3, 6, 15, 0, 0, 0, time.Local) // Wednesday, week of Mar 4

	cases := []struct {
		viewing  string
		disabled bool
	}{
		{"2024-03-06", true},  // current week: next would be the future
		{"2024-02-28", false}, // previous week: can step back up to current
		{"2024-01-01", false},
	}
	for _, c := range cases {
		day := mustDate(t, c.viewing)
		if got := NextWeekDisabled(day, now); got != c.disabled {
			t.Errorf("NextWeekDisabled(%s) = %v, want %v", c.viewing, got, c.disabled)
		}
	}
}

func TestNextMonthDisabledAtPresentBoundary(t *testing.T) {
	now := time.Date(2024, 3, 6, 15, 0, 0, 0, time.Local)

	cases := []struct {
		year     int
		month    time.Month
		disabled bool
	}{
		{2024, time.March, true},
		{2024, time.February, false},
		{2023, time.December, false},
	}
	for _, c := range cases {
		if got := NextMonthDisabled(c.year, c.month, now); got != c.disabled {
			t.Errorf("NextMonthDisabled(%d-%s) = %v, want %v", c.year, c.month, got, c.disabled)
		}
	}
}

func TestWeekNavigationLandsOnMonday(t *testing.T) {
	day := mustDate(t, "2024-03-06") // Wednesday
	if got := NextWeek(day).Format("2006-01-02"); got != "2024-03-11" {
		t.Errorf("NextWeek = %s, want 2024-03-11", got)
	}
	if got := PrevWeek(day).Format("2006-01-02"); got != "2024-02-26" {
		t.Errorf("PrevWeek = %s, want 2024-02-26", got)
	}
}

func TestMonthNavigationWrapsYear(t *testing.T) {
	y, m := NextMonth(2023, time.December)
	if y != 2024 || m != time.January {
		t.Errorf("NextMonth(2023-12) = %d-%s", y, m)
	}
	y, m = PrevMonth(2024, time.January)
	if y != 2023 || m != time.December {
		t.Errorf("PrevMonth(2024-01) = %d-%s", y, m)
	}
}
