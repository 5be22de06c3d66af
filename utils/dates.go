package utils

import "time"

// Date layout used everywhere a calendar day travels over the wire.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
    return time.ParseInLocation(DateLayout, s, time.Local)
}

func DayStart(t time.Time) time.Time {
    return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayWindow returns the half-open [00:00, next midnight) window of t's day.
func DayWindow(t time.Time) (time.Time, time.Time) {
    start := DayStart(t)
    return start, start.AddDate(0, 0, 1)
}

// WeekWindow returns the half-open window of the ISO week (Monday start)
// containing t.
func WeekWindow(t time.Time) (time.Time, time.Time) {
    offset := (int(t.Weekday()) + 6) % 7
    start := DayStart(t).AddDate(0, 0, -offset)
    return start, start.AddDate(0, 0, 7)
}

// MonthWindow returns the half-open window of the given calendar month.
func MonthWindow(year int, month time.Month) (time.Time, time.Time) {
    start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
    return start, start.AddDate(0, 1, 0)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
    ay, am, ad := a.Date()
    by, bm, bd := b.Date()
    return ay == by && am == bm && ad == bd
}
