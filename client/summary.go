package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ibrahim-qi/macro-logger-app/models"
	"github.com/ibrahim-qi/macro-logger-app/utils"
)

// PeriodState is one aggregate slot: the latest summary plus its own loading
// and error flags.
type PeriodState struct {
	Summary models.PeriodSummary
	Loading bool
	Err     error
}

type periodSlot struct {
	state PeriodState
	seq   uint64 // bumped per request; stale responses carry an old value
}

// SummaryClient fetches the server-computed weekly and monthly roll-ups. The
// two periods are fully independent: each keeps its own loading/error state,
// and a failure in one never clears the other's result.
type SummaryClient struct {
	backend Backend
	sess    *Session

	mu      sync.Mutex
	weekly  periodSlot
	monthly periodSlot
}

func NewSummaryClient(backend Backend, sess *Session) *SummaryClient {
	return &SummaryClient{backend: backend, sess: sess}
}

// LoadWeekly fetches the summary of the week containing day. An empty result
// set is rendered as a zero-valued summary for that week, never as nothing,
// so callers only ever branch on EntryCount.
func (c *SummaryClient) LoadWeekly(ctx context.Context, day time.Time) error {
	if day.IsZero() {
		return fmt.Errorf("%w: target date required", ErrValidation)
	}

	seq := c.begin(&c.weekly)
	rows, err := c.backend.WeeklySummary(ctx, c.sess, day)
	return c.commit(&c.weekly, seq, rows, err, func() models.PeriodSummary {
		return zeroWeekly(day)
	})
}

// LoadMonthly fetches one calendar month. The month is validated locally
// before any remote call.
func (c *SummaryClient) LoadMonthly(ctx context.Context, year, month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month must be 1-12", ErrValidation)
	}
	if year < 1 {
		return fmt.Errorf("%w: year must be positive", ErrValidation)
	}

	seq := c.begin(&c.monthly)
	rows, err := c.backend.MonthlySummary(ctx, c.sess, year, month)
	return c.commit(&c.monthly, seq, rows, err, func() models.PeriodSummary {
		return zeroMonthly(year, time.Month(month))
	})
}

func (c *SummaryClient) Weekly() PeriodState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.weekly.state
}

func (c *SummaryClient) Monthly() PeriodState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.monthly.state
}

func (c *SummaryClient) begin(slot *periodSlot) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	slot.seq++
	slot.state.Loading = true
	return slot.seq
}

// commit stores the outcome unless a newer request for the same slot has
// started in the meantime (stale-response guard per request ordering).
func (c *SummaryClient) commit(slot *periodSlot, seq uint64, rows []models.PeriodSummary, err error, zero func() models.PeriodSummary) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if slot.seq != seq {
		return nil
	}
	slot.state.Loading = false
	if err != nil {
		slot.state.Err = err
		return err
	}
	slot.state.Err = nil
	if len(rows) == 0 {
		slot.state.Summary = zero()
	} else {
		slot.state.Summary = rows[0]
	}
	return nil
}

func zeroWeekly(day time.Time) models.PeriodSummary {
	from, to := utils.WeekWindow(day)
	end := to.AddDate(0, 0, -1)
	return models.PeriodSummary{
		PeriodStart: from.Format(utils.DateLayout),
		PeriodEnd:   end.Format(utils.DateLayout),
		PeriodLabel: fmt.Sprintf("%s – %s", from.Format("Jan 2"), end.Format("Jan 2, 2006")),
	}
}

func zeroMonthly(year int, month time.Month) models.PeriodSummary {
	from, to := utils.MonthWindow(year, month)
	return models.PeriodSummary{
		PeriodStart: from.Format(utils.DateLayout),
		PeriodEnd:   to.AddDate(0, 0, -1).Format(utils.DateLayout),
		PeriodLabel: from.Format("January 2006"),
	}
}

// ---------- period navigation ----------

// PrevWeek and NextWeek step the anchor date a whole week at a time, always
// landing on a Monday.
func PrevWeek(day time.Time) time.Time {
	start, _ := utils.WeekWindow(day)
	return start.AddDate(0, 0, -7)
}

func NextWeek(day time.Time) time.Time {
	start, _ := utils.WeekWindow(day)
	return start.AddDate(0, 0, 7)
}

// NextWeekDisabled reports whether stepping forward from day would land in a
// week that has not started yet: disabled exactly when the candidate week
// start is strictly after the current real-world week start.
func NextWeekDisabled(day, now time.Time) bool {
	currentStart, _ := utils.WeekWindow(now)
	return NextWeek(day).After(currentStart)
}

func PrevMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return t.Year(), t.Month()
}

func NextMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return t.Year(), t.Month()
}

// NextMonthDisabled mirrors NextWeekDisabled at month granularity.
func NextMonthDisabled(year int, month time.Month, now time.Time) bool {
	ny, nm := NextMonth(year, month)
	candidate := time.Date(ny, nm, 1, 0, 0, 0, 0, now.Location())
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return candidate.After(current)
}
