package client

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ibrahim-qi/macro-logger-app/models"
	"github.com/ibrahim-qi/macro-logger-app/services"
	"github.com/ibrahim-qi/macro-logger-app/utils"
)

// DayLog holds the entries of the single displayed day. The remote store is
// the source of truth; this is a read-through, write-through cache that stays
// consistent across manual reloads, edits and realtime inserts.
//
// Every mutation is pessimistic: the server confirms first, local state
// changes second, so a failed request can never leave phantom rows behind.
type DayLog struct {
	backend Backend
	sess    *Session

	mu      sync.Mutex
	date    time.Time // midnight of the displayed day
	gen     uint64    // bumped by each Load; stale responses carry an old value
	entries []models.FoodEntry
	err     error
}

func NewDayLog(backend Backend, sess *Session) *DayLog {
	return &DayLog{backend: backend, sess: sess}
}

// Load fetches the given day's entries and replaces the held set. A Load that
// is overtaken by a newer one discards its response instead of committing it
// (stale-response guard): each fetch is tagged with the generation it was
// started under and commits only if no later Load has moved it on.
//
// On failure the previous set is cleared and the error is retained for Err.
func (d *DayLog) Load(ctx context.Context, day time.Time) error {
	start := utils.DayStart(day)

	d.mu.Lock()
	d.date = start
	d.gen++
	gen := d.gen
	d.mu.Unlock()

	fetched, err := d.backend.FetchEntries(ctx, d.sess, start)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.gen != gen {
		// a newer Load won the race; this response no longer matters
		return nil
	}
	if err != nil {
		d.entries = nil
		d.err = err
		return err
	}
	sortNewestFirst(fetched)
	d.entries = fetched
	d.err = nil
	return nil
}

// InsertLocal merges a server-pushed insert. Events for any day other than
// the displayed one are ignored, and an entry that already arrived through
// Load (or vice versa) is never duplicated.
func (d *DayLog) InsertLocal(entry models.FoodEntry) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.date.IsZero() || !utils.SameDay(entry.CreatedAt, d.date) {
		return
	}
	for _, held := range d.entries {
		if held.ID == entry.ID {
			return
		}
	}
	d.entries = append(d.entries, entry)
	sortNewestFirst(d.entries)
}

// Update sends the patch and, only on success, replaces the local copy with
// the server-returned row. On failure nothing local changes, so the edit UI
// can retry against unchanged state.
func (d *DayLog) Update(ctx context.Context, id uint, patch services.EntryPatch) (*models.FoodEntry, error) {
	updated, err := d.backend.UpdateEntry(ctx, d.sess, id, patch)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	kept := d.entries[:0]
	for _, held := range d.entries {
		if held.ID != id {
			kept = append(kept, held)
		}
	}
	d.entries = kept
	if !d.date.IsZero() && utils.SameDay(updated.CreatedAt, d.date) {
		d.entries = append(d.entries, *updated)
		sortNewestFirst(d.entries)
	}
	return updated, nil
}

// Remove deletes remotely, then locally. No optimistic removal: a failed
// delete leaves the row visible instead of flashing it away and back.
func (d *DayLog) Remove(ctx context.Context, id uint) error {
	if err := d.backend.DeleteEntry(ctx, d.sess, id); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	kept := d.entries[:0]
	for _, held := range d.entries {
		if held.ID != id {
			kept = append(kept, held)
		}
	}
	d.entries = kept
	return nil
}

// Entries returns a snapshot of the held set, newest first.
func (d *DayLog) Entries() []models.FoodEntry {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.FoodEntry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Totals derives the day's totals from the held set on every call.
func (d *DayLog) Totals() DailyTotals {
	d.mu.Lock()
	defer d.mu.Unlock()
	return CalculateTotals(d.entries)
}

// Date returns the currently displayed day (midnight), zero before first Load.
func (d *DayLog) Date() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.date
}

// Err reports the failure of the most recent Load, nil once one succeeds.
func (d *DayLog) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

func sortNewestFirst(entries []models.FoodEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		}
		return entries[i].ID > entries[j].ID
	})
}
