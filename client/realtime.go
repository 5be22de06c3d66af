package client

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ibrahim-qi/macro-logger-app/services"
	"github.com/ibrahim-qi/macro-logger-app/utils"

	"github.com/gorilla/websocket"
)

// Subscription is the handle returned by Subscribe. Every Subscribe must be
// paired with an Unsubscribe before a new subscription for another date is
// opened, otherwise two reader loops would both feed the store.
type Subscription struct {
	conn *websocket.Conn
	done chan struct{}
	once sync.Once
}

// Subscribe opens the push channel and merges entry.created events for the
// given date into the store. Only a single-date view receives live updates:
// when the displayed date changes the caller tears this subscription down and
// opens a new one, which keeps the date filter correct.
func Subscribe(api *API, sess *Session, date time.Time, store *DayLog) (*Subscription, error) {
	conn, _, err := websocket.DefaultDialer.Dial(api.WSURL(sess), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	day := utils.DayStart(date)
	sub := &Subscription{conn: conn, done: make(chan struct{})}

	go func() {
		defer close(sub.done)
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var ev services.EntryEvent
			if err := json.Unmarshal(msg, &ev); err != nil {
				continue
			}
			if ev.Kind != services.EventEntryCreated {
				continue
			}
			if !utils.SameDay(ev.Entry.CreatedAt, day) {
				continue
			}
			store.InsertLocal(ev.Entry)
		}
	}()

	return sub, nil
}

// Unsubscribe closes the channel and waits for the reader loop to exit, so a
// caller that immediately resubscribes can never receive duplicate inserts
// from two parallel subscriptions.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		_ = s.conn.Close()
		<-s.done
	})
}
