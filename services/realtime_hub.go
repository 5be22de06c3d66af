package services

import (
	"encoding/json"
	"sync"

	"github.com/ibrahim-qi/macro-logger-app/models"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Event kinds pushed over the websocket channel. Only inserts are pushed;
// edits and deletes rely on the client reloading its day.
const EventEntryCreated = "entry.created"

type EntryEvent struct {
	Kind  string           `json:"kind"`
	Entry models.FoodEntry `json:"entry"`
}

type WSClient struct {
	ID     string
	UserID uint
	Conn   *websocket.Conn

	// writes to a gorilla conn must be serialized
	mu sync.Mutex
}

func NewWSClient(userID uint, conn *websocket.Conn) *WSClient {
	return &WSClient{ID: uuid.NewString(), UserID: userID, Conn: conn}
}

func (c *WSClient) write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// RealtimeHub fans entry events out to every websocket connection a user has
// open. Connections register on upgrade and unregister when their read loop
// ends.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
	log     *zap.Logger
}

func NewRealtimeHub(log *zap.Logger) *RealtimeHub {
	if log == nil {
		log = zap.NewNop()
	}
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{}), log: log}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
	h.log.Debug("ws client registered", zap.String("client", c.ID), zap.Uint("user", c.UserID))
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// BroadcastEntryCreated pushes an entry.created event to every connection the
// owning user has open. Write failures are logged and otherwise ignored; the
// dead connection cleans itself up when its read loop errors.
func (h *RealtimeHub) BroadcastEntryCreated(entry models.FoodEntry) {
	msg, err := json.Marshal(EntryEvent{Kind: EventEntryCreated, Entry: entry})
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[entry.UserID] {
		if err := c.write(websocket.TextMessage, msg); err != nil {
			h.log.Debug("ws write failed", zap.String("client", c.ID), zap.Error(err))
		}
	}
}
