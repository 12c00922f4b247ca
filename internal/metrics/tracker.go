package metrics

import (
	"errors"
	"sync"
	"time"

	"github.com/KirkDiggler/wordchain/internal/common/clock"
	"github.com/KirkDiggler/wordchain/internal/models"
)

// Config holds configuration for the metrics tracker
type Config struct {
	// Clock provides time functionality
	Clock clock.Clock
}

// Snapshot is a point-in-time view of tracker state
type Snapshot struct {
	ActiveRooms   int
	TotalRooms    int64
	TotalTurns    int64
	TotalWords    int64
	TotalTimeouts int64
	TotalErrors   int64
	Rooms         []models.RoomMetrics
}

// Tracker keeps per-room counters and folds them into process totals when
// rooms end
type Tracker struct {
	clock clock.Clock

	mu            sync.Mutex
	rooms         map[int64]*models.RoomMetrics
	totalRooms    int64
	totalTurns    int64
	totalWords    int64
	totalTimeouts int64
	totalErrors   int64
}

// New creates a new metrics tracker
func New(cfg *Config) (*Tracker, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	clockImpl := cfg.Clock
	if clockImpl == nil {
		clockImpl = &clock.DefaultClock{}
	}

	return &Tracker{
		clock: clockImpl,
		rooms: make(map[int64]*models.RoomMetrics),
	}, nil
}

// RecordStart begins tracking a room
func (t *Tracker) RecordStart(roomID int64, playerCount int) {
	now := t.clock.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	t.totalRooms++
	t.rooms[roomID] = &models.RoomMetrics{
		RoomID:       roomID,
		PlayerCount:  playerCount,
		StartedAt:    now,
		LastActivity: now,
	}
}

// Event identifies what happened in a room
type Event int

const (
	EventTurn Event = iota
	EventWordAccepted
	EventTimeout
	EventError
)

// RecordActivity bumps the counter for an event and refreshes the room's
// activity timestamp. Unknown rooms are ignored.
func (t *Tracker) RecordActivity(roomID int64, event Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	m, ok := t.rooms[roomID]
	if !ok {
		return
	}

	switch event {
	case EventTurn:
		m.TurnCount++
	case EventWordAccepted:
		m.WordsAccepted++
	case EventTimeout:
		m.Timeouts++
	case EventError:
		m.Errors++
	}

	m.LastActivity = t.clock.Now()
}

// SetPlayerCount updates the tracked player count for a room
func (t *Tracker) SetPlayerCount(roomID int64, playerCount int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if m, ok := t.rooms[roomID]; ok {
		m.PlayerCount = playerCount
	}
}

// Remove stops tracking a room, folding its counters into the totals
func (t *Tracker) Remove(roomID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	m, ok := t.rooms[roomID]
	if !ok {
		return
	}

	t.totalTurns += int64(m.TurnCount)
	t.totalWords += int64(m.WordsAccepted)
	t.totalTimeouts += int64(m.Timeouts)
	t.totalErrors += int64(m.Errors)

	delete(t.rooms, roomID)
}

// Room returns a copy of a room's metrics
func (t *Tracker) Room(roomID int64) (models.RoomMetrics, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	m, ok := t.rooms[roomID]
	if !ok {
		return models.RoomMetrics{}, false
	}
	return *m, true
}

// IdleRooms returns the IDs of rooms with no activity since the cutoff
func (t *Tracker) IdleRooms(olderThan time.Duration) []int64 {
	cutoff := t.clock.Now().Add(-olderThan)

	t.mu.Lock()
	defer t.mu.Unlock()

	var idle []int64
	for id, m := range t.rooms {
		if m.LastActivity.Before(cutoff) {
			idle = append(idle, id)
		}
	}
	return idle
}

// ActiveRoomCount returns the number of rooms currently tracked
func (t *Tracker) ActiveRoomCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.rooms)
}

// Snapshot returns current per-room metrics plus process totals. Totals
// include counters from rooms that have already ended.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := Snapshot{
		ActiveRooms:   len(t.rooms),
		TotalRooms:    t.totalRooms,
		TotalTurns:    t.totalTurns,
		TotalWords:    t.totalWords,
		TotalTimeouts: t.totalTimeouts,
		TotalErrors:   t.totalErrors,
	}

	for _, m := range t.rooms {
		snap.TotalTurns += int64(m.TurnCount)
		snap.TotalWords += int64(m.WordsAccepted)
		snap.TotalTimeouts += int64(m.Timeouts)
		snap.TotalErrors += int64(m.Errors)
		snap.Rooms = append(snap.Rooms, *m)
	}

	return snap
}
