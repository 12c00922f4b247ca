package isolation

import (
	"errors"
	"sync"
	"time"

	"github.com/KirkDiggler/wordchain/internal/common/clock"
)

// Config holds configuration for the isolation manager
type Config struct {
	// Clock provides time functionality
	Clock clock.Clock
}

// gate serializes operations for one room
type gate struct {
	mu         sync.Mutex
	lastAccess time.Time
}

// Manager hands out per-room locks so rooms never block each other. Gates
// are created lazily and reclaimed once a room has been idle long enough.
type Manager struct {
	clock clock.Clock

	mu    sync.Mutex
	gates map[int64]*gate
}

// New creates a new isolation manager
func New(cfg *Config) (*Manager, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	clockImpl := cfg.Clock
	if clockImpl == nil {
		clockImpl = &clock.DefaultClock{}
	}

	return &Manager{
		clock: clockImpl,
		gates: make(map[int64]*gate),
	}, nil
}

// WithRoomLock runs op while holding the room's lock. The lock is released
// even when op returns an error.
func (m *Manager) WithRoomLock(roomID int64, op func() error) error {
	g := m.gateFor(roomID)

	g.mu.Lock()
	defer g.mu.Unlock()

	return op()
}

// ReclaimIdle drops gates whose rooms have not been touched since the
// cutoff, and returns how many were dropped. A gate currently held is never
// reclaimed.
func (m *Manager) ReclaimIdle(olderThan time.Duration) int {
	cutoff := m.clock.Now().Add(-olderThan)

	m.mu.Lock()
	defer m.mu.Unlock()

	reclaimed := 0
	for id, g := range m.gates {
		if !g.lastAccess.Before(cutoff) {
			continue
		}
		if !g.mu.TryLock() {
			continue
		}
		g.mu.Unlock()
		delete(m.gates, id)
		reclaimed++
	}
	return reclaimed
}

// ActiveRooms returns the number of rooms with a live gate
func (m *Manager) ActiveRooms() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.gates)
}

func (m *Manager) gateFor(roomID int64) *gate {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.gates[roomID]
	if !ok {
		g = &gate{}
		m.gates[roomID] = g
	}
	g.lastAccess = m.clock.Now()
	return g
}
