package admission

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/wordchain/internal/common/clock"
)

// Level classifies system load when a room asks to be admitted
type Level string

const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

// maxWarnings bounds the retained warning history
const maxWarnings = 50

// Warning records a high or critical load observation
type Warning struct {
	At     time.Time
	Level  Level
	Usage  float64
	Reason string
}

// Decision is the outcome of an admission check
type Decision struct {
	Allowed bool
	Level   Level
	Reason  string
}

// Config holds configuration for the admission controller
type Config struct {
	// MaxRooms is the hard cap on concurrently tracked rooms
	MaxRooms int

	// MaxPlayersPerRoom caps the requested room size
	MaxPlayersPerRoom int

	// Clock provides time functionality
	Clock clock.Clock

	Logger zerolog.Logger
}

// Controller decides whether new rooms may be created under current load
type Controller struct {
	maxRooms   int
	maxPlayers int
	clock      clock.Clock
	logger     zerolog.Logger

	mu       sync.Mutex
	warnings []Warning
}

// New creates a new admission controller
func New(cfg *Config) (*Controller, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.MaxRooms <= 0 {
		return nil, errors.New("max rooms must be positive")
	}

	if cfg.MaxPlayersPerRoom <= 0 {
		return nil, errors.New("max players per room must be positive")
	}

	clockImpl := cfg.Clock
	if clockImpl == nil {
		clockImpl = &clock.DefaultClock{}
	}

	return &Controller{
		maxRooms:   cfg.MaxRooms,
		maxPlayers: cfg.MaxPlayersPerRoom,
		clock:      clockImpl,
		logger:     cfg.Logger,
	}, nil
}

// Classify maps a usage ratio to a load level
func (c *Controller) Classify(usage float64) Level {
	switch {
	case usage >= 0.9:
		return LevelCritical
	case usage >= 0.7:
		return LevelHigh
	case usage >= 0.4:
		return LevelMedium
	default:
		return LevelLow
	}
}

// CanAdmit decides whether a new room with the requested player count may be
// created, given the number of rooms currently tracked. Critical load rejects
// the room; high load admits it but records a warning.
func (c *Controller) CanAdmit(roomCount, requestedPlayers int) *Decision {
	if requestedPlayers > c.maxPlayers {
		return &Decision{
			Allowed: false,
			Level:   c.Classify(c.usage(roomCount)),
			Reason:  fmt.Sprintf("room size %d exceeds limit of %d", requestedPlayers, c.maxPlayers),
		}
	}

	if roomCount >= c.maxRooms {
		c.recordWarning(LevelCritical, 1.0, "room limit reached")
		return &Decision{
			Allowed: false,
			Level:   LevelCritical,
			Reason:  fmt.Sprintf("room limit of %d reached", c.maxRooms),
		}
	}

	usage := c.usage(roomCount)
	level := c.Classify(usage)

	switch level {
	case LevelCritical:
		c.recordWarning(level, usage, "load critical, room rejected")
		return &Decision{
			Allowed: false,
			Level:   level,
			Reason:  fmt.Sprintf("system at %.0f%% capacity", usage*100),
		}
	case LevelHigh:
		c.recordWarning(level, usage, "load high, room admitted")
	}

	return &Decision{
		Allowed: true,
		Level:   level,
	}
}

// RecentWarnings returns the retained warning history, oldest first
func (c *Controller) RecentWarnings() []Warning {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Warning, len(c.warnings))
	copy(out, c.warnings)
	return out
}

func (c *Controller) usage(roomCount int) float64 {
	return float64(roomCount) / float64(c.maxRooms)
}

func (c *Controller) recordWarning(level Level, usage float64, reason string) {
	c.logger.Warn().
		Str("level", string(level)).
		Float64("usage", usage).
		Msg(reason)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.warnings = append(c.warnings, Warning{
		At:     c.clock.Now(),
		Level:  level,
		Usage:  usage,
		Reason: reason,
	})

	if len(c.warnings) > maxWarnings {
		c.warnings = c.warnings[len(c.warnings)-maxWarnings:]
	}
}
