package timer

import (
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/wordchain/internal/common/clock"
	"github.com/KirkDiggler/wordchain/internal/common/uuid"
)

// TimeoutFunc is called once when a countdown expires.
type TimeoutFunc func(key int64)

// WarningFunc is called once per configured offset as remaining time crosses it.
type WarningFunc func(key int64, remaining time.Duration)

// Config holds configuration for the timer engine
type Config struct {
	// Clock measures elapsed time
	Clock clock.Clock

	// UUIDGenerator produces generation tokens for countdowns
	UUIDGenerator uuid.UUID

	// TickInterval is how often a countdown re-checks the clock
	TickInterval time.Duration

	// Logger for callback failures
	Logger zerolog.Logger
}

// Engine runs one cancellable countdown per key. Starting a key that already
// has a countdown cancels and replaces it: last writer wins.
type Engine struct {
	config *Config

	mu     sync.Mutex
	timers map[int64]*countdown
}

// countdown is one generation of a key's timer. A fresh Start on the same key
// creates a new countdown with its own token, so a superseded generation can
// never deregister its successor.
type countdown struct {
	token  string
	cancel chan struct{}
}

// New creates a timer engine
func New(cfg *Config) *Engine {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Clock == nil {
		cfg.Clock = &clock.DefaultClock{}
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.New()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Second
	}

	return &Engine{
		config: cfg,
		timers: make(map[int64]*countdown),
	}
}

// Start begins a countdown for key, cancelling any countdown already running
// for it. Warnings fire once per offset, in descending order, when remaining
// time is at or below the offset; onTimeout fires when the duration elapses.
// A zero or negative duration fires onTimeout immediately with no warnings.
// Returns the countdown's generation token.
func (e *Engine) Start(key int64, duration time.Duration, onTimeout TimeoutFunc, onWarning WarningFunc, offsets []time.Duration) string {
	c := &countdown{
		token:  e.config.UUIDGenerator.NewUUID(),
		cancel: make(chan struct{}),
	}

	e.mu.Lock()
	if old, ok := e.timers[key]; ok {
		close(old.cancel)
	}
	e.timers[key] = c
	e.mu.Unlock()

	go e.run(key, c, duration, onTimeout, onWarning, offsets)

	return c.token
}

// Cancel stops the countdown for key before it fires. Returns false when no
// countdown is running; cancelling twice returns true then false.
func (e *Engine) Cancel(key int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.timers[key]
	if !ok {
		return false
	}
	delete(e.timers, key)
	close(c.cancel)
	return true
}

// Active reports whether a countdown is running for key.
func (e *Engine) Active(key int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.timers[key]
	return ok
}

// ActiveCount returns the number of running countdowns.
func (e *Engine) ActiveCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.timers)
}

// CancelAll stops every running countdown.
func (e *Engine) CancelAll() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for key, c := range e.timers {
		close(c.cancel)
		delete(e.timers, key)
	}
}

func (e *Engine) run(key int64, c *countdown, duration time.Duration, onTimeout TimeoutFunc, onWarning WarningFunc, offsets []time.Duration) {
	defer e.deregister(key, c)

	if duration <= 0 {
		e.fireTimeout(key, onTimeout)
		return
	}

	sorted := append([]time.Duration(nil), offsets...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })
	fired := make(map[time.Duration]bool, len(sorted))

	start := e.config.Clock.Now()
	ticker := time.NewTicker(e.config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.cancel:
			return

		case <-ticker.C:
			elapsed := e.config.Clock.Now().Sub(start)
			remaining := duration - elapsed

			if remaining > 0 && onWarning != nil {
				for _, offset := range sorted {
					if remaining <= offset && !fired[offset] {
						fired[offset] = true
						e.fireWarning(key, remaining, onWarning)
					}
				}
			}

			if elapsed >= duration {
				// A cancel that landed during the final tick still wins.
				select {
				case <-c.cancel:
					return
				default:
				}
				e.fireTimeout(key, onTimeout)
				return
			}
		}
	}
}

// deregister removes the countdown only if this generation still owns the key.
func (e *Engine) deregister(key int64, c *countdown) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if current, ok := e.timers[key]; ok && current.token == c.token {
		delete(e.timers, key)
	}
}

func (e *Engine) fireTimeout(key int64, onTimeout TimeoutFunc) {
	if onTimeout == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			e.config.Logger.Error().Int64("key", key).Any("panic", r).Msg("timeout callback panicked")
		}
	}()
	onTimeout(key)
}

func (e *Engine) fireWarning(key int64, remaining time.Duration, onWarning WarningFunc) {
	defer func() {
		if r := recover(); r != nil {
			e.config.Logger.Error().Int64("key", key).Any("panic", r).Msg("warning callback panicked")
		}
	}()
	onWarning(key, remaining)
}
