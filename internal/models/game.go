package models

import (
	"strings"
	"time"
)

// RoomStatus represents the current state of a room's game
type RoomStatus string

const (
	// RoomStatusWaiting indicates the room is collecting players before play begins
	RoomStatusWaiting RoomStatus = "waiting"

	// RoomStatusActive indicates a game is in progress
	RoomStatusActive RoomStatus = "active"

	// RoomStatusEnded indicates the game has finished
	RoomStatusEnded RoomStatus = "ended"
)

// GameConfig holds the per-room rules. It is immutable once a room starts.
type GameConfig struct {
	// TurnTimeout is how long a player has to submit a word
	TurnTimeout time.Duration

	// MinWordLength is the starting minimum word length
	MinWordLength int

	// MaxWordLength is the longest word the game will consider
	MaxWordLength int

	// MaxPlayersPerRoom caps the number of seats in one room
	MaxPlayersPerRoom int

	// WarningOffsets are remaining-time thresholds, in descending order,
	// at which a one-time warning fires before the turn times out
	WarningOffsets []time.Duration
}

// DefaultGameConfig returns the standard rules.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		TurnTimeout:       30 * time.Second,
		MinWordLength:     2,
		MaxWordLength:     20,
		MaxPlayersPerRoom: 10,
		WarningOffsets: []time.Duration{
			15 * time.Second,
			10 * time.Second,
			5 * time.Second,
		},
	}
}

// GameState is the per-room aggregate: players in turn order, the turn
// pointer, the current letter/length requirement and the used-word set.
// It carries no synchronization of its own; callers serialize access
// through the room's isolation gate.
type GameState struct {
	// RoomID is the Telegram chat ID hosting the game
	RoomID int64

	// Players in insertion order. Insertion order is turn order.
	Players []*Player

	// CurrentIndex points at the player whose turn it is
	CurrentIndex int

	// CurrentLetter is the required starting letter, upper-case
	CurrentLetter string

	// RequiredLength is the current minimum word length. It never decreases.
	RequiredLength int

	// UsedWords holds every accepted word, case-normalized, for the room's lifetime
	UsedWords map[string]struct{}

	// TurnStartedAt anchors the current turn's countdown. Zero means no anchor.
	TurnStartedAt time.Time

	// Status is the room's lifecycle state
	Status RoomStatus

	// RoundTurns counts turns completed in the current round
	RoundTurns int

	// RoundsCompleted counts full rounds played
	RoundsCompleted int

	// Config holds the rules this room was started with
	Config *GameConfig
}

// NewGameState creates a waiting-state game for a room with its first player.
func NewGameState(roomID int64, startingLetter string, cfg *GameConfig, first *Player) *GameState {
	return &GameState{
		RoomID:         roomID,
		Players:        []*Player{first},
		CurrentIndex:   0,
		CurrentLetter:  strings.ToUpper(startingLetter),
		RequiredLength: cfg.MinWordLength,
		UsedWords:      make(map[string]struct{}),
		Status:         RoomStatusWaiting,
		Config:         cfg,
	}
}

// CurrentPlayer returns the player at the turn index, or nil when the index
// does not resolve. Callers must treat nil as "no legal move possible".
func (g *GameState) CurrentPlayer() *Player {
	if len(g.Players) == 0 || g.CurrentIndex < 0 || g.CurrentIndex >= len(g.Players) {
		return nil
	}
	return g.Players[g.CurrentIndex]
}

// AdvanceTurn moves the pointer to the next seat and re-anchors the turn
// start time. No-op when the room has no players.
func (g *GameState) AdvanceTurn(now time.Time) {
	if len(g.Players) == 0 {
		return
	}
	g.CurrentIndex = (g.CurrentIndex + 1) % len(g.Players)
	g.TurnStartedAt = now
}

// AddPlayer appends a player to the turn order. It rejects duplicates by ID
// and enforces the room's seat limit.
func (g *GameState) AddPlayer(p *Player) bool {
	for _, existing := range g.Players {
		if existing.ID == p.ID {
			return false
		}
	}
	if g.Config != nil && len(g.Players) >= g.Config.MaxPlayersPerRoom {
		return false
	}
	g.Players = append(g.Players, p)
	return true
}

// RemovePlayer removes a player by ID and adjusts the turn pointer so the
// same relative successor stays current: removing a seat before the pointer
// shifts it back one, and removing the last seat while it is current wraps
// the pointer to the front. Returns whether a removal occurred.
func (g *GameState) RemovePlayer(id int64) bool {
	for i, p := range g.Players {
		if p.ID != id {
			continue
		}
		if i < g.CurrentIndex {
			g.CurrentIndex--
		} else if i == g.CurrentIndex && g.CurrentIndex >= len(g.Players)-1 {
			g.CurrentIndex = 0
		}
		g.Players = append(g.Players[:i], g.Players[i+1:]...)
		if len(g.Players) == 0 {
			g.CurrentIndex = 0
		}
		return true
	}
	return false
}

// SetPlayerActive flips a player's activity flag. Deactivating the current
// player skips forward to the next active seat. Returns whether the player
// was found.
func (g *GameState) SetPlayerActive(id int64, active bool, now time.Time) bool {
	for _, p := range g.Players {
		if p.ID != id {
			continue
		}
		p.Active = active
		if !active {
			if cur := g.CurrentPlayer(); cur != nil && cur.ID == id {
				g.SkipInactive(now)
			}
		}
		return true
	}
	return false
}

// SkipInactive advances the pointer, bounded by one full cycle, until an
// active player is found or every player is inactive. Re-anchors the turn
// start time either way.
func (g *GameState) SkipInactive(now time.Time) {
	if len(g.Players) == 0 {
		return
	}
	for attempts := 0; attempts < len(g.Players); attempts++ {
		if cur := g.CurrentPlayer(); cur != nil && cur.Active {
			break
		}
		g.CurrentIndex = (g.CurrentIndex + 1) % len(g.Players)
	}
	g.TurnStartedAt = now
}

// ActivePlayers returns the players still taking turns.
func (g *GameState) ActivePlayers() []*Player {
	active := make([]*Player, 0, len(g.Players))
	for _, p := range g.Players {
		if p.Active {
			active = append(active, p)
		}
	}
	return active
}

// ShouldTerminate reports whether the game is down to one active player or fewer.
func (g *GameState) ShouldTerminate() bool {
	return len(g.ActivePlayers()) <= 1
}

// TurnOrder returns the players in play order starting from the current seat.
func (g *GameState) TurnOrder() []*Player {
	if len(g.Players) == 0 {
		return nil
	}
	i := g.CurrentIndex
	if i < 0 || i >= len(g.Players) {
		i = 0
	}
	order := make([]*Player, 0, len(g.Players))
	order = append(order, g.Players[i:]...)
	order = append(order, g.Players[:i]...)
	return order
}

// RemainingTurnTime returns how long the current player has left, never
// negative. The second return is false when no turn anchor is set.
func (g *GameState) RemainingTurnTime(now time.Time) (time.Duration, bool) {
	if g.TurnStartedAt.IsZero() || g.Config == nil {
		return 0, false
	}
	remaining := g.Config.TurnTimeout - now.Sub(g.TurnStartedAt)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// MarkUsed records a normalized word in the used-word set.
func (g *GameState) MarkUsed(word string) {
	if g.UsedWords == nil {
		g.UsedWords = make(map[string]struct{})
	}
	g.UsedWords[word] = struct{}{}
}

// IsUsed reports whether a normalized word has already been played.
func (g *GameState) IsUsed(word string) bool {
	_, ok := g.UsedWords[word]
	return ok
}
