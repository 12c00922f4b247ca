package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/wordchain/internal/common/clock"
	"github.com/KirkDiggler/wordchain/internal/metrics"
	"github.com/KirkDiggler/wordchain/internal/models"
	"github.com/KirkDiggler/wordchain/internal/words"
)

const (
	defaultMaxRooms       = 100
	defaultWaitingGrace   = 60 * time.Second
	defaultIdleTimeout    = 60 * time.Minute
	defaultSweepInterval  = 5 * time.Minute
	defaultLockReclaimAge = 24 * time.Hour

	// minPlayersToStart is the smallest game worth playing
	minPlayersToStart = 2
)

// service implements the Service interface
type service struct {
	config    *Config
	clock     clock.Clock
	startedAt time.Time

	// mu guards rooms only. It is a leaf lock: never held while calling
	// into the isolation manager, the timer engine or the notifier.
	mu    sync.Mutex
	rooms map[int64]*models.GameState
}

// NewService creates a new game service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Words == nil {
		return nil, ErrNilWordProcessor
	}
	if cfg.Timers == nil {
		return nil, ErrNilTimerEngine
	}
	if cfg.Admission == nil {
		return nil, ErrNilAdmission
	}
	if cfg.Metrics == nil {
		return nil, ErrNilMetrics
	}
	if cfg.Isolation == nil {
		return nil, ErrNilIsolation
	}
	if cfg.Letters == nil {
		return nil, ErrNilLetterPicker
	}
	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.GameConfig == nil {
		cfg.GameConfig = models.DefaultGameConfig()
	}
	if cfg.MaxRooms <= 0 {
		cfg.MaxRooms = defaultMaxRooms
	}
	if cfg.WaitingGrace <= 0 {
		cfg.WaitingGrace = defaultWaitingGrace
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = defaultIdleTimeout
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaultSweepInterval
	}
	if cfg.LockReclaimAge <= 0 {
		cfg.LockReclaimAge = defaultLockReclaimAge
	}

	clockImpl := cfg.Clock
	if clockImpl == nil {
		clockImpl = &clock.DefaultClock{}
	}

	return &service{
		config:    cfg,
		clock:     clockImpl,
		startedAt: clockImpl.Now(),
		rooms:     make(map[int64]*models.GameState),
	}, nil
}

// CreateRoom opens a new room in the waiting state
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Starter == nil {
		return nil, ErrNilPlayer
	}

	var out *CreateRoomOutput
	err := s.config.Isolation.WithRoomLock(input.RoomID, func() error {
		if _, ok := s.getState(input.RoomID); ok {
			return ErrRoomExists
		}

		decision := s.config.Admission.CanAdmit(s.roomCount(), s.config.GameConfig.MaxPlayersPerRoom)
		if !decision.Allowed {
			return fmt.Errorf("%w: %s", ErrAdmissionDenied, decision.Reason)
		}

		state := models.NewGameState(input.RoomID, "", s.config.GameConfig, input.Starter)
		s.putState(state)

		s.config.Metrics.RecordStart(input.RoomID, 1)

		s.config.Timers.Start(input.RoomID, s.config.WaitingGrace,
			s.handleWaitingExpiry, s.handleWaitingTick, s.config.WaitingOffsets)

		s.config.Logger.Info().
			Int64("room_id", input.RoomID).
			Str("starter", input.Starter.Name).
			Msg("room created")

		s.config.Notifier.WaitingStarted(input.RoomID, input.Starter.Name, s.config.WaitingGrace)

		out = &CreateRoomOutput{Grace: s.config.WaitingGrace}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// JoinRoom seats a player in a waiting room
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Player == nil {
		return nil, ErrNilPlayer
	}

	var out *JoinRoomOutput
	err := s.config.Isolation.WithRoomLock(input.RoomID, func() error {
		state, ok := s.getState(input.RoomID)
		if !ok {
			return ErrRoomNotFound
		}
		if state.Status != models.RoomStatusWaiting {
			return ErrRoomNotWaiting
		}

		if !state.AddPlayer(input.Player) {
			for _, p := range state.Players {
				if p.ID == input.Player.ID {
					return ErrAlreadyJoined
				}
			}
			return ErrRoomFull
		}

		s.config.Metrics.SetPlayerCount(input.RoomID, len(state.Players))

		out = &JoinRoomOutput{PlayerCount: len(state.Players)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StartRoom promotes a waiting room to an active game
func (s *service) StartRoom(ctx context.Context, input *StartRoomInput) (*StartRoomOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var out *StartRoomOutput
	err := s.config.Isolation.WithRoomLock(input.RoomID, func() error {
		state, ok := s.getState(input.RoomID)
		if !ok {
			return ErrRoomNotFound
		}
		if state.Status != models.RoomStatusWaiting {
			return ErrRoomNotWaiting
		}
		if len(state.Players) < minPlayersToStart {
			return ErrNotEnoughPlayers
		}

		s.promote(state)

		order := make([]string, 0, len(state.Players))
		for _, p := range state.TurnOrder() {
			order = append(order, p.Name)
		}
		out = &StartRoomOutput{Order: order, Letter: state.CurrentLetter}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StopRoom tears a room down regardless of state. Stopping a room that does
// not exist is not an error.
func (s *service) StopRoom(ctx context.Context, input *StopRoomInput) (*StopRoomOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	out := &StopRoomOutput{}
	err := s.config.Isolation.WithRoomLock(input.RoomID, func() error {
		state, ok := s.getState(input.RoomID)
		if !ok {
			return nil
		}

		s.endRoom(state, "", EndReasonStopped)
		out.Stopped = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitWord processes a word submission for the room's current turn
func (s *service) SubmitWord(ctx context.Context, input *SubmitWordInput) (*SubmitWordOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var out *SubmitWordOutput
	err := s.config.Isolation.WithRoomLock(input.RoomID, func() error {
		state, _ := s.getState(input.RoomID)

		result, err := s.config.Words.Submit(ctx, &words.SubmitInput{
			State:    state,
			PlayerID: input.PlayerID,
			Word:     input.Word,
		})
		if err != nil {
			return err
		}

		out = &SubmitWordOutput{Result: result.Result, Message: result.Message}

		player := s.playerName(state, input.PlayerID)

		switch result.Result {
		case words.ResultValidWord:
			s.config.Metrics.RecordActivity(input.RoomID, metrics.EventWordAccepted)
			s.config.Notifier.WordAccepted(input.RoomID, player, result.Word)

			if err := s.config.Words.Advance(&words.AdvanceInput{
				State: state,
				Word:  result.Word,
				Now:   s.clock.Now(),
			}); err != nil {
				return err
			}

			s.beginTurn(state)

		case words.ResultNoActiveGame:
			// Nothing to record against a room we are not tracking.

		default:
			if state != nil {
				s.config.Metrics.RecordActivity(input.RoomID, metrics.EventError)
			}
			if result.Message != "" {
				s.config.Notifier.WordRejected(input.RoomID, player, result.Message)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LeaveRoom removes a player from a room
func (s *service) LeaveRoom(ctx context.Context, input *LeaveRoomInput) (*LeaveRoomOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	out := &LeaveRoomOutput{}
	err := s.config.Isolation.WithRoomLock(input.RoomID, func() error {
		state, ok := s.getState(input.RoomID)
		if !ok {
			return ErrRoomNotFound
		}

		current := state.CurrentPlayer()
		wasCurrent := current != nil && current.ID == input.PlayerID

		if !state.RemovePlayer(input.PlayerID) {
			return nil
		}
		out.Removed = true

		s.config.Metrics.SetPlayerCount(input.RoomID, len(state.Players))

		if len(state.Players) == 0 {
			s.endRoom(state, "", EndReasonAbandoned)
			return nil
		}

		if state.Status != models.RoomStatusActive {
			return nil
		}

		if state.ShouldTerminate() {
			s.finishWithWinner(state)
			return nil
		}

		// The departing player's successor inherits the turn with a fresh
		// clock.
		if wasCurrent {
			state.SkipInactive(s.clock.Now())
			s.beginTurn(state)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SetPlayerActive toggles whether a player takes turns
func (s *service) SetPlayerActive(ctx context.Context, input *SetPlayerActiveInput) (*SetPlayerActiveOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	out := &SetPlayerActiveOutput{}
	err := s.config.Isolation.WithRoomLock(input.RoomID, func() error {
		state, ok := s.getState(input.RoomID)
		if !ok {
			return ErrRoomNotFound
		}

		current := state.CurrentPlayer()
		wasCurrent := current != nil && current.ID == input.PlayerID

		if !state.SetPlayerActive(input.PlayerID, input.Active, s.clock.Now()) {
			return ErrPlayerNotInRoom
		}
		out.Changed = true

		if state.Status != models.RoomStatusActive {
			return nil
		}

		if state.ShouldTerminate() {
			s.finishWithWinner(state)
			return nil
		}

		// Deactivating the current player hands the turn onward.
		if wasCurrent && !input.Active {
			s.beginTurn(state)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RoomStatus reports one room's state
func (s *service) RoomStatus(ctx context.Context, input *RoomStatusInput) (*RoomStatusOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var out *RoomStatusOutput
	err := s.config.Isolation.WithRoomLock(input.RoomID, func() error {
		state, ok := s.getState(input.RoomID)
		if !ok {
			return ErrRoomNotFound
		}

		out = &RoomStatusOutput{
			Status:         state.Status,
			Letter:         state.CurrentLetter,
			RequiredLength: state.RequiredLength,
			WordsPlayed:    len(state.UsedWords),
		}
		for _, p := range state.Players {
			out.Players = append(out.Players, p.Name)
		}
		if current := state.CurrentPlayer(); current != nil {
			out.CurrentPlayer = current.Name
		}
		if remaining, ok := state.RemainingTurnTime(s.clock.Now()); ok {
			out.Remaining = remaining
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SystemStatus reports process-wide load and metrics
func (s *service) SystemStatus(ctx context.Context) (*SystemStatusOutput, error) {
	snap := s.config.Metrics.Snapshot()
	usage := float64(snap.ActiveRooms) / float64(s.config.MaxRooms)

	return &SystemStatusOutput{
		Load:     s.config.Admission.Classify(usage),
		Metrics:  snap,
		Uptime:   s.clock.Now().Sub(s.startedAt),
		Warnings: s.config.Admission.RecentWarnings(),
	}, nil
}

// Sweep closes idle rooms and reclaims idle locks
func (s *service) Sweep(ctx context.Context) (*SweepOutput, error) {
	out := &SweepOutput{}

	for _, roomID := range s.config.Metrics.IdleRooms(s.config.IdleTimeout) {
		err := s.config.Isolation.WithRoomLock(roomID, func() error {
			state, ok := s.getState(roomID)
			if !ok {
				return nil
			}
			s.endRoom(state, "", EndReasonIdle)
			out.RoomsClosed++
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	out.LocksReclaimed = s.config.Isolation.ReclaimIdle(s.config.LockReclaimAge)

	if out.RoomsClosed > 0 || out.LocksReclaimed > 0 {
		s.config.Logger.Info().
			Int("rooms_closed", out.RoomsClosed).
			Int("locks_reclaimed", out.LocksReclaimed).
			Msg("sweep pass complete")
	}
	return out, nil
}

// RunSweeper runs Sweep on an interval until ctx is cancelled
func (s *service) RunSweeper(ctx context.Context) {
	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				s.config.Logger.Error().Err(err).Msg("sweep pass failed")
			}
		}
	}
}

// getState looks a room up in the registry
func (s *service) getState(roomID int64) (*models.GameState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.rooms[roomID]
	return state, ok
}

func (s *service) putState(state *models.GameState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[state.RoomID] = state
}

func (s *service) deleteState(roomID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, roomID)
}

func (s *service) roomCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rooms)
}

func (s *service) playerName(state *models.GameState, playerID int64) string {
	if state == nil {
		return ""
	}
	for _, p := range state.Players {
		if p.ID == playerID {
			return p.Name
		}
	}
	return ""
}
