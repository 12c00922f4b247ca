package game

import (
	"time"

	"github.com/KirkDiggler/wordchain/internal/metrics"
	"github.com/KirkDiggler/wordchain/internal/models"
)

// promote flips a waiting room to active and starts the first turn.
// Caller holds the room lock.
func (s *service) promote(state *models.GameState) {
	s.config.Timers.Cancel(state.RoomID)

	state.Status = models.RoomStatusActive
	state.CurrentLetter = s.config.Letters.Pick()
	state.RequiredLength = s.config.GameConfig.MinWordLength
	state.CurrentIndex = 0

	order := make([]string, 0, len(state.Players))
	for _, p := range state.Players {
		order = append(order, p.Name)
	}

	s.config.Logger.Info().
		Int64("room_id", state.RoomID).
		Int("players", len(state.Players)).
		Str("letter", state.CurrentLetter).
		Msg("game started")

	s.config.Notifier.GameStarted(state.RoomID, order)

	s.beginTurn(state)
}

// beginTurn anchors the current turn and arms its countdown. Caller holds
// the room lock.
func (s *service) beginTurn(state *models.GameState) {
	current := state.CurrentPlayer()
	if current == nil {
		return
	}

	state.TurnStartedAt = s.clock.Now()

	s.config.Metrics.RecordActivity(state.RoomID, metrics.EventTurn)

	s.config.Timers.Start(state.RoomID, state.Config.TurnTimeout,
		s.handleTimeout, s.handleWarning, state.Config.WarningOffsets)

	s.config.Notifier.TurnStarted(state.RoomID, current.Name,
		state.CurrentLetter, state.RequiredLength, state.Config.TurnTimeout)
}

// handleTimeout fires on the timer goroutine when a turn's countdown runs
// out. A submission accepted while this callback was in flight restarts the
// turn clock, so after taking the room lock we re-check that the deadline
// has really passed and no-op otherwise.
func (s *service) handleTimeout(roomID int64) {
	err := s.config.Isolation.WithRoomLock(roomID, func() error {
		state, ok := s.getState(roomID)
		if !ok || state.Status != models.RoomStatusActive {
			return nil
		}

		if remaining, ok := state.RemainingTurnTime(s.clock.Now()); ok && remaining > 0 {
			return nil
		}

		current := state.CurrentPlayer()
		if current == nil {
			return nil
		}

		s.config.Metrics.RecordActivity(roomID, metrics.EventTimeout)

		state.RemovePlayer(current.ID)
		s.config.Metrics.SetPlayerCount(roomID, len(state.Players))

		s.config.Logger.Info().
			Int64("room_id", roomID).
			Str("player", current.Name).
			Msg("player eliminated on timeout")

		s.config.Notifier.PlayerEliminated(roomID, current.Name, len(state.ActivePlayers()))

		if state.ShouldTerminate() {
			s.finishWithWinner(state)
			return nil
		}

		state.SkipInactive(s.clock.Now())
		s.beginTurn(state)
		return nil
	})
	if err != nil {
		s.config.Logger.Error().Err(err).Int64("room_id", roomID).Msg("timeout handling failed")
	}
}

// handleWarning fires on the timer goroutine at each warning offset.
func (s *service) handleWarning(roomID int64, remaining time.Duration) {
	err := s.config.Isolation.WithRoomLock(roomID, func() error {
		state, ok := s.getState(roomID)
		if !ok || state.Status != models.RoomStatusActive {
			return nil
		}

		current := state.CurrentPlayer()
		if current == nil {
			return nil
		}

		s.config.Notifier.TurnWarning(roomID, current.Name, remaining)
		return nil
	})
	if err != nil {
		s.config.Logger.Error().Err(err).Int64("room_id", roomID).Msg("warning handling failed")
	}
}

// handleWaitingExpiry fires when the waiting grace runs out: the game starts
// if enough players joined, otherwise the room is torn down.
func (s *service) handleWaitingExpiry(roomID int64) {
	err := s.config.Isolation.WithRoomLock(roomID, func() error {
		state, ok := s.getState(roomID)
		if !ok || state.Status != models.RoomStatusWaiting {
			return nil
		}

		if len(state.Players) >= minPlayersToStart {
			s.promote(state)
			return nil
		}

		s.endRoom(state, "", EndReasonNotEnoughPlayers)
		return nil
	})
	if err != nil {
		s.config.Logger.Error().Err(err).Int64("room_id", roomID).Msg("waiting expiry handling failed")
	}
}

// handleWaitingTick fires at each waiting reminder offset.
func (s *service) handleWaitingTick(roomID int64, remaining time.Duration) {
	err := s.config.Isolation.WithRoomLock(roomID, func() error {
		state, ok := s.getState(roomID)
		if !ok || state.Status != models.RoomStatusWaiting {
			return nil
		}

		s.config.Notifier.WaitingTick(roomID, remaining, len(state.Players))
		return nil
	})
	if err != nil {
		s.config.Logger.Error().Err(err).Int64("room_id", roomID).Msg("waiting tick handling failed")
	}
}

// finishWithWinner ends an active game, crowning the last active player if
// one remains. Caller holds the room lock.
func (s *service) finishWithWinner(state *models.GameState) {
	winner := ""
	if active := state.ActivePlayers(); len(active) == 1 {
		winner = active[0].Name
	}
	s.endRoom(state, winner, EndReasonWinner)
}

// endRoom cancels the room's timer, drops it from the registry and folds
// its metrics into the totals. Caller holds the room lock.
func (s *service) endRoom(state *models.GameState, winner string, reason EndReason) {
	s.config.Timers.Cancel(state.RoomID)

	state.Status = models.RoomStatusEnded

	s.deleteState(state.RoomID)
	s.config.Metrics.Remove(state.RoomID)

	s.config.Logger.Info().
		Int64("room_id", state.RoomID).
		Str("winner", winner).
		Str("reason", string(reason)).
		Msg("room closed")

	s.config.Notifier.GameEnded(state.RoomID, winner, reason)
}
