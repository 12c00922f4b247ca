package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type GameStateTestSuite struct {
	suite.Suite
	testTime time.Time
	state    *GameState
}

func (s *GameStateTestSuite) SetupTest() {
	s.testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cfg := DefaultGameConfig()
	s.state = NewGameState(100, "C", cfg, &Player{ID: 1, Name: "Alice", Active: true})
	s.state.AddPlayer(&Player{ID: 2, Name: "Bob", Active: true})
	s.state.AddPlayer(&Player{ID: 3, Name: "Carol", Active: true})
	s.state.Status = RoomStatusActive
}

func TestGameStateTestSuite(t *testing.T) {
	suite.Run(t, new(GameStateTestSuite))
}

func (s *GameStateTestSuite) TestCurrentPlayerOutOfRangeIsNil() {
	s.state.CurrentIndex = 99
	s.Nil(s.state.CurrentPlayer())

	s.state.CurrentIndex = -1
	s.Nil(s.state.CurrentPlayer())

	s.state.Players = nil
	s.state.CurrentIndex = 0
	s.Nil(s.state.CurrentPlayer())
}

func (s *GameStateTestSuite) TestAdvanceTurnWrapsAndAnchors() {
	s.state.CurrentIndex = 2

	s.state.AdvanceTurn(s.testTime)

	s.Equal(0, s.state.CurrentIndex)
	s.Equal(s.testTime, s.state.TurnStartedAt)
}

func (s *GameStateTestSuite) TestAdvanceTurnNoPlayersIsNoop() {
	s.state.Players = nil
	s.state.AdvanceTurn(s.testTime)
	s.True(s.state.TurnStartedAt.IsZero())
}

func (s *GameStateTestSuite) TestAddPlayerRejectsDuplicate() {
	s.False(s.state.AddPlayer(&Player{ID: 2, Name: "Bob again", Active: true}))
	s.Len(s.state.Players, 3)
}

func (s *GameStateTestSuite) TestAddPlayerRejectsWhenFull() {
	s.state.Config.MaxPlayersPerRoom = 3
	s.False(s.state.AddPlayer(&Player{ID: 4, Name: "Dave", Active: true}))
}

func (s *GameStateTestSuite) TestRemoveCurrentKeepsSuccessorCurrent() {
	// Bob's turn; removing Bob must hand the turn to Carol, not skip to Alice
	// and not repeat Bob's slot.
	s.state.CurrentIndex = 1

	s.True(s.state.RemovePlayer(2))

	s.Require().NotNil(s.state.CurrentPlayer())
	s.Equal(int64(3), s.state.CurrentPlayer().ID)
}

func (s *GameStateTestSuite) TestRemoveLastSeatWhileCurrentWraps() {
	s.state.CurrentIndex = 2

	s.True(s.state.RemovePlayer(3))

	s.Require().NotNil(s.state.CurrentPlayer())
	s.Equal(int64(1), s.state.CurrentPlayer().ID)
}

func (s *GameStateTestSuite) TestRemoveBeforeCurrentKeepsSamePlayerCurrent() {
	s.state.CurrentIndex = 2 // Carol

	s.True(s.state.RemovePlayer(1))

	s.Require().NotNil(s.state.CurrentPlayer())
	s.Equal(int64(3), s.state.CurrentPlayer().ID)
}

func (s *GameStateTestSuite) TestRemoveAfterCurrentKeepsSamePlayerCurrent() {
	s.state.CurrentIndex = 0 // Alice

	s.True(s.state.RemovePlayer(2))

	s.Require().NotNil(s.state.CurrentPlayer())
	s.Equal(int64(1), s.state.CurrentPlayer().ID)
}

func (s *GameStateTestSuite) TestRemoveUnknownPlayer() {
	s.False(s.state.RemovePlayer(999))
	s.Len(s.state.Players, 3)
}

func (s *GameStateTestSuite) TestRemoveDownToEmpty() {
	s.True(s.state.RemovePlayer(1))
	s.True(s.state.RemovePlayer(2))
	s.True(s.state.RemovePlayer(3))

	s.Empty(s.state.Players)
	s.Nil(s.state.CurrentPlayer())
}

func (s *GameStateTestSuite) TestSkipInactiveFindsNextActive() {
	s.state.Players[0].Active = false
	s.state.Players[1].Active = false
	s.state.CurrentIndex = 0

	s.state.SkipInactive(s.testTime)

	s.Equal(int64(3), s.state.CurrentPlayer().ID)
	s.Equal(s.testTime, s.state.TurnStartedAt)
}

func (s *GameStateTestSuite) TestSkipInactiveAllInactiveIsBounded() {
	for _, p := range s.state.Players {
		p.Active = false
	}
	s.state.CurrentIndex = 1

	s.state.SkipInactive(s.testTime)

	// One full cycle, then give up; anchor still resets.
	s.Equal(s.testTime, s.state.TurnStartedAt)
}

func (s *GameStateTestSuite) TestDeactivatingCurrentPlayerSkips() {
	s.state.CurrentIndex = 0

	s.True(s.state.SetPlayerActive(1, false, s.testTime))

	s.Equal(int64(2), s.state.CurrentPlayer().ID)
}

func (s *GameStateTestSuite) TestShouldTerminate() {
	s.False(s.state.ShouldTerminate())

	s.state.Players[0].Active = false
	s.False(s.state.ShouldTerminate())

	s.state.Players[1].Active = false
	s.True(s.state.ShouldTerminate())
}

func (s *GameStateTestSuite) TestTurnOrderStartsFromCurrent() {
	s.state.CurrentIndex = 1

	order := s.state.TurnOrder()

	s.Require().Len(order, 3)
	s.Equal(int64(2), order[0].ID)
	s.Equal(int64(3), order[1].ID)
	s.Equal(int64(1), order[2].ID)
}

func (s *GameStateTestSuite) TestRemainingTurnTime() {
	_, ok := s.state.RemainingTurnTime(s.testTime)
	s.False(ok, "no anchor means no remaining time")

	s.state.TurnStartedAt = s.testTime

	remaining, ok := s.state.RemainingTurnTime(s.testTime.Add(10 * time.Second))
	s.True(ok)
	s.Equal(20*time.Second, remaining)

	remaining, ok = s.state.RemainingTurnTime(s.testTime.Add(5 * time.Minute))
	s.True(ok)
	s.Equal(time.Duration(0), remaining, "remaining time is never negative")
}

func (s *GameStateTestSuite) TestUsedWordsOnlyGrow() {
	s.state.MarkUsed("cat")
	s.state.MarkUsed("top")

	s.True(s.state.IsUsed("cat"))
	s.True(s.state.IsUsed("top"))
	s.Len(s.state.UsedWords, 2)
}
