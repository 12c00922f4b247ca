package game

import (
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/wordchain/internal/words"
)

// The timer engine's callbacks are exercised by invoking the handlers
// directly with the clock advanced past the deadline; the engine itself is
// covered in its own package.

func (s *GameServiceTestSuite) TestTimeoutEliminatesCurrentPlayer() {
	s.createActiveRoom(s.testRoomID, s.alice, s.bob, s.carol)

	s.now = s.now.Add(31 * time.Second)

	s.mockNotifier.EXPECT().PlayerEliminated(s.testRoomID, "Alice", 2)

	s.gameService.handleTimeout(s.testRoomID)

	status, err := s.gameService.RoomStatus(s.ctx, &RoomStatusInput{RoomID: s.testRoomID})
	s.Require().NoError(err)
	s.Equal([]string{"Bob", "Carol"}, status.Players)
	s.Equal("Bob", status.CurrentPlayer)
}

func (s *GameServiceTestSuite) TestTimeoutDownToOneCrownsWinner() {
	s.createActiveRoom(s.testRoomID, s.alice, s.bob)

	s.now = s.now.Add(31 * time.Second)

	s.mockNotifier.EXPECT().PlayerEliminated(s.testRoomID, "Alice", 1)
	s.mockNotifier.EXPECT().GameEnded(s.testRoomID, "Bob", EndReasonWinner)

	s.gameService.handleTimeout(s.testRoomID)

	_, err := s.gameService.RoomStatus(s.ctx, &RoomStatusInput{RoomID: s.testRoomID})
	s.ErrorIs(err, ErrRoomNotFound)
	s.False(s.timers.Active(s.testRoomID))
}

func (s *GameServiceTestSuite) TestStaleTimeoutIsIgnored() {
	s.createActiveRoom(s.testRoomID, s.alice, s.bob, s.carol)

	// An accepted word re-anchors the turn; a timeout callback that was
	// already in flight must then do nothing.
	s.now = s.now.Add(20 * time.Second)

	status, err := s.gameService.RoomStatus(s.ctx, &RoomStatusInput{RoomID: s.testRoomID})
	s.Require().NoError(err)

	s.mockValidator.EXPECT().IsValid(gomock.Any(), gomock.Any()).Return(true, nil)
	s.mockNotifier.EXPECT().WordAccepted(s.testRoomID, "Alice", gomock.Any())

	_, err = s.gameService.SubmitWord(s.ctx, &SubmitWordInput{
		RoomID:   s.testRoomID,
		PlayerID: s.alice.ID,
		Word:     status.Letter + "AT",
	})
	s.Require().NoError(err)

	// The old deadline has passed but the fresh turn's has not.
	s.now = s.now.Add(15 * time.Second)
	s.gameService.handleTimeout(s.testRoomID)

	status, err = s.gameService.RoomStatus(s.ctx, &RoomStatusInput{RoomID: s.testRoomID})
	s.Require().NoError(err)
	s.Equal([]string{"Alice", "Bob", "Carol"}, status.Players)
	s.Equal("Bob", status.CurrentPlayer)
}

func (s *GameServiceTestSuite) TestTimeoutOnClosedRoomIsIgnored() {
	s.createActiveRoom(s.testRoomID, s.alice, s.bob)

	s.mockNotifier.EXPECT().GameEnded(s.testRoomID, "", EndReasonStopped)
	_, err := s.gameService.StopRoom(s.ctx, &StopRoomInput{RoomID: s.testRoomID})
	s.Require().NoError(err)

	s.now = s.now.Add(time.Minute)
	s.gameService.handleTimeout(s.testRoomID)
}

func (s *GameServiceTestSuite) TestWarningNamesCurrentPlayer() {
	s.createActiveRoom(s.testRoomID, s.alice, s.bob)

	s.mockNotifier.EXPECT().TurnWarning(s.testRoomID, "Alice", 10*time.Second)

	s.gameService.handleWarning(s.testRoomID, 10*time.Second)
}

func (s *GameServiceTestSuite) TestWaitingExpiryStartsFullRoom() {
	s.mockNotifier.EXPECT().WaitingStarted(s.testRoomID, "Alice", gomock.Any())
	_, err := s.gameService.CreateRoom(s.ctx, &CreateRoomInput{RoomID: s.testRoomID, Starter: s.alice})
	s.Require().NoError(err)

	_, err = s.gameService.JoinRoom(s.ctx, &JoinRoomInput{RoomID: s.testRoomID, Player: s.bob})
	s.Require().NoError(err)

	s.mockNotifier.EXPECT().GameStarted(s.testRoomID, []string{"Alice", "Bob"})
	s.mockNotifier.EXPECT().TurnStarted(s.testRoomID, "Alice", gomock.Any(), gomock.Any(), gomock.Any())

	s.now = s.now.Add(2 * time.Minute)
	s.gameService.handleWaitingExpiry(s.testRoomID)

	status, err := s.gameService.RoomStatus(s.ctx, &RoomStatusInput{RoomID: s.testRoomID})
	s.Require().NoError(err)
	s.Equal("Alice", status.CurrentPlayer)
}

func (s *GameServiceTestSuite) TestWaitingExpiryTearsDownShortRoom() {
	s.mockNotifier.EXPECT().WaitingStarted(s.testRoomID, "Alice", gomock.Any())
	_, err := s.gameService.CreateRoom(s.ctx, &CreateRoomInput{RoomID: s.testRoomID, Starter: s.alice})
	s.Require().NoError(err)

	s.mockNotifier.EXPECT().GameEnded(s.testRoomID, "", EndReasonNotEnoughPlayers)

	s.now = s.now.Add(2 * time.Minute)
	s.gameService.handleWaitingExpiry(s.testRoomID)

	_, err = s.gameService.RoomStatus(s.ctx, &RoomStatusInput{RoomID: s.testRoomID})
	s.ErrorIs(err, ErrRoomNotFound)
}

func (s *GameServiceTestSuite) TestWaitingTickReportsPlayerCount() {
	s.mockNotifier.EXPECT().WaitingStarted(s.testRoomID, "Alice", gomock.Any())
	_, err := s.gameService.CreateRoom(s.ctx, &CreateRoomInput{RoomID: s.testRoomID, Starter: s.alice})
	s.Require().NoError(err)

	s.mockNotifier.EXPECT().WaitingTick(s.testRoomID, 30*time.Second, 1)

	s.gameService.handleWaitingTick(s.testRoomID, 30*time.Second)
}

func (s *GameServiceTestSuite) TestRejectedWordDoesNotAdvanceTurn() {
	s.createActiveRoom(s.testRoomID, s.alice, s.bob)

	status, err := s.gameService.RoomStatus(s.ctx, &RoomStatusInput{RoomID: s.testRoomID})
	s.Require().NoError(err)

	s.mockValidator.EXPECT().IsValid(gomock.Any(), gomock.Any()).Return(false, nil)
	s.mockNotifier.EXPECT().WordRejected(s.testRoomID, "Alice", gomock.Any())

	out, err := s.gameService.SubmitWord(s.ctx, &SubmitWordInput{
		RoomID:   s.testRoomID,
		PlayerID: s.alice.ID,
		Word:     status.Letter + "ZZQ",
	})
	s.Require().NoError(err)
	s.Equal(words.ResultInvalidWord, out.Result)

	after, err := s.gameService.RoomStatus(s.ctx, &RoomStatusInput{RoomID: s.testRoomID})
	s.Require().NoError(err)
	s.Equal("Alice", after.CurrentPlayer)
	s.Equal(status.Letter, after.Letter)
	s.Equal(0, after.WordsPlayed)
}
