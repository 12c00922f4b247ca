package telegram

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/wordchain/internal/services/game"
	gameMocks "github.com/KirkDiggler/wordchain/internal/services/game/mocks"
	"github.com/KirkDiggler/wordchain/internal/services/messaging"
	"github.com/KirkDiggler/wordchain/internal/words"
)

// recordingSender captures outgoing messages instead of hitting Telegram
type recordingSender struct {
	sent []tgbotapi.MessageConfig
}

func (r *recordingSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		r.sent = append(r.sent, msg)
	}
	return tgbotapi.Message{}, nil
}

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockService *gameMocks.MockService
	sender      *recordingSender
	handler     *Handler
	ctx         context.Context

	testChatID int64
	testUser   *tgbotapi.User
}

func (s *HandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = gameMocks.NewMockService(s.mockCtrl)
	s.sender = &recordingSender{}

	msgService, err := messaging.NewService(&messaging.ServiceConfig{Seed: 7})
	s.Require().NoError(err)

	handler, err := NewHandler(&HandlerConfig{
		Sender:   s.sender,
		Game:     s.mockService,
		Messages: msgService,
		Logger:   zerolog.Nop(),
	})
	s.Require().NoError(err)
	s.handler = handler

	s.ctx = context.Background()
	s.testChatID = 100
	s.testUser = &tgbotapi.User{ID: 1, FirstName: "Alice", UserName: "alice"}
}

func (s *HandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

// update builds a message update; text starting with / becomes a command.
func (s *HandlerTestSuite) update(text string) tgbotapi.Update {
	msg := &tgbotapi.Message{
		Text: text,
		Chat: &tgbotapi.Chat{ID: s.testChatID},
		From: s.testUser,
	}
	if len(text) > 0 && text[0] == '/' {
		msg.Entities = []tgbotapi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: commandLength(text)},
		}
	}
	return tgbotapi.Update{Message: msg}
}

func commandLength(text string) int {
	for i, r := range text {
		if r == ' ' {
			return i
		}
	}
	return len(text)
}

func (s *HandlerTestSuite) TestHelpCommand() {
	s.handler.HandleUpdate(s.ctx, s.update("/help"))

	s.Require().Len(s.sender.sent, 1)
	s.Contains(s.sender.sent[0].Text, "/join")
	s.Equal(s.testChatID, s.sender.sent[0].ChatID)
}

func (s *HandlerTestSuite) TestGameCommandCreatesRoom() {
	s.mockService.EXPECT().
		CreateRoom(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, input *game.CreateRoomInput) (*game.CreateRoomOutput, error) {
			s.Equal(s.testChatID, input.RoomID)
			s.Equal(int64(1), input.Starter.ID)
			s.Equal("Alice", input.Starter.Name)
			return &game.CreateRoomOutput{}, nil
		})

	s.handler.HandleUpdate(s.ctx, s.update("/game"))

	// The announcer posts the waiting message, not the handler.
	s.Empty(s.sender.sent)
}

func (s *HandlerTestSuite) TestGameCommandDuplicateRoom() {
	s.mockService.EXPECT().
		CreateRoom(gomock.Any(), gomock.Any()).
		Return(nil, game.ErrRoomExists)

	s.handler.HandleUpdate(s.ctx, s.update("/game"))

	s.Require().Len(s.sender.sent, 1)
	s.Contains(s.sender.sent[0].Text, "already a game")
}

func (s *HandlerTestSuite) TestJoinCommand() {
	s.mockService.EXPECT().
		JoinRoom(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, input *game.JoinRoomInput) (*game.JoinRoomOutput, error) {
			s.Equal(s.testChatID, input.RoomID)
			s.Equal(int64(1), input.Player.ID)
			return &game.JoinRoomOutput{PlayerCount: 2}, nil
		})

	s.handler.HandleUpdate(s.ctx, s.update("/join"))
	s.Empty(s.sender.sent)
}

func (s *HandlerTestSuite) TestStopWithoutRoom() {
	s.mockService.EXPECT().
		StopRoom(gomock.Any(), gomock.Any()).
		Return(&game.StopRoomOutput{Stopped: false}, nil)

	s.handler.HandleUpdate(s.ctx, s.update("/stop"))

	s.Require().Len(s.sender.sent, 1)
	s.Contains(s.sender.sent[0].Text, "No game here yet")
}

func (s *HandlerTestSuite) TestPlainTextSubmitsWord() {
	s.mockService.EXPECT().
		SubmitWord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, input *game.SubmitWordInput) (*game.SubmitWordOutput, error) {
			s.Equal(s.testChatID, input.RoomID)
			s.Equal(int64(1), input.PlayerID)
			s.Equal("cat", input.Word)
			return &game.SubmitWordOutput{Result: words.ResultValidWord}, nil
		})

	s.handler.HandleUpdate(s.ctx, s.update("cat"))
}

func (s *HandlerTestSuite) TestRateLimitDropsFloodedSubmissions() {
	// Burst of 3 allowed, the rest dropped before reaching the service.
	s.mockService.EXPECT().
		SubmitWord(gomock.Any(), gomock.Any()).
		Return(&game.SubmitWordOutput{Result: words.ResultInvalidWord}, nil).
		Times(3)

	for i := 0; i < 10; i++ {
		s.handler.HandleUpdate(s.ctx, s.update("cat"))
	}
}

func (s *HandlerTestSuite) TestRateLimitIsPerPlayer() {
	s.mockService.EXPECT().
		SubmitWord(gomock.Any(), gomock.Any()).
		Return(&game.SubmitWordOutput{Result: words.ResultInvalidWord}, nil).
		Times(6)

	for i := 0; i < 3; i++ {
		s.handler.HandleUpdate(s.ctx, s.update("cat"))
	}

	s.testUser = &tgbotapi.User{ID: 2, FirstName: "Bob"}
	for i := 0; i < 3; i++ {
		s.handler.HandleUpdate(s.ctx, s.update("cat"))
	}
}

func (s *HandlerTestSuite) TestEmptyAndNonMessageUpdatesIgnored() {
	s.handler.HandleUpdate(s.ctx, tgbotapi.Update{})
	s.handler.HandleUpdate(s.ctx, s.update("   "))
	s.Empty(s.sender.sent)
}
