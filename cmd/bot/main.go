package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/wordchain/internal/admission"
	"github.com/KirkDiggler/wordchain/internal/handlers/telegram"
	"github.com/KirkDiggler/wordchain/internal/isolation"
	"github.com/KirkDiggler/wordchain/internal/letters"
	"github.com/KirkDiggler/wordchain/internal/logger"
	"github.com/KirkDiggler/wordchain/internal/metrics"
	"github.com/KirkDiggler/wordchain/internal/models"
	"github.com/KirkDiggler/wordchain/internal/repositories/dictionary"
	gameService "github.com/KirkDiggler/wordchain/internal/services/game"
	"github.com/KirkDiggler/wordchain/internal/services/messaging"
	"github.com/KirkDiggler/wordchain/internal/timer"
	"github.com/KirkDiggler/wordchain/internal/words"
)

func main() {
	// Missing .env is fine in deployment; variables come from the environment.
	_ = godotenv.Load()

	log := logger.New(getEnv("LOG_LEVEL", "info"))

	// Initialize Redis client for the dictionary cache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}

	// The authoritative word list behind the cache
	source, err := dictionary.NewFileSource(getEnv("WORDLIST_PATH", "words.txt"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	dict, err := dictionary.NewRedis(&dictionary.Config{
		RedisClient: redisClient,
		Source:      source,
		Logger:      log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create dictionary repository")
	}

	processor, err := words.NewProcessor(&words.Config{
		Validator: dict,
		Logger:    log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create word processor")
	}

	gameConfig := models.DefaultGameConfig()
	if v := getEnvInt("TURN_TIMEOUT_SECONDS", 0); v > 0 {
		gameConfig.TurnTimeout = time.Duration(v) * time.Second
	}

	maxRooms := getEnvInt("MAX_ROOMS", 100)

	admissionCtrl, err := admission.New(&admission.Config{
		MaxRooms:          maxRooms,
		MaxPlayersPerRoom: gameConfig.MaxPlayersPerRoom,
		Logger:            log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create admission controller")
	}

	tracker, err := metrics.New(&metrics.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create metrics tracker")
	}

	isolationMgr, err := isolation.New(&isolation.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create isolation manager")
	}

	msgService, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create messaging service")
	}

	bot, err := telegram.NewBot(&telegram.BotConfig{
		Token:  mustEnv(log, "TELEGRAM_TOKEN"),
		Debug:  getEnv("TELEGRAM_DEBUG", "") == "true",
		Logger: log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Telegram bot")
	}

	announcer, err := telegram.NewAnnouncer(&telegram.AnnouncerConfig{
		Sender:   bot.API(),
		Messages: msgService,
		Logger:   log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create announcer")
	}

	gameSvc, err := gameService.NewService(&gameService.Config{
		GameConfig: gameConfig,
		MaxRooms:   maxRooms,
		WaitingGrace: time.Duration(getEnvInt("WAITING_GRACE_SECONDS", 60)) * time.Second,
		WaitingOffsets: []time.Duration{
			30 * time.Second,
			10 * time.Second,
		},
		Words:     processor,
		Timers:    timer.New(&timer.Config{Logger: log}),
		Admission: admissionCtrl,
		Metrics:   tracker,
		Isolation: isolationMgr,
		Letters:   letters.New(&letters.Config{}),
		Notifier:  announcer,
		Logger:    log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game service")
	}

	handler, err := telegram.NewHandler(&telegram.HandlerConfig{
		Sender:   bot.API(),
		Game:     gameSvc,
		Messages: msgService,
		Logger:   log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create update handler")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	go gameSvc.RunSweeper(ctx)

	bot.Run(ctx, handler)

	log.Info().Msg("bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func mustEnv(log zerolog.Logger, key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatal().Msg(key + " environment variable is required")
	}
	return value
}
