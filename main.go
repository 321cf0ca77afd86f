package main

import (
	"context"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/le-kalmique/ringfit-challenge/internal/config"
	"github.com/le-kalmique/ringfit-challenge/internal/handlers"
	"github.com/le-kalmique/ringfit-challenge/internal/scheduler"
	"github.com/le-kalmique/ringfit-challenge/internal/stats"
	"github.com/le-kalmique/ringfit-challenge/internal/storage"
	"github.com/le-kalmique/ringfit-challenge/internal/vision"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	_ = godotenv.Load() // TELEGRAM_BOT_TOKEN, AWS credentials etc.

	cfg := config.Load()
	if cfg.TelegramToken == "" {
		log.Fatal().Msg("telegram token not found in secret or environment")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		log.Fatal().Err(err).Msg("telegram bot")
	}

	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open store")
	}

	detector, err := vision.NewRekognition(context.Background(), cfg.AWSRegion)
	if err != nil {
		log.Fatal().Err(err).Msg("text detection client")
	}

	h := handlers.New(bot, db, detector, cfg.BotMention)

	if cfg.WeeklyDigest {
		if _, err := scheduler.Start(bot, db, stats.NewService(db)); err != nil {
			log.Fatal().Err(err).Msg("scheduler")
		}
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	log.Info().Str("bot", bot.Self.UserName).Msg("bot is running")

	for upd := range bot.GetUpdatesChan(updateConfig) {
		h.HandleUpdate(upd)
	}
}
