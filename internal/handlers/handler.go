// Package handlers dispatches Telegram updates to the parsing, OCR and
// aggregation pipeline.
package handlers

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/le-kalmique/ringfit-challenge/internal/ocr"
	"github.com/le-kalmique/ringfit-challenge/internal/stats"
	"github.com/le-kalmique/ringfit-challenge/internal/storage"
	"github.com/le-kalmique/ringfit-challenge/internal/vision"
)

type Handler struct {
	Bot       *tgbotapi.BotAPI
	DB        *storage.DB
	Stats     *stats.Service
	Detector  vision.Detector
	Extractor *ocr.Extractor
	Mention   string // bot mention that marks photo captions, e.g. "@ringfit_together_bot"
}

func New(bot *tgbotapi.BotAPI, db *storage.DB, detector vision.Detector, mention string) *Handler {
	return &Handler{
		Bot:       bot,
		DB:        db,
		Stats:     stats.NewService(db),
		Detector:  detector,
		Extractor: ocr.New(nil),
		Mention:   mention,
	}
}

// HandleUpdate routes one long-poll update.
func (h *Handler) HandleUpdate(upd tgbotapi.Update) {
	switch {
	case upd.Message != nil && upd.Message.IsCommand():
		h.HandleCommand(upd.Message)
	case upd.Message != nil && len(upd.Message.Photo) > 0:
		h.HandlePhoto(upd.Message)
	case upd.InlineQuery != nil:
		h.HandleInline(upd.InlineQuery)
	}
}

func (h *Handler) HandleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "ringfit":
		h.HandleRingfit(msg)
	case "myresults":
		h.HandleMyResults(msg)
	case "ratings":
		h.HandleRatings(msg)
	case "fullratings":
		h.HandleFullRatings(msg)
	case "updateusername":
		h.HandleUpdateUsername(msg)
	case "removelatest":
		h.HandleRemoveLatest(msg)
	}
}

func (h *Handler) reply(chatID int64, text string) {
	if _, err := h.Bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("send reply")
	}
}

func (h *Handler) replyTo(chatID int64, msgID int, text string) {
	reply := tgbotapi.NewMessage(chatID, text)
	reply.ReplyToMessageID = msgID
	if _, err := h.Bot.Send(reply); err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("send reply")
	}
}

// displayName snapshots the submitter's name the way the records keep it.
func displayName(from *tgbotapi.User) string {
	if from == nil {
		return "Unknown user"
	}
	switch {
	case from.UserName != "":
		return from.UserName
	case from.FirstName != "":
		return from.FirstName
	case from.LastName != "":
		return from.LastName
	}
	return "Unknown user " + strconv.FormatInt(from.ID, 10)
}

func userID(from *tgbotapi.User) string {
	if from == nil {
		return ""
	}
	return strconv.FormatInt(from.ID, 10)
}

func chatID(msg *tgbotapi.Message) string {
	return strconv.FormatInt(msg.Chat.ID, 10)
}
