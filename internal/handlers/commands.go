package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/le-kalmique/ringfit-challenge/internal/format"
	"github.com/le-kalmique/ringfit-challenge/internal/models"
	"github.com/le-kalmique/ringfit-challenge/internal/parse"
)

// ringTop is how many places the compact /ratings view shows.
const ringTop = 5

// ---------------- /ringfit --------------------

func (h *Handler) HandleRingfit(msg *tgbotapi.Message) {
	w, err := parse.Command(msg.Text)
	if err != nil {
		h.reply(msg.Chat.ID, txtInvalidFormat)
		return
	}

	rec := models.WorkoutRecord{
		UserID:          userID(msg.From),
		ChatID:          chatID(msg),
		Username:        displayName(msg.From),
		DurationSeconds: w.TotalSeconds(),
		EnergyKcal:      w.EnergyKcal,
		DistanceKm:      w.DistanceKm,
	}
	if err := h.DB.InsertRecord(&rec); err != nil {
		log.Error().Err(err).Str("user_id", rec.UserID).Msg("save entry")
		h.reply(msg.Chat.ID, txtSaveFailed)
		return
	}

	log.Info().Str("user_id", rec.UserID).Str("chat_id", rec.ChatID).
		Int64("record_id", rec.ID).Msg("entry saved")
	h.replyTo(msg.Chat.ID, msg.MessageID, format.SavedEntry(rec, w.Imperial))
}

// ---------------- /myresults --------------------

func (h *Handler) HandleMyResults(msg *tgbotapi.Message) {
	sum, err := h.Stats.PersonalSummary(userID(msg.From), chatID(msg))
	if err != nil {
		log.Error().Err(err).Msg("personal summary")
		h.reply(msg.Chat.ID, txtResultsFailed)
		return
	}
	if sum == nil {
		h.reply(msg.Chat.ID, txtNoEntries)
		return
	}
	h.reply(msg.Chat.ID, format.PersonalSummary(displayName(msg.From), *sum))
}

// ---------------- /ratings, /fullratings --------------------

func (h *Handler) HandleRatings(msg *tgbotapi.Message) {
	r, err := h.Stats.Ratings(chatID(msg), ringTop)
	if err != nil {
		log.Error().Err(err).Msg("ratings")
		h.reply(msg.Chat.ID, txtRatingsFailed)
		return
	}
	if r.Empty() {
		h.reply(msg.Chat.ID, txtNobodyLogged)
		return
	}
	h.reply(msg.Chat.ID, format.CompactRatings(r))
}

func (h *Handler) HandleFullRatings(msg *tgbotapi.Message) {
	r, err := h.Stats.Ratings(chatID(msg), 0)
	if err != nil {
		log.Error().Err(err).Msg("full ratings")
		h.reply(msg.Chat.ID, txtRatingsFailed)
		return
	}
	if r.Empty() {
		h.reply(msg.Chat.ID, txtNobodyLogged)
		return
	}
	h.reply(msg.Chat.ID, txtRatingsHeader)
	for _, m := range format.FullRatings(r) {
		h.reply(msg.Chat.ID, m)
	}
}

// ---------------- /updateusername --------------------

func (h *Handler) HandleUpdateUsername(msg *tgbotapi.Message) {
	n, err := h.DB.RenameUser(userID(msg.From), displayName(msg.From))
	if err != nil {
		log.Error().Err(err).Msg("rename user")
		h.reply(msg.Chat.ID, txtSaveFailed)
		return
	}
	log.Info().Str("user_id", userID(msg.From)).Int64("updated", n).Msg("username updated")
	h.reply(msg.Chat.ID, txtRenamed)
}

// ---------------- /removelatest --------------------

func (h *Handler) HandleRemoveLatest(msg *tgbotapi.Message) {
	rec, err := h.DB.DeleteLatest(userID(msg.From), chatID(msg))
	if err != nil {
		log.Error().Err(err).Msg("delete latest")
		h.reply(msg.Chat.ID, txtSaveFailed)
		return
	}
	if rec == nil {
		h.reply(msg.Chat.ID, txtNoEntries)
		return
	}
	h.reply(msg.Chat.ID, txtLatestDeleted)
}
