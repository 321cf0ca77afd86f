package handlers

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/le-kalmique/ringfit-challenge/internal/format"
	"github.com/le-kalmique/ringfit-challenge/internal/models"
	"github.com/le-kalmique/ringfit-challenge/internal/vision"
)

// HandlePhoto runs the photo pipeline: a captioned photo addressed to the
// bot is downloaded, run through text detection and extracted into a
// record. Extraction is all-or-nothing; a failed photo stores nothing.
func (h *Handler) HandlePhoto(msg *tgbotapi.Message) {
	if msg.Caption == "" {
		return
	}
	addressed := strings.Contains(msg.Caption, h.Mention) ||
		strings.Contains(msg.Caption, "/ringfit")
	if !addressed {
		return
	}
	h.reply(msg.Chat.ID, txtPhotoReceived)

	// last size is the best resolution
	photo := msg.Photo[len(msg.Photo)-1]
	url, err := h.Bot.GetFileDirectURL(photo.FileID)
	if err != nil {
		log.Error().Err(err).Msg("resolve photo link")
		h.reply(msg.Chat.ID, txtPhotoFailed)
		return
	}

	ctx := context.Background()
	image, err := vision.DownloadImage(ctx, url)
	if err != nil {
		log.Error().Err(err).Msg("download photo")
		h.reply(msg.Chat.ID, txtPhotoFailed)
		return
	}

	fragments, err := h.Detector.DetectText(ctx, image)
	if err != nil {
		log.Error().Err(err).Msg("detect text")
		h.reply(msg.Chat.ID, txtPhotoFailed)
		return
	}

	w, err := h.Extractor.Extract(fragments)
	if err != nil {
		log.Warn().Err(err).Int("fragments", len(fragments)).Msg("extract workout")
		h.reply(msg.Chat.ID, txtPhotoFailed)
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
		log.Error().Err(err).Str("user_id", rec.UserID).Msg("save photo entry")
		h.reply(msg.Chat.ID, txtSaveFailed)
		return
	}

	log.Info().Str("user_id", rec.UserID).Str("chat_id", rec.ChatID).
		Int64("record_id", rec.ID).Msg("photo entry saved")
	h.replyTo(msg.Chat.ID, msg.MessageID, format.SavedEntry(rec, false))
}
