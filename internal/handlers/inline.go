package handlers

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/le-kalmique/ringfit-challenge/internal/format"
)

// inlineLimit is how many recent entries the inline view offers.
const inlineLimit = 5

// HandleInline answers an inline query with the user's latest entries,
// any chat, newest first.
func (h *Handler) HandleInline(q *tgbotapi.InlineQuery) {
	recs, err := h.DB.RecentByUser(strconv.FormatInt(q.From.ID, 10), inlineLimit)
	if err != nil {
		log.Error().Err(err).Msg("inline query")
		return
	}

	results := make([]interface{}, 0, len(recs))
	for i, rec := range recs {
		article := tgbotapi.NewInlineQueryResultArticle(
			strconv.Itoa(i), format.InlineTitle(rec), format.InlineMessage(rec))
		article.Description = format.InlineDescription(rec)
		results = append(results, article)
	}

	if _, err := h.Bot.Request(tgbotapi.InlineConfig{
		InlineQueryID: q.ID,
		Results:       results,
	}); err != nil {
		log.Error().Err(err).Msg("answer inline query")
	}
}
