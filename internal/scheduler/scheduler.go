// Package scheduler posts the weekly ratings digest.
package scheduler

import (
	"strconv"
	"time"

	"github.com/go-co-op/gocron/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/le-kalmique/ringfit-challenge/internal/format"
	"github.com/le-kalmique/ringfit-challenge/internal/stats"
	"github.com/le-kalmique/ringfit-challenge/internal/storage"
)

// digestTop mirrors the compact /ratings view.
const digestTop = 5

// Start schedules the Monday-morning digest for every chat with records.
func Start(bot *tgbotapi.BotAPI, db *storage.DB, svc *stats.Service) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = s.NewJob(
		gocron.WeeklyJob(1,
			gocron.NewWeekdays(time.Monday),
			gocron.NewAtTimes(gocron.NewAtTime(9, 0, 0)),
		),
		gocron.NewTask(func() { postDigests(bot, db, svc) }),
	)
	if err != nil {
		return nil, err
	}

	s.Start()
	return s, nil
}

func postDigests(bot *tgbotapi.BotAPI, db *storage.DB, svc *stats.Service) {
	chats, err := db.ChatsWithRecords()
	if err != nil {
		log.Error().Err(err).Msg("list digest chats")
		return
	}

	for _, chat := range chats {
		r, err := svc.Ratings(chat, digestTop)
		if err != nil {
			log.Error().Err(err).Str("chat_id", chat).Msg("digest ratings")
			continue
		}
		if r.Empty() {
			continue
		}

		id, err := strconv.ParseInt(chat, 10, 64)
		if err != nil {
			log.Error().Err(err).Str("chat_id", chat).Msg("bad chat id")
			continue
		}
		msg := tgbotapi.NewMessage(id, "Тижневі рейтинги 🏅\n\n"+format.CompactRatings(r))
		if _, err := bot.Send(msg); err != nil {
			log.Error().Err(err).Str("chat_id", chat).Msg("send digest")
		}
	}
}
