// Package format renders durations, rankings and summaries into the
// bot's reply strings.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/le-kalmique/ringfit-challenge/internal/models"
	"github.com/le-kalmique/ringfit-challenge/internal/stats"
)

// Long renders a duration as "<H>г <M>хв <S>с", seconds rounded to the
// nearest whole unit, no zero padding.
func Long(seconds float64) string {
	h := int(seconds) / 3600
	m := (int(seconds) - h*3600) / 60
	s := seconds - float64(h)*3600 - float64(m)*60
	return fmt.Sprintf("%dг %dхв %.0fс", h, m, s)
}

// Short renders a duration as MM:SS, or HH:MM:SS when hours are present,
// every field zero-padded to two digits.
func Short(seconds float64) string {
	h := int(seconds) / 3600
	m := (int(seconds) - h*3600) / 60
	s := int(math.Round(seconds - float64(h)*3600 - float64(m)*60))
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// Medal returns the medal for a zero-based rank; empty from fourth place.
func Medal(rank int) string {
	switch rank {
	case 0:
		return "🥇"
	case 1:
		return "🥈"
	case 2:
		return "🥉"
	default:
		return ""
	}
}

// KcalIcon grades a session's burn for the inline-query card title.
func KcalIcon(kcal float64) string {
	switch {
	case kcal < 100:
		return "🎯"
	case kcal < 200:
		return "💪"
	case kcal < 300:
		return "🥇"
	default:
		return "🏆"
	}
}

// Metric value renderers for ranking lines.
func sessions(v float64) string { return fmt.Sprintf("%.0f", v) }
func kcal(v float64) string     { return fmt.Sprintf("%.2f ккал", v) }
func km(v float64) string       { return fmt.Sprintf("%.2f км", v) }

// CompactRatings is the single-message /ratings view: top entries of all
// four metrics, medal after the value.
func CompactRatings(r stats.Ratings) string {
	var b strings.Builder
	b.WriteString("🏆 КІЛЬКІСТЬ ТРЕНУВАНЬ\n")
	writeCompactList(&b, r.BySessions, sessions)
	b.WriteString("\n\n🏃 ЗАГАЛЬНА ВІДСТАНЬ\n")
	writeCompactList(&b, r.ByDistance, km)
	b.WriteString("\n\n⏳ СЕРЕДНІЙ ЧАС\n")
	writeCompactList(&b, r.ByAvgDuration, func(v float64) string { return Short(v) })
	b.WriteString("\n\n💪 СЕРЕДНЯ КІЛЬКІСТЬ КАЛОРІЙ\n")
	writeCompactList(&b, r.ByAvgEnergy, kcal)
	return b.String()
}

func writeCompactList(b *strings.Builder, entries []models.RankingEntry, value func(float64) string) {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%d. %s - %s %s", i+1, e.Username, value(e.Value), Medal(i))
	}
	b.WriteString(strings.Join(lines, "\n"))
}

// FullRatingList is one /fullratings message: header, medal before the
// position, extra blank line after the medal block.
func FullRatingList(header string, entries []models.RankingEntry, value func(float64) string) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		br := ""
		if i < 3 {
			br = "\n"
		}
		lines[i] = fmt.Sprintf("%s %d. %s - %s%s", Medal(i), i+1, e.Username, value(e.Value), br)
	}
	return header + "\n\n" + strings.Join(lines, "\n")
}

// FullRatings renders the four /fullratings messages in posting order.
func FullRatings(r stats.Ratings) []string {
	return []string{
		FullRatingList("🏆 КІЛЬКІСТЬ ТРЕНУВАНЬ", r.BySessions, sessions),
		FullRatingList("⏳ СЕРЕДНІЙ ЧАС", r.ByAvgDuration, func(v float64) string { return Long(v) }),
		FullRatingList("💪 СЕРЕДНЯ КІЛЬКІСТЬ КАЛОРІЙ", r.ByAvgEnergy, kcal),
		FullRatingList("🏃 ЗАГАЛЬНА ВІДСТАНЬ", r.ByDistance, km),
	}
}

// PersonalSummary renders the /myresults reply.
func PersonalSummary(username string, s models.PersonalSummary) string {
	return fmt.Sprintf(`@%s, твої результати
🎯 Всього занять: %d

⏳ Загальний час: %s
      Середній час: %s
💪 Всього калорій: %.2f
      Середня кількість калорій: %.2f
🏃 Загальна відстань: %.2f км
      Середня відстань: %.2f км`,
		username, s.Sessions,
		Long(float64(s.TotalSeconds)), Long(s.AvgSeconds),
		s.TotalKcal, s.AvgKcal,
		s.TotalDistanceKm, s.AvgDistanceKm)
}

var ukMonths = [...]string{
	"січня", "лютого", "березня", "квітня", "травня", "червня",
	"липня", "серпня", "вересня", "жовтня", "листопада", "грудня",
}

// DateNumeric renders a date the uk-UA numeric way, "2.9.2026".
func DateNumeric(t time.Time) string {
	return fmt.Sprintf("%d.%d.%d", t.Day(), int(t.Month()), t.Year())
}

// DateLong renders a date the uk-UA long way, "2 вересня 2026 р.".
func DateLong(t time.Time) string {
	return fmt.Sprintf("%d %s %d р.", t.Day(), ukMonths[t.Month()-1], t.Year())
}

// InlineTitle is the inline-query card title for one record.
func InlineTitle(r models.WorkoutRecord) string {
	return fmt.Sprintf("%s %s - %g ккал",
		KcalIcon(r.EnergyKcal), Long(float64(r.DurationSeconds)), r.EnergyKcal)
}

// InlineDescription is the inline-query card subtitle.
func InlineDescription(r models.WorkoutRecord) string {
	return fmt.Sprintf("Відстань: %.2f км\nДата: %s", r.DistanceKm, DateNumeric(r.CreatedAt))
}

// InlineMessage is the message sent when an inline result is picked.
func InlineMessage(r models.WorkoutRecord) string {
	return fmt.Sprintf("Тренування за %s\n%s\n%g ккал\nВідстань: %.2f км",
		DateLong(r.CreatedAt), Long(float64(r.DurationSeconds)), r.EnergyKcal, r.DistanceKm)
}

// SavedEntry renders the confirmation for a stored record.
func SavedEntry(r models.WorkoutRecord, imperial bool) string {
	aside := ""
	if imperial {
		aside = ", клятий імперець"
	}
	h := r.DurationSeconds / 3600
	m := (r.DurationSeconds % 3600) / 60
	s := r.DurationSeconds % 60
	return fmt.Sprintf("Тренування додано%s! \n %dг %dхв %dс, %g ккал, %.2f км",
		aside, h, m, s, r.EnergyKcal, r.DistanceKm)
}
