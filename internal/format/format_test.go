package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/le-kalmique/ringfit-challenge/internal/models"
	"github.com/le-kalmique/ringfit-challenge/internal/stats"
)

func TestLong(t *testing.T) {
	require.Equal(t, "1г 26хв 36с", Long(5196))
	require.Equal(t, "0г 0хв 0с", Long(0))
	require.Equal(t, "0г 5хв 3с", Long(302.7)) // rounds to whole seconds
	require.Equal(t, "2г 0хв 0с", Long(7200))
}

func TestShort(t *testing.T) {
	require.Equal(t, "26:36", Short(1596))
	require.Equal(t, "01:26:36", Short(5196))
	require.Equal(t, "00:00", Short(0))
	require.Equal(t, "05:03", Short(302.7))
}

func TestMedal(t *testing.T) {
	require.Equal(t, "🥇", Medal(0))
	require.Equal(t, "🥈", Medal(1))
	require.Equal(t, "🥉", Medal(2))
	require.Equal(t, "", Medal(3))
	require.Equal(t, "", Medal(10))
}

func TestKcalIcon(t *testing.T) {
	require.Equal(t, "🎯", KcalIcon(55))
	require.Equal(t, "💪", KcalIcon(150))
	require.Equal(t, "🥇", KcalIcon(250))
	require.Equal(t, "🏆", KcalIcon(400))
}

func TestCompactRatingsMedals(t *testing.T) {
	r := stats.Ratings{
		BySessions: []models.RankingEntry{
			{Username: "userA", Value: 5},
			{Username: "userB", Value: 3},
			{Username: "userC", Value: 1},
		},
	}
	msg := CompactRatings(r)
	require.Contains(t, msg, "1. userA - 5 🥇")
	require.Contains(t, msg, "2. userB - 3 🥈")
	require.Contains(t, msg, "3. userC - 1 🥉")
	require.Contains(t, msg, "🏆 КІЛЬКІСТЬ ТРЕНУВАНЬ")
}

func TestFullRatingListBreaksAfterMedals(t *testing.T) {
	entries := []models.RankingEntry{
		{Username: "a", Value: 4}, {Username: "b", Value: 3},
		{Username: "c", Value: 2}, {Username: "d", Value: 1},
	}
	msg := FullRatingList("🏆 КІЛЬКІСТЬ ТРЕНУВАНЬ", entries, func(v float64) string {
		return Short(v)
	})
	require.Contains(t, msg, "🥇 1. a")
	require.Contains(t, msg, " 4. d")
	// extra line break after the medal block, none after fourth place
	require.Contains(t, msg, "🥉 3. c - 00:02\n\n")
}

func TestPersonalSummaryText(t *testing.T) {
	msg := PersonalSummary("alice", models.PersonalSummary{
		Sessions:        2,
		TotalSeconds:    5796,
		AvgSeconds:      2898,
		TotalKcal:       250,
		AvgKcal:         125,
		TotalDistanceKm: 4,
		AvgDistanceKm:   2,
	})
	require.Contains(t, msg, "@alice")
	require.Contains(t, msg, "Всього занять: 2")
	require.Contains(t, msg, "Загальний час: 1г 36хв 36с")
	require.Contains(t, msg, "Всього калорій: 250.00")
	require.Contains(t, msg, "Загальна відстань: 4.00 км")
}

func TestSavedEntry(t *testing.T) {
	rec := models.WorkoutRecord{DurationSeconds: 5196, EnergyKcal: 155, DistanceKm: 2.5}
	require.Equal(t, "Тренування додано! \n 1г 26хв 36с, 155 ккал, 2.50 км", SavedEntry(rec, false))
	require.Contains(t, SavedEntry(rec, true), "клятий імперець")
}

func TestDates(t *testing.T) {
	d := time.Date(2026, time.September, 2, 10, 0, 0, 0, time.UTC)
	require.Equal(t, "2.9.2026", DateNumeric(d))
	require.Equal(t, "2 вересня 2026 р.", DateLong(d))
}

func TestInlineCard(t *testing.T) {
	rec := models.WorkoutRecord{
		DurationSeconds: 1596,
		EnergyKcal:      155,
		DistanceKm:      2.5,
		CreatedAt:       time.Date(2026, time.September, 2, 10, 0, 0, 0, time.UTC),
	}
	require.Equal(t, "💪 0г 26хв 36с - 155 ккал", InlineTitle(rec))
	require.Equal(t, "Відстань: 2.50 км\nДата: 2.9.2026", InlineDescription(rec))
	require.Contains(t, InlineMessage(rec), "Тренування за 2 вересня 2026 р.")
}
