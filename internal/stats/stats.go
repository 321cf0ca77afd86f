// Package stats computes per-chat rankings and personal summaries on top
// of the record store.
package stats

import (
	"github.com/le-kalmique/ringfit-challenge/internal/models"
)

// RecordSource is the slice of the store the aggregator needs.
type RecordSource interface {
	RecordsByUserChat(userID, chatID string) ([]models.WorkoutRecord, error)
	Aggregate(chatID string, metric models.Metric, limit int) ([]models.RankingEntry, error)
}

// Ratings holds the four independently ranked leaderboards of one chat.
// All four are empty when nobody has logged anything; that is a valid
// state, not an error.
type Ratings struct {
	BySessions    []models.RankingEntry
	ByAvgDuration []models.RankingEntry
	ByAvgEnergy   []models.RankingEntry
	ByDistance    []models.RankingEntry
}

// Empty reports whether the chat has no records at all.
func (r Ratings) Empty() bool { return len(r.BySessions) == 0 }

// Service wires the aggregation queries. Injected store, no ambient state.
type Service struct {
	store RecordSource
}

func NewService(store RecordSource) *Service {
	return &Service{store: store}
}

// Ratings computes the chat's four leaderboards, each limited to top.
// top <= 0 falls back to the store's default limit.
func (s *Service) Ratings(chatID string, top int) (Ratings, error) {
	var r Ratings
	var err error

	if r.BySessions, err = s.store.Aggregate(chatID, models.MetricSessions, top); err != nil {
		return Ratings{}, err
	}
	if r.ByAvgDuration, err = s.store.Aggregate(chatID, models.MetricAvgDuration, top); err != nil {
		return Ratings{}, err
	}
	if r.ByAvgEnergy, err = s.store.Aggregate(chatID, models.MetricAvgEnergy, top); err != nil {
		return Ratings{}, err
	}
	if r.ByDistance, err = s.store.Aggregate(chatID, models.MetricTotalDistance, top); err != nil {
		return Ratings{}, err
	}
	return r, nil
}

// PersonalSummary reduces one user's records in one chat. Returns nil
// when the user has no records there; no division happens in that case.
func (s *Service) PersonalSummary(userID, chatID string) (*models.PersonalSummary, error) {
	recs, err := s.store.RecordsByUserChat(userID, chatID)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}

	sum := models.PersonalSummary{Sessions: len(recs)}
	for _, r := range recs {
		sum.TotalSeconds += r.DurationSeconds
		sum.TotalKcal += r.EnergyKcal
		sum.TotalDistanceKm += r.DistanceKm
	}
	n := float64(sum.Sessions)
	sum.AvgSeconds = float64(sum.TotalSeconds) / n
	sum.AvgKcal = sum.TotalKcal / n
	sum.AvgDistanceKm = sum.TotalDistanceKm / n
	return &sum, nil
}
