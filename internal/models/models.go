package models

import "time"

// WorkoutRecord is one logged training session, scoped to the group chat
// it was posted in. Duration is kept normalized to seconds; energy and
// distance are canonical kcal / km.
type WorkoutRecord struct {
	ID              int64     `db:"id"`
	UserID          string    `db:"user_id"`
	ChatID          string    `db:"chat_id"`
	Username        string    `db:"username"` // display-name snapshot, changed only by rename
	DurationSeconds int64     `db:"duration_seconds"`
	EnergyKcal      float64   `db:"energy_kcal"`
	DistanceKm      float64   `db:"distance_km"` // already rounded to 2 decimals
	CreatedAt       time.Time `db:"created_at"`
}

// Metric selects the reduction used by a grouped ranking query.
type Metric int

const (
	MetricSessions      Metric = iota // COUNT(*)
	MetricAvgDuration                 // AVG(duration_seconds)
	MetricAvgEnergy                   // AVG(energy_kcal)
	MetricTotalDistance               // SUM(distance_km)
)

// RankingEntry is one row of a per-chat leaderboard. Derived, never stored.
type RankingEntry struct {
	UserID   string
	Username string
	Value    float64
}

// PersonalSummary aggregates all of one user's records in one chat.
type PersonalSummary struct {
	Sessions        int
	TotalSeconds    int64
	AvgSeconds      float64
	TotalKcal       float64
	AvgKcal         float64
	TotalDistanceKm float64
	AvgDistanceKm   float64
}
