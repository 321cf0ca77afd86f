// Package storage is the record store: sqlite behind the adapter surface
// the handlers and the aggregator use.
package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/le-kalmique/ringfit-challenge/internal/models"
)

//go:embed schema.sql
var ddl embed.FS

type DB struct{ *sql.DB }

func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	if err = migrate(db); err != nil {
		return nil, err
	}
	return &DB{db}, nil
}

func migrate(db *sql.DB) error {
	b, err := ddl.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(string(b))
	return err
}

// ---------- records ---------------------------------------------------------

// InsertRecord stores one workout and fills in its id and creation time.
func (d *DB) InsertRecord(r *models.WorkoutRecord) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	res, err := d.Exec(`
        INSERT INTO workout_records
          (user_id, chat_id, username, duration_seconds, energy_kcal, distance_km, created_at)
        VALUES (?,?,?,?,?,?,?)
    `, r.UserID, r.ChatID, r.Username, r.DurationSeconds, r.EnergyKcal, r.DistanceKm, r.CreatedAt.Unix())
	if err != nil {
		return err
	}
	r.ID, err = res.LastInsertId()
	return err
}

// RecordsByUserChat returns all of a user's records in one chat,
// newest first.
func (d *DB) RecordsByUserChat(userID, chatID string) ([]models.WorkoutRecord, error) {
	rows, err := d.Query(`
        SELECT id, user_id, chat_id, username, duration_seconds, energy_kcal, distance_km, created_at
        FROM workout_records
        WHERE user_id=? AND chat_id=?
        ORDER BY id DESC`, userID, chatID)
	if err != nil {
		return nil, err
	}
	return scanRecords(rows)
}

// RecentByUser returns the user's latest records across all chats,
// for the inline-query view.
func (d *DB) RecentByUser(userID string, limit int) ([]models.WorkoutRecord, error) {
	rows, err := d.Query(`
        SELECT id, user_id, chat_id, username, duration_seconds, energy_kcal, distance_km, created_at
        FROM workout_records
        WHERE user_id=?
        ORDER BY id DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	return scanRecords(rows)
}

// LatestByUserChat returns the user's most recent record in the chat,
// or nil when there is none.
func (d *DB) LatestByUserChat(userID, chatID string) (*models.WorkoutRecord, error) {
	var r models.WorkoutRecord
	var ts int64
	err := d.QueryRow(`
        SELECT id, user_id, chat_id, username, duration_seconds, energy_kcal, distance_km, created_at
        FROM workout_records
        WHERE user_id=? AND chat_id=?
        ORDER BY id DESC LIMIT 1`, userID, chatID,
	).Scan(&r.ID, &r.UserID, &r.ChatID, &r.Username, &r.DurationSeconds, &r.EnergyKcal, &r.DistanceKm, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r.CreatedAt = time.Unix(ts, 0).UTC()
	return &r, nil
}

// DeleteRecord removes one record by id.
func (d *DB) DeleteRecord(id int64) error {
	_, err := d.Exec(`DELETE FROM workout_records WHERE id=?`, id)
	return err
}

// DeleteLatest removes the user's most recent record in the chat and
// returns it, or nil when the user has no records there.
func (d *DB) DeleteLatest(userID, chatID string) (*models.WorkoutRecord, error) {
	rec, err := d.LatestByUserChat(userID, chatID)
	if err != nil || rec == nil {
		return nil, err
	}
	if err := d.DeleteRecord(rec.ID); err != nil {
		return nil, err
	}
	return rec, nil
}

// RenameUser updates the display name on all of the user's records,
// every chat, and returns how many were touched.
func (d *DB) RenameUser(userID, username string) (int64, error) {
	res, err := d.Exec(`UPDATE workout_records SET username=? WHERE user_id=?`, username, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ---------- aggregation -----------------------------------------------------

// DefaultRankingLimit caps grouped rankings when the caller passes no limit.
const DefaultRankingLimit = 30

var reductions = map[models.Metric]string{
	models.MetricSessions:      "COUNT(*)",
	models.MetricAvgDuration:   "AVG(duration_seconds)",
	models.MetricAvgEnergy:     "AVG(energy_kcal)",
	models.MetricTotalDistance: "SUM(distance_km)",
}

// Aggregate groups the chat's records by user, reduces each group with
// the metric, and returns rows sorted descending by the reduction value.
// Usernames come from the group's latest record. Ties keep the store's
// stable group order; an empty chat yields an empty slice.
func (d *DB) Aggregate(chatID string, metric models.Metric, limit int) ([]models.RankingEntry, error) {
	reduction, ok := reductions[metric]
	if !ok {
		return nil, fmt.Errorf("unknown metric %d", metric)
	}
	if limit <= 0 {
		limit = DefaultRankingLimit
	}

	rows, err := d.Query(`
        SELECT user_id,
               (SELECT username FROM workout_records w2
                WHERE w2.user_id = w.user_id AND w2.chat_id = w.chat_id
                ORDER BY w2.id DESC LIMIT 1) AS username,
               `+reduction+` AS value
        FROM workout_records w
        WHERE chat_id=?
        GROUP BY user_id
        ORDER BY value DESC
        LIMIT ?`, chatID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []models.RankingEntry
	for rows.Next() {
		var e models.RankingEntry
		if err := rows.Scan(&e.UserID, &e.Username, &e.Value); err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}

// ChatsWithRecords lists every chat that has at least one record,
// for the weekly digest.
func (d *DB) ChatsWithRecords() ([]string, error) {
	rows, err := d.Query(`SELECT DISTINCT chat_id FROM workout_records`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		res = append(res, id)
	}
	return res, rows.Err()
}

func scanRecords(rows *sql.Rows) ([]models.WorkoutRecord, error) {
	defer rows.Close()

	var res []models.WorkoutRecord
	for rows.Next() {
		var r models.WorkoutRecord
		var ts int64
		if err := rows.Scan(
			&r.ID, &r.UserID, &r.ChatID, &r.Username,
			&r.DurationSeconds, &r.EnergyKcal, &r.DistanceKm, &ts,
		); err != nil {
			return nil, err
		}
		r.CreatedAt = time.Unix(ts, 0).UTC()
		res = append(res, r)
	}
	return res, rows.Err()
}
