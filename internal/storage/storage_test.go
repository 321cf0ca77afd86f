package storage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/le-kalmique/ringfit-challenge/internal/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func add(t *testing.T, db *DB, userID, chatID, username string, secs int64, kcal, km float64) models.WorkoutRecord {
	t.Helper()
	r := models.WorkoutRecord{
		UserID: userID, ChatID: chatID, Username: username,
		DurationSeconds: secs, EnergyKcal: kcal, DistanceKm: km,
	}
	require.NoError(t, db.InsertRecord(&r))
	return r
}

func TestInsertAndFind(t *testing.T) {
	db := testDB(t)

	first := add(t, db, "u1", "c1", "alice", 5196, 155, 2.5)
	second := add(t, db, "u1", "c1", "alice", 600, 90, 1.2)
	add(t, db, "u1", "c2", "alice", 300, 50, 0.5) // other chat
	add(t, db, "u2", "c1", "bob", 900, 120, 2.0)

	require.NotZero(t, first.ID)
	require.False(t, first.CreatedAt.IsZero())

	recs, err := db.RecordsByUserChat("u1", "c1")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.Equal(t, second.ID, recs[0].ID) // newest first
	require.Equal(t, first.ID, recs[1].ID)

	latest, err := db.LatestByUserChat("u1", "c1")
	require.NoError(t, err)
	require.Equal(t, second.ID, latest.ID)

	none, err := db.LatestByUserChat("u9", "c1")
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestRecentByUserCrossesChats(t *testing.T) {
	db := testDB(t)
	add(t, db, "u1", "c1", "alice", 100, 10, 0.1)
	add(t, db, "u1", "c2", "alice", 200, 20, 0.2)
	add(t, db, "u1", "c1", "alice", 300, 30, 0.3)

	recs, err := db.RecentByUser("u1", 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.Equal(t, int64(300), recs[0].DurationSeconds)
	require.Equal(t, int64(200), recs[1].DurationSeconds)
}

func TestDeleteLatest(t *testing.T) {
	db := testDB(t)
	add(t, db, "u1", "c1", "alice", 100, 10, 0.1)
	last := add(t, db, "u1", "c1", "alice", 200, 20, 0.2)

	deleted, err := db.DeleteLatest("u1", "c1")
	require.NoError(t, err)
	require.Equal(t, last.ID, deleted.ID)

	recs, err := db.RecordsByUserChat("u1", "c1")
	require.NoError(t, err)
	require.Len(t, recs, 1)

	// nothing to delete for a user without records
	deleted, err = db.DeleteLatest("u9", "c1")
	require.NoError(t, err)
	require.Nil(t, deleted)
}

func TestRenameUser(t *testing.T) {
	db := testDB(t)
	add(t, db, "u1", "c1", "alice", 100, 10, 0.1)
	add(t, db, "u1", "c2", "alice", 200, 20, 0.2)
	add(t, db, "u2", "c1", "bob", 300, 30, 0.3)

	n, err := db.RenameUser("u1", "alicia")
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	recs, err := db.RecordsByUserChat("u1", "c1")
	require.NoError(t, err)
	require.Equal(t, "alicia", recs[0].Username)

	recs, err = db.RecordsByUserChat("u2", "c1")
	require.NoError(t, err)
	require.Equal(t, "bob", recs[0].Username)
}

func TestAggregate(t *testing.T) {
	db := testDB(t)
	// userA: 5 sessions, userB: 3, userC: 1
	for i := 0; i < 5; i++ {
		add(t, db, "a", "c1", "userA", 600, 100, 1.0)
	}
	for i := 0; i < 3; i++ {
		add(t, db, "b", "c1", "userB", 1200, 200, 2.0)
	}
	add(t, db, "c", "c1", "userC", 1800, 300, 3.0)
	add(t, db, "z", "c2", "other", 60, 10, 0.1) // other chat, never aggregated

	byCount, err := db.Aggregate("c1", models.MetricSessions, 0)
	require.NoError(t, err)
	require.Len(t, byCount, 3)
	require.Equal(t, "userA", byCount[0].Username)
	require.Equal(t, 5.0, byCount[0].Value)
	require.Equal(t, "userB", byCount[1].Username)
	require.Equal(t, 3.0, byCount[1].Value)
	require.Equal(t, "userC", byCount[2].Username)
	require.Equal(t, 1.0, byCount[2].Value)

	byTime, err := db.Aggregate("c1", models.MetricAvgDuration, 0)
	require.NoError(t, err)
	require.Equal(t, "userC", byTime[0].Username)
	require.Equal(t, 1800.0, byTime[0].Value)

	byKcal, err := db.Aggregate("c1", models.MetricAvgEnergy, 0)
	require.NoError(t, err)
	require.Equal(t, "userC", byKcal[0].Username)
	require.Equal(t, 300.0, byKcal[0].Value)

	byDist, err := db.Aggregate("c1", models.MetricTotalDistance, 0)
	require.NoError(t, err)
	require.Equal(t, "userB", byDist[0].Username)
	require.Equal(t, 6.0, byDist[0].Value)

	limited, err := db.Aggregate("c1", models.MetricSessions, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)

	empty, err := db.Aggregate("nochat", models.MetricSessions, 0)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestAggregaterUsesLatestUsername(t *testing.T) {
	db := testDB(t)
	add(t, db, "u1", "c1", "oldname", 100, 10, 0.1)
	add(t, db, "u1", "c1", "newname", 100, 10, 0.1)

	byCount, err := db.Aggregate("c1", models.MetricSessions, 0)
	require.NoError(t, err)
	require.Equal(t, "newname", byCount[0].Username)
}

func TestChatsWithRecords(t *testing.T) {
	db := testDB(t)
	chats, err := db.ChatsWithRecords()
	require.NoError(t, err)
	require.Empty(t, chats)

	add(t, db, "u1", "c1", "alice", 100, 10, 0.1)
	add(t, db, "u2", "c1", "bob", 100, 10, 0.1)
	add(t, db, "u1", "c2", "alice", 100, 10, 0.1)

	chats, err = db.ChatsWithRecords()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"c1", "c2"}, chats)
}
