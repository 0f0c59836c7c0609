package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zuo-Peng/launcher-plugins/internal/item"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDB_AddAndRecent(t *testing.T) {
	db := openTestDB(t)
	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	clock := base
	db.now = func() time.Time { return clock }

	dog := item.Item{Text: "dog", Actions: []item.Action{item.ClipAction("Copy translation to clipboard", "dog")}}
	proj := item.Item{Text: "lpk", Actions: []item.Action{item.ProcAction("Open in GoLand", "/opt/goland.sh", "/home/u/lpk")}}

	require.NoError(t, db.Add("DictCC", "dict Hund", dog, dog.Actions[0]))
	clock = base.Add(time.Minute)
	require.NoError(t, db.Add("Jetbrains IDE Projects", "jb lp", proj, proj.Actions[0]))

	all, err := db.Recent("", 10)
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, "lpk", all[0].ItemText)
	assert.Equal(t, item.ActionProc, all[0].Kind)
	assert.Equal(t, "/opt/goland.sh /home/u/lpk", all[0].Payload)
	assert.Equal(t, base.Add(time.Minute), all[0].RunAt)

	assert.Equal(t, "DictCC", all[1].Plugin)
	assert.Equal(t, "dict Hund", all[1].Query)
	assert.Equal(t, "dog", all[1].Payload)

	dict, err := db.Recent("DictCC", 10)
	require.NoError(t, err)
	require.Len(t, dict, 1)
	assert.Equal(t, item.ActionClip, dict[0].Kind)

	n, err := db.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestDB_RecentLimit(t *testing.T) {
	db := openTestDB(t)
	it := item.Item{Text: "x"}
	for i := 0; i < 5; i++ {
		require.NoError(t, db.Add("DictCC", "q", it, item.ClipAction("Copy", "x")))
	}

	got, err := db.Recent("", 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Greater(t, got[0].ID, got[1].ID, "same second falls back to insertion order")
}

func TestDB_Prune(t *testing.T) {
	db := openTestDB(t)
	old := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	db.now = func() time.Time { return old }
	require.NoError(t, db.Add("DictCC", "q", item.Item{}, item.ClipAction("Copy", "a")))
	db.now = func() time.Time { return old.AddDate(1, 0, 0) }
	require.NoError(t, db.Add("DictCC", "q", item.Item{}, item.ClipAction("Copy", "b")))

	n, err := db.Prune(old.AddDate(0, 6, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	left, err := db.Recent("", 0)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "b", left[0].Payload)
}

func TestDB_RecentRejectsCorruptTime(t *testing.T) {
	db := openTestDB(t)
	_, err := db.db.Exec(`INSERT INTO actions (run_at, plugin, kind) VALUES ('not a time', 'DictCC', 'clip')`)
	require.NoError(t, err)

	_, err = db.Recent("", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad run_at")
}
