package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Zuo-Peng/launcher-plugins/internal/item"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA busy_timeout = 5000;

CREATE TABLE IF NOT EXISTS actions (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    run_at     TEXT NOT NULL,
    plugin     TEXT NOT NULL,
    query      TEXT NOT NULL DEFAULT '',
    item_text  TEXT NOT NULL DEFAULT '',
    kind       TEXT NOT NULL,
    label      TEXT NOT NULL DEFAULT '',
    payload    TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS actions_run_at ON actions(run_at);
`

const timeLayout = "2006-01-02T15:04:05Z"

// DB records the actions a user actually ran. Queries themselves are never stored.
type DB struct {
	db  *sql.DB
	now func() time.Time
}

func OpenDB(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &DB{db: db, now: time.Now}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

type Record struct {
	ID       int64
	RunAt    time.Time
	Plugin   string
	Query    string
	ItemText string
	Kind     item.ActionKind
	Label    string
	Payload  string
}

func (d *DB) Add(plugin, query string, it item.Item, a item.Action) error {
	_, err := d.db.Exec(
		`INSERT INTO actions (run_at, plugin, query, item_text, kind, label, payload)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		d.now().UTC().Format(timeLayout),
		plugin,
		query,
		it.Text,
		string(a.Kind),
		a.Label,
		a.Payload(),
	)
	if err != nil {
		return fmt.Errorf("record action: %w", err)
	}
	return nil
}

// Recent returns the newest records first. A plugin of "" means all plugins.
func (d *DB) Recent(plugin string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, run_at, plugin, query, item_text, kind, label, payload FROM actions`
	var args []interface{}
	if plugin != "" {
		query += ` WHERE plugin = ?`
		args = append(args, plugin)
	}
	query += ` ORDER BY run_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("history query: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var runAt, kind string
		if err := rows.Scan(&r.ID, &runAt, &r.Plugin, &r.Query, &r.ItemText, &kind, &r.Label, &r.Payload); err != nil {
			return nil, err
		}
		if r.RunAt, err = time.Parse(timeLayout, runAt); err != nil {
			return nil, fmt.Errorf("history record %d: bad run_at: %w", r.ID, err)
		}
		r.Kind = item.ActionKind(kind)
		records = append(records, r)
	}
	return records, rows.Err()
}

func (d *DB) Count() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM actions").Scan(&n)
	return n, err
}

// Prune deletes records older than cutoff and reports how many went.
func (d *DB) Prune(cutoff time.Time) (int64, error) {
	res, err := d.db.Exec("DELETE FROM actions WHERE run_at < ?", cutoff.UTC().Format(timeLayout))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
