package main

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// The rewrites table is an insert-only audit mirror of everything the
// rewrite endpoint returns. Nothing user-visible depends on it; inserts run
// fire-and-forget from the handler.

func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS rewrites (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		original_text  TEXT NOT NULL,
		rewritten_text TEXT NOT NULL,
		style          TEXT DEFAULT '',
		tone           TEXT DEFAULT '',
		selected       INTEGER DEFAULT 0,
		word_count     INTEGER DEFAULT 0,
		token_count    INTEGER DEFAULT 0,
		cost           REAL DEFAULT 0,
		created_at     DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_rewrites_created_at ON rewrites(created_at);
	CREATE INDEX IF NOT EXISTS idx_rewrites_style ON rewrites(style);
	`
	_, err = db.Exec(schema)
	if err != nil {
		return nil, err
	}

	return db, nil
}

type RewriteRecord struct {
	ID            int64
	OriginalText  string
	RewrittenText string
	Style         string
	Tone          string
	Selected      bool
	Stats         UsageStats
	CreatedAt     time.Time
}

func InsertRewrite(db *sql.DB, rec RewriteRecord) error {
	_, err := db.Exec(
		`INSERT INTO rewrites (original_text, rewritten_text, style, tone, selected, word_count, token_count, cost, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.OriginalText, rec.RewrittenText, rec.Style, rec.Tone, rec.Selected,
		rec.Stats.WordCount, rec.Stats.TokenCount, rec.Stats.Cost, rec.CreatedAt,
	)
	return err
}

func CountRewritesSince(db *sql.DB, since time.Time) (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM rewrites WHERE created_at >= ?", since).Scan(&count)
	return count, err
}

// DayTotals is one day's accumulated audit counters.
type DayTotals struct {
	Date     string
	Rewrites int
	Stats    UsageStats
}

func UsageTotalsByDay(db *sql.DB, from, to time.Time) ([]DayTotals, error) {
	rows, err := db.Query(
		`SELECT date(created_at), COUNT(*), SUM(word_count), SUM(token_count), SUM(cost)
		 FROM rewrites WHERE created_at >= ? AND created_at < ?
		 GROUP BY date(created_at) ORDER BY date(created_at)`,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []DayTotals
	for rows.Next() {
		var t DayTotals
		if err := rows.Scan(&t.Date, &t.Rewrites, &t.Stats.WordCount, &t.Stats.TokenCount, &t.Stats.Cost); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

func PruneRewritesBefore(db *sql.DB, cutoff time.Time) (int64, error) {
	res, err := db.Exec("DELETE FROM rewrites WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
