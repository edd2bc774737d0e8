package cache

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Yang0427/stocks/internal/model"
)

// SQLiteCache stores daily bars in a local SQLite database.
type SQLiteCache struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteCache opens (or creates) the database and runs migrations.
func NewSQLiteCache(dbPath string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	c := &SQLiteCache{db: db}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite bar cache opened: %s", dbPath)
	return c, nil
}

func (c *SQLiteCache) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS daily_bars (
			ticker   TEXT NOT NULL,
			bar_date INTEGER NOT NULL,
			open     REAL,
			high     REAL,
			low      REAL,
			close    REAL,
			volume   REAL,
			PRIMARY KEY (ticker, bar_date)
		)`,
		`CREATE TABLE IF NOT EXISTS fetch_log (
			ticker     TEXT PRIMARY KEY,
			fetched_at INTEGER NOT NULL,
			bar_count  INTEGER NOT NULL
		)`,
	}
	for _, s := range stmts {
		if _, err := c.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// LoadBars returns cached bars when the last fetch for the ticker is younger
// than maxAge. A stale or missing entry is a miss, not an error.
func (c *SQLiteCache) LoadBars(ticker string, maxAge time.Duration) ([]model.PriceBar, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var fetchedAt int64
	err := c.db.QueryRow(`SELECT fetched_at FROM fetch_log WHERE ticker = ?`, ticker).Scan(&fetchedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query fetch log: %w", err)
	}
	if time.Since(time.Unix(fetchedAt, 0)) > maxAge {
		return nil, nil
	}

	rows, err := c.db.Query(
		`SELECT bar_date, open, high, low, close, volume FROM daily_bars
		 WHERE ticker = ? ORDER BY bar_date`, ticker)
	if err != nil {
		return nil, fmt.Errorf("query bars: %w", err)
	}
	defer rows.Close()

	var bars []model.PriceBar
	for rows.Next() {
		var ts int64
		var b model.PriceBar
		if err := rows.Scan(&ts, &b.Open, &b.High, &b.Low, &b.Close, &b.Volume); err != nil {
			return nil, fmt.Errorf("scan bar: %w", err)
		}
		b.Date = time.Unix(ts, 0)
		bars = append(bars, b)
	}
	return bars, rows.Err()
}

// StoreBars replaces the cached series for the ticker.
func (c *SQLiteCache) StoreBars(ticker string, bars []model.PriceBar) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM daily_bars WHERE ticker = ?`, ticker); err != nil {
		return fmt.Errorf("clear bars: %w", err)
	}
	stmt, err := tx.Prepare(
		`INSERT INTO daily_bars (ticker, bar_date, open, high, low, close, volume)
		 VALUES (?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()
	for _, b := range bars {
		if _, err := stmt.Exec(ticker, b.Date.Unix(), b.Open, b.High, b.Low, b.Close, b.Volume); err != nil {
			return fmt.Errorf("insert bar: %w", err)
		}
	}

	if _, err := tx.Exec(
		`INSERT INTO fetch_log (ticker, fetched_at, bar_count) VALUES (?,?,?)
		 ON CONFLICT(ticker) DO UPDATE SET fetched_at=excluded.fetched_at, bar_count=excluded.bar_count`,
		ticker, time.Now().Unix(), len(bars)); err != nil {
		return fmt.Errorf("update fetch log: %w", err)
	}

	return tx.Commit()
}

func (c *SQLiteCache) Close() error {
	log.Println("[INFO] closing sqlite bar cache")
	return c.db.Close()
}
