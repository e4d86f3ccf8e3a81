package cache

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"TradingAdvisor/internal/model"
)

// SQLiteStore persists fetched price history to a SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the SQLite database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so API reads do not block watch-mode writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logrus.WithField("path", dbPath).Info("sqlite price cache opened")
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS price_bars (
			symbol   TEXT NOT NULL,
			period   TEXT NOT NULL,
			bar_date INTEGER NOT NULL,
			open     REAL NOT NULL,
			high     REAL NOT NULL,
			low      REAL NOT NULL,
			close    REAL NOT NULL,
			volume   INTEGER NOT NULL,
			PRIMARY KEY (symbol, period, bar_date)
		)`,
		`CREATE TABLE IF NOT EXISTS fetch_log (
			symbol     TEXT NOT NULL,
			period     TEXT NOT NULL,
			fetched_at INTEGER NOT NULL,
			PRIMARY KEY (symbol, period)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// Get returns the cached bars for a symbol and period, plus their fetch time.
func (s *SQLiteStore) Get(symbol, period string) ([]model.Bar, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var fetchedAt int64
	err := s.db.QueryRow(
		`SELECT fetched_at FROM fetch_log WHERE symbol = ? AND period = ?`,
		symbol, period,
	).Scan(&fetchedAt)
	if err == sql.ErrNoRows {
		return nil, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("read fetch log: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT bar_date, open, high, low, close, volume
		 FROM price_bars WHERE symbol = ? AND period = ? ORDER BY bar_date`,
		symbol, period,
	)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("read bars: %w", err)
	}
	defer rows.Close()

	var bars []model.Bar
	for rows.Next() {
		var barDate int64
		var b model.Bar
		if err := rows.Scan(&barDate, &b.Open, &b.High, &b.Low, &b.Close, &b.Volume); err != nil {
			return nil, time.Time{}, fmt.Errorf("scan bar: %w", err)
		}
		b.Date = time.Unix(barDate, 0).UTC()
		bars = append(bars, b)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Time{}, fmt.Errorf("iterate bars: %w", err)
	}

	return bars, time.Unix(fetchedAt, 0).UTC(), nil
}

// Put replaces the cached bars for a symbol and period.
func (s *SQLiteStore) Put(symbol, period string, series *model.PriceSeries) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`DELETE FROM price_bars WHERE symbol = ? AND period = ?`, symbol, period,
	); err != nil {
		return fmt.Errorf("clear bars: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO price_bars (symbol, period, bar_date, open, high, low, close, volume)
		 VALUES (?,?,?,?,?,?,?,?)`,
	)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < series.Len(); i++ {
		b := series.Bar(i)
		if _, err := stmt.Exec(symbol, period, b.Date.Unix(), b.Open, b.High, b.Low, b.Close, b.Volume); err != nil {
			return fmt.Errorf("insert bar: %w", err)
		}
	}

	if _, err := tx.Exec(
		`INSERT INTO fetch_log (symbol, period, fetched_at) VALUES (?,?,?)
		 ON CONFLICT(symbol, period) DO UPDATE SET fetched_at = excluded.fetched_at`,
		symbol, period, time.Now().Unix(),
	); err != nil {
		return fmt.Errorf("update fetch log: %w", err)
	}

	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	logrus.Info("closing sqlite price cache")
	return s.db.Close()
}
