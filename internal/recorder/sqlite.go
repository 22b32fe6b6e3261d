package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"RetailRadar/internal/dataset"
	"RetailRadar/internal/model"
	"RetailRadar/internal/store"
)

// SQLiteRecorder persists dataset snapshots to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite snapshot store opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS observations (
			id      INTEGER PRIMARY KEY AUTOINCREMENT,
			dataset TEXT NOT NULL,
			date    INTEGER NOT NULL,
			value   REAL NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_obs_dataset ON observations(dataset, date)`,

		`CREATE TABLE IF NOT EXISTS foundings (
			id      INTEGER PRIMARY KEY AUTOINCREMENT,
			company TEXT NOT NULL,
			founded INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS snapshots (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			taken_at INTEGER NOT NULL
		)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordSnapshot replaces the stored snapshot with the successfully loaded
// datasets from res. Datasets that failed to load are skipped, keeping
// whatever the previous snapshot held for them.
func (r *SQLiteRecorder) RecordSnapshot(res *store.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin snapshot: %w", err)
	}
	defer tx.Rollback()

	series := map[string]model.Series{
		dataset.Sales:   res.Sales,
		dataset.Loans:   res.Loans,
		dataset.Percent: res.Percent,
	}
	for name, s := range series {
		if res.Errors[name] != nil {
			continue
		}
		if _, err := tx.Exec(`DELETE FROM observations WHERE dataset = ?`, name); err != nil {
			return fmt.Errorf("clear %s: %w", name, err)
		}
		for _, p := range s {
			if _, err := tx.Exec(`INSERT INTO observations (dataset, date, value) VALUES (?,?,?)`,
				name, p.Date.Unix(), p.Value); err != nil {
				return fmt.Errorf("insert %s: %w", name, err)
			}
		}
	}

	if res.Errors[dataset.Founding] == nil {
		if _, err := tx.Exec(`DELETE FROM foundings`); err != nil {
			return fmt.Errorf("clear foundings: %w", err)
		}
		for _, f := range res.Founding {
			if _, err := tx.Exec(`INSERT INTO foundings (company, founded) VALUES (?,?)`,
				f.Company, f.Founded.Unix()); err != nil {
				return fmt.Errorf("insert founding: %w", err)
			}
		}
	}

	if _, err := tx.Exec(`INSERT INTO snapshots (taken_at) VALUES (?)`, time.Now().Unix()); err != nil {
		return fmt.Errorf("record snapshot time: %w", err)
	}
	return tx.Commit()
}

// LoadSnapshot reconstructs a load result from the stored snapshot.
func (r *SQLiteRecorder) LoadSnapshot() (*store.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := &store.Result{
		Errors:  make(map[string]error),
		Skipped: make(map[string]int),
	}

	for _, name := range []string{dataset.Sales, dataset.Loans, dataset.Percent} {
		s, err := r.readSeries(name)
		if err != nil {
			return nil, err
		}
		switch name {
		case dataset.Sales:
			res.Sales = s
		case dataset.Loans:
			res.Loans = s
		case dataset.Percent:
			res.Percent = s
		}
	}

	rows, err := r.db.Query(`SELECT company, founded FROM foundings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("read foundings: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var company string
		var founded int64
		if err := rows.Scan(&company, &founded); err != nil {
			return nil, fmt.Errorf("scan founding: %w", err)
		}
		res.Founding = append(res.Founding, model.FoundingRecord{
			Company: company,
			Founded: time.Unix(founded, 0).UTC(),
		})
	}
	return res, rows.Err()
}

func (r *SQLiteRecorder) readSeries(name string) (model.Series, error) {
	rows, err := r.db.Query(`SELECT date, value FROM observations WHERE dataset = ? ORDER BY id`, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	defer rows.Close()

	var s model.Series
	for rows.Next() {
		var date int64
		var value float64
		if err := rows.Scan(&date, &value); err != nil {
			return nil, fmt.Errorf("scan %s: %w", name, err)
		}
		s = append(s, model.SeriesPoint{Date: time.Unix(date, 0).UTC(), Value: value})
	}
	return s, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite snapshot store")
	return r.db.Close()
}
