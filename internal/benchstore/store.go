// Package benchstore persists benchmarking runs for cmd/sfvbench: one
// row per corpus fixture parsed and re-serialized, with its duration.
package benchstore

import (
	"database/sql"
	"sync"
	"time"

	_ "github.com/glebarez/go-sqlite"
)

// Run is a single benchmark invocation against one corpus fixture.
type Run struct {
	ID         string
	Fixture    string
	DurationNs int64
	RecordedAt time.Time
}

// RunStore is an interface for a benchmark run history.
// Implementations must be thread-safe.
type RunStore interface {
	// Put stores the given run.
	Put(run Run) error
	// All returns every stored run, in no particular order.
	All() ([]Run, error)
	// Purge removes the run with the given ID.
	Purge(id string)
}

// MemStore is a RunStore backed by an in-memory map.
type MemStore struct {
	mutex *sync.RWMutex
	db    map[string]Run
}

// NewMemStore builds an empty MemStore.
func NewMemStore() MemStore {
	return MemStore{
		mutex: &sync.RWMutex{},
		db:    make(map[string]Run),
	}
}

func (m MemStore) Put(run Run) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.db[run.ID] = run
	return nil
}

func (m MemStore) All() ([]Run, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	runs := make([]Run, 0, len(m.db))
	for _, run := range m.db {
		runs = append(runs, run)
	}
	return runs, nil
}

func (m MemStore) Purge(id string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.db, id)
}

// SQLiteStore is a RunStore backed by a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and, if needed, creates) the run history database
// at path.
func NewSQLiteStore(path string) (SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return SQLiteStore{}, err
	}
	_, err = db.Exec("CREATE TABLE IF NOT EXISTS runs (id TEXT PRIMARY KEY, fixture TEXT, duration_ns INTEGER, recorded_at INTEGER)")
	if err != nil {
		return SQLiteStore{}, err
	}
	_, err = db.Exec("CREATE INDEX IF NOT EXISTS recorded_at_idx ON runs (recorded_at)")
	if err != nil {
		return SQLiteStore{}, err
	}
	return SQLiteStore{db: db}, nil
}

func (s SQLiteStore) Put(run Run) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO runs (id, fixture, duration_ns, recorded_at) VALUES (?, ?, ?, ?)",
		run.ID, run.Fixture, run.DurationNs, run.RecordedAt.Unix(),
	)
	return err
}

func (s SQLiteStore) All() ([]Run, error) {
	rows, err := s.db.Query("SELECT id, fixture, duration_ns, recorded_at FROM runs")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var recordedAt int64
		if err := rows.Scan(&run.ID, &run.Fixture, &run.DurationNs, &recordedAt); err != nil {
			return nil, err
		}
		run.RecordedAt = time.Unix(recordedAt, 0)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (s SQLiteStore) Purge(id string) {
	_, err := s.db.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		panic(err)
	}
}
