// Package store archives computed reports in SQLite so past
// evaluations can be listed and re-read. The core pipeline never
// touches it; only the serving surfaces write here.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"jungtsi/internal/report"
)

// DefaultDBPath is where the archive lives unless configured otherwise.
const DefaultDBPath = ".jungtsi/reports.db"

// ErrNotFound is returned when a report ID has no record.
var ErrNotFound = errors.New("report not found")

// currentSchemaVersion is the target schema version for this build.
const currentSchemaVersion = 1

// Record is one archived report.
type Record struct {
	ID             string          `json:"id"`
	BirthYear      int             `json:"birth_year"`
	ReferenceYear  int             `json:"reference_year"`
	Age            int             `json:"age"`
	Gender         string          `json:"gender"`
	Status         string          `json:"status"`
	TriggeredCount int             `json:"triggered_count"`
	CreatedAt      string          `json:"created_at"`
	Payload        json.RawMessage `json:"payload,omitempty"`
}

// Store is a SQLite-backed report archive.
type Store struct {
	db *sql.DB
}

// nowUTC returns the current UTC time as an ISO 8601 string.
func nowUTC() string { return time.Now().UTC().Format(time.RFC3339) }

// Open opens or creates a SQLite DB at path and runs migrations.
// Creates the parent directory (e.g. .jungtsi) if it does not exist.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("create schema_version: %w", err)
	}
	var version int
	err := s.db.QueryRow(`SELECT version FROM schema_version LIMIT 1`).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		if _, err := s.db.Exec(`INSERT INTO schema_version (version) VALUES (?)`, currentSchemaVersion); err != nil {
			return fmt.Errorf("insert schema version: %w", err)
		}
		version = 0
	} else if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version > currentSchemaVersion {
		return fmt.Errorf("store schema version %d newer than supported %d", version, currentSchemaVersion)
	}

	_, err = s.db.Exec(`CREATE TABLE IF NOT EXISTS reports (
		id              TEXT PRIMARY KEY,
		birth_year      INTEGER NOT NULL,
		reference_year  INTEGER NOT NULL,
		age             INTEGER NOT NULL,
		gender          TEXT NOT NULL,
		status          TEXT NOT NULL,
		triggered_count INTEGER NOT NULL,
		payload         TEXT NOT NULL,
		created_at      TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("create reports: %w", err)
	}
	return nil
}

// Save archives a computed report and returns its record.
func (s *Store) Save(in report.Input, r *report.Report) (*Record, error) {
	payload, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}

	rec := &Record{
		ID:             uuid.NewString(),
		BirthYear:      in.BirthYear,
		ReferenceYear:  in.ReferenceYear,
		Age:            in.Age,
		Gender:         in.Gender,
		Status:         string(r.Demographics.Status),
		TriggeredCount: len(r.TriggeredFindings()),
		CreatedAt:      nowUTC(),
		Payload:        payload,
	}

	_, err = s.db.Exec(`INSERT INTO reports
		(id, birth_year, reference_year, age, gender, status, triggered_count, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.BirthYear, rec.ReferenceYear, rec.Age, rec.Gender, rec.Status,
		rec.TriggeredCount, string(rec.Payload), rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert report: %w", err)
	}
	return rec, nil
}

// List returns the most recent records, newest first, without payloads.
func (s *Store) List(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`SELECT id, birth_year, reference_year, age, gender, status, triggered_count, created_at
		FROM reports ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.BirthYear, &rec.ReferenceYear, &rec.Age,
			&rec.Gender, &rec.Status, &rec.TriggeredCount, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Get returns one record with its full report payload.
func (s *Store) Get(id string) (*Record, error) {
	var rec Record
	var payload string
	err := s.db.QueryRow(`SELECT id, birth_year, reference_year, age, gender, status, triggered_count, payload, created_at
		FROM reports WHERE id = ?`, id).
		Scan(&rec.ID, &rec.BirthYear, &rec.ReferenceYear, &rec.Age,
			&rec.Gender, &rec.Status, &rec.TriggeredCount, &payload, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	rec.Payload = json.RawMessage(payload)
	return &rec, nil
}
