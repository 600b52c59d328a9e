// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package process persists ProcessRecords in a SQLite status store. The
// store supports partial field updates (any subset of status, result, error)
// and conditional transitions keyed on the expected prior status, which is
// how duplicate or racing invocations for the same process identifier are
// kept from clobbering each other.
package process

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jsenko/newsroom-engine/pkg/types"
)

var (
	// ErrNotFound is returned when no record exists for a process identifier.
	ErrNotFound = errors.New("process not found")

	// ErrConflict is returned by Transition when the record is not in the
	// expected prior status.
	ErrConflict = errors.New("process not in expected status")
)

// Fields is a partial update of a ProcessRecord. Status applies when
// non-empty; Result and Error apply when non-nil.
type Fields struct {
	Status types.ProcessStatus
	Result *string
	Error  *string
}

// Store manages the process status database.
type Store struct {
	db *sql.DB

	// now is stubbed in tests.
	now func() time.Time
}

// Open opens or creates the status database at cfg.Path and ensures the
// schema exists.
func Open(cfg types.StoreConfig) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = "newsroom.db"
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS processes (
		process_id TEXT PRIMARY KEY,
		question   TEXT NOT NULL DEFAULT '',
		status     TEXT NOT NULL,
		result     TEXT,
		error      TEXT,
		updated_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Create inserts a new PENDING record for id. Inserting an identifier that
// already exists is an error; process identifiers are caller-supplied and
// unique.
func (s *Store) Create(ctx context.Context, id, question string) error {
	query, args, err := sq.Insert("processes").
		Columns("process_id", "question", "status", "updated_at").
		Values(id, question, string(types.StatusPending), s.timestamp()).
		ToSql()
	if err != nil {
		return fmt.Errorf("building insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting process %s: %w", id, err)
	}
	return nil
}

// Get loads the record for id.
func (s *Store) Get(ctx context.Context, id string) (types.ProcessRecord, error) {
	query, args, err := sq.Select("process_id", "question", "status", "result", "error", "updated_at").
		From("processes").
		Where(sq.Eq{"process_id": id}).
		ToSql()
	if err != nil {
		return types.ProcessRecord{}, fmt.Errorf("building select: %w", err)
	}

	var rec types.ProcessRecord
	var result, errText sql.NullString
	var status, updatedAt string

	row := s.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&rec.ProcessID, &rec.Question, &status, &result, &errText, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.ProcessRecord{}, fmt.Errorf("process %s: %w", id, ErrNotFound)
		}
		return types.ProcessRecord{}, fmt.Errorf("loading process %s: %w", id, err)
	}

	rec.Status = types.ProcessStatus(status)
	rec.Result = result.String
	rec.Error = errText.String
	if t, err := time.Parse(time.RFC3339Nano, updatedAt); err == nil {
		rec.UpdatedAt = t
	}
	return rec, nil
}

// UpdateFields writes the given fields for id unconditionally, in one
// statement. At least one field must be set.
func (s *Store) UpdateFields(ctx context.Context, id string, f Fields) error {
	res, err := s.exec(ctx, s.updateBuilder(id, f))
	if err != nil {
		return fmt.Errorf("updating process %s: %w", id, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating process %s: %w", id, err)
	}
	if rows == 0 {
		return fmt.Errorf("process %s: %w", id, ErrNotFound)
	}
	return nil
}

// Transition writes the given fields for id only when the record's current
// status equals from. ErrConflict is returned when the precondition fails,
// which covers both a missing record and a record in another state.
func (s *Store) Transition(ctx context.Context, id string, from types.ProcessStatus, f Fields) error {
	builder := s.updateBuilder(id, f).Where(sq.Eq{"status": string(from)})
	res, err := s.exec(ctx, builder)
	if err != nil {
		return fmt.Errorf("transitioning process %s: %w", id, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("transitioning process %s: %w", id, err)
	}
	if rows == 0 {
		return fmt.Errorf("process %s is not %s: %w", id, from, ErrConflict)
	}
	return nil
}

func (s *Store) updateBuilder(id string, f Fields) sq.UpdateBuilder {
	builder := sq.Update("processes").
		Set("updated_at", s.timestamp()).
		Where(sq.Eq{"process_id": id})

	if f.Status != "" {
		builder = builder.Set("status", string(f.Status))
	}
	if f.Result != nil {
		builder = builder.Set("result", *f.Result)
	}
	if f.Error != nil {
		builder = builder.Set("error", *f.Error)
	}
	return builder
}

func (s *Store) exec(ctx context.Context, builder sq.UpdateBuilder) (sql.Result, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building update: %w", err)
	}
	return s.db.ExecContext(ctx, query, args...)
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}
