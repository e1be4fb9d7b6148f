// Package session assigns a UUID to each compilation run and appends a row
// to a sqlite-backed history journal, for cmd/ionc's `ionc history <path>`
// command. Grounded on the teacher's go.mod carrying google/uuid and
// modernc.org/sqlite as direct dependencies (retrieved usage is test-fixture
// only — see DESIGN.md) generalized to real, non-test use: one UUID per run,
// one append-only audit table.
//
// This is deliberately not incremental reanalysis (spec.md §1's Non-goal):
// the journal is written once per run and never read back during a
// compile, only queried afterward by the history subcommand.
package session

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Session identifies one `compile` invocation for journal correlation.
type Session struct {
	ID uuid.UUID
}

// New mints a fresh Session.
func New() Session {
	return Session{ID: uuid.New()}
}

// Journal is an append-only sqlite log of past compilation runs.
type Journal struct {
	db *sql.DB
}

// OpenJournal opens (creating if necessary) the sqlite database at path and
// ensures its schema exists.
func OpenJournal(path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	const schema = `
CREATE TABLE IF NOT EXISTS runs (
	session_id   TEXT PRIMARY KEY,
	ran_at       TEXT NOT NULL,
	file         TEXT NOT NULL,
	diagnostics  INTEGER NOT NULL,
	exit_code    INTEGER NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Journal{db: db}, nil
}

// Close releases the underlying database handle.
func (j *Journal) Close() error { return j.db.Close() }

// Record appends one row describing a finished compilation run.
func (j *Journal) Record(s Session, file string, diagnosticCount, exitCode int) error {
	_, err := j.db.Exec(
		`INSERT INTO runs (session_id, ran_at, file, diagnostics, exit_code) VALUES (?, ?, ?, ?, ?)`,
		s.ID.String(), time.Now().UTC().Format(time.RFC3339), file, diagnosticCount, exitCode,
	)
	return err
}

// Run is one journaled compilation, as returned by History.
type Run struct {
	SessionID   string
	RanAt       string
	File        string
	Diagnostics int
	ExitCode    int
}

// History returns every journaled run for file, most recent first.
func (j *Journal) History(file string) ([]Run, error) {
	rows, err := j.db.Query(
		`SELECT session_id, ran_at, file, diagnostics, exit_code FROM runs WHERE file = ? ORDER BY ran_at DESC`,
		file,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.SessionID, &r.RanAt, &r.File, &r.Diagnostics, &r.ExitCode); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
