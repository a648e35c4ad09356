/*
Package sqlite provides a SQLite-backed implementation of schedule.Store.

PURPOSE:
  Persists the two engine collections (employees, leave_records) in
  SQLite with whole-collection read/replace semantics: a write runs a
  single SQL transaction that deletes the collection and re-inserts every
  row, and a read scans the collection in stored order. The engine never
  issues a partial update, so this keeps persistence atomic from its
  point of view.

TIME REPRESENTATION:
  Leave intervals are stored as the HH:MM boundary labels the external
  contract requires (start_time, end_time); the engine's boundary-index
  representation is converted at this layer. Dates are ISO strings,
  applied_at is RFC3339.

ORDERING:
  An explicit position column preserves append order across a write/read
  round trip.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency
  and crash recovery.

USAGE:
  store, err := sqlite.New("./data/leave.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - schedule/store.go: Interface definition
  - store/memory: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/leave-scheduler/schedule"
)

// Store implements schedule.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		position INTEGER PRIMARY KEY,
		id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		proxy_id TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS leave_records (
		position INTEGER PRIMARY KEY,
		id TEXT NOT NULL UNIQUE,
		employee_id TEXT NOT NULL,
		employee_name TEXT NOT NULL,
		date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		reason TEXT NOT NULL,
		status TEXT NOT NULL,
		needs_special_approval BOOLEAN NOT NULL DEFAULT FALSE,
		reject_reason TEXT NOT NULL DEFAULT '',
		applied_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_leave_records_date
		ON leave_records(date);
	CREATE INDEX IF NOT EXISTS idx_leave_records_employee
		ON leave_records(employee_id);
	CREATE INDEX IF NOT EXISTS idx_leave_records_status
		ON leave_records(status);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func (s *Store) ReadEmployees(ctx context.Context) ([]schedule.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, proxy_id FROM employees ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []schedule.Employee
	for rows.Next() {
		var emp schedule.Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.ProxyID); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (s *Store) WriteEmployees(ctx context.Context, employees []schedule.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM employees`); err != nil {
		return fmt.Errorf("failed to clear employees: %w", err)
	}
	for i, emp := range employees {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO employees (position, id, name, proxy_id) VALUES (?, ?, ?, ?)`,
			i, emp.ID, emp.Name, emp.ProxyID)
		if err != nil {
			return fmt.Errorf("failed to insert employee %s: %w", emp.ID, err)
		}
	}

	return tx.Commit()
}

// =============================================================================
// LEAVE RECORDS
// =============================================================================

func (s *Store) ReadLeaveRecords(ctx context.Context) ([]schedule.LeaveRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, employee_id, employee_name, date, start_time, end_time,
		       reason, status, needs_special_approval, reject_reason, applied_at
		FROM leave_records ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave records: %w", err)
	}
	defer rows.Close()

	var records []schedule.LeaveRecord
	for rows.Next() {
		var rec schedule.LeaveRecord
		var startTime, endTime, appliedAt string
		err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.Date,
			&startTime, &endTime, &rec.Reason, &rec.Status,
			&rec.NeedsSpecialApproval, &rec.RejectReason, &appliedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave record: %w", err)
		}

		start, ok := schedule.BoundaryIndex(startTime)
		if !ok {
			return nil, fmt.Errorf("record %s: start_time %q not in boundary catalog", rec.ID, startTime)
		}
		end, ok := schedule.BoundaryIndex(endTime)
		if !ok {
			return nil, fmt.Errorf("record %s: end_time %q not in boundary catalog", rec.ID, endTime)
		}
		rec.Start = start
		rec.End = end

		rec.AppliedAt, err = time.Parse(time.RFC3339Nano, appliedAt)
		if err != nil {
			return nil, fmt.Errorf("record %s: bad applied_at: %w", rec.ID, err)
		}

		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) WriteLeaveRecords(ctx context.Context, records []schedule.LeaveRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM leave_records`); err != nil {
		return fmt.Errorf("failed to clear leave records: %w", err)
	}
	for i, rec := range records {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO leave_records (position, id, employee_id, employee_name, date,
				start_time, end_time, reason, status, needs_special_approval,
				reject_reason, applied_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, rec.ID, rec.EmployeeID, rec.EmployeeName, rec.Date,
			schedule.BoundaryLabel(rec.Start), schedule.BoundaryLabel(rec.End),
			rec.Reason, rec.Status, rec.NeedsSpecialApproval,
			rec.RejectReason, rec.AppliedAt.Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("failed to insert leave record %s: %w", rec.ID, err)
		}
	}

	return tx.Commit()
}
