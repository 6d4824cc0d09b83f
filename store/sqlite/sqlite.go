/*
Package sqlite provides a SQLite-backed implementation of labor.Store.

PURPOSE:
  Persists the three record kinds the calculation engine consumes:
  employees (with their effective-dated compensation history), time
  punches, and planned shifts. In production the same patterns apply to
  PostgreSQL - only minor SQL dialect differences.

KEY TABLES:
  employees:    Pay configuration; compensation history as a JSON column
  time_punches: Raw clock events, append-style
  shifts:       Planned work windows for projection

INDEXES:
  - idx_punches_employee_time: per-employee punch streams (hot path)
  - idx_punches_time: range queries for the actual calculator
  - idx_shifts_start: range queries for the scheduled calculator

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  multiple readers don't block, single writer at a time.

USAGE:
  store, err := sqlite.New("./data/labor.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool with versioned migrations.

SEE ALSO:
  - labor/store.go: interface definition
  - labor/store/memory.go: in-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/platewise/labor-engine/labor"
)

// Store implements labor.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ labor.Store = (*Store)(nil)

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
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		status TEXT NOT NULL,
		compensation_type TEXT NOT NULL,
		hourly_rate_cents INTEGER NOT NULL DEFAULT 0,
		salary_amount_cents INTEGER NOT NULL DEFAULT 0,
		pay_period_type TEXT NOT NULL DEFAULT '',
		contractor_payment_cents INTEGER NOT NULL DEFAULT 0,
		contractor_interval TEXT NOT NULL DEFAULT '',
		daily_rate_cents INTEGER NOT NULL DEFAULT 0,
		hire_date TEXT NOT NULL DEFAULT '',
		termination_date TEXT NOT NULL DEFAULT '',
		history_json TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS time_punches (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		punch_time TEXT NOT NULL,
		punch_type TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_punches_employee_time
		ON time_punches(employee_id, punch_time);
	CREATE INDEX IF NOT EXISTS idx_punches_time
		ON time_punches(punch_time);

	CREATE TABLE IF NOT EXISTS shifts (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		break_minutes INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_shifts_start
		ON shifts(start_time);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// EMPLOYEES
// =============================================================================

// historyEntryJSON is the persisted form of one compensation history entry.
type historyEntryJSON struct {
	EffectiveDate    string `json:"effective_date"`
	CompensationType string `json:"compensation_type"`
	AmountCents      int64  `json:"amount_cents"`
	PayPeriodType    string `json:"pay_period_type,omitempty"`
}

func (s *Store) ListEmployees(ctx context.Context) ([]labor.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, status, compensation_type, hourly_rate_cents,
		       salary_amount_cents, pay_period_type, contractor_payment_cents,
		       contractor_interval, daily_rate_cents, hire_date,
		       termination_date, history_json
		FROM employees ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var employees []labor.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *emp)
	}
	return employees, rows.Err()
}

func (s *Store) GetEmployee(ctx context.Context, id string) (*labor.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, status, compensation_type, hourly_rate_cents,
		       salary_amount_cents, pay_period_type, contractor_payment_cents,
		       contractor_interval, daily_rate_cents, hire_date,
		       termination_date, history_json
		FROM employees WHERE id = ?`, id)

	emp, err := scanEmployee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, labor.ErrEmployeeNotFound
	}
	return emp, err
}

func (s *Store) SaveEmployee(ctx context.Context, emp labor.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]historyEntryJSON, len(emp.CompensationHistory))
	for i, entry := range emp.CompensationHistory {
		history[i] = historyEntryJSON{
			EffectiveDate:    entry.EffectiveDate.String(),
			CompensationType: string(entry.CompensationType),
			AmountCents:      entry.AmountCents,
			PayPeriodType:    string(entry.PayPeriodType),
		}
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("marshal compensation history: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO employees (id, name, status, compensation_type,
			hourly_rate_cents, salary_amount_cents, pay_period_type,
			contractor_payment_cents, contractor_interval, daily_rate_cents,
			hire_date, termination_date, history_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		emp.ID, emp.Name, string(emp.Status), string(emp.CompensationType),
		emp.HourlyRateCents, emp.SalaryAmountCents, string(emp.PayPeriodType),
		emp.ContractorPaymentCents, string(emp.ContractorInterval),
		emp.DailyRateCents, dayOrEmpty(emp.HireDate), dayOrEmpty(emp.TerminationDate),
		string(historyJSON), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return labor.ErrDuplicateID
		}
		return fmt.Errorf("save employee: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (*labor.Employee, error) {
	var (
		emp                       labor.Employee
		status, compType          string
		payPeriod, interval       string
		hireDate, terminationDate string
		historyJSON               string
	)
	err := row.Scan(&emp.ID, &emp.Name, &status, &compType,
		&emp.HourlyRateCents, &emp.SalaryAmountCents, &payPeriod,
		&emp.ContractorPaymentCents, &interval, &emp.DailyRateCents,
		&hireDate, &terminationDate, &historyJSON)
	if err != nil {
		return nil, err
	}

	emp.Status = labor.EmployeeStatus(status)
	emp.CompensationType = labor.CompensationType(compType)
	emp.PayPeriodType = labor.PayPeriodType(payPeriod)
	emp.ContractorInterval = labor.ContractorInterval(interval)
	if emp.HireDate, err = parseDayOrZero(hireDate); err != nil {
		return nil, fmt.Errorf("employee %s: bad hire_date: %w", emp.ID, err)
	}
	if emp.TerminationDate, err = parseDayOrZero(terminationDate); err != nil {
		return nil, fmt.Errorf("employee %s: bad termination_date: %w", emp.ID, err)
	}

	var entries []historyEntryJSON
	if err := json.Unmarshal([]byte(historyJSON), &entries); err != nil {
		return nil, fmt.Errorf("employee %s: bad history_json: %w", emp.ID, err)
	}
	for _, e := range entries {
		day, err := labor.ParseDay(e.EffectiveDate)
		if err != nil {
			return nil, fmt.Errorf("employee %s: bad history effective_date: %w", emp.ID, err)
		}
		emp.CompensationHistory = append(emp.CompensationHistory, labor.CompensationEntry{
			EffectiveDate:    day,
			CompensationType: labor.CompensationType(e.CompensationType),
			AmountCents:      e.AmountCents,
			PayPeriodType:    labor.PayPeriodType(e.PayPeriodType),
		})
	}
	return &emp, nil
}

func dayOrEmpty(d labor.Day) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

func parseDayOrZero(s string) (labor.Day, error) {
	if s == "" {
		return labor.Day{}, nil
	}
	return labor.ParseDay(s)
}

// =============================================================================
// TIME PUNCHES
// =============================================================================

func (s *Store) PunchesInRange(ctx context.Context, from, to labor.Day) ([]labor.TimePunch, error) {
	return s.queryPunches(ctx, `
		SELECT id, employee_id, punch_time, punch_type FROM time_punches
		WHERE DATE(punch_time) BETWEEN ? AND ?
		ORDER BY punch_time`, from.String(), to.String())
}

func (s *Store) PunchesForEmployee(ctx context.Context, employeeID string, from, to labor.Day) ([]labor.TimePunch, error) {
	return s.queryPunches(ctx, `
		SELECT id, employee_id, punch_time, punch_type FROM time_punches
		WHERE employee_id = ? AND DATE(punch_time) BETWEEN ? AND ?
		ORDER BY punch_time`, employeeID, from.String(), to.String())
}

func (s *Store) queryPunches(ctx context.Context, query string, args ...any) ([]labor.TimePunch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query punches: %w", err)
	}
	defer rows.Close()

	var punches []labor.TimePunch
	for rows.Next() {
		var (
			p             labor.TimePunch
			punchTimeText string
			punchType     string
		)
		if err := rows.Scan(&p.ID, &p.EmployeeID, &punchTimeText, &punchType); err != nil {
			return nil, err
		}
		if p.PunchTime, err = time.Parse(time.RFC3339, punchTimeText); err != nil {
			return nil, fmt.Errorf("punch %s: bad punch_time: %w", p.ID, err)
		}
		p.PunchType = labor.PunchType(punchType)
		punches = append(punches, p)
	}
	return punches, rows.Err()
}

func (s *Store) SavePunch(ctx context.Context, punch labor.TimePunch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO time_punches (id, employee_id, punch_time, punch_type, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		punch.ID, punch.EmployeeID,
		punch.PunchTime.UTC().Format(time.RFC3339), string(punch.PunchType),
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return labor.ErrDuplicateID
		}
		return fmt.Errorf("save punch: %w", err)
	}
	return nil
}

// =============================================================================
// SHIFTS
// =============================================================================

func (s *Store) ShiftsInRange(ctx context.Context, from, to labor.Day) ([]labor.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, employee_id, start_time, end_time, break_minutes FROM shifts
		WHERE DATE(start_time) BETWEEN ? AND ?
		ORDER BY start_time`, from.String(), to.String())
	if err != nil {
		return nil, fmt.Errorf("query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []labor.Shift
	for rows.Next() {
		var (
			sh                 labor.Shift
			startText, endText string
		)
		if err := rows.Scan(&sh.ID, &sh.EmployeeID, &startText, &endText, &sh.BreakMinutes); err != nil {
			return nil, err
		}
		if sh.StartTime, err = time.Parse(time.RFC3339, startText); err != nil {
			return nil, fmt.Errorf("shift %s: bad start_time: %w", sh.ID, err)
		}
		if sh.EndTime, err = time.Parse(time.RFC3339, endText); err != nil {
			return nil, fmt.Errorf("shift %s: bad end_time: %w", sh.ID, err)
		}
		shifts = append(shifts, sh)
	}
	return shifts, rows.Err()
}

func (s *Store) SaveShift(ctx context.Context, shift labor.Shift) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO shifts (id, employee_id, start_time, end_time, break_minutes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		shift.ID, shift.EmployeeID,
		shift.StartTime.UTC().Format(time.RFC3339),
		shift.EndTime.UTC().Format(time.RFC3339),
		shift.BreakMinutes,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return labor.ErrDuplicateID
		}
		return fmt.Errorf("save shift: %w", err)
	}
	return nil
}
