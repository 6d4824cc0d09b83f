/*
store.go - Persistence interface for the records the engine consumes

PURPOSE:
  Defines the interface between the calculation engine's callers and the
  database. The engine itself never touches a Store: calculators take
  fully-materialized slices. The Store exists so the API layer can load
  employees, punches, and shifts for a requested date range.

IMPLEMENTATIONS:
  - store/sqlite/sqlite.go: production SQLite
  - labor/store/memory.go: in-memory for testing/dev

ERRORS:
  Lookups for missing records return ErrEmployeeNotFound (use errors.Is).
  Range queries return empty slices, not errors, when nothing matches.
*/
package labor

import (
	"context"
	"errors"
)

var (
	// ErrEmployeeNotFound is returned when a referenced employee doesn't exist.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrDuplicateID is returned when creating a record whose ID already exists.
	ErrDuplicateID = errors.New("duplicate id")
)

// Store loads and saves the plain records the calculators consume.
type Store interface {
	// ListEmployees returns all employees, ordered by ID.
	ListEmployees(ctx context.Context) ([]Employee, error)

	// GetEmployee returns one employee or ErrEmployeeNotFound.
	GetEmployee(ctx context.Context, id string) (*Employee, error)

	// SaveEmployee inserts a new employee. Returns ErrDuplicateID on conflict.
	SaveEmployee(ctx context.Context, emp Employee) error

	// PunchesInRange returns punches with punch day in [from, to],
	// ordered by punch time ascending.
	PunchesInRange(ctx context.Context, from, to Day) ([]TimePunch, error)

	// PunchesForEmployee returns one employee's punches in [from, to].
	PunchesForEmployee(ctx context.Context, employeeID string, from, to Day) ([]TimePunch, error)

	// SavePunch inserts a punch record.
	SavePunch(ctx context.Context, punch TimePunch) error

	// ShiftsInRange returns shifts starting in [from, to], ordered by start time.
	ShiftsInRange(ctx context.Context, from, to Day) ([]Shift, error)

	// SaveShift inserts a shift record.
	SaveShift(ctx context.Context, shift Shift) error
}
