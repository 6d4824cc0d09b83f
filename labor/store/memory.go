// Package store provides an in-memory labor.Store implementation
// (for testing/dev).
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/platewise/labor-engine/labor"
)

// =============================================================================
// MEMORY STORE
// =============================================================================

type Memory struct {
	mu        sync.RWMutex
	employees map[string]labor.Employee
	punches   []labor.TimePunch
	shifts    []labor.Shift
}

func NewMemory() *Memory {
	return &Memory{employees: make(map[string]labor.Employee)}
}

var _ labor.Store = (*Memory)(nil)

func (m *Memory) ListEmployees(_ context.Context) ([]labor.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]labor.Employee, 0, len(m.employees))
	for _, emp := range m.employees {
		result = append(result, emp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *Memory) GetEmployee(_ context.Context, id string) (*labor.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	emp, ok := m.employees[id]
	if !ok {
		return nil, labor.ErrEmployeeNotFound
	}
	return &emp, nil
}

func (m *Memory) SaveEmployee(_ context.Context, emp labor.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.employees[emp.ID]; exists {
		return labor.ErrDuplicateID
	}
	m.employees[emp.ID] = emp
	return nil
}

func (m *Memory) PunchesInRange(_ context.Context, from, to labor.Day) ([]labor.TimePunch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.punchesLocked("", from, to), nil
}

func (m *Memory) PunchesForEmployee(_ context.Context, employeeID string, from, to labor.Day) ([]labor.TimePunch, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.punchesLocked(employeeID, from, to), nil
}

func (m *Memory) punchesLocked(employeeID string, from, to labor.Day) []labor.TimePunch {
	result := make([]labor.TimePunch, 0)
	for _, p := range m.punches {
		if employeeID != "" && p.EmployeeID != employeeID {
			continue
		}
		day := labor.DayOf(p.PunchTime)
		if day.Before(from) || day.After(to) {
			continue
		}
		result = append(result, p)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].PunchTime.Before(result[j].PunchTime)
	})
	return result
}

func (m *Memory) SavePunch(_ context.Context, punch labor.TimePunch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.punches = append(m.punches, punch)
	return nil
}

func (m *Memory) ShiftsInRange(_ context.Context, from, to labor.Day) ([]labor.Shift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]labor.Shift, 0)
	for _, s := range m.shifts {
		day := labor.DayOf(s.StartTime)
		if day.Before(from) || day.After(to) {
			continue
		}
		result = append(result, s)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartTime.Before(result[j].StartTime)
	})
	return result, nil
}

func (m *Memory) SaveShift(_ context.Context, shift labor.Shift) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shifts = append(m.shifts, shift)
	return nil
}
