/*
handlers.go - HTTP API handlers for the labor cost engine

PURPOSE:
  Exposes the calculation engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the engine.
  The calculators themselves stay pure; this layer does the loading.

ENDPOINTS:
  Employees:
    GET    /api/employees                      List all employees
    POST   /api/employees                      Create employee
    GET    /api/employees/{id}                 Get employee details
    GET    /api/employees/{id}/punches         Punch history (from/to)
    POST   /api/employees/{id}/punches         Record a punch

  Shifts:
    GET    /api/shifts                         List shifts (from/to)
    POST   /api/shifts                         Plan a shift

  Labor costs:
    GET    /api/labor-costs/actual             Historical cost (from/to)
    GET    /api/labor-costs/actual/export      Same, as an XLSX download
    GET    /api/labor-costs/scheduled          Projected cost (from/to)

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Resource not found
  - 409: Duplicate ID
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/platewise/labor-engine/labor"
	"github.com/platewise/labor-engine/report"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store labor.Store
}

// NewHandler creates a new handler backed by the given store.
func NewHandler(store labor.Store) *Handler {
	return &Handler{Store: store}
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns all employees.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}

	dtos := make([]EmployeeDTO, len(employees))
	for i := range employees {
		dtos[i] = toEmployeeDTO(&employees[i])
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetEmployee returns a single employee.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, err := h.Store.GetEmployee(r.Context(), id)
	if errors.Is(err, labor.ErrEmployeeNotFound) {
		writeError(w, http.StatusNotFound, "Employee not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get employee", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(emp))
}

// CreateEmployee creates a new employee.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", nil)
		return
	}

	emp, err := toEmployee(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date field", err)
		return
	}
	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}
	if emp.Status == "" {
		emp.Status = labor.StatusActive
	}

	if err := h.Store.SaveEmployee(r.Context(), emp); err != nil {
		if errors.Is(err, labor.ErrDuplicateID) {
			writeError(w, http.StatusConflict, "Employee already exists", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to save employee", err)
		return
	}
	writeJSON(w, http.StatusCreated, toEmployeeDTO(&emp))
}

// =============================================================================
// PUNCH HANDLERS
// =============================================================================

// ListEmployeePunches returns one employee's punches in [from, to].
func (h *Handler) ListEmployeePunches(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	from, to, err := parseRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date range", err)
		return
	}

	punches, err := h.Store.PunchesForEmployee(r.Context(), id, from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list punches", err)
		return
	}

	dtos := make([]PunchDTO, len(punches))
	for i, p := range punches {
		dtos[i] = toPunchDTO(p)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// RecordPunch records a clock event for an employee.
func (h *Handler) RecordPunch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req RecordPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	punchTime, err := time.Parse(time.RFC3339, req.PunchTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, "punch_time must be RFC 3339", err)
		return
	}
	switch labor.PunchType(req.PunchType) {
	case labor.PunchClockIn, labor.PunchClockOut, labor.PunchBreakStart, labor.PunchBreakEnd:
	default:
		writeError(w, http.StatusBadRequest, "Unknown punch_type", nil)
		return
	}

	if _, err := h.Store.GetEmployee(r.Context(), id); err != nil {
		if errors.Is(err, labor.ErrEmployeeNotFound) {
			writeError(w, http.StatusNotFound, "Employee not found", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to look up employee", err)
		return
	}

	punch := labor.TimePunch{
		ID:         uuid.NewString(),
		EmployeeID: id,
		PunchTime:  punchTime,
		PunchType:  labor.PunchType(req.PunchType),
	}
	if err := h.Store.SavePunch(r.Context(), punch); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save punch", err)
		return
	}
	writeJSON(w, http.StatusCreated, toPunchDTO(punch))
}

// =============================================================================
// SHIFT HANDLERS
// =============================================================================

// ListShifts returns shifts starting in [from, to].
func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date range", err)
		return
	}

	shifts, err := h.Store.ShiftsInRange(r.Context(), from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list shifts", err)
		return
	}

	dtos := make([]ShiftDTO, len(shifts))
	for i, s := range shifts {
		dtos[i] = toShiftDTO(s)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateShift plans a shift.
func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, "start_time must be RFC 3339", err)
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, "end_time must be RFC 3339", err)
		return
	}
	if !end.After(start) {
		writeError(w, http.StatusBadRequest, "end_time must be after start_time", nil)
		return
	}

	if _, err := h.Store.GetEmployee(r.Context(), req.EmployeeID); err != nil {
		if errors.Is(err, labor.ErrEmployeeNotFound) {
			writeError(w, http.StatusNotFound, "Employee not found", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to look up employee", err)
		return
	}

	shift := labor.Shift{
		ID:           uuid.NewString(),
		EmployeeID:   req.EmployeeID,
		StartTime:    start,
		EndTime:      end,
		BreakMinutes: req.BreakMinutes,
	}
	if err := h.Store.SaveShift(r.Context(), shift); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save shift", err)
		return
	}
	writeJSON(w, http.StatusCreated, toShiftDTO(shift))
}

// =============================================================================
// LABOR COST HANDLERS
// =============================================================================

// ActualLaborCost computes the historical labor cost for [from, to].
func (h *Handler) ActualLaborCost(w http.ResponseWriter, r *http.Request) {
	result, ok := h.actualResult(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toLaborCostResponse(result))
}

// ExportActualLaborCost returns the historical labor cost as an XLSX file.
func (h *Handler) ExportActualLaborCost(w http.ResponseWriter, r *http.Request) {
	result, ok := h.actualResult(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="labor-costs.xlsx"`)
	if err := report.WriteLaborCostXLSX(w, result); err != nil {
		// Headers are already on the wire; nothing to do but log via middleware.
		return
	}
}

// ScheduledLaborCost projects labor cost from planned shifts for [from, to].
func (h *Handler) ScheduledLaborCost(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date range", err)
		return
	}

	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load employees", err)
		return
	}
	shifts, err := h.Store.ShiftsInRange(r.Context(), from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load shifts", err)
		return
	}

	result := labor.CalculateScheduledLaborCost(labor.ScheduledLaborCostInput{
		Employees: employees,
		Shifts:    shifts,
		StartDate: from,
		EndDate:   to,
	})
	writeJSON(w, http.StatusOK, toLaborCostResponse(result))
}

func (h *Handler) actualResult(w http.ResponseWriter, r *http.Request) (labor.LaborCostResult, bool) {
	from, to, err := parseRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date range", err)
		return labor.LaborCostResult{}, false
	}

	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load employees", err)
		return labor.LaborCostResult{}, false
	}
	punches, err := h.Store.PunchesInRange(r.Context(), from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load punches", err)
		return labor.LaborCostResult{}, false
	}

	return labor.CalculateActualLaborCost(labor.ActualLaborCostInput{
		Employees:   employees,
		TimePunches: punches,
		StartDate:   from,
		EndDate:     to,
	}), true
}

// =============================================================================
// HELPERS
// =============================================================================

// parseRange reads the required from/to query parameters (YYYY-MM-DD).
func parseRange(r *http.Request) (labor.Day, labor.Day, error) {
	from, err := labor.ParseDay(r.URL.Query().Get("from"))
	if err != nil {
		return labor.Day{}, labor.Day{}, fmt.Errorf("from: %w", err)
	}
	to, err := labor.ParseDay(r.URL.Query().Get("to"))
	if err != nil {
		return labor.Day{}, labor.Day{}, fmt.Errorf("to: %w", err)
	}
	if to.Before(from) {
		return labor.Day{}, labor.Day{}, fmt.Errorf("to precedes from")
	}
	return from, to, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Error = fmt.Sprintf("%s: %v", message, err)
	}
	writeJSON(w, status, resp)
}
