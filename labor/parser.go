/*
parser.go - Work period reconstruction from punch streams

PURPOSE:
  Turns a noisy per-employee punch stream into work and break intervals.
  Time-clock data in the field is unreliable: employees forget to clock
  out, double-punch, or start breaks they never end. The parser is a
  tolerant fold that extracts every defensible interval and silently
  drops the rest.

STATE MACHINE:
  Three states, folded left-to-right over punches in time order:

    Idle       --clock_in-->    ClockedIn
    ClockedIn  --clock_out-->   Idle        (emit work period, bounded)
    ClockedIn  --break_start--> OnBreak     (emit work period, bounded)
    OnBreak    --break_end-->   ClockedIn   (emit break period, unbounded;
                                             clock-in rebased to break end)
    OnBreak    --clock_in-->    ClockedIn   (open break abandoned)
    *          --anything else-->           ignored, no period, no error

  The break_end rebase matters: after a break, work hours are measured
  from when work RESUMED, not from the original clock-in.

BOUNDS:
  A work period is valid only if 0 < hours <= 18 (MaxShiftGapHours).
  Longer spans indicate a missed clock-out and are discarded. Break
  periods have no upper bound check.

DIAGNOSTICS:
  ParseWorkPeriods keeps the tolerant, error-free contract. Callers that
  want to know WHAT was dropped use ParseWorkPeriodsDetailed, which also
  returns a diagnostics list. Diagnostics are advisory, never errors.

SEE ALSO:
  - dedup.go: run DeduplicatePunches first
  - actual.go: consumes the non-break periods
*/
package labor

import "fmt"

// MaxShiftGapHours bounds a single reconstructed work period. Spans longer
// than this indicate a missed clock-out, not an 18+ hour shift.
const MaxShiftGapHours = 18.0

// =============================================================================
// DIAGNOSTICS - Additive channel for dropped punches
// =============================================================================

type DiagnosticCode string

const (
	DiagUnmatchedClockOut   DiagnosticCode = "unmatched_clock_out"
	DiagUnmatchedBreakEnd   DiagnosticCode = "unmatched_break_end"
	DiagUnmatchedBreakStart DiagnosticCode = "unmatched_break_start"
	DiagReclockedIn         DiagnosticCode = "reclocked_in"
	DiagAbandonedBreak      DiagnosticCode = "abandoned_break"
	DiagDiscardedPeriod     DiagnosticCode = "discarded_period"
	DiagUnclosedClockIn     DiagnosticCode = "unclosed_clock_in"
)

// Diagnostic records one punch the parser could not turn into a period.
type Diagnostic struct {
	Punch   TimePunch
	Code    DiagnosticCode
	Message string
}

// =============================================================================
// PARSER
// =============================================================================

type parserState int

const (
	stateIdle parserState = iota
	stateClockedIn
	stateOnBreak
)

// ParseWorkPeriods reconstructs work and break intervals from a punch stream
// sorted ascending by punch time. It never fails; malformed or unpaired
// punches are dropped.
func ParseWorkPeriods(punches []TimePunch) []WorkPeriod {
	periods, _ := ParseWorkPeriodsDetailed(punches)
	return periods
}

// ParseWorkPeriodsDetailed is ParseWorkPeriods plus a diagnostics list
// naming every punch that was ignored and every period that was discarded.
func ParseWorkPeriodsDetailed(punches []TimePunch) ([]WorkPeriod, []Diagnostic) {
	var (
		periods     []WorkPeriod
		diagnostics []Diagnostic

		state        = stateIdle
		currentIn    TimePunch
		currentBreak TimePunch
	)

	report := func(p TimePunch, code DiagnosticCode, format string, args ...any) {
		diagnostics = append(diagnostics, Diagnostic{
			Punch:   p,
			Code:    code,
			Message: fmt.Sprintf(format, args...),
		})
	}

	// closeWork emits [currentIn, until) when it satisfies the shift bound.
	closeWork := func(until TimePunch) {
		hours := until.PunchTime.Sub(currentIn.PunchTime).Hours()
		if hours > 0 && hours <= MaxShiftGapHours {
			periods = append(periods, WorkPeriod{
				Start: currentIn.PunchTime,
				End:   until.PunchTime,
				Hours: hours,
			})
			return
		}
		report(until, DiagDiscardedPeriod,
			"work period of %.1fh outside (0, %.0f] discarded", hours, MaxShiftGapHours)
	}

	for _, p := range punches {
		switch p.PunchType {
		case PunchClockIn:
			switch state {
			case stateClockedIn:
				report(currentIn, DiagReclockedIn, "clock_in with shift already open; prior clock_in dropped")
			case stateOnBreak:
				report(currentBreak, DiagAbandonedBreak, "break abandoned by new clock_in")
			}
			currentIn = p
			state = stateClockedIn

		case PunchClockOut:
			if state == stateIdle {
				report(p, DiagUnmatchedClockOut, "clock_out with no open shift")
				continue
			}
			if state == stateOnBreak {
				report(currentBreak, DiagAbandonedBreak, "break abandoned by clock_out")
			}
			closeWork(p)
			state = stateIdle

		case PunchBreakStart:
			if state != stateClockedIn {
				report(p, DiagUnmatchedBreakStart, "break_start with no open shift or break already open")
				continue
			}
			// Close the work segment early; the shift stays open.
			closeWork(p)
			currentBreak = p
			state = stateOnBreak

		case PunchBreakEnd:
			if state != stateOnBreak {
				report(p, DiagUnmatchedBreakEnd, "break_end with no open break")
				continue
			}
			// Breaks are emitted unconditionally; no shift bound applies.
			periods = append(periods, WorkPeriod{
				Start:   currentBreak.PunchTime,
				End:     p.PunchTime,
				Hours:   p.PunchTime.Sub(currentBreak.PunchTime).Hours(),
				IsBreak: true,
			})
			// Rebase: post-break work is measured from when work resumed.
			currentIn.PunchTime = p.PunchTime
			state = stateClockedIn
		}
	}

	if state != stateIdle {
		report(currentIn, DiagUnclosedClockIn, "shift still open at end of punch stream; hours dropped")
	}

	return periods, diagnostics
}
