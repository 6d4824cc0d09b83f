/*
compensation.go - Point-in-time compensation resolution

PURPOSE:
  Resolves an employee's pay terms AS OF a given calendar day from their
  effective-dated compensation history. Historical labor cost must reflect
  what was true on each day, not today's settings: an employee who moved
  from hourly to salary on Feb 1 accrues hourly cost before that date and
  salary allocation from it.

RESOLUTION RULE:
  Pick the history entry with the greatest effective date <= target day.
  With no qualifying entry (including an empty history), fall back to the
  employee's live top-level fields.

SNAPSHOT SHAPE:
  The snapshot carries only the fields relevant to the resolved type; the
  others stay zero. A snapshot missing a required amount yields zero cost
  downstream, never an error.
*/
package labor

import "sort"

// ResolveCompensation returns the employee's pay terms valid on the given
// day. All cost math for that day must use the returned snapshot exclusively.
func ResolveCompensation(emp *Employee, day Day) CompensationSnapshot {
	entry := historyEntryFor(emp, day)
	if entry == nil {
		return liveSnapshot(emp)
	}

	snap := CompensationSnapshot{Type: entry.CompensationType}
	switch entry.CompensationType {
	case CompHourly:
		snap.HourlyRateCents = entry.AmountCents
	case CompSalary:
		snap.SalaryAmountCents = entry.AmountCents
		snap.PayPeriodType = entry.PayPeriodType
		if snap.PayPeriodType == "" {
			snap.PayPeriodType = emp.PayPeriodType
		}
	case CompContractor:
		snap.ContractorPaymentCents = entry.AmountCents
		// History entries carry no interval; it comes from the live record.
		snap.ContractorInterval = emp.ContractorInterval
	case CompDailyRate:
		snap.DailyRateCents = entry.AmountCents
	}
	return snap
}

// historyEntryFor returns the history entry governing the given day, or nil.
func historyEntryFor(emp *Employee, day Day) *CompensationEntry {
	if len(emp.CompensationHistory) == 0 {
		return nil
	}

	// Sort a copy descending by effective date and take the first entry at
	// or before the target day.
	entries := make([]CompensationEntry, len(emp.CompensationHistory))
	copy(entries, emp.CompensationHistory)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[j].EffectiveDate.Before(entries[i].EffectiveDate)
	})

	for i := range entries {
		if entries[i].EffectiveDate.BeforeOrEqual(day) {
			return &entries[i]
		}
	}
	return nil
}

func liveSnapshot(emp *Employee) CompensationSnapshot {
	snap := CompensationSnapshot{Type: emp.CompensationType}
	switch emp.CompensationType {
	case CompHourly:
		snap.HourlyRateCents = emp.HourlyRateCents
	case CompSalary:
		snap.SalaryAmountCents = emp.SalaryAmountCents
		snap.PayPeriodType = emp.PayPeriodType
	case CompContractor:
		snap.ContractorPaymentCents = emp.ContractorPaymentCents
		snap.ContractorInterval = emp.ContractorInterval
	case CompDailyRate:
		snap.DailyRateCents = emp.DailyRateCents
	}
	return snap
}
