package labor

import "time"

// =============================================================================
// PUNCH DEDUPLICATION - Tolerate double-tap artifacts from clock devices
// =============================================================================

// dedupWindow is the maximum gap between two consecutive punches of the same
// type for them to be treated as one physical event.
const dedupWindow = 5 * time.Minute

// DeduplicatePunches collapses runs of consecutive punches with identical
// punch type whose gaps are under five minutes, keeping the LATER punch of
// each run. Input must already be sorted ascending by punch time. Empty and
// singleton inputs are returned unchanged. Idempotent.
func DeduplicatePunches(punches []TimePunch) []TimePunch {
	if len(punches) < 2 {
		return punches
	}

	result := make([]TimePunch, 0, len(punches))
	for _, p := range punches {
		if n := len(result); n > 0 {
			last := result[n-1]
			if last.PunchType == p.PunchType && p.PunchTime.Sub(last.PunchTime) < dedupWindow {
				// Same run: the later punch wins.
				result[n-1] = p
				continue
			}
		}
		result = append(result, p)
	}
	return result
}
