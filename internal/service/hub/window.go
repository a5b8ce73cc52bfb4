package hub

import "time"

// LookbackStart returns the inclusive lower bound of the rolling window
// ending at now. Callers compute it once per evaluation and share it.
func LookbackStart(now time.Time, window time.Duration) time.Time {
	return now.Add(-window)
}

// windowDays is the window expressed in whole days, for user-facing copy.
func windowDays(window time.Duration) int {
	days := int(window / (24 * time.Hour))
	if days < 1 {
		return 1
	}
	return days
}
