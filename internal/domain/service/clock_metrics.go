package service

// Outcomes reported to ClockMetrics.
const (
	OutcomeOK       = "ok"
	OutcomeBlocked  = "blocked"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

// ClockMetrics records session transitions.
type ClockMetrics interface {
	ObserveClockIn(outcome string)
	ObserveClockOut(outcome string, automatic bool)
	ObserveHoursRecorded(hours float64)
}
