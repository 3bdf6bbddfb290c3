// Package worktime holds the rules that govern work sessions: the maximum
// shift cap, the weekend blackout window and the rounding used for reported hours.
package worktime

import (
	"math"
	"time"
)

const (
	// DefaultMaxShift is the longest duration a single entry may cover. The
	// schema's check constraint enforces it, so a policy can only shorten it.
	DefaultMaxShift = 15 * time.Hour
	// DefaultSaturdayCutoffHour is the local hour from which Saturday is blacked out.
	DefaultSaturdayCutoffHour = 18

	// DayLayout is the key format used for per-day aggregates.
	DayLayout = "2006-01-02"
)

// Reasons reported by IsRestricted.
const (
	ReasonSunday          = "clocking is not allowed on Sundays"
	ReasonSaturdayEvening = "clocking is not allowed on Saturday evenings"
)

// Policy configures the session rules.
type Policy struct {
	MaxShift           time.Duration
	SaturdayCutoffHour int
}

// DefaultPolicy returns the 15h cap with the Saturday 18:00 blackout.
func DefaultPolicy() Policy {
	return Policy{
		MaxShift:           DefaultMaxShift,
		SaturdayCutoffHour: DefaultSaturdayCutoffHour,
	}
}

// IsRestricted reports whether instant falls in the weekend blackout window
// as observed in the named IANA zone. An empty or unknown zone fails open, and
// so does "Local", which names the server's zone rather than the caller's.
func (p Policy) IsRestricted(timezone string, instant time.Time) (bool, string) {
	if timezone == "" || timezone == "Local" {
		return false, ""
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return false, ""
	}

	local := instant.In(loc)
	switch local.Weekday() {
	case time.Sunday:
		return true, ReasonSunday
	case time.Saturday:
		if local.Hour() >= p.SaturdayCutoffHour {
			return true, ReasonSaturdayEvening
		}
	}

	return false, ""
}

// CloseTime returns the end time to record for an entry started at start and
// closed at now. The result never precedes start and never exceeds the shift cap.
func (p Policy) CloseTime(start, now time.Time) time.Time {
	if now.Before(start) {
		return start
	}
	if limit := p.shiftCap(); now.Sub(start) > limit {
		return start.Add(limit)
	}

	return now
}

// IsExpired reports whether an entry started at start has reached the shift cap at now.
func (p Policy) IsExpired(start, now time.Time) bool {
	return now.Sub(start) >= p.shiftCap()
}

// shiftCap is MaxShift bounded to (0, DefaultMaxShift].
func (p Policy) shiftCap() time.Duration {
	if p.MaxShift <= 0 || p.MaxShift > DefaultMaxShift {
		return DefaultMaxShift
	}

	return p.MaxShift
}

// ElapsedSeconds returns the whole seconds between start and now, floored at zero.
func ElapsedSeconds(start, now time.Time) int64 {
	elapsed := now.Sub(start)
	if elapsed < 0 {
		return 0
	}

	return int64(elapsed / time.Second)
}

// Hours converts a duration to hours rounded to two decimals.
func Hours(d time.Duration) float64 {
	return RoundHours(d.Hours())
}

// RoundHours rounds an hour value to two decimals.
func RoundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

// YearBounds returns [Jan 1 of year, Jan 1 of year+1) in UTC.
func YearBounds(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	return start, start.AddDate(1, 0, 0)
}

// DayKey returns the UTC calendar date of t.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayLayout)
}
