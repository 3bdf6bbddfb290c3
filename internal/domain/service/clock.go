package service

import "time"

// Clock is the wall-time source for every time-dependent rule.
type Clock interface {
	Now() time.Time
}
