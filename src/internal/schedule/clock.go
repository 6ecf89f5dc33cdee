package schedule

import "time"

type Clock interface {
	Now() time.Time
	// Ticker returns a tick channel and a stop function.
	Ticker(d time.Duration) (<-chan time.Time, func())
}

type systemClock struct {
	loc *time.Location
}

// SystemClock reports wall time in loc.
func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time { return time.Now().In(c.loc) }

func (c systemClock) Ticker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}
