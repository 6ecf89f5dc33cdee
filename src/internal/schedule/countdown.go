package schedule

import (
	"fmt"
	"time"

	"github.com/spride/spride-web/src/internal/model"
)

// CountdownLimit is how many of the leading trips carry a countdown.
const CountdownLimit = 3

type Countdown struct {
	Minutes  int
	Departed bool
}

// Remaining computes the countdown for t at now. A trip leaving this very
// minute counts as departed.
func Remaining(t model.Trip, now time.Time) (Countdown, error) {
	dep, err := ParseMinutes(t.DepartureTime)
	if err != nil {
		return Countdown{}, err
	}
	left := dep - MinuteOfDay(now)
	if left <= 0 {
		return Countdown{Departed: true}, nil
	}
	return Countdown{Minutes: left}, nil
}

// Label renders c with the translator tr, which must resolve "departed",
// "minutesLeft" and "hoursMinutesLeft".
func (c Countdown) Label(tr func(string) string) string {
	switch {
	case c.Departed:
		return tr("departed")
	case c.Minutes < 60:
		return fmt.Sprintf(tr("minutesLeft"), c.Minutes)
	default:
		return fmt.Sprintf(tr("hoursMinutesLeft"), c.Minutes/60, c.Minutes%60)
	}
}
