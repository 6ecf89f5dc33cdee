// Package schedule filters the static shuttle timetable and keeps the
// schedule view's clock-driven state.
package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spride/spride-web/src/internal/model"
)

// ParseMinutes converts "HH:MM" (optionally ":SS") to minutes since midnight.
func ParseMinutes(hhmm string) (int, error) {
	parts := strings.Split(hhmm, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("departure time %q: want HH:MM", hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("departure time %q: bad hour", hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("departure time %q: bad minute", hhmm)
	}
	return h*60 + m, nil
}

func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// MatchesRoute reports whether a trip on route satisfies the selection.
// An empty selection matches everything; SAMSONG also covers the Wonheung
// variant.
func MatchesRoute(selected, route model.Route) bool {
	switch {
	case selected == "":
		return true
	case selected == model.RouteSamsong:
		return route == model.RouteSamsong || route == model.RouteSamsongWithWonheung
	default:
		return selected == route
	}
}

// Filter returns trips in direction tab on the selected route departing at
// or after now's minute, ordered by departure. Trips with unparsable times
// are dropped.
func Filter(trips []model.Trip, tab model.Direction, route model.Route, now time.Time) []model.Trip {
	out, _ := FilterSkipped(trips, tab, route, now)
	return out
}

// FilterSkipped is Filter that also returns the ids of matching trips whose
// departure time could not be parsed.
func FilterSkipped(trips []model.Trip, tab model.Direction, route model.Route, now time.Time) ([]model.Trip, []int) {
	type keyed struct {
		trip   model.Trip
		minute int
	}
	current := MinuteOfDay(now)

	var (
		kept    []keyed
		skipped []int
	)
	for _, t := range trips {
		if t.Direction != tab || !MatchesRoute(route, t.Route) {
			continue
		}
		m, err := ParseMinutes(t.DepartureTime)
		if err != nil {
			skipped = append(skipped, t.ID)
			continue
		}
		if m >= current {
			kept = append(kept, keyed{trip: t, minute: m})
		}
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].minute < kept[j].minute })

	out := make([]model.Trip, len(kept))
	for i, k := range kept {
		out[i] = k.trip
	}
	return out, skipped
}

// Validate reports the first trip with a malformed departure time.
func Validate(trips []model.Trip) error {
	seen := make(map[int]bool, len(trips))
	for _, t := range trips {
		if seen[t.ID] {
			return fmt.Errorf("trip %d: duplicate id", t.ID)
		}
		seen[t.ID] = true
		if _, err := ParseMinutes(t.DepartureTime); err != nil {
			return fmt.Errorf("trip %d: %w", t.ID, err)
		}
	}
	return nil
}
