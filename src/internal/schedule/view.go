package schedule

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/spride/spride-web/src/internal/model"
	"go.uber.org/zap"
)

// RefreshInterval is how often the view re-reads the wall clock.
const RefreshInterval = time.Minute

var ErrAlreadyStarted = errors.New("schedule view already started")

type Entry struct {
	Trip         model.Trip
	HasCountdown bool
	Countdown    Countdown
}

type Snapshot struct {
	Tab     model.Direction
	Route   model.Route
	Now     time.Time
	Entries []Entry
	// Skipped holds matching trips dropped for a malformed departure time.
	Skipped []int
}

func (s Snapshot) Empty() bool { return len(s.Entries) == 0 }

func (s Snapshot) TripIDs() []int {
	ids := make([]int, len(s.Entries))
	for i, e := range s.Entries {
		ids[i] = e.Trip.ID
	}
	return ids
}

// View is the schedule page's view-model. The tab/route selection lives for
// the lifetime of the process; the clock is refreshed every RefreshInterval
// between Start and Stop.
type View struct {
	trips []model.Trip
	clock Clock
	log   *zap.Logger

	mu        sync.Mutex
	tab       model.Direction
	route     model.Route
	now       time.Time
	listeners map[int]func(Snapshot)
	nextID    int
	reported  map[int]bool
	stop      func()
	done      chan struct{}
}

func NewView(trips []model.Trip, clock Clock, logger *zap.Logger) *View {
	if err := Validate(trips); err != nil {
		logger.Warn("timetable has malformed entries", zap.Error(err))
	}
	return &View{
		trips:     trips,
		clock:     clock,
		log:       logger,
		tab:       model.DirectionToSchool,
		now:       clock.Now(),
		listeners: make(map[int]func(Snapshot)),
		reported:  make(map[int]bool),
	}
}

func (v *View) Start(ctx context.Context) error {
	v.mu.Lock()
	if v.stop != nil {
		v.mu.Unlock()
		return ErrAlreadyStarted
	}
	ticks, stopTicker := v.clock.Ticker(RefreshInterval)
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	v.stop = func() {
		cancel()
		stopTicker()
	}
	v.done = done
	v.mu.Unlock()

	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticks:
				v.Refresh()
			}
		}
	}()
	v.log.Debug("schedule view started")
	return nil
}

// Stop cancels the refresh timer and waits for it to exit. Safe to call
// repeatedly or without Start.
func (v *View) Stop() {
	v.mu.Lock()
	stop, done := v.stop, v.done
	v.stop, v.done = nil, nil
	v.mu.Unlock()

	if stop == nil {
		return
	}
	stop()
	<-done
	v.log.Debug("schedule view stopped")
}

// Refresh re-reads the clock and notifies subscribers.
func (v *View) Refresh() {
	v.mu.Lock()
	v.now = v.clock.Now()
	v.mu.Unlock()
	v.notify()
}

func (v *View) Select(tab model.Direction, route model.Route) {
	v.mu.Lock()
	v.tab = tab
	v.route = route
	v.mu.Unlock()
	v.notify()
}

func (v *View) Subscribe(fn func(Snapshot)) func() {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.listeners[id] = fn
	v.mu.Unlock()
	return func() {
		v.mu.Lock()
		delete(v.listeners, id)
		v.mu.Unlock()
	}
}

func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	tab, route, now := v.tab, v.route, v.now
	v.mu.Unlock()
	snap := Build(v.trips, tab, route, now)
	v.reportSkipped(snap.Skipped)
	return snap
}

// reportSkipped logs each malformed trip the first time a filter drops it.
func (v *View) reportSkipped(ids []int) {
	if len(ids) == 0 {
		return
	}
	v.mu.Lock()
	var fresh []int
	for _, id := range ids {
		if !v.reported[id] {
			v.reported[id] = true
			fresh = append(fresh, id)
		}
	}
	v.mu.Unlock()
	if len(fresh) > 0 {
		v.log.Warn("skipping trips with malformed departure time", zap.Ints("trips", fresh))
	}
}

// Build derives the visible list with countdowns for the leading trips.
func Build(trips []model.Trip, tab model.Direction, route model.Route, now time.Time) Snapshot {
	filtered, skipped := FilterSkipped(trips, tab, route, now)
	entries := make([]Entry, len(filtered))
	for i, t := range filtered {
		entries[i] = Entry{Trip: t}
		if i < CountdownLimit {
			if c, err := Remaining(t, now); err == nil {
				entries[i].HasCountdown = true
				entries[i].Countdown = c
			}
		}
	}
	return Snapshot{Tab: tab, Route: route, Now: now, Entries: entries, Skipped: skipped}
}

func (v *View) notify() {
	snap := v.Snapshot()
	v.mu.Lock()
	listeners := make([]func(Snapshot), 0, len(v.listeners))
	for _, l := range v.listeners {
		listeners = append(listeners, l)
	}
	v.mu.Unlock()
	for _, l := range listeners {
		l(snap)
	}
}
