// Package guard gates protected views behind authentication.
package guard

import (
	"sync"

	"github.com/spride/spride-web/src/internal/session"
)

type State int

const (
	Loading State = iota
	Unauthenticated
	Authenticated
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Unauthenticated:
		return "unauthenticated"
	case Authenticated:
		return "authenticated"
	}
	return "unknown"
}

type Session interface {
	Snapshot() session.State
	Subscribe(fn session.Listener) func()
	SetRedirectPath(path string)
	OpenLoginModal()
}

// Guard wraps one mounted protected view. On first entering Unauthenticated
// during a mount it records the path and opens the login modal; it never
// navigates by itself.
type Guard struct {
	store Session

	mu          sync.Mutex
	path        string
	state       State
	mounted     bool
	prompted    bool
	unsubscribe func()
}

func New(store Session) *Guard {
	return &Guard{store: store}
}

func (g *Guard) Mount(path string) {
	g.mu.Lock()
	if g.mounted {
		g.mu.Unlock()
		return
	}
	g.path = path
	g.mounted = true
	g.prompted = false
	g.mu.Unlock()

	unsubscribe := g.store.Subscribe(func(st session.State) { g.apply(st) })

	g.mu.Lock()
	g.unsubscribe = unsubscribe
	g.mu.Unlock()

	g.apply(g.store.Snapshot())
}

// Render reports whether the wrapped view should be rendered.
func (g *Guard) Render() bool {
	g.apply(g.store.Snapshot())
	return g.State() == Authenticated
}

func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Guard) Unmount() {
	g.mu.Lock()
	unsubscribe := g.unsubscribe
	g.unsubscribe = nil
	g.mounted = false
	g.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

func (g *Guard) apply(st session.State) {
	next := Authenticated
	switch {
	case st.Loading:
		next = Loading
	case !st.Authenticated:
		next = Unauthenticated
	}

	g.mu.Lock()
	if !g.mounted {
		g.mu.Unlock()
		return
	}
	g.state = next
	prompt := next == Unauthenticated && !g.prompted
	if prompt {
		g.prompted = true
	}
	path := g.path
	g.mu.Unlock()

	// store calls notify listeners, including this guard, so no lock is held
	if prompt {
		g.store.SetRedirectPath(path)
		g.store.OpenLoginModal()
	}
}
