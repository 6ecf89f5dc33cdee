// Package session holds the client's authentication state. One Store is
// created per process and handed to every view that needs it.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

const DefaultRedirect = "/"

type State struct {
	Authenticated bool
	Loading       bool
	ModalOpen     bool
	RedirectPath  string
}

// StatusChecker performs the single remote authentication probe.
type StatusChecker interface {
	CheckStatus(ctx context.Context) (authenticated bool, err error)
}

type Listener func(State)

type Store struct {
	mu        sync.Mutex
	state     State
	probed    bool
	listeners map[int]Listener
	nextID    int
	log       *zap.Logger
}

func NewStore(logger *zap.Logger) *Store {
	return &Store{
		state:     State{Loading: true},
		listeners: make(map[int]Listener),
		log:       logger,
	}
}

func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn for every subsequent mutation. The returned func
// removes it and is safe to call more than once.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// Probe runs the startup status check. Failures leave the session
// unauthenticated and are never returned. Only the first call does anything.
func (s *Store) Probe(ctx context.Context, checker StatusChecker) {
	s.mu.Lock()
	if s.probed {
		s.mu.Unlock()
		return
	}
	s.probed = true
	s.mu.Unlock()

	authenticated, err := checker.CheckStatus(ctx)
	if err != nil {
		s.log.Warn("session probe failed, treating as signed out", zap.Error(err))
		authenticated = false
	}
	s.update(func(st *State) {
		st.Authenticated = authenticated
		st.Loading = false
	})
	s.log.Info("session probed", zap.Bool("authenticated", authenticated))
}

func (s *Store) Login() {
	s.update(func(st *State) {
		st.Authenticated = true
		st.Loading = false
	})
}

// Logout only flips local state; the remote logout is the caller's job.
func (s *Store) Logout() {
	s.update(func(st *State) { st.Authenticated = false })
}

func (s *Store) OpenLoginModal() {
	s.update(func(st *State) { st.ModalOpen = true })
}

func (s *Store) CloseLoginModal() {
	s.update(func(st *State) { st.ModalOpen = false })
}

// SetRedirectPath stores where to go after login; "" clears it.
func (s *Store) SetRedirectPath(path string) {
	s.update(func(st *State) { st.RedirectPath = path })
}

// ConsumeRedirectPath returns the pending destination (DefaultRedirect when
// unset) and clears it.
func (s *Store) ConsumeRedirectPath() string {
	var path string
	s.update(func(st *State) {
		path = st.RedirectPath
		st.RedirectPath = ""
	})
	if path == "" {
		return DefaultRedirect
	}
	return path
}

func (s *Store) update(mutate func(*State)) {
	s.mu.Lock()
	mutate(&s.state)
	snap := s.state
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}
