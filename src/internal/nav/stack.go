// Package nav is a navigation history the modal layer drives directly: a
// modal pushes an entry when it opens, and a back action pops it.
package nav

import "sync"

type Kind int

const (
	Page Kind = iota
	Modal
)

type Entry struct {
	Kind Kind
	Path string
	Name string
}

type Stack struct {
	mu      sync.Mutex
	entries []Entry
}

// MaxDepth bounds the history. The oldest entries after the root are
// dropped first.
const MaxDepth = 32

func NewStack(root string) *Stack {
	return &Stack{entries: []Entry{{Kind: Page, Path: root}}}
}

func (s *Stack) Push(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.push(e)
}

func (s *Stack) push(e Entry) {
	s.entries = append(s.entries, e)
	if n := len(s.entries); n > MaxDepth {
		drop := n - MaxDepth
		copy(s.entries[1:], s.entries[1+drop:])
		s.entries = s.entries[:MaxDepth]
	}
}

// Pop removes the top entry. The root entry is never removed.
func (s *Stack) Pop() (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) <= 1 {
		return Entry{}, false
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top, true
}

func (s *Stack) Top() Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[len(s.entries)-1]
}

func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Navigate records a page visit. Revisiting the current page (or the page
// under the open modal) is a no-op. Revisiting an earlier page rewinds the
// history to it, as a browser back would.
func (s *Stack) Navigate(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entries[len(s.entries)-1].Path == path {
		return
	}
	for i := len(s.entries) - 2; i >= 0; i-- {
		if e := s.entries[i]; e.Kind == Page && e.Path == path {
			s.entries = s.entries[:i+1]
			return
		}
	}
	s.push(Entry{Kind: Page, Path: path})
}

// OpenModal pushes a modal entry unless the same modal is already on top.
func (s *Stack) OpenModal(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	top := s.entries[len(s.entries)-1]
	if top.Kind == Modal && top.Name == name {
		return
	}
	s.push(Entry{Kind: Modal, Name: name, Path: top.Path})
}

// CloseModal removes the most recent entry for the named modal, wherever it
// sits in the history.
func (s *Stack) CloseModal(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.entries) - 1; i > 0; i-- {
		if e := s.entries[i]; e.Kind == Modal && e.Name == name {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Leave pops every entry on top of the history that belongs to path and
// returns the path now on top.
func (s *Stack) Leave(path string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.entries) > 1 && s.entries[len(s.entries)-1].Path == path {
		s.entries = s.entries[:len(s.entries)-1]
	}
	return s.entries[len(s.entries)-1].Path
}

// Back handles a back action. When a modal is on top only the modal is
// dismissed and closedModal names it; otherwise the previous page path is
// returned.
func (s *Stack) Back() (path string, closedModal string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	top := s.entries[len(s.entries)-1]
	if top.Kind == Modal {
		s.entries = s.entries[:len(s.entries)-1]
		return top.Path, top.Name
	}
	if len(s.entries) > 1 {
		s.entries = s.entries[:len(s.entries)-1]
	}
	return s.entries[len(s.entries)-1].Path, ""
}
