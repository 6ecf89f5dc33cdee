package nav

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_PushPop(t *testing.T) {
	s := NewStack("/")
	s.Push(Entry{Kind: Page, Path: "/taxi"})
	assert.Equal(t, 2, s.Len())

	e, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, "/taxi", e.Path)

	_, ok = s.Pop()
	assert.False(t, ok, "root must stay")
	assert.Equal(t, "/", s.Top().Path)
}

func TestStack_BackClosesModalOnly(t *testing.T) {
	s := NewStack("/")
	s.Navigate("/taxi")
	s.OpenModal("login")
	s.OpenModal("login")
	assert.Equal(t, 3, s.Len())

	path, closed := s.Back()
	assert.Equal(t, "/taxi", path)
	assert.Equal(t, "login", closed)

	path, closed = s.Back()
	assert.Equal(t, "/", path)
	assert.Empty(t, closed)
}

func TestStack_NavigateSamePathIsNoop(t *testing.T) {
	s := NewStack("/")
	s.Navigate("/")
	s.Navigate("/profile")
	s.Navigate("/profile")
	assert.Equal(t, 2, s.Len())
}

func TestStack_CloseModal(t *testing.T) {
	s := NewStack("/")
	assert.False(t, s.CloseModal("login"))
	s.OpenModal("login")
	assert.False(t, s.CloseModal("notice"))
	assert.True(t, s.CloseModal("login"))
	assert.Equal(t, 1, s.Len())
}

func TestStack_NavigateRewindsToEarlierPage(t *testing.T) {
	s := NewStack("/")
	for i := 0; i < 10000; i++ {
		s.Navigate("/taxi")
		s.Navigate("/")
	}
	assert.Equal(t, 1, s.Len())

	s.Navigate("/taxi")
	s.Navigate("/taxi/7")
	s.Navigate("/taxi")
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "/taxi", s.Top().Path)
}

func TestStack_DepthIsBounded(t *testing.T) {
	s := NewStack("/")
	for i := 0; i < 3*MaxDepth; i++ {
		s.Navigate(fmt.Sprintf("/taxi/%d", i))
	}
	assert.Equal(t, MaxDepth, s.Len())

	s.Navigate("/")
	assert.Equal(t, 1, s.Len(), "root survives trimming")
}

func TestStack_NavigateUnderOpenModalIsNoop(t *testing.T) {
	s := NewStack("/")
	s.Navigate("/profile")
	s.OpenModal("login")
	s.Navigate("/profile")
	assert.Equal(t, Modal, s.Top().Kind)
	assert.Equal(t, 3, s.Len())
}

func TestStack_CloseModalBelowTop(t *testing.T) {
	s := NewStack("/")
	s.Navigate("/profile")
	s.OpenModal("login")
	s.Navigate("/taxi")

	assert.True(t, s.CloseModal("login"))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "/taxi", s.Top().Path)
	assert.False(t, s.CloseModal("login"))
}

func TestStack_Leave(t *testing.T) {
	s := NewStack("/")
	s.Navigate("/taxi")
	s.Navigate("/profile")
	s.OpenModal("login")

	assert.Equal(t, "/taxi", s.Leave("/profile"))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "/taxi", s.Leave("/profile"))

	root := NewStack("/")
	assert.Equal(t, "/", root.Leave("/"))
	assert.Equal(t, 1, root.Len())
}
