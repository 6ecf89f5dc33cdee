package guard

import (
	"context"
	"testing"

	"github.com/spride/spride-web/src/internal/session"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type staticChecker bool

func (c staticChecker) CheckStatus(context.Context) (bool, error) { return bool(c), nil }

type countingStore struct {
	*session.Store
	redirects int
	opens     int
}

func (c *countingStore) SetRedirectPath(path string) {
	c.redirects++
	c.Store.SetRedirectPath(path)
}

func (c *countingStore) OpenLoginModal() {
	c.opens++
	c.Store.OpenLoginModal()
}

func newStore(authenticated bool) *countingStore {
	s := session.NewStore(zap.NewNop())
	s.Probe(context.Background(), staticChecker(authenticated))
	return &countingStore{Store: s}
}

func TestGuard_LoadingRendersNothing(t *testing.T) {
	store := &countingStore{Store: session.NewStore(zap.NewNop())}
	g := New(store)
	g.Mount("/profile")
	defer g.Unmount()

	assert.False(t, g.Render())
	assert.Equal(t, Loading, g.State())
	assert.Zero(t, store.opens)
}

func TestGuard_UnauthenticatedPromptsOncePerMount(t *testing.T) {
	store := newStore(false)
	g := New(store)
	g.Mount("/profile")

	for i := 0; i < 5; i++ {
		assert.False(t, g.Render())
	}

	assert.Equal(t, 1, store.opens)
	assert.Equal(t, 1, store.redirects)
	st := store.Snapshot()
	assert.True(t, st.ModalOpen)
	assert.Equal(t, "/profile", st.RedirectPath)

	g.Unmount()
	g.Mount("/profile")
	defer g.Unmount()
	assert.Equal(t, 2, store.opens)
}

func TestGuard_PromptsAfterProbeCompletes(t *testing.T) {
	store := &countingStore{Store: session.NewStore(zap.NewNop())}
	g := New(store)
	g.Mount("/profile")
	defer g.Unmount()
	assert.Zero(t, store.opens)

	store.Probe(context.Background(), staticChecker(false))

	assert.Equal(t, Unauthenticated, g.State())
	assert.Equal(t, 1, store.opens)
}

func TestGuard_LoginCompletionRendersView(t *testing.T) {
	store := newStore(false)
	g := New(store)
	g.Mount("/profile")
	defer g.Unmount()
	assert.False(t, g.Render())

	store.Login()

	assert.Equal(t, Authenticated, g.State())
	assert.True(t, g.Render())
	assert.Equal(t, 1, store.opens)
}

func TestGuard_AuthenticatedNoSideEffects(t *testing.T) {
	store := newStore(true)
	g := New(store)
	g.Mount("/profile")
	defer g.Unmount()

	assert.True(t, g.Render())
	assert.Zero(t, store.opens)
	assert.Empty(t, store.Snapshot().RedirectPath)
}

func TestGuard_UnmountStopsListening(t *testing.T) {
	store := newStore(true)
	g := New(store)
	g.Mount("/profile")
	g.Unmount()

	store.Logout()

	assert.Equal(t, Authenticated, g.State())
	assert.Zero(t, store.opens)
}
