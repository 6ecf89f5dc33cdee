package auth

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/spride/spride-web/src/internal/backend"
	"github.com/spride/spride-web/src/internal/model"
	"github.com/spride/spride-web/src/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) KakaoLogin(ctx context.Context, code string) (backend.LoginResult, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(backend.LoginResult), args.Error(1)
}

func (m *MockBackend) Signup(ctx context.Context, req model.SignupRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func newFlow(b Backend) (*Flow, *session.Store) {
	store := session.NewStore(zap.NewNop())
	return NewFlow("client-123", "http://localhost:5173/", b, store, zap.NewNop()), store
}

func TestProviderURL(t *testing.T) {
	f, _ := newFlow(new(MockBackend))

	raw := f.ProviderURL("/profile")
	require.True(t, strings.HasPrefix(raw, AuthorizeURL+"?"))
	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "client-123", q.Get("client_id"))
	assert.Equal(t, "http://localhost:5173/auth/kakao/callback", q.Get("redirect_uri"))
	assert.Equal(t, "/profile", q.Get("state"))

	u, _ = url.Parse(f.ProviderURL("https://evil.example"))
	assert.Empty(t, u.Query().Get("state"))
}

func TestHandleCallback_MissingCode(t *testing.T) {
	b := new(MockBackend)
	f, _ := newFlow(b)

	out := f.HandleCallback(context.Background(), "", "")
	assert.Equal(t, MissingCode, out.Kind)
	assert.Equal(t, LoginPath, out.Redirect)
	b.AssertNotCalled(t, "KakaoLogin", mock.Anything, mock.Anything)
}

func TestHandleCallback_SuccessConsumesRedirect(t *testing.T) {
	b := new(MockBackend)
	b.On("KakaoLogin", mock.Anything, "c1").Return(backend.LoginResult{Status: backend.LoginSuccess}, nil).Once()
	f, store := newFlow(b)
	store.SetRedirectPath("/profile")
	store.OpenLoginModal()

	out := f.HandleCallback(context.Background(), "c1", "")

	assert.Equal(t, LoginSuccess, out.Kind)
	assert.Equal(t, "/profile", out.Redirect)
	st := store.Snapshot()
	assert.True(t, st.Authenticated)
	assert.False(t, st.ModalOpen)
	assert.Empty(t, st.RedirectPath)
	b.AssertExpectations(t)
}

func TestHandleCallback_SuccessDefaultsHome(t *testing.T) {
	b := new(MockBackend)
	b.On("KakaoLogin", mock.Anything, "c1").Return(backend.LoginResult{Status: backend.LoginSuccess}, nil)
	f, _ := newFlow(b)

	out := f.HandleCallback(context.Background(), "c1", "")
	assert.Equal(t, session.DefaultRedirect, out.Redirect)
}

func TestHandleCallback_StateOverridesStoredPath(t *testing.T) {
	b := new(MockBackend)
	b.On("KakaoLogin", mock.Anything, "c1").Return(backend.LoginResult{Status: backend.LoginSuccess}, nil)
	f, store := newFlow(b)
	store.SetRedirectPath("/profile")

	out := f.HandleCallback(context.Background(), "c1", "/taxi")
	assert.Equal(t, "/taxi", out.Redirect)
	assert.Empty(t, store.Snapshot().RedirectPath)
}

func TestHandleCallback_SignupRequired(t *testing.T) {
	b := new(MockBackend)
	b.On("KakaoLogin", mock.Anything, "c2").Return(backend.LoginResult{
		Status:     backend.SignupRequired,
		Nickname:   "fairy",
		ProfileURL: "http://img/1.png",
	}, nil)
	f, store := newFlow(b)
	store.SetRedirectPath("/profile")

	out := f.HandleCallback(context.Background(), "c2", "")

	assert.Equal(t, SignupRequired, out.Kind)
	assert.Equal(t, Prefill{Nickname: "fairy", ProfileURL: "http://img/1.png"}, out.Prefill)
	u, err := url.Parse(out.Redirect)
	require.NoError(t, err)
	assert.Equal(t, SignupPath, u.Path)
	assert.Equal(t, "/profile", u.Query().Get("returnTo"))
	assert.Equal(t, "fairy", u.Query().Get("nickname"))
	assert.False(t, store.Snapshot().Authenticated)
}

func TestHandleCallback_Failure(t *testing.T) {
	b := new(MockBackend)
	b.On("KakaoLogin", mock.Anything, "bad").Return(backend.LoginResult{Status: backend.LoginFailure}, errors.New("boom"))
	f, store := newFlow(b)

	out := f.HandleCallback(context.Background(), "bad", "/profile")
	assert.Equal(t, Failure, out.Kind)
	assert.Equal(t, "/", out.Redirect)
	assert.Error(t, out.Err)
	assert.False(t, store.Snapshot().Authenticated)
}

func TestHandleCallback_ConcurrentSameCodeIsNoop(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	b := new(MockBackend)
	b.On("KakaoLogin", mock.Anything, "c3").
		Run(func(mock.Arguments) {
			close(entered)
			<-release
		}).
		Return(backend.LoginResult{Status: backend.LoginSuccess}, nil).Once()
	f, _ := newFlow(b)

	done := make(chan Outcome)
	go func() { done <- f.HandleCallback(context.Background(), "c3", "") }()
	<-entered

	second := f.HandleCallback(context.Background(), "c3", "")
	assert.Equal(t, InProgress, second.Kind)

	close(release)
	first := <-done
	assert.Equal(t, LoginSuccess, first.Kind)
	b.AssertExpectations(t)
}

func TestSafePath(t *testing.T) {
	assert.Equal(t, "/taxi/3", SafePath("/taxi/3"))
	assert.Empty(t, SafePath("//evil.example"))
	assert.Empty(t, SafePath("http://evil.example"))
	assert.Empty(t, SafePath(""))
}
