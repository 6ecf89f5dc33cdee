// Package auth drives the social-login round trip: building the provider
// authorize URL, exchanging the callback code, and finishing signup for
// first-time users.
package auth

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/spride/spride-web/src/internal/backend"
	"github.com/spride/spride-web/src/internal/model"
	"github.com/spride/spride-web/src/internal/session"
	"go.uber.org/zap"
)

const (
	AuthorizeURL = "https://kauth.kakao.com/oauth/authorize"
	CallbackPath = "/auth/kakao/callback"
	SignupPath   = "/signup"
	LoginPath    = "/login"
)

type Backend interface {
	KakaoLogin(ctx context.Context, code string) (backend.LoginResult, error)
	Signup(ctx context.Context, req model.SignupRequest) error
}

type Session interface {
	Snapshot() session.State
	Login()
	CloseLoginModal()
	ConsumeRedirectPath() string
}

type Kind int

const (
	LoginSuccess Kind = iota
	SignupRequired
	Failure
	MissingCode
	InProgress
)

func (k Kind) String() string {
	switch k {
	case LoginSuccess:
		return "login_success"
	case SignupRequired:
		return "signup_required"
	case Failure:
		return "failure"
	case MissingCode:
		return "missing_code"
	case InProgress:
		return "in_progress"
	}
	return "unknown"
}

// Prefill carries what the provider already told us about a new user.
type Prefill struct {
	Nickname   string
	ProfileURL string
}

type Outcome struct {
	Kind     Kind
	Redirect string
	Prefill  Prefill
	Err      error
}

type Flow struct {
	clientID    string
	callbackURL string
	backend     Backend
	session     Session
	log         *zap.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewFlow(clientID, clientURL string, b Backend, s Session, logger *zap.Logger) *Flow {
	return &Flow{
		clientID:    clientID,
		callbackURL: strings.TrimRight(clientURL, "/") + CallbackPath,
		backend:     b,
		session:     s,
		log:         logger,
		inflight:    make(map[string]struct{}),
	}
}

func (f *Flow) CallbackURL() string { return f.callbackURL }

// ProviderURL builds the authorize URL. A non-empty returnTo travels through
// the provider as the state parameter and comes back on the callback.
func (f *Flow) ProviderURL(returnTo string) string {
	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", f.clientID)
	q.Set("redirect_uri", f.callbackURL)
	if p := SafePath(returnTo); p != "" {
		q.Set("state", p)
	}
	return AuthorizeURL + "?" + q.Encode()
}

// HandleCallback exchanges code for a session. A second call for a code that
// is still being exchanged returns InProgress without touching the backend.
func (f *Flow) HandleCallback(ctx context.Context, code, returnTo string) Outcome {
	if code == "" {
		f.log.Warn("login callback without code")
		return Outcome{Kind: MissingCode, Redirect: LoginPath}
	}

	f.mu.Lock()
	if _, busy := f.inflight[code]; busy {
		f.mu.Unlock()
		return Outcome{Kind: InProgress}
	}
	f.inflight[code] = struct{}{}
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		delete(f.inflight, code)
		f.mu.Unlock()
	}()

	res, err := f.backend.KakaoLogin(ctx, code)
	if err != nil {
		f.log.Error("kakao login failed", zap.Error(err))
		return Outcome{Kind: Failure, Redirect: session.DefaultRedirect, Err: err}
	}

	switch res.Status {
	case backend.LoginSuccess:
		f.session.CloseLoginModal()
		f.session.Login()
		dest := f.session.ConsumeRedirectPath()
		if p := SafePath(returnTo); p != "" {
			dest = p
		}
		f.log.Info("login success", zap.String("redirect", dest))
		return Outcome{Kind: LoginSuccess, Redirect: dest}
	case backend.SignupRequired:
		dest := SafePath(returnTo)
		if dest == "" {
			dest = SafePath(f.session.Snapshot().RedirectPath)
		}
		f.log.Info("signup required", zap.String("nickname", res.Nickname))
		return Outcome{
			Kind:     SignupRequired,
			Redirect: signupURL(dest, res.Nickname, res.ProfileURL),
			Prefill:  Prefill{Nickname: res.Nickname, ProfileURL: res.ProfileURL},
		}
	default:
		f.log.Warn("kakao login rejected", zap.String("status", string(res.Status)))
		return Outcome{Kind: Failure, Redirect: session.DefaultRedirect}
	}
}

func signupURL(returnTo, nickname, profileURL string) string {
	q := url.Values{}
	if returnTo != "" {
		q.Set("returnTo", returnTo)
	}
	if nickname != "" {
		q.Set("nickname", nickname)
	}
	if profileURL != "" {
		q.Set("profileUrl", profileURL)
	}
	if len(q) == 0 {
		return SignupPath
	}
	return SignupPath + "?" + q.Encode()
}

// SafePath returns p if it is a local absolute path, otherwise "".
func SafePath(p string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return ""
	}
	return p
}
