package api

import (
	"errors"
	"net/http"

	"github.com/spride/spride-web/src/internal/auth"
	"github.com/spride/spride-web/src/internal/model"
	"github.com/spride/spride-web/src/internal/session"
	"go.uber.org/zap"
)

type loginView struct {
	ProviderURL string
}

// loginPage is the standalone form of the login modal.
func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	returnTo := auth.SafePath(r.URL.Query().Get("returnTo"))
	if returnTo == "" {
		returnTo = h.svc.Session.Snapshot().RedirectPath
	}
	h.render(w, http.StatusOK, "login", h.newPage(r, loginView{ProviderURL: h.svc.Auth.ProviderURL(returnTo)}))
}

// closeLogin dismisses the login modal from any page. A guarded page under
// the modal would prompt again, so the user lands on the page before it.
func (h *Handler) closeLogin(w http.ResponseWriter, r *http.Request) {
	h.svc.Session.CloseLoginModal()
	h.svc.Nav.CloseModal(loginModal)

	authed := h.svc.Session.Snapshot().Authenticated
	dest := h.svc.Nav.Top().Path
	if guarded[dest] && !authed {
		dest = h.svc.Nav.Leave(dest)
	}
	if auth.SafePath(dest) == "" || (guarded[dest] && !authed) {
		dest = session.DefaultRedirect
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

// back closes the login modal while it is showing, otherwise returns to the
// previous page.
func (h *Handler) back(w http.ResponseWriter, r *http.Request) {
	if h.svc.Session.Snapshot().ModalOpen {
		h.closeLogin(w, r)
		return
	}
	path, _ := h.svc.Nav.Back()
	if auth.SafePath(path) == "" {
		path = session.DefaultRedirect
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

func (h *Handler) kakaoCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	out := h.svc.Auth.HandleCallback(r.Context(), q.Get("code"), q.Get("state"))
	switch out.Kind {
	case auth.InProgress:
		h.renderMessage(w, r, http.StatusAccepted, "title", "loading")
		return
	case auth.LoginSuccess:
		h.svc.Nav.CloseModal(loginModal)
	case auth.Failure:
		h.log.Warn("login callback failed", zap.Error(out.Err))
	}
	http.Redirect(w, r, out.Redirect, http.StatusFound)
}

type signupView struct {
	Form auth.SignupForm
}

func (h *Handler) signupPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	form := auth.SignupForm{
		Nickname:   q.Get("nickname"),
		ProfileURL: q.Get("profileUrl"),
		ReturnTo:   auth.SafePath(q.Get("returnTo")),
	}
	h.render(w, http.StatusOK, "signup", h.newPage(r, signupView{Form: form}))
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderSignup(w, r, http.StatusBadRequest, auth.SignupForm{}, "signupFail")
		return
	}
	form := auth.SignupForm{
		Nickname:   r.PostForm.Get("nickname"),
		IntroText:  r.PostForm.Get("introText"),
		ProfileURL: r.PostForm.Get("profileUrl"),
		ReturnTo:   auth.SafePath(r.PostForm.Get("returnTo")),
	}
	dest, err := h.svc.Auth.CompleteSignup(r.Context(), form)
	if err != nil {
		var verr *auth.ValidationError
		if errors.As(err, &verr) {
			h.renderSignup(w, r, http.StatusBadRequest, form, verr.Key)
			return
		}
		h.renderSignup(w, r, http.StatusBadGateway, form, "signupFail")
		return
	}
	h.svc.Nav.CloseModal(loginModal)
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

func (h *Handler) renderSignup(w http.ResponseWriter, r *http.Request, status int, form auth.SignupForm, errKey string) {
	p := h.newPage(r, signupView{Form: form})
	p.Error = errKey
	h.render(w, status, "signup", p)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.svc.Logout(r.Context())
	http.Redirect(w, r, session.DefaultRedirect, http.StatusSeeOther)
}

func (h *Handler) setLanguage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, session.DefaultRedirect, http.StatusSeeOther)
		return
	}
	if _, err := h.svc.SetLanguage(r.Context(), r.PostForm.Get("lang")); err != nil {
		if errors.Is(err, model.ErrValidation) {
			h.log.Debug("unsupported language", zap.String("lang", r.PostForm.Get("lang")))
		} else {
			h.log.Error("store language preference", zap.Error(err))
		}
	}
	http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
}
