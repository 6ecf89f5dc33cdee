package api

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spride/spride-web/src/internal/auth"
	"github.com/spride/spride-web/src/internal/backend/apiErrors"
	"github.com/spride/spride-web/src/internal/locale"
	"github.com/spride/spride-web/src/internal/metrics"
	"github.com/spride/spride-web/src/internal/model"
	"github.com/spride/spride-web/src/internal/schedule"
	"github.com/spride/spride-web/src/internal/service"
	"github.com/spride/spride-web/src/internal/session"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
)

//go:embed templates
var templatesFS embed.FS

const loginModal = "login"

var pages = []string{"shuttle", "shuttle_detail", "taxi", "taxi_detail", "profile", "signup", "login", "message"}

// flashes are the only keys accepted in the ?ok= query parameter.
var flashes = map[string]bool{
	"statusRegistered":     true,
	"taxiCreated":          true,
	"profileUpdateSuccess": true,
	"uploadSuccess":        true,
}

type Handler struct {
	svc     *service.Service
	metrics *metrics.Metrics
	log     *zap.Logger
	timeout time.Duration
	tmpl    map[string]*template.Template
}

func NewHandler(svc *service.Service, m *metrics.Metrics, timeout time.Duration, logger *zap.Logger) (*Handler, error) {
	tmpl := make(map[string]*template.Template, len(pages))
	for _, name := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		tmpl[name] = t
	}
	return &Handler{svc: svc, metrics: m, log: logger, timeout: timeout, tmpl: tmpl}, nil
}

func RegisterRoutes(r *chi.Mux, h *Handler) {
	r.Get("/", h.withTimeout(h.shuttlePage))
	r.Get("/shuttle/{id}", h.withTimeout(h.shuttleDetail))
	r.Post("/shuttle/{id}/status", h.withTimeout(h.reportStatus))

	r.Get("/taxi", h.withTimeout(h.taxiPage))
	r.Post("/taxi", h.withTimeout(h.createTaxi))
	r.Get("/taxi/{id}", h.withTimeout(h.taxiDetail))
	r.Post("/taxi/{id}/comments", h.withTimeout(h.addComment))

	r.Get("/profile", h.withTimeout(h.profilePage))
	r.Post("/profile", h.withTimeout(h.updateProfile))
	r.Post("/profile/image", h.withTimeout(h.uploadProfileImage))

	r.Get("/login", h.loginPage)
	r.Post("/login/close", h.closeLogin)
	r.Post("/back", h.back)
	r.Get(auth.CallbackPath, h.withTimeout(h.kakaoCallback))
	r.Get(auth.SignupPath, h.signupPage)
	r.Post(auth.SignupPath, h.withTimeout(h.signup))
	r.Post("/logout", h.withTimeout(h.logout))
	r.Post("/lang", h.withTimeout(h.setLanguage))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	})
	if h.metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}
}

func (h *Handler) withTimeout(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		next(w, r.WithContext(ctx))
	}
}

// pageData is what every template receives. Data holds the page-specific
// view model.
type pageData struct {
	Lang     locale.Lang
	Path     string
	Session  session.State
	LoginURL string
	Flash    string
	Error    string
	Data     any
}

func (h *Handler) newPage(r *http.Request, data any) pageData {
	st := h.svc.Session.Snapshot()
	p := pageData{
		Lang:    h.svc.Language(r.Context(), r.Header.Get("Accept-Language")),
		Path:    r.URL.RequestURI(),
		Session: st,
		Data:    data,
	}
	p.LoginURL = h.svc.Auth.ProviderURL(st.RedirectPath)
	if key := r.URL.Query().Get("ok"); flashes[key] {
		p.Flash = key
	}
	return p
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, p pageData) {
	t, ok := h.tmpl[name]
	if !ok {
		h.log.Error("render: unknown template", zap.String("page", name))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", p); err != nil {
		h.log.Error("render: execute failed", zap.String("page", name), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
	h.metrics.PageRendered(name)
}

type message struct {
	TitleKey   string
	MessageKey string
}

func (h *Handler) renderMessage(w http.ResponseWriter, r *http.Request, status int, titleKey, messageKey string) {
	h.render(w, status, "message", h.newPage(r, message{TitleKey: titleKey, MessageKey: messageKey}))
}

// promptLogin remembers where the user was headed, opens the login modal and
// sends them back to returnTo, where the layout shows the modal.
func (h *Handler) promptLogin(w http.ResponseWriter, r *http.Request, returnTo string) {
	h.svc.Session.SetRedirectPath(returnTo)
	h.svc.Session.OpenLoginModal()
	h.svc.Nav.OpenModal(loginModal)
	http.Redirect(w, r, returnTo, http.StatusSeeOther)
}

// handleSvcError maps a failed action onto a response. It returns the locale
// key of an inline validation message when the caller should re-render the
// form instead; in that case nothing has been written.
func (h *Handler) handleSvcError(w http.ResponseWriter, r *http.Request, err error, returnTo, failKey string) (string, bool) {
	var verr *auth.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Key, true
	case errors.Is(err, model.ErrUnauthenticated):
		h.promptLogin(w, r, returnTo)
	case errors.Is(err, model.ErrNotFound), apiErrors.StatusOf(err) == http.StatusNotFound:
		h.renderMessage(w, r, http.StatusNotFound, "title", "notFound")
	case apiErrors.StatusOf(err) == http.StatusUnauthorized:
		h.svc.Session.Logout()
		h.promptLogin(w, r, returnTo)
	default:
		h.log.Warn("action failed", zap.String("path", r.URL.Path), zap.Error(err))
		h.renderMessage(w, r, http.StatusBadGateway, "title", failKey)
	}
	return "", false
}

func redirectWithFlash(w http.ResponseWriter, r *http.Request, path, key string) {
	u := url.URL{Path: path, RawQuery: url.Values{"ok": {key}}.Encode()}
	http.Redirect(w, r, u.String(), http.StatusSeeOther)
}

// returnPath reads a local return path from the form, defaulting to home.
func returnPath(r *http.Request) string {
	if p := auth.SafePath(r.FormValue("returnTo")); p != "" {
		return p
	}
	return session.DefaultRedirect
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

var routeKeys = map[string]string{
	string(model.RouteBaekseok):            "baekseok",
	string(model.RouteSamsong):             "samsong",
	string(model.RouteSamsongWithWonheung): "samsong_with_wonheung",
}

var funcs = template.FuncMap{
	"t": locale.T,
	"route": func(lang locale.Lang, route string) string {
		if key, ok := routeKeys[route]; ok {
			return locale.T(lang, key)
		}
		return locale.T(lang, "allRoutes")
	},
	"direction": func(lang locale.Lang, dir string) string {
		if dir == string(model.DirectionFromSchool) {
			return locale.T(lang, "fromSchool")
		}
		return locale.T(lang, "toSchool")
	},
	"crowd": func(lang locale.Lang, c model.CrowdLevel) string {
		return locale.T(lang, "crowd_"+string(c))
	},
	"boarding": func(lang locale.Lang, s model.BoardingStatus) string {
		return locale.T(lang, "status_"+string(s))
	},
	"countdown": func(lang locale.Lang, c schedule.Countdown) string {
		return c.Label(locale.Bundle(lang))
	},
	"hhmm": func(s string) string {
		if parts := strings.Split(s, ":"); len(parts) >= 2 {
			return parts[0] + ":" + parts[1]
		}
		return s
	},
	"percent": func(f float64) string {
		return fmt.Sprintf("%.0f", f)
	},
	"routes":     func() []model.Route { return model.Routes },
	"crowds":     func() []model.CrowdLevel { return model.CrowdLevels },
	"statuses":   func() []model.BoardingStatus { return model.BoardingStatuses },
	"directions": func() []model.Direction { return []model.Direction{model.DirectionToSchool, model.DirectionFromSchool} },
}
