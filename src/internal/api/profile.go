package api

import (
	"errors"
	"net/http"

	"github.com/spride/spride-web/src/internal/guard"
	"github.com/spride/spride-web/src/internal/service"
	"go.uber.org/zap"
)

const (
	profilePath    = "/profile"
	maxUploadBytes = 10 << 20
)

// guarded lists the pages that prompt for login on every mount.
var guarded = map[string]bool{profilePath: true}

type profileView struct {
	Loading bool
	Profile *service.ProfileView
}

// profilePage is guarded: while the session probe is pending it shows a
// loading state, and a signed-out visitor gets the login modal over an empty
// page.
func (h *Handler) profilePage(w http.ResponseWriter, r *http.Request) {
	h.svc.Nav.Navigate(profilePath)
	g := guard.New(h.svc.Session)
	g.Mount(profilePath)
	defer g.Unmount()

	if !g.Render() {
		if g.State() == guard.Unauthenticated {
			h.svc.Nav.OpenModal(loginModal)
		}
		h.render(w, http.StatusOK, "profile", h.newPage(r, profileView{Loading: g.State() == guard.Loading}))
		return
	}
	h.renderProfile(w, r, http.StatusOK, "")
}

func (h *Handler) renderProfile(w http.ResponseWriter, r *http.Request, status int, errKey string) {
	h.svc.Nav.Navigate(profilePath)
	v, err := h.svc.Profile(r.Context())
	if err != nil {
		h.log.Warn("profile unavailable", zap.Error(err))
		if errKey == "" {
			errKey = "profileLoadFail"
		}
		p := h.newPage(r, profileView{})
		p.Error = errKey
		h.render(w, status, "profile", p)
		return
	}
	p := h.newPage(r, profileView{Profile: &v})
	p.Error = errKey
	h.render(w, status, "profile", p)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderProfile(w, r, http.StatusBadRequest, "profileUpdateFail")
		return
	}
	err := h.svc.UpdateProfile(r.Context(), r.PostForm.Get("nickname"), r.PostForm.Get("introText"))
	if err != nil {
		if key, inline := h.handleSvcError(w, r, err, profilePath, "profileUpdateFail"); inline {
			h.renderProfile(w, r, http.StatusBadRequest, key)
		}
		return
	}
	redirectWithFlash(w, r, profilePath, "profileUpdateSuccess")
}

func (h *Handler) uploadProfileImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	var (
		filename string
		err      error
	)
	file, hdr, ferr := r.FormFile("profileImage")
	switch {
	case ferr == nil:
		defer file.Close()
		filename = hdr.Filename
		err = h.svc.UploadProfileImage(r.Context(), filename, file)
	case errors.Is(ferr, http.ErrMissingFile):
		err = h.svc.UploadProfileImage(r.Context(), "", nil)
	default:
		h.log.Warn("upload: bad multipart body", zap.Error(ferr))
		h.renderProfile(w, r, http.StatusBadRequest, "uploadFail")
		return
	}
	if err != nil {
		if key, inline := h.handleSvcError(w, r, err, profilePath, "uploadFail"); inline {
			h.renderProfile(w, r, http.StatusBadRequest, key)
		}
		return
	}
	redirectWithFlash(w, r, profilePath, "uploadSuccess")
}
