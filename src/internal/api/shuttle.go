package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/spride/spride-web/src/internal/model"
	"github.com/spride/spride-web/src/internal/service"
)

type shuttleView struct {
	service.Board
	Tab   model.Direction
	Route model.Route
}

// shuttlePage shows the upcoming departures. tab and route query parameters
// update the selection held by the schedule view-model.
func (h *Handler) shuttlePage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Has("tab") || q.Has("route") {
		snap := h.svc.Schedule.Snapshot()
		tab, route := snap.Tab, snap.Route
		if d, ok := model.ParseDirection(q.Get("tab")); ok {
			tab = d
		}
		if q.Has("route") {
			route = ""
			if rt, ok := model.ParseRoute(q.Get("route")); ok {
				route = rt
			}
		}
		h.svc.Schedule.Select(tab, route)
	}
	h.svc.Nav.Navigate("/")

	board := h.svc.Board(r.Context())
	h.render(w, http.StatusOK, "shuttle", h.newPage(r, shuttleView{
		Board: board,
		Tab:   board.Schedule.Tab,
		Route: board.Schedule.Route,
	}))
}

func (h *Handler) shuttleDetail(w http.ResponseWriter, r *http.Request) {
	h.renderShuttleDetail(w, r, http.StatusOK, "")
}

func (h *Handler) renderShuttleDetail(w http.ResponseWriter, r *http.Request, status int, errKey string) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.renderMessage(w, r, http.StatusNotFound, "title", "notFound")
		return
	}
	d, err := h.svc.Trip(r.Context(), id)
	if err != nil {
		h.handleSvcError(w, r, err, "/", "statusFail")
		return
	}
	h.svc.Nav.Navigate(fmt.Sprintf("/shuttle/%d", id))
	p := h.newPage(r, d)
	p.Error = errKey
	h.render(w, status, "shuttle_detail", p)
}

func (h *Handler) reportStatus(w http.ResponseWriter, r *http.Request) {
	path := "/shuttle/" + chi.URLParam(r, "id")
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.renderMessage(w, r, http.StatusNotFound, "title", "notFound")
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderShuttleDetail(w, r, http.StatusBadRequest, "statusFail")
		return
	}
	err = h.svc.ReportStatus(r.Context(), id, r.PostForm.Get("crowdLevel"), r.PostForm.Get("status"))
	if err != nil {
		if key, inline := h.handleSvcError(w, r, err, path, "statusFail"); inline {
			h.renderShuttleDetail(w, r, http.StatusBadRequest, key)
		}
		return
	}
	redirectWithFlash(w, r, path, "statusRegistered")
}
