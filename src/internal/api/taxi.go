package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/spride/spride-web/src/internal/model"
	"github.com/spride/spride-web/src/internal/service"
)

type taxiView struct {
	Articles []model.Article
	Form     service.TaxiForm
}

func (h *Handler) taxiPage(w http.ResponseWriter, r *http.Request) {
	h.renderTaxiList(w, r, http.StatusOK, service.TaxiForm{}, "")
}

func (h *Handler) renderTaxiList(w http.ResponseWriter, r *http.Request, status int, form service.TaxiForm, errKey string) {
	h.svc.Nav.Navigate("/taxi")
	list, err := h.svc.TaxiBoard(r.Context())
	p := h.newPage(r, taxiView{Articles: list, Form: form})
	switch {
	case errKey != "":
		p.Error = errKey
	case err != nil:
		p.Error = "taxiLoadFail"
	}
	h.render(w, status, "taxi", p)
}

func (h *Handler) createTaxi(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderTaxiList(w, r, http.StatusBadRequest, service.TaxiForm{}, "taxiCreateFail")
		return
	}
	form := service.TaxiForm{
		Route:     r.PostForm.Get("route"),
		Direction: r.PostForm.Get("direction"),
		Content:   r.PostForm.Get("content"),
	}
	a, err := h.svc.CreateTaxi(r.Context(), form)
	if err != nil {
		if key, inline := h.handleSvcError(w, r, err, "/taxi", "taxiCreateFail"); inline {
			h.renderTaxiList(w, r, http.StatusBadRequest, form, key)
		}
		return
	}
	if a.ID > 0 {
		redirectWithFlash(w, r, fmt.Sprintf("/taxi/%d", a.ID), "taxiCreated")
		return
	}
	redirectWithFlash(w, r, "/taxi", "taxiCreated")
}

func (h *Handler) taxiDetail(w http.ResponseWriter, r *http.Request) {
	h.renderTaxiDetail(w, r, http.StatusOK, "", "")
}

type taxiDetailView struct {
	Article model.Article
	Draft   string
}

func (h *Handler) renderTaxiDetail(w http.ResponseWriter, r *http.Request, status int, draft, errKey string) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.renderMessage(w, r, http.StatusNotFound, "title", "notFound")
		return
	}
	a, err := h.svc.TaxiDetail(r.Context(), id)
	if err != nil {
		h.handleSvcError(w, r, err, "/taxi", "taxiLoadFail")
		return
	}
	h.svc.Nav.Navigate(fmt.Sprintf("/taxi/%d", id))
	p := h.newPage(r, taxiDetailView{Article: a, Draft: draft})
	p.Error = errKey
	h.render(w, status, "taxi_detail", p)
}

func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	path := "/taxi/" + chi.URLParam(r, "id")
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.renderMessage(w, r, http.StatusNotFound, "title", "notFound")
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderTaxiDetail(w, r, http.StatusBadRequest, "", "commentFail")
		return
	}
	content := r.PostForm.Get("content")
	if err := h.svc.AddComment(r.Context(), id, content); err != nil {
		if key, inline := h.handleSvcError(w, r, err, path, "commentFail"); inline {
			h.renderTaxiDetail(w, r, http.StatusBadRequest, content, key)
		}
		return
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}
