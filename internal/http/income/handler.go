package income

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/auth"
	"github.com/MrJamesThe3rd/buxfer/internal/http/respond"
	"github.com/MrJamesThe3rd/buxfer/internal/income"
)

type Handler struct {
	svc *income.Service
}

func NewHandler(svc *income.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Put("/primary", h.setPrimary)
	r.Post("/sources", h.addSource)
	r.Delete("/sources/{id}", h.deleteSource)
}

type sourceResponse struct {
	ID      uuid.UUID `json:"id"`
	Owner   string    `json:"owner"`
	Name    string    `json:"name"`
	Amount  int64     `json:"amount"`
	PayDate *string   `json:"pay_date,omitempty"`
	Primary bool      `json:"primary"`
}

type totalsResponse struct {
	Primary int64 `json:"primary"`
	Other   int64 `json:"other"`
	Total   int64 `json:"total"`
}

type listResponse struct {
	Sources []sourceResponse `json:"sources"`
	Totals  totalsResponse   `json:"totals"`
}

func toResponse(s *income.Source) sourceResponse {
	return sourceResponse{
		ID:      s.ID,
		Owner:   string(s.Owner),
		Name:    s.Name,
		Amount:  s.Amount,
		PayDate: respond.OptionalDateString(s.PayDate),
		Primary: s.Primary,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	list, err := h.svc.List(r.Context(), &member)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := listResponse{Sources: make([]sourceResponse, len(list))}
	for i, s := range list {
		resp.Sources[i] = toResponse(s)
	}

	t := income.Summarize(list)
	resp.Totals = totalsResponse{Primary: t.Primary, Other: t.Other, Total: t.Total}

	respond.JSON(w, http.StatusOK, resp)
}

type sourceRequest struct {
	Name    string `json:"name"`
	Amount  int64  `json:"amount"`
	PayDate string `json:"pay_date"`
}

func (h *Handler) setPrimary(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req sourceRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	payDate, err := respond.OptionalDate("pay_date", req.PayDate)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	s, err := h.svc.SetPrimary(r.Context(), member, req.Amount, payDate)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(s))
}

func (h *Handler) addSource(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req sourceRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	payDate, err := respond.OptionalDate("pay_date", req.PayDate)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	s, err := h.svc.AddSource(r.Context(), member, req.Name, req.Amount, payDate)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(s))
}

func (h *Handler) deleteSource(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.svc.DeleteSource(r.Context(), member, id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
