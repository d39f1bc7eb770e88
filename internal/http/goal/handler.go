package goal

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/auth"
	"github.com/MrJamesThe3rd/buxfer/internal/goal"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
	"github.com/MrJamesThe3rd/buxfer/internal/http/respond"
)

type Handler struct {
	svc *goal.Service
}

func NewHandler(svc *goal.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/budget", func(r chi.Router) {
		r.Post("/", h.createBudget)
		r.Get("/", h.listBudget)
		r.Patch("/{id}", h.updateBudget)
		r.Delete("/{id}", h.deleteGoal(h.svc.DeleteBudget))
	})
	r.Route("/savings", func(r chi.Router) {
		r.Post("/", h.createSavings)
		r.Get("/", h.listSavings)
		r.Patch("/{id}", h.updateSavings)
		r.Delete("/{id}", h.deleteGoal(h.svc.DeleteSavings))
	})
}

type budgetResponse struct {
	ID            uuid.UUID `json:"id"`
	Owner         string    `json:"owner"`
	Name          string    `json:"name"`
	TargetAmount  int64     `json:"target_amount"`
	CurrentAmount int64     `json:"current_amount"`
	Category      string    `json:"category,omitempty"`
	Deadline      *string   `json:"deadline,omitempty"`
	Progress      float64   `json:"progress"`
	Exceeded      bool      `json:"exceeded"`
}

type savingsResponse struct {
	ID            uuid.UUID `json:"id"`
	Owner         string    `json:"owner"`
	Name          string    `json:"name"`
	TargetAmount  int64     `json:"target_amount"`
	CurrentAmount int64     `json:"current_amount"`
	Deadline      *string   `json:"deadline,omitempty"`
	Color         string    `json:"color,omitempty"`
	Progress      float64   `json:"progress"`
	Achieved      bool      `json:"achieved"`
}

func toBudgetResponse(g *goal.BudgetGoal) budgetResponse {
	return budgetResponse{
		ID:            g.ID,
		Owner:         string(g.Owner),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Category:      g.Category,
		Deadline:      respond.OptionalDateString(g.Deadline),
		Progress:      g.Progress(),
		Exceeded:      g.Exceeded(),
	}
}

func toSavingsResponse(g *goal.SavingsGoal) savingsResponse {
	return savingsResponse{
		ID:            g.ID,
		Owner:         string(g.Owner),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Deadline:      respond.OptionalDateString(g.Deadline),
		Color:         g.Color,
		Progress:      g.Progress(),
		Achieved:      g.Achieved(),
	}
}

type budgetRequest struct {
	Name         string `json:"name"`
	TargetAmount int64  `json:"target_amount"`
	Category     string `json:"category"`
	Deadline     string `json:"deadline"`
}

func (h *Handler) createBudget(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req budgetRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	deadline, err := respond.OptionalDate("deadline", req.Deadline)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	g, err := h.svc.CreateBudget(r.Context(), goal.CreateBudgetParams{
		Owner:        member,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		Category:     req.Category,
		Deadline:     deadline,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toBudgetResponse(g))
}

func (h *Handler) listBudget(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	list, err := h.svc.ListBudget(r.Context(), member)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]budgetResponse, len(list))
	for i, g := range list {
		resp[i] = toBudgetResponse(g)
	}

	respond.JSON(w, http.StatusOK, resp)
}

type currentRequest struct {
	CurrentAmount int64 `json:"current_amount"`
}

func (h *Handler) updateBudget(w http.ResponseWriter, r *http.Request) {
	member, id, req, ok := decodeCurrent(w, r)
	if !ok {
		return
	}

	g, err := h.svc.UpdateBudgetCurrent(r.Context(), member, id, req.CurrentAmount)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toBudgetResponse(g))
}

type savingsRequest struct {
	Name          string `json:"name"`
	TargetAmount  int64  `json:"target_amount"`
	CurrentAmount int64  `json:"current_amount"`
	Deadline      string `json:"deadline"`
	Color         string `json:"color"`
}

func (h *Handler) createSavings(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req savingsRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	deadline, err := respond.OptionalDate("deadline", req.Deadline)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	g, err := h.svc.CreateSavings(r.Context(), goal.CreateSavingsParams{
		Owner:         member,
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      deadline,
		Color:         req.Color,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toSavingsResponse(g))
}

func (h *Handler) listSavings(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	list, err := h.svc.ListSavings(r.Context(), member)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]savingsResponse, len(list))
	for i, g := range list {
		resp[i] = toSavingsResponse(g)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) updateSavings(w http.ResponseWriter, r *http.Request) {
	member, id, req, ok := decodeCurrent(w, r)
	if !ok {
		return
	}

	g, err := h.svc.UpdateSavingsCurrent(r.Context(), member, id, req.CurrentAmount)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toSavingsResponse(g))
}

func (h *Handler) deleteGoal(del func(context.Context, household.Member, uuid.UUID) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
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

		if err := del(r.Context(), member, id); err != nil {
			respond.Error(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func decodeCurrent(w http.ResponseWriter, r *http.Request) (household.Member, uuid.UUID, currentRequest, bool) {
	var req currentRequest

	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return "", uuid.Nil, req, false
	}

	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return "", uuid.Nil, req, false
	}

	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return "", uuid.Nil, req, false
	}

	return member, id, req, true
}
