package expense

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/buxfer/internal/auth"
	"github.com/MrJamesThe3rd/buxfer/internal/expense"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
	"github.com/MrJamesThe3rd/buxfer/internal/http/respond"
)

type Handler struct {
	svc *expense.Service
}

func NewHandler(svc *expense.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type expenseRequest struct {
	Description string            `json:"description"`
	Amount      int64             `json:"amount"`
	Category    string            `json:"category"`
	Date        string            `json:"date"`
	SplitWith   *household.Member `json:"split_with,omitempty"`
	SplitAmount *int64            `json:"split_amount,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req expenseRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	date, err := respond.Date("date", req.Date)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	e, err := h.svc.Create(r.Context(), expense.CreateParams{
		Owner:       member,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        date,
		SplitWith:   req.SplitWith,
		SplitAmount: req.SplitAmount,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(e))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	filter, err := ParseFilter(r.URL.Query(), member)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	list, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(list))
}

// ParseFilter reads a filter over member's expenses from category, start_date, end_date, min_amount
// and max_amount.
func ParseFilter(q url.Values, member household.Member) (expense.ListFilter, error) {
	filter := expense.ListFilter{Owner: new(member), Category: q.Get("category")}

	var err error

	if filter.StartDate, err = respond.OptionalDate("start_date", q.Get("start_date")); err != nil {
		return filter, err
	}

	if filter.EndDate, err = respond.OptionalDate("end_date", q.Get("end_date")); err != nil {
		return filter, err
	}

	if filter.MinAmount, err = respond.OptionalAmount("min_amount", q.Get("min_amount")); err != nil {
		return filter, err
	}

	if filter.MaxAmount, err = respond.OptionalAmount("max_amount", q.Get("max_amount")); err != nil {
		return filter, err
	}

	return filter, nil
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
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

	e, err := h.svc.Get(r.Context(), member, id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(e))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
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

	var req expenseRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	date, err := respond.Date("date", req.Date)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	e, err := h.svc.Get(r.Context(), member, id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	e.Description = req.Description
	e.Amount = req.Amount
	e.Date = date
	e.SplitWith = req.SplitWith
	e.SplitAmount = req.SplitAmount

	if req.Category != "" {
		e.Category = req.Category
	}

	if err := h.svc.Update(r.Context(), member, e); err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(e))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.Delete(r.Context(), member, id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
