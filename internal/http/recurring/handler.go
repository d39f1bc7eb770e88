package recurring

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/buxfer/internal/auth"
	"github.com/MrJamesThe3rd/buxfer/internal/http/respond"
	"github.com/MrJamesThe3rd/buxfer/internal/recurring"
)

type Handler struct {
	svc *recurring.Service
}

func NewHandler(svc *recurring.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/paid", h.markPaid)
}

type paymentRequest struct {
	Description    string              `json:"description"`
	Amount         int64               `json:"amount"`
	Frequency      recurring.Frequency `json:"frequency"`
	NextDue        string              `json:"next_due"`
	Category       string              `json:"category"`
	Notes          string              `json:"notes"`
	VariableAmount bool                `json:"variable_amount"`
	ReminderDays   int                 `json:"reminder_days"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req paymentRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	due, err := respond.Date("next_due", req.NextDue)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	p, err := h.svc.Create(r.Context(), recurring.CreateParams{
		Owner:          member,
		Description:    req.Description,
		Amount:         req.Amount,
		Frequency:      req.Frequency,
		NextDue:        due,
		Category:       req.Category,
		Notes:          req.Notes,
		VariableAmount: req.VariableAmount,
		ReminderDays:   req.ReminderDays,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(p))
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

	respond.JSON(w, http.StatusOK, toResponseList(list))
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

	p, err := h.svc.Get(r.Context(), member, id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(p))
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

	var req paymentRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	due, err := respond.Date("next_due", req.NextDue)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	p, err := h.svc.Get(r.Context(), member, id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	p.Description = req.Description
	p.Amount = req.Amount
	p.Frequency = req.Frequency
	p.NextDue = due
	p.Category = req.Category
	p.Notes = req.Notes
	p.VariableAmount = req.VariableAmount
	p.ReminderDays = req.ReminderDays

	if err := h.svc.Update(r.Context(), member, p); err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(p))
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

type markPaidRequest struct {
	// Date defaults to today.
	Date   string `json:"date"`
	Amount *int64 `json:"amount,omitempty"`
}

func (h *Handler) markPaid(w http.ResponseWriter, r *http.Request) {
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

	var req markPaidRequest
	if r.ContentLength != 0 {
		if err := respond.Decode(r, &req); err != nil {
			respond.Error(w, r, err)
			return
		}
	}

	today := time.Now()
	if req.Date != "" {
		if today, err = respond.Date("date", req.Date); err != nil {
			respond.Error(w, r, err)
			return
		}
	}

	res, err := h.svc.MarkPaid(r.Context(), recurring.MarkPaidParams{
		ID:     id,
		PaidBy: member,
		Today:  today,
		Amount: req.Amount,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	p := toResponse(res.Payment)
	respond.JSON(w, http.StatusOK, markPaidResponse{Payment: &p, ExpenseID: res.Expense.ID})
}
