package debt

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/buxfer/internal/auth"
	"github.com/MrJamesThe3rd/buxfer/internal/debt"
	"github.com/MrJamesThe3rd/buxfer/internal/http/respond"
)

type Handler struct {
	svc *debt.Service
}

func NewHandler(svc *debt.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Post("/personal", h.createPersonal)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/{id}/pay", h.pay)
	r.Patch("/{id}", h.updatePaymentAmount)
	r.Delete("/{id}", h.delete)
}

type createRequest struct {
	Description   string `json:"description"`
	TotalAmount   int64  `json:"total_amount"`
	Shared        bool   `json:"shared"`
	PaymentAmount int64  `json:"payment_amount"`
	Date          string `json:"date"`
}

func (h *Handler) decodeCreate(w http.ResponseWriter, r *http.Request) (createRequest, time.Time, bool) {
	var req createRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return req, time.Time{}, false
	}

	date, err := respond.Date("date", req.Date)
	if err != nil {
		respond.Error(w, r, err)
		return req, time.Time{}, false
	}

	return req, date, true
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	req, date, ok := h.decodeCreate(w, r)
	if !ok {
		return
	}

	d, e, err := h.svc.Create(r.Context(), debt.CreateParams{
		Owner:       member,
		Description: req.Description,
		TotalAmount: req.TotalAmount,
		Shared:      req.Shared,
		Date:        date,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, createResponse{Debt: toResponse(d), Expense: toExpenseRef(e)})
}

func (h *Handler) createPersonal(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	req, date, ok := h.decodeCreate(w, r)
	if !ok {
		return
	}

	d, err := h.svc.CreatePersonal(r.Context(), debt.CreatePersonalParams{
		Owner:         member,
		Description:   req.Description,
		TotalAmount:   req.TotalAmount,
		PaymentAmount: req.PaymentAmount,
		Date:          date,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, createResponse{Debt: toResponse(d)})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	list, err := h.svc.Visible(r.Context(), member)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]debtResponse, len(list))
	for i, d := range list {
		resp[i] = toResponse(d)
	}

	respond.JSON(w, http.StatusOK, resp)
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

	d, err := h.svc.Get(r.Context(), member, id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(d))
}

func (h *Handler) pay(w http.ResponseWriter, r *http.Request) {
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

	res, err := h.svc.Pay(r.Context(), member, id, time.Now())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, payResponse{
		Debt:    toResponse(res.Debt),
		Payment: toPaymentResponse(res.Payment),
		Expense: toExpenseRef(res.Expense),
	})
}

type paymentAmountRequest struct {
	PaymentAmount int64 `json:"payment_amount"`
}

func (h *Handler) updatePaymentAmount(w http.ResponseWriter, r *http.Request) {
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

	var req paymentAmountRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	d, err := h.svc.UpdatePaymentAmount(r.Context(), member, id, req.PaymentAmount)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(d))
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
