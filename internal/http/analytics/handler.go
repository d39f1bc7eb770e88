package analytics

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/buxfer/internal/analytics"
	"github.com/MrJamesThe3rd/buxfer/internal/auth"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
	"github.com/MrJamesThe3rd/buxfer/internal/http/respond"
)

type Handler struct {
	svc *analytics.Service
	now func() time.Time
}

func NewHandler(svc *analytics.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/dashboard", h.dashboard)
	r.Get("/report", h.report)
	r.Get("/balance", h.balance)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	d, err := h.svc.Dashboard(r.Context(), member, h.now())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDashboardResponse(d))
}

// report covers one member when owner is given, the whole household otherwise.
func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	win, err := h.window(q)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var owner *household.Member
	if s := q.Get("owner"); s != "" {
		owner = new(household.Member(s))
	}

	rep, err := h.svc.Report(r.Context(), owner, win)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := reportResponse{
		Window:    toWindowResponse(rep.Window),
		Total:     rep.Total,
		Breakdown: toBreakdownResponse(rep.Breakdown),
	}
	if rep.Comparison != nil {
		resp.Comparison = new(toComparisonResponse(*rep.Comparison))
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) balance(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	q := r.URL.Query()

	win, err := h.window(q)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	// Opening balance in cents, may be negative.
	opening, err := respond.Int("opening", q.Get("opening"), 0)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	days, err := h.svc.Balance(r.Context(), member, win, int64(opening))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toBalanceResponse(days))
}

// window reads start and end when both are present, the named window otherwise.
func (h *Handler) window(q url.Values) (analytics.Window, error) {
	if q.Get("start") != "" || q.Get("end") != "" {
		start, err := respond.Date("start", q.Get("start"))
		if err != nil {
			return analytics.Window{}, err
		}

		end, err := respond.Date("end", q.Get("end"))
		if err != nil {
			return analytics.Window{}, err
		}

		return analytics.Range(start, end), nil
	}

	return analytics.ParseWindow(q.Get("window"), h.now())
}
