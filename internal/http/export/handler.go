package export

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/auth"
	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/export"
	httpexpense "github.com/MrJamesThe3rd/buxfer/internal/http/expense"
	"github.com/MrJamesThe3rd/buxfer/internal/http/respond"
)

const maxUpload = 10 << 20

type Handler struct {
	svc *export.Service
	now func() time.Time
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/expenses.csv", h.expensesCSV)
	r.Get("/expenses.xlsx", h.expensesXLSX)
	r.Get("/calendar.ics", h.calendar)
	r.Post("/import", h.importCSV)
}

type importResponse struct {
	Imported int         `json:"imported"`
	IDs      []uuid.UUID `json:"ids"`
	Charset  string      `json:"charset"`
}

func (h *Handler) expensesCSV(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	filter, err := httpexpense.ParseFilter(r.URL.Query(), member)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	// Buffer so a failed query still gets a JSON error instead of a truncated file.
	var buf bytes.Buffer
	if err := h.svc.ExpensesCSV(r.Context(), &buf, filter); err != nil {
		respond.Error(w, r, err)
		return
	}

	h.attach(w, "text/csv; charset=utf-8", "expenses.csv", buf.Bytes())
}

func (h *Handler) expensesXLSX(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	filter, err := httpexpense.ParseFilter(r.URL.Query(), member)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := h.svc.ExpensesXLSX(r.Context(), &buf, filter); err != nil {
		respond.Error(w, r, err)
		return
	}

	h.attach(w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "expenses.xlsx", buf.Bytes())
}

func (h *Handler) calendar(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := h.svc.Calendar(r.Context(), &buf, member, h.now()); err != nil {
		respond.Error(w, r, err)
		return
	}

	h.attach(w, "text/calendar; charset=utf-8", "buxfer.ics", buf.Bytes())
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(maxUpload); err != nil {
		respond.Error(w, r, errs.Invalid("file", "failed to parse form"))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, r, errs.Invalid("file", "file field is required"))
		return
	}
	defer file.Close()

	res, err := h.svc.ImportCSV(r.Context(), file, member)
	if err != nil {
		if len(res.Expenses) > 0 {
			slog.Error("import stopped part way", "imported", len(res.Expenses), "charset", res.Charset, "error", err)
		}

		respond.Error(w, r, err)

		return
	}

	resp := importResponse{
		Imported: len(res.Expenses),
		IDs:      make([]uuid.UUID, len(res.Expenses)),
		Charset:  string(res.Charset),
	}
	for i, e := range res.Expenses {
		resp.IDs[i] = e.ID
	}

	respond.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) attach(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write export", "file", filename, "error", err)
	}
}
