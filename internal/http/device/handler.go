package device

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/buxfer/internal/auth"
	"github.com/MrJamesThe3rd/buxfer/internal/http/respond"
	"github.com/MrJamesThe3rd/buxfer/internal/localstate"
)

// Handler serves the signed-in member's preferences and the import of their local snapshots.
type Handler struct {
	device   *localstate.Device
	migrator *localstate.Migrator
}

func NewHandler(device *localstate.Device, migrator *localstate.Migrator) *Handler {
	return &Handler{device: device, migrator: migrator}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/preferences", h.preferences)
	r.Put("/preferences", h.savePreferences)
	r.Get("/migration", h.pending)
	r.Post("/migration", h.migrate)
}

type pendingResponse struct {
	Pending bool `json:"pending"`
}

type migrateResponse struct {
	Imported localstate.MigrateResult `json:"imported"`
}

func (h *Handler) preferences(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	p, err := h.device.Preferences(r.Context(), member)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, p)
}

func (h *Handler) savePreferences(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var p localstate.Preferences
	if err := respond.Decode(r, &p); err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.device.SavePreferences(r.Context(), member, p); err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, p)
}

func (h *Handler) pending(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	ok, err := h.migrator.Pending(r.Context(), member)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, pendingResponse{Pending: ok})
}

func (h *Handler) migrate(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	res, err := h.migrator.Migrate(r.Context(), member)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, migrateResponse{Imported: res})
}
