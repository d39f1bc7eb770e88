package todo

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/auth"
	"github.com/MrJamesThe3rd/buxfer/internal/http/respond"
	"github.com/MrJamesThe3rd/buxfer/internal/todo"
)

type Handler struct {
	svc *todo.Service
}

func NewHandler(svc *todo.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Post("/{id}/toggle", h.toggle)
	r.Post("/{id}/move", h.move)
	r.Delete("/{id}", h.delete)
}

type todoResponse struct {
	ID       uuid.UUID `json:"id"`
	Owner    string    `json:"owner"`
	Text     string    `json:"text"`
	Done     bool      `json:"done"`
	Due      *string   `json:"due,omitempty"`
	Position int       `json:"position"`
}

func toResponse(t *todo.Todo) todoResponse {
	return todoResponse{
		ID:       t.ID,
		Owner:    string(t.Owner),
		Text:     t.Text,
		Done:     t.Done,
		Due:      respond.OptionalDateString(t.Due),
		Position: t.Position,
	}
}

func toResponseList(list []*todo.Todo) []todoResponse {
	resp := make([]todoResponse, len(list))
	for i, t := range list {
		resp[i] = toResponse(t)
	}

	return resp
}

type createRequest struct {
	Text string `json:"text"`
	Due  string `json:"due"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req createRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	due, err := respond.OptionalDate("due", req.Due)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	t, err := h.svc.Create(r.Context(), member, req.Text, due)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(t))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	member, err := auth.MemberFrom(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	list, err := h.svc.List(r.Context(), member)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(list))
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request) {
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

	t, err := h.svc.Toggle(r.Context(), member, id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(t))
}

type moveRequest struct {
	Delta int `json:"delta"`
}

func (h *Handler) move(w http.ResponseWriter, r *http.Request) {
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

	var req moveRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	list, err := h.svc.Move(r.Context(), member, id, req.Delta)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(list))
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
