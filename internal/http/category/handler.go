package category

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/buxfer/internal/category"
	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/http/respond"
)

type Handler struct {
	svc *category.Service
}

func NewHandler(svc *category.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.listCategories)
	r.Post("/", h.addCategory)
	r.Put("/{name}", h.renameCategory)
	r.Delete("/{name}", h.deleteCategory)

	r.Get("/rules", h.listRules)
	r.Post("/rules", h.addRule)
	r.Put("/rules/{id}", h.updateRule)
	r.Delete("/rules/{id}", h.deleteRule)

	r.Post("/categorize", h.categorize)
}

type categoryResponse struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
}

type ruleResponse struct {
	ID       uuid.UUID `json:"id"`
	Keyword  string    `json:"keyword"`
	Category string    `json:"category"`
	Position int       `json:"position"`
}

func toRuleResponse(r *category.Rule) ruleResponse {
	return ruleResponse{ID: r.ID, Keyword: r.Keyword, Category: r.Category, Position: r.Position}
}

type nameRequest struct {
	Name string `json:"name"`
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListCategories(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]categoryResponse, len(list))
	for i, c := range list {
		resp[i] = categoryResponse{Name: c.Name, Position: c.Position}
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) addCategory(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	c, err := h.svc.AddCategory(r.Context(), req.Name)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, categoryResponse{Name: c.Name, Position: c.Position})
}

func (h *Handler) renameCategory(w http.ResponseWriter, r *http.Request) {
	from, err := pathName(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req nameRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.svc.RenameCategory(r.Context(), from, req.Name); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	name, err := pathName(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.svc.DeleteCategory(r.Context(), name); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listRules(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListRules(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]ruleResponse, len(list))
	for i, rule := range list {
		resp[i] = toRuleResponse(rule)
	}

	respond.JSON(w, http.StatusOK, resp)
}

type ruleRequest struct {
	Keyword  string `json:"keyword"`
	Category string `json:"category"`
}

func (h *Handler) addRule(w http.ResponseWriter, r *http.Request) {
	var req ruleRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	rule, err := h.svc.AddRule(r.Context(), req.Keyword, req.Category)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toRuleResponse(rule))
}

func (h *Handler) updateRule(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req ruleRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	rule, err := h.svc.UpdateRule(r.Context(), id, req.Keyword, req.Category)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toRuleResponse(rule))
}

func (h *Handler) deleteRule(w http.ResponseWriter, r *http.Request) {
	id, err := respond.ID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.svc.DeleteRule(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type categorizeRequest struct {
	Description string `json:"description"`
}

type categorizeResponse struct {
	Category string `json:"category"`
}

func (h *Handler) categorize(w http.ResponseWriter, r *http.Request) {
	var req categorizeRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	c, err := h.svc.Categorize(r.Context(), req.Description)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, categorizeResponse{Category: c})
}

func pathName(r *http.Request) (string, error) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || name == "" {
		return "", errs.Invalid("name", "invalid category name")
	}

	return name, nil
}
