package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"admind/internal/services"
)

// MenuHandler handles menu-related HTTP requests
type MenuHandler struct {
	service *services.MenuService
	logger  *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(service *services.MenuService, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "menu")),
	}
}

// Routes returns the menu route tree
func (h *MenuHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	return r
}

// List handles GET /api/menus
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	menus, err := h.service.List(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list menus",
			slog.String("error", err.Error()))
		WriteError(w, r, NewError(http.StatusInternalServerError, "failed to list menus"))
		return
	}
	render.JSON(w, r, menus)
}
