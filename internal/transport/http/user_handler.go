package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"gorm.io/gorm"

	"admind/internal/services"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	service *services.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(service *services.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "user")),
	}
}

// Routes returns the user route tree
func (h *UserHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	return r
}

// List handles GET /api/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list users",
			slog.String("error", err.Error()))
		WriteError(w, r, NewError(http.StatusInternalServerError, "failed to list users"))
		return
	}
	render.JSON(w, r, users)
}

// Get handles GET /api/users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		WriteError(w, r, NewError(http.StatusUnprocessableEntity, "invalid user id"))
		return
	}

	user, err := h.service.Get(r.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			WriteError(w, r, ErrNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to get user",
			slog.Uint64("id", id),
			slog.String("error", err.Error()))
		WriteError(w, r, NewError(http.StatusInternalServerError, "failed to get user"))
		return
	}
	render.JSON(w, r, user)
}
