package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/render"
)

// APIPrefix is the reserved path prefix for business routes. Everything
// outside it is presumed to belong to the single-page frontend.
const APIPrefix = "/api"

// Error is a structured HTTP-level error. Status is carried on the response
// line; the body holds only the detail, matching the wire contract consumed
// by the frontend.
type Error struct {
	Status int    `json:"-"`
	Detail string `json:"detail"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Detail
}

// Render implements the render.Renderer interface for chi/render.
func (e *Error) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.Status)
	return nil
}

// NewError creates a new Error with the given status and detail.
func NewError(status int, detail string) *Error {
	return &Error{Status: status, Detail: detail}
}

// ErrNotFound is the envelope for unmatched API routes.
var ErrNotFound = NewError(http.StatusNotFound, "Not Found")

// ErrMethodNotAllowed is the envelope for requests whose path matched a
// route but whose method did not.
var ErrMethodNotAllowed = NewError(http.StatusMethodNotAllowed, "Method Not Allowed")

// WriteError translates any error into the uniform JSON envelope. An *Error
// passes through with its own status and detail; anything else becomes a 500.
// It holds no state and is safe under concurrent invocation.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr, ok := err.(*Error)
	if !ok {
		apiErr = NewError(http.StatusInternalServerError, err.Error())
	}
	if renderErr := render.Render(w, r, apiErr); renderErr != nil {
		http.Error(w, apiErr.Detail, apiErr.Status)
	}
}

// NotFoundHandler resolves unmatched routes. Paths outside the API prefix are
// presumed to be virtual routes owned by the single-page frontend and redirect
// to the application root for the client-side router to resolve; unmatched API
// paths get the structured 404 envelope.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, APIPrefix) {
			http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
			return
		}
		WriteError(w, r, ErrNotFound)
	}
}

// MethodNotAllowedHandler resolves requests whose path matched but whose
// method did not. Unlike unmatched paths there is no frontend fallback; the
// 405 passes through as the structured envelope regardless of prefix.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, ErrMethodNotAllowed)
	}
}
