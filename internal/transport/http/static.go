package http

import (
	"log/slog"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
)

// ConfigureStatic installs the not-found translator and, when enabled, mounts
// the local frontend bundle at the application root with HTML-index fallback
// (a directory request serves its index document).
//
// The enabled flag is read once from the environment at startup and never
// re-evaluated. When disabled, unmatched paths still go through the
// translator, and a separate process is expected to serve the bundle.
func ConfigureStatic(r chi.Router, logger *slog.Logger, enabled bool, dir string) {
	r.NotFound(NotFoundHandler())
	r.MethodNotAllowed(MethodNotAllowedHandler())

	if !enabled {
		logger.Warn("local static serving disabled; serve the frontend bundle from a separate process")
		return
	}

	logger.Info("serving frontend bundle locally", slog.String("dir", dir))
	r.Get("/*", serveSPA(dir))
	r.Head("/*", serveSPA(dir))
}

// serveSPA serves files from the bundle directory. Paths that match no file
// follow the same fallback policy as the not-found translator: the frontend
// owns them, so the client is sent back to the root to let its router resolve
// the route on reload.
func serveSPA(dir string) http.HandlerFunc {
	root := http.Dir(dir)
	fileServer := http.FileServer(root)

	return func(w http.ResponseWriter, r *http.Request) {
		urlPath := path.Clean(r.URL.Path)
		if urlPath == "/" {
			fileServer.ServeHTTP(w, r)
			return
		}

		f, err := root.Open(urlPath)
		if err != nil {
			http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
			return
		}
		f.Close()

		fileServer.ServeHTTP(w, r)
	}
}
