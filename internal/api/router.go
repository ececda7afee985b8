// internal/api/router.go
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires every endpoint of the phylogeny service.
func NewRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/align", func(r chi.Router) {
			r.Post("/global", GlobalAlignHandler)
		})
		r.Route("/distance", func(r chi.Router) {
			r.Post("/matrix", DistanceMatrixHandler)
		})
		r.Route("/tree", func(r chi.Router) {
			r.Post("/build", TreeHandler)
		})
		r.Route("/msa", func(r chi.Router) {
			r.Post("/clustalw", ClustalWHandler)
			r.Post("/fengdoolittle", FengDoolittleHandler)
		})
	})

	return r
}
