package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressionLevel is the gzip level used for JSON responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(middleware.SetHeader("X-Content-Type-Options", "nosniff"))
	router.Use(middleware.Compress(compressionLevel, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, ErrRouteNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, ErrMethodNotAllowed)
	})

	router.Get("/version", h.getServerVersion)
	router.Post("/auth/login", h.login)

	router.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Post("/", h.createUser)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getUser)
			r.Patch("/", h.updateUser)
			r.Delete("/", h.deleteUser)
			r.Get("/scores", h.requireAuth(h.listUserScores))
		})
	})

	router.Route("/maps", func(r chi.Router) {
		r.Get("/", h.listMaps)
		r.Post("/", h.createMap)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getMap)
			r.Patch("/", h.updateMap)
			r.Delete("/", h.deleteMap)
			r.Get("/layout", h.getMapLayout)
		})
	})

	router.Route("/tiles", func(r chi.Router) {
		r.Get("/", h.listTiles)
		r.Post("/", h.createTile)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getTile)
			r.Patch("/", h.updateTile)
			r.Delete("/", h.deleteTile)
		})
	})

	router.Route("/layouts", func(r chi.Router) {
		r.Get("/", h.listLayouts)
		r.Post("/", h.createLayout)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getLayout)
			r.Patch("/", h.updateLayout)
			r.Delete("/", h.deleteLayout)
		})
	})

	router.Route("/scores", func(r chi.Router) {
		r.Get("/", h.listScores)
		r.Post("/", h.requireAuth(h.createScore))
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getScore)
			r.Patch("/", h.updateScore)
			r.Delete("/", h.deleteScore)
		})
	})

	return router
}
