package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"school-api/internal/config"
	"school-api/internal/handler"
	"school-api/internal/middleware"
	"school-api/pkg/apierror"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	School   *handler.SchoolHandler
	Health   *handler.HealthHandler
	Frontend *handler.FrontendHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		middleware.WriteError(w, apierror.NotFound("route not found", ""))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		middleware.WriteError(w, apierror.New("METHOD_NOT_ALLOWED", "method not allowed", "", http.StatusMethodNotAllowed))
	})

	r.Get("/", h.Frontend.Index)
	r.Handle("/static/*", http.StripPrefix("/static", h.Frontend.Static()))

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Get("/health", h.Health.Health)
		api.Post("/token", h.Auth.Token)

		api.Group(func(protected chi.Router) {
			protected.Use(authMiddleware.RequireAuth)

			protected.Get("/me", h.Auth.Me)
			protected.Get("/dashboard/stats", h.School.Stats)
			protected.Get("/alumnos", h.School.Students)
			protected.Get("/maestros", h.School.Teachers)
			protected.Get("/grupos", h.School.Groups)
		})
	})

	return r
}
