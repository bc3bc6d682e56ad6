package server

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"codex-portfolio/internal/handlers"
	"codex-portfolio/internal/middlewares"
	"codex-portfolio/internal/models"
	"codex-portfolio/internal/realtime"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupRouter(ctx *middlewares.AppContext, hub *realtime.Hub) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middlewares.ClientIPMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(ctx.SessionManager.LoadAndSave)

	r.Use(middlewares.AppContextMiddleware(ctx))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ctx.Config.CORS.AllowedOrigins,
		AllowedMethods:   ctx.Config.CORS.AllowedMethods,
		AllowedHeaders:   ctx.Config.CORS.AllowedHeaders,
		ExposedHeaders:   ctx.Config.CORS.ExposedHeaders,
		AllowCredentials: ctx.Config.CORS.AllowCredentials,
		MaxAge:           ctx.Config.CORS.MaxAgeSeconds,
	}))

	r.Use(middleware.Compress(5))

	// Hub redirects land here, outside /api, so the path matches what the
	// SPA registered with the hub.
	r.Get("/callback", ctx.HandlerFunc(handlers.GETCallbackHandler))

	r.Get("/ws", ctx.HandlerFunc(handlers.GETWebsocketHandler(hub)))

	staticDir := ctx.Config.Server.StaticDir
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(filepath.Join(staticDir, "assets")))))
	r.Handle("/favicon.ico", http.FileServer(http.Dir(staticDir)))

	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middlewares.OptionalAuth)

		r.Route("/auth", func(r chi.Router) {
			r.Get("/status", ctx.HandlerFunc(handlers.AuthStatusHandler))
			r.Get("/login", ctx.HandlerFunc(handlers.GETLoginHandler))
			r.Get("/callback", ctx.HandlerFunc(handlers.GETCallbackHandler))
			r.Post("/refresh", ctx.HandlerFunc(handlers.POSTRefreshHandler))
			r.Post("/logout", ctx.HandlerFunc(handlers.LogoutHandler))
		})

		r.Get("/settings", ctx.HandlerFunc(handlers.GETSettingsHandler))
		r.Get("/seo", ctx.HandlerFunc(handlers.GETSEOHandler))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.MaintenanceGate)

			r.Get("/projects", ctx.HandlerFunc(handlers.GETProjectsHandler))
			r.Get("/projects/{id}", ctx.HandlerFunc(handlers.GETProjectHandler))
			r.Get("/education", ctx.HandlerFunc(handlers.GETEducationHandler))
			r.Get("/experience", ctx.HandlerFunc(handlers.GETExperienceHandler))
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireRole(models.RoleAdmin))

			r.Put("/settings", ctx.HandlerFunc(handlers.PUTSettingsHandler))
			r.Put("/seo", ctx.HandlerFunc(handlers.PUTSEOHandler))

			r.Post("/projects", ctx.HandlerFunc(handlers.POSTProjectHandler))
			r.Put("/projects/{id}", ctx.HandlerFunc(handlers.PUTProjectHandler))
			r.Delete("/projects/{id}", ctx.HandlerFunc(handlers.DELETEProjectHandler))

			r.Post("/education", ctx.HandlerFunc(handlers.POSTEducationHandler))
			r.Put("/education/{id}", ctx.HandlerFunc(handlers.PUTEducationHandler))
			r.Delete("/education/{id}", ctx.HandlerFunc(handlers.DELETEEducationHandler))

			r.Post("/experience", ctx.HandlerFunc(handlers.POSTExperienceHandler))
			r.Put("/experience/{id}", ctx.HandlerFunc(handlers.PUTExperienceHandler))
			r.Delete("/experience/{id}", ctx.HandlerFunc(handlers.DELETEExperienceHandler))

			r.Get("/security/events", ctx.HandlerFunc(handlers.GETSecurityEventsHandler))
		})

		r.Route("/v1", func(r chi.Router) {
			r.Get("/health", ctx.HandlerFunc(handlers.HandlerHealth))
		})
	})

	return r
}

func setupDebugRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/debug", middleware.Profiler())

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
