package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/user/tierlist-go/apperror"
	"github.com/user/tierlist-go/auth"
	"github.com/user/tierlist-go/config"
	"github.com/user/tierlist-go/store"
	"github.com/user/tierlist-go/tierlists"
	"github.com/user/tierlist-go/users"
)

// newRouter assembles the full HTTP surface on top of the given stores.
// Separated from main so tests can mount the router on in-memory stores.
func newRouter(cfg *config.AppConfig, logger *zap.Logger, userStore store.UserStore, tierlistStore store.TierlistStore) chi.Router {
	authService := auth.NewService(userStore, *cfg.Auth, logger)
	authHandlers := auth.NewHandlers(authService, cfg.Server)

	userService := users.NewService(userStore, *cfg.Auth, logger)
	userHandlers := users.NewHandlers(userService)

	tierlistService := tierlists.NewService(tierlistStore, logger)
	tierlistHandlers := tierlists.NewHandlers(tierlistService)

	r := chi.NewRouter()

	// Chi requires all middleware to be registered before any routes.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))

	allowedOrigins := []string{"http://localhost:8080"}
	if cfg.Server.Origin != "" {
		allowedOrigins = append(allowedOrigins, cfg.Server.Origin)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "x-access-key"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// The access gate applies to the whole surface, public routes included.
	r.Use(auth.AccessGate(cfg.Auth))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		auth.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Genshin Tools API HomePage, to start using the API login at the /user/login route to get your token",
		})
	})

	r.Route("/user", func(r chi.Router) {
		r.Post("/register", authHandlers.HandleRegister())
		r.Post("/login", authHandlers.HandleLogin())
		r.Get("/logout", authHandlers.HandleLogout())
		r.Post("/logout", authHandlers.HandleLogout())

		r.Group(func(r chi.Router) {
			r.Use(auth.SessionMiddleware(cfg.Auth))
			r.Get("/me", userHandlers.HandleMe())
			r.Patch("/me", userHandlers.HandleUpdateMe())
		})
	})

	r.Route("/tierlist", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.SessionMiddleware(cfg.Auth))
			r.Post("/", tierlistHandlers.HandleSave())
			r.Get("/", tierlistHandlers.HandleList())
		})
		r.Get("/{id}", tierlistHandlers.HandleGet())
	})

	notFound := func(w http.ResponseWriter, _ *http.Request) {
		auth.WriteJSON(w, http.StatusNotFound, apperror.StatusMessage{
			Success: false,
			Message: "This page doesn't exist",
		})
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}

// requestLogger logs one line per request: method, path, status, duration
// and remote address. Payloads are never logged.
func requestLogger(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("http",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("dur", time.Since(start)),
				zap.String("remote", r.RemoteAddr),
			)
		})
	}
}

// recoverer converts panics into a generic 500 StatusMessage and logs the
// stack, so no raw fault detail leaks to the client.
func recoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic",
						zap.Any("reason", rvr),
						zap.Stack("stack"),
						zap.String("path", r.URL.Path),
					)
					appErr := apperror.NewInternalError("Something went wrong", nil)
					auth.WriteJSON(w, appErr.StatusCode(), appErr.ToResponse())
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
