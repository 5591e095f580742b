package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	gameAPI "slot_engine/internal/api/game"
	"slot_engine/internal/api/middleware"
	sessionAPI "slot_engine/internal/api/session"
)

type RouterDeps struct {
	Games     *gameAPI.Handler
	Sessions  *sessionAPI.Handler
	SecretKey []byte
	Logger    *zap.Logger
}

// NewRouter Маршруты HTTP API
func NewRouter(deps RouterDeps) chi.Router {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger(deps.Logger))

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Game endpoints
	r.Route("/games", func(rr chi.Router) {
		rr.Post("/", deps.Games.Import)
		rr.Get("/", deps.Games.List)
		rr.Get("/{id}", deps.Games.Get)
	})

	// Session endpoints
	r.Route("/sessions", func(rr chi.Router) {
		rr.Post("/", deps.Sessions.Open)

		rr.Group(func(auth chi.Router) {
			auth.Use(middleware.Auth(deps.SecretKey))
			auth.Post("/spin", deps.Sessions.Spin)
			auth.Post("/buy-bonus", deps.Sessions.BuyBonus)
			auth.Get("/stats", deps.Sessions.Stats)
			auth.Get("/free-spins", deps.Sessions.FreeSpins)
			auth.Delete("/", deps.Sessions.Close)
		})
	})

	return r
}
