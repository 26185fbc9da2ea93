package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	health "github.com/hellofresh/health-go/v5"

	"github.com/pizzastore/pizzastore-be/internal/api/handlers"
	"github.com/pizzastore/pizzastore-be/internal/auth"
	"github.com/pizzastore/pizzastore-be/internal/config"
	"github.com/pizzastore/pizzastore-be/internal/docs"
	"github.com/pizzastore/pizzastore-be/internal/store"
)

// NewRouter creates and configures a new Chi router. /login and /health are
// anonymous; every record endpoint sits behind the bearer-token gate.
func NewRouter(cfg *config.Config, tokens *auth.TokenService, users store.UserStoreProvider, pizzas store.PizzaStoreProvider, h *health.Health) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(users, tokens, cfg.IsDevelopment())
	userHandler := handlers.NewUserHandler(users)
	pizzaHandler := handlers.NewPizzaHandler(pizzas)

	r.Post("/login", authHandler.Login)
	r.Get("/health", h.HandlerFunc)

	// Everything below requires a valid bearer token.
	r.Group(func(r chi.Router) {
		r.Use(tokens.Middleware())

		r.Route("/user", func(r chi.Router) {
			r.Post("/", userHandler.Create)
			r.Get("/{username}", userHandler.Get)
			r.Delete("/{username}", userHandler.Delete)
		})

		r.Get("/pizzas", pizzaHandler.GetAll)
		r.Route("/pizza", func(r chi.Router) {
			r.Post("/", pizzaHandler.Create)
			r.Get("/{id:[0-9]+}", pizzaHandler.Get)
			r.Put("/{id:[0-9]+}", pizzaHandler.Update)
			r.Delete("/{id:[0-9]+}", pizzaHandler.Delete)
		})
	})

	// Interactive API docs are a development convenience only.
	if cfg.IsDevelopment() {
		docs.Mount(r)
	}

	return r
}
