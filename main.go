package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	health "github.com/hellofresh/health-go/v5"
	"github.com/rs/zerolog/log"

	"github.com/pizzastore/pizzastore-be/internal/api"
	"github.com/pizzastore/pizzastore-be/internal/auth"
	"github.com/pizzastore/pizzastore-be/internal/config"
	"github.com/pizzastore/pizzastore-be/internal/logger"
	"github.com/pizzastore/pizzastore-be/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.IsDevelopment())

	// Set up the in-memory stores
	pizzas := store.NewPizzaStore()
	users := store.NewUserStore()

	// Set up the token service
	tokens := auth.NewTokenService(cfg.Jwt)

	// Set up the health checker
	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "pizzastore-be",
			Version: "v1",
		}),
		health.WithChecks(
			health.Config{
				Name:    "pizza-store",
				Timeout: time.Second,
				Check: func(ctx context.Context) error {
					pizzas.List()
					return nil
				},
			},
			health.Config{
				Name:    "user-store",
				Timeout: time.Second,
				Check: func(ctx context.Context) error {
					users.Exists("")
					return nil
				},
			},
		),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize health checker")
	}

	// Set up router
	router := api.NewRouter(cfg, tokens, users, pizzas, h)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.Server.Port).Str("environment", cfg.Server.Environment).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
