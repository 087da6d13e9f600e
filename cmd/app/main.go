package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jordanwest/ledgerpane/pkg/cache"
	"github.com/jordanwest/ledgerpane/pkg/config"
	"github.com/jordanwest/ledgerpane/pkg/engine"
	"github.com/jordanwest/ledgerpane/pkg/handlers"
	"github.com/jordanwest/ledgerpane/pkg/ledger"
	"github.com/jordanwest/ledgerpane/pkg/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	client := ledger.NewHTTPClient(cfg.LedgerBaseURL, ledger.StaticToken(cfg.LedgerToken))
	eng := engine.New(client, cache.New(), logger)

	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	handlers.Routes(router, eng, nil)

	logger.Info("starting bridge server", "port", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
