package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"

	"labcatalog/internal/catalog"
	"labcatalog/internal/config"
	"labcatalog/internal/http-server/handlers/booking/getAllBookings"
	"labcatalog/internal/http-server/handlers/booking/getBookingInfo"
	"labcatalog/internal/http-server/handlers/booking/getUserBookings"
	"labcatalog/internal/http-server/handlers/catalogmeta/getCategories"
	"labcatalog/internal/http-server/handlers/catalogmeta/getCategoryLabs"
	"labcatalog/internal/http-server/handlers/catalogmeta/getConventions"
	"labcatalog/internal/http-server/handlers/catalogmeta/getStats"
	"labcatalog/internal/http-server/handlers/lab/checkAvailability"
	"labcatalog/internal/http-server/handlers/lab/getAllLabs"
	"labcatalog/internal/http-server/handlers/lab/getLabInfo"
	"labcatalog/internal/http-server/handlers/lab/getLabSchedule"
	"labcatalog/internal/http-server/handlers/lab/searchLabs"
	"labcatalog/internal/http-server/middleware/apikey"
	"labcatalog/internal/http-server/middleware/mwlogger"
	"labcatalog/internal/lib/logger/handlers/slogpretty"
	"labcatalog/internal/lib/logger/sl"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

var publicPaths = []string{"/", "/health", "/status"}

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting lab catalog", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	store, err := catalog.Load(cfg.Data.LabsFile, cfg.Data.BookingsFile)
	if err != nil {
		log.Error("failed to load catalog", sl.Err(err))
		os.Exit(1)
	}

	log.Info("catalog loaded",
		slog.Int("labs", len(store.Labs())),
		slog.Int("bookings", len(store.Bookings())),
	)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "x-api-key", "Authorization", "Accept"},
	}))
	router.Use(apikey.New(log, cfg.APIKey, publicPaths))

	router.Get("/", rootHandler())
	router.Get("/health", healthHandler())
	router.Get("/status", statusHandler(store))

	router.Get("/labs", getAllLabs.New(log, store))
	router.Get("/labs/{id}", getLabInfo.New(log, store))
	router.Get("/labs/{id}/schedule", getLabSchedule.New(log, store))
	router.Get("/availability/{labId}", checkAvailability.New(log, store))
	router.Get("/search/labs", searchLabs.New(log, store))
	router.Get("/bookings", getAllBookings.New(log, store))
	router.Get("/bookings/{bookingId}", getBookingInfo.New(log, store))
	router.Get("/users/{userId}/bookings", getUserBookings.New(log, store))
	router.Get("/stats", getStats.New(log, store))
	router.Get("/categories", getCategories.New(log, store))
	router.Get("/categories/{category}/labs", getCategoryLabs.New(log, store))
	router.Get("/conventions", getConventions.New(log, store))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")
}

type rootResponse struct {
	Service   string   `json:"service"`
	Version   string   `json:"version"`
	Public    []string `json:"public_endpoints"`
	Protected []string `json:"protected_endpoints"`
	AuthHint  string   `json:"auth_hint"`
}

func rootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, rootResponse{
			Service: "Lab Catalog Mock API",
			Version: "1.0.0",
			Public:  publicPaths,
			Protected: []string{
				"/labs", "/labs/{id}", "/labs/{id}/schedule",
				"/availability/{labId}", "/search/labs",
				"/bookings", "/bookings/{bookingId}", "/users/{userId}/bookings",
				"/stats", "/categories", "/categories/{category}/labs", "/conventions",
			},
			AuthHint: "supply the shared key via the x-api-key header",
		})
	}
}

type healthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

func healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, healthResponse{
			Status:    "healthy",
			Service:   "lab-catalog",
			Timestamp: time.Now().UTC(),
		})
	}
}

type statusResponse struct {
	Status        string `json:"status"`
	Labs          int    `json:"labs"`
	Bookings      int    `json:"bookings"`
	AvailableLabs int    `json:"available_labs"`
}

func statusHandler(store *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := store.Stats()
		render.JSON(w, r, statusResponse{
			Status:        "operational",
			Labs:          report.Labs.Total,
			Bookings:      report.Bookings.Total,
			AvailableLabs: report.Labs.Available,
		})
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
