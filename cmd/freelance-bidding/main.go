package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"freelance_bidding/internal/bidding"
	"freelance_bidding/internal/catalog"
	"freelance_bidding/internal/config"
	"freelance_bidding/internal/http-server/handlers/api/bids"
	"freelance_bidding/internal/http-server/handlers/api/ping"
	"freelance_bidding/internal/http-server/handlers/api/profile"
	"freelance_bidding/internal/http-server/handlers/api/projects"
	"freelance_bidding/internal/lib/logger/sl"
	"freelance_bidding/internal/metrics"
	mprofile "freelance_bidding/internal/models/profile"
	"freelance_bidding/internal/storage"
	"freelance_bidding/internal/storage/bidstore"
	"freelance_bidding/internal/storage/memory"
	"freelance_bidding/internal/storage/postgres"
	"freelance_bidding/internal/storage/ratingstore"
	"freelance_bidding/internal/storage/sqlite"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", sl.Err(err))
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Error("failed to open store", slog.String("driver", cfg.StoreDriver), sl.Err(err))
		os.Exit(1)
	}
	defer closeStore()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.CatalogTimeout)
	catalogProjects := catalog.New(log, cfg.CatalogURL, cfg.CatalogTimeout).Projects(ctx)
	cancel()

	repo := bidstore.New(log, store)
	service := bidding.New(log, repo, catalogProjects, cfg.SubmitDelay)
	ratings := ratingstore.New(log, store)
	freelancer := mprofile.Default()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Handle("/metrics", metrics.Handler())
	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", ping.New(log, store))
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", projects.NewGetProjects(log, service))
			r.Get("/skills", projects.NewGetSkills(log, service))
			r.Post("/{projectId}/bids", projects.NewPostBid(log, service))
		})
		r.Route("/bids", func(r chi.Router) {
			r.Get("/", bids.NewGetBids(log, service))
			r.Get("/board", bids.NewGetBidBoard(log, service))
			r.Put("/{bidId}/status", bids.NewPutBidStatus(log, service))
		})
		r.Route("/profile", func(r chi.Router) {
			r.Get("/", profile.NewGetProfile(log, freelancer, ratings))
			r.Post("/rating", profile.NewPostRating(log, freelancer, ratings))
		})
	})

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start the server", sl.Err(err))
		}
	}()

	log.Info("starting server", slog.String("addr", cfg.HTTPAddr), slog.String("store", cfg.StoreDriver))
	<-done

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop the server", sl.Err(err))
	}
	log.Info("server stopped")
}

func openStore(cfg *config.Config) (storage.Store, func(), error) {
	switch cfg.StoreDriver {
	case "postgres":
		s, err := postgres.New(cfg.PostgresConn)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	case "memory":
		return memory.New(), func() {}, nil
	default:
		s, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	}
}
