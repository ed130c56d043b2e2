package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/NitinV84/couch-matcher/internal/catalog"
	"github.com/NitinV84/couch-matcher/internal/domain"
	"github.com/NitinV84/couch-matcher/internal/monitoring"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:generate moq -out catalog_moq_test.go . sofaCatalog
type sofaCatalog interface {
	Create(ctx context.Context, input catalog.NewSofa, imagePath string) (domain.Sofa, error)
	List(ctx context.Context, budget *float64) ([]domain.Sofa, error)
	Search(ctx context.Context, budget *float64, imagePath string) ([]domain.Match, error)
	Delete(ctx context.Context, id int64) error
}

type webApp struct {
	config Config
	log    *slog.Logger

	catalog sofaCatalog
	tracker *monitoring.Tracker
}

func (app *webApp) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFound)
	r.MethodNotAllowed(app.methodNotAllowed)

	r.Get("/healthcheck", app.healthcheckHandler)
	r.Handle("/debug/vars", expvar.Handler())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/sofas", func(r chi.Router) {
		r.Get("/", app.listSofasHandler)
		r.Post("/", app.createSofaHandler)
		r.Delete("/{id}", app.deleteSofaHandler)

		// matching runs two model calls per request, the rate limit keeps a
		// single client from monopolizing them
		r.With(httprate.LimitByIP(30, time.Minute)).Post("/matching", app.matchingHandler)
	})

	return r
}

func (app *webApp) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", app.config.Port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	shutdownError := make(chan error)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(shutdownCtx)
	}()

	app.log.Info("starting server", slog.Int("port", app.config.Port))
	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server listen&serve err, %w", err)
	}

	err = <-shutdownError
	if err != nil {
		return fmt.Errorf("server shutdown err, %w", err)
	}

	app.log.Info("server stopped")

	return nil
}
