package server

import (
	"context"
	"github.com/go-chi/chi/v5"
	"github.com/nglmq/chi-checksum/internal/auth"
	"github.com/nglmq/chi-checksum/internal/config"
	"github.com/nglmq/chi-checksum/internal/http-server/handlers/checksum"
	"github.com/nglmq/chi-checksum/internal/metrics"
	"github.com/nglmq/chi-checksum/internal/middleware/logger"
	"github.com/nglmq/chi-checksum/internal/storage/memory"
	"github.com/nglmq/chi-checksum/internal/storage/postgres"
	"go.uber.org/zap"
	"net/http"
)

type Storage interface {
	checksum.BatchSaver
	checksum.BatchGetter
}

// Start builds the router from the parsed configuration together with the
// storage it needs. The returned func releases that storage.
func Start(ctx context.Context) (http.Handler, func() error, error) {
	if err := logger.Initialize(config.LogLevel); err != nil {
		return nil, nil, err
	}

	var store Storage = memory.New()
	closeStore := func() error { return nil }

	if config.DataBaseURL != "" {
		pg, err := postgres.New(ctx, config.DataBaseURL)
		if err != nil {
			logger.Log.Error("failed to init db", zap.Error(err))
			return nil, nil, err
		}
		store, closeStore = pg, pg.Close
	} else {
		logger.Log.Info("no database configured, batches are kept in memory")
	}

	opts := checksum.Options{
		MaxBatchSize: config.MaxBatchSize,
		MaxBodyBytes: config.MaxBodyBytes,
		Workers:      config.Workers,
	}

	return NewRouter(store, metrics.New(), opts, config.JWTSecret), closeStore, nil
}

func NewRouter(store Storage, m *metrics.Metrics, opts checksum.Options, jwtSecret string) http.Handler {
	r := chi.NewRouter()

	r.Use(logger.RequestLogger)
	r.Handle("/metrics", m.Handler())

	r.Route("/api/checksum", func(r chi.Router) {
		if jwtSecret != "" {
			r.Use(auth.Middleware(jwtSecret))
		}

		r.Post("/validate", checksum.ValidateHandle(store, m, opts))
		r.Post("/check", checksum.CheckHandle(m))
		r.Get("/batches/{id}", checksum.GetBatchHandle(store))
	})

	return r
}
