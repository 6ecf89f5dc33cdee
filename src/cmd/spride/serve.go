package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spride/spride-web/src/internal/api"
	"github.com/spride/spride-web/src/internal/auth"
	"github.com/spride/spride-web/src/internal/backend"
	"github.com/spride/spride-web/src/internal/config"
	"github.com/spride/spride-web/src/internal/metrics"
	"github.com/spride/spride-web/src/internal/nav"
	"github.com/spride/spride-web/src/internal/schedule"
	"github.com/spride/spride-web/src/internal/service"
	"github.com/spride/spride-web/src/internal/session"
	"github.com/spride/spride-web/src/internal/store"
	"go.uber.org/zap"
)

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}

func serve(cfg *config.Config) error {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	if err := store.Migrate(cfg.PrefsDSN, logger); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}
	sugar.Info("migrations applied")

	db, dialect, err := store.Open(cfg.PrefsDSN, 15, 2*time.Second, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to db: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			sugar.Errorf("failed to close db: %v", err)
		}
	}()

	m := metrics.New()
	client, err := backend.NewClient(cfg.ServerURL, cfg.RequestTimeout, logger.Named("backend"), m)
	if err != nil {
		return err
	}

	sess := session.NewStore(logger.Named("session"))
	probeCtx, cancelProbe := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	sess.Probe(probeCtx, client)
	cancelProbe()

	clock := schedule.SystemClock(cfg.Location())
	trips := schedule.Timetable()
	view := schedule.NewView(trips, clock, logger.Named("schedule"))
	notices := schedule.NewCarousel(schedule.DefaultNotices, cfg.NoticeInterval, clock)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := view.Start(ctx); err != nil {
		return err
	}
	defer view.Stop()
	notices.Start(ctx)
	defer notices.Stop()

	svc := service.NewService(service.Deps{
		Session:  sess,
		Schedule: view,
		Notices:  notices,
		Nav:      nav.NewStack("/"),
		Auth:     auth.NewFlow(cfg.KakaoClientID, cfg.ClientURL, client, sess, logger.Named("auth")),
		Backend:  client,
		Prefs:    store.NewRepositories(db, dialect, logger.Named("store")),
		Trips:    trips,
	}, logger)

	h, err := api.NewHandler(svc, m, cfg.RequestTimeout, logger.Named("api"))
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(api.RequestIDMiddleware, api.LoggerMiddleware(logger), api.Recoverer(logger))
	api.RegisterRoutes(r, h)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		sugar.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	select {
	case <-quit:
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}
	sugar.Infof("shutting down server")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	sugar.Info("server stopped")
	return nil
}
