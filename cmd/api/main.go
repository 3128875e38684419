package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/shineart/studiopos/internal/app"
	"github.com/shineart/studiopos/internal/auth"
	studioHttp "github.com/shineart/studiopos/internal/http"
	authHandler "github.com/shineart/studiopos/internal/http/auth"
	documentHandler "github.com/shineart/studiopos/internal/http/document"
	"github.com/shineart/studiopos/internal/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Error().Err(err).Msg("server failed")
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	a, err := app.Bootstrap(ctx, app.Options{Registry: prometheus.NewRegistry()})
	if err != nil {
		return err
	}
	defer a.Close()

	if a.Config.JWT.Secret == "" {
		return errors.New("JWT_SECRET must be set")
	}

	tokens := auth.NewTokens(a.Config.JWT.Secret, a.Config.JWT.TTL)

	var (
		authH     = authHandler.NewHandler(a.Users, tokens, logger.WithComponent("http.auth"))
		documentH = documentHandler.NewHandler(a.Generator, a.Dispatcher, a.Dirs, logger.WithComponent("http.documents"))
	)

	router := studioHttp.New(studioHttp.Options{
		Log:         logger.WithComponent("http"),
		Metrics:     a.Metrics,
		Tokens:      tokens,
		CORSOrigins: a.Config.Server.CORSOrigins,
	}, authH, documentH)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.Config.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       a.Config.Server.Timeout,
		WriteTimeout:      a.Config.Server.Timeout,
	}

	errCh := make(chan error, 1)

	go func() {
		log.Info().Str("addr", srv.Addr).Str("studio", a.Profile.Name).Msg("starting server")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
