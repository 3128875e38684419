// Package app wires configuration, storage and the document pipeline for
// the studiopos binaries.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/shineart/studiopos/internal/auth"
	authStore "github.com/shineart/studiopos/internal/auth/store"
	"github.com/shineart/studiopos/internal/billing"
	billingStore "github.com/shineart/studiopos/internal/billing/store"
	"github.com/shineart/studiopos/internal/booking"
	bookingStore "github.com/shineart/studiopos/internal/booking/store"
	"github.com/shineart/studiopos/internal/config"
	"github.com/shineart/studiopos/internal/database"
	"github.com/shineart/studiopos/internal/dispatch"
	"github.com/shineart/studiopos/internal/generator"
	"github.com/shineart/studiopos/internal/logger"
	"github.com/shineart/studiopos/internal/metrics"
	"github.com/shineart/studiopos/internal/render"
	"github.com/shineart/studiopos/internal/staff"
	staffStore "github.com/shineart/studiopos/internal/staff/store"
	"github.com/shineart/studiopos/internal/timeutil"
)

type Options struct {
	// Offline skips the database. Documents can then only be rendered from
	// records supplied by the caller.
	Offline bool

	// Registry receives the metrics collectors. Nil disables metrics.
	Registry *prometheus.Registry
}

type App struct {
	Config     *config.Config
	Profile    *config.Profile
	Log        zerolog.Logger
	Metrics    *metrics.Metrics
	DB         *sql.DB
	Users      auth.Repository
	Dirs       generator.Dirs
	Generator  *generator.Service
	Dispatcher *dispatch.Dispatcher

	closers []io.Closer
}

// Bootstrap loads .env and the environment, installs the global logger
// and builds the services. Close releases what it opened.
func Bootstrap(ctx context.Context, opts Options) (*App, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logCloser, err := logger.Setup(cfg.Logger())
	if err != nil {
		return nil, fmt.Errorf("setting up logger: %w", err)
	}

	a := &App{
		Config:  cfg,
		Log:     logger.WithComponent("app"),
		closers: []io.Closer{logCloser},
	}

	timeutil.SetZone(cfg.Studio.TimeZone)

	a.Profile, err = config.LoadProfile(cfg.Studio.Profile)
	if err != nil {
		a.Close()
		return nil, err
	}

	if opts.Registry != nil {
		a.Metrics = metrics.New(opts.Registry)
	}

	a.Dirs = generator.Dirs{
		Bills:    cfg.Output.Bills,
		Invoices: cfg.Output.Invoices,
		Bookings: cfg.Output.Bookings,
		Reports:  cfg.Output.Reports,
	}

	genOpts := []generator.Option{
		generator.WithDirs(a.Dirs),
		generator.WithLetterhead(a.Profile.Letterhead()),
	}

	if !opts.Offline {
		a.DB, err = database.Open(ctx, cfg.ConnectionString(), database.DefaultPool())
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("connecting to database: %w", err)
		}

		a.closers = append(a.closers, a.DB)
		a.Users = authStore.New(a.DB)

		genOpts = append(genOpts, generator.WithSources(
			billing.NewService(billingStore.New(a.DB)),
			booking.NewService(bookingStore.New(a.DB)),
			staff.NewService(staffStore.New(a.DB)),
		))
	}

	a.Generator = generator.NewService(
		render.New(logger.WithComponent("render"), a.Metrics),
		logger.WithComponent("generator"),
		genOpts...,
	)

	a.Dispatcher = dispatch.New(Opener(cfg), logger.WithComponent("dispatch"), a.Metrics)

	a.Log.Debug().
		Str("profile", cfg.Studio.Profile).
		Str("zone", timeutil.Location.String()).
		Bool("offline", opts.Offline).
		Msg("application ready")

	return a, nil
}

// Opener hands files to the desktop, sending print jobs to the print
// server when PRINTER_URL is set.
func Opener(cfg *config.Config) dispatch.Opener {
	system := dispatch.NewSystemOpener()

	if cfg.Printer.URL == "" {
		return system
	}

	return dispatch.Split{
		Viewer:  system,
		Printer: dispatch.NewNetworkPrinter(cfg.Printer.URL, cfg.Printer.Timeout),
	}
}

func (a *App) Close() error {
	var errs []error

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}

	a.closers = nil

	return errors.Join(errs...)
}
