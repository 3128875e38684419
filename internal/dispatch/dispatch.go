// Package dispatch hands finished documents to a viewer or a printer.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/shineart/studiopos/internal/metrics"
)

// ErrUnsupported is returned by an Opener that cannot perform an action on
// this host.
var ErrUnsupported = errors.New("action not supported on this host")

const (
	ActionOpen  = "open"
	ActionPrint = "print"
)

//go:generate mockgen -source=dispatch.go -destination=opener_mock.go -package=dispatch
type Opener interface {
	Open(ctx context.Context, path string) error
	Print(ctx context.Context, path string) error
}

// Dispatcher reports hand-off failures as false plus a logged diagnostic.
// Neither method returns an error or lets a panic escape.
type Dispatcher struct {
	opener  Opener
	log     zerolog.Logger
	metrics *metrics.Metrics
}

func New(opener Opener, log zerolog.Logger, m *metrics.Metrics) *Dispatcher {
	return &Dispatcher{opener: opener, log: log, metrics: m}
}

// Open shows the document in the host's default viewer.
func (d *Dispatcher) Open(ctx context.Context, path string) bool {
	return d.do(ctx, ActionOpen, path, Opener.Open)
}

// Print sends the document to the default printer.
func (d *Dispatcher) Print(ctx context.Context, path string) bool {
	return d.do(ctx, ActionPrint, path, Opener.Print)
}

func (d *Dispatcher) do(ctx context.Context, action, path string, call func(Opener, context.Context, string) error) (ok bool) {
	log := d.log.With().Str("action", action).Str("path", path).Logger()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("document hand-off panicked")
			ok = false
		}

		d.metrics.ObserveDispatch(action, ok)
	}()

	if err := d.hand(ctx, path, call); err != nil {
		log.Warn().Err(err).Msg("could not hand document to the system")
		return false
	}

	log.Info().Msg("document handed to the system")

	return true
}

func (d *Dispatcher) hand(ctx context.Context, path string, call func(Opener, context.Context, string) error) error {
	if d.opener == nil {
		return ErrUnsupported
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("checking document: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("%s is a directory", abs)
	}

	return call(d.opener, ctx, abs)
}
