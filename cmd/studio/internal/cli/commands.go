package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shineart/studiopos/internal/app"
	"github.com/shineart/studiopos/internal/billing"
	"github.com/shineart/studiopos/internal/booking"
	"github.com/shineart/studiopos/internal/document"
	"github.com/shineart/studiopos/internal/encoding"
	"github.com/shineart/studiopos/internal/staff"
	"github.com/shineart/studiopos/internal/timeutil"
)

// keyArgs accepts exactly one key, or none when --from is set.
func keyArgs(opts *options) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if opts.from != "" {
			return cobra.NoArgs(cmd, args)
		}

		return cobra.ExactArgs(1)(cmd, args)
	}
}

func newBillCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "bill <number>",
		Short:   "Generate a bill receipt",
		Example: "  studio bill 0001 --print\n  studio bill --from bill.json --preview",
		Args:    keyArgs(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, loader{
				byKey: func(ctx context.Context, a *app.App) (*document.Document, error) {
					return a.Generator.BillDocument(ctx, args[0])
				},
				byFile: func(a *app.App, path string) (*document.Document, error) {
					var d billing.BillDetails
					if err := encoding.DecodeFile(path, &d); err != nil {
						return nil, err
					}

					return document.BuildBill(d, a.Profile.Letterhead())
				},
			})
		},
	}
}

func newInvoiceCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "invoice <number>",
		Short:   "Generate an A4 invoice",
		Example: "  studio invoice INV-0007 --open",
		Args:    keyArgs(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, loader{
				byKey: func(ctx context.Context, a *app.App) (*document.Document, error) {
					return a.Generator.InvoiceDocument(ctx, args[0])
				},
				byFile: func(a *app.App, path string) (*document.Document, error) {
					var d billing.InvoiceDetails
					if err := encoding.DecodeFile(path, &d); err != nil {
						return nil, err
					}

					return document.BuildInvoice(d, a.Profile.Letterhead())
				},
			})
		},
	}
}

func newBookingCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "booking <id>",
		Short: "Generate a booking receipt",
		Args:  keyArgs(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, loader{
				byKey: func(ctx context.Context, a *app.App) (*document.Document, error) {
					id, err := uuid.Parse(args[0])
					if err != nil {
						return nil, fmt.Errorf("invalid booking id %q: %w", args[0], err)
					}

					return a.Generator.BookingDocument(ctx, id)
				},
				byFile: func(a *app.App, path string) (*document.Document, error) {
					var b booking.Booking
					if err := encoding.DecodeFile(path, &b); err != nil {
						return nil, err
					}

					return document.BuildBooking(b, a.Profile.Letterhead())
				},
			})
		},
	}
}

func newReportCommand(opts *options) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:     "report <staff-id>",
		Short:   "Generate a staff member's daily work report",
		Example: "  studio report 6f1c2d3e-0000-4000-8000-000000000001 --date 2026-10-15",
		Args:    keyArgs(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := timeutil.Now()

			if date != "" {
				var err error

				day, err = timeutil.ParseDate(date)
				if err != nil {
					return report(cmd, errors.New("--date must be YYYY-MM-DD"))
				}
			}

			return run(cmd, opts, loader{
				byKey: func(ctx context.Context, a *app.App) (*document.Document, error) {
					id, err := uuid.Parse(args[0])
					if err != nil {
						return nil, fmt.Errorf("invalid staff id %q: %w", args[0], err)
					}

					return a.Generator.StaffReportDocument(ctx, id, day)
				},
				byFile: func(a *app.App, path string) (*document.Document, error) {
					var w staff.WorkSummary
					if err := encoding.DecodeFile(path, &w); err != nil {
						return nil, err
					}

					return a.Generator.SummaryDocument(w)
				},
			})
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "report day as YYYY-MM-DD (default today)")

	return cmd
}
