// Package cli implements the studio command: generate bills, invoices,
// booking receipts and staff reports from the shell.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/shineart/studiopos/internal/app"
	"github.com/shineart/studiopos/internal/document"
)

var version = "dev"

type options struct {
	from    string
	open    bool
	print   bool
	preview bool
}

// NewRootCommand builds the command tree. Each call returns an independent
// tree, so tests may execute several.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "studio",
		Short: "Generate studio documents as PDF",
		Long: `studio renders bills, invoices, booking receipts and staff daily
reports from the studio database, or from a JSON file with --from.

Documents are written to the output folders configured with the
OUTPUT_*_DIR variables and may be handed to the default viewer or
printer afterwards.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.from, "from", "", "read the record from a JSON file instead of the database")
	root.PersistentFlags().BoolVar(&opts.open, "open", false, "open the document after writing it")
	root.PersistentFlags().BoolVar(&opts.print, "print", false, "send the document to the printer after writing it")
	root.PersistentFlags().BoolVar(&opts.preview, "preview", false, "print the document as text instead of writing a PDF")

	root.AddCommand(
		newBillCommand(opts),
		newInvoiceCommand(opts),
		newBookingCommand(opts),
		newReportCommand(opts),
	)

	return root
}

// loader produces the document a subcommand names, either by key from the
// database or from the --from file.
type loader struct {
	byKey  func(ctx context.Context, a *app.App) (*document.Document, error)
	byFile func(a *app.App, path string) (*document.Document, error)
}

func run(cmd *cobra.Command, opts *options, l loader) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := app.Bootstrap(ctx, app.Options{Offline: opts.from != ""})
	if err != nil {
		return report(cmd, err)
	}
	defer a.Close()

	var doc *document.Document
	if opts.from != "" {
		doc, err = l.byFile(a, opts.from)
	} else {
		doc, err = l.byKey(ctx, a)
	}

	if err != nil {
		return report(cmd, err)
	}

	out := cmd.OutOrStdout()

	if opts.preview {
		fmt.Fprintln(out, doc.String())
		return nil
	}

	path, err := a.Generator.Save(doc)
	if err != nil {
		return report(cmd, err)
	}

	fmt.Fprintln(out, path)

	var failed bool

	if opts.open && !a.Dispatcher.Open(ctx, path) {
		failed = true
	}

	if opts.print && !a.Dispatcher.Print(ctx, path) {
		failed = true
	}

	if failed {
		return report(cmd, errors.New("document was written but could not be handed off"))
	}

	return nil
}

func report(cmd *cobra.Command, err error) error {
	log.Error().Err(err).Str("command", cmd.Name()).Msg("command failed")
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)

	return err
}
