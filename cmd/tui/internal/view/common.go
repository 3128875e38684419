package view

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shineart/studiopos/internal/dispatch"
)

const dbTimeout = 10 * time.Second

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

// dispatchedMsg reports the outcome of an open or print request.
type dispatchedMsg struct {
	action string
	path   string
	ok     bool
}

func dispatchCmd(d *dispatch.Dispatcher, action, path string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		ok := false
		if action == dispatch.ActionPrint {
			ok = d.Print(ctx, path)
		} else {
			ok = d.Open(ctx, path)
		}

		return dispatchedMsg{action: action, path: path, ok: ok}
	}
}

func (m dispatchedMsg) status() string {
	verb := "Opened"
	if m.action == dispatch.ActionPrint {
		verb = "Sent to printer:"
	}

	if !m.ok {
		return errStyle.Render("Could not " + m.action + " " + m.path)
	}

	return okStyle.Render(verb + " " + m.path)
}
