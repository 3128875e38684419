package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/shineart/studiopos/cmd/tui/internal/view"
	"github.com/shineart/studiopos/internal/app"
	"github.com/shineart/studiopos/internal/auth"
	"github.com/shineart/studiopos/internal/document"
)

type model struct {
	app     *app.App
	session *auth.Session

	currentView View
	user        *auth.User

	loginView    view.LoginModel
	generateView view.GenerateModel
	historyView  view.HistoryModel
}

type View int

const (
	ViewLogin    View = 0
	ViewMenu     View = 1
	ViewGenerate View = 2
	ViewHistory  View = 3
)

var menuKinds = map[string]document.Kind{
	"1": document.KindBill,
	"2": document.KindInvoice,
	"3": document.KindBooking,
	"4": document.KindStaffReport,
}

func initialModel(a *app.App) model {
	session := auth.NewSession(a.Users)

	return model{
		app:         a,
		session:     session,
		currentView: ViewLogin,
		loginView:   view.NewLoginModel(session),
	}
}

func (m model) Init() tea.Cmd {
	return m.loginView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch key := msg.String(); key {
			case "q":
				return m, tea.Quit
			case "1", "2", "3", "4":
				m.currentView = ViewGenerate
				m.generateView = view.NewGenerateModel(m.app.Generator, m.app.Dispatcher, menuKinds[key], m.user)

				return m, m.generateView.Init()
			case "5":
				m.currentView = ViewHistory
				m.historyView = view.NewHistoryModel(m.app.Dirs, m.app.Dispatcher)

				return m, m.historyView.Init()
			case "l":
				m.session.Logout()
				m.user = nil
				m.currentView = ViewLogin
				m.loginView = view.NewLoginModel(m.session)

				return m, m.loginView.Init()
			}
		}
	case view.LoggedInMsg:
		m.user = msg.User
		m.currentView = ViewMenu
		log.Info().Str("user", msg.User.Username).Msg("signed in")

		return m, nil
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewLogin:
		var newModel tea.Model
		newModel, cmd = m.loginView.Update(msg)
		m.loginView = newModel.(view.LoginModel)
	case ViewGenerate:
		var newModel tea.Model
		newModel, cmd = m.generateView.Update(msg)
		m.generateView = newModel.(view.GenerateModel)
	case ViewHistory:
		var newModel tea.Model
		newModel, cmd = m.historyView.Update(msg)
		m.historyView = newModel.(view.HistoryModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewLogin:
		return view.Frame(m.loginView)
	case ViewMenu:
		return m.menu()
	case ViewGenerate:
		return view.Frame(m.generateView)
	case ViewHistory:
		return view.Frame(m.historyView)
	}

	return "Unknown View"
}

func (m model) menu() string {
	report := "4. Staff Daily Report (mine)\n"
	if m.user != nil && m.user.IsAdmin() {
		report = "4. Staff Daily Report\n"
	}

	name := ""
	if m.user != nil {
		name = m.user.FullName
	}

	return lipgloss.NewStyle().Padding(2).Render(
		lipgloss.NewStyle().Bold(true).Render(m.app.Profile.Name) + "\n" +
			"Signed in as " + name + "\n\n" +
			"1. Print Bill\n" +
			"2. Print Invoice\n" +
			"3. Print Booking Receipt\n" +
			report +
			"5. Recent Documents\n\n" +
			"l. Sign out\n" +
			"q. Quit",
	)
}

func main() {
	a, err := app.Bootstrap(context.Background(), app.Options{})
	if err != nil {
		log.Error().Err(err).Msg("failed to start")
		os.Exit(1)
	}

	p := tea.NewProgram(initialModel(a))
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("failed to run TUI")
		a.Close()
		os.Exit(1)
	}

	a.Close()
}
