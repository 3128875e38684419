package view

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/shineart/studiopos/internal/auth"
)

// LoggedInMsg is sent once the session holds an authenticated user.
type LoggedInMsg struct {
	User *auth.User
}

type loginResultMsg struct {
	user *auth.User
	err  error
}

type LoginModel struct {
	session *auth.Session
	form    *huh.Form
	busy    bool
	err     error
}

func NewLoginModel(session *auth.Session) LoginModel {
	return LoginModel{
		session: session,
		form:    buildLoginForm(),
	}
}

func buildLoginForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("username").
				Title("Username").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("username is required")
					}

					return nil
				}),
			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword),
		),
	).WithWidth(40).WithShowHelp(false)
}

func (m LoginModel) Title() string { return "Sign in" }

func (m LoginModel) ShortHelp() string {
	if m.busy {
		return "Signing in..."
	}

	return "Enter: next | Ctrl+C: quit"
}

func (m LoginModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if res, ok := msg.(loginResultMsg); ok {
		m.busy = false

		if res.err != nil {
			m.err = res.err
			m.form = buildLoginForm()

			return m, m.form.Init()
		}

		user := res.user

		return m, func() tea.Msg { return LoggedInMsg{User: user} }
	}

	if m.busy {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.busy = true
	m.err = nil

	return m, m.loginCmd(m.form.GetString("username"), m.form.GetString("password"))
}

func (m LoginModel) loginCmd(username, password string) tea.Cmd {
	session := m.session

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		user, err := session.Authenticate(ctx, username, password)

		return loginResultMsg{user: user, err: err}
	}
}

func (m LoginModel) View() string {
	s := m.form.View()

	switch {
	case errors.Is(m.err, auth.ErrInvalidCredentials):
		s += "\n" + errStyle.Render("Invalid username or password.")
	case m.err != nil:
		s += "\n" + errStyle.Render("Sign in failed: "+m.err.Error())
	}

	return s
}
