package view

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/shineart/studiopos/internal/auth"
	"github.com/shineart/studiopos/internal/billing"
	"github.com/shineart/studiopos/internal/booking"
	"github.com/shineart/studiopos/internal/dispatch"
	"github.com/shineart/studiopos/internal/document"
	"github.com/shineart/studiopos/internal/generator"
	"github.com/shineart/studiopos/internal/staff"
	"github.com/shineart/studiopos/internal/timeutil"
)

const generateTimeout = 30 * time.Second

type generateState int

const (
	generateStateForm generateState = iota
	generateStateWorking
	generateStateResult
)

// GenerateModel asks for the record key of one document kind, writes the
// PDF and offers to open or print it.
type GenerateModel struct {
	gen        *generator.Service
	dispatcher *dispatch.Dispatcher
	kind       document.Kind
	user       *auth.User

	state   generateState
	form    *huh.Form
	spinner spinner.Model

	path   string
	status string
	err    error
}

func NewGenerateModel(gen *generator.Service, d *dispatch.Dispatcher, kind document.Kind, user *auth.User) GenerateModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := GenerateModel{
		gen:        gen,
		dispatcher: d,
		kind:       kind,
		user:       user,
		spinner:    s,
	}
	m.form = m.buildForm()

	return m
}

func (m GenerateModel) Title() string {
	switch m.kind {
	case document.KindBill:
		return "Print Bill"
	case document.KindInvoice:
		return "Print Invoice"
	case document.KindBooking:
		return "Print Booking Receipt"
	default:
		return "Staff Daily Report"
	}
}

func (m GenerateModel) ShortHelp() string {
	switch m.state {
	case generateStateWorking:
		return "Generating..."
	case generateStateResult:
		if m.err != nil {
			return "Enter: try again | Esc: back"
		}

		return "o: open | p: print | Enter: another | Esc: back"
	}

	return "Enter: confirm | Esc: back"
}

func (m GenerateModel) Init() tea.Cmd {
	return m.form.Init()
}

func notBlank(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", what)
		}

		return nil
	}
}

func isUUID(s string) error {
	if _, err := uuid.Parse(strings.TrimSpace(s)); err != nil {
		return errors.New("not a valid id")
	}

	return nil
}

func (m GenerateModel) buildForm() *huh.Form {
	var fields []huh.Field

	switch m.kind {
	case document.KindBill:
		fields = append(fields, huh.NewInput().Key("key").Title("Bill number").Validate(notBlank("bill number")))
	case document.KindInvoice:
		fields = append(fields, huh.NewInput().Key("key").Title("Invoice number").Validate(notBlank("invoice number")))
	case document.KindBooking:
		fields = append(fields, huh.NewInput().Key("key").Title("Booking ID").Validate(isUUID))
	default:
		if m.user != nil && m.user.IsAdmin() {
			fields = append(fields, huh.NewInput().
				Key("key").
				Title("Staff member ID").
				Description("Leave empty for your own report").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}

					return isUUID(s)
				}))
		}

		fields = append(fields, huh.NewInput().
			Key("day").
			Title("Day").
			Placeholder("today").
			Description("YYYY-MM-DD, today or yesterday").
			Validate(func(s string) error {
				_, err := ParseDay(s, timeutil.Now())
				return err
			}))
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithWidth(50).WithShowHelp(false)
}

type generatedMsg struct {
	path string
	err  error
}

func (m GenerateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		m.state = generateStateResult
		m.path = msg.path
		m.err = msg.err
		m.status = ""

		return m, nil
	case dispatchedMsg:
		m.status = msg.status()
		return m, nil
	}

	switch m.state {
	case generateStateForm:
		return m.updateForm(msg)
	case generateStateWorking:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	case generateStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m GenerateModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = generateStateWorking

	return m, tea.Batch(m.spinner.Tick, m.generateCmd(m.form.GetString("key"), m.form.GetString("day")))
}

func (m GenerateModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "enter":
		m.state = generateStateForm
		m.form = m.buildForm()
		m.path, m.err, m.status = "", nil, ""

		return m, m.form.Init()
	case "o":
		if m.path != "" {
			return m, dispatchCmd(m.dispatcher, dispatch.ActionOpen, m.path)
		}
	case "p":
		if m.path != "" {
			return m, dispatchCmd(m.dispatcher, dispatch.ActionPrint, m.path)
		}
	}

	return m, nil
}

func (m GenerateModel) generateCmd(key, day string) tea.Cmd {
	key = strings.TrimSpace(key)
	gen, kind, user := m.gen, m.kind, m.user

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()

		path, err := generate(ctx, gen, kind, user, key, day)

		return generatedMsg{path: path, err: err}
	}
}

func generate(ctx context.Context, gen *generator.Service, kind document.Kind, user *auth.User, key, day string) (string, error) {
	switch kind {
	case document.KindBill:
		return gen.Bill(ctx, key)
	case document.KindInvoice:
		return gen.Invoice(ctx, key)
	case document.KindBooking:
		id, err := uuid.Parse(key)
		if err != nil {
			return "", err
		}

		return gen.Booking(ctx, id)
	}

	if user == nil {
		return "", errors.New("not signed in")
	}

	id := user.ID

	if key != "" && user.IsAdmin() {
		var err error

		id, err = uuid.Parse(key)
		if err != nil {
			return "", err
		}
	}

	d, err := ParseDay(day, timeutil.Now())
	if err != nil {
		return "", err
	}

	return gen.StaffReport(ctx, id, d)
}

func (m GenerateModel) View() string {
	switch m.state {
	case generateStateForm:
		return m.form.View()
	case generateStateWorking:
		return fmt.Sprintf("%s Generating %s...", m.spinner.View(), strings.ToLower(m.Title()))
	case generateStateResult:
		return m.viewResult()
	}

	return ""
}

func (m GenerateModel) viewResult() string {
	if m.err != nil {
		return errStyle.Render(describe(m.err))
	}

	lines := []string{okStyle.Render("Saved " + m.path)}
	if m.status != "" {
		lines = append(lines, "", m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// describe turns generation errors into messages for the counter staff.
func describe(err error) string {
	var fieldErr *document.FieldError

	switch {
	case errors.Is(err, billing.ErrNotFound), errors.Is(err, booking.ErrNotFound), errors.Is(err, staff.ErrNotFound):
		return "No record found for that key."
	case errors.As(err, &fieldErr):
		return fmt.Sprintf("The record is incomplete: %s is missing.", fieldErr.Field)
	case errors.Is(err, document.ErrInconsistentTotals):
		return "The record's totals do not add up: " + err.Error()
	}

	return "Error: " + err.Error()
}
