package view

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shineart/studiopos/internal/dispatch"
	"github.com/shineart/studiopos/internal/document"
	"github.com/shineart/studiopos/internal/generator"
)

// Saved is a PDF found in one of the output folders.
type Saved struct {
	Kind     document.Kind
	Path     string
	Modified time.Time
}

// ListSaved returns the PDFs in every output folder, newest first.
// Folders that do not exist yet are skipped.
func ListSaved(dirs generator.Dirs) ([]Saved, error) {
	var out []Saved

	kinds := []document.Kind{document.KindBill, document.KindInvoice, document.KindBooking, document.KindStaffReport}
	seen := map[string]bool{}

	for _, kind := range kinds {
		dir := dirs.For(kind)
		if seen[dir] {
			continue
		}

		seen[dir] = true

		entries, err := os.ReadDir(dir)
		if os.IsNotExist(err) {
			continue
		}

		if err != nil {
			return nil, err
		}

		for _, e := range entries {
			if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
				continue
			}

			info, err := e.Info()
			if err != nil {
				continue
			}

			out = append(out, Saved{Kind: kind, Path: filepath.Join(dir, e.Name()), Modified: info.ModTime()})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Modified.After(out[j].Modified)
	})

	return out, nil
}

type HistoryModel struct {
	dirs       generator.Dirs
	dispatcher *dispatch.Dispatcher

	table   table.Model
	docs    []Saved
	loading bool
	err     error
	status  string
}

func NewHistoryModel(dirs generator.Dirs, d *dispatch.Dispatcher) HistoryModel {
	columns := []table.Column{
		{Title: "Kind", Width: 14},
		{Title: "File", Width: 44},
		{Title: "Saved", Width: 17},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return HistoryModel{
		dirs:       dirs,
		dispatcher: d,
		table:      t,
		loading:    true,
	}
}

func (m HistoryModel) Title() string { return "Recent Documents" }

func (m HistoryModel) ShortHelp() string {
	return "Enter/o: open | p: print | r: refresh | Esc: back"
}

func (m HistoryModel) Init() tea.Cmd {
	return m.loadCmd()
}

type loadSavedMsg struct {
	docs []Saved
	err  error
}

func (m HistoryModel) loadCmd() tea.Cmd {
	dirs := m.dirs

	return func() tea.Msg {
		docs, err := ListSaved(dirs)
		return loadSavedMsg{docs: docs, err: err}
	}
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadSavedMsg:
		m.loading = false
		m.err = msg.err
		m.docs = msg.docs
		m.refreshTable()

		return m, nil
	case dispatchedMsg:
		m.status = msg.status()
		return m, nil
	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "enter", "o":
			return m, m.dispatchSelected(dispatch.ActionOpen)
		case "p":
			return m, m.dispatchSelected(dispatch.ActionPrint)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m HistoryModel) dispatchSelected(action string) tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.docs) {
		return nil
	}

	return dispatchCmd(m.dispatcher, action, m.docs[idx].Path)
}

func (m *HistoryModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.docs))
	for _, d := range m.docs {
		rows = append(rows, table.Row{
			kindLabel(d.Kind),
			filepath.Base(d.Path),
			d.Modified.Format("2006-01-02 15:04"),
		})
	}

	m.table.SetRows(rows)
}

func kindLabel(k document.Kind) string {
	switch k {
	case document.KindBill:
		return "Bill"
	case document.KindInvoice:
		return "Invoice"
	case document.KindBooking:
		return "Booking"
	default:
		return "Staff report"
	}
}

func (m HistoryModel) View() string {
	if m.loading {
		return "Loading documents..."
	}

	if m.err != nil {
		return errStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	if len(m.docs) == 0 {
		return "No documents have been generated yet."
	}

	content := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	if m.status != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", m.status)
	}

	return content
}
