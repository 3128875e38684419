package view_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shineart/studiopos/cmd/tui/internal/view"
	"github.com/shineart/studiopos/internal/document"
	"github.com/shineart/studiopos/internal/generator"
	"github.com/shineart/studiopos/internal/timeutil"
)

func TestParseDay(t *testing.T) {
	now := time.Date(2026, 10, 16, 14, 30, 0, 0, timeutil.Location)
	today := time.Date(2026, 10, 16, 0, 0, 0, 0, timeutil.Location)

	type testCase struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}

	tests := []testCase{
		{name: "Empty", input: "", want: today},
		{name: "Today", input: " Today ", want: today},
		{name: "Yesterday", input: "yesterday", want: today.AddDate(0, 0, -1)},
		{name: "Date", input: "2026-01-31", want: time.Date(2026, 1, 31, 0, 0, 0, 0, timeutil.Location)},
		{name: "WrongLayout", input: "31/01/2026", wantErr: true},
		{name: "Word", input: "tomorrow", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := view.ParseDay(tc.input, now)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "got %s", got)
		})
	}
}

func TestListSaved(t *testing.T) {
	root := t.TempDir()
	dirs := generator.Dirs{
		Bills:    filepath.Join(root, "bills"),
		Invoices: filepath.Join(root, "invoices"),
		Bookings: filepath.Join(root, "bookings"),
		Reports:  filepath.Join(root, "missing"),
	}

	base := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	write := func(dir, name string, age time.Duration) string {
		require.NoError(t, os.MkdirAll(dir, 0o755))

		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o644))
		require.NoError(t, os.Chtimes(path, base.Add(-age), base.Add(-age)))

		return path
	}

	oldBill := write(dirs.Bills, "BILL_0001.pdf", 2*time.Hour)
	invoice := write(dirs.Invoices, "INV-0007.pdf", time.Minute)
	newBill := write(dirs.Bills, "BILL_0002.PDF", time.Hour)
	write(dirs.Bills, "notes.txt", 0)
	require.NoError(t, os.MkdirAll(filepath.Join(dirs.Bookings, "archive.pdf"), 0o755))

	got, err := view.ListSaved(dirs)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, invoice, got[0].Path)
	assert.Equal(t, document.KindInvoice, got[0].Kind)
	assert.Equal(t, newBill, got[1].Path)
	assert.Equal(t, oldBill, got[2].Path)
	assert.Equal(t, document.KindBill, got[2].Kind)
}

func TestListSaved_SharedFolder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "BILL_0001.pdf"), []byte("%PDF"), 0o644))

	got, err := view.ListSaved(generator.Dirs{Bills: dir, Invoices: dir, Bookings: dir, Reports: dir})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestListSaved_Unreadable(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bills")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := view.ListSaved(generator.Dirs{Bills: file})
	assert.Error(t, err)
	assert.False(t, errors.Is(err, os.ErrNotExist))
}
