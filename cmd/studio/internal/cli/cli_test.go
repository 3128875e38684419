package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shineart/studiopos/cmd/studio/internal/cli"
)

const billFile = `{
  "bill": {
    "number": "0042",
    "subtotal": "1500.00",
    "discount": "0",
    "total": "1500.00",
    "cashGiven": "2000.00",
    "createdByName": "Nadeesha",
    "createdAt": "2026-10-16T09:15:00+05:30"
  },
  "items": [
    {"name": "Frame 8x10", "type": "Frame", "quantity": 3, "unitPrice": "500.00", "total": "1500.00"}
  ],
  "customer": {"fullName": "Amal Perera", "mobileNumber": "0771234567"}
}`

type env struct {
	bills string
	file  string
}

func setup(t *testing.T, content string) env {
	t.Helper()

	root := t.TempDir()
	e := env{
		bills: filepath.Join(root, "bills"),
		file:  filepath.Join(root, "bill.json"),
	}

	t.Setenv("OUTPUT_BILLS_DIR", e.bills)
	t.Setenv("STUDIO_PROFILE", filepath.Join(root, "missing.yaml"))
	t.Setenv("LOG_OUTPUT", filepath.Join(root, "studio.log"))
	t.Setenv("LOG_FORMAT", "json")

	require.NoError(t, os.WriteFile(e.file, []byte(content), 0o644))

	return e
}

func execute(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer

	cmd := cli.NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestBill_Preview(t *testing.T) {
	e := setup(t, billFile)

	out, _, err := execute("bill", "--from", e.file, "--preview")
	require.NoError(t, err)

	assert.Contains(t, out, "Bill No: 0042")
	assert.Contains(t, out, "Customer: Amal Perera")
	assert.Contains(t, out, "Frame 8x10")

	_, statErr := os.Stat(e.bills)
	assert.True(t, os.IsNotExist(statErr), "preview writes nothing")
}

func TestBill_FromFile(t *testing.T) {
	e := setup(t, billFile)

	out, _, err := execute("bill", "--from", e.file)
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	assert.Equal(t, filepath.Join(e.bills, "BILL_0042.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestCommand_Errors(t *testing.T) {
	type testCase struct {
		name    string
		content string
		args    func(e env) []string
	}

	tests := []testCase{
		{
			name:    "MissingKey",
			content: billFile,
			args:    func(env) []string { return []string{"bill"} },
		},
		{
			name:    "KeyAndFile",
			content: billFile,
			args:    func(e env) []string { return []string{"bill", "0042", "--from", e.file} },
		},
		{
			name:    "UnknownField",
			content: `{"bill": {"number": "1"}, "tip": "5"}`,
			args:    func(e env) []string { return []string{"bill", "--from", e.file} },
		},
		{
			name:    "InconsistentTotals",
			content: strings.Replace(billFile, `"total": "1500.00",`, `"total": "1400.00",`, 1),
			args:    func(e env) []string { return []string{"bill", "--from", e.file, "--preview"} },
		},
		{
			name:    "BadReportDate",
			content: billFile,
			args:    func(e env) []string { return []string{"report", "--from", e.file, "--date", "16/10/2026"} },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := setup(t, tc.content)

			_, _, err := execute(tc.args(e)...)
			assert.Error(t, err)
		})
	}
}

func TestReport_PreviewFromFile(t *testing.T) {
	e := setup(t, `{
  "member": {"id": "6f1c2d3e-0000-4000-8000-000000000001", "fullName": "Sunil Silva", "username": "sunil"},
  "date": "2026-10-15T00:00:00+05:30"
}`)

	out, _, err := execute("report", "--from", e.file, "--preview")
	require.NoError(t, err)

	assert.Contains(t, out, "Report Generated:")
	assert.Contains(t, out, "Sunil Silva")
}
