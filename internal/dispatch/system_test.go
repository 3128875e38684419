package dispatch_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shineart/studiopos/internal/dispatch"
)

type call struct {
	name string
	args []string
}

func recorder(out []byte, err error) (dispatch.Runner, *[]call) {
	var calls []call

	return func(_ context.Context, name string, args ...string) ([]byte, error) {
		calls = append(calls, call{name: name, args: args})
		return out, err
	}, &calls
}

func TestCommandOpener(t *testing.T) {
	type testCase struct {
		name  string
		goos  string
		print bool
		path  string
		want  call
	}

	tests := []testCase{
		{
			name: "linux open",
			goos: "linux",
			path: "/srv/bills/BILL_1.pdf",
			want: call{name: "xdg-open", args: []string{"/srv/bills/BILL_1.pdf"}},
		},
		{
			name:  "linux print",
			goos:  "linux",
			print: true,
			path:  "/srv/bills/BILL_1.pdf",
			want:  call{name: "lp", args: []string{"/srv/bills/BILL_1.pdf"}},
		},
		{
			name: "macOS open",
			goos: "darwin",
			path: "/Users/studio/INV-1.pdf",
			want: call{name: "open", args: []string{"/Users/studio/INV-1.pdf"}},
		},
		{
			name: "windows open",
			goos: "windows",
			path: `C:\studio\bills\BILL_1.pdf`,
			want: call{name: "cmd", args: []string{"/c", "start", "", `C:\studio\bills\BILL_1.pdf`}},
		},
		{
			name:  "windows print quotes the path",
			goos:  "windows",
			print: true,
			path:  `C:\Nimal's Studio\BILL_1.pdf`,
			want: call{name: "powershell", args: []string{
				"-NoProfile", "-NonInteractive", "-Command",
				`Start-Process -FilePath 'C:\Nimal''s Studio\BILL_1.pdf' -Verb Print`,
			}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			run, calls := recorder(nil, nil)
			o := dispatch.NewCommandOpener(tc.goos, run)

			var err error
			if tc.print {
				err = o.Print(context.Background(), tc.path)
			} else {
				err = o.Open(context.Background(), tc.path)
			}

			require.NoError(t, err)
			require.Len(t, *calls, 1)
			assert.Equal(t, tc.want, (*calls)[0])
		})
	}
}

func TestCommandOpener_UnknownPlatform(t *testing.T) {
	run, calls := recorder(nil, nil)
	o := dispatch.NewCommandOpener("plan9", run)

	assert.ErrorIs(t, o.Open(context.Background(), "/tmp/a.pdf"), dispatch.ErrUnsupported)
	assert.ErrorIs(t, o.Print(context.Background(), "/tmp/a.pdf"), dispatch.ErrUnsupported)
	assert.Empty(t, *calls)
}

func TestCommandOpener_CommandFails(t *testing.T) {
	cause := errors.New("exit status 1")
	run, _ := recorder([]byte("lp: Error - no default destination available.\n"), cause)

	err := dispatch.NewCommandOpener("linux", run).Print(context.Background(), "/tmp/a.pdf")

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "no default destination")
}
