package dispatch_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shineart/studiopos/internal/dispatch"
)

func TestNetworkPrinter_Print(t *testing.T) {
	type testCase struct {
		name    string
		status  int
		body    any
		wantErr string
	}

	tests := []testCase{
		{
			name:   "accepted",
			status: http.StatusOK,
			body:   map[string]any{"success": true, "message": "queued"},
		},
		{
			name:    "printer reports failure",
			status:  http.StatusOK,
			body:    map[string]any{"success": false, "message": "paper out"},
			wantErr: "print failed: paper out",
		},
		{
			name:    "server error without json",
			status:  http.StatusBadGateway,
			body:    "upstream down",
			wantErr: "502 Bad Gateway",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeDoc(t)

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/print", r.URL.Path)
				assert.Equal(t, "application/pdf", r.Header.Get("Content-Type"))
				assert.Equal(t, "BILL_0001.pdf", r.Header.Get("X-Filename"))

				data, err := io.ReadAll(r.Body)
				assert.NoError(t, err)
				assert.Equal(t, "%PDF-1.3", string(data))

				w.WriteHeader(tc.status)
				if s, ok := tc.body.(string); ok {
					_, _ = w.Write([]byte(s))
					return
				}

				_ = json.NewEncoder(w).Encode(tc.body)
			}))
			defer srv.Close()

			err := dispatch.NewNetworkPrinter(srv.URL+"/", time.Second).Print(context.Background(), path)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestNetworkPrinter_Open(t *testing.T) {
	err := dispatch.NewNetworkPrinter("http://printer.local", time.Second).Open(context.Background(), "/tmp/a.pdf")
	assert.ErrorIs(t, err, dispatch.ErrUnsupported)
}

func TestSplit(t *testing.T) {
	ctrl := gomock.NewController(t)
	viewer := dispatch.NewMockOpener(ctrl)
	printer := dispatch.NewMockOpener(ctrl)

	viewer.EXPECT().Open(gomock.Any(), "/tmp/a.pdf").Return(nil)
	printer.EXPECT().Print(gomock.Any(), "/tmp/a.pdf").Return(errors.New("jammed"))

	s := dispatch.Split{Viewer: viewer, Printer: printer}
	assert.NoError(t, s.Open(context.Background(), "/tmp/a.pdf"))
	assert.EqualError(t, s.Print(context.Background(), "/tmp/a.pdf"), "jammed")

	assert.ErrorIs(t, dispatch.Split{}.Open(context.Background(), "/tmp/a.pdf"), dispatch.ErrUnsupported)
	assert.ErrorIs(t, dispatch.Split{}.Print(context.Background(), "/tmp/a.pdf"), dispatch.ErrUnsupported)
}
