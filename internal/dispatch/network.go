package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// NetworkPrinter submits documents to a print server on the studio network.
type NetworkPrinter struct {
	client  *http.Client
	baseURL string
}

type printResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewNetworkPrinter(baseURL string, timeout time.Duration) *NetworkPrinter {
	return &NetworkPrinter{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Open is not available on a print server.
func (p *NetworkPrinter) Open(context.Context, string) error {
	return ErrUnsupported
}

// Print posts the PDF bytes to <baseURL>/print.
func (p *NetworkPrinter) Print(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/print", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("building print request: %w", err)
	}

	req.Header.Set("Content-Type", "application/pdf")
	req.Header.Set("X-Filename", filepath.Base(path))

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending print request: %w", err)
	}
	defer resp.Body.Close()

	var out printResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("print server returned %s: %w", resp.Status, err)
	}

	if !out.Success {
		return fmt.Errorf("print failed: %s", out.Message)
	}

	return nil
}

// Split sends views and prints to different openers. A nil side is
// unsupported.
type Split struct {
	Viewer  Opener
	Printer Opener
}

func (s Split) Open(ctx context.Context, path string) error {
	if s.Viewer == nil {
		return ErrUnsupported
	}

	return s.Viewer.Open(ctx, path)
}

func (s Split) Print(ctx context.Context, path string) error {
	if s.Printer == nil {
		return ErrUnsupported
	}

	return s.Printer.Print(ctx, path)
}
