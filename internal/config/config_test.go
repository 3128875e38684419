package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shineart/studiopos/internal/config"
	"github.com/shineart/studiopos/internal/document"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "bills", cfg.Output.Bills)
	assert.Equal(t, "invoices", cfg.Output.Invoices)
	assert.Equal(t, "reports", cfg.Output.Reports)
	assert.Equal(t, "bookings", cfg.Output.Bookings)
	assert.Equal(t, "Asia/Colombo", cfg.Studio.TimeZone)
	assert.Equal(t, 12*time.Hour, cfg.JWT.TTL)
	assert.Empty(t, cfg.Printer.URL)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("OUTPUT_BILLS_DIR", "/var/studio/bills")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.local,http://b.local")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "/var/studio/bills", cfg.Output.Bills)
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "postgres://postgres:pw@db.internal:5432/studiopos?sslmode=disable", cfg.ConnectionString())
	assert.Equal(t, "json", cfg.Logger().Format)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("JWT_TTL", "forever")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoadProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "studio.yaml")

	require.NoError(t, os.WriteFile(path, []byte(`
name: Lumiere Studio
address: 7 Temple Road, Kandy
phone: "081 222 3333"
logo: assets/logo.png
currency:
  symbol: Rs.
footers:
  receipt: See you soon!
`), 0o644))

	p, err := config.LoadProfile(path)
	require.NoError(t, err)

	lh := p.Letterhead()
	assert.Equal(t, "Lumiere Studio", lh.Name)
	assert.Equal(t, "Photography Services", lh.Tagline)
	assert.Equal(t, "7 Temple Road, Kandy", lh.Address)
	assert.Equal(t, "081 222 3333", lh.Phone)
	assert.Equal(t, filepath.Join(dir, "assets", "logo.png"), lh.LogoPath)
	assert.Equal(t, "LKR", lh.CurrencyCode)
	assert.Equal(t, "See you soon!", lh.ReceiptFooter)
	assert.Equal(t, document.DefaultLetterhead().InvoiceFooter, lh.InvoiceFooter)
}

func TestLoadProfile_MissingFile(t *testing.T) {
	p, err := config.LoadProfile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, document.DefaultLetterhead(), p.Letterhead())
}

func TestLoadProfile_EnvironmentOverride(t *testing.T) {
	t.Setenv("STUDIO_CURRENCY_CODE", "USD")

	p, err := config.LoadProfile("")
	require.NoError(t, err)

	assert.Equal(t, "USD", p.Letterhead().CurrencyCode)
}

func TestLoadProfile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: [unterminated"), 0o644))

	_, err := config.LoadProfile(path)
	require.Error(t, err)
}
