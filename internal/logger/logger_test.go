package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shineart/studiopos/internal/logger"
)

func TestSetup_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.log")

	closer, err := logger.Setup(logger.Config{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)

	log := logger.WithComponent("render")
	log.Info().Str("path", "bills/BILL_0001.pdf").Msg("document written")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"render"`)
	assert.Contains(t, string(data), `"message":"document written"`)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	t.Cleanup(func() {
		_, _ = logger.Setup(logger.DefaultConfig())
	})
}

func TestSetup_BadLevel(t *testing.T) {
	_, err := logger.Setup(logger.Config{Level: "loud"})
	assert.Error(t, err)
}
