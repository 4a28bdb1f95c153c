package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.True(t, cfg.Seed)
	require.Equal(t, 10, cfg.PageSize)
	require.Equal(t, int64(10*1024*1024), cfg.AttachmentMaxBytes)
	require.Equal(t, currency.USD, cfg.CurrencyUnit())
	require.False(t, cfg.IsProduction())
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.env")
	require.NoError(t, os.WriteFile(path, []byte("CONSOLE_PAGE_SIZE=25\nCONSOLE_CURRENCY=EUR\n"), 0o600))
	t.Setenv("CONSOLE_SEED", "false")
	t.Cleanup(func() {
		os.Unsetenv("CONSOLE_PAGE_SIZE")
		os.Unsetenv("CONSOLE_CURRENCY")
	})

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 25, cfg.PageSize)
	require.Equal(t, currency.EUR, cfg.CurrencyUnit())
	require.False(t, cfg.Seed)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("CONSOLE_PAGE_SIZE", "0")
	_, err := LoadConfig("")
	require.Error(t, err)

	t.Setenv("CONSOLE_PAGE_SIZE", "5")
	t.Setenv("CONSOLE_CURRENCY", "DOLLARS")
	_, err = LoadConfig("")
	require.Error(t, err)
}

func TestNewLoggerLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&Config{LogFormat: "json", LogLevel: "warn"}, &buf)
	logger.Info("hidden")
	logger.Warn("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	logger = newLogger(&Config{LogLevel: "bogus"}, &buf)
	logger.Info("text line")
	require.Contains(t, buf.String(), "msg=\"text line\"")
}
