package app

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/backyard/internal/config"
)

func TestBuildUIOptions(t *testing.T) {
	dir := t.TempDir()
	prefsPath := filepath.Join(dir, "prefs.toml")
	require.NoError(t, os.WriteFile(prefsPath, []byte("theme = \"Dusk\"\nlast_region = \"or\"\n"), 0o644))

	cfg := config.Default()
	cfg.Display.Locale = "de-DE"
	cfg.Display.Timezone = "America/Denver"
	cfg.Sightings.PlaceName = "Boulder, CO"

	got, err := buildUIOptions(context.Background(), cfg, Options{PrefsPath: prefsPath}, "/tmp/backyard.log")
	require.NoError(t, err)

	assert.Equal(t, "Dusk", got.ThemeName)
	assert.Equal(t, "OR", got.LastRegion)
	assert.Equal(t, prefsPath, got.PrefsPath)
	assert.Equal(t, "/tmp/backyard.log", got.LogPath)
	assert.Equal(t, "Boulder, CO", got.PlaceName)
	assert.Equal(t, "2.1.2006", got.Formatter.Layout())
	assert.NotNil(t, got.Fetcher)
	assert.NotNil(t, got.Sender)
	assert.NotNil(t, got.Clipboard)

	// Observation times render in the configured zone.
	assert.Equal(t, "5.3.2024", got.Formatter.Date("2024-03-05T23:30:00-07:00"))
}

func TestBuildUIOptionsRejectsBadRelayURL(t *testing.T) {
	cfg := config.Default()
	cfg.Email.RelayBase = "not a url"

	_, err := buildUIOptions(context.Background(), cfg, Options{PrefsPath: filepath.Join(t.TempDir(), "p.toml")}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init email relay")
}

func TestRunFailsOnBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[sightings]\nlat = 123.0\n"), 0o644))

	err := Run(context.Background(), Options{ConfigPath: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "backyard/1.2.0", userAgent("1.2.0"))
	assert.Equal(t, "backyard/dev", userAgent(""))
}

func TestBuildUIOptionsFailsOnUnreadablePrefs(t *testing.T) {
	_, err := buildUIOptions(context.Background(), config.Default(), Options{PrefsPath: t.TempDir()}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load prefs")
}

func TestBuildUIOptionsWarnsWhenRelayUnconfigured(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })

	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	_, err := buildUIOptions(context.Background(), config.Default(), Options{PrefsPath: prefsPath}, "")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "email relay not configured")

	buf.Reset()
	cfg := config.Default()
	cfg.Email.ServiceID, cfg.Email.TemplateID, cfg.Email.PublicKey = "svc", "tpl", "key"
	_, err = buildUIOptions(context.Background(), cfg, Options{PrefsPath: prefsPath}, "")
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "email relay not configured")
}
