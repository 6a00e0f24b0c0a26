package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
	assert.Equal(t, 500*time.Millisecond, cfg.Convert.Debounce())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goifs.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[log]
level = "debug"

[convert]
binary = true
debounce_ms = 100

[preview]
width = 320

[openscad]
binary = "/opt/openscad/bin/openscad"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	level, _ := cfg.Log.SlogLevel()
	assert.Equal(t, slog.LevelDebug, level)
	assert.True(t, cfg.Convert.Binary)
	assert.False(t, cfg.Convert.AllowPolygons)
	assert.Equal(t, 100*time.Millisecond, cfg.Convert.Debounce())
	assert.Equal(t, 320, cfg.Preview.Width)
	assert.Equal(t, 600, cfg.Preview.Height)
	assert.Equal(t, 45.0, cfg.Preview.Yaw)
	assert.Equal(t, "/opt/openscad/bin/openscad", cfg.OpenSCAD.Binary)
}

func TestLoadMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load("does-not-exist.toml")
	assert.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"syntax.toml":   "[log\nlevel = 1",
		"level.toml":    "[log]\nlevel = \"loud\"\n",
		"size.toml":     "[preview]\nwidth = 0\n",
		"debounce.toml": "[convert]\ndebounce_ms = -5\n",
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		_, err := Load(path)
		assert.Error(t, err, name)
	}
}
