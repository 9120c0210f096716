package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/plugreg/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "auto", cfg.Output.Style)
	assert.False(t, cfg.Output.NoColor)
	assert.Empty(t, cfg.Display.Hidden)
}

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("reads values from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[output]
style = "dark"
no_color = true
width = 100

[display]
hidden = ["xml"]
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "dark", cfg.Output.Style)
		assert.True(t, cfg.Output.NoColor)
		assert.Equal(t, 100, cfg.Output.Width)
		assert.Equal(t, []string{"xml"}, cfg.Display.Hidden)
	})

	t.Run("invalid TOML returns parse error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("output = ["), 0644))

		_, err := Load(path)

		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestPath(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	xdg.Reload()

	assert.Equal(t, filepath.Join(tempDir, "plugreg", "config.toml"), Path())
}

func TestDefaultTOML(t *testing.T) {
	out, err := DefaultTOML()

	require.NoError(t, err)
	assert.Contains(t, out, "style = 'auto'")
}

func TestIsHidden(t *testing.T) {
	cfg := Config{Display: Display{Hidden: []string{"xml", "toml"}}}

	assert.True(t, cfg.IsHidden("xml"))
	assert.False(t, cfg.IsHidden("json"))
}
