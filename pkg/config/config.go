// Package config loads the user-facing configuration for the plugreg
// CLI from a TOML file in the XDG config directory. The registry core
// is deliberately config-free; everything here only shapes how the CLI
// presents registered plug-ins.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/plugreg/pkg/errors"
)

// Config is the root of the CLI configuration
type Config struct {
	Output  Output  `toml:"output"`
	Display Display `toml:"display"`
}

// Output controls terminal rendering
type Output struct {
	// Style is the glamour style for topic rendering: "auto", "dark",
	// "light", or "notty"
	Style string `toml:"style"`

	// NoColor disables all styled output (NO_COLOR is honored too)
	NoColor bool `toml:"no_color"`

	// Width is the wrap width for rendered topics (0 = auto)
	Width int `toml:"width"`
}

// Display controls which plug-ins the CLI shows
type Display struct {
	// Hidden lists plug-in names to omit from list output. Hiding is a
	// display concern only: the plug-ins stay registered and usable.
	Hidden []string `toml:"hidden"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Output: Output{
			Style: "auto",
		},
	}
}

// Path returns the config file location under the XDG config directory
func Path() string {
	return filepath.Join(xdg.ConfigHome, "plugreg", "config.toml")
}

// Load reads the configuration from path, falling back to Default when
// the file does not exist
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, errors.ErrConfigLoad, "could not read config file %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, errors.ErrConfigParse, "could not parse config file %s", path)
	}

	return cfg, nil
}

// LoadDefault reads the configuration from the standard location
func LoadDefault() (Config, error) {
	return Load(Path())
}

// DefaultTOML renders the default configuration as TOML, for genconfig
func DefaultTOML() (string, error) {
	data, err := toml.Marshal(Default())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "could not render default config")
	}
	return string(data), nil
}

// IsHidden reports whether a plug-in name is hidden from display
func (c Config) IsHidden(name string) bool {
	for _, hidden := range c.Display.Hidden {
		if hidden == name {
			return true
		}
	}
	return false
}
