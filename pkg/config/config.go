package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/mapcat/pkg/errors"
	"github.com/arthur-debert/mapcat/pkg/types"
)

// Global holds the [global] table
type Global struct {
	// Language is the default UI language name
	Language string `koanf:"language"`

	// Base is the installation root relative paths resolve against
	Base string `koanf:"base"`
}

// Config is the loaded main configuration. It implements types.PathConfig
// and types.ConfigSections.
type Config struct {
	Global Global            `koanf:"global"`
	Paths  map[string]string `koanf:"paths"`

	sections []types.Section
	source   string
}

// Source returns the user file the config was loaded from, or "" when only
// defaults and environment applied
func (c *Config) Source() string {
	return c.source
}

// Path returns the configured directory for key. Relative paths are joined
// to Global.Base; a trailing separator is preserved.
func (c *Config) Path(key types.PathKey) string {
	raw := strings.TrimSpace(c.Paths[string(key)])
	if raw == "" {
		return ""
	}
	if filepath.IsAbs(raw) || c.Global.Base == "" {
		return raw
	}

	joined := filepath.Join(c.Global.Base, raw)
	if strings.HasSuffix(raw, "/") || strings.HasSuffix(raw, string(filepath.Separator)) {
		joined += string(filepath.Separator)
	}
	return joined
}

// Sections returns the non-reserved tables in file order
func (c *Config) Sections() []types.Section {
	return c.sections
}

// Section returns the named section
func (c *Config) Section(name string) (types.Section, bool) {
	for _, s := range c.sections {
		if s.Name == name {
			return s, true
		}
	}
	return types.Section{}, false
}

// Validate checks every path key is set and the language is named
func (c *Config) Validate() error {
	var missing []string
	for _, key := range types.AllPathKeys() {
		if strings.TrimSpace(c.Paths[string(key)]) == "" {
			missing = append(missing, string(key))
		}
	}
	if len(missing) > 0 {
		return errors.Newf(errors.ErrConfigValid, "missing paths: %s", strings.Join(missing, ", ")).
			WithDetail("missing", missing).
			WithDetail("source", c.source)
	}

	if strings.TrimSpace(c.Global.Language) == "" {
		return errors.New(errors.ErrConfigValid, "global.language is empty").
			WithDetail("source", c.source)
	}
	return nil
}
