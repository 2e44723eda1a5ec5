package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/mapcat/pkg/errors"
	"github.com/arthur-debert/mapcat/pkg/logging"
	"github.com/arthur-debert/mapcat/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix prefixes environment overrides, e.g. MAPCAT_PATHS_VAR
const EnvPrefix = "MAPCAT_"

// Reserved tables that are not sections
const (
	TableGlobal = "global"
	TablePaths  = "paths"
)

// FileNames are the user file names searched in the config directory
var FileNames = []string{"mapcat.toml", "mapcat.yaml", "mapcat.yml"}

// Load builds the configuration. path names the user file; when empty the
// default locations are tried and a missing file is not an error.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	// 1. Embedded defaults
	defaults, err := toml.Parser().Unmarshal(defaultConfig)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse embedded defaults")
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	// 2. User file
	if path == "" {
		path = DefaultFile()
	} else if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", path).
			WithDetail("path", path)
	}

	var order []string
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", path).
				WithDetail("path", path)
		}

		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path).
				WithDetail("path", path)
		}

		order, err = tableOrder(path, data)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Int("tables", len(order)).Msg("Loaded user config")
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Decode
	cfg := &Config{source: path}
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				expandHomeHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration").
			WithDetail("path", path)
	}

	cfg.sections = collectSections(k, order)
	logger.Debug().
		Str("source", path).
		Int("sections", len(cfg.sections)).
		Msg("Configuration loaded")

	return cfg, nil
}

// DefaultFile returns the first existing user file in the config directory,
// or "" when there is none
func DefaultFile() string {
	for _, name := range FileNames {
		candidate := filepath.Join(configHome(), "mapcat", name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

func configHome() string {
	// xdg resolves at init; tests and callers may change the variable later
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	return xdg.ConfigHome
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// envKey maps MAPCAT_PATHS_VAR to paths.var. Variables outside the global
// and paths tables are ignored.
func envKey(s string) string {
	table, key, ok := strings.Cut(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_")
	if !ok || key == "" {
		return ""
	}
	if table != TableGlobal && table != TablePaths {
		return ""
	}
	return table + "." + key
}

func expandHomeHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.String {
			return data, nil
		}
		s := data.(string)
		if s != "~" && !strings.HasPrefix(s, "~/") {
			return data, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return data, nil
		}
		return home + s[1:], nil
	}
}

// collectSections turns every non-reserved top-level table into a section.
// Tables named in order come first in that order; the rest follow sorted.
func collectSections(k *koanf.Koanf, order []string) []types.Section {
	raw := k.Raw()

	var names []string
	seen := make(map[string]bool)
	for _, name := range order {
		if _, ok := raw[name].(map[string]interface{}); ok && !seen[name] && !reserved(name) {
			names = append(names, name)
			seen[name] = true
		}
	}

	var rest []string
	for name, v := range raw {
		if _, ok := v.(map[string]interface{}); ok && !seen[name] && !reserved(name) {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	names = append(names, rest...)

	sections := make([]types.Section, 0, len(names))
	for _, name := range names {
		table := raw[name].(map[string]interface{})
		fields := make(map[string]string, len(table))
		for key, v := range table {
			fields[strings.ToLower(key)] = fieldString(v)
		}
		sections = append(sections, types.Section{Name: name, Fields: fields})
	}
	return sections
}

func reserved(name string) bool {
	return name == TableGlobal || name == TablePaths
}

func fieldString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case []interface{}:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = fieldString(item)
		}
		return strings.Join(parts, ",")
	case bool:
		if val {
			return "1"
		}
		return "0"
	case nil:
		return ""
	default:
		return fmt.Sprint(val)
	}
}
