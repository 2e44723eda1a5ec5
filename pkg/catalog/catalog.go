package catalog

import (
	"regexp"

	"github.com/arthur-debert/mapcat/pkg/logging"
	"github.com/arthur-debert/mapcat/pkg/matchers"
	"github.com/arthur-debert/mapcat/pkg/natsort"
	"github.com/arthur-debert/mapcat/pkg/types"
	"github.com/rs/zerolog"
)

var (
	backendSection  = regexp.MustCompile(`(?i)^backend_`)
	rotationSection = regexp.MustCompile(`(?i)^rotation_`)
)

// Section fields holding the identifier of config-defined resources
const (
	FieldBackendID  = "backendid"
	FieldRotationID = "rotationid"
)

// Catalog lists resources from configured directories and config sections
type Catalog struct {
	paths    types.PathConfig
	sections types.ConfigSections
	fs       types.FS
	matchers matchers.Set
	iconsets *IconsetTypeCache
	logger   zerolog.Logger
}

// Option customizes a Catalog
type Option func(*Catalog)

// WithMatchers replaces the built-in filename matchers
func WithMatchers(set matchers.Set) Option {
	return func(c *Catalog) {
		c.matchers = set
	}
}

// New creates a Catalog. The collaborators are referenced, not owned.
func New(paths types.PathConfig, sections types.ConfigSections, fs types.FS, opts ...Option) *Catalog {
	c := &Catalog{
		paths:    paths,
		sections: sections,
		fs:       fs,
		matchers: matchers.Default(),
		logger:   logging.GetLogger("catalog"),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.iconsets = NewIconsetTypeCache(paths, fs)
	return c
}

// DefinedBackends returns the backendid of every backend_* config section,
// in section order
func (c *Catalog) DefinedBackends() []string {
	return c.definedIDs(backendSection, FieldBackendID)
}

// DefinedRotationPools returns the rotationid of every rotation_* config
// section, in section order
func (c *Catalog) DefinedRotationPools() []string {
	return c.definedIDs(rotationSection, FieldRotationID)
}

// Languages returns every non-hidden entry of the language directory
func (c *Catalog) Languages() []string {
	return c.scanKind(types.KindLanguage, nil)
}

// AvailableBackends returns the backends installed as implementation files
func (c *Catalog) AvailableBackends() []string {
	return c.scanKind(types.KindBackend, nil)
}

// HoverTemplates returns the names of the hover templates
func (c *Catalog) HoverTemplates() []string {
	return c.scanKind(types.KindHoverTemplate, nil)
}

// HeaderTemplates returns the names of the header templates
func (c *Catalog) HeaderTemplates() []string {
	return c.scanKind(types.KindHeaderTemplate, nil)
}

// Shapes returns the full filenames of the shape images
func (c *Catalog) Shapes() []string {
	return c.scanKind(types.KindShape, nil)
}

// Iconsets returns the names of iconsets that provide an ok-state icon
func (c *Catalog) Iconsets() []string {
	return c.scanKind(types.KindIconset, nil)
}

// Maps returns the names of the map definitions. When filter is not nil,
// only names matching it are returned.
func (c *Catalog) Maps(filter *regexp.Regexp) []string {
	return c.scanKind(types.KindMapDefinition, filter)
}

// BackgroundImages returns the full filenames of the map background images
func (c *Catalog) BackgroundImages() []string {
	return c.scanKind(types.KindBackgroundImage, nil)
}

// IconsetFiletype returns the image extension of the named iconset, or ""
// when it has no ok-state icon. The answer is cached for the catalog's
// lifetime.
func (c *Catalog) IconsetFiletype(name string) string {
	return c.iconsets.Filetype(name)
}

// List returns the listing for kind. Maps are listed unfiltered.
func (c *Catalog) List(kind types.ResourceKind) []string {
	switch kind {
	case types.KindRotationPool:
		return c.DefinedRotationPools()
	case types.KindBackend:
		return c.AvailableBackends()
	default:
		return c.scanKind(kind, nil)
	}
}

// Directory returns the configured directory for a directory-sourced kind
func (c *Catalog) Directory(kind types.ResourceKind) (string, bool) {
	key, ok := kind.PathKey()
	if !ok {
		return "", false
	}
	return c.paths.Path(key), true
}

func (c *Catalog) definedIDs(prefix *regexp.Regexp, field string) []string {
	ids := []string{}
	if c.sections == nil {
		return ids
	}

	for _, section := range c.sections.Sections() {
		if !prefix.MatchString(section.Name) {
			continue
		}
		id, ok := section.Fields[field]
		if !ok {
			c.logger.Warn().
				Str("section", section.Name).
				Str("field", field).
				Msg("Section has no identifier field, skipping")
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func (c *Catalog) scanKind(kind types.ResourceKind, filter *regexp.Regexp) []string {
	dir, ok := c.Directory(kind)
	if !ok {
		c.logger.Warn().Str("kind", kind.String()).Msg("Kind is not directory-sourced")
		return []string{}
	}

	m, ok := c.matchers.Lookup(kind)
	if !ok {
		c.logger.Warn().Str("kind", kind.String()).Msg("No matcher registered for kind")
		return []string{}
	}

	return c.scanDir(kind, dir, matchers.WithFilter(m, filter))
}

// scanDir lists dir and keeps the names m extracts. Duplicates are kept.
func (c *Catalog) scanDir(kind types.ResourceKind, dir string, m matchers.Matcher) []string {
	logger := c.logger.With().Str("kind", kind.String()).Str("path", dir).Logger()
	done := logging.LogOperationStart(logger, "scan")
	defer done()

	names := []string{}
	entries, err := c.fs.ReadDir(dir)
	if err != nil {
		logger.Debug().Err(err).Msg("Directory unavailable, listing is empty")
		return names
	}

	for _, entry := range entries {
		if name, ok := m.Match(entry.Name()); ok {
			names = append(names, name)
		}
	}

	if len(names) > 0 {
		natsort.Sort(names)
	}

	logger.Debug().Int("count", len(names)).Msg("Directory scanned")
	return names
}
