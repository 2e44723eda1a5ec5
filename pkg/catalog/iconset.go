package catalog

import (
	"sync"

	"github.com/arthur-debert/mapcat/pkg/logging"
	"github.com/arthur-debert/mapcat/pkg/matchers"
	"github.com/arthur-debert/mapcat/pkg/types"
	"github.com/rs/zerolog"
)

// IconsetTypeCache memoizes the image extension of each iconset.
//
// The first lookup of a name scans the icon directory once; every later
// lookup returns the stored value, even if the directory has changed since.
// Entries are never evicted.
type IconsetTypeCache struct {
	paths  types.PathConfig
	fs     types.FS
	logger zerolog.Logger

	mu        sync.Mutex
	filetypes map[string]string
}

// NewIconsetTypeCache creates an empty cache
func NewIconsetTypeCache(paths types.PathConfig, fs types.FS) *IconsetTypeCache {
	return &IconsetTypeCache{
		paths:     paths,
		fs:        fs,
		logger:    logging.GetLogger("catalog.iconsets"),
		filetypes: make(map[string]string),
	}
}

// Filetype returns the extension (png, gif or jpg) of the iconset's ok-state
// icon, or "" when there is none.
func (c *IconsetTypeCache) Filetype(name string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	// presence, not the value, marks a name as looked up: "" is a valid answer
	if ext, cached := c.filetypes[name]; cached {
		return ext
	}

	ext := c.lookup(name)
	c.filetypes[name] = ext
	return ext
}

// Len returns the number of cached names
func (c *IconsetTypeCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.filetypes)
}

// lookup scans the icon directory. When several extensions exist the last
// one in listing order wins.
func (c *IconsetTypeCache) lookup(name string) string {
	dir := c.paths.Path(types.PathIcon)
	logger := c.logger.With().Str("iconset", name).Str("path", dir).Logger()

	entries, err := c.fs.ReadDir(dir)
	if err != nil {
		logger.Debug().Err(err).Msg("Icon directory unavailable")
		return ""
	}

	m := matchers.NewIconsetTypeMatcher(name)
	ext := ""
	for _, entry := range entries {
		if found, ok := m.Match(entry.Name()); ok {
			ext = found
		}
	}

	logger.Debug().Str("filetype", ext).Msg("Iconset filetype resolved")
	return ext
}
