package types

import (
	"io/fs"
)

// FS is the filesystem interface required for catalog operations.
// Directory iteration goes through it so tests can supply in-memory trees.
type FS interface {
	// ReadDir lists a directory. Implementations open, drain and close the
	// handle before returning.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Stat returns file info for name
	Stat(name string) (fs.FileInfo, error)

	// Writable reports whether the current process may write to name
	Writable(name string) bool
}

// PathConfig resolves a path key to a configured directory
type PathConfig interface {
	Path(key PathKey) string
}

// ConfigSections exposes the parsed configuration sections in file order
type ConfigSections interface {
	Sections() []Section
}

// LanguageProvider renders localized message templates. vars replace
// [NAME] placeholders in the template.
type LanguageProvider interface {
	Text(key string, vars map[string]string) string
}

// MessageSink receives user-facing notifications. It is fire-and-forget:
// callers never inspect a result.
type MessageSink interface {
	Emit(msg Message)
}
