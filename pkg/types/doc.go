// Package types defines the core types and interfaces used throughout mapcat.
// This includes the closed set of resource kinds, the path keys they resolve
// through, and the collaborator interfaces (FS, PathConfig, ConfigSections,
// LanguageProvider, MessageSink) the catalog is constructed with.
package types
