// Package filesystem provides filesystem implementations for mapcat.
//
// This package contains implementations of the types.FS interface:
// the OS filesystem and an afero-backed one for embedding hosts that
// already hold an afero.Fs (in-memory, read-only overlays, base paths).
package filesystem
