// Package testutil provides utilities for testing mapcat components.
//
// MockFS is an in-memory types.FS. Directories created implicitly by AddFile
// report mode 0555 (the fstest.MapFS default) and are therefore not
// writable; use AddDir when a test needs a writable directory.
package testutil
