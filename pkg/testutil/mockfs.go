package testutil

import (
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// MockFS is an in-memory types.FS for tests. It's based on fstest.MapFS,
// records how often each directory was listed and can simulate
// unreadable or read-only directories.
type MockFS struct {
	mu       sync.Mutex
	files    fstest.MapFS
	reads    map[string]int
	denied   map[string]bool
	readOnly map[string]bool
}

// NewMockFS creates a new mock filesystem.
func NewMockFS() *MockFS {
	return &MockFS{
		files:    make(fstest.MapFS),
		reads:    make(map[string]int),
		denied:   make(map[string]bool),
		readOnly: make(map[string]bool),
	}
}

// normalizePath converts absolute paths to relative paths for MapFS storage
func (m *MockFS) normalizePath(path string) string {
	cleanPath := filepath.ToSlash(filepath.Clean(path))

	if filepath.IsAbs(filepath.Clean(path)) {
		if runtime.GOOS == "windows" && len(cleanPath) >= 2 && cleanPath[1] == ':' {
			cleanPath = cleanPath[2:]
		}
		cleanPath = strings.TrimPrefix(cleanPath, "/")
	}
	if cleanPath == "" {
		return "."
	}

	return cleanPath
}

// AddFile creates a regular file. Parent directories are implicit.
func (m *MockFS) AddFile(path string) *MockFS {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[m.normalizePath(path)] = &fstest.MapFile{
		Mode:    0644,
		ModTime: time.Now(),
	}
	return m
}

// AddFiles creates several regular files inside dir
func (m *MockFS) AddFiles(dir string, names ...string) *MockFS {
	for _, name := range names {
		m.AddFile(filepath.Join(dir, name))
	}
	return m
}

// AddDir creates an explicit directory with the given permissions
func (m *MockFS) AddDir(path string, perm fs.FileMode) *MockFS {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[m.normalizePath(path)] = &fstest.MapFile{
		Mode:    fs.ModeDir | perm,
		ModTime: time.Now(),
	}
	return m
}

// Remove deletes a single entry
func (m *MockFS) Remove(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, m.normalizePath(path))
}

// Deny makes ReadDir on path fail with fs.ErrPermission
func (m *MockFS) Deny(path string) *MockFS {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.denied[m.normalizePath(path)] = true
	return m
}

// SetReadOnly makes Writable report false for path
func (m *MockFS) SetReadOnly(path string) *MockFS {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readOnly[m.normalizePath(path)] = true
	return m
}

// ReadDirCalls returns how many times path was listed
func (m *MockFS) ReadDirCalls(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads[m.normalizePath(path)]
}

// ReadDir implements types.FS
func (m *MockFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cleanPath := m.normalizePath(name)
	m.reads[cleanPath]++
	if m.denied[cleanPath] {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return fs.ReadDir(m.files, cleanPath)
}

// Stat implements types.FS
func (m *MockFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.files.Stat(m.normalizePath(name))
}

// Writable implements types.FS
func (m *MockFS) Writable(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	cleanPath := m.normalizePath(name)
	if m.readOnly[cleanPath] {
		return false
	}
	info, err := m.files.Stat(cleanPath)
	if err != nil {
		return false
	}
	return info.Mode().Perm()&0o222 != 0
}
