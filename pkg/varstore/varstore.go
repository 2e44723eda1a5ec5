// Package varstore gates access to the persisted-state ("var") directory.
//
// Other subsystems write generated artifacts below it, so they check it
// exists and is writable first. Failures are returned as false and, when the
// caller asks for it, reported as localized ERROR messages.
package varstore

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/mapcat/pkg/logging"
	"github.com/arthur-debert/mapcat/pkg/types"
	"github.com/rs/zerolog"
)

// Language keys of the failure messages. Both templates receive the
// configured path as [PATH].
const (
	KeyNotExists   = "varFolderNotExists"
	KeyNotWritable = "varFolderNotWriteable"
)

// Marker is the entry that must resolve below the var directory. "." only
// resolves when the directory can be traversed.
const Marker = "."

// Validator checks the configured var directory
type Validator struct {
	paths  types.PathConfig
	fs     types.FS
	lang   types.LanguageProvider
	sink   types.MessageSink
	logger zerolog.Logger
}

// New creates a Validator. lang and sink may be nil; without a sink nothing
// is reported.
func New(paths types.PathConfig, fs types.FS, lang types.LanguageProvider, sink types.MessageSink) *Validator {
	return &Validator{
		paths:  paths,
		fs:     fs,
		lang:   lang,
		sink:   sink,
		logger: logging.GetLogger("varstore"),
	}
}

// Path returns the var directory as configured, trailing separator included
func (v *Validator) Path() string {
	return v.paths.Path(types.PathVar)
}

// CheckExists reports whether the var directory exists
func (v *Validator) CheckExists(report bool) bool {
	raw := v.Path()
	dir := trimSeparators(raw)

	if raw != "" {
		_, err := v.fs.Stat(dir)
		if err == nil {
			return true
		}
		v.logger.Debug().Err(err).Str("path", dir).Msg("Var directory missing")
	}

	if report {
		v.report(KeyNotExists, raw)
	}
	return false
}

// CheckWritable reports whether the var directory exists, is writable and
// its marker entry resolves. Nothing is cached: every call checks again.
func (v *Validator) CheckWritable(report bool) bool {
	raw := v.Path()

	if v.CheckExists(report) && v.writable(trimSeparators(raw)) {
		return true
	}

	if report {
		v.report(KeyNotWritable, raw)
	}
	return false
}

func (v *Validator) writable(dir string) bool {
	if !v.fs.Writable(dir) {
		v.logger.Debug().Str("path", dir).Msg("Var directory not writable")
		return false
	}
	if _, err := v.fs.Stat(markerPath(dir)); err != nil {
		v.logger.Debug().Err(err).Str("path", dir).Msg("Var directory marker unresolved")
		return false
	}
	return true
}

func (v *Validator) report(key, path string) {
	if v.sink == nil {
		return
	}

	vars := map[string]string{"PATH": path}
	text := key + ": " + path
	if v.lang != nil {
		text = v.lang.Text(key, vars)
	}

	v.sink.Emit(types.Message{
		Severity: types.SeverityError,
		Text:     text,
		Path:     path,
	})
}

// trimSeparators removes trailing separators but keeps a bare root
func trimSeparators(path string) string {
	trimmed := strings.TrimRight(path, `/`+string(filepath.Separator))
	if trimmed == "" && path != "" {
		return path[:1]
	}
	return trimmed
}

// markerPath appends the marker without cleaning, so "dir/." reaches the
// filesystem as written
func markerPath(dir string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir + Marker
	}
	return dir + string(filepath.Separator) + Marker
}
