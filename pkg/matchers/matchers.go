package matchers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/arthur-debert/mapcat/pkg/logging"
	"github.com/arthur-debert/mapcat/pkg/types"
	"github.com/rs/zerolog"
)

// Filename patterns for directory-sourced resource kinds
const (
	PatternBackendClass = `^class\.GlobalBackend-(.+)\.[^.]+$`
	PatternTemplateFile = `^tmpl\.(.+)\.html$`
	PatternImageFile    = `(?i)^.+\.(png|gif|jpg)$`
	PatternIconset      = `^(.+)_ok\.(png|gif|jpg)$`
	PatternMapConfig    = `^(.+)\.cfg$`
)

// Matcher extracts a resource name from a filename
type Matcher interface {
	// Kind returns the resource kind this matcher recognizes
	Kind() types.ResourceKind

	// Match returns the extracted name and true when filename belongs to the kind
	Match(filename string) (string, bool)

	// Description returns a human-readable description of what this matcher accepts
	Description() string
}

// RegexMatcher matches filenames against a regular expression and returns
// one capture group, or the whole filename when group is 0.
type RegexMatcher struct {
	kind   types.ResourceKind
	re     *regexp.Regexp
	group  int
	logger zerolog.Logger
}

// NewRegexMatcher compiles pattern. group selects the capture group to return.
func NewRegexMatcher(kind types.ResourceKind, pattern string, group int) (*RegexMatcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling %s pattern: %w", kind, err)
	}
	if group < 0 || group > re.NumSubexp() {
		return nil, fmt.Errorf("%s pattern %q has no capture group %d", kind, pattern, group)
	}
	return &RegexMatcher{
		kind:   kind,
		re:     re,
		group:  group,
		logger: logging.GetLogger("matchers.regex").With().Str("kind", kind.String()).Logger(),
	}, nil
}

// MustRegexMatcher is NewRegexMatcher for fixed patterns
func MustRegexMatcher(kind types.ResourceKind, pattern string, group int) *RegexMatcher {
	m, err := NewRegexMatcher(kind, pattern, group)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *RegexMatcher) Kind() types.ResourceKind {
	return m.kind
}

func (m *RegexMatcher) Description() string {
	if m.group == 0 {
		return fmt.Sprintf("Matches filenames by pattern %s", m.re)
	}
	return fmt.Sprintf("Matches filenames by pattern %s, capture %d", m.re, m.group)
}

func (m *RegexMatcher) Match(filename string) (string, bool) {
	sub := m.re.FindStringSubmatch(filename)
	if sub == nil {
		return "", false
	}

	m.logger.Trace().
		Str("file", filename).
		Str("name", sub[m.group]).
		Msg("file matched")

	return sub[m.group], true
}

// VisibleMatcher accepts every entry that is not a dotfile and returns it verbatim
type VisibleMatcher struct {
	kind types.ResourceKind
}

// NewVisibleMatcher creates a VisibleMatcher for kind
func NewVisibleMatcher(kind types.ResourceKind) *VisibleMatcher {
	return &VisibleMatcher{kind: kind}
}

func (m *VisibleMatcher) Kind() types.ResourceKind {
	return m.kind
}

func (m *VisibleMatcher) Description() string {
	return "Matches every entry not starting with a dot"
}

func (m *VisibleMatcher) Match(filename string) (string, bool) {
	if filename == "" || strings.HasPrefix(filename, ".") {
		return "", false
	}
	return filename, true
}

// filtered narrows another matcher to names matching a filter expression
type filtered struct {
	Matcher
	filter *regexp.Regexp
}

// WithFilter returns a matcher that additionally requires the extracted name
// to match filter. A nil filter returns m unchanged.
func WithFilter(m Matcher, filter *regexp.Regexp) Matcher {
	if filter == nil {
		return m
	}
	return &filtered{Matcher: m, filter: filter}
}

func (f *filtered) Match(filename string) (string, bool) {
	name, ok := f.Matcher.Match(filename)
	if !ok || !f.filter.MatchString(name) {
		return "", false
	}
	return name, true
}

func (f *filtered) Description() string {
	return fmt.Sprintf("%s, name filtered by %s", f.Matcher.Description(), f.filter)
}

// NewIconsetTypeMatcher returns a matcher for the ok-state icon of one
// iconset. Match yields the file extension rather than the name.
func NewIconsetTypeMatcher(iconset string) *RegexMatcher {
	pattern := `^` + regexp.QuoteMeta(iconset) + `_ok\.(png|gif|jpg)$`
	return MustRegexMatcher(types.KindIconset, pattern, 1)
}
