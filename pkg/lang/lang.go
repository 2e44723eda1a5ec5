// Package lang renders localized message templates.
//
// A language is a flat TOML table of template strings stored as
// <name>/messages.toml. Templates carry [NAME] placeholders that are
// replaced from the vars passed to Text. Languages shipped with mapcat are
// embedded; an installation's language directory can add or override them,
// and any key missing from a language falls back to english.
package lang

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/mapcat/pkg/errors"
	"github.com/arthur-debert/mapcat/pkg/logging"
	toml "github.com/pelletier/go-toml/v2"
)

// Default is the language every other language falls back to
const Default = "english"

// MessagesFile is the table file inside each language directory
const MessagesFile = "messages.toml"

//go:embed languages
var embedded embed.FS

// Language is a loaded message table. It implements types.LanguageProvider.
type Language struct {
	name     string
	texts    map[string]string
	fallback *Language
}

// Name returns the language name
func (l *Language) Name() string {
	return l.name
}

// Text renders the template for key, replacing [NAME] placeholders from vars.
// Unknown keys render as "TranslationNotFound: <key>".
func (l *Language) Text(key string, vars map[string]string) string {
	tmpl, ok := l.lookup(key)
	if !ok {
		return "TranslationNotFound: " + key
	}
	return render(tmpl, vars)
}

// Has reports whether key resolves in this language or its fallback
func (l *Language) Has(key string) bool {
	_, ok := l.lookup(key)
	return ok
}

func (l *Language) lookup(key string) (string, bool) {
	for cur := l; cur != nil; cur = cur.fallback {
		if tmpl, ok := cur.texts[key]; ok {
			return tmpl, true
		}
	}
	return "", false
}

func render(tmpl string, vars map[string]string) string {
	if len(vars) == 0 {
		return tmpl
	}

	// sorted keys keep replacement deterministic when values contain placeholders
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(vars)*2)
	for _, k := range keys {
		pairs = append(pairs, "["+k+"]", vars[k])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// Load returns an embedded language
func Load(name string) (*Language, error) {
	return LoadFS(nil, name)
}

// LoadFS loads name from fsys, falling back to the embedded table of the same
// name when fsys is nil or lacks it. Languages other than Default fall back
// to Default key by key, and a Default read from fsys falls back to the
// embedded Default.
func LoadFS(fsys fs.FS, name string) (*Language, error) {
	logger := logging.GetLogger("lang")

	texts, fromFS, err := readTable(fsys, name)
	if err != nil {
		return nil, err
	}

	var fallback *Language
	switch {
	case name != Default:
		fallback, err = LoadFS(fsys, Default)
	case fromFS:
		fallback, err = LoadFS(nil, Default)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("language", name).
		Bool("installation", fromFS).
		Int("keys", len(texts)).
		Msg("Language loaded")
	return &Language{name: name, texts: texts, fallback: fallback}, nil
}

// Available returns the embedded language names
func Available() []string {
	entries, err := fs.ReadDir(embedded, "languages")
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names
}

// readTable returns the table for name and whether it came from fsys
func readTable(fsys fs.FS, name string) (map[string]string, bool, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return nil, false, errors.Newf(errors.ErrInvalidInput, "invalid language name %q", name)
	}

	file := path.Join(name, MessagesFile)

	var data []byte
	fromFS := false
	if fsys != nil {
		if onDisk, err := fs.ReadFile(fsys, file); err == nil {
			data, fromFS = onDisk, true
		}
	}
	if !fromFS {
		embeddedData, err := fs.ReadFile(embedded, path.Join("languages", file))
		if err != nil {
			return nil, false, errors.Wrapf(err, errors.ErrLangNotFound, "language %q not found", name).
				WithDetail("language", name)
		}
		data = embeddedData
	}

	texts := make(map[string]string)
	if err := toml.Unmarshal(data, &texts); err != nil {
		return nil, false, errors.Wrapf(err, errors.ErrLangParse, "cannot parse language %q", name).
			WithDetail("language", name)
	}
	return texts, fromFS, nil
}
