package lang

import (
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/mapcat/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	english, err := Load("english")
	require.NoError(t, err)
	assert.Equal(t, "english", english.Name())

	text := english.Text("varFolderNotExists", map[string]string{"PATH": "/nagvis/var/"})
	assert.Contains(t, text, "/nagvis/var/")
	assert.NotContains(t, text, "[PATH]")
}

func TestAvailable(t *testing.T) {
	assert.ElementsMatch(t, []string{"english", "german"}, Available())
}

func TestEveryLanguageHasEveryEnglishKey(t *testing.T) {
	english, err := Load(Default)
	require.NoError(t, err)

	for _, name := range Available() {
		l, err := Load(name)
		require.NoError(t, err)
		for key := range english.texts {
			_, ok := l.texts[key]
			assert.True(t, ok, "%s lacks %s", name, key)
		}
	}
}

func TestTextUnknownKey(t *testing.T) {
	english, err := Load("english")
	require.NoError(t, err)
	assert.Equal(t, "TranslationNotFound: nope", english.Text("nope", nil))
	assert.False(t, english.Has("nope"))
}

func TestLoadFSOverridesAndFallsBack(t *testing.T) {
	fsys := fstest.MapFS{
		"pirate/messages.toml":  {Data: []byte(`varFolderNotExists = "Arr, [PATH] be missin'"`)},
		"english/messages.toml": {Data: []byte(`noResources = "Nothing in [PATH]"`)},
	}

	pirate, err := LoadFS(fsys, "pirate")
	require.NoError(t, err)
	assert.Equal(t, "Arr, /var be missin'", pirate.Text("varFolderNotExists", map[string]string{"PATH": "/var"}))

	// english from fsys overrides embedded keys it defines
	assert.Equal(t, "Nothing in /x", pirate.Text("noResources", map[string]string{"PATH": "/x", "KIND": "maps"}))
	// and the embedded english still answers the rest
	assert.Contains(t, pirate.Text("varFolderOk", map[string]string{"PATH": "/v"}), "/v")
	assert.False(t, pirate.Has("nope"))
}

func TestLoadFSPartialEnglishKeepsEmbeddedKeys(t *testing.T) {
	fsys := fstest.MapFS{
		"english/messages.toml": {Data: []byte(`noResources = "Nothing here"`)},
	}

	english, err := LoadFS(fsys, "english")
	require.NoError(t, err)
	assert.Equal(t, "Nothing here", english.Text("noResources", nil))

	embedded, err := Load("english")
	require.NoError(t, err)

	vars := map[string]string{"PATH": "/nagvis/var/"}
	for _, key := range []string{"varFolderNotExists", "varFolderNotWriteable", "varFolderExists", "varFolderOk"} {
		t.Run(key, func(t *testing.T) {
			got := english.Text(key, vars)
			assert.NotContains(t, got, "TranslationNotFound")
			assert.Equal(t, embedded.Text(key, vars), got)
		})
	}

	german, err := LoadFS(fsys, "german")
	require.NoError(t, err)
	assert.Contains(t, german.Text("varFolderNotExists", vars), "existiert nicht")
}

func TestEmbeddedEnglishHasNoFallback(t *testing.T) {
	english, err := Load(Default)
	require.NoError(t, err)
	assert.Nil(t, english.fallback)
}

func TestLoadFSFallsBackToEmbeddedTable(t *testing.T) {
	german, err := LoadFS(fstest.MapFS{}, "german")
	require.NoError(t, err)
	assert.Contains(t, german.Text("varFolderNotWriteable", map[string]string{"PATH": "/v"}), "/v")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("klingon")
	assert.True(t, errors.IsErrorCode(err, errors.ErrLangNotFound))

	_, err = Load("../english")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = LoadFS(fstest.MapFS{"broken/messages.toml": {Data: []byte("= nope")}}, "broken")
	assert.True(t, errors.IsErrorCode(err, errors.ErrLangParse))
}

func TestRenderMultipleVars(t *testing.T) {
	got := render("[KIND] in [PATH], [KIND]", map[string]string{"KIND": "maps", "PATH": "/etc"})
	assert.Equal(t, "maps in /etc, maps", got)
}
