package varstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/mapcat/pkg/config"
	"github.com/arthur-debert/mapcat/pkg/filesystem"
	"github.com/arthur-debert/mapcat/pkg/lang"
	"github.com/arthur-debert/mapcat/pkg/messages"
	"github.com/arthur-debert/mapcat/pkg/testutil"
	"github.com/arthur-debert/mapcat/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLang struct{}

func (fakeLang) Text(key string, vars map[string]string) string {
	return key + "(" + vars["PATH"] + ")"
}

func newValidator(t *testing.T, varPath string, fsys types.FS) (*Validator, *messages.Collector) {
	t.Helper()
	sink := messages.NewCollector()
	paths := config.StaticPaths{types.PathVar: varPath}
	return New(paths, fsys, fakeLang{}, sink), sink
}

func TestCheckExists(t *testing.T) {
	tests := []struct {
		name    string
		varPath string
		setup   func(*testutil.MockFS)
		want    bool
	}{
		{
			name:    "existing directory",
			varPath: "/nagvis/var/",
			setup:   func(m *testutil.MockFS) { m.AddDir("/nagvis/var", 0755) },
			want:    true,
		},
		{
			name:    "without trailing separator",
			varPath: "/nagvis/var",
			setup:   func(m *testutil.MockFS) { m.AddDir("/nagvis/var", 0755) },
			want:    true,
		},
		{
			name:    "missing directory",
			varPath: "/nagvis/var/",
			setup:   func(m *testutil.MockFS) { m.AddDir("/nagvis", 0755) },
			want:    false,
		},
		{
			name:    "empty path",
			varPath: "",
			setup:   func(m *testutil.MockFS) {},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := testutil.NewMockFS()
			tt.setup(fsys)
			v, sink := newValidator(t, tt.varPath, fsys)

			assert.Equal(t, tt.want, v.CheckExists(false))
			assert.Empty(t, sink.Messages(), "no messages without report")
		})
	}
}

func TestCheckExistsReports(t *testing.T) {
	fsys := testutil.NewMockFS().AddDir("/nagvis", 0755)
	v, sink := newValidator(t, "/nagvis/var/", fsys)

	assert.False(t, v.CheckExists(true))

	msgs := sink.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, types.SeverityError, msgs[0].Severity)
	assert.Equal(t, "varFolderNotExists(/nagvis/var/)", msgs[0].Text)
	assert.Equal(t, "/nagvis/var/", msgs[0].Path)
}

func TestCheckExistsSuccessIsSilent(t *testing.T) {
	fsys := testutil.NewMockFS().AddDir("/nagvis/var", 0755)
	v, sink := newValidator(t, "/nagvis/var/", fsys)

	assert.True(t, v.CheckExists(true))
	assert.Empty(t, sink.Messages())
}

func TestCheckWritable(t *testing.T) {
	t.Run("writable directory", func(t *testing.T) {
		fsys := testutil.NewMockFS().AddDir("/nagvis/var", 0755)
		v, sink := newValidator(t, "/nagvis/var/", fsys)

		assert.True(t, v.CheckWritable(true))
		assert.Empty(t, sink.Messages())
	})

	t.Run("read-only directory", func(t *testing.T) {
		fsys := testutil.NewMockFS().AddDir("/nagvis/var", 0755).SetReadOnly("/nagvis/var")
		v, sink := newValidator(t, "/nagvis/var/", fsys)

		assert.True(t, v.CheckExists(false))
		assert.False(t, v.CheckWritable(true))

		msgs := sink.Messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, "varFolderNotWriteable(/nagvis/var/)", msgs[0].Text)
		assert.Equal(t, types.SeverityError, msgs[0].Severity)
	})

	t.Run("permission bits without write", func(t *testing.T) {
		fsys := testutil.NewMockFS().AddDir("/nagvis/var", 0555)
		v, _ := newValidator(t, "/nagvis/var/", fsys)

		assert.False(t, v.CheckWritable(false))
	})

	t.Run("missing directory reports both", func(t *testing.T) {
		fsys := testutil.NewMockFS().AddDir("/nagvis", 0755)
		v, sink := newValidator(t, "/nagvis/var/", fsys)

		assert.False(t, v.CheckWritable(true))

		msgs := sink.Messages()
		require.Len(t, msgs, 2)
		assert.Equal(t, "varFolderNotExists(/nagvis/var/)", msgs[0].Text)
		assert.Equal(t, "varFolderNotWriteable(/nagvis/var/)", msgs[1].Text)
	})

	t.Run("no report no messages", func(t *testing.T) {
		fsys := testutil.NewMockFS()
		v, sink := newValidator(t, "/nagvis/var/", fsys)

		assert.False(t, v.CheckWritable(false))
		assert.Empty(t, sink.Messages())
	})
}

func TestCheckWritableImpliesExists(t *testing.T) {
	setups := map[string]func(*testutil.MockFS){
		"writable":  func(m *testutil.MockFS) { m.AddDir("/v", 0755) },
		"read-only": func(m *testutil.MockFS) { m.AddDir("/v", 0755).SetReadOnly("/v") },
		"missing":   func(m *testutil.MockFS) {},
		"mode 0555": func(m *testutil.MockFS) { m.AddDir("/v", 0555) },
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			fsys := testutil.NewMockFS()
			setup(fsys)
			v, _ := newValidator(t, "/v/", fsys)

			if v.CheckWritable(false) {
				assert.True(t, v.CheckExists(false))
			}
		})
	}
}

func TestChecksAreNotCached(t *testing.T) {
	fsys := testutil.NewMockFS().AddDir("/nagvis/var", 0755)
	v, _ := newValidator(t, "/nagvis/var/", fsys)

	require.True(t, v.CheckWritable(false))

	fsys.Remove("/nagvis/var")
	assert.False(t, v.CheckExists(false))
	assert.False(t, v.CheckWritable(false))
}

func TestNilSinkAndLanguage(t *testing.T) {
	fsys := testutil.NewMockFS()
	paths := config.StaticPaths{types.PathVar: "/missing/"}

	v := New(paths, fsys, nil, nil)
	assert.NotPanics(t, func() {
		assert.False(t, v.CheckWritable(true))
	})

	sink := messages.NewCollector()
	v = New(paths, fsys, nil, sink)
	assert.False(t, v.CheckExists(true))
	require.Len(t, sink.Messages(), 1)
	assert.Equal(t, "varFolderNotExists: /missing/", sink.Messages()[0].Text)
}

func TestLocalizedMessages(t *testing.T) {
	german, err := lang.Load("german")
	require.NoError(t, err)

	sink := messages.NewCollector()
	v := New(config.StaticPaths{types.PathVar: "/nagvis/var/"}, testutil.NewMockFS(), german, sink)

	assert.False(t, v.CheckExists(true))
	require.Len(t, sink.Messages(), 1)
	assert.Contains(t, sink.Messages()[0].Text, "/nagvis/var/")
	assert.NotContains(t, sink.Messages()[0].Text, "TranslationNotFound")
}

func TestPath(t *testing.T) {
	v, _ := newValidator(t, "/nagvis/var/", testutil.NewMockFS())
	assert.Equal(t, "/nagvis/var/", v.Path())
}

func TestTrimSeparators(t *testing.T) {
	assert.Equal(t, "/a/b", trimSeparators("/a/b/"))
	assert.Equal(t, "/a/b", trimSeparators("/a/b//"))
	assert.Equal(t, "/a/b", trimSeparators("/a/b"))
	assert.Equal(t, "/", trimSeparators("/"))
	assert.Equal(t, "", trimSeparators(""))
}

func TestOSFilesystem(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "var")
	v, sink := newValidator(t, dir+string(filepath.Separator), filesystem.NewOS())

	assert.False(t, v.CheckExists(false))

	require.NoError(t, os.Mkdir(dir, 0755))
	assert.True(t, v.CheckExists(true))
	assert.True(t, v.CheckWritable(true))
	assert.Empty(t, sink.Messages())

	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	require.NoError(t, os.Chmod(dir, 0555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0755) })
	assert.False(t, v.CheckWritable(false))
}
