package testutil

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockFSReadDir(t *testing.T) {
	m := NewMockFS().AddFiles("/nagvis/shapes", "b.png", "a.png")

	entries, err := m.ReadDir("/nagvis/shapes")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.png", entries[0].Name())
	assert.Equal(t, "b.png", entries[1].Name())
	assert.Equal(t, 1, m.ReadDirCalls("/nagvis/shapes/"))

	_, err = m.ReadDir("/nagvis/missing")
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, 1, m.ReadDirCalls("/nagvis/missing"))
}

func TestMockFSDeny(t *testing.T) {
	m := NewMockFS().AddFile("/nagvis/icons/std_ok.png").Deny("/nagvis/icons")

	_, err := m.ReadDir("/nagvis/icons")
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestMockFSWritable(t *testing.T) {
	m := NewMockFS().
		AddDir("/nagvis/var", 0755).
		AddFile("/nagvis/etc/maps/demo.cfg")

	assert.True(t, m.Writable("/nagvis/var"))
	assert.False(t, m.Writable("/nagvis/etc/maps"), "implicit directories are read-only")
	assert.False(t, m.Writable("/nagvis/missing"))

	m.SetReadOnly("/nagvis/var")
	assert.False(t, m.Writable("/nagvis/var"))
}

func TestMockFSStatCleansDotSuffix(t *testing.T) {
	m := NewMockFS().AddDir("/nagvis/var", 0755)

	info, err := m.Stat("/nagvis/var/.")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
