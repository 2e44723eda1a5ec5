package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceKindNamesRoundTrip(t *testing.T) {
	for _, kind := range AllResourceKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			parsed, ok := ParseResourceKind(kind.String())
			require.True(t, ok)
			assert.Equal(t, kind, parsed)
		})
	}
}

func TestParseResourceKind(t *testing.T) {
	kind, ok := ParseResourceKind("  Maps ")
	require.True(t, ok)
	assert.Equal(t, KindMapDefinition, kind)

	_, ok = ParseResourceKind("map")
	assert.False(t, ok)
	_, ok = ParseResourceKind("")
	assert.False(t, ok)
}

func TestResourceKindString(t *testing.T) {
	assert.Equal(t, "background-images", KindBackgroundImage.String())
	assert.Equal(t, "ResourceKind(42)", ResourceKind(42).String())
}

func TestResourceKindPathKey(t *testing.T) {
	tests := []struct {
		kind ResourceKind
		key  PathKey
		ok   bool
	}{
		{KindBackend, PathClass, true},
		{KindRotationPool, "", false},
		{KindLanguage, PathLanguage, true},
		{KindHoverTemplate, PathHoverTemplate, true},
		{KindHeaderTemplate, PathHeaderTemplate, true},
		{KindShape, PathShape, true},
		{KindIconset, PathIcon, true},
		{KindMapDefinition, PathMapCfg, true},
		{KindBackgroundImage, PathMap, true},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			key, ok := tt.kind.PathKey()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestEveryPathKeyIsListed(t *testing.T) {
	keys := AllPathKeys()
	for _, kind := range AllResourceKinds() {
		if key, ok := kind.PathKey(); ok {
			assert.Contains(t, keys, key)
		}
	}
	assert.Contains(t, keys, PathVar)
}

func TestSectionField(t *testing.T) {
	s := Section{Name: "backend_live", Fields: map[string]string{"backendid": "live"}}
	assert.Equal(t, "live", s.Field("backendid"))
	assert.Equal(t, "", s.Field("missing"))
	assert.Equal(t, "", Section{Name: "empty"}.Field("backendid"))
}
