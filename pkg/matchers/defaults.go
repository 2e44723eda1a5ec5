package matchers

import (
	"github.com/arthur-debert/mapcat/pkg/registry"
	"github.com/arthur-debert/mapcat/pkg/types"
)

// Set holds one Matcher per resource kind
type Set = registry.Registry[types.ResourceKind, Matcher]

// Default returns a fresh set with the built-in matcher for every
// directory-sourced resource kind.
func Default() Set {
	set := registry.New[types.ResourceKind, Matcher]()

	registry.MustRegister[types.ResourceKind, Matcher](set, types.KindBackend,
		MustRegexMatcher(types.KindBackend, PatternBackendClass, 1))
	registry.MustRegister[types.ResourceKind, Matcher](set, types.KindLanguage,
		NewVisibleMatcher(types.KindLanguage))
	registry.MustRegister[types.ResourceKind, Matcher](set, types.KindHoverTemplate,
		MustRegexMatcher(types.KindHoverTemplate, PatternTemplateFile, 1))
	registry.MustRegister[types.ResourceKind, Matcher](set, types.KindHeaderTemplate,
		MustRegexMatcher(types.KindHeaderTemplate, PatternTemplateFile, 1))
	registry.MustRegister[types.ResourceKind, Matcher](set, types.KindShape,
		MustRegexMatcher(types.KindShape, PatternImageFile, 0))
	registry.MustRegister[types.ResourceKind, Matcher](set, types.KindIconset,
		MustRegexMatcher(types.KindIconset, PatternIconset, 1))
	registry.MustRegister[types.ResourceKind, Matcher](set, types.KindMapDefinition,
		MustRegexMatcher(types.KindMapDefinition, PatternMapConfig, 1))
	registry.MustRegister[types.ResourceKind, Matcher](set, types.KindBackgroundImage,
		MustRegexMatcher(types.KindBackgroundImage, PatternImageFile, 0))

	return set
}
