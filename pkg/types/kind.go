package types

import (
	"fmt"
	"strings"
)

// ResourceKind identifies one category of discoverable resource
type ResourceKind int

const (
	KindBackend ResourceKind = iota
	KindRotationPool
	KindLanguage
	KindHoverTemplate
	KindHeaderTemplate
	KindShape
	KindIconset
	KindMapDefinition
	KindBackgroundImage
)

var kindNames = map[ResourceKind]string{
	KindBackend:         "backends",
	KindRotationPool:    "rotation-pools",
	KindLanguage:        "languages",
	KindHoverTemplate:   "hover-templates",
	KindHeaderTemplate:  "header-templates",
	KindShape:           "shapes",
	KindIconset:         "iconsets",
	KindMapDefinition:   "maps",
	KindBackgroundImage: "background-images",
}

// String returns the name used for the kind on the command line and in logs
func (k ResourceKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ResourceKind(%d)", int(k))
}

// PathKey returns the path key of the directory the kind is scanned from.
// Config-sourced kinds report false.
func (k ResourceKind) PathKey() (PathKey, bool) {
	switch k {
	case KindBackend:
		return PathClass, true
	case KindLanguage:
		return PathLanguage, true
	case KindHoverTemplate:
		return PathHoverTemplate, true
	case KindHeaderTemplate:
		return PathHeaderTemplate, true
	case KindShape:
		return PathShape, true
	case KindIconset:
		return PathIcon, true
	case KindMapDefinition:
		return PathMapCfg, true
	case KindBackgroundImage:
		return PathMap, true
	}
	return "", false
}

// AllResourceKinds returns every kind in declaration order
func AllResourceKinds() []ResourceKind {
	return []ResourceKind{
		KindBackend,
		KindRotationPool,
		KindLanguage,
		KindHoverTemplate,
		KindHeaderTemplate,
		KindShape,
		KindIconset,
		KindMapDefinition,
		KindBackgroundImage,
	}
}

// ParseResourceKind resolves a kind from its name. Matching ignores case.
func ParseResourceKind(name string) (ResourceKind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind, true
		}
	}
	return 0, false
}

// PathKey names one configured directory
type PathKey string

const (
	PathClass          PathKey = "class"
	PathLanguage       PathKey = "language"
	PathHoverTemplate  PathKey = "hovertemplate"
	PathHeaderTemplate PathKey = "headertemplate"
	PathShape          PathKey = "shape"
	PathIcon           PathKey = "icon"
	PathMapCfg         PathKey = "mapcfg"
	PathMap            PathKey = "map"
	PathVar            PathKey = "var"
)

// AllPathKeys returns every path key the catalog and validator consult
func AllPathKeys() []PathKey {
	return []PathKey{
		PathClass,
		PathLanguage,
		PathHoverTemplate,
		PathHeaderTemplate,
		PathShape,
		PathIcon,
		PathMapCfg,
		PathMap,
		PathVar,
	}
}
