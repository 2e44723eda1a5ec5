package config

import "github.com/arthur-debert/mapcat/pkg/types"

// StaticPaths is a fixed PathConfig, useful for embedding hosts that resolve
// directories themselves
type StaticPaths map[types.PathKey]string

// Path implements types.PathConfig
func (p StaticPaths) Path(key types.PathKey) string {
	return p[key]
}

// StaticSections is a fixed, ordered ConfigSections
type StaticSections []types.Section

// Sections implements types.ConfigSections
func (s StaticSections) Sections() []types.Section {
	return s
}
