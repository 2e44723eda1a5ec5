// Package config loads the mapcat main configuration.
//
// Layers, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file: an explicit path, else mapcat.toml, mapcat.yaml or
//     mapcat.yml under $XDG_CONFIG_HOME/mapcat
//  3. MAPCAT_GLOBAL_<KEY> and MAPCAT_PATHS_<KEY> environment variables
//
// The [global] and [paths] tables configure mapcat itself. Every other
// top-level table is a section (backend_*, rotation_* and so on), kept in
// the order it appears in the user file.
package config
