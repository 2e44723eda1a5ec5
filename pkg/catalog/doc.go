// Package catalog discovers the named resources a map installation offers:
// data backends, rotation pools, UI languages, hover and header templates,
// shapes, iconsets, map definitions and background images.
//
// Directory-sourced listings scan one configured directory through the
// kind's filename matcher and return the names in natural, case-insensitive
// order. Config-sourced listings (defined backends, rotation pools) follow
// section order and are not sorted.
//
// Listings never fail. A directory that is missing or unreadable yields an
// empty listing, exactly like an empty directory; callers must read an empty
// result as "nothing available".
package catalog
