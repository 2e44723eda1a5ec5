// Package registry provides a generic, thread-safe registry keyed by any
// ordered type. mapcat uses it to hold one filename matcher per resource
// kind.
package registry
