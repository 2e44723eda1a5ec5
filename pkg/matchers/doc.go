// Package matchers recognizes resource files by name and extracts the
// resource name from them.
//
// Each resource kind has exactly one Matcher. A Matcher is a pure function of
// the filename: it returns the extracted name and true, or "" and false.
// Regular-expression capture state never escapes the matcher.
//
// # Patterns
//
//	backends           class.GlobalBackend-<name>.<ext>   -> <name>
//	hover/header tmpl  tmpl.<name>.html                    -> <name>
//	shapes, bg images  <anything>.{png,gif,jpg}            -> full filename
//	iconsets           <name>_ok.{png,gif,jpg}             -> <name>
//	maps               <name>.cfg                          -> <name>
//	languages          any entry not starting with "."     -> full filename
//
// Image extensions are matched case-insensitively; every other pattern is
// case-sensitive.
package matchers
