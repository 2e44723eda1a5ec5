// Package natsort orders strings the way people read them: case is ignored
// and runs of digits compare by numeric value, so "icon2" sorts before
// "icon10".
package natsort

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Compare returns -1, 0 or +1 depending on the natural, case-insensitive
// order of a and b. Strings that differ only in case or in leading zeros
// compare equal.
func Compare(a, b string) int {
	folder := cases.Fold()
	return compareKeys(foldKey(folder, a), foldKey(folder, b))
}

// Less reports whether a sorts before b
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Sort orders names in place. The sort is stable: names comparing equal keep
// their relative order.
func Sort(names []string) {
	if len(names) < 2 {
		return
	}

	// cases.Caser is stateful, so one is built per call and keys are folded once
	folder := cases.Fold()
	keyed := make([]keyedName, len(names))
	for i, name := range names {
		keyed[i] = keyedName{name: name, key: foldKey(folder, name)}
	}

	slices.SortStableFunc(keyed, func(a, b keyedName) int {
		return compareKeys(a.key, b.key)
	})

	for i := range keyed {
		names[i] = keyed[i].name
	}
}

// Sorted returns a sorted copy of names
func Sorted(names []string) []string {
	out := slices.Clone(names)
	Sort(out)
	return out
}

type keyedName struct {
	name string
	key  string
}

func foldKey(folder cases.Caser, s string) string {
	folder.Reset()
	return folder.String(norm.NFC.String(s))
}

func compareKeys(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			endA := digitRunEnd(a, i)
			endB := digitRunEnd(b, j)
			if c := compareNumeric(a[i:endA], b[j:endB]); c != 0 {
				return c
			}
			i, j = endA, endB
			continue
		}

		ra, sizeA := utf8.DecodeRuneInString(a[i:])
		rb, sizeB := utf8.DecodeRuneInString(b[j:])
		if ra != rb {
			return cmp.Compare(ra, rb)
		}
		i += sizeA
		j += sizeB
	}
	return cmp.Compare(len(a)-i, len(b)-j)
}

// compareNumeric compares two digit runs by value without parsing, so runs
// longer than any integer type still order correctly.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return cmp.Compare(len(a), len(b))
	}
	return strings.Compare(a, b)
}

func digitRunEnd(s string, start int) int {
	end := start
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	return end
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
