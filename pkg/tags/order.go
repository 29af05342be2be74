// Package tags orders repository tag names by version and resolves
// symbolic or partial tag requests ("first", "latest", "1.0") to concrete tags.
package tags

import (
	"slices"
	"strings"
)

// ComparisonKey strips at most one leading "v" or "V" from a tag name.
func ComparisonKey(tag string) string {
	if strings.HasPrefix(tag, "v") || strings.HasPrefix(tag, "V") {
		return tag[1:]
	}
	return tag
}

// SortAscending returns a version-ordered copy of tags. The input is not
// modified and tags with equal keys keep their relative order.
func SortAscending(tags []string) []string {
	sorted := slices.Clone(tags)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return CompareVersions(ComparisonKey(a), ComparisonKey(b))
	})
	return sorted
}

// CompareVersions compares two dotted version strings segment by segment.
// Segments made only of digits on both sides compare numerically, anything
// else compares lexically. When one sequence is a strict prefix of the other
// the shorter one sorts first.
func CompareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := compareSegment(as[i], bs[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	default:
		return 0
	}
}

func compareSegment(a, b string) int {
	if !isDigits(a) || !isDigits(b) {
		return strings.Compare(a, b)
	}

	// Numeric comparison without parsing, so segments of any length work.
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
