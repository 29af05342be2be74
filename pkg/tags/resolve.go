package tags

import (
	"errors"
	"fmt"
	"strings"
)

// PreviewLimit is the default number of tags listed in diagnostics.
const PreviewLimit = 20

// ErrTagSetEmpty is returned when the repository has no tags at all.
var ErrTagSetEmpty = errors.New("no tags found in repository")

// Which selects the end of a sorted candidate list.
type Which int

const (
	Min Which = iota
	Max
)

// Range is a pair of concrete tag names, both members of the tag set they
// were resolved from.
type Range struct {
	From string
	To   string
}

// UnresolvedError reports that one or both requests matched no tag.
type UnresolvedError struct {
	FromRequest string
	ToRequest   string
	From        string // empty when unresolved
	To          string // empty when unresolved
	Preview     string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("could not resolve tag range: from %q -> %s, to %q -> %s; available tags: %s",
		e.FromRequest, orNone(e.From),
		e.ToRequest, orNone(e.To),
		e.Preview,
	)
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

// FilterByPrefix keeps the tags whose comparison key is prefix itself or
// starts with prefix followed by a "." segment boundary. An empty prefix
// keeps everything. A leading "v" on the prefix is ignored, so an exact tag
// name also works as a request.
func FilterByPrefix(tags []string, prefix string) []string {
	if prefix == "" {
		return tags
	}

	prefix = ComparisonKey(prefix)
	dotted := strings.TrimRight(prefix, ".") + "."

	var matched []string
	for _, t := range tags {
		key := ComparisonKey(t)
		if key == prefix || strings.HasPrefix(key, dotted) {
			matched = append(matched, t)
		}
	}
	return matched
}

// ResolveOne picks the lowest or highest version among the tags matching
// request. The boolean is false when nothing matches.
func ResolveOne(request string, tags []string, which Which) (string, bool) {
	candidates := FilterByPrefix(tags, request)
	if len(candidates) == 0 {
		return "", false
	}

	sorted := SortAscending(candidates)
	if which == Min {
		return sorted[0], true
	}
	return sorted[len(sorted)-1], true
}

// ResolveEndpoints maps the raw from/to requests onto concrete tags. The
// keywords "first" (from) and "current"/"latest" (to), as well as empty
// requests, select the earliest and latest tags overall. The two requests
// resolve independently; any miss yields an *UnresolvedError.
func ResolveEndpoints(fromRequest, toRequest string, tags []string) (Range, error) {
	if len(tags) == 0 {
		return Range{}, ErrTagSetEmpty
	}

	from, fromOK := resolveFrom(fromRequest, tags)
	to, toOK := resolveTo(toRequest, tags)
	if !fromOK || !toOK {
		return Range{}, &UnresolvedError{
			FromRequest: fromRequest,
			ToRequest:   toRequest,
			From:        from,
			To:          to,
			Preview:     Preview(tags, PreviewLimit),
		}
	}

	return Range{From: from, To: to}, nil
}

func resolveFrom(request string, tags []string) (string, bool) {
	if request == "" || strings.EqualFold(request, "first") {
		return ResolveOne("", tags, Min)
	}
	return ResolveOne(request, tags, Min)
}

func resolveTo(request string, tags []string) (string, bool) {
	switch strings.ToLower(request) {
	case "", "current", "latest":
		return ResolveOne("", tags, Max)
	}
	return ResolveOne(request, tags, Max)
}

// Preview lists up to limit tags in ascending order, followed by "..." when
// more exist.
func Preview(tags []string, limit int) string {
	if len(tags) == 0 {
		return "(none)"
	}

	sorted := SortAscending(tags)
	if limit <= 0 || len(sorted) <= limit {
		return strings.Join(sorted, ", ")
	}
	return strings.Join(sorted[:limit], ", ") + ", ..."
}
