// Package rangeplan expands a resolved tag range into the compare ranges
// that get reported: one range, or every consecutive tag pair in between.
package rangeplan

import (
	"errors"
	"slices"

	"github.com/tag-range-reporter/pkg/tags"
)

// ErrInsufficientTags is returned when step mode finds fewer than two tags
// between the resolved endpoints.
var ErrInsufficientTags = errors.New("step mode needs at least two tags in range")

// Single wraps the resolved endpoints as the only range to report.
func Single(from, to string) []tags.Range {
	return []tags.Range{{From: from, To: to}}
}

// Steps returns one range per consecutive pair of version-sorted tags
// between from and to, inclusive. Endpoints given in descending order are
// swapped so the plan always walks upward. Lookups use the first occurrence
// of each endpoint.
func Steps(all []string, from, to string) ([]tags.Range, error) {
	sorted := tags.SortAscending(all)

	lo := slices.Index(sorted, from)
	hi := slices.Index(sorted, to)
	if lo < 0 || hi < 0 {
		return nil, ErrInsufficientTags
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	sub := sorted[lo : hi+1]
	if len(sub) < 2 {
		return nil, ErrInsufficientTags
	}

	plan := make([]tags.Range, 0, len(sub)-1)
	for i := 0; i < len(sub)-1; i++ {
		plan = append(plan, tags.Range{From: sub[i], To: sub[i+1]})
	}
	return plan, nil
}

// Plan picks Single or Steps depending on step.
func Plan(all []string, resolved tags.Range, step bool) ([]tags.Range, error) {
	if !step {
		return Single(resolved.From, resolved.To), nil
	}
	return Steps(all, resolved.From, resolved.To)
}
