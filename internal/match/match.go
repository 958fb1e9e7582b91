// Package match computes skill compatibility scores between a project's
// required skills and a candidate's declared skills.
package match

import (
	"math"
	"strings"
)

// Score returns the compatibility percentage between required and candidate
// skills as an integer in [0, 100].
//
// A project with no required skills matches everyone fully. Otherwise the
// score is the share of required skills the candidate covers, compared
// case-insensitively. Both lists are deduplicated first, so repeating a
// skill on either side never changes the result.
func Score(required, candidate []string) int {
	required = dedupeFold(required)
	if len(required) == 0 {
		return 100
	}
	candidate = dedupeFold(candidate)

	matches := 0
	for _, skill := range candidate {
		if containsFold(required, skill) {
			matches++
		}
	}

	score := int(math.Round(float64(matches) / float64(len(required)) * 100))
	if score > 100 {
		score = 100
	}
	return score
}

// dedupeFold returns list with case-insensitive duplicates removed,
// keeping first occurrences in order.
func dedupeFold(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, item := range list {
		key := strings.ToLower(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}

// containsFold reports whether list contains s under case-insensitive comparison.
func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
