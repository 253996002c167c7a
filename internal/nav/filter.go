package nav

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterLines returns the display rows matching the query. Fuzzy ranking on
// labels first, with a substring fallback over labels and IDs so that exact
// fragments of an ID always match. An empty query returns a copy of the
// input.
func FilterLines(lines []Line, query string) []Line {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return append([]Line(nil), lines...)
	}
	labels := make([]string, len(lines))
	for i, line := range lines {
		labels[i] = line.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Line, 0, len(matches))
		for idx, line := range lines {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, line)
			}
		}
		if len(filtered) > 0 {
			return filtered
		}
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Line, 0, len(lines))
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line.Label), lower) ||
			strings.Contains(strings.ToLower(line.ID), lower) {
			filtered = append(filtered, line)
		}
	}
	return filtered
}

// BestMatchIndex picks the row the cursor should land on after a filter
// change: exact label/ID match, then label prefix, then ID prefix, then
// the best fuzzy rank.
func BestMatchIndex(lines []Line, query string) int {
	trimmed := strings.TrimSpace(query)
	if len(lines) == 0 {
		return -1
	}
	if trimmed == "" {
		return 0
	}
	for i, line := range lines {
		if strings.EqualFold(line.Label, trimmed) || strings.EqualFold(line.ID, trimmed) {
			return i
		}
	}
	lower := strings.ToLower(trimmed)
	for i, line := range lines {
		if strings.HasPrefix(strings.ToLower(line.Label), lower) {
			return i
		}
	}
	for i, line := range lines {
		if strings.HasPrefix(strings.ToLower(line.ID), lower) {
			return i
		}
	}
	labels := make([]string, len(lines))
	for i, line := range lines {
		labels[i] = line.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(lines) {
		return 0
	}
	return best.OriginalIndex
}
