package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/sahilm/fuzzy"
)

// fuzzyFilter ranks list entries against the filter term, preserving
// match positions for highlighting. Case-insensitive.
func fuzzyFilter(term string, targets []string) []list.Rank {
	lowered := make([]string, len(targets))
	for i, t := range targets {
		lowered[i] = strings.ToLower(t)
	}

	matches := fuzzy.Find(strings.ToLower(term), lowered)

	ranks := make([]list.Rank, len(matches))
	for i, m := range matches {
		ranks[i] = list.Rank{
			Index:          m.Index,
			MatchedIndexes: m.MatchedIndexes,
		}
	}
	return ranks
}
