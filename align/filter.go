package align

import (
	"sort"
	"strings"
)

// Accepted is a target span that cleared the frequency thresholds for
// one source connective.
type Accepted struct {
	Target string  `json:"target"`
	Count  int     `json:"count"`
	Share  float64 `json:"share"`
}

// Filter groups candidates by their source connective and keeps, per
// source, the target spans that pass the configured thresholds. The
// share of a span is its count over all aligned occurrences of the
// source, so spans filtered away still weigh down the survivors.
func Filter(cands []Candidate, cfg Config) map[string][]Accepted {
	counts := make(map[string]map[string]int)
	totals := make(map[string]int)
	for _, c := range cands {
		if counts[c.Source] == nil {
			counts[c.Source] = make(map[string]int)
		}
		counts[c.Source][c.Target]++
		totals[c.Source]++
	}
	accepted := make(map[string][]Accepted, len(counts))
	for source, byTarget := range counts {
		kept := FilterCounts(byTarget, totals[source], cfg)
		if len(kept) > 0 {
			accepted[source] = kept
		}
	}
	return accepted
}

// FilterCounts applies the threshold test to the aggregated span
// counts of a single source connective. total is the number of aligned
// occurrences the counts were drawn from. Single-word spans are tested
// against the word thresholds, multi-word spans against the phrase
// thresholds; cfg.Policy decides whether one passing test suffices.
// The result is ordered by descending count, ties lexically.
func FilterCounts(counts map[string]int, total int, cfg Config) []Accepted {
	if total <= 0 {
		return nil
	}
	var kept []Accepted
	for target, count := range counts {
		share := float64(count) / float64(total)
		minShare, minCount := cfg.WordThreshold, cfg.WordCount
		if isPhrase(target) {
			minShare, minCount = cfg.PhraseThreshold, cfg.PhraseCount
		}
		pass := share >= minShare || count >= minCount
		if cfg.Policy == PolicyAll {
			pass = share >= minShare && count >= minCount
		}
		if pass {
			kept = append(kept, Accepted{Target: target, Count: count, Share: share})
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Count != kept[j].Count {
			return kept[i].Count > kept[j].Count
		}
		return kept[i].Target < kept[j].Target
	})
	return kept
}

func isPhrase(form string) bool {
	return len(strings.Fields(form)) > 1
}
