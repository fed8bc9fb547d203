package align

import (
	"reflect"
	"testing"
)

func TestFilterSharesUseAllOccurrences(t *testing.T) {
	cands := []Candidate{
		{Source: "aber", Target: "mais"},
		{Source: "aber", Target: "mais"},
		{Source: "aber", Target: "mais"},
		{Source: "aber", Target: "donc"},
	}
	cfg := Config{WordThreshold: 0.5, WordCount: 100, Policy: PolicyAny}

	got := Filter(cands, cfg)
	// "mais" holds 3 of 4 occurrences; "donc" stays below the
	// threshold but still contributes to the denominator.
	want := map[string][]Accepted{
		"aber": {{Target: "mais", Count: 3, Share: 0.75}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter = %v, want %v", got, want)
	}
}

func TestFilterCountsPolicies(t *testing.T) {
	counts := map[string]int{"mais": 4}
	cfg := Config{WordThreshold: 0.9, WordCount: 5}

	// 4 of 4 occurrences: the share test passes, the count test fails.
	cfg.Policy = PolicyAny
	if got := FilterCounts(counts, 4, cfg); len(got) != 1 {
		t.Errorf("PolicyAny kept %v, want one entry", got)
	}
	cfg.Policy = PolicyAll
	if got := FilterCounts(counts, 4, cfg); len(got) != 0 {
		t.Errorf("PolicyAll kept %v, want none", got)
	}
}

func TestFilterCountsBuckets(t *testing.T) {
	counts := map[string]int{
		"mais":       2,
		"quand même": 2,
	}
	// Tight word limits, loose phrase limits: only the phrase passes.
	cfg := Config{
		WordThreshold:   0.9,
		WordCount:       10,
		PhraseThreshold: 0.1,
		PhraseCount:     10,
		Policy:          PolicyAny,
	}
	got := FilterCounts(counts, 10, cfg)
	want := []Accepted{{Target: "quand même", Count: 2, Share: 0.2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterCounts = %v, want %v", got, want)
	}
}

func TestFilterCountsOrder(t *testing.T) {
	counts := map[string]int{"donc": 2, "mais": 5, "alors": 2}
	cfg := Config{WordCount: 1, Policy: PolicyAny}

	got := FilterCounts(counts, 9, cfg)
	var targets []string
	for _, a := range got {
		targets = append(targets, a.Target)
	}
	want := []string{"mais", "alors", "donc"}
	if !reflect.DeepEqual(targets, want) {
		t.Errorf("order = %v, want %v", targets, want)
	}
}

func TestFilterCountsEmpty(t *testing.T) {
	cfg := Config{WordCount: 1, Policy: PolicyAny}
	if got := FilterCounts(nil, 0, cfg); got != nil {
		t.Errorf("FilterCounts(nil, 0) = %v, want nil", got)
	}
	if got := FilterCounts(map[string]int{"x": 1}, 0, cfg); got != nil {
		t.Errorf("zero total = %v, want nil", got)
	}
}

func TestFilterCountsIdempotent(t *testing.T) {
	counts := map[string]int{"mais": 6, "donc": 3, "et": 1}
	for _, policy := range []Policy{PolicyAny, PolicyAll} {
		cfg := Config{WordThreshold: 0.25, WordCount: 3, Policy: policy}
		first := FilterCounts(counts, 10, cfg)

		// Feeding the survivors back through the filter changes
		// nothing: shares can only grow when losers leave the pool.
		again := make(map[string]int, len(first))
		total := 0
		for _, a := range first {
			again[a.Target] = a.Count
			total += a.Count
		}
		second := FilterCounts(again, total, cfg)
		if len(second) != len(first) {
			t.Fatalf("policy %s: second pass kept %d, want %d", policy, len(second), len(first))
		}
		for i := range first {
			if second[i].Target != first[i].Target || second[i].Count != first[i].Count {
				t.Errorf("policy %s: entry %d changed: %v vs %v", policy, i, second[i], first[i])
			}
		}
	}
}
