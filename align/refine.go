package align

import (
	"sort"
	"strings"

	"github.com/corpusling/connalign/internal/textnorm"
)

// A span whose share stays below weakShare counts as weakly supported.
// A weakly supported phrase contained in another phrase survives only
// when its share is at least dominanceRatio times the outer one.
const (
	weakShare      = 0.18
	dominanceRatio = 3.0
)

// Refine grooms the filtered alignments of each source connective with
// the target language profile: spans ending in or equal to suspect
// words go, weakly supported spans shadowed by longer ones go, junk
// singles and pronoun spans go, and spans matched across an unfilled
// gap are completed from the full lexicon. Shares keep their original
// denominator.
func Refine(accepted map[string][]Accepted, p Profile) map[string][]Accepted {
	refined := make(map[string][]Accepted, len(accepted))
	for source, entries := range accepted {
		byTarget := make(map[string]Accepted, len(entries))
		for _, a := range entries {
			byTarget[a.Target] = a
		}
		dropSuspects(byTarget, p)
		dropIncompleteGaps(byTarget)
		dropJunkSingles(byTarget, p)
		dropPronounSpans(byTarget, p)
		completeGaps(byTarget, p)
		if len(byTarget) > 0 {
			refined[source] = sortAccepted(byTarget)
		}
	}
	return refined
}

// dropSuspects removes spans ending in a suspect word, suspect single
// words, and weakly supported spans that merely echo a longer span.
func dropSuspects(byTarget map[string]Accepted, p Profile) {
	for _, target := range sortedTargets(byTarget) {
		tokens := strings.Fields(target)
		if len(tokens) > 1 && p.SuspectWords[tokens[len(tokens)-1]] {
			delete(byTarget, target)
		}
	}
	for target := range byTarget {
		if !isPhrase(target) && p.SuspectWords[target] {
			delete(byTarget, target)
		}
	}
	for _, target := range sortedTargets(byTarget) {
		a := byTarget[target]
		if isPhrase(target) || a.Share >= weakShare {
			continue
		}
		for other := range byTarget {
			if other != target && isPhrase(other) && containsToken(strings.Fields(other), target) {
				delete(byTarget, target)
				break
			}
		}
	}
	for _, target := range sortedTargets(byTarget) {
		a := byTarget[target]
		if !isPhrase(target) || a.Share >= weakShare {
			continue
		}
		inner := strings.Fields(target)
		for other, b := range byTarget {
			if other == target || !isPhrase(other) {
				continue
			}
			if indexOfRun(strings.Fields(other), inner, 0) < 0 {
				continue
			}
			if a.Share/b.Share < dominanceRatio {
				delete(byTarget, target)
				break
			}
		}
	}
}

// dropIncompleteGaps removes a gapped span once a fully realized span
// with the same first and last word survives alongside it.
func dropIncompleteGaps(byTarget map[string]Accepted) {
	for _, target := range sortedTargets(byTarget) {
		tokens := strings.Fields(target)
		if len(tokens) < 3 || !containsToken(tokens, GapMarker) {
			continue
		}
		for other := range byTarget {
			if other != target && completesGap(tokens, strings.Fields(other)) {
				delete(byTarget, target)
				break
			}
		}
	}
}

func dropJunkSingles(byTarget map[string]Accepted, p Profile) {
	for target := range byTarget {
		if !isPhrase(target) && p.JunkWords[target] {
			delete(byTarget, target)
		}
	}
}

func dropPronounSpans(byTarget map[string]Accepted, p Profile) {
	if len(p.Pronouns) == 0 {
		return
	}
	for target := range byTarget {
		for _, t := range strings.Fields(target) {
			if p.Pronouns[t] {
				delete(byTarget, target)
				break
			}
		}
	}
}

// completeGaps rewrites a surviving gapped span to the lexicon
// connective realizing it, keeping its counts.
func completeGaps(byTarget map[string]Accepted, p Profile) {
	if len(p.FullLexicon) == 0 {
		return
	}
	for _, target := range sortedTargets(byTarget) {
		tokens := strings.Fields(target)
		if len(tokens) < 3 || !containsToken(tokens, GapMarker) {
			continue
		}
		for _, entry := range p.FullLexicon {
			full := strings.Fields(entry)
			if !completesGap(tokens, full) {
				continue
			}
			a := byTarget[target]
			delete(byTarget, target)
			a.Target = strings.Join(full, " ")
			byTarget[a.Target] = a
			break
		}
	}
}

// completesGap reports whether full realizes the gapped token run:
// same first and last word, at least three words, alphabetic
// throughout, without a gap of its own, and not just the gapped run
// with its marker dropped.
func completesGap(gapped, full []string) bool {
	if len(full) < 3 || containsToken(full, GapMarker) {
		return false
	}
	if full[0] != gapped[0] || full[len(full)-1] != gapped[len(gapped)-1] {
		return false
	}
	for _, t := range full {
		if !textnorm.IsAlpha(t) {
			return false
		}
	}
	return !tokensEqual(withoutGap(gapped), full)
}

// withoutGap drops the first gap marker from the run.
func withoutGap(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	dropped := false
	for _, t := range tokens {
		if !dropped && t == GapMarker {
			dropped = true
			continue
		}
		out = append(out, t)
	}
	return out
}

func tokensEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func containsToken(tokens []string, want string) bool {
	for _, t := range tokens {
		if t == want {
			return true
		}
	}
	return false
}

func sortedTargets(byTarget map[string]Accepted) []string {
	targets := make([]string, 0, len(byTarget))
	for t := range byTarget {
		targets = append(targets, t)
	}
	sort.Strings(targets)
	return targets
}

func sortAccepted(byTarget map[string]Accepted) []Accepted {
	entries := make([]Accepted, 0, len(byTarget))
	for _, a := range byTarget {
		entries = append(entries, a)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Target < entries[j].Target
	})
	return entries
}
