package align

import (
	"fmt"
	"strings"

	"github.com/corpusling/connalign/corpus"
	"github.com/corpusling/connalign/internal/textnorm"
)

// GapMarker separates the parts of a discontinuous connective, as in
// "wenn ... auch".
const GapMarker = "..."

// Candidate is one aligned occurrence of a connective: the surface
// form that matched and the target-side span it is aligned to.
type Candidate struct {
	Source string
	Target string
}

// ExtractOptions tune a single extraction pass.
type ExtractOptions struct {
	// Profile grooms the extracted spans. It belongs to the target
	// language of the pass.
	Profile Profile

	// CountEmbedded also matches single-word connectives inside a
	// longer winning match.
	CountEmbedded bool
}

// Extractor scans a sentence pair corpus for connective occurrences
// and collects the spans they are aligned to.
type Extractor struct {
	pair  *corpus.Pair
	index *Index
}

// NewExtractor returns an extractor over the pair and its alignment
// index.
func NewExtractor(pair *corpus.Pair, index *Index) *Extractor {
	return &Extractor{pair: pair, index: index}
}

// Extract finds every occurrence of a set member on the dir.From side
// and pairs it with the minimal contiguous span covering its aligned
// tokens on the dir.To side. At each position the longest contiguous
// member wins; shorter members inside it are counted only when
// opts.CountEmbedded is set. Occurrences whose tokens carry no
// alignment link are skipped entirely.
func (e *Extractor) Extract(set *Set, dir Direction, opts ExtractOptions) ([]Candidate, error) {
	if !e.pair.Has(dir.From) || e.pair.Other(dir.From) != dir.To {
		return nil, fmt.Errorf("direction %s does not match the corpus pair", dir)
	}
	from, _ := e.pair.Corpus(dir.From)
	to, _ := e.pair.Corpus(dir.To)
	m := newMatcher(set)
	var cands []Candidate
	for s := 0; s < e.pair.Len(); s++ {
		tgtTokens := to.Tokens(s)
		for _, o := range m.occurrences(from.Tokens(s), opts.CountEmbedded) {
			span, ok := e.alignedSpan(s, dir.From, o.positions, tgtTokens, opts.Profile)
			if !ok {
				continue
			}
			cands = append(cands, Candidate{Source: o.form, Target: span})
		}
	}
	return cands, nil
}

// alignedSpan maps source positions through the index and returns the
// groomed text of the minimal contiguous target span covering all
// their partners. ok is false when no token is aligned or the span is
// groomed away.
func (e *Extractor) alignedSpan(sentence int, from corpus.Language, positions []int, tgtTokens []string, p Profile) (string, bool) {
	var aligned []int
	for _, pos := range positions {
		aligned = append(aligned, e.index.Aligned(sentence, from, pos)...)
	}
	if len(aligned) == 0 {
		return "", false
	}
	lo, hi := aligned[0], aligned[0]
	for _, t := range aligned[1:] {
		if t < lo {
			lo = t
		}
		if t > hi {
			hi = t
		}
	}
	span := cleanSpan(tgtTokens[lo:hi+1], p)
	if len(span) == 0 {
		return "", false
	}
	return strings.Join(span, " "), true
}

// cleanSpan strips punctuation off the edges of a span and rewrites a
// span-final contraction to its citation form. A span consisting of
// punctuation only is groomed away.
func cleanSpan(tokens []string, p Profile) []string {
	lo, hi := 0, len(tokens)
	for lo < hi && textnorm.IsPunct(tokens[lo]) {
		lo++
	}
	for lo < hi && textnorm.IsPunct(tokens[hi-1]) {
		hi--
	}
	if lo == hi {
		return nil
	}
	span := append([]string(nil), tokens[lo:hi]...)
	last := len(span) - 1
	if full, ok := p.Contractions[span[last]]; ok {
		span[last] = full
	}
	return span
}

type occurrence struct {
	form      string
	positions []int
}

// matcher indexes a connective set for scanning: contiguous forms by
// their space-joined token run, discontinuous ones as ordered part
// lists.
type matcher struct {
	runs   map[string]bool
	maxRun int
	gapped []gappedForm
}

type gappedForm struct {
	form  string
	parts [][]string
}

func newMatcher(set *Set) *matcher {
	m := &matcher{runs: make(map[string]bool)}
	for _, form := range set.Forms() {
		if strings.Contains(form, GapMarker) {
			if g, ok := splitGapped(form); ok {
				m.gapped = append(m.gapped, g)
			}
			continue
		}
		tokens := strings.Fields(form)
		if len(tokens) == 0 {
			continue
		}
		m.runs[strings.Join(tokens, " ")] = true
		if len(tokens) > m.maxRun {
			m.maxRun = len(tokens)
		}
	}
	return m
}

func splitGapped(form string) (gappedForm, bool) {
	g := gappedForm{form: form}
	for _, part := range strings.Split(form, GapMarker) {
		tokens := strings.Fields(part)
		if len(tokens) == 0 {
			continue
		}
		g.parts = append(g.parts, tokens)
	}
	return g, len(g.parts) >= 2
}

// occurrences scans the tokens left to right. The longest run match at
// a position consumes it; embedded single-word members are reported
// additionally when requested. Each discontinuous form is matched at
// most once, at the first position where all its parts occur in order.
func (m *matcher) occurrences(tokens []string, embedded bool) []occurrence {
	var occ []occurrence
	for i := 0; i < len(tokens); {
		run := 0
		max := m.maxRun
		if rest := len(tokens) - i; rest < max {
			max = rest
		}
		for k := max; k >= 1; k-- {
			if m.runs[strings.Join(tokens[i:i+k], " ")] {
				run = k
				break
			}
		}
		if run == 0 {
			i++
			continue
		}
		occ = append(occ, occurrence{
			form:      strings.Join(tokens[i:i+run], " "),
			positions: runPositions(i, run),
		})
		if embedded && run > 1 {
			for j := i; j < i+run; j++ {
				if m.runs[tokens[j]] {
					occ = append(occ, occurrence{form: tokens[j], positions: []int{j}})
				}
			}
		}
		i += run
	}
	for _, g := range m.gapped {
		if positions, ok := matchGapped(tokens, g.parts); ok {
			occ = append(occ, occurrence{form: g.form, positions: positions})
		}
	}
	return occ
}

// matchGapped looks for the parts one after another, each at its first
// occurrence past the previous part. Parts may end up adjacent.
func matchGapped(tokens []string, parts [][]string) ([]int, bool) {
	var positions []int
	next := 0
	for _, part := range parts {
		at := indexOfRun(tokens, part, next)
		if at < 0 {
			return nil, false
		}
		positions = append(positions, runPositions(at, len(part))...)
		next = at + len(part)
	}
	return positions, true
}

func indexOfRun(tokens, run []string, from int) int {
	for i := from; i+len(run) <= len(tokens); i++ {
		found := true
		for j, want := range run {
			if tokens[i+j] != want {
				found = false
				break
			}
		}
		if found {
			return i
		}
	}
	return -1
}

func runPositions(start, length int) []int {
	positions := make([]int, length)
	for i := range positions {
		positions[i] = start + i
	}
	return positions
}
