package align

import (
	"sort"

	"github.com/corpusling/connalign/corpus"
)

// Direction identifies which language drives an iteration: connectives
// of From are matched, aligned spans on the To side are collected.
type Direction struct {
	From corpus.Language
	To   corpus.Language
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{From: d.To, To: d.From}
}

func (d Direction) String() string {
	return string(d.From) + "-" + string(d.To)
}

// Pairing is one accepted correspondence between a source connective
// and a target span, recorded with the iteration that found it.
type Pairing struct {
	Relation  string          `json:"relation"`
	Iteration int             `json:"iteration"`
	From      corpus.Language `json:"from"`
	To        corpus.Language `json:"to"`
	Source    string          `json:"source"`
	Target    string          `json:"target"`
	Count     int             `json:"count"`
	Share     float64         `json:"share"`
}

// Table is the per-direction view of the accepted alignments, keyed by
// source connective and then target span. A later iteration in the
// same direction overwrites a source's row.
type Table struct {
	Shares map[string]map[string]float64 `json:"alignments"`
	Counts map[string]map[string]int     `json:"counts"`
}

// Result collects everything a bootstrap run produced: the pairing log
// across iterations, the per-direction tables and the final connective
// sets of both languages.
type Result struct {
	Relation string                       `json:"relation"`
	Pairings []Pairing                    `json:"pairings"`
	Final    map[corpus.Language][]string `json:"connectives"`
	Tables   map[string]Table             `json:"tables"`
}

// Engine drives the alternating bootstrap over a corpus pair.
type Engine struct {
	pair      *corpus.Pair
	extractor *Extractor
	cfg       Config
}

// NewEngine validates the configuration against the pair and returns a
// ready engine.
func NewEngine(pair *corpus.Pair, index *Index, cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if !pair.Has(cfg.Start) {
		return nil, &InvalidConfigError{Field: "start language", Reason: "is not part of the corpus pair"}
	}
	return &Engine{pair: pair, extractor: NewExtractor(pair, index), cfg: cfg}, nil
}

// DirectionAt returns the direction of the given iteration. The start
// language drives even iterations, its partner the odd ones.
func (e *Engine) DirectionAt(iteration int) Direction {
	d := Direction{From: e.cfg.Start, To: e.pair.Other(e.cfg.Start)}
	if iteration%2 == 1 {
		d = d.Reverse()
	}
	return d
}

// Run bootstraps connective alignments for one discourse relation.
// seeds maps each language to its starting connectives; the start
// language must keep at least one seed once its excluded forms are
// removed. Accepted target spans join the target language's set and
// drive later iterations in the opposite direction. With Iterations
// zero the seed sets are returned untouched.
func (e *Engine) Run(seeds map[corpus.Language]*Set, relation string) (*Result, error) {
	working := make(map[corpus.Language]*Set, 2)
	for _, lang := range []corpus.Language{e.pair.Source.Lang, e.pair.Target.Lang} {
		working[lang] = NewSet()
		seed := seeds[lang]
		if seed == nil {
			continue
		}
		excluded := e.cfg.profile(lang).ExcludedSeeds
		for _, form := range seed.Forms() {
			if !excluded[form] {
				working[lang].Add(form)
			}
		}
	}
	if working[e.cfg.Start].Len() == 0 {
		return nil, &UnknownRelationError{Relation: relation}
	}

	result := &Result{Relation: relation, Tables: make(map[string]Table)}
	for it := 0; it < e.cfg.Iterations; it++ {
		dir := e.DirectionAt(it)
		profile := e.cfg.profile(dir.To)
		cands, err := e.extractor.Extract(working[dir.From], dir, ExtractOptions{
			Profile:       profile,
			CountEmbedded: e.cfg.CountEmbedded,
		})
		if err != nil {
			return nil, err
		}
		accepted := Refine(Filter(cands, e.cfg), profile)

		grew := false
		table := result.table(dir)
		sources := make([]string, 0, len(accepted))
		for source := range accepted {
			sources = append(sources, source)
		}
		sort.Strings(sources)
		for _, source := range sources {
			table.Shares[source] = make(map[string]float64, len(accepted[source]))
			table.Counts[source] = make(map[string]int, len(accepted[source]))
			for _, a := range accepted[source] {
				table.Shares[source][a.Target] = a.Share
				table.Counts[source][a.Target] = a.Count
				result.Pairings = append(result.Pairings, Pairing{
					Relation:  relation,
					Iteration: it,
					From:      dir.From,
					To:        dir.To,
					Source:    source,
					Target:    a.Target,
					Count:     a.Count,
					Share:     a.Share,
				})
				if !profile.ExcludedSeeds[a.Target] && working[dir.To].Add(a.Target) {
					grew = true
				}
			}
		}
		if e.cfg.StopWhenStable && !grew {
			break
		}
	}

	result.Final = map[corpus.Language][]string{
		e.pair.Source.Lang: working[e.pair.Source.Lang].Forms(),
		e.pair.Target.Lang: working[e.pair.Target.Lang].Forms(),
	}
	return result, nil
}

// table returns the result table of a direction, creating it on first
// use.
func (r *Result) table(dir Direction) Table {
	key := dir.String()
	t, ok := r.Tables[key]
	if !ok {
		t = Table{
			Shares: make(map[string]map[string]float64),
			Counts: make(map[string]map[string]int),
		}
		r.Tables[key] = t
	}
	return t
}
