package align

import (
	"fmt"

	"github.com/corpusling/connalign/corpus"
)

// Policy selects how the relative and absolute frequency thresholds
// combine when a candidate is tested.
type Policy int

const (
	// PolicyAny accepts a candidate that clears either threshold.
	PolicyAny Policy = iota
	// PolicyAll accepts a candidate only when it clears both.
	PolicyAll
)

func (p Policy) String() string {
	switch p {
	case PolicyAny:
		return "any"
	case PolicyAll:
		return "all"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy converts the command line spelling of a policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "any":
		return PolicyAny, nil
	case "all":
		return PolicyAll, nil
	}
	return 0, fmt.Errorf("unknown threshold policy %q (expected any or all)", s)
}

// Config carries all tunable settings of a bootstrap run.
type Config struct {
	// Start is the language whose seed connectives drive the first
	// iteration.
	Start corpus.Language

	// Iterations is the number of extraction rounds. Zero is allowed
	// and leaves the seed sets untouched.
	Iterations int

	// WordThreshold and PhraseThreshold are the minimum share of
	// occurrences a single-word or multi-word candidate must reach.
	WordThreshold   float64
	PhraseThreshold float64

	// WordCount and PhraseCount are the absolute occurrence minimums.
	WordCount   int
	PhraseCount int

	// Policy combines the relative and absolute tests. The zero value
	// is PolicyAny.
	Policy Policy

	// CountEmbedded additionally counts single-word connectives inside
	// a longer match. When false the longest match wins alone.
	CountEmbedded bool

	// StopWhenStable ends the run early once an iteration adds no new
	// connective to either language.
	StopWhenStable bool

	// Profiles holds per-language cleanup word lists, keyed by the
	// language whose spans they groom.
	Profiles map[corpus.Language]Profile
}

func (c Config) validate() error {
	if c.Start == "" {
		return &InvalidConfigError{Field: "start language", Reason: "is empty"}
	}
	if c.Iterations < 0 {
		return &InvalidConfigError{Field: "iterations", Reason: "must not be negative"}
	}
	if c.WordThreshold < 0 || c.WordThreshold > 1 {
		return &InvalidConfigError{Field: "word threshold", Reason: "must be between 0 and 1"}
	}
	if c.PhraseThreshold < 0 || c.PhraseThreshold > 1 {
		return &InvalidConfigError{Field: "phrase threshold", Reason: "must be between 0 and 1"}
	}
	if c.WordCount < 0 {
		return &InvalidConfigError{Field: "word count", Reason: "must not be negative"}
	}
	if c.PhraseCount < 0 {
		return &InvalidConfigError{Field: "phrase count", Reason: "must not be negative"}
	}
	if c.Policy != PolicyAny && c.Policy != PolicyAll {
		return &InvalidConfigError{Field: "threshold policy", Reason: "is unknown"}
	}
	return nil
}

// profile returns the cleanup profile for a language, or an empty one.
func (c Config) profile(lang corpus.Language) Profile {
	return c.Profiles[lang]
}
