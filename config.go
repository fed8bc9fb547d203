package connalign

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/corpusling/connalign/align"
	"github.com/corpusling/connalign/corpus"
)

// RunConfig collects everything one bootstrapping run needs: the input
// files, the engine parameters, and the output targets. The zero value
// is not usable; start from DefaultRunConfig.
type RunConfig struct {
	// Alignment is the pharaoh word alignment file, one line per
	// sentence pair. Each link i-j relates token i of the source
	// corpus to token j of the target corpus.
	Alignment    string          `yaml:"alignment"`
	SourceCorpus string          `yaml:"source-corpus"`
	TargetCorpus string          `yaml:"target-corpus"`
	SourceLang   corpus.Language `yaml:"source-lang"`
	TargetLang   corpus.Language `yaml:"target-lang"`

	// Relation picks the seed connectives from the lexicons. Empty
	// runs the full inventories and labels the output "all".
	Relation string `yaml:"relation"`
	// Start is the language whose seeds open the first iteration.
	Start           corpus.Language `yaml:"start"`
	Iterations      int             `yaml:"iterations"`
	WordThreshold   float64         `yaml:"word-threshold"`
	PhraseThreshold float64         `yaml:"phrase-threshold"`
	WordCount       int             `yaml:"word-count"`
	PhraseCount     int             `yaml:"phrase-count"`
	// Policy is "any" (share or count suffices) or "all" (both must
	// pass).
	Policy         string `yaml:"policy"`
	CountEmbedded  bool   `yaml:"count-embedded"`
	StopWhenStable bool   `yaml:"stop-when-stable"`

	// LexiconDir holds dimlex.xml, lexconn.xml and the optional
	// *_relations.json sense and grouping files.
	LexiconDir string `yaml:"lexicon-dir"`
	OutDir     string `yaml:"out-dir"`
	// ShowRelation appends the annotated senses to every connective in
	// the saved tables.
	ShowRelation bool `yaml:"show-relation"`
	// Diagram renders a sankey chart per direction next to the tables.
	Diagram bool `yaml:"diagram"`
}

// DefaultRunConfig returns the thresholds tuned on Europarl and the
// conventional fr/de language tags.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		SourceLang:      "de",
		TargetLang:      "fr",
		Relation:        "concession",
		Start:           "fr",
		Iterations:      3,
		WordThreshold:   0.021,
		PhraseThreshold: 0.014,
		WordCount:       20,
		PhraseCount:     10,
		Policy:          "any",
		LexiconDir:      "lexicons",
		OutDir:          ".",
		Diagram:         true,
	}
}

// LoadRunConfig reads a YAML run configuration layered over the
// defaults, so a file only lists the keys it changes.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("connalign: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("connalign: parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c RunConfig) validate() error {
	if c.Alignment == "" || c.SourceCorpus == "" || c.TargetCorpus == "" {
		return fmt.Errorf("connalign: alignment and both corpus files are required")
	}
	langs := map[corpus.Language]bool{c.SourceLang: true, c.TargetLang: true}
	if !langs["fr"] || !langs["de"] {
		return fmt.Errorf("connalign: corpus languages must be fr and de, got %q and %q",
			c.SourceLang, c.TargetLang)
	}
	if c.Start != c.SourceLang && c.Start != c.TargetLang {
		return fmt.Errorf("connalign: start language %q is neither %q nor %q",
			c.Start, c.SourceLang, c.TargetLang)
	}
	return nil
}

// other returns the run language that is not start.
func (c RunConfig) other() corpus.Language {
	if c.Start == c.SourceLang {
		return c.TargetLang
	}
	return c.SourceLang
}

func (c RunConfig) engineConfig(profiles map[corpus.Language]align.Profile) (align.Config, error) {
	policy, err := align.ParsePolicy(c.Policy)
	if err != nil {
		return align.Config{}, err
	}
	return align.Config{
		Start:           c.Start,
		Iterations:      c.Iterations,
		WordThreshold:   c.WordThreshold,
		PhraseThreshold: c.PhraseThreshold,
		WordCount:       c.WordCount,
		PhraseCount:     c.PhraseCount,
		Policy:          policy,
		CountEmbedded:   c.CountEmbedded,
		StopWhenStable:  c.StopWhenStable,
		Profiles:        profiles,
	}, nil
}
