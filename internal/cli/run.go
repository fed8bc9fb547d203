package cli

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/corpusling/connalign"
	"github.com/corpusling/connalign/corpus"
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCommand() *cobra.Command {
	cfg := connalign.DefaultRunConfig()
	var configPath string

	cmd := &cobra.Command{
		Use:   "run ALIGNMENT SOURCE_CORPUS TARGET_CORPUS",
		Short: "Bootstrap a connective alignment from a word-aligned parallel corpus",
		Args:  cobra.ExactArgs(3),
		Example: `  # Concession connectives from a German-French Europarl slice
  connalign run de-fr.align europarl.de europarl.fr

  # Another relation, more iterations
  connalign run de-fr.align europarl.de europarl.fr --relation contrast --iterations 5

  # Open with the German seeds instead of the French ones
  connalign run de-fr.align europarl.de europarl.fr --start de

  # Strict filtering: share and count must both pass
  connalign run de-fr.align europarl.de europarl.fr --policy all --word-count 30

  # Full inventories instead of a single relation
  connalign run de-fr.align europarl.de europarl.fr --relation ""

  # Defaults from a YAML file, flags still win
  connalign run de-fr.align europarl.de europarl.fr --config run.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				fileCfg, err := connalign.LoadRunConfig(configPath)
				if err != nil {
					return err
				}
				mergeFlags(cmd, &fileCfg, cfg)
				cfg = fileCfg
			}
			cfg.Alignment, cfg.SourceCorpus, cfg.TargetCorpus = args[0], args[1], args[2]

			slog.Info("Bootstrapping connectives",
				"relation", cfg.Relation, "start", cfg.Start, "iterations", cfg.Iterations)
			start := time.Now()
			report, err := connalign.Run(cfg)
			if err != nil {
				return err
			}
			slog.Debug("Run completed",
				"duration", time.Since(start), "pairings", len(report.Result.Pairings))

			langs := make([]string, 0, len(report.Result.Final))
			for lang := range report.Result.Final {
				langs = append(langs, string(lang))
			}
			sort.Strings(langs)
			for _, lang := range langs {
				fmt.Printf("%s: %d connectives\n", lang, len(report.Result.Final[corpus.Language(lang)]))
			}
			for _, path := range report.Files {
				fmt.Printf("wrote %s\n", path)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.Relation, "relation", cfg.Relation, "Discourse relation to bootstrap (empty runs the full lexicons)")
	f.StringVar((*string)(&cfg.Start), "start", string(cfg.Start), "Language whose seeds open the first iteration")
	f.StringVar((*string)(&cfg.SourceLang), "source-lang", string(cfg.SourceLang), "Language of SOURCE_CORPUS, the left side of each alignment link")
	f.StringVar((*string)(&cfg.TargetLang), "target-lang", string(cfg.TargetLang), "Language of TARGET_CORPUS")
	f.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "Number of bootstrap iterations")
	f.Float64Var(&cfg.WordThreshold, "word-threshold", cfg.WordThreshold, "Minimum translation share for single-word candidates")
	f.Float64Var(&cfg.PhraseThreshold, "phrase-threshold", cfg.PhraseThreshold, "Minimum translation share for multi-word candidates")
	f.IntVar(&cfg.WordCount, "word-count", cfg.WordCount, "Minimum occurrences for single-word candidates")
	f.IntVar(&cfg.PhraseCount, "phrase-count", cfg.PhraseCount, "Minimum occurrences for multi-word candidates")
	f.StringVar(&cfg.Policy, "policy", cfg.Policy, `Filter policy: "any" passes on share or count, "all" needs both`)
	f.BoolVar(&cfg.CountEmbedded, "count-embedded", false, "Also count single-word seeds inside longer matches")
	f.BoolVar(&cfg.StopWhenStable, "stop-when-stable", false, "Stop early when an iteration adds no new connectives")
	f.StringVar(&cfg.LexiconDir, "lexicon-dir", cfg.LexiconDir, "Directory with dimlex.xml, lexconn.xml and relation files")
	f.StringVar(&cfg.OutDir, "out-dir", cfg.OutDir, "Directory for the saved tables and diagrams")
	f.BoolVar(&cfg.ShowRelation, "show-relation", false, "Annotate saved connectives with their discourse senses")
	f.BoolVar(&cfg.Diagram, "diagram", cfg.Diagram, "Render a sankey diagram per direction")
	f.StringVar(&configPath, "config", "", "YAML file with run settings (explicit flags take precedence)")
	return cmd
}

// mergeFlags keeps explicitly set flag values on top of a config file.
func mergeFlags(cmd *cobra.Command, dst *connalign.RunConfig, flags connalign.RunConfig) {
	apply := map[string]func(){
		"relation":         func() { dst.Relation = flags.Relation },
		"start":            func() { dst.Start = flags.Start },
		"source-lang":      func() { dst.SourceLang = flags.SourceLang },
		"target-lang":      func() { dst.TargetLang = flags.TargetLang },
		"iterations":       func() { dst.Iterations = flags.Iterations },
		"word-threshold":   func() { dst.WordThreshold = flags.WordThreshold },
		"phrase-threshold": func() { dst.PhraseThreshold = flags.PhraseThreshold },
		"word-count":       func() { dst.WordCount = flags.WordCount },
		"phrase-count":     func() { dst.PhraseCount = flags.PhraseCount },
		"policy":           func() { dst.Policy = flags.Policy },
		"count-embedded":   func() { dst.CountEmbedded = flags.CountEmbedded },
		"stop-when-stable": func() { dst.StopWhenStable = flags.StopWhenStable },
		"lexicon-dir":      func() { dst.LexiconDir = flags.LexiconDir },
		"out-dir":          func() { dst.OutDir = flags.OutDir },
		"show-relation":    func() { dst.ShowRelation = flags.ShowRelation },
		"diagram":          func() { dst.Diagram = flags.Diagram },
	}
	for name, set := range apply {
		if cmd.Flags().Changed(name) {
			set()
		}
	}
}
