package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/corpusling/connalign/corpus"
	"github.com/spf13/cobra"
)

func (c *CLI) newStatsCommand() *cobra.Command {
	var sourceLang, targetLang string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats ALIGNMENT SOURCE_CORPUS TARGET_CORPUS",
		Short: "Describe a corpus pair and its alignment coverage",
		Args:  cobra.ExactArgs(3),
		Example: `  connalign stats de-fr.align europarl.de europarl.fr
  connalign stats de-fr.align europarl.de europarl.fr --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			opts := corpus.DefaultReadOptions()
			source, err := corpus.ReadCorpus(args[1], corpus.Language(sourceLang), opts)
			if err != nil {
				return err
			}
			target, err := corpus.ReadCorpus(args[2], corpus.Language(targetLang), opts)
			if err != nil {
				return err
			}
			pair, err := corpus.NewPair(source, target)
			if err != nil {
				return err
			}
			links, err := corpus.ReadPharaoh(args[0])
			if err != nil {
				return err
			}

			stats := corpus.Describe(pair, links)
			slog.Debug("Stats computed", "duration", time.Since(start))

			if asJSON {
				out, _ := json.MarshalIndent(stats, "", "  ")
				fmt.Println(string(out))
				return nil
			}

			fmt.Printf("Sentences: %d  Links: %d  Unaligned sentences: %d\n",
				stats.Sentences, stats.Links, stats.UnalignedSentences)
			fmt.Printf("Links per sentence: mean %.1f, stddev %.1f\n",
				stats.MeanLinks, stats.StdDevLinks)

			fmt.Printf("\n%4s  %10s  %9s  %10s  %9s\n",
				"side", "tokens", "mean len", "aligned", "coverage")
			langs := make([]string, 0, len(stats.Sides))
			for lang := range stats.Sides {
				langs = append(langs, string(lang))
			}
			sort.Strings(langs)
			for _, lang := range langs {
				side := stats.Sides[corpus.Language(lang)]
				fmt.Printf("%4s  %10d  %9.1f  %10d  %8.1f%%\n",
					lang, side.Tokens, side.MeanLen, side.AlignedTokens, side.AlignedShare*100)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sourceLang, "source-lang", "de", "Language of SOURCE_CORPUS")
	cmd.Flags().StringVar(&targetLang, "target-lang", "fr", "Language of TARGET_CORPUS")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the statistics as JSON")
	return cmd
}
