package connalign

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/corpusling/connalign/align"
	"github.com/corpusling/connalign/internal/sankey"
	"github.com/corpusling/connalign/lexicon"
)

// export writes the share table and optional sankey diagram for every
// direction that produced pairings. Files follow the
// <from>_<to>_connectives_alignment_<relation>.json convention.
func export(cfg RunConfig, result *align.Result, inv *inventories) ([]string, error) {
	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("connalign: create %s: %w", cfg.OutDir, err)
	}

	first := align.Direction{From: cfg.Start, To: cfg.other()}
	var files []string
	for _, dir := range []align.Direction{first, first.Reverse()} {
		table, ok := result.Tables[dir.String()]
		if !ok || len(table.Shares) == 0 {
			continue
		}

		shares := table.Shares
		if cfg.ShowRelation {
			shares = decorate(shares, inv.senses(dir.From), inv.senses(dir.To))
		}
		name := fmt.Sprintf("%s_%s_connectives_alignment_%s.json", dir.From, dir.To, result.Relation)
		path := filepath.Join(cfg.OutDir, name)
		if err := writeJSON(path, shares); err != nil {
			return nil, fmt.Errorf("connalign: %w", err)
		}
		files = append(files, path)

		if !cfg.Diagram {
			continue
		}
		flows := sankey.BuildFlows(table.Shares, inv.senses(dir.From), inv.senses(dir.To))
		if len(flows) == 0 {
			continue
		}
		name = fmt.Sprintf("%s_%s_%s_mapping.html", dir.From, dir.To, result.Relation)
		path = filepath.Join(cfg.OutDir, name)
		if err := sankey.WriteHTML(path, flows, string(dir.From), string(dir.To), result.Relation); err != nil {
			return nil, fmt.Errorf("connalign: %w", err)
		}
		files = append(files, path)
	}
	return files, nil
}

// decorate appends the annotated senses to every connective, so the
// saved table reads "obwohl (COMPARISON:Concession:Arg2-as-denier)".
func decorate(shares map[string]map[string]float64, sourceSenses, targetSenses lexicon.SenseMap) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(shares))
	for source, targets := range shares {
		row := make(map[string]float64, len(targets))
		for target, share := range targets {
			row[withSenses(target, targetSenses)] = share
		}
		out[withSenses(source, sourceSenses)] = row
	}
	return out
}

func withSenses(form string, senses lexicon.SenseMap) string {
	list := senses[form]
	if len(list) == 0 {
		return form
	}
	return form + " (" + strings.Join(list, ", ") + ")"
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
