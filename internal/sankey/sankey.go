// Package sankey collapses accepted connective alignments into
// discourse relation flows and renders them as a sankey diagram.
package sankey

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/corpusling/connalign/lexicon"
)

// Flow is one aggregated edge between a source-side and a target-side
// relation label. Value is the flow's share of its source label scaled
// by the number of connectives carrying that label.
type Flow struct {
	Source string
	Target string
	Value  float64
}

// BuildFlows reduces a per-connective share table to relation-level
// flows. Each connective is represented by its sense labels, collapsed
// to the middle level of the sense hierarchy; connectives without any
// sense annotation are left out.
func BuildFlows(shares map[string]map[string]float64, sourceSenses, targetSenses lexicon.SenseMap) []Flow {
	type group struct {
		conns int
		flows map[string]float64
	}
	groups := make(map[string]*group)

	for _, source := range sortedKeys(shares) {
		sourceLabel, ok := relationLabel(sourceSenses[source])
		if !ok {
			continue
		}
		g := groups[sourceLabel]
		if g == nil {
			g = &group{flows: make(map[string]float64)}
			groups[sourceLabel] = g
		}
		g.conns++
		targets := shares[source]
		for _, target := range sortedKeys(targets) {
			targetLabel, ok := relationLabel(targetSenses[target])
			if !ok {
				continue
			}
			g.flows[targetLabel] += targets[target]
		}
	}

	var flows []Flow
	for _, sourceLabel := range sortedKeys(groups) {
		g := groups[sourceLabel]
		total := 0.0
		for _, v := range g.flows {
			total += v
		}
		if total == 0 {
			continue
		}
		for _, targetLabel := range sortedKeys(g.flows) {
			flows = append(flows, Flow{
				Source: sourceLabel,
				Target: targetLabel,
				Value:  g.flows[targetLabel] / total * float64(g.conns),
			})
		}
	}
	return flows
}

// relationLabel collapses sense strings like
// "COMPARISON:Concession:Arg2-as-denier" to their relation level and
// joins the distinct results ("Concession, Contrast").
func relationLabel(senses []string) (string, bool) {
	seen := make(map[string]bool)
	var labels []string
	for _, sense := range senses {
		if _, rest, ok := strings.Cut(sense, ":"); ok {
			sense = rest
		}
		if rel, _, ok := strings.Cut(sense, ":"); ok {
			sense = rel
		}
		label := capitalize(sense)
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		labels = append(labels, label)
	}
	if len(labels) == 0 {
		return "", false
	}
	sort.Strings(labels)
	return strings.Join(labels, ", "), true
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// Render writes the flows as a sankey diagram HTML page, labelling the
// two sides with their language tags.
func Render(w io.Writer, flows []Flow, from, to, relation string) error {
	diagram := charts.NewSankey()
	diagram.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "connalign"}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Discourse relation mapping (%s, %s to %s)", relation, from, to),
		}),
	)

	seen := make(map[string]bool)
	var nodes []opts.SankeyNode
	var links []opts.SankeyLink
	for _, f := range flows {
		source := from + ": " + f.Source
		target := to + ": " + f.Target
		for _, name := range []string{source, target} {
			if !seen[name] {
				seen[name] = true
				nodes = append(nodes, opts.SankeyNode{Name: name})
			}
		}
		links = append(links, opts.SankeyLink{
			Source: source,
			Target: target,
			Value:  float32(f.Value),
		})
	}

	diagram.AddSeries(relation, nodes, links,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: "source", Curveness: 0.5}),
	)
	return diagram.Render(w)
}

// WriteHTML renders the flows into an HTML file.
func WriteHTML(path string, flows []Flow, from, to, relation string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create diagram: %w", err)
	}
	if err := Render(f, flows, from, to, relation); err != nil {
		f.Close()
		return fmt.Errorf("render diagram: %w", err)
	}
	return f.Close()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
