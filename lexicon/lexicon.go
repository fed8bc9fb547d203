// Package lexicon loads connective lexicons and the discourse sense
// annotations that group them into relations.
package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/corpusling/connalign/align"
	"github.com/corpusling/connalign/corpus"
)

// Lexicon is the connective inventory of one language, lowercased and
// tokenized. Discontinuous connectives carry the gap marker between
// their parts.
type Lexicon struct {
	Lang  corpus.Language
	Forms []string
}

// New returns a lexicon with empty forms and duplicates removed and
// the rest sorted.
func New(lang corpus.Language, forms ...string) *Lexicon {
	seen := make(map[string]bool, len(forms))
	unique := make([]string, 0, len(forms))
	for _, f := range forms {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		unique = append(unique, f)
	}
	sort.Strings(unique)
	return &Lexicon{Lang: lang, Forms: unique}
}

// Set returns the full inventory as a connective set.
func (l *Lexicon) Set() *align.Set {
	return align.NewSet(l.Forms...)
}

// ForRelation keeps the forms annotated with at least one sense from
// the relation's group. Forms without any sense annotation are
// dropped.
func (l *Lexicon) ForRelation(senses SenseMap, groups Groups, relation string) ([]string, error) {
	group, ok := groups[relation]
	if !ok {
		return nil, &align.UnknownRelationError{Relation: relation}
	}
	want := make(map[string]bool, len(group))
	for _, s := range group {
		want[s] = true
	}
	var kept []string
	for _, form := range l.Forms {
		for _, s := range senses[form] {
			if want[s] {
				kept = append(kept, form)
				break
			}
		}
	}
	return kept, nil
}

// SenseMap maps a connective form to its discourse senses, written the
// way the lexicons annotate them ("COMPARISON:Concession:Arg2-as-denier").
type SenseMap map[string][]string

// ReadSenses loads a sense map from a JSON file keyed by form.
func ReadSenses(path string) (SenseMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read senses: %w", err)
	}
	var senses SenseMap
	if err := json.Unmarshal(data, &senses); err != nil {
		return nil, fmt.Errorf("parse senses %s: %w", path, err)
	}
	return senses, nil
}
