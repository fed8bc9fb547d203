package lexicon

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/corpusling/connalign/align"
	"github.com/corpusling/connalign/internal/textnorm"
)

// ReadDimLex parses the DimLex lexicon of German connectives.
// Continuous orth variants become tokenized forms, discontinuous ones
// join their parts with the gap marker. Abbreviation periods stay
// attached ("z.b." remains one token, the way it appears in corpora).
func ReadDimLex(r io.Reader) (*Lexicon, error) {
	lower := textnorm.Lowercaser("de")
	forms, err := readOrths(r, func(text string) string {
		tokens := textnorm.TokenizeGerman(lower.String(textnorm.NFKC(text)))
		return strings.Join(mergeAbbrevDot(tokens), " ")
	})
	if err != nil {
		return nil, fmt.Errorf("parse dimlex: %w", err)
	}
	return New("de", forms...), nil
}

// ReadDimLexFile reads a DimLex XML file.
func ReadDimLexFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dimlex: %w", err)
	}
	defer f.Close()
	return ReadDimLex(f)
}

// ReadLexConn parses the LexConn lexicon of French connectives. The
// clitic-aware tokenizer keeps elisions attached to their apostrophe,
// so "d'abord" becomes "d' abord".
func ReadLexConn(r io.Reader) (*Lexicon, error) {
	lower := textnorm.Lowercaser("fr")
	forms, err := readOrths(r, func(text string) string {
		tokens := textnorm.TokenizeFrench(lower.String(textnorm.NFKC(text)))
		return strings.Join(tokens, " ")
	})
	if err != nil {
		return nil, fmt.Errorf("parse lexconn: %w", err)
	}
	return New("fr", forms...), nil
}

// ReadLexConnFile reads a LexConn XML file.
func ReadLexConnFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexconn: %w", err)
	}
	defer f.Close()
	return ReadLexConn(f)
}

// ReadDimLexSenses extracts the discourse senses DimLex annotates per
// entry and keys them by connective form. DimLex writes senses dotted
// ("Comparison.Concession.Arg2-as-denier"); they are rewritten to the
// colon style the relation tables use, with the class level uppercased.
func ReadDimLexSenses(r io.Reader) (SenseMap, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse dimlex: %w", err)
	}
	lower := textnorm.Lowercaser("de")
	form := func(text string) string {
		tokens := textnorm.TokenizeGerman(lower.String(textnorm.NFKC(text)))
		return strings.Join(mergeAbbrevDot(tokens), " ")
	}

	senses := make(SenseMap)
	doc.Find("entry").Each(func(_ int, entry *goquery.Selection) {
		var found []string
		entry.Find("sem pdtb3_relation").Each(func(_ int, rel *goquery.Selection) {
			if s, ok := rel.Attr("sense"); ok {
				if cs := colonSense(s); cs != "" && !slices.Contains(found, cs) {
					found = append(found, cs)
				}
			}
		})
		if len(found) == 0 {
			return
		}
		for _, f := range entryForms(entry, form) {
			for _, s := range found {
				if !slices.Contains(senses[f], s) {
					senses[f] = append(senses[f], s)
				}
			}
		}
	})
	return senses, nil
}

// ReadDimLexSensesFile reads sense annotations from a DimLex XML file.
func ReadDimLexSensesFile(path string) (SenseMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dimlex: %w", err)
	}
	defer f.Close()
	return ReadDimLexSenses(f)
}

// colonSense turns "Comparison.Concession.Arg2-as-denier" into
// "COMPARISON:Concession:Arg2-as-denier".
func colonSense(s string) string {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if parts[0] == "" {
		return ""
	}
	parts[0] = strings.ToUpper(parts[0])
	return strings.Join(parts, ":")
}

// readOrths walks entry/orths/orth and normalizes every variant with
// form. Both lexicons share this layout: orth[type=cont] holds whole
// forms, orth[type=discont] holds the parts of a gapped form.
func readOrths(r io.Reader, form func(string) string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	var forms []string
	doc.Find("entry").Each(func(_ int, entry *goquery.Selection) {
		forms = append(forms, entryForms(entry, form)...)
	})
	return forms, nil
}

func entryForms(entry *goquery.Selection, form func(string) string) []string {
	var forms []string
	entry.Find(`orths orth[type="cont"] part`).Each(func(_ int, part *goquery.Selection) {
		if f := form(part.Text()); f != "" {
			forms = append(forms, f)
		}
	})
	entry.Find(`orths orth[type="discont"]`).Each(func(_ int, orth *goquery.Selection) {
		var parts []string
		orth.Find("part").Each(func(_ int, part *goquery.Selection) {
			if f := form(part.Text()); f != "" {
				parts = append(parts, f)
			}
		})
		if len(parts) >= 2 {
			forms = append(forms, strings.Join(parts, " "+align.GapMarker+" "))
		}
	})
	return forms
}

// mergeAbbrevDot reattaches a lone period to a preceding abbreviation
// token: "z.b", "." becomes "z.b.".
func mergeAbbrevDot(tokens []string) []string {
	var out []string
	for _, t := range tokens {
		if t == "." && len(out) > 0 && strings.Contains(out[len(out)-1], ".") {
			out[len(out)-1] += "."
			continue
		}
		out = append(out, t)
	}
	return out
}
