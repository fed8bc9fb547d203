// Package corpus models a tokenized, sentence-aligned parallel corpus
// together with its pharaoh-format word alignment.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/corpusling/connalign/internal/textnorm"
)

// Language tags one side of a parallel corpus ("fr", "de"). The core
// treats tags as opaque identifiers.
type Language string

// Sentence is one tokenized sentence. ID is the 0-based line number,
// shared with the sentence's counterpart in the other language.
type Sentence struct {
	ID     int
	Tokens []string
}

// Corpus is the ordered sentence list of one language.
type Corpus struct {
	Lang      Language
	Sentences []Sentence
}

// Len returns the number of sentences.
func (c *Corpus) Len() int {
	return len(c.Sentences)
}

// Tokens returns the token slice of a sentence, or nil when the ID is
// out of range.
func (c *Corpus) Tokens(id int) []string {
	if id < 0 || id >= len(c.Sentences) {
		return nil
	}
	return c.Sentences[id].Tokens
}

// ReadOptions controls corpus normalization during reading.
type ReadOptions struct {
	// Lowercase folds tokens with the language's casing rules. The
	// alignment models this package feeds are trained on lowercased
	// text, so this defaults to on.
	Lowercase bool
	// NormalizeUnicode applies NFKC to every line before tokenization.
	NormalizeUnicode bool
}

// DefaultReadOptions returns the options used by the CLI.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{Lowercase: true, NormalizeUnicode: true}
}

// scannerBufSize handles very long corpus lines.
const scannerBufSize = 4 * 1024 * 1024

// ReadCorpus loads a one-sentence-per-line, whitespace-tokenized corpus file.
func ReadCorpus(path string, lang Language, opts ReadOptions) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer func() { _ = f.Close() }()
	c, err := ParseCorpus(f, lang, opts)
	if err != nil {
		return nil, fmt.Errorf("corpus %s: %w", path, err)
	}
	return c, nil
}

// ParseCorpus reads corpus lines from r. Empty lines yield empty
// sentences so that line numbers stay aligned across files.
func ParseCorpus(r io.Reader, lang Language, opts ReadOptions) (*Corpus, error) {
	caser := textnorm.Lowercaser(string(lang))
	c := &Corpus{Lang: lang}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), scannerBufSize)
	for sc.Scan() {
		line := sc.Text()
		if opts.NormalizeUnicode {
			line = textnorm.NFKC(line)
		}
		if opts.Lowercase {
			line = caser.String(line)
		}
		c.Sentences = append(c.Sentences, Sentence{
			ID:     len(c.Sentences),
			Tokens: strings.Fields(line),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", len(c.Sentences)+1, err)
	}
	return c, nil
}

// Pair couples the two sides of a parallel corpus. Pharaoh link i-j on
// sentence s relates Source.Sentences[s].Tokens[i] to
// Target.Sentences[s].Tokens[j].
type Pair struct {
	Source *Corpus
	Target *Corpus
}

// NewPair validates that the two corpora line up sentence for sentence.
func NewPair(source, target *Corpus) (*Pair, error) {
	if source.Lang == target.Lang {
		return nil, fmt.Errorf("both corpora are tagged %q", source.Lang)
	}
	if source.Len() != target.Len() {
		return nil, fmt.Errorf("sentence counts differ: %s has %d, %s has %d",
			source.Lang, source.Len(), target.Lang, target.Len())
	}
	return &Pair{Source: source, Target: target}, nil
}

// Len returns the number of sentence pairs.
func (p *Pair) Len() int {
	return p.Source.Len()
}

// Corpus returns the side tagged with lang.
func (p *Pair) Corpus(lang Language) (*Corpus, bool) {
	switch lang {
	case p.Source.Lang:
		return p.Source, true
	case p.Target.Lang:
		return p.Target, true
	}
	return nil, false
}

// Other returns the language opposite to lang, or "" when lang is not
// part of the pair.
func (p *Pair) Other(lang Language) Language {
	switch lang {
	case p.Source.Lang:
		return p.Target.Lang
	case p.Target.Lang:
		return p.Source.Lang
	}
	return ""
}

// Has reports whether lang is one of the pair's two languages.
func (p *Pair) Has(lang Language) bool {
	return lang == p.Source.Lang || lang == p.Target.Lang
}
