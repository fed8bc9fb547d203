package corpus

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseCorpusNormalizes(t *testing.T) {
	// The middle line is empty and must stay a sentence, or alignment
	// line numbers drift. The non-breaking space in the last line
	// becomes a regular space under NFKC.
	input := "Bien QUE tu dors .\n\nMais enfin !\n"
	c, err := ParseCorpus(strings.NewReader(input), "fr", DefaultReadOptions())
	if err != nil {
		t.Fatal(err)
	}

	if c.Lang != "fr" {
		t.Errorf("Lang = %q, want fr", c.Lang)
	}
	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}
	if got := c.Tokens(0); !reflect.DeepEqual(got, []string{"bien", "que", "tu", "dors", "."}) {
		t.Errorf("Tokens(0) = %v", got)
	}
	if got := c.Tokens(1); len(got) != 0 {
		t.Errorf("Tokens(1) = %v, want empty", got)
	}
	if got := c.Tokens(2); !reflect.DeepEqual(got, []string{"mais", "enfin", "!"}) {
		t.Errorf("Tokens(2) = %v", got)
	}
	for id, s := range c.Sentences {
		if s.ID != id {
			t.Errorf("Sentences[%d].ID = %d", id, s.ID)
		}
	}
	if c.Tokens(-1) != nil || c.Tokens(3) != nil {
		t.Error("out-of-range Tokens should be nil")
	}
}

func TestParseCorpusKeepsCaseWhenAsked(t *testing.T) {
	c, err := ParseCorpus(strings.NewReader("Bien QUE\n"), "fr", ReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Tokens(0); !reflect.DeepEqual(got, []string{"Bien", "QUE"}) {
		t.Errorf("Tokens(0) = %v, want original casing", got)
	}
}

func TestReadCorpus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fr.txt")
	if err := os.WriteFile(path, []byte("bien que tu dors .\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := ReadCorpus(path, "fr", DefaultReadOptions())
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}

	if _, err := ReadCorpus(filepath.Join(t.TempDir(), "missing.txt"), "fr", DefaultReadOptions()); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNewPair(t *testing.T) {
	fr, err := ParseCorpus(strings.NewReader("bien que\nmais\n"), "fr", DefaultReadOptions())
	if err != nil {
		t.Fatal(err)
	}
	de, err := ParseCorpus(strings.NewReader("obwohl\naber\n"), "de", DefaultReadOptions())
	if err != nil {
		t.Fatal(err)
	}

	pair, err := NewPair(de, fr)
	if err != nil {
		t.Fatal(err)
	}
	if pair.Len() != 2 {
		t.Errorf("Len = %d, want 2", pair.Len())
	}
	if got, ok := pair.Corpus("fr"); !ok || got != fr {
		t.Error("Corpus(fr) should return the French side")
	}
	if pair.Other("de") != "fr" || pair.Other("fr") != "de" {
		t.Error("Other should flip between the two languages")
	}
	if !pair.Has("de") || pair.Has("en") {
		t.Error("Has reports the wrong languages")
	}

	if _, err := NewPair(de, de); err == nil {
		t.Error("expected error for two corpora with the same language")
	}
	short, _ := ParseCorpus(strings.NewReader("obwohl\n"), "de", DefaultReadOptions())
	if _, err := NewPair(short, fr); err == nil {
		t.Error("expected error for mismatched sentence counts")
	}
}

func TestParsePharaoh(t *testing.T) {
	// The blank second line is a sentence pair without links.
	links, err := ParsePharaoh(strings.NewReader("0-0 1-2\n\n2-3\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []Link{
		{Sentence: 0, Source: 0, Target: 0},
		{Sentence: 0, Source: 1, Target: 2},
		{Sentence: 2, Source: 2, Target: 3},
	}
	if !reflect.DeepEqual(links, want) {
		t.Errorf("links = %v, want %v", links, want)
	}
}

func TestParsePharaohRejectsBadLines(t *testing.T) {
	for _, input := range []string{"0-0 3\n", "x-1\n", "0-y\n", "0--1\n"} {
		if _, err := ParsePharaoh(strings.NewReader(input)); err == nil {
			t.Errorf("ParsePharaoh(%q) should fail", input)
		}
	}
}

func TestReadPharaoh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "de-fr.align")
	if err := os.WriteFile(path, []byte("0-0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	links, err := ReadPharaoh(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(links) != 1 {
		t.Errorf("links = %v, want one link", links)
	}

	if _, err := ReadPharaoh(filepath.Join(t.TempDir(), "missing.align")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDescribe(t *testing.T) {
	de, err := ParseCorpus(strings.NewReader("obwohl du schläfst\naber gut .\n"), "de", DefaultReadOptions())
	if err != nil {
		t.Fatal(err)
	}
	fr, err := ParseCorpus(strings.NewReader("bien que tu dors\nmais bon .\n"), "fr", DefaultReadOptions())
	if err != nil {
		t.Fatal(err)
	}
	pair, err := NewPair(de, fr)
	if err != nil {
		t.Fatal(err)
	}
	// Sentence 0 is fully linked, sentence 1 not at all.
	links, err := ParsePharaoh(strings.NewReader("0-0 0-1 1-2 2-3\n\n"))
	if err != nil {
		t.Fatal(err)
	}

	stats := Describe(pair, links)
	if stats.Sentences != 2 || stats.Links != 4 || stats.UnalignedSentences != 1 {
		t.Errorf("stats = %+v", stats)
	}
	// 4 links on the first pair, 0 on the second.
	if stats.MeanLinks != 2 {
		t.Errorf("MeanLinks = %v, want 2", stats.MeanLinks)
	}

	deSide := stats.Sides["de"]
	if deSide.Tokens != 6 || deSide.MeanLen != 3 || deSide.StdDevLen != 0 {
		t.Errorf("de side = %+v", deSide)
	}
	// Source positions 0..2 of sentence 0 are aligned, nothing else.
	if deSide.AlignedTokens != 3 || deSide.AlignedShare != 0.5 {
		t.Errorf("de side = %+v", deSide)
	}

	frSide := stats.Sides["fr"]
	if frSide.Tokens != 7 || frSide.AlignedTokens != 4 {
		t.Errorf("fr side = %+v", frSide)
	}
	if frSide.AlignedShare != float64(4)/float64(7) {
		t.Errorf("fr AlignedShare = %v", frSide.AlignedShare)
	}
}
