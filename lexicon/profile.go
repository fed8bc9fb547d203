package lexicon

import (
	"github.com/corpusling/connalign/align"
	"github.com/corpusling/connalign/corpus"
)

// FrenchProfile returns the cleanup lists applied to French spans.
// full is the complete French connective inventory used to complete
// gapped spans.
func FrenchProfile(full []string) align.Profile {
	return align.Profile{
		SuspectWords: wordSet("l'", "ce"),
		JunkWords: wordSet("avec", "dans", "devant", "par", "bien", "de",
			"quoi", "même", "tout", "que", "qu'", "en", "est", "ce",
			"sous", "qui", "s'", "si", "lors", "pendant", "durant"),
		Pronouns: wordSet("j'", "je", "tu", "il", "elle", "on", "nous",
			"vous", "ils", "elles"),
		Contractions: map[string]string{
			"d'":  "de",
			"du":  "de",
			"des": "de",
			"aux": "à",
			"au":  "à",
		},
		ExcludedSeeds: wordSet("dire que", "dire qu'", "et dire que",
			"et dire qu'", "encore que", "encore qu'", "cependant que",
			"cependant qu'", "si", "s'", "en même temps que",
			"en même temps qu'"),
		FullLexicon: full,
	}
}

// GermanProfile returns the cleanup lists applied to German spans.
func GermanProfile(full []string) align.Profile {
	return align.Profile{
		SuspectWords: wordSet("ich", "du", "er", "sie", "es", "wir", "ihr",
			"das", "des", "die", "der", "einer", "eines", "eine", "ist",
			"dem", "sich", "unseres", "ein"),
		JunkWords: wordSet("dass", "wenn", "auf", "vor", "in", "mit"),
		Pronouns:  wordSet("ich", "du", "er", "sie", "es", "wir", "ihr"),
		Contractions: map[string]string{
			"zur": "zu",
			"zum": "zu",
			"vom": "von",
		},
		ExcludedSeeds: wordSet("bloß", "dabei", "mangels", "mithin",
			"obschon", "wenn ... auch", "wiederum", "wobei",
			"wohingegen", "als ob"),
		FullLexicon: full,
	}
}

// DefaultProfiles keys the two profiles by language for the engine
// configuration.
func DefaultProfiles(fr, de *Lexicon) map[corpus.Language]align.Profile {
	return map[corpus.Language]align.Profile{
		fr.Lang: FrenchProfile(fr.Forms),
		de.Lang: GermanProfile(de.Forms),
	}
}

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
