// Package textnorm provides tokenization and normalization helpers for
// connective lexicons and corpus text.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// frenchRe mirrors the clitic-aware tokenizer used for LexConn entries:
// "qu'"-compounds and single-letter elisions stay attached to their
// apostrophe ("d'abord" -> "d'", "abord"), hyphenated words stay whole.
var frenchRe = regexp.MustCompile(`[\p{L}\p{N}_]*qu'|[\p{L}\p{N}_]'|[\p{L}\p{N}_]+(?:['-][\p{L}\p{N}_]+)*|[.,!?;]`)

// TokenizeFrench splits a French connective or phrase into tokens.
func TokenizeFrench(text string) []string {
	return frenchRe.FindAllString(text, -1)
}

// germanRe keeps abbreviation-internal periods ("z.b." -> "z.b", ".")
// and splits sentence punctuation into its own tokens.
var germanRe = regexp.MustCompile(`[\p{L}\p{N}_]+(?:['-][\p{L}\p{N}_]+)*(?:\.[\p{L}\p{N}_]+)*|[.,!?;:]`)

// TokenizeGerman splits a German connective or phrase into tokens.
func TokenizeGerman(text string) []string {
	return germanRe.FindAllString(text, -1)
}

var (
	newlineRe    = regexp.MustCompile(`[\n\r]`)
	multiSpaceRe = regexp.MustCompile(`\s{2,}`)
)

// NormalizeWhitespaces replaces newlines and multiple whitespace with a single space.
func NormalizeWhitespaces(text string) string {
	text = newlineRe.ReplaceAllString(text, " ")
	return multiSpaceRe.ReplaceAllString(text, " ")
}

// NFKC applies Unicode NFKC normalization and trims surrounding whitespace.
func NFKC(text string) string {
	return strings.TrimSpace(norm.NFKC.String(text))
}

// Lowercaser returns a case folder for the given BCP 47-ish language tag.
// Unknown tags fall back to the language-neutral lowercase mapping.
func Lowercaser(tag string) cases.Caser {
	t, err := language.Parse(tag)
	if err != nil {
		t = language.Und
	}
	return cases.Lower(t)
}

// IsPunct reports whether a token is a single punctuation mark. The
// three-dot gap marker used for discontinuous phrases is not punctuation.
func IsPunct(token string) bool {
	runes := []rune(token)
	if len(runes) != 1 {
		return false
	}
	return strings.ContainsRune(asciiPunct, runes[0])
}

const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// IsAlpha reports whether every rune in the token is a letter.
func IsAlpha(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
