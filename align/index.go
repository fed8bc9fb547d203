package align

import (
	"sort"

	"github.com/corpusling/connalign/corpus"
)

// Index answers which token positions on the other side of a sentence
// pair a given token is aligned to. It is symmetric: every link is
// reachable from both of its ends.
type Index struct {
	source corpus.Language
	target corpus.Language
	fwd    []map[int][]int
	rev    []map[int][]int
}

// NewIndex builds an index over the pair from pharaoh links. Every
// link is validated against the corpus; a link that points outside a
// sentence yields a MalformedAlignmentError.
func NewIndex(pair *corpus.Pair, links []corpus.Link) (*Index, error) {
	ix := &Index{
		source: pair.Source.Lang,
		target: pair.Target.Lang,
		fwd:    make([]map[int][]int, pair.Len()),
		rev:    make([]map[int][]int, pair.Len()),
	}
	for _, l := range links {
		if l.Sentence < 0 || l.Sentence >= pair.Len() {
			return nil, &MalformedAlignmentError{
				Sentence: l.Sentence, Lang: ix.source, Pos: l.Source,
				Reason: "sentence does not exist",
			}
		}
		if l.Source < 0 || l.Source >= len(pair.Source.Sentences[l.Sentence].Tokens) {
			return nil, &MalformedAlignmentError{
				Sentence: l.Sentence, Lang: ix.source, Pos: l.Source,
				Reason: "token position out of range",
			}
		}
		if l.Target < 0 || l.Target >= len(pair.Target.Sentences[l.Sentence].Tokens) {
			return nil, &MalformedAlignmentError{
				Sentence: l.Sentence, Lang: ix.target, Pos: l.Target,
				Reason: "token position out of range",
			}
		}
		if ix.fwd[l.Sentence] == nil {
			ix.fwd[l.Sentence] = make(map[int][]int)
			ix.rev[l.Sentence] = make(map[int][]int)
		}
		ix.fwd[l.Sentence][l.Source] = append(ix.fwd[l.Sentence][l.Source], l.Target)
		ix.rev[l.Sentence][l.Target] = append(ix.rev[l.Sentence][l.Target], l.Source)
	}
	for _, side := range [][]map[int][]int{ix.fwd, ix.rev} {
		for _, sent := range side {
			for pos, partners := range sent {
				sent[pos] = sortedUnique(partners)
			}
		}
	}
	return ix, nil
}

// Aligned returns the sorted partner positions of the token at pos in
// the given language and sentence. An unaligned token, an unknown
// language or an out-of-range position yields nil.
func (ix *Index) Aligned(sentence int, lang corpus.Language, pos int) []int {
	var side []map[int][]int
	switch lang {
	case ix.source:
		side = ix.fwd
	case ix.target:
		side = ix.rev
	default:
		return nil
	}
	if sentence < 0 || sentence >= len(side) || side[sentence] == nil {
		return nil
	}
	return side[sentence][pos]
}

func sortedUnique(positions []int) []int {
	sort.Ints(positions)
	out := positions[:0]
	for _, p := range positions {
		if len(out) == 0 || out[len(out)-1] != p {
			out = append(out, p)
		}
	}
	return out
}
