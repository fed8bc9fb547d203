package corpus

import "gonum.org/v1/gonum/stat"

// Stats summarizes a corpus pair and its word alignment. Useful as a
// sanity check before bootstrapping: a low aligned-token share usually
// means the alignment and corpus files are out of step.
type Stats struct {
	Sentences          int                    `json:"sentences"`
	Links              int                    `json:"links"`
	UnalignedSentences int                    `json:"unaligned_sentences"`
	MeanLinks          float64                `json:"mean_links_per_sentence"`
	StdDevLinks        float64                `json:"stddev_links_per_sentence"`
	Sides              map[Language]SideStats `json:"sides"`
}

// SideStats summarizes one language of the pair.
type SideStats struct {
	Tokens        int     `json:"tokens"`
	MeanLen       float64 `json:"mean_sentence_length"`
	StdDevLen     float64 `json:"stddev_sentence_length"`
	AlignedTokens int     `json:"aligned_tokens"`
	AlignedShare  float64 `json:"aligned_token_share"`
}

// Describe computes alignment-coverage statistics for a pair.
func Describe(pair *Pair, links []Link) Stats {
	n := pair.Len()
	s := Stats{
		Sentences: n,
		Links:     len(links),
		Sides:     make(map[Language]SideStats, 2),
	}

	perSentence := make([]float64, n)
	srcAligned := make([]map[int]bool, n)
	tgtAligned := make([]map[int]bool, n)
	for i := range n {
		srcAligned[i] = make(map[int]bool)
		tgtAligned[i] = make(map[int]bool)
	}
	for _, l := range links {
		if l.Sentence < 0 || l.Sentence >= n {
			continue
		}
		perSentence[l.Sentence]++
		srcAligned[l.Sentence][l.Source] = true
		tgtAligned[l.Sentence][l.Target] = true
	}
	for _, c := range perSentence {
		if c == 0 {
			s.UnalignedSentences++
		}
	}
	if n > 0 {
		s.MeanLinks = stat.Mean(perSentence, nil)
		s.StdDevLinks = stat.StdDev(perSentence, nil)
	}

	s.Sides[pair.Source.Lang] = sideStats(pair.Source, srcAligned)
	s.Sides[pair.Target.Lang] = sideStats(pair.Target, tgtAligned)
	return s
}

func sideStats(c *Corpus, aligned []map[int]bool) SideStats {
	lens := make([]float64, c.Len())
	side := SideStats{}
	for i, sent := range c.Sentences {
		lens[i] = float64(len(sent.Tokens))
		side.Tokens += len(sent.Tokens)
		side.AlignedTokens += len(aligned[i])
	}
	if c.Len() > 0 {
		side.MeanLen = stat.Mean(lens, nil)
		side.StdDevLen = stat.StdDev(lens, nil)
	}
	if side.Tokens > 0 {
		side.AlignedShare = float64(side.AlignedTokens) / float64(side.Tokens)
	}
	return side
}
