package align

import (
	"fmt"

	"github.com/corpusling/connalign/corpus"
)

// MalformedAlignmentError reports a word-alignment link that points at
// a sentence or token position missing from the corpus.
type MalformedAlignmentError struct {
	Sentence int
	Lang     corpus.Language
	Pos      int
	Reason   string
}

func (e *MalformedAlignmentError) Error() string {
	return fmt.Sprintf("malformed alignment at sentence %d (%s, position %d): %s",
		e.Sentence, e.Lang, e.Pos, e.Reason)
}

// UnknownRelationError reports a discourse relation for which no seed
// connectives are available.
type UnknownRelationError struct {
	Relation string
}

func (e *UnknownRelationError) Error() string {
	return fmt.Sprintf("no seed connectives for discourse relation %q", e.Relation)
}

// InvalidConfigError reports an engine setting outside its valid range.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}
