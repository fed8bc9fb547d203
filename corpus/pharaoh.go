package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Link is one word-alignment edge between a source-side and a
// target-side token position of the same sentence pair.
type Link struct {
	Sentence int
	Source   int
	Target   int
}

// ReadPharaoh loads a pharaoh-format alignment file: one line per
// sentence pair, space-separated "i-j" pairs, 0-indexed.
func ReadPharaoh(path string) ([]Link, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open alignment: %w", err)
	}
	defer func() { _ = f.Close() }()
	links, err := ParsePharaoh(f)
	if err != nil {
		return nil, fmt.Errorf("alignment %s: %w", path, err)
	}
	return links, nil
}

// ParsePharaoh reads pharaoh lines from r. A blank line is a sentence
// pair without any alignment links.
func ParsePharaoh(r io.Reader) ([]Link, error) {
	var links []Link

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), scannerBufSize)
	sentence := 0
	for ; sc.Scan(); sentence++ {
		for _, pair := range strings.Fields(sc.Text()) {
			src, tgt, ok := strings.Cut(pair, "-")
			if !ok {
				return nil, fmt.Errorf("line %d: %q is not an i-j pair", sentence+1, pair)
			}
			i, err := strconv.Atoi(src)
			if err != nil || i < 0 {
				return nil, fmt.Errorf("line %d: bad source position in %q", sentence+1, pair)
			}
			j, err := strconv.Atoi(tgt)
			if err != nil || j < 0 {
				return nil, fmt.Errorf("line %d: bad target position in %q", sentence+1, pair)
			}
			links = append(links, Link{Sentence: sentence, Source: i, Target: j})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", sentence+1, err)
	}
	return links, nil
}
