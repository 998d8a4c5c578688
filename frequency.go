package tagcloud

import (
	"bufio"
	"io"
	"strings"

	errorutil "github.com/projectdiscovery/utils/errors"
)

// CountWords reads r line by line and tallies every word token into a
// frequency map. Lines are lowercased before tokenization so counting is
// case-insensitive; separator runs are discarded. The sum of all counts
// equals the number of word tokens in the input.
func CountWords(r io.Reader, seps *SeparatorSet) (map[string]int, error) {
	counts := map[string]int{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.ToLower(scanner.Text())
		for position := 0; position < len(line); {
			token := seps.NextToken(line, position)
			if token.Kind == Word {
				counts[token.Value]++
			}
			position += len(token.Value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errorutil.NewWithTag("tagcloud", "failed to read input got %v", err)
	}
	return counts, nil
}
