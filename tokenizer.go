package tagcloud

// DefaultSeparators is the fixed set of characters that delimit words:
// whitespace, punctuation, digits and brackets. Apostrophes are separators,
// so contractions split into two words.
const DefaultSeparators = " \t\n\r,-.!?[]';:/()*`1234567890\"{}~<>"

// TokenKind classifies a token by separator-set membership of its characters.
type TokenKind int

const (
	// Word is a run with no characters in the separator set
	Word TokenKind = iota
	// Separator is a run with all characters in the separator set
	Separator
)

// Token is a maximal contiguous run of characters that are either all inside
// or all outside the separator set.
type Token struct {
	Value string
	Kind  TokenKind
}

// SeparatorSet holds the characters that delimit words. It is built once at
// startup and never mutated afterwards. Only single-byte characters are
// supported; multi-byte UTF-8 sequences always classify as word characters.
type SeparatorSet struct {
	members [256]bool
}

// NewSeparatorSet builds the membership table for the given characters
func NewSeparatorSet(chars string) *SeparatorSet {
	s := &SeparatorSet{}
	for i := 0; i < len(chars); i++ {
		s.members[chars[i]] = true
	}
	return s
}

// Contains reports whether c is a separator character
func (s *SeparatorSet) Contains(c byte) bool {
	return s.members[c]
}

// NextToken returns the longest run starting at position whose characters all
// share the separator-set membership of the character at position itself.
// The scan is single pass and stops at the first differing-class character,
// so a run at the last index has length 1. Requires 0 <= position < len(line).
func (s *SeparatorSet) NextToken(line string, position int) Token {
	isSep := s.members[line[position]]
	i := position + 1
	for i < len(line) && s.members[line[i]] == isSep {
		i++
	}
	kind := Word
	if isSep {
		kind = Separator
	}
	return Token{Value: line[position:i], Kind: kind}
}

// Tokens partitions line into its complete ordered sequence of runs.
// Concatenating the returned values reconstructs line exactly and no two
// adjacent tokens share a classification. Tokens never span line boundaries;
// callers feed one line at a time.
func (s *SeparatorSet) Tokens(line string) []Token {
	var tokens []Token
	for position := 0; position < len(line); {
		token := s.NextToken(line, position)
		tokens = append(tokens, token)
		position += len(token.Value)
	}
	return tokens
}
