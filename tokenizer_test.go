package tagcloud

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextTokenPartitionsLine(t *testing.T) {
	seps := NewSeparatorSet(DefaultSeparators)
	lines := []string{
		"hello, world!",
		"it's a test-case (really)",
		"   ",
		"word",
		"a",
		"one2three",
		"trailing space ",
		"[brackets]{braces}<angles>",
		"`backtick` and \"quotes\"",
	}
	for _, line := range lines {
		var rebuilt strings.Builder
		lastKind := TokenKind(-1)
		for position := 0; position < len(line); {
			token := seps.NextToken(line, position)
			require.NotEmpty(t, token.Value, "empty run in %q", line)
			require.NotEqual(t, lastKind, token.Kind, "adjacent runs must alternate in %q", line)
			for i := 0; i < len(token.Value); i++ {
				require.Equal(t, token.Kind == Separator, seps.Contains(token.Value[i]),
					"mixed run %q in %q", token.Value, line)
			}
			rebuilt.WriteString(token.Value)
			lastKind = token.Kind
			position += len(token.Value)
		}
		require.Equal(t, line, rebuilt.String(), "runs must reconstruct the line exactly")
	}
}

func TestNextTokenClassification(t *testing.T) {
	seps := NewSeparatorSet(DefaultSeparators)
	require.Equal(t, Token{Value: "hello", Kind: Word}, seps.NextToken("hello, world", 0))
	require.Equal(t, Token{Value: ", ", Kind: Separator}, seps.NextToken("hello, world", 5))
	require.Equal(t, Token{Value: "world", Kind: Word}, seps.NextToken("hello, world", 7))
}

func TestNextTokenLastIndex(t *testing.T) {
	seps := NewSeparatorSet(DefaultSeparators)
	require.Equal(t, Token{Value: "!", Kind: Separator}, seps.NextToken("hi!", 2))
	require.Equal(t, Token{Value: "i", Kind: Word}, seps.NextToken("!i", 1))
}

func TestTokensSplitsContractionsAndDigits(t *testing.T) {
	seps := NewSeparatorSet(DefaultSeparators)
	var words []string
	for _, token := range seps.Tokens("don't stop2believing") {
		if token.Kind == Word {
			words = append(words, token.Value)
		}
	}
	// apostrophes and digits are separators, contractions become two words
	require.Equal(t, []string{"don", "t", "stop", "believing"}, words)
}

func TestTokensEmptyLine(t *testing.T) {
	seps := NewSeparatorSet(DefaultSeparators)
	require.Empty(t, seps.Tokens(""))
}
