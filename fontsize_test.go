package tagcloud

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFontScaleSizeFor(t *testing.T) {
	scale := DefaultFontScale
	require.Equal(t, 48, scale.SizeFor(10, 1, 10))
	require.Equal(t, 11, scale.SizeFor(10, 1, 1))
	// 11 + floor(37*4/9) = 27
	require.Equal(t, 27, scale.SizeFor(10, 1, 5))
}

func TestFontScaleUniformCounts(t *testing.T) {
	scale := DefaultFontScale
	require.Equal(t, 48, scale.SizeFor(3, 3, 3))
	require.Equal(t, 48, scale.SizeFor(1, 1, 1))
}

func TestFontScaleBounds(t *testing.T) {
	scale := DefaultFontScale
	for count := 1; count <= 100; count++ {
		size := scale.SizeFor(100, 1, count)
		require.GreaterOrEqual(t, size, MinFontSize)
		require.LessOrEqual(t, size, MaxFontSize)
	}
}

func TestFontScaleCustomRange(t *testing.T) {
	scale := FontScale{MinFont: 10, MaxFont: 20}
	require.Equal(t, 10, scale.SizeFor(5, 1, 1))
	require.Equal(t, 20, scale.SizeFor(5, 1, 5))
	require.Equal(t, 15, scale.SizeFor(5, 1, 3))
}
