package tagcloud

// Reference font scale matching the tagcloud stylesheet classes f11..f48
const (
	MinFontSize = 11
	MaxFontSize = 48
)

// FontScale maps occurrence counts onto a bounded range of font sizes
type FontScale struct {
	MinFont int
	MaxFont int
}

// DefaultFontScale is the reference scale used when no override is given
var DefaultFontScale = FontScale{MinFont: MinFontSize, MaxFont: MaxFontSize}

// SizeFor linearly interpolates count between min and max onto the font
// range, truncating toward zero, so count == min maps to MinFont and
// count == max maps to MaxFont. When every selected word shares one count
// (max == min, including a single-entry selection) the result is MaxFont.
// For min <= count <= max the result is always within [MinFont, MaxFont].
func (f FontScale) SizeFor(max, min, count int) int {
	if max <= min {
		return f.MaxFont
	}
	return f.MinFont + (f.MaxFont-f.MinFont)*(count-min)/(max-min)
}
