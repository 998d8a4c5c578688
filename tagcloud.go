package tagcloud

import (
	"io"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
)

// Generator Options
type Options struct {
	// Source is the input document name shown in the generated title
	Source string
	// TopN is the number of words to include in the cloud
	// negative values are clamped to 0 with a warning
	TopN int
	// Separators override DefaultSeparators when non empty
	Separators string
	// MinFont/MaxFont override the default font scale when either is set
	MinFont int
	MaxFont int
	// Stylesheets override DefaultStylesheets when non empty
	Stylesheets []string
}

// Generator builds a word frequency map from input text and renders the
// highest-frequency words as a tag cloud document
type Generator struct {
	Options  *Options
	seps     *SeparatorSet
	renderer *Renderer
	counts   map[string]int
}

// New creates and returns new generator instance from options
func New(opts *Options) (*Generator, error) {
	if opts.Source == "" {
		opts.Source = "stdin"
	}
	if opts.TopN < 0 {
		gologger.Warning().Msgf("requested word count %v is negative, using 0", opts.TopN)
		opts.TopN = 0
	}
	if opts.Separators == "" {
		if DefaultCloudConfig.Separators == "" {
			return nil, errorutil.NewWithTag("tagcloud", "something went wrong, `DefaultSeparators` and separator overrides are empty")
		}
		opts.Separators = DefaultCloudConfig.Separators
	}
	if opts.MinFont == 0 && opts.MaxFont == 0 {
		opts.MinFont = DefaultCloudConfig.MinFont
		opts.MaxFont = DefaultCloudConfig.MaxFont
	}
	if opts.MinFont <= 0 || opts.MaxFont < opts.MinFont {
		return nil, errorutil.NewWithTag("tagcloud", "invalid font scale [%v,%v]", opts.MinFont, opts.MaxFont)
	}
	if len(opts.Stylesheets) == 0 {
		opts.Stylesheets = DefaultCloudConfig.Stylesheets
	}

	renderer, err := NewRenderer(opts.Source, opts.Stylesheets, FontScale{MinFont: opts.MinFont, MaxFont: opts.MaxFont})
	if err != nil {
		return nil, err
	}
	return &Generator{
		Options:  opts,
		seps:     NewSeparatorSet(opts.Separators),
		renderer: renderer,
	}, nil
}

// CountFrom reads the whole input and builds the frequency map. The entire
// document is consumed before any selection or rendering happens.
func (g *Generator) CountFrom(r io.Reader) error {
	counts, err := CountWords(r, g.seps)
	if err != nil {
		return err
	}
	g.counts = counts
	return nil
}

// DistinctWords returns the number of distinct normalized words counted
func (g *Generator) DistinctWords() int {
	return len(g.counts)
}

// ExecuteWithWriter selects the top words and writes the rendered document
// directly to type that implements io.Writer interface
func (g *Generator) ExecuteWithWriter(writer io.Writer) error {
	if writer == nil {
		return errorutil.NewWithTag("tagcloud", "writer destination cannot be nil")
	}
	n := g.Options.TopN
	if n > len(g.counts) {
		gologger.Verbose().Msgf("requested %v words but input has %v distinct words, clamping", n, len(g.counts))
		n = len(g.counts)
	}
	return g.renderer.Render(writer, SelectTop(g.counts, n))
}
