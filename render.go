package tagcloud

import (
	"fmt"
	"io"

	"github.com/projectdiscovery/fasttemplate"
	errorutil "github.com/projectdiscovery/utils/errors"
)

const (
	// ParenthesisOpen marker - begin of a placeholder
	ParenthesisOpen = "{{"
	// ParenthesisClose marker - end of a placeholder
	ParenthesisClose = "}}"
)

// DefaultStylesheets are linked from the generated document head
var DefaultStylesheets = []string{
	"doc/tagcloud.css",
	"http://web.cse.ohio-state.edu/software/2231/web-sw2/assignments/projects/tag-cloud-generator/data/tagcloud.css",
}

// fixed markup fragments, placeholders replaced per document/entry
const (
	headerTemplate     = "<html><head><title>Top {{count}} words in {{source}}</title>\n"
	stylesheetTemplate = "<link href=\"{{href}}\" rel=\"stylesheet\" type=\"text/css\">\n"
	bodyOpenTemplate   = "</head><body class=\"vsc-initialized\">\n<h2>Top {{count}} words in {{source}}</h2>\n<hr>\n<div class=\"cdiv\">\n<p class=\"cbox\">\n"
	spanTemplate       = "<span style=\"cursor:default\" class=\"f{{size}}\" title=\"count: {{occurrences}}\">{{word}}</span>\n"
	footer             = "</p></div></body></html>\n"
)

// Renderer writes the tag cloud document around an alphabetically ordered
// selection. Presentation only; ranking and sizing are computed upstream.
type Renderer struct {
	Source      string
	Stylesheets []string
	Scale       FontScale
}

// NewRenderer validates the markup fragment templates and returns a renderer
// for the given source document name
func NewRenderer(source string, stylesheets []string, scale FontScale) (*Renderer, error) {
	for _, fragment := range []string{headerTemplate, stylesheetTemplate, bodyOpenTemplate, spanTemplate} {
		// check if all placeholders are correctly used and are valid
		if _, err := fasttemplate.NewTemplate(fragment, ParenthesisOpen, ParenthesisClose); err != nil {
			return nil, err
		}
	}
	return &Renderer{Source: source, Stylesheets: stylesheets, Scale: scale}, nil
}

// Render re-orders the selection alphabetically and writes the complete
// document: header and stylesheet links, one span per word carrying its
// font-size class and occurrence count tooltip, then the footer.
func (r *Renderer) Render(w io.Writer, selection Selection) error {
	if w == nil {
		return errorutil.NewWithTag("tagcloud", "writer destination cannot be nil")
	}

	entries := make([]Entry, len(selection.Entries))
	copy(entries, selection.Entries)
	SortAlphabetical(entries)

	docVars := map[string]interface{}{
		"count":  len(entries),
		"source": r.Source,
	}
	if err := writeFragment(w, headerTemplate, docVars); err != nil {
		return err
	}
	for _, href := range r.Stylesheets {
		if err := writeFragment(w, stylesheetTemplate, map[string]interface{}{"href": href}); err != nil {
			return err
		}
	}
	if err := writeFragment(w, bodyOpenTemplate, docVars); err != nil {
		return err
	}
	for _, entry := range entries {
		vars := map[string]interface{}{
			"size":        r.Scale.SizeFor(selection.Max, selection.Min, entry.Count),
			"occurrences": entry.Count,
			"word":        entry.Word,
		}
		if err := writeFragment(w, spanTemplate, vars); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, footer)
	return err
}

// Replace replaces placeholders in template with values on the fly
func Replace(template string, values map[string]interface{}) string {
	valuesMap := make(map[string]interface{}, len(values))
	for k, v := range values {
		valuesMap[k] = fmt.Sprint(v)
	}
	return fasttemplate.ExecuteStringStd(template, ParenthesisOpen, ParenthesisClose, valuesMap)
}

func writeFragment(w io.Writer, template string, values map[string]interface{}) error {
	_, err := io.WriteString(w, Replace(template, values))
	return err
}
