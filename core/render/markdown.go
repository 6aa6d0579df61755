// Package render provides output renderers for the parsed guide.
// This file implements the Markdown renderer, the primary output: it is the
// generated guide document itself.
package render

import (
	"fmt"
	"strings"

	"github.com/evaldasg/md--betterspecs-org/core"
)

// DefaultLang is the fence language tag for code examples.
const DefaultLang = "ruby"

// MarkdownRenderer emits the guide as Markdown:
// a level-3 heading per section, fenced code blocks with a commented
// caption line for code examples, and normalized single-line prose.
type MarkdownRenderer struct {
	Lang string
}

// NewMarkdownRenderer creates a MarkdownRenderer. An empty lang defaults
// to ruby, matching the guide's code examples.
func NewMarkdownRenderer(lang string) *MarkdownRenderer {
	if lang == "" {
		lang = DefaultLang
	}
	return &MarkdownRenderer{Lang: lang}
}

// Render produces the Markdown document. Rendering is a pure function of
// the Guide, so repeated runs over the same input are byte-identical.
func (r *MarkdownRenderer) Render(g *core.Guide) ([]byte, error) {
	var b strings.Builder

	for _, section := range g.Sections {
		fmt.Fprintf(&b, "### %s\n\n", section.Title)

		for _, para := range section.Paragraphs {
			switch para.Kind {
			case core.KindCode:
				r.writeCode(&b, para.Code)
			case core.KindPlain:
				fmt.Fprintf(&b, "%s\n\n", para.Text)
			case core.KindLink:
				fmt.Fprintf(&b, "%s\n\n", linkify(para.Text, para.Link))
			case core.KindUnrecognized:
				// Kept only when the parser filled in a fallback conversion;
				// otherwise the paragraph was already flagged and is dropped.
				if para.Markdown != "" {
					fmt.Fprintf(&b, "%s\n\n", para.Markdown)
				}
			case core.KindSkip:
				// boilerplate, no output
			}
		}
	}

	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// writeCode emits a fenced code block: caption as a comment line, then the
// example's lines verbatim.
func (r *MarkdownRenderer) writeCode(b *strings.Builder, code *core.CodeExample) {
	fmt.Fprintf(b, "```%s\n", r.Lang)
	fmt.Fprintf(b, "# %s\n", code.Caption)
	for _, line := range code.Lines {
		fmt.Fprintf(b, "%s\n", line)
	}
	b.WriteString("```\n\n")
}

// linkify replaces the link's visible text within the paragraph with a
// Markdown link construct. If the visible text cannot be located the
// paragraph is emitted as-is.
func linkify(text string, link *core.Link) string {
	if link == nil || link.Text == "" {
		return text
	}
	return strings.Replace(text, link.Text, fmt.Sprintf("[%s](%s)", link.Text, link.Href), 1)
}
