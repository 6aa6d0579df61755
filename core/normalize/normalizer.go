// Package normalize holds the text normalization rules for guide prose and
// the fallback HTML→Markdown conversion for paragraphs the classifier does
// not recognize.
package normalize

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// Text normalizes prose for single-line Markdown output: leading/trailing
// whitespace trimmed, embedded line breaks removed, runs of two-or-more
// whitespace characters collapsed to a single space.
func Text(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Fallback converts an HTML fragment into Markdown using html-to-markdown.
// It is the escape hatch for unrecognized paragraph shapes: instead of
// dropping the content, callers can emit a generic conversion of it.
func Fallback(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}
