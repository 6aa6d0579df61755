// Package core defines the pipeline types and interfaces for betterspecs-md.
// Each stage of the pipeline is a clean, testable interface.
package core

import "context"

// SourceResult holds the raw HTML of the guide and where it came from.
type SourceResult struct {
	Origin string // file path or URL
	HTML   string
}

// GuideMetadata holds metadata about a conversion run.
type GuideMetadata struct {
	Origin      string `json:"origin"`
	Title       string `json:"title,omitempty"`
	GeneratedAt string `json:"generated_at"` // ISO8601
	Sections    int    `json:"sections"`
}

// ParagraphKind is the tagged-variant classification of a guideline paragraph.
// Classification happens once, at parse time; renderers only switch on the kind.
type ParagraphKind string

const (
	// KindCode introduces a code example; the body lives in the sibling node.
	KindCode ParagraphKind = "code"
	// KindSkip is boilerplate ("Discuss this guideline", ...) dropped from output.
	KindSkip ParagraphKind = "skip"
	// KindPlain is prose with no child elements.
	KindPlain ParagraphKind = "plain"
	// KindLink is prose whose first child element is a hyperlink.
	KindLink ParagraphKind = "link"
	// KindUnrecognized has child elements but no leading link. Dropped by
	// default; kept via a fallback Markdown conversion when requested.
	KindUnrecognized ParagraphKind = "unrecognized"
)

// Link is a hyperlink embedded in a paragraph.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// CodeExample is a fenced code block: a caption line plus verbatim code lines.
type CodeExample struct {
	Caption string   `json:"caption"`
	Class   string   `json:"class"` // the matched code-marker class (wrong, correct, ...)
	Lines   []string `json:"lines"`
}

// Paragraph is one classified block within a guideline section.
type Paragraph struct {
	Kind     ParagraphKind `json:"kind"`
	Text     string        `json:"text,omitempty"` // whitespace-normalized
	Link     *Link         `json:"link,omitempty"`
	Code     *CodeExample  `json:"code,omitempty"`
	Markdown string        `json:"markdown,omitempty"` // fallback rendering for kept unrecognized paragraphs
}

// Section is one guideline: a title and its paragraphs in document order.
type Section struct {
	Title      string      `json:"title"`
	Paragraphs []Paragraph `json:"paragraphs"`
}

// Guide is the fully parsed style guide. It is transient: built once per run,
// handed to a Renderer, never persisted.
type Guide struct {
	Meta     GuideMetadata `json:"metadata"`
	Sections []Section     `json:"sections"`
	// Warnings records every node the parser skipped or dropped, so the CLI
	// can surface them instead of discarding content silently.
	Warnings []string `json:"-"`
}

// Source yields the guide HTML from somewhere (local file, live site).
type Source interface {
	Load(ctx context.Context) (*SourceResult, error)
}

// Parser turns guide HTML into a structured Guide.
type Parser interface {
	Parse(src *SourceResult) (*Guide, error)
}

// Renderer converts a parsed Guide into a final output format.
type Renderer interface {
	Render(g *Guide) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
