// Package parse implements the Parser interface.
// It walks the guide document with goquery and builds a structured Guide:
//  1. Every <article> becomes a Section, in document order.
//  2. Every <p> inside an article is classified into a tagged variant
//     (code example, skip, plain text, link-annotated, unrecognized)
//     before any output is produced.
//
// Code example bodies live outside the paragraph: the first <pre> inside the
// paragraph's next element sibling. That lookup is explicit, and a missing
// sibling or <pre> is a structural violation of the input.
package parse

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/evaldasg/md--betterspecs-org/core"
	"github.com/evaldasg/md--betterspecs-org/core/normalize"
)

// DefaultCodeClasses are the class attribute values marking a paragraph as
// the caption of a code example. The guide itself uses wrong/correct/base;
// good/bad cover older revisions of the page.
var DefaultCodeClasses = []string{"wrong", "correct", "base", "good", "bad"}

// DefaultSkipMarkers are the boilerplate phrases whose paragraphs are
// dropped from output entirely.
var DefaultSkipMarkers = []string{
	"Discuss this guideline",
	"Learn more about",
	"More about",
}

// Options configures a GuideParser.
type Options struct {
	// CodeClasses overrides DefaultCodeClasses when non-empty.
	CodeClasses []string
	// SkipMarkers overrides DefaultSkipMarkers when non-empty.
	SkipMarkers []string
	// Lenient downgrades structural violations (missing title link, missing
	// sibling code block) from errors to skip-with-warning.
	Lenient bool
	// KeepUnrecognized converts unrecognized paragraphs through the fallback
	// HTML→Markdown path instead of dropping them.
	KeepUnrecognized bool
}

// GuideParser parses the betterspecs guide page.
type GuideParser struct {
	opts        Options
	codeClasses map[string]bool
	skipMarkers []string

	// now is swappable for deterministic metadata in tests.
	now func() time.Time
}

// New creates a GuideParser with the given options.
func New(opts Options) *GuideParser {
	classes := opts.CodeClasses
	if len(classes) == 0 {
		classes = DefaultCodeClasses
	}
	set := make(map[string]bool, len(classes))
	for _, c := range classes {
		set[strings.ToLower(strings.TrimSpace(c))] = true
	}

	markers := opts.SkipMarkers
	if len(markers) == 0 {
		markers = DefaultSkipMarkers
	}

	return &GuideParser{
		opts:        opts,
		codeClasses: set,
		skipMarkers: markers,
		now:         time.Now,
	}
}

// Parse builds a Guide from the source HTML. A document that cannot be
// parsed at all is a fatal error; structural violations inside an otherwise
// parseable document are fatal unless Options.Lenient is set.
func (p *GuideParser) Parse(src *core.SourceResult) (*core.Guide, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src.HTML))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	guide := &core.Guide{
		Meta: core.GuideMetadata{
			Origin:      src.Origin,
			Title:       normalize.Text(doc.Find("title").First().Text()),
			GeneratedAt: p.now().UTC().Format(time.RFC3339),
		},
	}

	var parseErr error
	doc.Find("article").EachWithBreak(func(i int, art *goquery.Selection) bool {
		section, err := p.parseArticle(i, art, guide)
		if err != nil {
			parseErr = err
			return false
		}
		if section != nil {
			guide.Sections = append(guide.Sections, *section)
		}
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	if len(guide.Sections) == 0 {
		return nil, fmt.Errorf("no article nodes found in %s", src.Origin)
	}

	guide.Meta.Sections = len(guide.Sections)
	return guide, nil
}

// parseArticle builds one Section. A nil Section with nil error means the
// article was skipped under lenient mode.
func (p *GuideParser) parseArticle(idx int, art *goquery.Selection, guide *core.Guide) (*core.Section, error) {
	titleLink := art.Find("h1 a, h2 a").First()
	if titleLink.Length() == 0 {
		msg := fmt.Sprintf("article %d: no title link inside heading", idx+1)
		if p.opts.Lenient {
			guide.Warnings = append(guide.Warnings, msg+" (article skipped)")
			return nil, nil
		}
		return nil, fmt.Errorf("%s", msg)
	}

	section := &core.Section{Title: normalize.Text(titleLink.Text())}

	var paraErr error
	art.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		para, err := p.classify(sel, section.Title, guide)
		if err != nil {
			paraErr = err
			return false
		}
		if para != nil {
			section.Paragraphs = append(section.Paragraphs, *para)
		}
		return true
	})
	if paraErr != nil {
		return nil, paraErr
	}

	return section, nil
}

// classify assigns a paragraph its tagged variant. First match wins:
// code marker class, skip marker text, plain (no children), leading link,
// then unrecognized.
func (p *GuideParser) classify(sel *goquery.Selection, sectionTitle string, guide *core.Guide) (*core.Paragraph, error) {
	text := normalize.Text(sel.Text())

	if class, ok := p.codeClass(sel); ok {
		return p.codeParagraph(sel, class, text, sectionTitle, guide)
	}

	for _, marker := range p.skipMarkers {
		if strings.Contains(text, marker) {
			return &core.Paragraph{Kind: core.KindSkip, Text: text}, nil
		}
	}

	children := sel.Children()
	if children.Length() == 0 {
		return &core.Paragraph{Kind: core.KindPlain, Text: text}, nil
	}

	if first := children.First(); goquery.NodeName(first) == "a" {
		href, _ := first.Attr("href")
		return &core.Paragraph{
			Kind: core.KindLink,
			Text: text,
			Link: &core.Link{Text: normalize.Text(first.Text()), Href: href},
		}, nil
	}

	return p.unrecognizedParagraph(sel, text, sectionTitle, guide)
}

// codeClass reports whether any of the paragraph's classes is a code marker.
func (p *GuideParser) codeClass(sel *goquery.Selection) (string, bool) {
	attr, ok := sel.Attr("class")
	if !ok {
		return "", false
	}
	for _, c := range strings.Fields(attr) {
		if p.codeClasses[strings.ToLower(c)] {
			return strings.ToLower(c), true
		}
	}
	return "", false
}

// codeParagraph resolves the code block attached to a code-marker paragraph.
// The block is the first <pre> inside the next element sibling (or the
// sibling itself, when the sibling is a bare <pre>).
func (p *GuideParser) codeParagraph(sel *goquery.Selection, class, text, sectionTitle string, guide *core.Guide) (*core.Paragraph, error) {
	sib := sel.Next()
	if sib.Length() == 0 {
		return nil, p.violation(guide, fmt.Sprintf("%s: code paragraph %q has no following sibling", sectionTitle, text))
	}

	pre := sib
	if goquery.NodeName(sib) != "pre" {
		pre = sib.Find("pre").First()
		if pre.Length() == 0 {
			return nil, p.violation(guide, fmt.Sprintf("%s: no <pre> in sibling of code paragraph %q", sectionTitle, text))
		}
	}

	return &core.Paragraph{
		Kind: core.KindCode,
		Text: text,
		Code: &core.CodeExample{
			Caption: text,
			Class:   class,
			Lines:   codeLines(pre.Text()),
		},
	}, nil
}

// unrecognizedParagraph records the drop (or converts the fragment through
// the fallback path when KeepUnrecognized is set).
func (p *GuideParser) unrecognizedParagraph(sel *goquery.Selection, text, sectionTitle string, guide *core.Guide) (*core.Paragraph, error) {
	para := &core.Paragraph{Kind: core.KindUnrecognized, Text: text}

	if !p.opts.KeepUnrecognized {
		guide.Warnings = append(guide.Warnings,
			fmt.Sprintf("%s: dropping unrecognized paragraph %q", sectionTitle, snippet(text)))
		return para, nil
	}

	html, err := goquery.OuterHtml(sel)
	if err != nil {
		return nil, fmt.Errorf("%s: serializing unrecognized paragraph: %w", sectionTitle, err)
	}
	md, err := normalize.Fallback(html)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sectionTitle, err)
	}
	para.Markdown = md
	return para, nil
}

// violation turns a structural error into a warning under lenient mode.
// A nil return means the caller should drop the offending node and continue.
func (p *GuideParser) violation(guide *core.Guide, msg string) error {
	if p.opts.Lenient {
		guide.Warnings = append(guide.Warnings, msg+" (paragraph skipped)")
		return nil
	}
	return fmt.Errorf("%s", msg)
}

// codeLines splits a <pre> body into verbatim lines. The surrounding
// newlines that HTML formatting adds around <pre> content are trimmed;
// interior lines, including blank ones, are kept as-is.
func codeLines(text string) []string {
	return strings.Split(strings.Trim(text, "\n"), "\n")
}

// snippet shortens warning text so a long paragraph doesn't flood stderr.
func snippet(s string) string {
	const max = 60
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
