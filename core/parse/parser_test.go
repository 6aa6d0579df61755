package parse

import (
	"strings"
	"testing"

	"github.com/evaldasg/md--betterspecs-org/core"
)

// guideHTML mirrors the structure of the guide page: articles with a linked
// heading, prose paragraphs, code-marker paragraphs followed by a sibling
// holding the <pre>, boilerplate, and one paragraph of unrecognized shape.
const guideHTML = `<html><head><title>  Better
Specs  </title></head><body>
<article id="describe">
  <h1><a href="#describe">How to describe your methods</a></h1>
  <p>Be   clear about what method
you are describing.</p>
  <p class="wrong">BAD</p>
  <div class="code"><pre>describe 'the authenticate method for User' do</pre></div>
  <p class="correct">GOOD</p>
  <div class="code"><pre>describe '.authenticate' do
describe '#admin?' do</pre></div>
  <p>Discuss this guideline further on the issue tracker.</p>
</article>
<article id="contexts">
  <h2><a href="#contexts">Use contexts</a></h2>
  <p><a href="https://rspec.info/">RSpec</a> contexts make tests clear.</p>
  <p><strong>Editor's note:</strong> shapes like this are not classified.</p>
</article>
</body></html>`

func mustParse(t *testing.T, p *GuideParser, html string) *core.Guide {
	t.Helper()
	guide, err := p.Parse(&core.SourceResult{Origin: "test.html", HTML: html})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return guide
}

func TestParseSectionsInDocumentOrder(t *testing.T) {
	guide := mustParse(t, New(Options{}), guideHTML)

	if len(guide.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(guide.Sections))
	}
	wantTitles := []string{"How to describe your methods", "Use contexts"}
	for i, want := range wantTitles {
		if got := guide.Sections[i].Title; got != want {
			t.Errorf("section %d title = %q, want %q", i, got, want)
		}
	}
	if guide.Meta.Sections != 2 {
		t.Errorf("Meta.Sections = %d, want 2", guide.Meta.Sections)
	}
	if guide.Meta.Title != "Better Specs" {
		t.Errorf("Meta.Title = %q, want %q", guide.Meta.Title, "Better Specs")
	}
}

func TestParseClassification(t *testing.T) {
	guide := mustParse(t, New(Options{}), guideHTML)

	first := guide.Sections[0]
	wantKinds := []core.ParagraphKind{core.KindPlain, core.KindCode, core.KindCode, core.KindSkip}
	if len(first.Paragraphs) != len(wantKinds) {
		t.Fatalf("paragraphs = %d, want %d", len(first.Paragraphs), len(wantKinds))
	}
	for i, want := range wantKinds {
		if got := first.Paragraphs[i].Kind; got != want {
			t.Errorf("paragraph %d kind = %q, want %q", i, got, want)
		}
	}

	second := guide.Sections[1]
	if len(second.Paragraphs) != 2 {
		t.Fatalf("second section paragraphs = %d, want 2", len(second.Paragraphs))
	}
	if got := second.Paragraphs[0].Kind; got != core.KindLink {
		t.Errorf("link paragraph kind = %q, want %q", got, core.KindLink)
	}
	if got := second.Paragraphs[1].Kind; got != core.KindUnrecognized {
		t.Errorf("unrecognized paragraph kind = %q, want %q", got, core.KindUnrecognized)
	}
}

func TestParsePlainTextNormalization(t *testing.T) {
	guide := mustParse(t, New(Options{}), guideHTML)

	text := guide.Sections[0].Paragraphs[0].Text
	if want := "Be clear about what method you are describing."; text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
	if strings.Contains(text, "\n") {
		t.Error("normalized text contains a line break")
	}
	if strings.Contains(text, "  ") {
		t.Error("normalized text contains a double space")
	}
}

func TestParseCodeExamples(t *testing.T) {
	guide := mustParse(t, New(Options{}), guideHTML)

	bad := guide.Sections[0].Paragraphs[1].Code
	if bad == nil {
		t.Fatal("code paragraph has no CodeExample")
	}
	if bad.Class != "wrong" {
		t.Errorf("class = %q, want %q", bad.Class, "wrong")
	}
	if bad.Caption != "BAD" {
		t.Errorf("caption = %q, want %q", bad.Caption, "BAD")
	}
	wantLines := []string{"describe 'the authenticate method for User' do"}
	if len(bad.Lines) != 1 || bad.Lines[0] != wantLines[0] {
		t.Errorf("lines = %q, want %q", bad.Lines, wantLines)
	}

	good := guide.Sections[0].Paragraphs[2].Code
	wantGood := []string{"describe '.authenticate' do", "describe '#admin?' do"}
	if len(good.Lines) != len(wantGood) {
		t.Fatalf("good lines = %d, want %d", len(good.Lines), len(wantGood))
	}
	for i, want := range wantGood {
		if good.Lines[i] != want {
			t.Errorf("good line %d = %q, want %q", i, good.Lines[i], want)
		}
	}
}

func TestParseLinkParagraph(t *testing.T) {
	guide := mustParse(t, New(Options{}), guideHTML)

	para := guide.Sections[1].Paragraphs[0]
	if para.Link == nil {
		t.Fatal("link paragraph has no Link")
	}
	if para.Link.Text != "RSpec" {
		t.Errorf("link text = %q, want %q", para.Link.Text, "RSpec")
	}
	if para.Link.Href != "https://rspec.info/" {
		t.Errorf("link href = %q, want %q", para.Link.Href, "https://rspec.info/")
	}
	if want := "RSpec contexts make tests clear."; para.Text != want {
		t.Errorf("text = %q, want %q", para.Text, want)
	}
}

func TestParseUnrecognizedDropWarns(t *testing.T) {
	guide := mustParse(t, New(Options{}), guideHTML)

	var found bool
	for _, w := range guide.Warnings {
		if strings.Contains(w, "unrecognized paragraph") {
			found = true
		}
	}
	if !found {
		t.Errorf("no warning recorded for dropped paragraph, warnings = %q", guide.Warnings)
	}
}

func TestParseKeepUnrecognized(t *testing.T) {
	guide := mustParse(t, New(Options{KeepUnrecognized: true}), guideHTML)

	para := guide.Sections[1].Paragraphs[1]
	if para.Markdown == "" {
		t.Fatal("KeepUnrecognized did not fill fallback Markdown")
	}
	if !strings.Contains(para.Markdown, "**Editor's note:**") {
		t.Errorf("fallback markdown = %q, want bold editor's note", para.Markdown)
	}
	for _, w := range guide.Warnings {
		if strings.Contains(w, "unrecognized") {
			t.Errorf("kept paragraph still warned: %q", w)
		}
	}
}

func TestParseStructuralViolations(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		wantErr string
	}{
		{
			name:    "article without title link",
			html:    `<article><h1>No link here</h1><p>text</p></article>`,
			wantErr: "no title link",
		},
		{
			name: "code paragraph without sibling",
			html: `<article><h1><a href="#x">X</a></h1>` +
				`<p class="wrong">caption</p></article>`,
			wantErr: "no following sibling",
		},
		{
			name: "sibling without pre",
			html: `<article><h1><a href="#x">X</a></h1>` +
				`<p class="wrong">caption</p><div>no code</div></article>`,
			wantErr: "no <pre>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Options{}).Parse(&core.SourceResult{Origin: "t", HTML: tt.html})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseLenientSkipsViolations(t *testing.T) {
	html := `<article><h1><a href="#x">X</a></h1>` +
		`<p class="wrong">caption</p><div>no code</div>` +
		`<p>Still here.</p></article>`

	guide := mustParse(t, New(Options{Lenient: true}), html)

	if len(guide.Sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(guide.Sections))
	}
	paras := guide.Sections[0].Paragraphs
	if len(paras) != 1 || paras[0].Kind != core.KindPlain {
		t.Errorf("paragraphs = %+v, want single plain paragraph", paras)
	}
	if len(guide.Warnings) == 0 {
		t.Error("lenient skip recorded no warning")
	}
}

func TestParseBareSiblingPre(t *testing.T) {
	html := `<article><h1><a href="#x">X</a></h1>` +
		`<p class="base">base case</p><pre>it 'works' do</pre></article>`

	guide := mustParse(t, New(Options{}), html)

	code := guide.Sections[0].Paragraphs[0].Code
	if code == nil {
		t.Fatal("no CodeExample for bare <pre> sibling")
	}
	if len(code.Lines) != 1 || code.Lines[0] != "it 'works' do" {
		t.Errorf("lines = %q", code.Lines)
	}
}

func TestParseCustomCodeClasses(t *testing.T) {
	html := `<article><h1><a href="#x">X</a></h1>` +
		`<p class="sample">caption</p><div><pre>code</pre></div></article>`

	// Default classes treat .sample as plain prose.
	guide := mustParse(t, New(Options{}), html)
	if got := guide.Sections[0].Paragraphs[0].Kind; got != core.KindPlain {
		t.Errorf("default kind = %q, want %q", got, core.KindPlain)
	}

	guide = mustParse(t, New(Options{CodeClasses: []string{"sample"}}), html)
	if got := guide.Sections[0].Paragraphs[0].Kind; got != core.KindCode {
		t.Errorf("custom kind = %q, want %q", got, core.KindCode)
	}
}

func TestParseSkipMarkers(t *testing.T) {
	for _, marker := range []string{
		"Discuss this guideline further",
		"Learn more about contexts",
		"More about stubbing",
	} {
		html := `<article><h1><a href="#x">X</a></h1><p>` + marker + `</p></article>`
		guide := mustParse(t, New(Options{}), html)
		if got := guide.Sections[0].Paragraphs[0].Kind; got != core.KindSkip {
			t.Errorf("%q classified as %q, want %q", marker, got, core.KindSkip)
		}
	}
}

func TestParseNoArticles(t *testing.T) {
	_, err := New(Options{}).Parse(&core.SourceResult{Origin: "empty.html", HTML: "<html><body></body></html>"})
	if err == nil {
		t.Fatal("expected error for document without articles")
	}
	if !strings.Contains(err.Error(), "no article nodes") {
		t.Errorf("error = %q", err)
	}
}
