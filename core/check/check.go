// Package check verifies the structure of a generated guide document by
// parsing it with goldmark and walking the AST. It backs the `check`
// command: after a conversion, the heading and fence counts here should
// line up with the section and code-example counts of the source page.
package check

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Report summarizes the structure of a generated Markdown document.
type Report struct {
	// Guidelines counts level-3 headings, one per converted article.
	Guidelines int
	// Headings counts headings of any level.
	Headings int
	// CodeBlocks counts fenced code blocks.
	CodeBlocks int
	// Untagged counts fenced code blocks without a language tag.
	Untagged int
	// Languages maps fence language tags to their block counts.
	Languages map[string]int
}

// Markdown parses the document and collects structural counts.
func Markdown(src []byte) (*Report, error) {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))

	report := &Report{Languages: map[string]int{}}

	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			report.Headings++
			if node.Level == 3 {
				report.Guidelines++
			}
		case *ast.FencedCodeBlock:
			report.CodeBlocks++
			lang := string(node.Language(src))
			if lang == "" {
				report.Untagged++
			} else {
				report.Languages[lang]++
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking markdown AST: %w", err)
	}

	return report, nil
}

// Problems returns human-readable findings, empty when the document looks
// like a well-formed generated guide.
func (r *Report) Problems() []string {
	var problems []string
	if r.Guidelines == 0 {
		problems = append(problems, "no guideline headings (###) found")
	}
	if r.Untagged > 0 {
		problems = append(problems, fmt.Sprintf("%d code block(s) missing a language tag", r.Untagged))
	}
	return problems
}
