package service

import (
	"fmt"
	"strings"
	"time"

	"bank-documents/domain"
)

// DocumentTemplate is a single renderable bank document.
type DocumentTemplate interface {
	Kind() domain.DocumentKind
	Category() domain.ClientCategory
	Title() string
	// Render returns the document text. now supplies the issue date; the
	// output depends on nothing else.
	Render(now time.Time) string
}

// fixedTemplate holds the title and body of one catalog variant. Variants
// only supply body lines, so the header block is always emitted first.
type fixedTemplate struct {
	kind     domain.DocumentKind
	category domain.ClientCategory
	title    string
	body     func(now time.Time) []string
}

func (t fixedTemplate) Kind() domain.DocumentKind       { return t.kind }
func (t fixedTemplate) Category() domain.ClientCategory { return t.category }
func (t fixedTemplate) Title() string                   { return t.title }

func (t fixedTemplate) Render(now time.Time) string {
	var b strings.Builder
	b.WriteString(documentHeader(t.title))
	for _, line := range t.body(now) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func documentHeader(title string) string {
	return fmt.Sprintf("=== %s ===\n%s\n", BrandMark, title)
}

func issueDate(now time.Time) string {
	return now.Format(issueDateLayout)
}
