// Package markdown converts Markdown document bodies into HTML fragments.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts Markdown bodies into HTML fragments using Goldmark.
//
// The renderer is stateless after construction and safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer constructs a renderer with CommonMark semantics. Raw HTML in the
// body is passed through unchanged; sanitization is the author's problem, not
// the generator's.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Render converts body into an HTML fragment. The fragment is not wrapped in
// a full document; that is the page template's job.
//
// There is no reject state: malformed Markdown renders best-effort per the
// CommonMark grammar, and output is byte-identical for identical input. The
// error return exists only to satisfy Goldmark's writer-based API; conversion
// into an in-memory buffer does not fail.
func (r *Renderer) Render(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(body, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
