package site

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/FitzroyWoodruff/rustic/internal/frontmatter"
)

// ErrTemplateNotFound indicates the configured page template is not among the
// parsed templates.
var ErrTemplateNotFound = errors.New("page template not found")

// Engine holds the precompiled page templates. Templates are parsed once at
// startup and shared read-only across all document renders, so an Engine is
// safe for concurrent use.
type Engine struct {
	templates *template.Template
	page      string
}

// LoadTemplates parses every *.html file under dir and returns an Engine
// whose document pages render through the named page template. A missing
// directory, unparsable template, or absent page template is fatal to the
// whole run, not per-document.
func LoadTemplates(dir, page string) (*Engine, error) {
	tpl, err := template.New("").Option("missingkey=error").ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("parse templates in %s: %w", dir, err)
	}
	if tpl.Lookup(page) == nil {
		return nil, fmt.Errorf("%w: %s in %s", ErrTemplateNotFound, page, dir)
	}
	return &Engine{templates: tpl, page: page}, nil
}

// Compose binds the extracted metadata, rendered body fragment, and link
// prefix into the page template and returns the final page markup.
//
// The template sees exactly four named values: title, stinger, content, and
// link_prefix. The body fragment is inserted unescaped; title and stinger are
// escaped by the template engine. A template referencing any other value
// fails the render.
func (e *Engine) Compose(meta frontmatter.Meta, bodyHTML []byte, linkPrefix string) ([]byte, error) {
	ctx := map[string]any{
		"title":       meta.Title,
		"stinger":     meta.Stinger,
		"content":     template.HTML(bodyHTML),
		"link_prefix": linkPrefix,
	}

	var buf bytes.Buffer
	if err := e.templates.ExecuteTemplate(&buf, e.page, ctx); err != nil {
		return nil, fmt.Errorf("render %s: %w", e.page, err)
	}
	return buf.Bytes(), nil
}
