// Package frontmatter extracts the YAML metadata block that every source
// document must carry and validates it against the required schema.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Meta is the required front matter schema. Every document must supply both
// fields; no defaults are substituted.
type Meta struct {
	Title   string `yaml:"title"`
	Stinger string `yaml:"stinger"`
}

// Validate checks that both required fields are present and non-empty.
func (m Meta) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Title, validation.Required),
		validation.Field(&m.Stinger, validation.Required),
	)
}

// ErrMissingFrontmatter indicates the document does not start with a YAML
// front matter block.
var ErrMissingFrontmatter = errors.New("document has no front matter block")

// ErrInvalidSchema indicates the front matter block does not deserialize into
// the required schema. A block with only one of the two required fields is the
// same failure class as a malformed block.
var ErrInvalidSchema = errors.New("front matter does not satisfy the required schema")

// Extract splits a raw document into its typed front matter and Markdown body.
//
// It is a pure function of the input: no defaults, no side effects. Failures
// are ErrMissingFrontmatter or ErrInvalidSchema (possibly wrapped with the
// underlying YAML or validation error).
func Extract(content []byte) (Meta, []byte, error) {
	fm, body, had := Split(content)
	if !had {
		return Meta{}, nil, ErrMissingFrontmatter
	}

	var meta Meta
	if err := yaml.Unmarshal(fm, &meta); err != nil {
		return Meta{}, nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	if err := meta.Validate(); err != nil {
		return Meta{}, nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	return meta, body, nil
}

// Split separates YAML front matter (`---` delimited) from the Markdown body.
//
// If the document does not start with a front matter delimiter, or the
// opening delimiter is never closed, had is false and body is the full input.
func Split(content []byte) (frontmatter []byte, body []byte, had bool) {
	nl := detectNewline(content)

	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false
	}

	frontmatterStart := len(open)
	closeLine := []byte("---" + nl)
	if bytes.HasPrefix(content[frontmatterStart:], closeLine) {
		bodyStart := frontmatterStart + len(closeLine)
		return []byte{}, content[bodyStart:], true
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[frontmatterStart:], closeSeq)
	if idx < 0 {
		// The closing delimiter may also be the last line of the file with no
		// trailing newline; such a document has an empty body.
		tail := []byte(nl + "---")
		if bytes.HasSuffix(content, tail) {
			frontmatterEnd := len(content) - len(tail) + len(nl)
			if frontmatterEnd >= frontmatterStart {
				return content[frontmatterStart:frontmatterEnd], []byte{}, true
			}
		}
		// Unterminated block: treat the whole input as body, matching the
		// permissive split behavior of common front matter parsers.
		return nil, content, false
	}

	frontmatterEnd := frontmatterStart + idx + len(nl)
	bodyStart := frontmatterStart + idx + len(closeSeq)
	return content[frontmatterStart:frontmatterEnd], content[bodyStart:], true
}

func detectNewline(content []byte) string {
	for i := 0; i+1 < len(content); i++ {
		if content[i] == '\r' && content[i+1] == '\n' {
			return "\r\n"
		}
		if content[i] == '\n' {
			return "\n"
		}
	}
	return "\n"
}
