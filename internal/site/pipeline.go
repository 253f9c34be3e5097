package site

import (
	"log/slog"
	"os"
	"path/filepath"

	rerrors "github.com/FitzroyWoodruff/rustic/internal/errors"
	"github.com/FitzroyWoodruff/rustic/internal/frontmatter"
	"github.com/FitzroyWoodruff/rustic/internal/logfields"
	"github.com/FitzroyWoodruff/rustic/internal/markdown"
	"github.com/FitzroyWoodruff/rustic/internal/paths"
)

// Pipeline drives one document through extract → render → resolve → compose
// and writes the resulting page to its destination.
//
// A Pipeline holds only read-only collaborators and is safe for concurrent
// use; documents resolve to unique destinations, so parallel Process calls
// never write the same file.
type Pipeline struct {
	inputRoot  string
	outputRoot string
	outputExt  string
	renderer   *markdown.Renderer
	engine     *Engine
}

// NewPipeline creates a pipeline writing pages under outputRoot.
func NewPipeline(inputRoot, outputRoot, outputExt string, renderer *markdown.Renderer, engine *Engine) *Pipeline {
	return &Pipeline{
		inputRoot:  inputRoot,
		outputRoot: outputRoot,
		outputExt:  outputExt,
		renderer:   renderer,
		engine:     engine,
	}
}

// Process transforms a single document and writes the composed page,
// creating intermediate directories as needed and overwriting any existing
// file at the destination.
//
// The first failing stage wins, tagged with the offending source path, and
// nothing is written for that document. All failures are deterministic for a
// given input; nothing is retried.
func (p *Pipeline) Process(doc Document) error {
	meta, body, err := frontmatter.Extract(doc.Raw)
	if err != nil {
		return rerrors.MetadataError(doc.SourcePath, err)
	}

	bodyHTML, err := p.renderer.Render(body)
	if err != nil {
		return rerrors.BuildFailed("render", err).WithContext("source", doc.SourcePath)
	}

	info, err := paths.Resolve(doc.SourcePath, p.inputRoot, p.outputRoot, p.outputExt)
	if err != nil {
		return rerrors.PathError(doc.SourcePath, err)
	}

	page, err := p.engine.Compose(meta, bodyHTML, info.LinkPrefix)
	if err != nil {
		return rerrors.TemplateRenderError(doc.SourcePath, err)
	}

	destDir := filepath.Dir(info.Destination)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return rerrors.FileSystemError("mkdir", destDir, err).WithContext("source", doc.SourcePath)
	}
	if err := os.WriteFile(info.Destination, page, 0o644); err != nil {
		return rerrors.FileSystemError("write", info.Destination, err).WithContext("source", doc.SourcePath)
	}

	slog.Debug("Page written",
		logfields.Source(doc.SourcePath),
		logfields.Destination(info.Destination))
	return nil
}
