package site

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/FitzroyWoodruff/rustic/internal/config"
	rerrors "github.com/FitzroyWoodruff/rustic/internal/errors"
	"github.com/FitzroyWoodruff/rustic/internal/logfields"
	"github.com/FitzroyWoodruff/rustic/internal/markdown"
)

// Builder orchestrates a full site build: output cleanup, static assets,
// template load, discovery, and per-document pipeline runs.
type Builder struct {
	cfg *config.Config
}

// Report summarizes one build run.
type Report struct {
	BuildID  string
	Pages    int
	Assets   int
	Duration time.Duration
}

// NewBuilder creates a builder for the given configuration.
func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{cfg: cfg}
}

// Build runs the whole site build. The first failure aborts the run; partial
// output may exist for documents that completed before the failure.
func (b *Builder) Build(ctx context.Context) (Report, error) {
	start := time.Now()
	report := Report{BuildID: uuid.NewString()}
	log := slog.With(logfields.BuildID(report.BuildID))

	// The shared page template is loaded before any document or output work;
	// a load failure is fatal to the whole run.
	engine, err := LoadTemplates(b.cfg.Templates.Directory, b.cfg.Templates.Page)
	if err != nil {
		return report, rerrors.TemplateLoadError(err)
	}

	if b.cfg.Output.Clean {
		if err := CleanOutput(b.cfg.Output.Directory); err != nil {
			return report, err
		}
	} else if err := os.MkdirAll(b.cfg.Output.Directory, 0o755); err != nil {
		return report, rerrors.FileSystemError("mkdir", b.cfg.Output.Directory, err)
	}

	assets, err := CopyStatic(b.cfg.Static.Directory, b.cfg.Output.Directory)
	if err != nil {
		return report, err
	}
	report.Assets = assets
	if assets > 0 {
		log.Info("Static assets copied", logfields.Assets(assets))
	}

	docs, err := Discover(b.cfg.Input, b.cfg.Build.SourceExtension)
	if err != nil {
		return report, rerrors.BuildFailed("discover", err).WithContext("path", b.cfg.Input)
	}
	if len(docs) == 0 {
		log.Warn("No documents found", logfields.Path(b.cfg.Input))
		return report, nil
	}

	pipeline := NewPipeline(
		b.cfg.Input,
		b.cfg.Output.Directory,
		b.cfg.Build.OutputExtension,
		markdown.NewRenderer(),
		engine,
	)

	// Documents are independent and their destinations unique, so they are
	// processed in parallel with no shared mutable state. The policy is
	// fail-fast: the first document error cancels the remaining work.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.cfg.Build.Parallelism)
	for _, doc := range docs {
		doc := doc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			log.Debug("Processing document", logfields.Source(doc.SourcePath))
			return pipeline.Process(doc)
		})
	}
	if err := g.Wait(); err != nil {
		return report, err
	}

	report.Pages = len(docs)
	report.Duration = time.Since(start)
	log.Info("Site generated successfully",
		logfields.Pages(report.Pages),
		logfields.DurationMS(float64(report.Duration.Milliseconds())))
	return report, nil
}
