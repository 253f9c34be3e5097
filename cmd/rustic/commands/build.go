package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/FitzroyWoodruff/rustic/internal/config"
	rerrors "github.com/FitzroyWoodruff/rustic/internal/errors"
	"github.com/FitzroyWoodruff/rustic/internal/site"
)

// BuildCmd implements the 'build' command. The flags are pointers so kong
// leaves them nil unless the user set them; the built-in defaults live in
// the configuration layer.
type BuildCmd struct {
	Input  *string `short:"i" help:"Directory containing Markdown files (default: content)"`
	Output *string `short:"o" help:"Output directory for generated HTML (default: public)"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return rerrors.ConfigInvalid(err)
	}
	ApplyFlagOverrides(cfg, b.Input, b.Output)

	return RunBuild(cfg)
}

func RunBuild(cfg *config.Config) error {
	// Friendly user-facing messages go to stdout; structured logs to stderr.
	fmt.Println("Starting Rustic build")

	report, err := site.NewBuilder(cfg).Build(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Site generated successfully: %d pages in %s\n",
		report.Pages, report.Duration.Round(time.Millisecond))
	return nil
}
