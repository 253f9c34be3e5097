package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/FitzroyWoodruff/rustic/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool   `help:"Overwrite existing files"`
	Dir   string `short:"d" help:"Directory to initialize" default:"."`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	return RunInit(i.Dir, filepath.Base(root.Config), i.Force)
}

func RunInit(dir, configName string, force bool) error {
	fmt.Println("Initializing Rustic site")

	cfgPath := filepath.Join(dir, configName)
	fmt.Printf("Writing configuration to %s\n", cfgPath)
	if err := config.Init(cfgPath, force); err != nil {
		return err
	}

	starters := []struct {
		rel     string
		content string
	}{
		{filepath.Join("templates", "template.html"), starterTemplate},
		{filepath.Join("static", "style.css"), starterStylesheet},
		{filepath.Join("content", "index.md"), starterDocument},
	}

	for _, s := range starters {
		path := filepath.Join(dir, s.rel)
		if _, err := os.Stat(path); err == nil && !force {
			fmt.Printf("Keeping existing %s\n", path)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(s.content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("Writing %s\n", path)
	}

	fmt.Println("initialized successfully")
	return nil
}

const starterTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.title}}</title>
  <link rel="stylesheet" href="{{.link_prefix}}static/style.css">
</head>
<body>
  <header>
    <h1>{{.title}}</h1>
    <p class="stinger">{{.stinger}}</p>
  </header>
  <main>
{{.content}}
  </main>
</body>
</html>
`

const starterStylesheet = `body {
  max-width: 42rem;
  margin: 2rem auto;
  padding: 0 1rem;
  font-family: system-ui, sans-serif;
  line-height: 1.6;
}

.stinger {
  color: #666;
  font-style: italic;
}
`

const starterDocument = `---
title: "Welcome"
stinger: "Your new Rustic site"
---

## Hello

Edit ` + "`content/index.md`" + ` and run ` + "`rustic build`" + `.
`
