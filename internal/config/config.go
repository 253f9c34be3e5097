// Package config loads and validates the site build configuration.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the conventional configuration file name.
const DefaultFile = "rustic.yaml"

// Config represents the complete site build configuration.
type Config struct {
	Input     string          `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Templates TemplatesConfig `yaml:"templates"`
	Static    StaticConfig    `yaml:"static"`
	Build     BuildConfig     `yaml:"build"`
}

// OutputConfig represents output tree configuration.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean"` // Clean output directory before build
}

// TemplatesConfig represents the page template configuration. All templates in
// Directory are parsed at startup; Page names the one used for document pages.
type TemplatesConfig struct {
	Directory string `yaml:"directory"`
	Page      string `yaml:"page"`
}

// StaticConfig represents the static asset directory copied verbatim into the
// output root before any document is processed.
type StaticConfig struct {
	Directory string `yaml:"directory"`
}

// BuildConfig represents document processing configuration.
type BuildConfig struct {
	SourceExtension string `yaml:"source_extension"`
	OutputExtension string `yaml:"output_extension"`
	Parallelism     int    `yaml:"parallelism"`
}

// Default returns the configuration used when no config file is present. The
// input/output defaults match the conventional content/ and public/ layout.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	// Load .env files if present. godotenv never overrides variables already
	// set, so process env wins, then the first file to define a key.
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				fmt.Fprintf(os.Stderr, "Note: %s couldn't be loaded: %v\n", envPath, err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// LoadOrDefault loads configPath if it exists and falls back to Default()
// otherwise. The build command uses this so a bare content tree builds with
// no configuration file at all.
func LoadOrDefault(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(configPath)
}

func (c *Config) applyDefaults() {
	if c.Input == "" {
		c.Input = "content"
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "public"
		c.Output.Clean = true
	}
	if c.Templates.Directory == "" {
		c.Templates.Directory = "templates"
	}
	if c.Templates.Page == "" {
		c.Templates.Page = "template.html"
	}
	if c.Static.Directory == "" {
		c.Static.Directory = "static"
	}
	if c.Build.SourceExtension == "" {
		c.Build.SourceExtension = ".md"
	}
	if c.Build.OutputExtension == "" {
		c.Build.OutputExtension = ".html"
	}
	if c.Build.Parallelism <= 0 {
		c.Build.Parallelism = runtime.NumCPU()
	}
}

// Validate checks the configuration after defaults are applied.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Input, validation.Required),
	); err != nil {
		return err
	}
	if err := validation.ValidateStruct(&c.Output,
		validation.Field(&c.Output.Directory, validation.Required),
	); err != nil {
		return err
	}
	if err := validation.ValidateStruct(&c.Templates,
		validation.Field(&c.Templates.Directory, validation.Required),
		validation.Field(&c.Templates.Page, validation.Required),
	); err != nil {
		return err
	}
	return validation.ValidateStruct(&c.Build,
		validation.Field(&c.Build.SourceExtension, validation.Required, validation.By(extensionRule)),
		validation.Field(&c.Build.OutputExtension, validation.Required, validation.By(extensionRule)),
		validation.Field(&c.Build.Parallelism, validation.Min(1)),
	)
}

func extensionRule(value any) error {
	s, _ := value.(string)
	if !strings.HasPrefix(s, ".") {
		return fmt.Errorf("must start with a dot, got %q", s)
	}
	return nil
}

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := `# Rustic site configuration
input: content

output:
  directory: public
  clean: true

templates:
  directory: templates
  page: template.html

static:
  directory: static

build:
  source_extension: .md
  output_extension: .html
  # parallelism: 4
`

	if err := os.WriteFile(configPath, []byte(example), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
