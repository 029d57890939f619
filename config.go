package ttable

import (
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// DefaultConfigFile is the configuration file looked up when none is given.
const DefaultConfigFile = "ttable.yaml"

// Config represents the ttable configuration
type Config struct {
	Output     OutputConfig     `yaml:"output"`
	Evaluation EvaluationConfig `yaml:"evaluation"`
}

// OutputConfig controls how truth tables are rendered
type OutputConfig struct {
	Format  string `yaml:"format"`
	Color   string `yaml:"color"`   // auto, always or never
	Trace   *bool  `yaml:"trace"`   // Pointer to distinguish between unset and false. Trace is shown unless set to false
	Summary bool   `yaml:"summary"` // Append row counts and classification
	File    string `yaml:"file"`    // Empty means stdout
}

// EvaluationConfig controls how rows are evaluated
type EvaluationConfig struct {
	Workers int  `yaml:"workers"` // 0 evaluates sequentially
	Verify  bool `yaml:"verify"`  // Cross-check every row with CEL
}

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// TraceEnabled returns true unless trace output is explicitly disabled
func (o *OutputConfig) TraceEnabled() bool {
	return o.Trace == nil || *o.Trace
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Return default configuration if file doesn't exist
	_, err = os.Stat(configPath)
	if os.IsNotExist(err) {
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	applyDefaults(&config)
	expandConfigEnvVars(&config)

	return &config, nil
}

// validateConfig validates the configuration for common errors and inconsistencies
func validateConfig(config *Config) error {
	if config.Output.Format != "" {
		validFormats := map[string]bool{
			"text":     true,
			"json":     true,
			"yaml":     true,
			"csv":      true,
			"markdown": true,
			"html":     true,
			"xml":      true,
		}
		if !validFormats[config.Output.Format] {
			return fmt.Errorf("%w: output.format '%s' is invalid: must be one of text, json, yaml, csv, markdown, html, xml", ErrConfigValidation, config.Output.Format)
		}
	}

	if config.Output.Color != "" {
		validModes := map[string]bool{
			ColorAuto:   true,
			ColorAlways: true,
			ColorNever:  true,
		}
		if !validModes[config.Output.Color] {
			return fmt.Errorf("%w: output.color '%s' is invalid: must be one of auto, always, never", ErrConfigValidation, config.Output.Color)
		}
	}

	if config.Evaluation.Workers < 0 {
		return fmt.Errorf("%w: evaluation.workers must be non-negative, got %d", ErrConfigValidation, config.Evaluation.Workers)
	}

	return nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format:  "text",
			Color:   ColorAuto,
			Trace:   nil, // Shown by default
			Summary: false,
		},
		Evaluation: EvaluationConfig{
			Workers: 0,
			Verify:  false,
		},
	}
}

// applyDefaults applies default values to missing configuration fields
func applyDefaults(config *Config) {
	if config.Output.Format == "" {
		config.Output.Format = "text"
	}

	if config.Output.Color == "" {
		config.Output.Color = ColorAuto
	}
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

var (
	bracedEnvVar = regexp.MustCompile(`\$\{([^}]+)\}`)
	bareEnvVar   = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR
func expandEnvVars(s string) string {
	s = bracedEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return bareEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}

// expandConfigEnvVars expands environment variables in path-like settings
func expandConfigEnvVars(config *Config) {
	config.Output.File = expandEnvVars(config.Output.File)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
