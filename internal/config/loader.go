package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/thruflo/seqrun/internal/logging"
	"github.com/thruflo/seqrun/internal/sequence"
	"github.com/thruflo/seqrun/internal/target"
)

// Default values for Config.
const (
	DefaultFileName = "seqrun.yaml"
	DefaultLogLevel = logging.LevelWarn
	DefaultElement  = "span" + sequence.DefaultSelector
)

// DefaultConfig returns a Config with one default runner over one element.
func DefaultConfig() Config {
	return Config{
		LogLevel: DefaultLogLevel,
		Elements: []string{DefaultElement},
		Runners:  []sequence.Options{{}},
	}
}

// ValidationError represents a structural problem in a config file.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// LoadConfig reads and parses the config file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

var unknownFieldPattern = regexp.MustCompile(`field (\S+) not found in type`)

// ParseConfig decodes a config document. Unknown top-level keys are
// rejected; unknown runner options fail with *sequence.ConfigurationError.
// Missing sections take their defaults and an empty document yields
// DefaultConfig.
func ParseConfig(data []byte) (*Config, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		if m := unknownFieldPattern.FindStringSubmatch(err.Error()); m != nil {
			return nil, ValidationError{Field: m[1], Message: "unknown field"}
		}
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := DefaultConfig()

	if f.LogLevel != "" {
		level, err := logging.ParseLevel(f.LogLevel)
		if err != nil {
			return nil, ValidationError{Field: "log_level", Message: err.Error()}
		}
		cfg.LogLevel = level
	}

	if f.Elements != nil {
		cfg.Elements = *f.Elements
	}

	if f.Runners != nil {
		cfg.Runners = make([]sequence.Options, len(*f.Runners))
		for i, raw := range *f.Runners {
			opts, err := sequence.DecodeOptions(raw)
			if err != nil {
				return nil, fmt.Errorf("runners[%d]: %w", i, err)
			}
			cfg.Runners[i] = opts
		}
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateConfig checks that the page can be built and that there is
// something to run.
func ValidateConfig(cfg *Config) error {
	if len(cfg.Elements) == 0 {
		return ValidationError{Field: "elements", Message: "at least one element is required"}
	}
	if len(cfg.Runners) == 0 {
		return ValidationError{Field: "runners", Message: "at least one runner is required"}
	}
	if _, err := cfg.Page(); err != nil {
		return ValidationError{Field: "elements", Message: err.Error()}
	}
	return nil
}

// Page builds a fresh page from the element list.
func (c *Config) Page() (*target.Page, error) {
	nodes := make([]*target.Node, 0, len(c.Elements))
	for _, notation := range c.Elements {
		n, err := target.ParseElement(notation)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return target.NewPage(nodes...)
}
