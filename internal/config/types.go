package config

import (
	"github.com/thruflo/seqrun/internal/logging"
	"github.com/thruflo/seqrun/internal/sequence"
)

// File is the on-disk layout of seqrun.yaml. Runner entries stay loosely
// typed so that option names are checked by sequence.DecodeOptions.
type File struct {
	LogLevel string            `yaml:"log_level"`
	Elements *[]string         `yaml:"elements"`
	Runners  *[]map[string]any `yaml:"runners"`
}

// Config is a loaded, validated seqrun.yaml.
type Config struct {
	// LogLevel is the minimum level for the package logger.
	LogLevel logging.Level
	// Elements lists the page in selector notation, in document order.
	Elements []string
	// Runners holds one option set per runner.
	Runners []sequence.Options
}
