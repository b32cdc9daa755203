package logging

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := New()
	logger.SetLevel(level)
	logger.SetWriter(&buf)
	return logger, &buf
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  Level
		logLevel  Level
		shouldLog bool
	}{
		{"debug allowed at debug", LevelDebug, LevelDebug, true},
		{"error allowed at debug", LevelDebug, LevelError, true},
		{"debug blocked at info", LevelInfo, LevelDebug, false},
		{"info allowed at info", LevelInfo, LevelInfo, true},
		{"info blocked at warn", LevelWarn, LevelInfo, false},
		{"warn allowed at warn", LevelWarn, LevelWarn, true},
		{"warn blocked at error", LevelError, LevelWarn, false},
		{"error allowed at error", LevelError, LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(tt.minLevel)

			switch tt.logLevel {
			case LevelDebug:
				logger.Debug("test message")
			case LevelInfo:
				logger.Info("test message")
			case LevelWarn:
				logger.Warn("test message")
			case LevelError:
				logger.Error("test message")
			}

			if tt.shouldLog {
				assert.Contains(t, buf.String(), "test message")
			} else {
				assert.Empty(t, buf.String(), "expected no log output")
			}
		})
	}
}

func TestLoggerWithKeepsOrder(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	child := logger.With("runner", 1, "selector", ".dots")
	child.Warn("duplicate ignored", "frames", 4)

	assert.Equal(t, "WARN: duplicate ignored | runner=1 selector=.dots frames=4\n", buf.String())
}

func TestLoggerInlineOverridesField(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	logger.With("count", 1).Info("tick", "count", 2)

	assert.Equal(t, "INFO: tick | count=2\n", buf.String())
}

func TestLoggerChildSharesLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)
	child := logger.With("runner", 0)

	logger.SetLevel(LevelError)
	child.Warn("filtered")
	assert.Empty(t, buf.String())
	assert.Equal(t, LevelError, child.Level())
}

func TestLoggerOriginalUnmodified(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	_ = logger.With("runner", "a")
	logger.Info("original logger")

	assert.NotContains(t, buf.String(), "runner=a")
}

func TestLoggerIgnoresNonStringKeys(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	logger.Info("odd", 42, "value", "dangling")

	assert.Equal(t, "INFO: odd\n", buf.String())
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{"simple string", "hello", "hello"},
		{"empty string", "", `""`},
		{"string with spaces", "hello world", `"hello world"`},
		{"string with newline", "a\nb", `"a\nb"`},
		{"integer", 42, "42"},
		{"error", errors.New("oops"), `"oops"`},
		{"stringer", LevelInfo, "INFO"},
		{"bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatValue(tt.input))
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{" warn ", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(log.New(&buf, "", 0))
	SetLevel(LevelWarn)
	t.Cleanup(func() {
		SetLevel(LevelWarn)
		SetOutput(log.New(os.Stderr, "", log.LstdFlags))
	})

	Debug("debug message")
	assert.Empty(t, buf.String())

	Warn("warn message")
	assert.Contains(t, buf.String(), "WARN: warn message")

	buf.Reset()
	With("component", "test").Error("error message")
	assert.True(t, strings.HasPrefix(buf.String(), "ERROR: error message"))
	assert.Contains(t, buf.String(), "component=test")
	assert.Same(t, defaultLogger, Default())
}
