package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func getConsole(level string) (*consoleLogger, *bytes.Buffer, *int) {
	buf := &bytes.Buffer{}
	code := -1
	l := NewConsoleLogger(level).(*consoleLogger)
	l.out = buf
	l.exit = func(c int) { code = c }
	return l, buf, &code
}

// Tests proper fields allocation.
func TestCorrectFields(t *testing.T) {
	r := withFields("f1", "f1", "f2", "f2")
	assert.Equal(t, 2, len(r))

	r = withFields("f1", "f1", "f2", "f2", "f3")
	assert.Equal(t, 2, len(r))
}

// Tests loading log level.
func TestLogLevel(t *testing.T) {
	in := map[string]Level{
		"warning":   LevelWarning,
		"warn":      LevelWarning,
		"error":     LevelError,
		"ERR":       LevelError,
		"debug":     LevelDebug,
		" dbg ":     LevelDebug,
		"info":      LevelInfo,
		"incorrect": LevelInfo,
		"":          LevelInfo,
	}

	for k, v := range in {
		assert.Equal(t, v, ParseLevel(k), k)
	}
}

// Tests messages filtering.
func TestConsoleLevels(t *testing.T) {
	l, buf, _ := getConsole("warn")
	l.Debug("debug message")
	l.Info("info message")
	assert.Equal(t, 0, buf.Len())

	l.Warn("warn message", "b", "2", "a", "1")
	out := buf.String()
	assert.True(t, strings.Contains(out, "warn message"))
	assert.True(t, strings.Index(out, "a: 1") < strings.Index(out, "b: 2"), "fields are not sorted")
}

// Tests error output.
func TestConsoleError(t *testing.T) {
	l, buf, code := getConsole("error")
	l.Error("failed", errors.New("boom"))
	assert.True(t, strings.Contains(buf.String(), "error: boom"))

	l.Fatal("fatal", nil)
	assert.Equal(t, 1, *code)
}
