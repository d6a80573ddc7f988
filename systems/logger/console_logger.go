// Package logger provides go-home logger implementations.
package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"go-home.io/x/neato/plugins/common"
)

// Level describes minimal level of printed messages.
type Level int

const (
	// LevelDebug prints everything.
	LevelDebug Level = iota
	// LevelInfo prints info and above.
	LevelInfo
	// LevelWarning prints warnings and above.
	LevelWarning
	// LevelError prints errors only.
	LevelError
)

// Default console logger.
type consoleLogger struct {
	level Level
	out   io.Writer
	exit  func(int)
}

// NewConsoleLogger constructs a new console logger.
func NewConsoleLogger(level string) common.ILoggerProvider {
	return &consoleLogger{
		level: ParseLevel(level),
		out:   color.Output,
		exit:  os.Exit,
	}
}

// ParseLevel converts config value into log level.
// Unknown values fall back to info.
func ParseLevel(level string) Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "dbg":
		return LevelDebug
	case "warning", "warn":
		return LevelWarning
	case "error", "err":
		return LevelError
	}

	return LevelInfo
}

// Debug prints debug level message.
func (p *consoleLogger) Debug(msg string, fields ...string) {
	p.output(LevelDebug, msg, withFields(fields...), color.FgCyan)
}

// Info prints info level message.
func (p *consoleLogger) Info(msg string, fields ...string) {
	p.output(LevelInfo, msg, withFields(fields...), color.FgGreen)
}

// Warn prints warning level message.
func (p *consoleLogger) Warn(msg string, fields ...string) {
	p.output(LevelWarning, msg, withFields(fields...), color.FgYellow)
}

// Error prints error level message.
func (p *consoleLogger) Error(msg string, err error, fields ...string) {
	fields = append(fields, common.LogErrorToken, errorString(err))
	p.output(LevelError, msg, withFields(fields...), color.FgRed)
}

// Fatal prints fatal level message and exits.
func (p *consoleLogger) Fatal(msg string, err error, fields ...string) {
	fields = append(fields, common.LogErrorToken, errorString(err))
	p.output(LevelError, msg, withFields(fields...), color.FgRed)
	p.exit(1)
}

// Helper method to add generic fields to the output.
func withFields(fields ...string) map[string]string {
	fLen := len(fields)
	result := make(map[string]string, int(fLen/2))
	for ii := 0; ii < fLen; ii += 2 {
		if ii+1 >= fLen {
			break
		}

		result[fields[ii]] = fields[ii+1]
	}

	return result
}

// Prepares final string and prints it.
func (p *consoleLogger) output(level Level, msg string, fields map[string]string, c color.Attribute) {
	if level < p.level {
		return
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	newM := fmt.Sprintf("%s   %s", time.Now().Local().Format(time.StampMilli), msg)
	for _, k := range keys {
		newM = fmt.Sprintf("%s\n          %s: %s", newM, k, fields[k])
	}

	//noinspection GoUnhandledErrorResult
	color.New(c).Fprintln(p.out, newM) // nolint: gosec
}

// Nil-safe error message.
func errorString(err error) string {
	if nil == err {
		return ""
	}

	return err.Error()
}
