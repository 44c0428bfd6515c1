package utils

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
)

var colors = []color.Attribute{color.FgYellow, color.FgGreen, color.FgRed, color.FgWhite, color.FgMagenta}
var index = -1

var l sync.Mutex

const MaxNameLength = 20

// ColorLogger provides an io.Writer that prefixes every line with a colored
// name.
type ColorLogger struct {
	name   string
	writer io.Writer
	c      *color.Color
}

func NewColorLogger(name string, writer io.Writer, newColor bool) io.Writer {
	l.Lock()
	defer l.Unlock()
	if newColor || index < 0 {
		index = (index + 1) % len(colors)
	}

	if len(name) > MaxNameLength {
		name = name[:MaxNameLength-3] + "..."
	}

	return &ColorLogger{
		name:   name,
		writer: writer,
		c:      color.New(colors[index]),
	}
}

func (c *ColorLogger) Write(p []byte) (int, error) {
	for _, line := range bytes.SplitAfter(p, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		if _, err := c.c.Fprint(c.writer, c.name, " | "); err != nil {
			return 0, err
		}
		if _, err := c.writer.Write(line); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

// NewLogger returns a logger writing to output through a ColorLogger. An
// unknown level is an error rather than hclog's silent fallback to info.
func NewLogger(name, level string, output io.Writer) (hclog.Logger, error) {
	if output == nil {
		output = os.Stderr
	}
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  lvl,
		Output: NewColorLogger(name, output, true),
	}), nil
}

// LogLevel returns level, falling back to QTMATRIX_LOG_LEVEL and then warn.
func LogLevel(level string) string {
	if level != "" {
		return level
	}
	if env := os.Getenv("QTMATRIX_LOG_LEVEL"); env != "" {
		return env
	}
	return "warn"
}
