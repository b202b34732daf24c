// Package logger sets up logrus for the ufpath command line.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	colorRed    = 31
	colorYellow = 33
	colorBlue   = 36
	colorGray   = 37
)

const defaultTimestampFormat = "2006-01-02 15:04:05"

// LogOptions controls Init.
type LogOptions struct {
	// Verbose switches the level to debug.
	Verbose bool
	// DisableColor turns off ANSI colors.
	DisableColor bool
	// Output defaults to stderr when nil.
	Output io.Writer
}

// Init configures the standard logrus logger.
func Init(options LogOptions) {
	if options.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	if options.Output != nil {
		logrus.SetOutput(options.Output)
	}
	logrus.SetFormatter(&Formatter{DisableColor: options.DisableColor})
}

func colorByLevel(level logrus.Level) int {
	switch level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return colorGray
	case logrus.WarnLevel:
		return colorYellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return colorRed
	default:
		return colorBlue
	}
}

// Formatter prints "time [LEVEL] message key=value ..." lines.
type Formatter struct {
	DisableColor    bool
	HideLogTime     bool
	TimestampFormat string
}

// Format implements logrus.Formatter. Fields are printed in key order.
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	timestampFormat := f.TimestampFormat
	if timestampFormat == "" {
		timestampFormat = defaultTimestampFormat
	}
	if !f.HideLogTime {
		b.WriteString(entry.Time.Format(timestampFormat))
		b.WriteByte(' ')
	}

	line := fmt.Sprintf("[%s] %s", strings.ToUpper(entry.Level.String()), entry.Message)
	for _, k := range sortedKeys(entry.Data) {
		line += fmt.Sprintf(" %s=%v", k, entry.Data[k])
	}

	if f.DisableColor {
		b.WriteString(line)
	} else {
		fmt.Fprintf(b, "\033[%dm%s\033[0m", colorByLevel(entry.Level), line)
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func sortedKeys(data logrus.Fields) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
