package headless

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/entrhq/fpview/pkg/presenter"
)

// LogLevel represents the report verbosity level
type LogLevel int

const (
	// LogLevelQuiet shows only errors, warnings and the final summary
	LogLevelQuiet LogLevel = iota
	// LogLevelNormal shows progress and the grouped report (default)
	LogLevelNormal
	// LogLevelVerbose adds the raw record
	LogLevelVerbose
	// LogLevelDebug adds internal details
	LogLevelDebug
)

// Logger prints the human-readable headless report.
type Logger struct {
	level  LogLevel
	writer io.Writer

	// ANSI color codes, empty when color is off
	colorReset     string
	colorGreen     string
	colorCyan      string
	colorSalmon    string
	colorYellow    string
	colorRed       string
	colorGray      string
	colorBoldGreen string
	colorBoldRed   string
	colorBoldWhite string

	stepCount int
}

// NewLogger creates a report logger writing to stdout.
func NewLogger(level LogLevel) *Logger {
	return NewWriterLogger(level, os.Stdout, true)
}

// NewWriterLogger creates a report logger writing to w.
func NewWriterLogger(level LogLevel, w io.Writer, color bool) *Logger {
	l := &Logger{level: level, writer: w}
	if color {
		l.colorReset = "\033[0m"
		l.colorGreen = "\033[32m"
		l.colorCyan = "\033[36m"
		l.colorSalmon = "\033[38;5;217m" // Salmon pink #FFB3BA
		l.colorYellow = "\033[33m"
		l.colorRed = "\033[31m"
		l.colorGray = "\033[90m"
		l.colorBoldGreen = "\033[1;32m"
		l.colorBoldRed = "\033[1;31m"
		l.colorBoldWhite = "\033[1;37m"
	}
	return l
}

// Header prints a prominent header message
func (l *Logger) Header(message string) {
	if l.level >= LogLevelNormal {
		fmt.Fprintf(l.writer, "\n%s%s%s\n", l.colorBoldWhite, strings.Repeat("=", 70), l.colorReset)
		fmt.Fprintf(l.writer, "%s  %s%s\n", l.colorBoldWhite, message, l.colorReset)
		fmt.Fprintf(l.writer, "%s%s%s\n", l.colorBoldWhite, strings.Repeat("=", 70), l.colorReset)
	}
}

// Section prints a section divider
func (l *Logger) Section(title string) {
	if l.level >= LogLevelNormal {
		fmt.Fprintln(l.writer)
		fmt.Fprintf(l.writer, "%s▶ %s%s\n", l.colorCyan, title, l.colorReset)
		fmt.Fprintf(l.writer, "%s%s%s\n", l.colorGray, strings.Repeat("─", 50), l.colorReset)
	}
}

// Step prints a numbered step
func (l *Logger) Step(message string) {
	if l.level >= LogLevelNormal {
		l.stepCount++
		fmt.Fprintf(l.writer, "\n%s[%d] %s%s\n", l.colorCyan, l.stepCount, message, l.colorReset)
	}
}

// Field prints one labelled slot value. Status badges print as colored marks.
func (l *Logger) Field(label, value string) {
	if l.level < LogLevelNormal {
		return
	}
	p := presenter.Decode(value)
	switch p.Badge {
	case presenter.BadgeSuccess:
		fmt.Fprintf(l.writer, "  %-20s %s✓ %s%s\n", label, l.colorGreen, p.Text, l.colorReset)
	case presenter.BadgeFailure:
		fmt.Fprintf(l.writer, "  %-20s %s✗ %s%s\n", label, l.colorRed, p.Text, l.colorReset)
	default:
		fmt.Fprintf(l.writer, "  %-20s %s\n", label, p.Text)
	}
}

// Item prints a bulleted list entry
func (l *Logger) Item(value string) {
	if l.level >= LogLevelNormal {
		fmt.Fprintf(l.writer, "  • %s\n", presenter.Decode(value).Text)
	}
}

// Block prints preformatted text (only in verbose mode)
func (l *Logger) Block(text string) {
	if l.level >= LogLevelVerbose {
		fmt.Fprintln(l.writer, text)
	}
}

// Successf prints a success message with checkmark
func (l *Logger) Successf(format string, args ...interface{}) {
	if l.level >= LogLevelNormal {
		msg := fmt.Sprintf(format, args...)
		fmt.Fprintf(l.writer, "%s✓ %s%s\n", l.colorBoldGreen, msg, l.colorReset)
	}
}

// Infof prints an informational message
func (l *Logger) Infof(format string, args ...interface{}) {
	if l.level >= LogLevelNormal {
		msg := fmt.Sprintf(format, args...)
		fmt.Fprintf(l.writer, "%s%s%s\n", l.colorSalmon, msg, l.colorReset)
	}
}

// Warningf prints a warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.writer, "%s⚠ Warning: %s%s\n", l.colorYellow, msg, l.colorReset)
}

// Errorf prints an error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.writer, "%s✗ %s%s\n", l.colorBoldRed, msg, l.colorReset)
}

// Debugf prints debug information (only in debug mode)
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.level >= LogLevelDebug {
		msg := fmt.Sprintf(format, args...)
		fmt.Fprintf(l.writer, "%s[DEBUG] %s%s\n", l.colorGray, msg, l.colorReset)
	}
}

// Summary prints the final run summary. It is printed at every level.
func (l *Logger) Summary(summary *ScanSummary) {
	fmt.Fprintln(l.writer)
	fmt.Fprintf(l.writer, "%s%s%s\n", l.colorBoldWhite, strings.Repeat("=", 70), l.colorReset)
	fmt.Fprintf(l.writer, "%s  SCAN SUMMARY%s\n", l.colorBoldWhite, l.colorReset)
	fmt.Fprintf(l.writer, "%s%s%s\n", l.colorBoldWhite, strings.Repeat("=", 70), l.colorReset)

	l.printStatus(summary.Status)
	if summary.Hash != "" {
		fmt.Fprintf(l.writer, "  Hash: %s\n", summary.Hash)
	}
	fmt.Fprintf(l.writer, "  Duration: %s\n", summary.Duration.Round(time.Millisecond))

	if len(summary.Artifacts) > 0 {
		fmt.Fprintf(l.writer, "\n  Artifacts:\n")
		for _, path := range summary.Artifacts {
			fmt.Fprintf(l.writer, "    • %s\n", path)
		}
	}

	if summary.Error != "" {
		fmt.Fprintln(l.writer)
		fmt.Fprintf(l.writer, "%s  Error Details:%s\n", l.colorBoldRed, l.colorReset)
		fmt.Fprintf(l.writer, "%s    %s%s\n", l.colorRed, summary.Error, l.colorReset)
	}

	fmt.Fprintf(l.writer, "%s%s%s\n", l.colorBoldWhite, strings.Repeat("=", 70), l.colorReset)
	fmt.Fprintln(l.writer)
}

func (l *Logger) printStatus(status string) {
	fmt.Fprint(l.writer, "  Status: ")
	switch status {
	case statusSuccess:
		fmt.Fprintf(l.writer, "%s✓ SUCCESS%s\n", l.colorBoldGreen, l.colorReset)
	case statusFailed:
		fmt.Fprintf(l.writer, "%s✗ FAILED%s\n", l.colorBoldRed, l.colorReset)
	default:
		fmt.Fprintln(l.writer, status)
	}
}

// parseLogLevel converts a string log level to LogLevel type
func parseLogLevel(level string) LogLevel {
	switch level {
	case "quiet":
		return LogLevelQuiet
	case "normal":
		return LogLevelNormal
	case "verbose":
		return LogLevelVerbose
	case "debug":
		return LogLevelDebug
	default:
		return LogLevelNormal
	}
}
