package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// Options configures the Logger.
type Options struct {
	// Out receives check and violation lines. Defaults to os.Stdout.
	Out io.Writer

	// DebugOut receives debug lines. Defaults to os.Stderr.
	DebugOut io.Writer

	// LogLevel controls which lines are printed:
	// error < warn < info < debug
	LogLevel LogLevel

	// Color selects styling: auto (only on a terminal), always or never.
	Color ColorMode
}

// Logger prints user-facing lines with a lipgloss style per level.
type Logger struct {
	out      io.Writer
	debugOut io.Writer
	mu       sync.Mutex
	style    styles
	logLevel LogLevel
}

type styles struct {
	logInfo  lipgloss.Style
	logWarn  lipgloss.Style
	logError lipgloss.Style
	logDebug lipgloss.Style
}

func defaultStyles(r *lipgloss.Renderer) styles {
	return styles{
		logInfo:  r.NewStyle(),
		logWarn:  r.NewStyle().Foreground(lipgloss.Color("11")), // yellow
		logError: r.NewStyle().Foreground(lipgloss.Color("9")),  // red
		logDebug: r.NewStyle().Faint(true),
	}
}

// New creates a new Logger.
func New(opts Options) *Logger {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.DebugOut == nil {
		opts.DebugOut = os.Stderr
	}

	return &Logger{
		out:      opts.Out,
		debugOut: opts.DebugOut,
		style:    defaultStyles(newRenderer(opts.Out, opts.Color)),
		logLevel: opts.LogLevel,
	}
}

func (l *Logger) SetLogLevel(logLevel LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logLevel = logLevel
}

// SetVerbosity maps a -v count to a level: info by default, debug from one.
func (l *Logger) SetVerbosity(cnt int) {
	if cnt <= 0 {
		l.SetLogLevel(LogLevelInfo)
		return
	}
	l.SetLogLevel(LogLevelDebug)
}

// SetColor rebuilds the styles for the given color mode.
func (l *Logger) SetColor(mode ColorMode) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.style = defaultStyles(newRenderer(l.out, mode))
}

func (l *Logger) Info(format string, args ...any) {
	l.printLog(l.out, LogLevelInfo, "========> ", l.style.logInfo, format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.printLog(l.out, LogLevelWarn, "[WARN] ", l.style.logWarn, format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.printLog(l.out, LogLevelError, "[ERROR] ", l.style.logError, format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.printLog(l.debugOut, LogLevelDebug, "[DEBG] ", l.style.logDebug, format, args...)
}

// Plain prints an unstyled line regardless of level.
func (l *Logger) Plain(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, format+"\n", args...)
}

func (l *Logger) printLog(w io.Writer, level LogLevel, prefix string, style lipgloss.Style, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level > l.logLevel {
		return
	}

	line := prefix + fmt.Sprintf(format, args...)
	fmt.Fprintln(w, style.Render(line))
}
