package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Level defines the severity of a log message.
type Level int

const (
	TRACE Level = iota
	DEBUG
	INFO
	WARN
	ERROR
)

// Logger prints leveled messages to a writer and keeps a bounded in-memory
// tail so a presentation shell can display recent activity.
type Logger struct {
	mu       sync.Mutex
	std      *log.Logger
	tail     []string
	maxLines int
	minLevel Level
}

// New creates a Logger writing to stderr that retains at most maxLines
// recent entries.
func New(maxLines int) *Logger {
	return NewWithWriter(os.Stderr, maxLines)
}

// NewWithWriter creates a Logger writing to w.
func NewWithWriter(w io.Writer, maxLines int) *Logger {
	if maxLines <= 0 {
		maxLines = 100
	}
	return &Logger{
		std:      log.New(w, "", log.Ldate|log.Ltime),
		tail:     make([]string, 0, maxLines),
		maxLines: maxLines,
		minLevel: INFO,
	}
}

// SetLevel updates the minimum level that will be emitted.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

func (l *Logger) logf(level Level, format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.minLevel {
		return
	}

	entry := fmt.Sprintf("[%s] %s", level, fmt.Sprintf(format, v...))
	l.std.Output(3, entry)

	l.tail = append(l.tail, entry)
	if len(l.tail) > l.maxLines {
		l.tail = l.tail[len(l.tail)-l.maxLines:]
	}
}

// Tracef logs a trace message.
func (l *Logger) Tracef(format string, v ...any) { l.logf(TRACE, format, v...) }

// Debugf logs a debug message.
func (l *Logger) Debugf(format string, v ...any) { l.logf(DEBUG, format, v...) }

// Infof logs an info message.
func (l *Logger) Infof(format string, v ...any) { l.logf(INFO, format, v...) }

// Warnf logs a warning message.
func (l *Logger) Warnf(format string, v ...any) { l.logf(WARN, format, v...) }

// Errorf logs an error message.
func (l *Logger) Errorf(format string, v ...any) { l.logf(ERROR, format, v...) }

// Tail returns a copy of the retained recent entries.
func (l *Logger) Tail() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.tail))
	copy(out, l.tail)
	return out
}

// Clear drops all retained entries.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tail = l.tail[:0]
}

func (l Level) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
