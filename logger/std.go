package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Std writes level-prefixed lines to a writer.
type Std struct {
	mu  sync.Mutex
	out io.Writer
}

var _ Logger = &Std{}

// NewStd returns a logger writing to out, or to stderr when out is nil.
func NewStd(out io.Writer) *Std {
	if out == nil {
		out = os.Stderr
	}
	return &Std{out: out}
}

func (l *Std) Debugf(format string, args ...any) { l.printf("DEBUG", format, args...) }

func (l *Std) Infof(format string, args ...any) { l.printf("INFO", format, args...) }

func (l *Std) Warnf(format string, args ...any) { l.printf("WARN", format, args...) }

func (l *Std) Errorf(format string, args ...any) { l.printf("ERROR", format, args...) }

func (l *Std) printf(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}
