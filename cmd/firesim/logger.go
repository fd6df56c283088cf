package main

import (
	"log"
	"os"

	"github.com/shopspring/decimal"

	"github.com/karimElmougi/firesim/internal/calculation"
)

var hundred = decimal.NewFromInt(100)

// stderrLogger adapts the standard library logger to the engine's Logger
// interface. Debug output is gated on --verbose.
type stderrLogger struct {
	l       *log.Logger
	verbose bool
}

func newLogger() calculation.Logger {
	return stderrLogger{
		l:       log.New(os.Stderr, "", log.LstdFlags),
		verbose: flagVerbose,
	}
}

func (s stderrLogger) Debugf(format string, args ...any) {
	if s.verbose {
		s.l.Printf("[DEBUG] "+format, args...)
	}
}

func (s stderrLogger) Infof(format string, args ...any) {
	if s.verbose {
		s.l.Printf("[INFO] "+format, args...)
	}
}

func (s stderrLogger) Warnf(format string, args ...any)  { s.l.Printf("[WARN] "+format, args...) }
func (s stderrLogger) Errorf(format string, args ...any) { s.l.Printf("[ERROR] "+format, args...) }
