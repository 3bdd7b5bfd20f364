// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"syscall"
	"time"

	"github.com/katalvlaran/primespiral"
	"github.com/katalvlaran/primespiral/pattern"
	"github.com/katalvlaran/primespiral/sweep"
)

// ErrUnknownFormat indicates no writer is registered under the requested name.
var ErrUnknownFormat = fmt.Errorf("report: unknown format: %w", primespiral.ErrInvalidInput)

// Document is the serialized envelope of one analysis run.
type Document struct {
	RunID           string                   `json:"run_id" yaml:"run_id"`
	Primes          int                      `json:"primes" yaml:"primes"`
	Direction       string                   `json:"direction" yaml:"direction"`
	Range           sweep.Range              `json:"range" yaml:"range"`
	GeneratedAt     time.Time                `json:"generated_at" yaml:"generated_at"`
	Classifications []pattern.Classification `json:"classifications" yaml:"classifications"`
}

// NewDocument classifies a and wraps the result with run metadata.
func NewDocument(runID string, a *pattern.Analysis, direction string, at time.Time) *Document {
	d := &Document{
		RunID:           runID,
		Direction:       direction,
		GeneratedAt:     at.UTC(),
		Classifications: pattern.Classify(a),
	}
	if a != nil {
		d.Primes = a.Primes
		d.Range = a.Range
	}

	return d
}

// Options tunes individual writers.
//
// All – text format also lists irregular angles.
type Options struct {
	All bool
}

// WriterFunc renders doc to w.
type WriterFunc func(w io.Writer, doc *Document, opts Options) error

var (
	mu      sync.RWMutex
	writers = map[string]WriterFunc{}
)

// Register installs fn under format; a later registration wins.
func Register(format string, fn WriterFunc) {
	mu.Lock()
	defer mu.Unlock()
	writers[format] = fn
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(writers))
	for name := range writers {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Write renders doc with the writer registered under format.
// A broken pipe from w is not an error.
func Write(format string, w io.Writer, doc *Document, opts Options) error {
	mu.RLock()
	fn, ok := writers[format]
	mu.RUnlock()
	if !ok {
		return fmt.Errorf("Write(%q): %w (have %v)", format, ErrUnknownFormat, Formats())
	}
	if err := fn(w, doc, opts); err != nil && !IsBrokenPipe(err) {
		return fmt.Errorf("Write(%q): %w", format, err)
	}

	return nil
}

// IsBrokenPipe reports whether err is a broken or closed pipe.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
