// Package storage names run artifacts and persists them to a local
// directory and, optionally, a MinIO/S3 bucket.
package storage

import (
	"fmt"
	"time"

	"github.com/katalvlaran/primespiral/sweep"
)

// StampLayout is the timestamp prefix of every artifact (YYYYMMDD_HHMMSS).
const StampLayout = "20060102_150405"

// Namer builds artifact file names from a clock.
type Namer struct {
	now func() time.Time
}

// NewNamer returns a Namer on the local wall clock. A nil now uses time.Now.
func NewNamer(now func() time.Time) *Namer {
	if now == nil {
		now = time.Now
	}

	return &Namer{now: now}
}

// Stamp formats the current time with StampLayout.
func (n *Namer) Stamp() string { return n.now().Format(StampLayout) }

// Frame returns "<ts>_angle_<a>.<ext>".
func (n *Namer) Frame(angle float64, ext string) string {
	return fmt.Sprintf("%s_angle_%s.%s", n.Stamp(), sweep.FormatAngle(angle), ext)
}

// Animation returns "<ts>_range_<start>_<end>_step_<step>.<ext>".
func (n *Namer) Animation(r sweep.Range, ext string) string {
	return fmt.Sprintf("%s_range_%s_%s_step_%s.%s", n.Stamp(),
		sweep.FormatAngle(r.Start), sweep.FormatAngle(r.End), sweep.FormatAngle(r.Step), ext)
}

// Analysis returns "<ts>_pattern_analysis.<ext>".
func (n *Namer) Analysis(ext string) string {
	return fmt.Sprintf("%s_pattern_analysis.%s", n.Stamp(), ext)
}
