// Package metrics records run counters on a private prometheus registry and
// exports them as a node_exporter textfile at the end of a run.
//
// A nil *Recorder is valid and records nothing.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "primespiral"

// Artifact kinds and sinks used as label values.
const (
	KindFrame     = "frame"
	KindAnimation = "animation"
	KindChart     = "chart"

	SinkLocal = "local"
	SinkMinIO = "minio"
)

// Recorder owns the run metrics.
type Recorder struct {
	registry  *prometheus.Registry
	frames    *prometheus.CounterVec
	angles    *prometheus.CounterVec
	stages    *prometheus.HistogramVec
	artifacts *prometheus.CounterVec
}

// New registers the run metrics on a fresh registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "frames_rendered_total",
			Help:      "Images rendered, by kind (frame, animation, chart).",
		}, []string{"kind"}),
		angles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "angles_analyzed_total",
			Help:      "Turn angles analyzed, by classification.",
		}, []string{"class"}),
		stages: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "stage_duration_seconds",
			Help:      "Wall time of each pipeline stage.",
			Buckets:   []float64{.001, .01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"stage"}),
		artifacts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "artifact_bytes_total",
			Help:      "Bytes written to artifact sinks.",
		}, []string{"sink"}),
	}
	r.registry.MustRegister(r.frames, r.angles, r.stages, r.artifacts)

	return r
}

// Registry exposes the underlying registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}

	return r.registry
}

// FrameRendered counts one rendered image of the given kind.
func (r *Recorder) FrameRendered(kind string) {
	if r == nil {
		return
	}
	r.frames.WithLabelValues(kind).Inc()
}

// AngleAnalyzed counts one classified angle; class is "regular" or "irregular".
func (r *Recorder) AngleAnalyzed(class string) {
	if r == nil {
		return
	}
	r.angles.WithLabelValues(class).Inc()
}

// ObserveStage records the duration of a named stage.
func (r *Recorder) ObserveStage(stage string, d time.Duration) {
	if r == nil {
		return
	}
	r.stages.WithLabelValues(stage).Observe(d.Seconds())
}

// Time starts a stage timer; call the returned func when the stage ends.
func (r *Recorder) Time(stage string) func() {
	start := time.Now()

	return func() { r.ObserveStage(stage, time.Since(start)) }
}

// ArtifactWritten adds n bytes to the sink's total.
func (r *Recorder) ArtifactWritten(sink string, n int64) {
	if r == nil || n <= 0 {
		return
	}
	r.artifacts.WithLabelValues(sink).Add(float64(n))
}

// WriteTextfile atomically writes the registry in the text exposition
// format to path. Empty path or nil Recorder is a no-op.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write textfile %q: %w", path, err)
	}

	return nil
}
