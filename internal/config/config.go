// Package config defines the primespiral configuration tree, its defaults,
// validation, and the viper-backed loader.
package config

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/primespiral"
	"github.com/katalvlaran/primespiral/internal/logging"
	"github.com/katalvlaran/primespiral/pattern"
	"github.com/katalvlaran/primespiral/render"
	"github.com/katalvlaran/primespiral/report"
	"github.com/katalvlaran/primespiral/spiral"
	"github.com/katalvlaran/primespiral/sweep"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = fmt.Errorf("config: invalid configuration: %w", primespiral.ErrInvalidInput)

// MaxPrimes caps spiral.count.
const MaxPrimes = 1_000_000

// SpiralConfig selects the primes and the single-frame angle.
type SpiralConfig struct {
	Count     int     `mapstructure:"count" yaml:"count"`
	Angle     float64 `mapstructure:"angle" yaml:"angle"`
	Direction string  `mapstructure:"direction" yaml:"direction"` // clockwise | counterclockwise
}

// SweepConfig is the angle range used by animate and analyze.
type SweepConfig struct {
	Start     float64 `mapstructure:"start" yaml:"start"`
	End       float64 `mapstructure:"end" yaml:"end"`
	Step      float64 `mapstructure:"step" yaml:"step"`
	Workers   int     `mapstructure:"workers" yaml:"workers"` // 0 = GOMAXPROCS
	Tolerance float64 `mapstructure:"tolerance" yaml:"tolerance"`
}

// RenderConfig holds drawing and encoding settings.
type RenderConfig struct {
	Width       int     `mapstructure:"width" yaml:"width"`
	Height      int     `mapstructure:"height" yaml:"height"`
	VideoWidth  int     `mapstructure:"video_width" yaml:"video_width"`
	VideoHeight int     `mapstructure:"video_height" yaml:"video_height"`
	Margin      float64 `mapstructure:"margin" yaml:"margin"`
	Rays        bool    `mapstructure:"rays" yaml:"rays"`
	Title       bool    `mapstructure:"title" yaml:"title"`
	StrokeWidth float64 `mapstructure:"stroke_width" yaml:"stroke_width"`
	RayWidth    float64 `mapstructure:"ray_width" yaml:"ray_width"`
	FPS         float64 `mapstructure:"fps" yaml:"fps"`
	FrameFormat string  `mapstructure:"frame_format" yaml:"frame_format"` // png | svg
	VideoFormat string  `mapstructure:"video_format" yaml:"video_format"` // mp4 | gif
	ChartFormat string  `mapstructure:"chart_format" yaml:"chart_format"` // png | svg
	SpiralColor string  `mapstructure:"spiral_color" yaml:"spiral_color"`
	RayColor    string  `mapstructure:"ray_color" yaml:"ray_color"`
	Background  string  `mapstructure:"background" yaml:"background"`
	FFmpeg      string  `mapstructure:"ffmpeg" yaml:"ffmpeg"`
}

// OutputConfig names the local artifact directories and the report format.
type OutputConfig struct {
	ImagesDir string `mapstructure:"images_dir" yaml:"images_dir"`
	VideosDir string `mapstructure:"videos_dir" yaml:"videos_dir"`
	Format    string `mapstructure:"format" yaml:"format"`
}

// MetricsConfig enables the prometheus textfile export when Textfile is set.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile" yaml:"textfile"`
}

// StorageConfig configures the optional MinIO/S3 upload sink.
type StorageConfig struct {
	Enabled   bool   `mapstructure:"enabled" yaml:"enabled"`
	Endpoint  string `mapstructure:"endpoint" yaml:"endpoint"`
	AccessKey string `mapstructure:"access_key" yaml:"access_key"`
	SecretKey string `mapstructure:"secret_key" yaml:"secret_key"`
	Bucket    string `mapstructure:"bucket" yaml:"bucket"`
	Prefix    string `mapstructure:"prefix" yaml:"prefix"`
	Region    string `mapstructure:"region" yaml:"region"`
	UseSSL    bool   `mapstructure:"use_ssl" yaml:"use_ssl"`
}

// CacheConfig configures the optional redis analysis cache.
type CacheConfig struct {
	Enabled  bool          `mapstructure:"enabled" yaml:"enabled"`
	Addr     string        `mapstructure:"addr" yaml:"addr"`
	Password string        `mapstructure:"password" yaml:"password"`
	DB       int           `mapstructure:"db" yaml:"db"`
	TTL      time.Duration `mapstructure:"ttl" yaml:"ttl"`
	Prefix   string        `mapstructure:"prefix" yaml:"prefix"`
}

// Config is the root configuration.
type Config struct {
	Spiral  SpiralConfig   `mapstructure:"spiral" yaml:"spiral"`
	Sweep   SweepConfig    `mapstructure:"sweep" yaml:"sweep"`
	Render  RenderConfig   `mapstructure:"render" yaml:"render"`
	Output  OutputConfig   `mapstructure:"output" yaml:"output"`
	Log     logging.Config `mapstructure:"log" yaml:"log"`
	Metrics MetricsConfig  `mapstructure:"metrics" yaml:"metrics"`
	Storage StorageConfig  `mapstructure:"storage" yaml:"storage"`
	Cache   CacheConfig    `mapstructure:"cache" yaml:"cache"`

	// Source is the config file that was read, empty when none was found.
	Source string `mapstructure:"-" yaml:"-"`
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if c.Spiral.Count < 1 || c.Spiral.Count > MaxPrimes {
		return invalid("spiral.count %d out of range [1, %d]", c.Spiral.Count, MaxPrimes)
	}
	if _, err := spiral.ParseDirection(c.Spiral.Direction); err != nil {
		return invalid("spiral.direction %q", c.Spiral.Direction)
	}
	if err := c.Range().Validate(); err != nil {
		return fmt.Errorf("config: sweep: %w", err)
	}
	if c.Sweep.Workers < 0 {
		return invalid("sweep.workers must be ≥ 0, got %d", c.Sweep.Workers)
	}
	if c.Sweep.Tolerance < 0 || math.IsNaN(c.Sweep.Tolerance) || math.IsInf(c.Sweep.Tolerance, 0) {
		return invalid("sweep.tolerance must be finite and ≥ 0, got %v", c.Sweep.Tolerance)
	}

	if _, err := c.FrameOptions(); err != nil {
		return fmt.Errorf("config: render: %w", err)
	}
	if _, err := c.AnimationOptions(); err != nil {
		return fmt.Errorf("config: render: %w", err)
	}
	if _, err := render.ParseFormat(c.Render.FrameFormat); err != nil {
		return invalid("render.frame_format %q; expected png|svg", c.Render.FrameFormat)
	}
	if _, err := render.ParseFormat(c.Render.ChartFormat); err != nil {
		return invalid("render.chart_format %q; expected png|svg", c.Render.ChartFormat)
	}
	switch c.Render.VideoFormat {
	case "mp4", "gif":
	default:
		return invalid("render.video_format %q; expected mp4|gif", c.Render.VideoFormat)
	}

	if c.Output.ImagesDir == "" || c.Output.VideosDir == "" {
		return invalid("output.images_dir and output.videos_dir are required")
	}
	if !contains(report.Formats(), c.Output.Format) {
		return invalid("output.format %q; expected one of %v", c.Output.Format, report.Formats())
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return invalid("log.format %q; expected console|json", c.Log.Format)
	}

	if c.Storage.Enabled && (c.Storage.Endpoint == "" || c.Storage.Bucket == "") {
		return invalid("storage.endpoint and storage.bucket are required when storage is enabled")
	}
	if c.Cache.Enabled && c.Cache.Addr == "" {
		return invalid("cache.addr is required when the cache is enabled")
	}
	if c.Cache.DB < 0 {
		return invalid("cache.db must be ≥ 0, got %d", c.Cache.DB)
	}
	if c.Cache.TTL < 0 {
		return invalid("cache.ttl must be ≥ 0, got %s", c.Cache.TTL)
	}

	return nil
}

// Direction returns the parsed spiral.direction (Clockwise when invalid).
func (c *Config) Direction() spiral.Direction {
	d, _ := spiral.ParseDirection(c.Spiral.Direction)

	return d
}

// Range returns the configured sweep.
func (c *Config) Range() sweep.Range {
	return sweep.Range{Start: c.Sweep.Start, End: c.Sweep.End, Step: c.Sweep.Step}
}

// PatternOptions translates the sweep section into pattern options.
func (c *Config) PatternOptions() []pattern.Option {
	opts := []pattern.Option{
		pattern.WithTolerance(c.Sweep.Tolerance),
		pattern.WithDirection(c.Direction()),
	}
	if c.Sweep.Workers > 0 {
		opts = append(opts, pattern.WithWorkers(c.Sweep.Workers))
	}

	return opts
}

// FrameOptions builds and validates single-frame drawing options.
func (c *Config) FrameOptions() (render.FrameOptions, error) {
	o := render.DefaultFrameOptions()
	o.Width, o.Height = c.Render.Width, c.Render.Height
	o.Margin = c.Render.Margin
	o.Rays, o.Title = c.Render.Rays, c.Render.Title
	o.StrokeWidth, o.RayWidth = c.Render.StrokeWidth, c.Render.RayWidth
	o.Direction = c.Direction()

	var err error
	if o.Spiral, err = render.ParseColor(c.Render.SpiralColor); err != nil {
		return o, err
	}
	if o.Ray, err = render.ParseColor(c.Render.RayColor); err != nil {
		return o, err
	}
	if o.Background, err = render.ParseColor(c.Render.Background); err != nil {
		return o, err
	}

	return o, o.Validate()
}

// AnimationOptions builds and validates animation options (video size, fps).
func (c *Config) AnimationOptions() (render.AnimationOptions, error) {
	f, err := c.FrameOptions()
	if err != nil {
		return render.AnimationOptions{}, err
	}
	f.Width, f.Height = c.Render.VideoWidth, c.Render.VideoHeight
	o := render.AnimationOptions{Frame: f, FPS: c.Render.FPS}

	return o, o.Validate()
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("config: "+format+": %w", append(args, ErrInvalidConfig)...)
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}

	return false
}
