package config

import (
	"time"

	"github.com/katalvlaran/primespiral/internal/logging"
)

// Default values.
const (
	DefaultCount     = 100
	DefaultAngle     = 30.0
	DefaultDirection = "clockwise"

	DefaultSweepStart = 1.0
	DefaultSweepEnd   = 90.0
	DefaultSweepStep  = 0.1
	DefaultTolerance  = 1e-9

	DefaultWidth       = 800
	DefaultHeight      = 800
	DefaultVideoWidth  = 400
	DefaultVideoHeight = 400
	DefaultMargin      = 1.0
	DefaultStrokeWidth = 1.5
	DefaultRayWidth    = 0.75
	DefaultFPS         = 25.0
	DefaultFrameFormat = "png"
	DefaultVideoFormat = "mp4"
	DefaultChartFormat = "png"
	DefaultSpiralColor = "blue"
	DefaultRayColor    = "red"
	DefaultBackground  = "white"
	DefaultFFmpeg      = "ffmpeg"

	DefaultImagesDir    = "images"
	DefaultVideosDir    = "videos"
	DefaultReportFormat = "text"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	DefaultRedisAddr   = "localhost:6379"
	DefaultCacheTTL    = 24 * time.Hour
	DefaultCachePrefix = "primespiral:analysis:"

	DefaultStoragePrefix = "primespiral/"
	DefaultStorageRegion = "us-east-1"
)

// Default returns a fully populated Config with every default applied.
func Default() *Config {
	cfg := &Config{
		Spiral: SpiralConfig{Count: DefaultCount, Angle: DefaultAngle},
		Sweep: SweepConfig{
			Start:     DefaultSweepStart,
			End:       DefaultSweepEnd,
			Step:      DefaultSweepStep,
			Tolerance: DefaultTolerance,
		},
		Render: RenderConfig{Rays: true, Title: true, Margin: DefaultMargin},
		Log:    logging.Config{OutputPaths: []string{"stderr"}},
	}
	ApplyDefaults(cfg)

	return cfg
}

// ApplyDefaults fills zero-valued fields in cfg. Booleans and the numeric
// inputs that Validate must see as given (spiral.count, spiral.angle and the
// sweep range) are left alone; the loader registers their defaults with viper.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Spiral.Direction == "" {
		cfg.Spiral.Direction = DefaultDirection
	}

	r := &cfg.Render
	setInt(&r.Width, DefaultWidth)
	setInt(&r.Height, DefaultHeight)
	setInt(&r.VideoWidth, DefaultVideoWidth)
	setInt(&r.VideoHeight, DefaultVideoHeight)
	setFloat(&r.StrokeWidth, DefaultStrokeWidth)
	setFloat(&r.RayWidth, DefaultRayWidth)
	setFloat(&r.FPS, DefaultFPS)
	setString(&r.FrameFormat, DefaultFrameFormat)
	setString(&r.VideoFormat, DefaultVideoFormat)
	setString(&r.ChartFormat, DefaultChartFormat)
	setString(&r.SpiralColor, DefaultSpiralColor)
	setString(&r.RayColor, DefaultRayColor)
	setString(&r.Background, DefaultBackground)
	setString(&r.FFmpeg, DefaultFFmpeg)

	setString(&cfg.Output.ImagesDir, DefaultImagesDir)
	setString(&cfg.Output.VideosDir, DefaultVideosDir)
	setString(&cfg.Output.Format, DefaultReportFormat)

	setString(&cfg.Log.Level, DefaultLogLevel)
	setString(&cfg.Log.Format, DefaultLogFormat)

	setString(&cfg.Storage.Prefix, DefaultStoragePrefix)
	setString(&cfg.Storage.Region, DefaultStorageRegion)

	setString(&cfg.Cache.Addr, DefaultRedisAddr)
	setString(&cfg.Cache.Prefix, DefaultCachePrefix)
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = DefaultCacheTTL
	}
}

func setInt(p *int, v int) {
	if *p == 0 {
		*p = v
	}
}

func setFloat(p *float64, v float64) {
	if *p == 0 {
		*p = v
	}
}

func setString(p *string, v string) {
	if *p == "" {
		*p = v
	}
}
