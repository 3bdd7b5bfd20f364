package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix: spiral.count → PRIMESPIRAL_SPIRAL_COUNT.
const envPrefix = "PRIMESPIRAL"

// FileName is the config file looked up in the working directory when no
// explicit path is given.
const FileName = "primespiral.yaml"

// newViper builds a Viper with YAML files, PRIMESPIRAL_ env binding and every
// default registered, so env-only keys survive Unmarshal.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	registerDefaults(v, Default())

	return v
}

func registerDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("spiral.count", d.Spiral.Count)
	v.SetDefault("spiral.angle", d.Spiral.Angle)
	v.SetDefault("spiral.direction", d.Spiral.Direction)

	v.SetDefault("sweep.start", d.Sweep.Start)
	v.SetDefault("sweep.end", d.Sweep.End)
	v.SetDefault("sweep.step", d.Sweep.Step)
	v.SetDefault("sweep.workers", 0)
	v.SetDefault("sweep.tolerance", d.Sweep.Tolerance)

	v.SetDefault("render.width", d.Render.Width)
	v.SetDefault("render.height", d.Render.Height)
	v.SetDefault("render.video_width", d.Render.VideoWidth)
	v.SetDefault("render.video_height", d.Render.VideoHeight)
	v.SetDefault("render.margin", d.Render.Margin)
	v.SetDefault("render.rays", true)
	v.SetDefault("render.title", true)
	v.SetDefault("render.stroke_width", d.Render.StrokeWidth)
	v.SetDefault("render.ray_width", d.Render.RayWidth)
	v.SetDefault("render.fps", d.Render.FPS)
	v.SetDefault("render.frame_format", d.Render.FrameFormat)
	v.SetDefault("render.video_format", d.Render.VideoFormat)
	v.SetDefault("render.chart_format", d.Render.ChartFormat)
	v.SetDefault("render.spiral_color", d.Render.SpiralColor)
	v.SetDefault("render.ray_color", d.Render.RayColor)
	v.SetDefault("render.background", d.Render.Background)
	v.SetDefault("render.ffmpeg", d.Render.FFmpeg)

	v.SetDefault("output.images_dir", d.Output.ImagesDir)
	v.SetDefault("output.videos_dir", d.Output.VideosDir)
	v.SetDefault("output.format", d.Output.Format)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.output_paths", d.Log.OutputPaths)

	v.SetDefault("metrics.textfile", "")

	v.SetDefault("storage.enabled", false)
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.access_key", "")
	v.SetDefault("storage.secret_key", "")
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.prefix", d.Storage.Prefix)
	v.SetDefault("storage.region", d.Storage.Region)
	v.SetDefault("storage.use_ssl", false)

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.addr", d.Cache.Addr)
	v.SetDefault("cache.password", "")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("cache.prefix", d.Cache.Prefix)
}

// GlobalBindings maps config keys to the persistent CLI flags that
// override them. Commands add their own bindings on top.
var GlobalBindings = map[string]string{
	"log.level":        "log-level",
	"log.format":       "log-format",
	"metrics.textfile": "metrics-file",
	"storage.enabled":  "upload",
}

// Loader resolves a Config from flags > env > file > defaults.
type Loader struct {
	v        *viper.Viper
	flags    *pflag.FlagSet
	bindings map[string]string
}

// NewLoader returns a Loader. bindings maps config keys to flag names;
// keys whose flag is missing from flags are skipped. flags may be nil.
func NewLoader(flags *pflag.FlagSet, bindings map[string]string) *Loader {
	return &Loader{v: newViper(), flags: flags, bindings: bindings}
}

// Load reads path (or the first existing default location when path is
// empty), merges env and flags, applies defaults and validates.
func (l *Loader) Load(path string) (*Config, error) {
	if err := l.bindFlags(); err != nil {
		return nil, err
	}

	source := path
	if source == "" {
		source = findConfigFile()
	}
	if source != "" {
		l.v.SetConfigFile(source)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", source, err)
		}
	}

	cfg, err := unmarshalAndFinalize(l.v)
	if err != nil {
		return nil, err
	}
	cfg.Source = source

	return cfg, nil
}

func (l *Loader) bindFlags() error {
	if l.flags == nil {
		return nil
	}
	for key, name := range l.bindings {
		f := l.flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind flag --%s: %w", name, err)
		}
	}

	return nil
}

// Load is a convenience wrapper for NewLoader(nil, nil).Load(path).
func Load(path string) (*Config, error) {
	return NewLoader(nil, nil).Load(path)
}

// LoadFromEnv builds a Config from PRIMESPIRAL_* variables and defaults only.
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

// SearchPaths lists the default config file locations in lookup order.
func SearchPaths() []string {
	paths := []string{FileName}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".primespiral", "config.yaml"))
	}

	return paths
}

func findConfigFile() string {
	for _, p := range SearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		} else if !errors.Is(err, os.ErrNotExist) {
			return p // let ReadInConfig report the permission problem
		}
	}

	return ""
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
