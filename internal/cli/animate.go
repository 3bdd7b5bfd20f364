package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/primespiral"
	"github.com/katalvlaran/primespiral/internal/config"
	"github.com/katalvlaran/primespiral/internal/logging"
	"github.com/katalvlaran/primespiral/internal/metrics"
	"github.com/katalvlaran/primespiral/internal/storage"
	"github.com/katalvlaran/primespiral/primes"
	"github.com/katalvlaran/primespiral/render"
	"github.com/katalvlaran/primespiral/sweep"
)

func newAnimateCmd() *cobra.Command {
	var noRays bool

	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Render a sweep of turn angles as a GIF or MP4 animation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			if noRays {
				cliCtx.Config.Render.Rays = false
			}

			return runAnimate(cmd.Context(), cliCtx, cmd.OutOrStdout())
		},
	}
	addSpiralFlags(cmd)
	addSweepFlags(cmd)
	cmd.Flags().String("format", config.DefaultVideoFormat, "video format (mp4, gif)")
	cmd.Flags().Float64("fps", config.DefaultFPS, "frames per second")
	cmd.Flags().Int("width", config.DefaultVideoWidth, "frame width in pixels")
	cmd.Flags().Int("height", config.DefaultVideoHeight, "frame height in pixels")
	cmd.Flags().String("ffmpeg", config.DefaultFFmpeg, "ffmpeg executable for mp4 output")
	cmd.Flags().BoolVar(&noRays, "no-rays", false, "do not draw origin-to-vertex rays")
	bind(cmd, "render.video_format", "format")
	bind(cmd, "render.fps", "fps")
	bind(cmd, "render.video_width", "width")
	bind(cmd, "render.video_height", "height")
	bind(cmd, "render.ffmpeg", "ffmpeg")
	addOutFlag(cmd, "output.videos_dir", config.DefaultVideosDir)

	return cmd
}

func runAnimate(ctx context.Context, cliCtx *CLIContext, out io.Writer) error {
	cfg := cliCtx.Config
	defer cliCtx.Metrics.Time("animate")()

	opts, err := cfg.AnimationOptions()
	if err != nil {
		return err
	}
	r := cfg.Range()
	total, err := r.Len()
	if err != nil {
		return err
	}
	ps, err := primes.First(cfg.Spiral.Count)
	if err != nil {
		return err
	}

	log := cliCtx.Logger
	opts.Observer = func(f render.Frame) {
		cliCtx.Metrics.FrameRendered(metrics.KindAnimation)
		log.Debug("frame encoded",
			logging.Int("index", f.Index),
			logging.Int("total", total),
			logging.String("angle", sweep.FormatAngle(f.Angle)))
	}
	log.Info("animating",
		logging.String("range", r.String()),
		logging.Int("frames", total),
		logging.String("format", cfg.Render.VideoFormat))

	sink := storage.NewDirSink(cfg.Output.VideosDir)
	name := cliCtx.Namer.Animation(r, cfg.Render.VideoFormat)

	var art storage.Artifact
	switch cfg.Render.VideoFormat {
	case "gif":
		art, err = sink.Save(ctx, name, func(w io.Writer) error {
			_, aerr := render.Animate(ctx, render.NewGIFEncoder(w), ps, r, opts)
			return aerr
		})
	case "mp4":
		art, err = animateMP4(ctx, cfg, sink, name, ps, r, opts)
	default:
		err = fmt.Errorf("animate: format %q; expected mp4|gif: %w", cfg.Render.VideoFormat, primespiral.ErrInvalidInput)
	}
	if err != nil {
		return err
	}

	return cliCtx.publish(ctx, out, art)
}

// animateMP4 lets ffmpeg write straight into the videos directory.
func animateMP4(ctx context.Context, cfg *config.Config, sink *storage.DirSink, name string,
	ps []int, r sweep.Range, opts render.AnimationOptions) (storage.Artifact, error) {
	if err := sink.Prepare(); err != nil {
		return storage.Artifact{}, err
	}
	path := sink.Path(name)
	enc := render.NewFFmpegEncoder(ctx, path)
	enc.Binary = cfg.Render.FFmpeg

	if _, err := render.Animate(ctx, enc, ps, r, opts); err != nil {
		_ = os.Remove(path)
		return storage.Artifact{}, err
	}
	st, err := os.Stat(path)
	if err != nil {
		return storage.Artifact{}, err
	}

	return storage.Artifact{Name: name, Location: path, Size: st.Size()}, nil
}
