package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/primespiral/internal/config"
	"github.com/katalvlaran/primespiral/internal/logging"
	"github.com/katalvlaran/primespiral/internal/metrics"
	"github.com/katalvlaran/primespiral/internal/storage"
	"github.com/katalvlaran/primespiral/primes"
	"github.com/katalvlaran/primespiral/render"
	"github.com/katalvlaran/primespiral/spiral"
)

func newFrameCmd() *cobra.Command {
	var noRays bool

	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Render one spiral frame at a fixed turn angle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			if noRays {
				cliCtx.Config.Render.Rays = false
			}

			return runFrame(cmd.Context(), cliCtx, cmd.OutOrStdout())
		},
	}
	addSpiralFlags(cmd)
	cmd.Flags().Float64("angle", config.DefaultAngle, "turn angle in degrees")
	cmd.Flags().String("format", config.DefaultFrameFormat, "image format (png, svg)")
	cmd.Flags().Int("width", config.DefaultWidth, "image width in pixels")
	cmd.Flags().Int("height", config.DefaultHeight, "image height in pixels")
	cmd.Flags().BoolVar(&noRays, "no-rays", false, "do not draw origin-to-vertex rays")
	bind(cmd, "spiral.angle", "angle")
	bind(cmd, "render.frame_format", "format")
	bind(cmd, "render.width", "width")
	bind(cmd, "render.height", "height")
	addOutFlag(cmd, "output.images_dir", config.DefaultImagesDir)

	return cmd
}

// runFrame renders cfg.Spiral.Angle into the images directory.
func runFrame(ctx context.Context, cliCtx *CLIContext, out io.Writer) error {
	cfg := cliCtx.Config
	defer cliCtx.Metrics.Time("frame")()

	opts, err := cfg.FrameOptions()
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(cfg.Render.FrameFormat)
	if err != nil {
		return err
	}
	ps, err := primes.First(cfg.Spiral.Count)
	if err != nil {
		return err
	}
	angle := cfg.Spiral.Angle
	path, err := spiral.Generate(ps, angle, spiral.WithDirection(cfg.Direction()))
	if err != nil {
		return err
	}

	cliCtx.Logger.Debug("rendering frame",
		logging.Float64("angle", angle),
		logging.Int("primes", len(ps)),
		logging.String("format", string(format)))

	sink := storage.NewDirSink(cfg.Output.ImagesDir)
	art, err := sink.Save(ctx, cliCtx.Namer.Frame(angle, format.Ext()), func(w io.Writer) error {
		return render.WriteFrame(w, format, path, angle, opts)
	})
	if err != nil {
		return err
	}
	cliCtx.Metrics.FrameRendered(metrics.KindFrame)

	return cliCtx.publish(ctx, out, art)
}
