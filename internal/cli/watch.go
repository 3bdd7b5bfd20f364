package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/primespiral"
	"github.com/katalvlaran/primespiral/internal/config"
	"github.com/katalvlaran/primespiral/internal/logging"
	"github.com/katalvlaran/primespiral/internal/watch"
)

func newWatchCmd() *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render the frame every time the config file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			path := cliCtx.Config.Source
			if path == "" {
				return fmt.Errorf("watch: no config file found; pass --config or create ./%s: %w",
					config.FileName, primespiral.ErrInvalidInput)
			}

			out := cmd.OutOrStdout()
			if err := runFrame(cmd.Context(), cliCtx, out); err != nil {
				return err
			}

			w := watch.New(path, debounce, cliCtx.Logger)
			return w.Run(cmd.Context(), func(ctx context.Context) error {
				cfg, err := loadConfig(cmd, path)
				if err != nil {
					return err
				}
				cliCtx.Config = cfg
				cliCtx.Logger.Info("config reloaded", logging.Float64("angle", cfg.Spiral.Angle))

				return runFrame(ctx, cliCtx, out)
			})
		},
	}
	addSpiralFlags(cmd)
	cmd.Flags().Float64("angle", config.DefaultAngle, "turn angle in degrees")
	cmd.Flags().String("format", config.DefaultFrameFormat, "image format (png, svg)")
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "quiet period before re-rendering")
	bind(cmd, "spiral.angle", "angle")
	bind(cmd, "render.frame_format", "format")
	addOutFlag(cmd, "output.images_dir", config.DefaultImagesDir)

	return cmd
}
