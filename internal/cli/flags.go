package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/primespiral/internal/config"
)

// Flag defaults below only feed --help; the effective defaults live in
// config and are overridden by a flag only when it is set explicitly.

func addSpiralFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntP("count", "n", config.DefaultCount, "number of primes (segments)")
	f.String("direction", config.DefaultDirection, "rotation: clockwise (cw) or counterclockwise (ccw)")
	bind(cmd, "spiral.count", "count")
	bind(cmd, "spiral.direction", "direction")
}

func addSweepFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64("start", config.DefaultSweepStart, "first turn angle in degrees")
	f.Float64("end", config.DefaultSweepEnd, "last turn angle in degrees (inclusive)")
	f.Float64("step", config.DefaultSweepStep, "angle increment in degrees (> 0)")
	bind(cmd, "sweep.start", "start")
	bind(cmd, "sweep.end", "end")
	bind(cmd, "sweep.step", "step")
}

func addOutFlag(cmd *cobra.Command, key, def string) {
	cmd.Flags().String("out", def, "output directory")
	bind(cmd, key, "out")
}
