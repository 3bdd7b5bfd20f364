package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/primespiral/internal/cache"
	"github.com/katalvlaran/primespiral/internal/config"
	"github.com/katalvlaran/primespiral/internal/logging"
	"github.com/katalvlaran/primespiral/internal/metrics"
	"github.com/katalvlaran/primespiral/internal/storage"
	"github.com/katalvlaran/primespiral/pattern"
	"github.com/katalvlaran/primespiral/primes"
	"github.com/katalvlaran/primespiral/render"
	"github.com/katalvlaran/primespiral/report"
)

type analyzeOptions struct {
	all   bool
	chart bool
}

func newAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Sweep turn angles and classify each by its distance histogram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			return runAnalyze(cmd.Context(), cliCtx, opts, cmd.OutOrStdout())
		},
	}
	addSpiralFlags(cmd)
	addSweepFlags(cmd)
	f := cmd.Flags()
	f.StringP("output", "o", config.DefaultReportFormat, "report format (text, table, tsv, json, jsonl, yaml)")
	f.Int("workers", 0, "parallel workers (0 = GOMAXPROCS)")
	f.Float64("tolerance", config.DefaultTolerance, "relative tolerance when grouping distances (0 = exact)")
	f.BoolVar(&opts.all, "all", false, "text report: list irregular angles too")
	f.BoolVar(&opts.chart, "chart", false, "also save the mean-occurrence chart")
	f.String("chart-format", config.DefaultChartFormat, "chart format (png, svg)")
	f.Bool("cache", false, "use the redis analysis cache")
	bind(cmd, "output.format", "output")
	bind(cmd, "sweep.workers", "workers")
	bind(cmd, "sweep.tolerance", "tolerance")
	bind(cmd, "render.chart_format", "chart-format")
	bind(cmd, "cache.enabled", "cache")
	addOutFlag(cmd, "output.images_dir", config.DefaultImagesDir)

	return cmd
}

func runAnalyze(ctx context.Context, cliCtx *CLIContext, opts *analyzeOptions, out io.Writer) error {
	cfg := cliCtx.Config
	log := cliCtx.Logger

	ps, err := primes.First(cfg.Spiral.Count)
	if err != nil {
		return err
	}
	r := cfg.Range()

	stop := cliCtx.Metrics.Time("analyze")
	a, err := analysis(ctx, cliCtx, ps)
	stop()
	if err != nil {
		return err
	}

	doc := report.NewDocument(cliCtx.RunID, a, cfg.Direction().String(), now())
	for _, c := range doc.Classifications {
		cliCtx.Metrics.AngleAnalyzed(c.Kind.String())
	}
	regular, irregular := pattern.Tally(doc.Classifications)
	log.Info("analysis complete",
		logging.String("range", r.String()),
		logging.Int("regular", regular),
		logging.Int("irregular", irregular))

	if err := report.Write(cfg.Output.Format, out, doc, report.Options{All: opts.all}); err != nil {
		return err
	}
	if !opts.chart {
		return nil
	}

	format, err := render.ParseFormat(cfg.Render.ChartFormat)
	if err != nil {
		return err
	}
	sink := storage.NewDirSink(cfg.Output.ImagesDir)
	art, err := sink.Save(ctx, cliCtx.Namer.Analysis(format.Ext()), func(w io.Writer) error {
		return render.WriteChart(w, format, doc.Classifications, render.DefaultChartOptions())
	})
	if err != nil {
		return err
	}
	cliCtx.Metrics.FrameRendered(metrics.KindChart)

	// Stdout carries the report; the chart location goes to the log only.
	return cliCtx.publish(ctx, io.Discard, art)
}

// analysis runs the sweep, going through the redis cache when enabled.
func analysis(ctx context.Context, cliCtx *CLIContext, ps []int) (*pattern.Analysis, error) {
	cfg := cliCtx.Config
	compute := func(ctx context.Context) (*pattern.Analysis, error) {
		return pattern.AnalyzeContext(ctx, ps, cfg.Range(), cfg.PatternOptions()...)
	}
	if !cfg.Cache.Enabled {
		return compute(ctx)
	}

	c, rdb, err := cache.Dial(ctx, cfg.Cache, cliCtx.Logger)
	if err != nil {
		cliCtx.Logger.Warn("analysis cache unavailable", logging.Err(err))
		return compute(ctx)
	}
	defer rdb.Close()

	key := cache.Key{
		Primes:    len(ps),
		Range:     cfg.Range(),
		Direction: cfg.Direction(),
		Tolerance: cfg.Sweep.Tolerance,
	}
	a, hit, err := c.GetOrCompute(ctx, key, compute)
	if err != nil {
		return nil, err
	}
	cliCtx.Logger.Debug("analysis source", logging.Bool("cache_hit", hit))

	return a, nil
}
