// Package cli wires the primespiral library, configuration, logging,
// metrics, storage and cache into a cobra command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/primespiral"
	"github.com/katalvlaran/primespiral/internal/config"
	"github.com/katalvlaran/primespiral/internal/logging"
	"github.com/katalvlaran/primespiral/internal/metrics"
	"github.com/katalvlaran/primespiral/internal/storage"
)

// Build-time variables injected via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Exit codes returned by Execute.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// bindPrefix marks cobra annotations that bind a flag to a config key.
const bindPrefix = "config:"

// now is the artifact clock; tests pin it.
var now = time.Now

// RootOptions holds global CLI flags.
type RootOptions struct {
	ConfigPath  string
	LogLevel    string
	LogFormat   string
	Verbose     bool
	MetricsFile string
	Upload      bool
}

// CLIContext carries initialized dependencies through the command tree.
type CLIContext struct {
	Config  *config.Config
	Logger  logging.Logger
	Metrics *metrics.Recorder
	Namer   *storage.Namer
	RunID   string

	uploader *storage.MinIOSink
}

type cliContextKey struct{}

// NewRootCommand creates the root command with global flags and subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "primespiral",
		Short: "Prime turning spirals: frames, animations and angle-sweep pattern analysis",
		Long: "primespiral walks the first N primes as segment lengths, turning by a fixed\n" +
			"angle after each step, and renders the resulting spiral. It can animate a\n" +
			"sweep of angles and classify each angle by the histogram of its segment lengths\n" +
			"(distances between consecutive vertices).",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return persistentPreRun(cmd, opts)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return persistentPostRun(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", err, primespiral.ErrInvalidInput)
	})

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default ./"+config.FileName+", then ~/.primespiral/config.yaml)")
	pf.StringVar(&opts.LogLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&opts.LogFormat, "log-format", config.DefaultLogFormat, "log format (console, json)")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "shorthand for --log-level=debug")
	pf.StringVar(&opts.MetricsFile, "metrics-file", "", "write prometheus metrics to this textfile on exit")
	pf.BoolVar(&opts.Upload, "upload", false, "also upload artifacts to the configured MinIO bucket")

	cmd.AddCommand(
		newPrimesCmd(),
		newFrameCmd(),
		newAnimateCmd(),
		newAnalyzeCmd(),
		newWatchCmd(),
		newVersionCmd(),
	)

	return cmd
}

// bind records that flag overrides config key on cmd.
func bind(cmd *cobra.Command, key, flag string) {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[bindPrefix+key] = flag
}

// bindings merges the global bindings with the ones cmd declared.
func bindings(cmd *cobra.Command) map[string]string {
	out := make(map[string]string, len(config.GlobalBindings)+len(cmd.Annotations))
	for k, v := range config.GlobalBindings {
		out[k] = v
	}
	for k, v := range cmd.Annotations {
		if key, ok := strings.CutPrefix(k, bindPrefix); ok {
			out[key] = v
		}
	}

	return out
}

func loadConfig(cmd *cobra.Command, path string) (*config.Config, error) {
	return config.NewLoader(cmd.Flags(), bindings(cmd)).Load(path)
}

func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := loadConfig(cmd, opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Verbose {
		cfg.Log.Level = "debug"
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}
	runID := uuid.NewString()
	logger = logger.With(logging.String("run_id", runID), logging.String("cmd", cmd.Name()))
	logging.SetDefault(logger)
	if cfg.Source != "" {
		logger.Debug("config loaded", logging.String("path", cfg.Source))
	}

	cliCtx := &CLIContext{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics.New(),
		Namer:   storage.NewNamer(now),
		RunID:   runID,
	}
	cmd.SetContext(context.WithValue(cmd.Context(), cliContextKey{}, cliCtx))

	return nil
}

func persistentPostRun(cmd *cobra.Command) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return nil
	}
	defer func() { _ = cliCtx.Logger.Sync() }()

	if path := cliCtx.Config.Metrics.Textfile; path != "" {
		if err := cliCtx.Metrics.WriteTextfile(path); err != nil {
			return err
		}
		cliCtx.Logger.Debug("metrics written", logging.String("path", path))
	}

	return nil
}

// GetCLIContext extracts CLIContext from a cobra command's context.
func GetCLIContext(cmd *cobra.Command) (*CLIContext, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, errors.New("cli: command context is nil")
	}
	cliCtx, ok := ctx.Value(cliContextKey{}).(*CLIContext)
	if !ok || cliCtx == nil {
		return nil, errors.New("cli: CLIContext not found in command context")
	}

	return cliCtx, nil
}

// publish accounts a locally saved artifact, uploads it when storage is
// enabled and prints its location(s).
func (c *CLIContext) publish(ctx context.Context, out io.Writer, art storage.Artifact) error {
	c.Metrics.ArtifactWritten(metrics.SinkLocal, art.Size)
	c.Logger.Info("artifact saved", logging.String("path", art.Location), logging.Int64("bytes", art.Size))
	fmt.Fprintln(out, art.Location)

	if !c.Config.Storage.Enabled {
		return nil
	}
	if c.uploader == nil {
		s, err := storage.NewMinIOSink(ctx, c.Config.Storage, c.Logger)
		if err != nil {
			return err
		}
		c.uploader = s
	}
	up, err := c.uploader.UploadFile(ctx, art.Location)
	if err != nil {
		return err
	}
	c.Metrics.ArtifactWritten(metrics.SinkMinIO, up.Size)
	c.Logger.Info("artifact uploaded", logging.String("location", up.Location))
	fmt.Fprintln(out, up.Location)

	return nil
}

// ExitCode maps an Execute error to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, primespiral.ErrInvalidInput):
		return ExitUsage
	default:
		return ExitFailure
	}
}

// Execute runs the command tree with args and returns the exit status.
// Errors are printed to stderr as "Error: ...".
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
	}

	return ExitCode(err)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "primespiral %s (commit: %s, built: %s)\n", Version, Commit, Date)
			return nil
		},
	}
}
