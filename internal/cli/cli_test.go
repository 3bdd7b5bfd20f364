package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primespiral"
	"github.com/katalvlaran/primespiral/internal/config"
	"github.com/katalvlaran/primespiral/report"
)

const stamp = "20240309_070501"

func init() {
	now = func() time.Time { return time.Date(2024, 3, 9, 7, 5, 1, 0, time.Local) }
}

// run executes the CLI in isolation from the user's config files.
func run(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var out, errb bytes.Buffer
	code = Execute(context.Background(), append(args, "--log-level=error"), &out, &errb)

	return out.String(), errb.String(), code
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitUsage, ExitCode(fmt.Errorf("x: %w", primespiral.ErrInvalidInput)))
	assert.Equal(t, ExitFailure, ExitCode(primespiral.ErrNumericDegenerate))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("disk full")))
}

func TestNewRootCommand_Structure(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "primespiral", cmd.Use)

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"primes", "frame", "animate", "analyze", "watch", "version"} {
		assert.True(t, names[want], want)
	}
	for _, flag := range []string{"config", "log-level", "log-format", "verbose", "metrics-file", "upload"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
	assert.Equal(t, "v", cmd.PersistentFlags().Lookup("verbose").Shorthand)
	assert.Contains(t, cmd.Long, "distances between consecutive vertices")
	assert.NotContains(t, cmd.Long, "distance-from-origin")
}

func TestBindings_MergeGlobal(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	bind(cmd, "spiral.count", "count")
	b := bindings(cmd)

	assert.Equal(t, "count", b["spiral.count"])
	assert.Equal(t, "log-level", b["log.level"])
	assert.Len(t, b, len(config.GlobalBindings)+1)
}

func TestVersion(t *testing.T) {
	out, _, code := run(t, "version")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "primespiral dev (commit: unknown, built: unknown)\n", out)
}

func TestPrimes(t *testing.T) {
	out, _, code := run(t, "primes", "-n", "5")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "2 3 5 7 11\n", out)

	out, _, code = run(t, "primes", "-n", "5", "-o", "json")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "[2,3,5,7,11]\n", out)
}

func TestPrimes_InvalidInput(t *testing.T) {
	_, stderr, code := run(t, "primes", "-n", "0")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "Error:")

	_, _, code = run(t, "primes", "-o", "xml")
	assert.Equal(t, ExitUsage, code)

	_, _, code = run(t, "primes", "--bogus")
	assert.Equal(t, ExitUsage, code)
}

func TestFrame_SVG(t *testing.T) {
	dir := t.TempDir()
	out, stderr, code := run(t, "frame", "--angle", "90", "-n", "4", "--format", "svg", "--out", dir)
	require.Equal(t, ExitOK, code, stderr)

	want := filepath.Join(dir, stamp+"_angle_90.svg")
	assert.Equal(t, want+"\n", out)
	b, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<svg")
	assert.Contains(t, string(b), "Turn Angle: 90 degrees")
}

func TestFrame_PNGSize(t *testing.T) {
	dir := t.TempDir()
	_, stderr, code := run(t, "frame", "-n", "10", "--width", "64", "--height", "96", "--no-rays", "--out", dir)
	require.Equal(t, ExitOK, code, stderr)

	f, err := os.Open(filepath.Join(dir, stamp+"_angle_30.png"))
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 96, cfg.Height)
}

func TestFrame_ConfigFileAndMetrics(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "primespiral.yaml")
	body := fmt.Sprintf("spiral:\n  count: 6\n  angle: 12.5\nrender:\n  frame_format: svg\noutput:\n  images_dir: %q\n",
		filepath.Join(dir, "img"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o600))
	prom := filepath.Join(dir, "run.prom")

	out, stderr, code := run(t, "frame", "--config", cfgPath, "--metrics-file", prom)
	require.Equal(t, ExitOK, code, stderr)
	assert.Equal(t, filepath.Join(dir, "img", stamp+"_angle_12.5.svg")+"\n", out)

	b, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(b), `primespiral_frames_rendered_total{kind="frame"} 1`)
	assert.Contains(t, string(b), `primespiral_artifact_bytes_total{sink="local"}`)
}

func TestAnimate_GIF(t *testing.T) {
	dir := t.TempDir()
	out, stderr, code := run(t, "animate", "-n", "5", "--start", "0", "--end", "90", "--step", "45",
		"--format", "gif", "--width", "64", "--height", "64", "--out", dir)
	require.Equal(t, ExitOK, code, stderr)

	want := filepath.Join(dir, stamp+"_range_0_90_step_45.gif")
	assert.Equal(t, want+"\n", out)
	f, err := os.Open(want)
	require.NoError(t, err)
	defer f.Close()
	g, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Len(t, g.Image, 3)
}

func TestAnimate_InvalidRange(t *testing.T) {
	_, _, code := run(t, "animate", "--start", "10", "--end", "1", "--format", "gif", "--out", t.TempDir())
	assert.Equal(t, ExitUsage, code)
}

func TestAnalyze_JSON(t *testing.T) {
	out, stderr, code := run(t, "analyze", "-n", "5", "--start", "0", "--end", "90", "--step", "45", "-o", "json", "--workers", "2")
	require.Equal(t, ExitOK, code, stderr)

	var doc report.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.NotEmpty(t, doc.RunID)
	assert.Equal(t, 5, doc.Primes)
	assert.Equal(t, "clockwise", doc.Direction)
	require.Len(t, doc.Classifications, 3)
	assert.Equal(t, []float64{0, 45, 90}, []float64{
		doc.Classifications[0].Angle, doc.Classifications[1].Angle, doc.Classifications[2].Angle,
	})
}

func TestAnalyze_Chart(t *testing.T) {
	dir := t.TempDir()
	out, stderr, code := run(t, "analyze", "-n", "8", "--start", "1", "--end", "10", "--step", "1",
		"-o", "tsv", "--chart", "--chart-format", "svg", "--out", dir)
	require.Equal(t, ExitOK, code, stderr)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 11, "header plus one row per angle")
	_, err := os.Stat(filepath.Join(dir, stamp+"_pattern_analysis.svg"))
	assert.NoError(t, err)
}

func TestAnalyze_InvalidStep(t *testing.T) {
	_, stderr, code := run(t, "analyze", "--step", "0")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "step")
}

func TestAnalyze_AllZeroRangeRejected(t *testing.T) {
	out, stderr, code := run(t, "analyze", "--start", "0", "--end", "0", "--step", "0", "-o", "tsv")
	assert.Equal(t, ExitUsage, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "step")
}

func TestAnalyze_NonFiniteToleranceRejected(t *testing.T) {
	for _, tol := range []string{"NaN", "Inf", "-Inf"} {
		t.Run(tol, func(t *testing.T) {
			_, stderr, code := run(t, "analyze", "--start", "1", "--end", "2", "--step", "1", "--tolerance", tol)
			assert.Equal(t, ExitUsage, code)
			assert.Contains(t, stderr, "tolerance")
		})
	}
}

func TestAnalyze_CacheUnavailableFallsBack(t *testing.T) {
	t.Setenv("PRIMESPIRAL_CACHE_ADDR", "127.0.0.1:1")
	out, stderr, code := run(t, "analyze", "-n", "5", "--start", "0", "--end", "90", "--step", "90", "-o", "jsonl", "--cache")
	require.Equal(t, ExitOK, code, stderr)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)
}

func TestWatch_RequiresConfigFile(t *testing.T) {
	_, stderr, code := run(t, "watch")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "--config")
}

func TestGetCLIContext_Missing(t *testing.T) {
	cmd := &cobra.Command{}
	_, err := GetCLIContext(cmd)
	assert.Error(t, err)

	cmd.SetContext(context.Background())
	_, err = GetCLIContext(cmd)
	assert.Error(t, err)
}
