package report_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/primespiral"
	"github.com/katalvlaran/primespiral/pattern"
	"github.com/katalvlaran/primespiral/report"
	"github.com/katalvlaran/primespiral/sweep"
)

var generatedAt = time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

func sampleDoc() *report.Document {
	return &report.Document{
		RunID:       "run-1",
		Primes:      5,
		Direction:   "clockwise",
		Range:       sweep.Range{Start: 1, End: 2, Step: 0.5},
		GeneratedAt: generatedAt,
		Classifications: []pattern.Classification{
			{Angle: 1, Kind: pattern.KindRegular, Count: 1},
			{Angle: 1.5, Kind: pattern.KindIrregular, Counts: []int{2, 3}},
			{Angle: 2, Kind: pattern.KindRegular, Count: 1},
		},
	}
}

func render(t *testing.T, format string, opts report.Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, report.Write(format, &buf, sampleDoc(), opts))

	return buf.String()
}

func TestFormats(t *testing.T) {
	assert.Subset(t, report.Formats(), []string{"json", "jsonl", "table", "text", "tsv", "yaml"})
}

func TestText_RegularOnly(t *testing.T) {
	assert.Equal(t,
		"Turn Angle: 1 degrees has 1 points per curve.\n"+
			"Turn Angle: 2 degrees has 1 points per curve.\n",
		render(t, "text", report.Options{}))
}

func TestText_All(t *testing.T) {
	out := render(t, "text", report.Options{All: true})
	assert.Contains(t, out, "Turn Angle: 1.5 degrees is irregular with counts 2 3 (mean 2.5).\n")
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestTable(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(render(t, "table", report.Options{})), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"ANGLE", "KIND", "COUNTS", "MEAN"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1.5", "irregular", "2,3", "2.5"}, strings.Fields(lines[2]))
}

func TestTSV(t *testing.T) {
	assert.Equal(t,
		"angle\tkind\tcounts\tmean\n"+
			"1\tregular\t1\t1\n"+
			"1.5\tirregular\t2,3\t2.5\n"+
			"2\tregular\t1\t1\n",
		render(t, "tsv", report.Options{}))
}

func TestJSON_RoundTrip(t *testing.T) {
	var got report.Document
	require.NoError(t, json.Unmarshal([]byte(render(t, "json", report.Options{})), &got))
	assert.Equal(t, *sampleDoc(), got)
}

func TestJSONL(t *testing.T) {
	sc := bufio.NewScanner(strings.NewReader(render(t, "jsonl", report.Options{})))
	var rows []map[string]interface{}
	for sc.Scan() {
		var row map[string]interface{}
		require.NoError(t, json.Unmarshal(sc.Bytes(), &row))
		rows = append(rows, row)
	}
	require.Len(t, rows, 3)
	assert.Equal(t, "run-1", rows[0]["run_id"])
	assert.Equal(t, "irregular", rows[1]["kind"])
	assert.Equal(t, 2.5, rows[1]["mean"])
	assert.Equal(t, []interface{}{2.0, 3.0}, rows[1]["counts"])
	assert.NotContains(t, rows[0], "counts")
}

func TestYAML_RoundTrip(t *testing.T) {
	out := render(t, "yaml", report.Options{})
	assert.Contains(t, out, "run_id: run-1")
	assert.Contains(t, out, "kind: irregular")

	var got report.Document
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, *sampleDoc(), got)
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := report.Write("xml", io.Discard, sampleDoc(), report.Options{})
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
	assert.ErrorIs(t, err, primespiral.ErrInvalidInput)
}

type pipeWriter struct{ err error }

func (p pipeWriter) Write([]byte) (int, error) { return 0, p.err }

func TestWrite_BrokenPipeIsNotAnError(t *testing.T) {
	for _, format := range report.Formats() {
		assert.NoError(t, report.Write(format, pipeWriter{err: syscall.EPIPE}, sampleDoc(), report.Options{}), format)
		assert.NoError(t, report.Write(format, pipeWriter{err: io.ErrClosedPipe}, sampleDoc(), report.Options{}), format)
	}
	err := report.Write("tsv", pipeWriter{err: fmt.Errorf("quota")}, sampleDoc(), report.Options{})
	assert.EqualError(t, err, `Write("tsv"): quota`)
}

func TestRegister_Overrides(t *testing.T) {
	report.Register("count", func(w io.Writer, d *report.Document, _ report.Options) error {
		_, err := fmt.Fprintln(w, len(d.Classifications))
		return err
	})
	assert.Equal(t, "3\n", render(t, "count", report.Options{}))
	assert.Contains(t, report.Formats(), "count")
}

func TestNewDocument(t *testing.T) {
	a, err := pattern.Analyze([]int{2, 3, 5}, sweep.Range{Start: 0, End: 10, Step: 5})
	require.NoError(t, err)

	d := report.NewDocument("abc", a, "clockwise", generatedAt.In(time.FixedZone("X", 3600)))
	assert.Equal(t, "abc", d.RunID)
	assert.Equal(t, 3, d.Primes)
	assert.Equal(t, a.Range, d.Range)
	assert.Len(t, d.Classifications, 3)
	assert.Equal(t, time.UTC, d.GeneratedAt.Location())
}
