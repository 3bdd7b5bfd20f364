// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/primespiral/pattern"
	"github.com/katalvlaran/primespiral/sweep"
)

func init() {
	Register("text", writeText)
	Register("table", writeTable)
	Register("tsv", writeTSV)
	Register("json", writeJSON)
	Register("jsonl", writeJSONL)
	Register("yaml", writeYAML)
}

// writeText prints one sentence per regular angle, and per irregular angle with opts.All.
func writeText(w io.Writer, doc *Document, opts Options) error {
	bw := bufio.NewWriter(w)
	for _, c := range doc.Classifications {
		var err error
		switch {
		case c.IsRegular():
			_, err = fmt.Fprintf(bw, "Turn Angle: %s degrees has %d points per curve.\n", sweep.FormatAngle(c.Angle), c.Count)
		case opts.All:
			_, err = fmt.Fprintf(bw, "Turn Angle: %s degrees is irregular with counts %s (mean %s).\n",
				sweep.FormatAngle(c.Angle), joinInts(c.Counts, " "), formatMean(c.Mean()))
		}
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeTable(w io.Writer, doc *Document, _ Options) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ANGLE\tKIND\tCOUNTS\tMEAN")
	for _, c := range doc.Classifications {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", sweep.FormatAngle(c.Angle), c.Kind, countsField(c, ","), formatMean(c.Mean()))
	}

	return tw.Flush()
}

func writeTSV(w io.Writer, doc *Document, _ Options) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "angle\tkind\tcounts\tmean"); err != nil {
		return err
	}
	for _, c := range doc.Classifications {
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%s\n", sweep.FormatAngle(c.Angle), c.Kind, countsField(c, ","), formatMean(c.Mean())); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeJSON(w io.Writer, doc *Document, _ Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

// jsonlRow is one classification tagged with its run.
type jsonlRow struct {
	RunID string `json:"run_id"`
	pattern.Classification
	Mean float64 `json:"mean"`
}

func writeJSONL(w io.Writer, doc *Document, _ Options) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, c := range doc.Classifications {
		if err := enc.Encode(jsonlRow{RunID: doc.RunID, Classification: c, Mean: c.Mean()}); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// writeYAML encodes into memory first; the yaml emitter flattens writer errors
// to strings, which would hide EPIPE from IsBrokenPipe.
func writeYAML(w io.Writer, doc *Document, _ Options) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())

	return err
}

// countsField is the common count for regular angles and the joined vector otherwise.
func countsField(c pattern.Classification, sep string) string {
	if c.IsRegular() {
		return strconv.Itoa(c.Count)
	}

	return joinInts(c.Counts, sep)
}

func joinInts(xs []int, sep string) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, sep)
}

func formatMean(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}
