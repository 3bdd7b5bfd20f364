// Package report writes pattern classifications in named output formats.
//
// Writers are looked up by format name in a registry, so the CLI resolves
// "-o <format>" with one map lookup instead of a switch:
//
//	text   Turn Angle: <a> degrees has <n> points per curve.   (regular angles; Options.All adds irregular)
//	table  aligned columns: angle, kind, count(s), mean
//	tsv    tab-separated columns with a header row
//	json   the whole Document, indented
//	jsonl  one classification per line, tagged with the run id
//	yaml   the whole Document
//
// A reader that closes early (primespiral analyze | head) surfaces as EPIPE;
// Write treats that as success.
package report
