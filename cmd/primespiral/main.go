// Command primespiral renders prime turning spirals and analyzes their
// distance patterns across angle sweeps.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/primespiral/internal/cli"
)

// Build-time variables injected via ldflags:
//
//	go build -ldflags "-X main.version=v1.0.0 -X main.commit=$(git rev-parse HEAD) -X main.date=$(date -u +%FT%TZ)"
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cli.Version, cli.Commit, cli.Date = version, commit, date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
