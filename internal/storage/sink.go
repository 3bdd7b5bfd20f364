package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidName indicates an artifact name with a path separator or "..".
var ErrInvalidName = errors.New("storage: artifact name must be a plain file name")

// Artifact describes a persisted object.
type Artifact struct {
	Name     string // file name, e.g. 20240101_120000_angle_30.png
	Location string // local path or s3://bucket/key
	Size     int64
}

// Sink persists named artifacts.
type Sink interface {
	// Save streams write's output to the artifact called name.
	Save(ctx context.Context, name string, write func(io.Writer) error) (Artifact, error)
}

// DirSink writes artifacts into a local directory, creating it on demand.
// Files appear atomically: content goes to a temp file that is renamed.
type DirSink struct {
	Dir string
}

// NewDirSink returns a sink rooted at dir.
func NewDirSink(dir string) *DirSink { return &DirSink{Dir: dir} }

// Path returns the file path name would be saved at.
func (d *DirSink) Path(name string) string { return filepath.Join(d.Dir, name) }

// Prepare creates the directory so external writers (ffmpeg) can target Path.
func (d *DirSink) Prepare() error {
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return fmt.Errorf("storage: create %q: %w", d.Dir, err)
	}

	return nil
}

// Save implements Sink.
func (d *DirSink) Save(ctx context.Context, name string, write func(io.Writer) error) (a Artifact, err error) {
	if err = checkName(name); err != nil {
		return Artifact{}, err
	}
	if err = ctx.Err(); err != nil {
		return Artifact{}, err
	}
	if err = d.Prepare(); err != nil {
		return Artifact{}, err
	}

	tmp, err := os.CreateTemp(d.Dir, "."+name+".*")
	if err != nil {
		return Artifact{}, fmt.Errorf("storage: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	cw := &countingWriter{w: tmp}
	if err = write(cw); err != nil {
		return Artifact{}, fmt.Errorf("storage: write %s: %w", name, err)
	}
	if err = tmp.Close(); err != nil {
		return Artifact{}, fmt.Errorf("storage: close %s: %w", name, err)
	}
	final := d.Path(name)
	if err = os.Rename(tmp.Name(), final); err != nil {
		return Artifact{}, fmt.Errorf("storage: rename %s: %w", name, err)
	}

	return Artifact{Name: name, Location: final, Size: cw.n}, nil
}

// ContentType guesses the MIME type from the file extension.
func ContentType(name string) string {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".svg":
		return "image/svg+xml"
	case ".mp4":
		return "video/mp4"
	case "":
		return "application/octet-stream"
	default:
		if t := mime.TypeByExtension(ext); t != "" {
			return t
		}

		return "application/octet-stream"
	}
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%q: %w", name, ErrInvalidName)
	}

	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
