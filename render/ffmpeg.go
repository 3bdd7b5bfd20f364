// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os/exec"
	"strconv"
	"strings"
)

// FFmpegEncoder pipes PNG frames into an ffmpeg child process that writes
// an H.264 MP4 to Output.
type FFmpegEncoder struct {
	// Binary is the ffmpeg executable name or path (default "ffmpeg").
	Binary string
	// Output is the destination file; ffmpeg overwrites it.
	Output string
	// Codec is the video codec passed to -c:v (default "libx264").
	Codec string

	ctx    context.Context
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr bytes.Buffer
	png    png.Encoder
	state  encState
}

// NewFFmpegEncoder returns an encoder bound to ctx; cancelling ctx kills ffmpeg.
func NewFFmpegEncoder(ctx context.Context, output string) *FFmpegEncoder {
	return &FFmpegEncoder{
		Binary: "ffmpeg",
		Output: output,
		Codec:  "libx264",
		ctx:    ctx,
		png:    png.Encoder{CompressionLevel: png.BestSpeed},
	}
}

// Args returns the ffmpeg command line used for the given frame rate.
// Odd frame sizes are padded to even ones, which yuv420p requires.
func (f *FFmpegEncoder) Args(fps float64) []string {
	return []string{
		"-y", "-loglevel", "error",
		"-f", "image2pipe", "-framerate", strconv.FormatFloat(fps, 'f', -1, 64), "-c:v", "png", "-i", "-",
		"-c:v", f.Codec, "-pix_fmt", "yuv420p", "-vf", "pad=ceil(iw/2)*2:ceil(ih/2)*2",
		f.Output,
	}
}

// Begin starts ffmpeg. The frame size is taken from the PNG stream.
func (f *FFmpegEncoder) Begin(_, _ int, fps float64) error {
	if f.state != stateNew {
		return fmt.Errorf("FFmpegEncoder.Begin: %w", ErrEncoderState)
	}
	bin, err := exec.LookPath(f.Binary)
	if err != nil {
		return fmt.Errorf("FFmpegEncoder.Begin(%s): %w: %v", f.Binary, ErrFFmpegNotFound, err)
	}

	f.cmd = exec.CommandContext(f.ctx, bin, f.Args(fps)...)
	f.cmd.Stderr = &f.stderr
	if f.stdin, err = f.cmd.StdinPipe(); err != nil {
		return fmt.Errorf("FFmpegEncoder.Begin: stdin: %w", err)
	}
	if err = f.cmd.Start(); err != nil {
		return fmt.Errorf("FFmpegEncoder.Begin: start: %w", err)
	}
	f.state = stateOpen

	return nil
}

// AddFrame writes img to ffmpeg's stdin as PNG.
func (f *FFmpegEncoder) AddFrame(img image.Image) error {
	if f.state != stateOpen {
		return fmt.Errorf("FFmpegEncoder.AddFrame: %w", ErrEncoderState)
	}
	if err := f.png.Encode(f.stdin, img); err != nil {
		return fmt.Errorf("FFmpegEncoder.AddFrame: %w", err)
	}

	return nil
}

// Close ends the stream and waits for ffmpeg to finish the file.
func (f *FFmpegEncoder) Close() error {
	if f.state != stateOpen {
		return fmt.Errorf("FFmpegEncoder.Close: %w", ErrEncoderState)
	}
	f.state = stateClosed
	cerr := f.stdin.Close()
	if err := f.cmd.Wait(); err != nil {
		return fmt.Errorf("FFmpegEncoder.Close: ffmpeg: %w%s", err, f.detail())
	}
	if cerr != nil {
		return fmt.Errorf("FFmpegEncoder.Close: stdin: %w", cerr)
	}

	return nil
}

// detail formats captured ffmpeg stderr; valid only after Wait returns.
func (f *FFmpegEncoder) detail() string {
	msg := strings.TrimSpace(f.stderr.String())
	if msg == "" {
		return ""
	}

	return ": " + msg
}
