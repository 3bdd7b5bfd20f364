// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/primespiral"
)

var (
	// ErrInvalidOptions indicates a FrameOptions, ChartOptions or AnimationOptions value out of range.
	ErrInvalidOptions = fmt.Errorf("render: invalid options: %w", primespiral.ErrInvalidInput)

	// ErrInvalidColor indicates a color string ParseColor cannot read.
	ErrInvalidColor = fmt.Errorf("render: invalid color: %w", primespiral.ErrInvalidInput)

	// ErrUnknownFormat indicates an output format name no writer handles.
	ErrUnknownFormat = fmt.Errorf("render: unknown format: %w", primespiral.ErrInvalidInput)

	// ErrEncoderState indicates an Encoder method called out of order.
	ErrEncoderState = errors.New("render: encoder used out of order")

	// ErrFFmpegNotFound indicates the ffmpeg binary is not on PATH.
	ErrFFmpegNotFound = errors.New("render: ffmpeg binary not found")
)
