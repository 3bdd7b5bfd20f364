package render_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/gif"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primespiral/render"
	"github.com/katalvlaran/primespiral/spiral"
	"github.com/katalvlaran/primespiral/sweep"
)

type mockEncoder struct {
	mock.Mock
}

func (m *mockEncoder) Begin(width, height int, fps float64) error {
	return m.Called(width, height, fps).Error(0)
}

func (m *mockEncoder) AddFrame(img image.Image) error {
	return m.Called(img).Error(0)
}

func (m *mockEncoder) Close() error {
	return m.Called().Error(0)
}

func tinyAnimation() render.AnimationOptions {
	o := render.DefaultAnimationOptions()
	o.Frame.Width, o.Frame.Height = 96, 96

	return o
}

func TestFrameSeq(t *testing.T) {
	seq, err := render.NewFrameSeq([]int{2, 3, 5}, sweep.Range{Start: 0, End: 90, Step: 45}, spiral.Clockwise)
	require.NoError(t, err)
	assert.Equal(t, 3, seq.Len())

	var angles []float64
	for f, err := range seq.All() {
		require.NoError(t, err)
		assert.Len(t, f.Path, 4)
		angles = append(angles, f.Angle)
	}
	assert.Equal(t, []float64{0, 45, 90}, angles)

	_, err = render.NewFrameSeq([]int{2, 0}, sweep.Single(1), spiral.Clockwise)
	assert.ErrorIs(t, err, spiral.ErrInvalidPrime)
	_, err = render.NewFrameSeq([]int{2}, sweep.Range{Start: 0, End: 1, Step: 0}, spiral.Clockwise)
	assert.ErrorIs(t, err, sweep.ErrInvalidStep)
}

func TestAnimate_FeedsEveryFrame(t *testing.T) {
	enc := new(mockEncoder)
	enc.On("Begin", 96, 96, float64(render.DefaultFPS)).Return(nil).Once()
	enc.On("AddFrame", mock.AnythingOfType("*image.RGBA")).Return(nil).Times(5)
	enc.On("Close").Return(nil).Once()

	var seen []float64
	o := tinyAnimation()
	o.Observer = func(f render.Frame) { seen = append(seen, f.Angle) }

	n, err := render.Animate(context.Background(), enc, []int{2, 3, 5, 7}, sweep.Range{Start: 1, End: 2, Step: 0.25}, o)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []float64{1, 1.25, 1.5, 1.75, 2}, seen)
	enc.AssertExpectations(t)
}

func TestAnimate_ClosesOnFrameError(t *testing.T) {
	boom := errors.New("pipe closed")
	enc := new(mockEncoder)
	enc.On("Begin", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	enc.On("AddFrame", mock.Anything).Return(boom).Once()
	enc.On("Close").Return(nil).Once()

	n, err := render.Animate(context.Background(), enc, []int{2, 3}, sweep.Range{Start: 0, End: 10, Step: 1}, tinyAnimation())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, n)
	enc.AssertExpectations(t)
}

func TestAnimate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	enc := new(mockEncoder)
	enc.On("Begin", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	enc.On("Close").Return(nil).Once()

	_, err := render.Animate(ctx, enc, []int{2, 3}, sweep.Range{Start: 0, End: 10, Step: 1}, tinyAnimation())
	assert.ErrorIs(t, err, context.Canceled)
	enc.AssertNotCalled(t, "AddFrame", mock.Anything)
	enc.AssertExpectations(t)
}

func TestAnimate_InvalidFPS(t *testing.T) {
	o := tinyAnimation()
	o.FPS = 0
	_, err := render.Animate(context.Background(), new(mockEncoder), []int{2}, sweep.Single(1), o)
	assert.ErrorIs(t, err, render.ErrInvalidOptions)
}

func TestGIFEncoder_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	enc := render.NewGIFEncoder(&buf)

	n, err := render.Animate(context.Background(), enc, []int{2, 3, 5, 7, 11}, sweep.Range{Start: 10, End: 30, Step: 10}, tinyAnimation())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, enc.Frames())

	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, g.Image, 3)
	assert.Equal(t, []int{4, 4, 4}, g.Delay)
	assert.Equal(t, 0, g.LoopCount)
}

func TestGIFEncoder_State(t *testing.T) {
	enc := render.NewGIFEncoder(&bytes.Buffer{})
	assert.ErrorIs(t, enc.AddFrame(image.NewRGBA(image.Rect(0, 0, 1, 1))), render.ErrEncoderState)
	assert.ErrorIs(t, enc.Close(), render.ErrEncoderState)

	require.NoError(t, enc.Begin(1, 1, 25))
	assert.ErrorIs(t, enc.Begin(1, 1, 25), render.ErrEncoderState)
	assert.ErrorIs(t, enc.Close(), render.ErrEncoderState, "closing without frames")
	assert.ErrorIs(t, enc.Close(), render.ErrEncoderState, "second close")
}

func TestFFmpegEncoder_MissingBinary(t *testing.T) {
	enc := render.NewFFmpegEncoder(context.Background(), filepath.Join(t.TempDir(), "out.mp4"))
	enc.Binary = "ffmpeg-does-not-exist-here"
	err := enc.Begin(96, 96, 25)
	assert.ErrorIs(t, err, render.ErrFFmpegNotFound)
	assert.ErrorIs(t, enc.AddFrame(image.NewRGBA(image.Rect(0, 0, 1, 1))), render.ErrEncoderState)
}

func TestFFmpegEncoder_Args(t *testing.T) {
	enc := render.NewFFmpegEncoder(context.Background(), "out.mp4")
	args := enc.Args(25)
	assert.Contains(t, args, "image2pipe")
	assert.Contains(t, args, "libx264")
	assert.Equal(t, "out.mp4", args[len(args)-1])
}

func TestFFmpegEncoder_WritesMP4(t *testing.T) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not installed")
	}
	out := filepath.Join(t.TempDir(), "sweep.mp4")
	enc := render.NewFFmpegEncoder(context.Background(), out)

	n, err := render.Animate(context.Background(), enc, []int{2, 3, 5, 7}, sweep.Range{Start: 1, End: 3, Step: 1}, tinyAnimation())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.FileExists(t, out)
}
