package sweep_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primespiral"
	"github.com/katalvlaran/primespiral/sweep"
)

func TestAngles_IncludesEndpoint(t *testing.T) {
	angles, err := sweep.Range{Start: 1, End: 2, Step: 0.5}.Angles()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1.5, 2}, angles)
}

func TestAngles_EndpointOffGrid(t *testing.T) {
	angles, err := sweep.Range{Start: 0, End: 1, Step: 0.3}.Angles()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.3, 0.6, 0.9}, angles)
}

func TestAngles_DecimalStepRounding(t *testing.T) {
	r := sweep.Range{Start: 1, End: 90, Step: 0.1}
	n, err := r.Len()
	require.NoError(t, err)
	assert.Equal(t, 891, n)

	angles, err := r.Angles()
	require.NoError(t, err)
	require.Len(t, angles, 891)
	assert.Equal(t, 1.0, angles[0])
	assert.Equal(t, 1.3, angles[3])
	assert.Equal(t, 90.0, angles[len(angles)-1])
	for i := 1; i < len(angles); i++ {
		assert.Less(t, angles[i-1], angles[i])
	}
}

func TestAngles_StartPrecisionKept(t *testing.T) {
	angles, err := sweep.Range{Start: 0.25, End: 1.25, Step: 0.5}.Angles()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.75, 1.25}, angles)
}

func TestAngles_SinglePoint(t *testing.T) {
	angles, err := sweep.Single(30).Angles()
	require.NoError(t, err)
	assert.Equal(t, []float64{30}, angles)
}

func TestAngles_Negative(t *testing.T) {
	angles, err := sweep.Range{Start: -1, End: 1, Step: 1}.Angles()
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 0, 1}, angles)
}

func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		r      sweep.Range
		target error
		kind   error
	}{
		{"ZeroStep", sweep.Range{Start: 0, End: 10, Step: 0}, sweep.ErrInvalidStep, primespiral.ErrInvalidInput},
		{"NegativeStep", sweep.Range{Start: 0, End: 10, Step: -1}, sweep.ErrInvalidStep, primespiral.ErrInvalidInput},
		{"NaNStep", sweep.Range{Start: 0, End: 10, Step: math.NaN()}, sweep.ErrInvalidStep, primespiral.ErrInvalidInput},
		{"InfStep", sweep.Range{Start: 0, End: 10, Step: math.Inf(1)}, sweep.ErrInvalidStep, primespiral.ErrInvalidInput},
		{"NaNStart", sweep.Range{Start: math.NaN(), End: 10, Step: 1}, sweep.ErrNonFiniteBound, primespiral.ErrNumericDegenerate},
		{"InfEnd", sweep.Range{Start: 0, End: math.Inf(1), Step: 1}, sweep.ErrNonFiniteBound, primespiral.ErrNumericDegenerate},
		{"Inverted", sweep.Range{Start: 10, End: 0, Step: 1}, sweep.ErrInvertedRange, primespiral.ErrInvalidInput},
		{"TooMany", sweep.Range{Start: 0, End: 1e7, Step: 1}, sweep.ErrTooManyAngles, primespiral.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.r.Validate()
			assert.ErrorIs(t, err, tc.target)
			assert.ErrorIs(t, err, tc.kind)

			angles, err := tc.r.Angles()
			assert.Nil(t, angles)
			assert.ErrorIs(t, err, tc.target)
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "1..90 step 0.1", sweep.Range{Start: 1, End: 90, Step: 0.1}.String())
	assert.Equal(t, "-2.5..0 step 0.25", sweep.Range{Start: -2.5, End: 0, Step: 0.25}.String())
}

func TestFormatAngle(t *testing.T) {
	assert.Equal(t, "30", sweep.FormatAngle(30))
	assert.Equal(t, "0.1", sweep.FormatAngle(0.1))
	assert.Equal(t, "137.5", sweep.FormatAngle(137.5))
	assert.Equal(t, "0", sweep.FormatAngle(math.Copysign(0, -1)))
	assert.Equal(t, "-15", sweep.FormatAngle(-15))
}
