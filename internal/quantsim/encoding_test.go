package quantsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumSteps(t *testing.T) {
	assert.Equal(t, float64(255), Encoding{BitWidth: 8}.NumSteps())
	assert.Equal(t, float64(7), Encoding{BitWidth: 3}.NumSteps())
	assert.Equal(t, float64(1), Encoding{BitWidth: 1}.NumSteps())
}

func TestClamped(t *testing.T) {
	e := Encoding{Min: 0, Max: 0, BitWidth: 8}
	c := e.Clamped()
	assert.Equal(t, 0.0, c.Min)
	assert.Equal(t, EpsilonRange, c.Max)

	// A healthy range is untouched.
	e = Encoding{Min: -1, Max: 1, BitWidth: 8}
	assert.Equal(t, e, e.Clamped())
}

func TestDeltaSymmetric(t *testing.T) {
	// 3-bit symmetric grid over max=4: 7 steps, floor(3.5)=3 positive
	// steps, delta 4/3.
	e := Encoding{Min: -4, Max: 4, BitWidth: 3, Symmetric: true}
	assert.InDelta(t, 4.0/3.0, e.Delta(), 1e-12)
}

func TestDeltaAsymmetric(t *testing.T) {
	e := Encoding{Min: -1, Max: 1, BitWidth: 8}
	assert.InDelta(t, 2.0/255.0, e.Delta(), 1e-12)
}

func TestOffsetSymmetric(t *testing.T) {
	e := Encoding{Min: -4, Max: 4, BitWidth: 3, Symmetric: true}
	assert.Equal(t, -4.0, e.Offset())
}

func TestOffsetAsymmetric(t *testing.T) {
	// Zero point of [-1, 1] at 8 bits: round(127.5) = 128.
	e := Encoding{Min: -1, Max: 1, BitWidth: 8}
	assert.Equal(t, -128.0, e.Offset())

	// A range starting at zero keeps its zero point at the grid origin.
	e = Encoding{Min: 0, Max: 1, BitWidth: 8}
	assert.Equal(t, 0.0, e.Offset())
}

func TestOffsetClippedToGrid(t *testing.T) {
	// A fully negative range pins the zero point to the top of the grid.
	e := Encoding{Min: -2, Max: -1, BitWidth: 8}
	assert.Equal(t, -255.0, e.Offset())
}
