package quantsim

import "math"

// EpsilonRange is the minimum width of an encoding range. The backward
// pass clamps max to min+EpsilonRange before dividing by the grid step.
const EpsilonRange = 1e-5

// Encoding is the scalar description of one quantization grid: the real
// range it covers, the bit width of the integer grid, and whether the grid
// is symmetric around zero.
type Encoding struct {
	Min       float64
	Max       float64
	BitWidth  int
	Symmetric bool
}

// NumSteps returns the size of the integer range, 2^bitWidth - 1.
func (e Encoding) NumSteps() float64 {
	return math.Pow(2, float64(e.BitWidth)) - 1
}

// Clamped returns the encoding with max raised to min+EpsilonRange if the
// range would otherwise be degenerate. Min is never moved.
func (e Encoding) Clamped() Encoding {
	e.Max = math.Max(e.Max, e.Min+EpsilonRange)
	return e
}

// Delta returns the real-valued width of one grid step.
//
// Symmetric grids derive the step from max alone; asymmetric grids span
// the full [min, max] range.
func (e Encoding) Delta() float64 {
	c := e.Clamped()
	if e.Symmetric {
		half := c.NumSteps() / 2
		return c.Max / math.Floor(half)
	}
	return (c.Max - c.Min) / c.NumSteps()
}

// Offset returns the grid offset: the (negated) integer grid value that
// real zero maps to.
func (e Encoding) Offset() float64 {
	c := e.Clamped()
	if e.Symmetric {
		half := c.NumSteps() / 2
		return -math.Ceil(half)
	}
	bZero := math.Round(-c.Min / c.Delta())
	bZero = math.Min(c.NumSteps(), math.Max(0, bZero))
	return -bZero
}
