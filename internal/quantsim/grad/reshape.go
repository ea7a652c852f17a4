package grad

import (
	"github.com/qat-ml/quantgrad/internal/quantsim"
	"github.com/qat-ml/quantgrad/internal/tensor"
)

// combineLastTwoAxes folds the two trailing axes of a depthwise-style
// weight (H, W, channels, depthMultiplier) into one channel axis of size
// channels*depthMultiplier, so the per-channel reduction sees one encoding
// per combined channel. Tensors below rank 4 and all other axis-handling
// modes pass through unchanged.
func combineLastTwoAxes(t *tensor.RawTensor, handling quantsim.AxisHandling, b tensor.Backend) *tensor.RawTensor {
	shape := t.Shape()
	if handling != quantsim.AxisLastTwoCombined || shape.Rank() < 4 {
		return t
	}
	n := shape.Rank()
	combined := append(shape[:n-2].Clone(), shape[n-2]*shape[n-1])
	return b.Reshape(t, combined)
}

// splitCombinedAxes restores an input gradient to the original tensor
// shape after a combineLastTwoAxes fold. It is the exact inverse; the
// element order is untouched.
func splitCombinedAxes(dx *tensor.RawTensor, original tensor.Shape, handling quantsim.AxisHandling, b tensor.Backend) *tensor.RawTensor {
	if handling != quantsim.AxisLastTwoCombined || original.Rank() < 4 {
		return dx
	}
	return b.Reshape(dx, original)
}
