package grad

import (
	"github.com/qat-ml/quantgrad/internal/quantsim"
	"github.com/qat-ml/quantgrad/internal/tensor"
)

// clampEncodingMax raises each encoding max to at least min+epsilon so the
// grid step stays positive. Min is never moved; a collapsed range widens
// upward only.
func clampEncodingMax(encMin, encMax *tensor.RawTensor, b tensor.Backend) *tensor.RawTensor {
	floor := b.AddScalar(encMin, scalarOf(encMin.DType(), quantsim.EpsilonRange))
	return b.Maximum(encMax, floor)
}
