// Package quantsim defines the quantization-simulation domain types shared
// by the gradient engine and its hosts: op modes, axis handling, the
// positional input contract of the quantize ops, and encoding metadata.
package quantsim

import "fmt"

// OpMode is the operating mode recorded by the forward quantize op.
//
// The numeric values are part of the wire contract with the forward
// kernel: the mode arrives as a scalar tensor holding one of these codes,
// and OpModePassThrough must stay at code 3.
type OpMode int

// Operating modes.
const (
	OpModeUpdateStats OpMode = iota
	OpModeOneShotQuantDequant
	OpModeQuantDequant
	OpModePassThrough
)

// String returns a human-readable mode name.
func (m OpMode) String() string {
	switch m {
	case OpModeUpdateStats:
		return "updateStats"
	case OpModeOneShotQuantDequant:
		return "oneShotQuantDequant"
	case OpModeQuantDequant:
		return "quantDequant"
	case OpModePassThrough:
		return "passThrough"
	default:
		return fmt.Sprintf("OpMode(%d)", int(m))
	}
}

// AxisHandling selects which tensor axes carry per-channel encodings.
//
// AxisPerTensor: one scalar encoding pair for the whole tensor.
// AxisPerChannel: one pair per slice of the last axis.
// AxisLastTwoCombined: depthwise-style weights shaped
// (H, W, channels, depthMultiplier), where the encoding spans
// channels*depthMultiplier combined as one logical channel axis.
//
// Codes outside this set behave as AxisPerChannel: the reshape no-ops and
// the default reduction applies.
type AxisHandling int

// Axis handling codes.
const (
	AxisPerTensor AxisHandling = iota
	AxisPerChannel
	AxisLastTwoCombined
)

// String returns a human-readable axis-handling name.
func (a AxisHandling) String() string {
	switch a {
	case AxisPerTensor:
		return "perTensor"
	case AxisPerChannel:
		return "perChannel"
	case AxisLastTwoCombined:
		return "lastTwoAxesCombined"
	default:
		return fmt.Sprintf("AxisHandling(%d)", int(a))
	}
}

// OpKind identifies a quantize op variant for gradient dispatch.
type OpKind int

// Quantize op variants with registered gradients.
const (
	KindQuantize OpKind = iota
	KindQuantizeRecurrentParam
	KindRangeLearning
	KindRangeLearningPerChannel
)

// String returns a human-readable op kind name.
func (k OpKind) String() string {
	switch k {
	case KindQuantize:
		return "quantize"
	case KindQuantizeRecurrentParam:
		return "quantizeRecurrentParam"
	case KindRangeLearning:
		return "rangeLearning"
	case KindRangeLearningPerChannel:
		return "rangeLearningPerChannel"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// OpInput is the positional index of each quantize op input. The ordering
// is a contract with the forward kernel and must not be renumbered.
type OpInput int

// Input positions. Per-tensor ops carry inputs 0 through 7; the
// per-channel op adds AxisHandling and IsTraining.
const (
	InputTensor OpInput = iota
	InputOpMode
	InputQuantizerRef
	InputEncodingMin
	InputEncodingMax
	InputBitWidth
	InputUseSymmetric
	InputIsIntDataType
	InputAxisHandling
	InputIsTraining
)

// Input counts per op variant.
const (
	NumPerTensorInputs  = 8
	NumPerChannelInputs = 10
)

// NumInputs returns the input arity of an op kind.
func (k OpKind) NumInputs() int {
	if k == KindRangeLearningPerChannel {
		return NumPerChannelInputs
	}
	return NumPerTensorInputs
}
