package tensor

// Backend defines the interface that compute backends must implement.
// It covers exactly the vocabulary of the fake-quantization backward pass:
// element-wise arithmetic with broadcasting, scalar variants, the rounding
// and clipping grid operations, comparison masks, axis-set reductions, and
// dtype widening.
//
// Every operation allocates a fresh result tensor and leaves its operands
// untouched, so any number of backward passes may run concurrently over
// shared inputs.
type Backend interface {
	// Element-wise binary operations (NumPy-style broadcasting)
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations (element-wise with scalar)
	AddScalar(x *RawTensor, scalar any) *RawTensor
	SubScalar(x *RawTensor, scalar any) *RawTensor
	MulScalar(x *RawTensor, scalar any) *RawTensor
	DivScalar(x *RawTensor, scalar any) *RawTensor

	// Grid operations
	Round(x *RawTensor) *RawTensor         // round half away from zero
	Clip(x *RawTensor, lo, hi float64) *RawTensor
	Maximum(a, b *RawTensor) *RawTensor    // element-wise max, same shapes

	// Comparison operations (element-wise, same shapes, return bool tensor)
	GreaterEqual(a, b *RawTensor) *RawTensor
	LowerEqual(a, b *RawTensor) *RawTensor

	// Conditional element selection
	Where(condition, x, y *RawTensor) *RawTensor

	// Reduction over a set of axes; reduced axes are dropped from the shape.
	SumAxes(x *RawTensor, axes []int) *RawTensor

	// Shape operations
	Reshape(t *RawTensor, newShape Shape) *RawTensor

	// Type conversion
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
