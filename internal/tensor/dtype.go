// Package tensor provides the core tensor types for the QuantGrad gradient engine.
package tensor

// DType is a constraint for supported tensor data types.
// It uses Go generics to ensure compile-time type safety.
type DType interface {
	~float32 | ~float64 | ~int32 | ~bool
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types.
//
// Float32 and Float64 are the working precisions of the gradient engine,
// Int32 carries op-mode and axis-handling codes on the wire, and Bool
// carries comparison masks.
const (
	Float32 DataType = iota
	Float64
	Int32
	Bool
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64:
		return 8
	case Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case bool:
		return Bool
	default:
		panic("unsupported type")
	}
}
