package cpu

// Contiguous same-shape kernels. Ranges are pre-sliced by the caller so
// each invocation runs a tight loop the compiler can vectorize.

func addKernel32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subKernel32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulKernel32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func divKernel32(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

func addKernel64(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subKernel64(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulKernel64(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func divKernel64(dst, a, b []float64) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}
