package grad

// reductionAxes returns the input axes summed over when accumulating
// encoding gradients. A scalar encoding reduces every axis of the input;
// a per-channel encoding reduces every axis but the last, leaving one
// gradient per channel. Only the ranks matter, never the extents.
func reductionAxes(inputRank, encodingRank int) []int {
	n := inputRank
	if encodingRank >= 1 {
		n = inputRank - 1
	}
	if n <= 0 {
		return nil
	}
	axes := make([]int, n)
	for i := range axes {
		axes[i] = i
	}
	return axes
}
