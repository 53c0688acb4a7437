package features

// rollingSum computes trailing-window sums over vals: out[i] is the sum
// of vals[max(0,i-window+1)..i]. The window is inclusive of the current
// element with a minimum of one, so early positions are well-defined.
// Callers pass values from a single (match, innings) group only; the
// window never crosses a group boundary.
func rollingSum(vals []int, window int) []int {
	out := make([]int, len(vals))
	sum := 0
	for i, v := range vals {
		sum += v
		if i >= window {
			sum -= vals[i-window]
		}
		out[i] = sum
	}
	return out
}
