package pager

// windowSize bounds how many screens may be materialized at once.
const windowSize = 3

// Window returns the page indices that should be materialized for the given
// selection. The policy is asymmetric: at either edge the window extends
// inward so it never covers indices outside [0, count); anywhere else it is
// the selection plus its immediate neighbors.
func Window(selected, count, size int) []int {
	if count <= 0 || size <= 0 {
		return nil
	}
	if count == 1 {
		return []int{0}
	}
	n := size
	if count < n {
		n = count
	}
	switch {
	case selected <= 0:
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	case selected >= count-1:
		out := make([]int, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, count-1-i)
		}
		return out
	default:
		return []int{selected - 1, selected, selected + 1}
	}
}
