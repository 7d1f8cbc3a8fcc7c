package fold

// triMatrix is an upper-triangular table of float64 values over intervals
// (i,j) with 0 ≤ i ≤ j < n, stored row-packed in a flat slice for cache
// friendliness: row i contributes n−i cells, so the table holds
// n·(n+1)/2 elements instead of n².
//
// All accesses go through the explicit (i,j) → linear mapping in idx;
// slice indexing keeps every access bounds-checked. The fill loop writes
// each cell exactly once and never reads a cell before writing it (fill
// order is strictly increasing interval length).
type triMatrix struct {
	n    int
	data []float64
}

// newTriMatrix allocates an n×n upper-triangular table with every cell
// initialized to fill. n must be ≥ 0; n == 0 yields an empty table.
// Complexity: O(n²) time and memory.
func newTriMatrix(n int, fill float64) *triMatrix {
	data := make([]float64, n*(n+1)/2)
	if fill != 0 {
		for i := range data {
			data[i] = fill
		}
	}

	return &triMatrix{n: n, data: data}
}

// idx maps (i,j), 0 ≤ i ≤ j < n, onto the flat slice. Rows 0..i−1
// contribute n, n−1, …, n−i+1 cells, i.e. i·n − i·(i−1)/2 in total; the
// cell then sits j−i positions into row i.
func (m *triMatrix) idx(i, j int) int {
	return i*m.n - i*(i-1)/2 + (j - i)
}

// at returns the value stored for interval (i,j).
func (m *triMatrix) at(i, j int) float64 {
	return m.data[m.idx(i, j)]
}

// set stores v for interval (i,j).
func (m *triMatrix) set(i, j int, v float64) {
	m.data[m.idx(i, j)] = v
}
