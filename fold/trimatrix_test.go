package fold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTriMatrix_IndexMapping verifies the (i,j) → linear mapping is a
// bijection onto [0, n·(n+1)/2) that walks the upper triangle row by row.
func TestTriMatrix_IndexMapping(t *testing.T) {
	const n = 7
	m := newTriMatrix(n, 0)
	require.Len(t, m.data, n*(n+1)/2)

	want := 0
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			assert.Equal(t, want, m.idx(i, j), "cell (%d,%d)", i, j)
			want++
		}
	}
	assert.Equal(t, len(m.data), want, "mapping must cover the whole backing slice")
}

// TestTriMatrix_SetAt verifies writes land on the addressed cell only.
func TestTriMatrix_SetAt(t *testing.T) {
	const n = 5
	m := newTriMatrix(n, -1)

	m.set(1, 3, 42)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if i == 1 && j == 3 {
				assert.Equal(t, 42.0, m.at(i, j))

				continue
			}
			assert.Equal(t, -1.0, m.at(i, j), "cell (%d,%d) must keep its fill value", i, j)
		}
	}
}

// TestTriMatrix_Empty verifies the n == 0 degenerate table.
func TestTriMatrix_Empty(t *testing.T) {
	m := newTriMatrix(0, 1e9)
	assert.Empty(t, m.data, "empty sequence yields an empty table")
}

// TestTriMatrix_FillValue verifies non-zero initialization reaches every
// cell.
func TestTriMatrix_FillValue(t *testing.T) {
	m := newTriMatrix(4, 1e9)
	for i := 0; i < 4; i++ {
		for j := i; j < 4; j++ {
			assert.Equal(t, 1e9, m.at(i, j), "cell (%d,%d)", i, j)
		}
	}
}
