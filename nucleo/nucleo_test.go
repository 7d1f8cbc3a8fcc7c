package nucleo_test

import (
	"testing"

	"github.com/rnalab/rnafold/nucleo"
	"github.com/stretchr/testify/assert"
)

// TestCanPair_Canonical verifies all four Watson–Crick combinations pair.
func TestCanPair_Canonical(t *testing.T) {
	assert.True(t, nucleo.CanPair('A', 'U'), "A–U must pair")
	assert.True(t, nucleo.CanPair('U', 'A'), "U–A must pair")
	assert.True(t, nucleo.CanPair('C', 'G'), "C–G must pair")
	assert.True(t, nucleo.CanPair('G', 'C'), "G–C must pair")
}

// TestCanPair_NonCanonical verifies wobble, self and unknown combinations
// never pair.
func TestCanPair_NonCanonical(t *testing.T) {
	assert.False(t, nucleo.CanPair('G', 'U'), "wobble G–U is not canonical")
	assert.False(t, nucleo.CanPair('U', 'G'), "wobble U–G is not canonical")
	assert.False(t, nucleo.CanPair('A', 'A'), "self pairing is impossible")
	assert.False(t, nucleo.CanPair('A', 'C'), "A–C must not pair")
	assert.False(t, nucleo.CanPair('N', 'N'), "ambiguity codes must not pair")
	assert.False(t, nucleo.CanPair('a', 'u'), "lowercase input must not pair")
	assert.False(t, nucleo.CanPair('X', 'G'), "unknown symbols must not pair")
}

// TestIsCanonical checks membership in the RNA alphabet.
func TestIsCanonical(t *testing.T) {
	for _, b := range []byte{'A', 'C', 'G', 'U'} {
		assert.True(t, nucleo.IsCanonical(b), "canonical base %c", b)
	}
	for _, b := range []byte{'T', 'N', 'a', ' ', 0} {
		assert.False(t, nucleo.IsCanonical(b), "non-canonical byte %q", b)
	}
}

// TestNormalize verifies uppercasing and the DNA T→U mapping.
func TestNormalize(t *testing.T) {
	assert.Equal(t, "GCGCUUCGCC", nucleo.Normalize("gcgcuucgcc"), "lowercase must be uppercased")
	assert.Equal(t, "ACGU", nucleo.Normalize("acgt"), "DNA t must map to U")
	assert.Equal(t, "AUGN-AU", nucleo.Normalize("atgn-au"), "unknown symbols pass through")
	assert.Equal(t, "", nucleo.Normalize(""), "empty input stays empty")
}
