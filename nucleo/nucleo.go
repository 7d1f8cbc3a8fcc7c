package nucleo

// Canonical RNA bases. Sequences are plain byte strings; anything outside
// this set is tolerated but never pairs.
const (
	A = 'A'
	C = 'C'
	G = 'G'
	U = 'U'
)

// CanPair reports whether bases a and b form one of the four canonical
// Watson–Crick pairs: A–U, U–A, C–G or G–C.
//
// Any other combination — including wobble G–U, lowercase letters and
// unknown symbols — returns false. Pure and total: no failure mode.
// Complexity: O(1).
func CanPair(a, b byte) bool {
	switch a {
	case A:
		return b == U
	case U:
		return b == A
	case C:
		return b == G
	case G:
		return b == C
	default:
		return false
	}
}

// IsCanonical reports whether b is one of the four canonical RNA bases.
// Complexity: O(1).
func IsCanonical(b byte) bool {
	return b == A || b == C || b == G || b == U
}

// Normalize uppercases s and maps DNA thymine (T/t) to uracil, so that
// DNA-cased input can be fed to the fold core. Symbols outside the
// canonical alphabet are passed through unchanged; they will simply never
// pair. Complexity: O(n) time and one allocation for the result.
func Normalize(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		if b == 'T' {
			b = U
		}
		out[i] = b
	}

	return string(out)
}
