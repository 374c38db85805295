package group

import (
	"io"

	"github.com/gtank/ristretto255"
)

// Scalar is an element of the Ristretto255 scalar field, reduced mod ℓ.
type Scalar struct {
	s *ristretto255.Scalar
}

// RandomScalar draws 64 random bytes and reduces them mod ℓ (spec §6.1).
func RandomScalar(rng io.Reader) (Scalar, error) {
	buf := make([]byte, 64)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return Scalar{}, err
	}
	return Scalar{s: ristretto255.NewScalar().SetUniformBytes(buf)}, nil
}

// ScalarFromCanonical decodes 32 bytes as a scalar, rejecting values ≥ ℓ.
func ScalarFromCanonical(b []byte) (Scalar, bool) {
	s := ristretto255.NewScalar()
	if err := s.Decode(b); err != nil {
		return Scalar{}, false
	}
	return Scalar{s: s}, true
}

// ScalarFromWideBytes reduces a 64-byte wide value mod ℓ. This is
// scalar_of(H) of spec §4.1: the finalized 64-byte digest folded into the
// starting/rotating challenge.
func ScalarFromWideBytes(wide []byte) Scalar {
	return Scalar{s: ristretto255.NewScalar().SetUniformBytes(wide)}
}

// Zero returns the additive identity.
func Zero() Scalar {
	return Scalar{s: ristretto255.NewScalar()}
}

// Add returns s+t.
func (s Scalar) Add(t Scalar) Scalar {
	return Scalar{s: ristretto255.NewScalar().Add(s.s, t.s)}
}

// Sub returns s-t.
func (s Scalar) Sub(t Scalar) Scalar {
	return Scalar{s: ristretto255.NewScalar().Subtract(s.s, t.s)}
}

// Mul returns s*t.
func (s Scalar) Mul(t Scalar) Scalar {
	return Scalar{s: ristretto255.NewScalar().Multiply(s.s, t.s)}
}

// Negate returns -s.
func (s Scalar) Negate() Scalar {
	return Scalar{s: ristretto255.NewScalar().Negate(s.s)}
}

// Equal reports whether s and t encode the same scalar.
func (s Scalar) Equal(t Scalar) bool {
	if s.s == nil || t.s == nil {
		return s.s == t.s
	}
	return s.s.Equal(t.s) == 1
}

// IsZero reports whether s is the zero-value Scalar (never initialized).
func (s Scalar) IsZero() bool {
	return s.s == nil
}

// Bytes returns the canonical 32-byte encoding.
func (s Scalar) Bytes() []byte {
	return s.s.Encode(nil)
}

// Scrub overwrites the scalar's backing bytes with zeros. The signing
// kernels scrub their α nonces this way once the ring is closed, and
// Secret.Scrub uses it for long-term keys (spec §5). Responses are part of
// the emitted signature and are not scrubbed.
func (s *Scalar) Scrub() {
	if s.s == nil {
		return
	}
	zero := make([]byte, 32)
	_ = s.s.Decode(zero) // the all-zero encoding is always canonical
}
