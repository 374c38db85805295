package ring

import (
	"io"

	"github.com/anupsv/ring-signatures/group"
)

// Secret wraps a single non-zero Scalar (spec §3.2). It is created only by
// NewSecret or SecretFromCanonical; the library never logs, prints, or
// compares secrets except by explicit caller request.
type Secret struct {
	scalar group.Scalar
}

// NewSecret draws a fresh secret scalar from rng.
func NewSecret(rng io.Reader) (Secret, error) {
	s, err := group.RandomScalar(rng)
	if err != nil {
		return Secret{}, err
	}
	return Secret{scalar: s}, nil
}

// SecretFromCanonical decodes a canonical 32-byte scalar as a secret key,
// rejecting the zero scalar.
func SecretFromCanonical(b []byte) (Secret, bool) {
	s, ok := group.ScalarFromCanonical(b)
	if !ok || s.Equal(group.Zero()) {
		return Secret{}, false
	}
	return Secret{scalar: s}, true
}

// PublicKey returns P = secret·G.
func (s Secret) PublicKey() PublicKey {
	return PublicKey{point: group.ScalarBaseMul(s.scalar)}
}

// Bytes returns the canonical 32-byte encoding of the secret scalar, for
// callers that need to persist a key (spec §6.2).
func (s Secret) Bytes() []byte {
	return s.scalar.Bytes()
}

// Scrub zeroizes the backing scalar. Call this once a signature using the
// secret has been produced and the secret is no longer needed (spec §5).
func (s *Secret) Scrub() {
	s.scalar.Scrub()
}

// PublicKey is a Ristretto255 point representing a verification key.
type PublicKey struct {
	point group.Point
}

// PublicKeyFromBytes decodes a canonical 32-byte public key.
func PublicKeyFromBytes(b []byte) (PublicKey, bool) {
	p, ok := group.PointFromBytes(b)
	if !ok {
		return PublicKey{}, false
	}
	return PublicKey{point: p}, true
}

// Bytes returns the canonical 32-byte compressed encoding.
func (k PublicKey) Bytes() []byte {
	return k.point.Bytes()
}

// Equal reports whether k and o encode the same point.
func (k PublicKey) Equal(o PublicKey) bool {
	return k.point.Equal(o.point)
}

// Ring is an ordered sequence of public keys (spec §3.3). Callers supply
// N-1 decoys; signing inserts the signer's own key at a random index to
// produce a length-N ring. The library never mutates a caller's Ring in
// place — insertion makes a fresh slice.
type Ring []PublicKey

// insertAt returns a new Ring of length len(r)+1 with pk placed at idx.
// idx ranges over [0, len(r)] inclusive, matching spec §9's
// "sampled with upper bound inclusive" rule.
func (r Ring) insertAt(pk PublicKey, idx int) Ring {
	out := make(Ring, 0, len(r)+1)
	out = append(out, r[:idx]...)
	out = append(out, pk)
	out = append(out, r[idx:]...)
	return out
}

// points extracts the underlying group.Point values, for the kernel.
func (r Ring) points() []group.Point {
	out := make([]group.Point, len(r))
	for i, k := range r {
		out[i] = k.point
	}
	return out
}

// Rings is an X-by-Y matrix of decoy public keys (spec §3.3): X rows, each
// a Y-long column. Signing inserts the signer's Y-long column at a random
// row to produce X+1 rows.
type Rings []Ring

// insertRowAt returns a new Rings with row col inserted at idx.
func (rs Rings) insertRowAt(col Ring, idx int) Rings {
	out := make(Rings, 0, len(rs)+1)
	out = append(out, rs[:idx]...)
	out = append(out, col)
	out = append(out, rs[idx:]...)
	return out
}

// columns reports Y, the column count, or 0 for an empty matrix.
func (rs Rings) columns() int {
	if len(rs) == 0 {
		return 0
	}
	return len(rs[0])
}

// column extracts row i's j-th public key across every row, as raw points.
func (rs Rings) column(j int) []group.Point {
	out := make([]group.Point, len(rs))
	for i, row := range rs {
		out[i] = row[j].point
	}
	return out
}

// Scalars is a sequence of response scalars.
type Scalars []group.Scalar

// Image is a key image (spec §3.4): a group element deterministically
// derived from a secret, serving as its linkage fingerprint.
type Image struct {
	point group.Point
}

// Bytes returns the canonical 32-byte compressed encoding.
func (i Image) Bytes() []byte {
	return i.point.Bytes()
}

// ImageFromBytes decodes a canonical 32-byte image.
func ImageFromBytes(b []byte) (Image, bool) {
	p, ok := group.PointFromBytes(b)
	if !ok {
		return Image{}, false
	}
	return Image{point: p}, true
}

// Equal reports whether two images are the same group element.
func (i Image) Equal(o Image) bool {
	return i.point.Equal(o.point)
}
