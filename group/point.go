package group

import (
	"io"

	"github.com/gtank/ristretto255"
)

// Point is a Ristretto255 group element in its canonical 32-byte encoding.
type Point struct {
	e *ristretto255.Element
}

// Generator returns the Ristretto255 base point G.
func Generator() Point {
	return Point{e: ristretto255.NewElement().ScalarBaseMult(one())}
}

// one returns the scalar 1, decoded from its canonical encoding.
func one() *ristretto255.Scalar {
	buf := make([]byte, 32)
	buf[0] = 1
	s := ristretto255.NewScalar()
	if err := s.Decode(buf); err != nil {
		panic("group: canonical encoding of 1 rejected: " + err.Error())
	}
	return s
}

// RandomPoint samples a uniform group element by drawing 64 random bytes
// and mapping them with the uniform-bytes constructor (spec §6.1).
func RandomPoint(rng io.Reader) (Point, error) {
	buf := make([]byte, 64)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return Point{}, err
	}
	return Point{e: ristretto255.NewElement().FromUniformBytes(buf)}, nil
}

// PointFromBytes decodes a canonical 32-byte compressed point. It rejects
// any non-canonical encoding rather than returning an error with details,
// matching the verification-failure collapse rule of spec §7.
func PointFromBytes(b []byte) (Point, bool) {
	e := ristretto255.NewElement()
	if err := e.Decode(b); err != nil {
		return Point{}, false
	}
	return Point{e: e}, true
}

// Bytes returns the canonical 32-byte compressed encoding.
func (p Point) Bytes() []byte {
	return p.e.Encode(nil)
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{e: ristretto255.NewElement().Add(p.e, q.e)}
}

// Equal reports whether p and q encode the same group element.
func (p Point) Equal(q Point) bool {
	if p.e == nil || q.e == nil {
		return p.e == q.e
	}
	return p.e.Equal(q.e) == 1
}

// IsZero reports whether p is the zero-value Point (no element set).
func (p Point) IsZero() bool {
	return p.e == nil
}

// HashToPoint implements spec §3.4's Hₚ: feed the compressed encoding of p
// into a fresh 64-byte digest and map the output via the uniform-bytes
// constructor.
func HashToPoint(newDigest Digest, p Point) Point {
	h := newDigest()
	h.Write(p.Bytes())
	wide := h.Sum(nil)
	return Point{e: ristretto255.NewElement().FromUniformBytes(wide)}
}

// MultiscalarMul computes a*P + b*Q in constant time, the two-term
// multiscalar multiply of spec §6.1.
func MultiscalarMul(a Scalar, p Point, b Scalar, q Point) Point {
	scalars := []*ristretto255.Scalar{a.s, b.s}
	points := []*ristretto255.Element{p.e, q.e}
	return Point{e: ristretto255.NewElement().MultiscalarMult(scalars, points)}
}

// MultiscalarMulN computes Σ scalars[i]*points[i] in constant time. CLSAG's
// aggregation step (spec §4.3) uses this to fold Y columns' weighted public
// keys and images down to one point per row.
func MultiscalarMulN(scalars []Scalar, points []Point) Point {
	ss := make([]*ristretto255.Scalar, len(scalars))
	ps := make([]*ristretto255.Element, len(points))
	for i := range scalars {
		ss[i] = scalars[i].s
		ps[i] = points[i].e
	}
	return Point{e: ristretto255.NewElement().MultiscalarMult(ss, ps)}
}

// ScalarBaseMul computes s*G.
func ScalarBaseMul(s Scalar) Point {
	return Point{e: ristretto255.NewElement().ScalarBaseMult(s.s)}
}

// ScalarMul computes s*P.
func ScalarMul(s Scalar, p Point) Point {
	return Point{e: ristretto255.NewElement().ScalarMult(s.s, p.e)}
}
