package group

import (
	"bytes"
	"crypto/rand"
	"crypto/sha512"
	"testing"
)

func TestScalarBaseMulMatchesMultiscalarMul(t *testing.T) {
	s, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	got := ScalarBaseMul(s)
	want := MultiscalarMul(s, Generator(), Zero(), Generator())
	if !got.Equal(want) {
		t.Fatal("expected s*G to equal a degenerate two-term multiscalar multiply")
	}
}

func TestMultiscalarMulNMatchesPairwiseSum(t *testing.T) {
	a, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	b, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	c, err := RandomScalar(rand.Reader)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	p, err := RandomPoint(rand.Reader)
	if err != nil {
		t.Fatalf("RandomPoint: %v", err)
	}
	q, err := RandomPoint(rand.Reader)
	if err != nil {
		t.Fatalf("RandomPoint: %v", err)
	}
	r, err := RandomPoint(rand.Reader)
	if err != nil {
		t.Fatalf("RandomPoint: %v", err)
	}

	got := MultiscalarMulN([]Scalar{a, b, c}, []Point{p, q, r})
	want := ScalarMul(a, p).Add(ScalarMul(b, q)).Add(ScalarMul(c, r))
	if !got.Equal(want) {
		t.Fatal("expected MultiscalarMulN to equal the sum of pairwise scalar multiplications")
	}
}

func TestPointBytesRoundTrip(t *testing.T) {
	p, err := RandomPoint(rand.Reader)
	if err != nil {
		t.Fatalf("RandomPoint: %v", err)
	}
	encoded := p.Bytes()
	decoded, ok := PointFromBytes(encoded)
	if !ok {
		t.Fatal("expected a freshly-sampled point to decode")
	}
	if !decoded.Equal(p) {
		t.Fatal("expected round-tripped point to equal the original")
	}
	if !bytes.Equal(decoded.Bytes(), encoded) {
		t.Fatal("expected re-encoding to match the original bytes")
	}
}

func TestPointFromBytesRejectsNonCanonical(t *testing.T) {
	bad := bytes.Repeat([]byte{0xFF}, 32)
	if _, ok := PointFromBytes(bad); ok {
		t.Fatal("expected an all-0xFF buffer to be rejected as non-canonical")
	}
}

func TestHashToPointDeterministic(t *testing.T) {
	p, err := RandomPoint(rand.Reader)
	if err != nil {
		t.Fatalf("RandomPoint: %v", err)
	}
	a := HashToPoint(sha512.New, p)
	b := HashToPoint(sha512.New, p)
	if !a.Equal(b) {
		t.Fatal("expected HashToPoint to be deterministic for the same input point")
	}
}
