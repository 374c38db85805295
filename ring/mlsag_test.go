package ring

import (
	"crypto/rand"
	"crypto/sha512"
	"testing"
)

// TestMLSAGSignAndVerify is scenario S4 of spec §8.2: Y=2 correctness, and
// rejection of a flipped response byte.
func TestMLSAGSignAndVerify(t *testing.T) {
	secretA, err := NewSecret(rand.Reader)
	if err != nil {
		t.Fatalf("NewSecret: %v", err)
	}
	secretB, err := NewSecret(rand.Reader)
	if err != nil {
		t.Fatalf("NewSecret: %v", err)
	}
	secrets := []Secret{secretA, secretB}

	decoyRows, err := NewDecoyRings(rand.Reader, 3, 2)
	if err != nil {
		t.Fatalf("NewDecoyRings: %v", err)
	}
	message := []byte("Y=2 transaction")

	sig, err := MLSAGSign(rand.Reader, sha512.New, secrets, decoyRows, message)
	if err != nil {
		t.Fatalf("MLSAGSign: %v", err)
	}
	if !sig.Verify(sha512.New, message) {
		t.Fatal("expected MLSAG signature to verify")
	}

	encoded := sig.Marshal()
	// flip a byte inside the first row's first response, which follows
	// challenge0, the row count, and row 0's length prefix.
	encoded[scalarLen+4+4] ^= 0x01
	decoded, ok := UnmarshalMLSAGSignature(encoded)
	if ok && decoded.Verify(sha512.New, message) {
		t.Fatal("expected a flipped response byte to break verification")
	}
}

func TestMLSAGShapeMismatchRejected(t *testing.T) {
	secretA, err := NewSecret(rand.Reader)
	if err != nil {
		t.Fatalf("NewSecret: %v", err)
	}
	secretB, err := NewSecret(rand.Reader)
	if err != nil {
		t.Fatalf("NewSecret: %v", err)
	}
	decoyRows, err := NewDecoyRings(rand.Reader, 2, 3)
	if err != nil {
		t.Fatalf("NewDecoyRings: %v", err)
	}
	_, err = MLSAGSign(rand.Reader, sha512.New, []Secret{secretA, secretB}, decoyRows, []byte("mismatch"))
	if err == nil {
		t.Fatal("expected a column-count mismatch to be rejected")
	}
}

func TestMLSAGMarshalRoundTrip(t *testing.T) {
	secretA, err := NewSecret(rand.Reader)
	if err != nil {
		t.Fatalf("NewSecret: %v", err)
	}
	secretB, err := NewSecret(rand.Reader)
	if err != nil {
		t.Fatalf("NewSecret: %v", err)
	}
	secretC, err := NewSecret(rand.Reader)
	if err != nil {
		t.Fatalf("NewSecret: %v", err)
	}
	secrets := []Secret{secretA, secretB, secretC}
	decoyRows, err := NewDecoyRings(rand.Reader, 2, 3)
	if err != nil {
		t.Fatalf("NewDecoyRings: %v", err)
	}
	message := []byte("Y=3")

	sig, err := MLSAGSign(rand.Reader, sha512.New, secrets, decoyRows, message)
	if err != nil {
		t.Fatalf("MLSAGSign: %v", err)
	}
	encoded := sig.Marshal()
	decoded, ok := UnmarshalMLSAGSignature(encoded)
	if !ok {
		t.Fatal("expected signature to decode")
	}
	if !decoded.Verify(sha512.New, message) {
		t.Fatal("expected decoded signature to verify")
	}
}
