package ring

import (
	"crypto/rand"
	"crypto/sha512"
	"testing"
)

func TestCLSAGSignAndVerify(t *testing.T) {
	secretA, err := NewSecret(rand.Reader)
	if err != nil {
		t.Fatalf("NewSecret: %v", err)
	}
	secretB, err := NewSecret(rand.Reader)
	if err != nil {
		t.Fatalf("NewSecret: %v", err)
	}
	secrets := []Secret{secretA, secretB}
	decoyRows, err := NewDecoyRings(rand.Reader, 4, 2)
	if err != nil {
		t.Fatalf("NewDecoyRings: %v", err)
	}
	message := []byte("confidential transfer")

	sig, err := CLSAGSign(rand.Reader, sha512.New, secrets, decoyRows, message)
	if err != nil {
		t.Fatalf("CLSAGSign: %v", err)
	}
	if !sig.Verify(sha512.New, message) {
		t.Fatal("expected CLSAG signature to verify")
	}

	encoded := sig.Marshal()
	decoded, ok := UnmarshalCLSAGSignature(encoded)
	if !ok {
		t.Fatal("expected signature to decode")
	}
	if !decoded.Verify(sha512.New, message) {
		t.Fatal("expected decoded signature to verify")
	}

	tampered := append([]byte(nil), message...)
	tampered[0] ^= 0xFF
	if sig.Verify(sha512.New, tampered) {
		t.Fatal("expected a tampered message to fail verification")
	}
}

// TestCLSAGLinkingMatchesMLSAG relates to scenario S5 of spec §8.2: the same
// secret set signs once under CLSAG and once under MLSAG, over different
// rings and messages, and both columns' images must link — CLSAG's
// per-column images are computed identically to MLSAG's (spec §4.3 only
// changes how the chain is folded, not how images are derived).
func TestCLSAGLinkingMatchesMLSAG(t *testing.T) {
	secretA, err := NewSecret(rand.Reader)
	if err != nil {
		t.Fatalf("NewSecret: %v", err)
	}
	secretB, err := NewSecret(rand.Reader)
	if err != nil {
		t.Fatalf("NewSecret: %v", err)
	}
	secrets := []Secret{secretA, secretB}

	clsagDecoys, err := NewDecoyRings(rand.Reader, 3, 2)
	if err != nil {
		t.Fatalf("NewDecoyRings: %v", err)
	}
	mlsagDecoys, err := NewDecoyRings(rand.Reader, 3, 2)
	if err != nil {
		t.Fatalf("NewDecoyRings: %v", err)
	}

	clsagSig, err := CLSAGSign(rand.Reader, sha512.New, secrets, clsagDecoys, []byte("m1"))
	if err != nil {
		t.Fatalf("CLSAGSign: %v", err)
	}
	mlsagSig, err := MLSAGSign(rand.Reader, sha512.New, secrets, mlsagDecoys, []byte("m2"))
	if err != nil {
		t.Fatalf("MLSAGSign: %v", err)
	}

	if !LinkImages(clsagSig.Images[0], mlsagSig.Images[0]) {
		t.Fatal("expected CLSAG and MLSAG to derive the same first-column image for the same secret")
	}
	if !LinkImages(clsagSig.Images[1], mlsagSig.Images[1]) {
		t.Fatal("expected CLSAG and MLSAG to derive the same second-column image for the same secret")
	}
}

func TestCLSAGColumnMismatchRejected(t *testing.T) {
	secretA, err := NewSecret(rand.Reader)
	if err != nil {
		t.Fatalf("NewSecret: %v", err)
	}
	decoyRows, err := NewDecoyRings(rand.Reader, 2, 3)
	if err != nil {
		t.Fatalf("NewDecoyRings: %v", err)
	}
	_, err = CLSAGSign(rand.Reader, sha512.New, []Secret{secretA}, decoyRows, []byte("bad shape"))
	if err == nil {
		t.Fatal("expected a column-count mismatch to be rejected")
	}
}
