package ring

import (
	"crypto/rand"
	"crypto/sha512"
	"testing"
)

// TestBLSAGLink is scenario S2 of spec §8.2: two BLSAG signatures produced
// by the same secret (even over different messages and different rings)
// must link.
func TestBLSAGLink(t *testing.T) {
	secret, err := NewSecret(rand.Reader)
	if err != nil {
		t.Fatalf("NewSecret: %v", err)
	}
	decoysA, _, err := NewDecoyRing(rand.Reader, 3)
	if err != nil {
		t.Fatalf("NewDecoyRing: %v", err)
	}
	decoysB, _, err := NewDecoyRing(rand.Reader, 5)
	if err != nil {
		t.Fatalf("NewDecoyRing: %v", err)
	}

	sigA, err := BLSAGSign(rand.Reader, sha512.New, secret, decoysA, []byte("message A"))
	if err != nil {
		t.Fatalf("BLSAGSign: %v", err)
	}
	sigB, err := BLSAGSign(rand.Reader, sha512.New, secret, decoysB, []byte("message B"))
	if err != nil {
		t.Fatalf("BLSAGSign: %v", err)
	}

	if !sigA.Verify(sha512.New, []byte("message A")) {
		t.Fatal("expected sigA to verify")
	}
	if !sigB.Verify(sha512.New, []byte("message B")) {
		t.Fatal("expected sigB to verify")
	}
	if !LinkImages(sigA.Image, sigB.Image) {
		t.Fatal("expected two signatures from the same secret to link")
	}
}

// TestBLSAGNoLink is scenario S3 of spec §8.2: signatures from distinct
// secrets must not link.
func TestBLSAGNoLink(t *testing.T) {
	secretA, err := NewSecret(rand.Reader)
	if err != nil {
		t.Fatalf("NewSecret: %v", err)
	}
	secretB, err := NewSecret(rand.Reader)
	if err != nil {
		t.Fatalf("NewSecret: %v", err)
	}
	decoys, _, err := NewDecoyRing(rand.Reader, 3)
	if err != nil {
		t.Fatalf("NewDecoyRing: %v", err)
	}
	message := []byte("shared message")

	sigA, err := BLSAGSign(rand.Reader, sha512.New, secretA, decoys, message)
	if err != nil {
		t.Fatalf("BLSAGSign: %v", err)
	}
	sigB, err := BLSAGSign(rand.Reader, sha512.New, secretB, decoys, message)
	if err != nil {
		t.Fatalf("BLSAGSign: %v", err)
	}

	if LinkImages(sigA.Image, sigB.Image) {
		t.Fatal("expected signatures from distinct secrets not to link")
	}
}

// TestDeriveImageDeterministic is invariant 3 of spec §8.1: the key image
// is a pure function of the secret.
func TestDeriveImageDeterministic(t *testing.T) {
	secret, err := NewSecret(rand.Reader)
	if err != nil {
		t.Fatalf("NewSecret: %v", err)
	}
	a := DeriveImage(sha512.New, secret)
	b := DeriveImage(sha512.New, secret)
	if !a.Equal(b) {
		t.Fatal("expected DeriveImage to be deterministic for the same secret")
	}
}

// TestDeriveImageUnlinkableAcrossKeys is invariant 4 of spec §8.1: distinct
// secrets produce distinct images with overwhelming probability.
func TestDeriveImageUnlinkableAcrossKeys(t *testing.T) {
	secretA, err := NewSecret(rand.Reader)
	if err != nil {
		t.Fatalf("NewSecret: %v", err)
	}
	secretB, err := NewSecret(rand.Reader)
	if err != nil {
		t.Fatalf("NewSecret: %v", err)
	}
	imgA := DeriveImage(sha512.New, secretA)
	imgB := DeriveImage(sha512.New, secretB)
	if imgA.Equal(imgB) {
		t.Fatal("expected distinct secrets to produce distinct images")
	}
}

func TestBLSAGMessageBinding(t *testing.T) {
	secret, err := NewSecret(rand.Reader)
	if err != nil {
		t.Fatalf("NewSecret: %v", err)
	}
	decoys, _, err := NewDecoyRing(rand.Reader, 2)
	if err != nil {
		t.Fatalf("NewDecoyRing: %v", err)
	}
	sig, err := BLSAGSign(rand.Reader, sha512.New, secret, decoys, []byte("original"))
	if err != nil {
		t.Fatalf("BLSAGSign: %v", err)
	}
	if sig.Verify(sha512.New, []byte("tampered")) {
		t.Fatal("expected verification to fail for a different message")
	}
}
