package ring

import (
	"crypto/rand"
	"crypto/sha512"
	"testing"

	"github.com/bits-and-blooms/bitset"
)

// TestSecretIndexUniform is invariant 7 of spec §8.1: the signer's real key
// is inserted at a uniformly random position among the n+1 possible slots,
// so an observer cannot single it out from the index alone. A bitset marks
// which of the n+1 slots have been hit at least once across many trials;
// over enough trials every slot must have been hit.
func TestSecretIndexUniform(t *testing.T) {
	const decoys = 7
	const trials = 4000

	hit := bitset.New(decoys + 1)
	for i := 0; i < trials; i++ {
		idx, err := randomIndex(rand.Reader, decoys)
		if err != nil {
			t.Fatalf("randomIndex: %v", err)
		}
		if idx < 0 || idx > decoys {
			t.Fatalf("index %d out of range [0, %d]", idx, decoys)
		}
		hit.Set(uint(idx))
	}

	if hit.Count() != uint(decoys+1) {
		t.Fatalf("expected all %d slots to be hit after %d trials, got %d", decoys+1, trials, hit.Count())
	}
}

// TestSAGSignerPositionVaries checks the same invariant end to end through
// SAGSign: across many signatures the signer's public key lands at more
// than one ring offset.
func TestSAGSignerPositionVaries(t *testing.T) {
	secret, err := NewSecret(rand.Reader)
	if err != nil {
		t.Fatalf("NewSecret: %v", err)
	}
	decoys, _, err := NewDecoyRing(rand.Reader, 5)
	if err != nil {
		t.Fatalf("NewDecoyRing: %v", err)
	}
	message := []byte("position variance")
	signerKey := secret.PublicKey()

	positions := bitset.New(uint(len(decoys) + 1))
	for i := 0; i < 200; i++ {
		sig, err := SAGSign(rand.Reader, sha512.New, secret, decoys, message)
		if err != nil {
			t.Fatalf("SAGSign: %v", err)
		}
		for idx, pk := range sig.Ring {
			if pk.Equal(signerKey) {
				positions.Set(uint(idx))
				break
			}
		}
	}
	if positions.Count() < 2 {
		t.Fatal("expected the signer's key to land at more than one ring position across repeated signings")
	}
}
