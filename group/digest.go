package group

import "hash"

// Digest constructs a fresh 64-byte-output hash state (e.g. sha512.New).
// Every scheme is parameterized over this constructor instead of a fixed
// import, per spec §9's "generics over the hash" design note; dynamic
// dispatch here is fine since the hash runs O(N·Y) times per sign/verify,
// never in a tight inner loop.
type Digest func() hash.Hash

// FoldChallenge hashes the given fields, in order, into a fresh Digest and
// reduces the 64-byte output mod ℓ. This is scalar_of(H(...)) throughout
// spec §4: the rotating Fiat-Shamir fold.
func FoldChallenge(newDigest Digest, fields ...[]byte) Scalar {
	buf := getBuffer()
	defer putBuffer(buf)
	for _, f := range fields {
		*buf = append(*buf, f...)
	}
	h := newDigest()
	h.Write(*buf)
	return ScalarFromWideBytes(h.Sum(nil))
}
