package ring

import "io"

// NewDecoyRing draws n fresh secrets and returns their public keys as a
// decoy Ring, alongside the secrets themselves so a caller can pick one to
// sign with. This mirrors the setup boilerplate repeated across the
// zudo/ring-signature Rust crate's examples/{sag,blsag,mlsag,clsag}.rs
// files, where each example first builds a handful of throwaway keys
// before signing.
func NewDecoyRing(rng io.Reader, n int) (Ring, []Secret, error) {
	secrets := make([]Secret, n)
	decoys := make(Ring, n)
	for i := 0; i < n; i++ {
		s, err := NewSecret(rng)
		if err != nil {
			return nil, nil, err
		}
		secrets[i] = s
		decoys[i] = s.PublicKey()
	}
	return decoys, secrets, nil
}

// NewDecoyRings draws n decoy rows of y columns each, for MLSAG/CLSAG
// fixtures.
func NewDecoyRings(rng io.Reader, rows, cols int) (Rings, error) {
	out := make(Rings, rows)
	for i := 0; i < rows; i++ {
		row, _, err := NewDecoyRing(rng, cols)
		if err != nil {
			return nil, err
		}
		out[i] = row
	}
	return out, nil
}
