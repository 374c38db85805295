package ring

import (
	"crypto/rand"
	"io"
	"math/big"
)

// randomIndex samples a uniform index in [0, upperInclusive], rejection
// sampling via crypto/rand.Int so the library's RNG contract (spec §6.1
// scalar_random, extended here to index sampling) stays in one place.
// This is spec §9's "upper bound inclusive (0..=len)" insertion rule: a
// decoy ring of length n can grow to any of the n+1 possible positions.
func randomIndex(rng io.Reader, upperInclusive int) (int, error) {
	n, err := rand.Int(rng, big.NewInt(int64(upperInclusive)+1))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}
