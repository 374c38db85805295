package ring

import (
	"io"

	"github.com/anupsv/ring-signatures/group"
)

// closesRing reports whether the walk has produced every challenge in the
// chain and is back at the secret index. Hoisted into its own named
// predicate per spec §9, so SAG/BLSAG/CLSAG's single-column walk and
// MLSAG's per-column walk share one termination rule instead of each
// re-deriving the off-by-one logic.
func closesRing(next, secretIdx int) bool {
	return next == secretIdx
}

// singleColumnWalk holds the inputs shared by the single-column kernel
// (SAG, BLSAG, and CLSAG's post-aggregation walk): one ring of N public
// keys, contributing to the L channel, and — for linkable schemes — one
// ring of N hash-to-point base points and one key image, contributing to
// the R channel.
//
// domainTag, when non-nil, is prefixed to every per-row hash input; CLSAG
// uses this to emit its "CLSAG_c" domain separator (spec §4.3).
type singleColumnWalk struct {
	newDigest  group.Digest
	message    []byte
	domainTag  []byte
	ring       []group.Point // L channel: P_0 .. P_{n-1}
	hashRing   []group.Point // R channel: Hₚ-mapped base points; nil for SAG
	image      *group.Point  // R channel image; nil for SAG
}

func (w singleColumnWalk) hasImage() bool {
	return w.image != nil
}

func (w singleColumnWalk) n() int {
	return len(w.ring)
}

// fold hashes domainTag || message || L || R (R omitted for SAG) into a
// scalar, implementing scalar_of(H(...)) for every rotation of the chain.
func (w singleColumnWalk) fold(L group.Point, R group.Point) group.Scalar {
	fields := make([][]byte, 0, 4)
	if w.domainTag != nil {
		fields = append(fields, w.domainTag)
	}
	fields = append(fields, w.message, L.Bytes())
	if w.hasImage() {
		fields = append(fields, R.Bytes())
	}
	return group.FoldChallenge(w.newDigest, fields...)
}

// sign executes the signing walk of spec §4.1 steps 1-6 and returns the
// starting challenge c_0 plus the full response vector, with the secret
// row's response closed using secret.
func (w singleColumnWalk) sign(rng io.Reader, secretIdx int, secret group.Scalar) (group.Scalar, Scalars, error) {
	n := w.n()
	responses := make(Scalars, n)
	for i := range responses {
		r, err := group.RandomScalar(rng)
		if err != nil {
			return group.Scalar{}, nil, err
		}
		responses[i] = r
	}

	challenges := make(Scalars, n)

	alpha, err := group.RandomScalar(rng)
	if err != nil {
		return group.Scalar{}, nil, err
	}

	i := secretIdx
	first := true
	for {
		var L, R group.Point
		if first {
			L = group.ScalarBaseMul(alpha)
			if w.hasImage() {
				R = group.ScalarMul(alpha, w.hashRing[secretIdx])
			}
			first = false
		} else {
			c := challenges[i]
			L = group.MultiscalarMul(responses[i], group.Generator(), c, w.ring[i])
			if w.hasImage() {
				R = group.MultiscalarMul(responses[i], w.hashRing[i], c, *w.image)
			}
		}
		next := (i + 1) % n
		challenges[next] = w.fold(L, R)
		i = next
		if closesRing(i, secretIdx) {
			break
		}
	}

	responses[secretIdx] = alpha.Sub(challenges[secretIdx].Mul(secret))
	alpha.Scrub()
	return challenges[0], responses, nil
}

// verify replays the verification walk of spec §4.1 ("Verification walk")
// and reports whether the chain closes back to challenge0.
func (w singleColumnWalk) verify(challenge0 group.Scalar, responses Scalars) bool {
	n := w.n()
	if len(responses) != n || n == 0 {
		return false
	}
	c := challenge0
	for i := 0; i < n; i++ {
		L := group.MultiscalarMul(responses[i], group.Generator(), c, w.ring[i])
		var R group.Point
		if w.hasImage() {
			R = group.MultiscalarMul(responses[i], w.hashRing[i], c, *w.image)
		}
		c = w.fold(L, R)
	}
	return c.Equal(challenge0)
}

// multiColumnWalk is MLSAG's kernel: X rows of Y columns, Y secrets and Y
// images, one challenge per row folding all Y columns' (L,R) pairs
// together (spec §4.2).
type multiColumnWalk struct {
	newDigest group.Digest
	message   []byte
	rings     Rings       // post-insert, X rows x Y columns
	images    []group.Point
}

func (w multiColumnWalk) rows() int {
	return len(w.rings)
}

func (w multiColumnWalk) cols() int {
	return w.rings.columns()
}

// fold hashes message || L_0 || R_0 || ... || L_{Y-1} || R_{Y-1} for one
// row into a scalar.
func (w multiColumnWalk) fold(Ls, Rs []group.Point) group.Scalar {
	fields := make([][]byte, 0, 2*len(Ls)+1)
	fields = append(fields, w.message)
	for j := range Ls {
		fields = append(fields, Ls[j].Bytes(), Rs[j].Bytes())
	}
	return group.FoldChallenge(w.newDigest, fields...)
}

// sign executes MLSAG's signing walk: Y independent α_j values, closure
// per column at the secret row.
func (w multiColumnWalk) sign(rng io.Reader, secretIdx int, secrets []group.Scalar, hashRing [][]group.Point) (group.Scalar, [][]group.Scalar, error) {
	n := w.rows()
	y := w.cols()

	responses := make([][]group.Scalar, n)
	for i := range responses {
		responses[i] = make([]group.Scalar, y)
		for j := 0; j < y; j++ {
			r, err := group.RandomScalar(rng)
			if err != nil {
				return group.Scalar{}, nil, err
			}
			responses[i][j] = r
		}
	}

	challenges := make(Scalars, n)

	alphas := make([]group.Scalar, y)
	for j := 0; j < y; j++ {
		a, err := group.RandomScalar(rng)
		if err != nil {
			return group.Scalar{}, nil, err
		}
		alphas[j] = a
	}

	i := secretIdx
	first := true
	for {
		Ls := make([]group.Point, y)
		Rs := make([]group.Point, y)
		if first {
			for j := 0; j < y; j++ {
				Ls[j] = group.ScalarBaseMul(alphas[j])
				Rs[j] = group.ScalarMul(alphas[j], hashRing[secretIdx][j])
			}
			first = false
		} else {
			c := challenges[i]
			for j := 0; j < y; j++ {
				Ls[j] = group.MultiscalarMul(responses[i][j], group.Generator(), c, w.rings[i][j].point)
				Rs[j] = group.MultiscalarMul(responses[i][j], hashRing[i][j], c, w.images[j])
			}
		}
		next := (i + 1) % n
		challenges[next] = w.fold(Ls, Rs)
		i = next
		if closesRing(i, secretIdx) {
			break
		}
	}

	for j := 0; j < y; j++ {
		responses[secretIdx][j] = alphas[j].Sub(challenges[secretIdx].Mul(secrets[j]))
		alphas[j].Scrub()
	}
	return challenges[0], responses, nil
}

// verify replays MLSAG's verification walk.
func (w multiColumnWalk) verify(challenge0 group.Scalar, responses [][]group.Scalar, hashRing [][]group.Point) bool {
	n := w.rows()
	y := w.cols()
	if len(responses) != n || n == 0 || y == 0 {
		return false
	}
	for _, row := range responses {
		if len(row) != y {
			return false
		}
	}
	c := challenge0
	for i := 0; i < n; i++ {
		Ls := make([]group.Point, y)
		Rs := make([]group.Point, y)
		for j := 0; j < y; j++ {
			Ls[j] = group.MultiscalarMul(responses[i][j], group.Generator(), c, w.rings[i][j].point)
			Rs[j] = group.MultiscalarMul(responses[i][j], hashRing[i][j], c, w.images[j])
		}
		c = w.fold(Ls, Rs)
	}
	return c.Equal(challenge0)
}
