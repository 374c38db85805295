package ring

import (
	"io"

	"github.com/anupsv/ring-signatures/group"
)

// BLSAGSignature is Back's Linkable SAG: adds a key image so any two
// signatures from the same secret can be detected as linked without
// revealing it (spec §1).
type BLSAGSignature struct {
	Challenge0 group.Scalar
	Responses  Scalars
	Ring       Ring
	Image      Image
}

// BLSAGSign signs message under secret, hidden among decoys.
func BLSAGSign(rng io.Reader, newDigest group.Digest, secret Secret, decoys Ring, message []byte) (*BLSAGSignature, error) {
	idx, err := randomIndex(rng, len(decoys))
	if err != nil {
		return nil, err
	}
	full := decoys.insertAt(secret.PublicKey(), idx)

	image := DeriveImage(newDigest, secret)
	hashRing := hashPoints(newDigest, full.points())
	imgPoint := image.point

	walk := singleColumnWalk{
		newDigest: newDigest,
		message:   message,
		ring:      full.points(),
		hashRing:  hashRing,
		image:     &imgPoint,
	}
	c0, responses, err := walk.sign(rng, idx, secret.scalar)
	if err != nil {
		return nil, err
	}
	return &BLSAGSignature{Challenge0: c0, Responses: responses, Ring: full, Image: image}, nil
}

// Verify reports whether sig is a valid BLSAG signature over message.
func (sig *BLSAGSignature) Verify(newDigest group.Digest, message []byte) bool {
	if sig == nil || len(sig.Ring) == 0 {
		return false
	}
	hashRing := hashPoints(newDigest, sig.Ring.points())
	imgPoint := sig.Image.point
	walk := singleColumnWalk{
		newDigest: newDigest,
		message:   message,
		ring:      sig.Ring.points(),
		hashRing:  hashRing,
		image:     &imgPoint,
	}
	return walk.verify(sig.Challenge0, sig.Responses)
}

// Marshal encodes sig per spec §6.3: challenge0, responses, ring, image.
func (sig *BLSAGSignature) Marshal() []byte {
	var buf []byte
	buf = append(buf, sig.Challenge0.Bytes()...)
	buf = appendScalars(buf, sig.Responses)
	buf = appendRing(buf, sig.Ring)
	buf = append(buf, sig.Image.Bytes()...)
	return buf
}

// UnmarshalBLSAGSignature decodes a BLSAG signature.
func UnmarshalBLSAGSignature(b []byte) (*BLSAGSignature, bool) {
	r := newWireReader(b)
	c0 := r.readScalar()
	responses := r.readScalars()
	full := r.readRing()
	image := r.readImage()
	if !r.done() || len(responses) != len(full) {
		return nil, false
	}
	return &BLSAGSignature{Challenge0: c0, Responses: responses, Ring: full, Image: image}, true
}

// hashPoints maps each point through Hₚ, for building the R-channel ring.
func hashPoints(newDigest group.Digest, pts []group.Point) []group.Point {
	out := make([]group.Point, len(pts))
	for i, p := range pts {
		out[i] = group.HashToPoint(newDigest, p)
	}
	return out
}
