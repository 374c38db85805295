package ring

import (
	"io"

	"github.com/anupsv/ring-signatures/group"
)

// SAGSignature is a Spontaneous Anonymous Group signature: anonymous but
// unlinkable (spec §1). It carries no key image.
type SAGSignature struct {
	Challenge0 group.Scalar
	Responses  Scalars
	Ring       Ring
}

// SAGSign signs message under one of the public keys hidden among decoys,
// using secret. decoys must not contain secret's own public key (the
// library inserts it at a uniformly random position).
func SAGSign(rng io.Reader, newDigest group.Digest, secret Secret, decoys Ring, message []byte) (*SAGSignature, error) {
	idx, err := randomIndex(rng, len(decoys))
	if err != nil {
		return nil, err
	}
	full := decoys.insertAt(secret.PublicKey(), idx)

	walk := singleColumnWalk{
		newDigest: newDigest,
		message:   message,
		ring:      full.points(),
	}
	c0, responses, err := walk.sign(rng, idx, secret.scalar)
	if err != nil {
		return nil, err
	}
	return &SAGSignature{Challenge0: c0, Responses: responses, Ring: full}, nil
}

// Verify reports whether sig is a valid SAG signature over message.
func (sig *SAGSignature) Verify(newDigest group.Digest, message []byte) bool {
	if sig == nil || len(sig.Ring) == 0 {
		return false
	}
	walk := singleColumnWalk{
		newDigest: newDigest,
		message:   message,
		ring:      sig.Ring.points(),
	}
	return walk.verify(sig.Challenge0, sig.Responses)
}

// Marshal encodes sig per spec §6.3: challenge0, responses, ring.
func (sig *SAGSignature) Marshal() []byte {
	var buf []byte
	buf = append(buf, sig.Challenge0.Bytes()...)
	buf = appendScalars(buf, sig.Responses)
	buf = appendRing(buf, sig.Ring)
	return buf
}

// UnmarshalSAGSignature decodes a SAG signature, rejecting any malformed or
// non-canonical encoding.
func UnmarshalSAGSignature(b []byte) (*SAGSignature, bool) {
	r := newWireReader(b)
	c0 := r.readScalar()
	responses := r.readScalars()
	full := r.readRing()
	if !r.done() || len(responses) != len(full) {
		return nil, false
	}
	return &SAGSignature{Challenge0: c0, Responses: responses, Ring: full}, true
}
