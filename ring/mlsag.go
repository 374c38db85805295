package ring

import (
	"io"

	"github.com/anupsv/ring-signatures/group"
)

// MLSAGSignature is a Multilayered LSAG signature: X rows of Y columns,
// proving knowledge of Y secret keys simultaneously, with one key image
// per column (spec §4.2).
type MLSAGSignature struct {
	Challenge0 group.Scalar
	Responses  [][]group.Scalar // X rows x Y columns
	Rings      Rings
	Images     []Image
}

// MLSAGSign signs message under Y secrets whose public keys form one
// column, hidden among decoyRows (X-1 rows of Y decoys each). All secrets'
// column is inserted together at a single random row.
func MLSAGSign(rng io.Reader, newDigest group.Digest, secrets []Secret, decoyRows Rings, message []byte) (*MLSAGSignature, error) {
	y := len(secrets)
	if y == 0 {
		return nil, ErrEmptySecrets
	}
	if len(decoyRows) > 0 && decoyRows.columns() != y {
		return nil, ErrColumnMismatch
	}

	col := make(Ring, y)
	scalars := make([]group.Scalar, y)
	for j, s := range secrets {
		col[j] = s.PublicKey()
		scalars[j] = s.scalar
	}

	idx, err := randomIndex(rng, len(decoyRows))
	if err != nil {
		return nil, err
	}
	full := decoyRows.insertRowAt(col, idx)

	images := make([]Image, y)
	imagePoints := make([]group.Point, y)
	for j, s := range secrets {
		images[j] = DeriveImage(newDigest, s)
		imagePoints[j] = images[j].point
	}

	hashRing := make([][]group.Point, len(full))
	for i, row := range full {
		hashRing[i] = make([]group.Point, y)
		for j, pk := range row {
			hashRing[i][j] = group.HashToPoint(newDigest, pk.point)
		}
	}

	walk := multiColumnWalk{
		newDigest: newDigest,
		message:   message,
		rings:     full,
		images:    imagePoints,
	}
	c0, responses, err := walk.sign(rng, idx, scalars, hashRing)
	if err != nil {
		return nil, err
	}
	return &MLSAGSignature{Challenge0: c0, Responses: responses, Rings: full, Images: images}, nil
}

// Verify reports whether sig is a valid MLSAG signature over message.
func (sig *MLSAGSignature) Verify(newDigest group.Digest, message []byte) bool {
	if sig == nil || len(sig.Rings) == 0 || sig.Rings.columns() != len(sig.Images) {
		return false
	}
	imagePoints := make([]group.Point, len(sig.Images))
	for j, img := range sig.Images {
		imagePoints[j] = img.point
	}
	hashRing := make([][]group.Point, len(sig.Rings))
	for i, row := range sig.Rings {
		hashRing[i] = make([]group.Point, len(row))
		for j, pk := range row {
			hashRing[i][j] = group.HashToPoint(newDigest, pk.point)
		}
	}
	walk := multiColumnWalk{
		newDigest: newDigest,
		message:   message,
		rings:     sig.Rings,
		images:    imagePoints,
	}
	return walk.verify(sig.Challenge0, sig.Responses, hashRing)
}

// Marshal encodes sig per spec §6.3: challenge0, responses matrix, rings,
// images.
func (sig *MLSAGSignature) Marshal() []byte {
	var buf []byte
	buf = append(buf, sig.Challenge0.Bytes()...)
	buf = appendUint32(buf, len(sig.Responses))
	for _, row := range sig.Responses {
		buf = appendScalars(buf, row)
	}
	buf = appendRings(buf, sig.Rings)
	buf = appendImages(buf, sig.Images)
	return buf
}

// UnmarshalMLSAGSignature decodes an MLSAG signature, rejecting any shape
// whose responses matrix isn't ring_rows x ring_cols (spec §6.3).
func UnmarshalMLSAGSignature(b []byte) (*MLSAGSignature, bool) {
	r := newWireReader(b)
	c0 := r.readScalar()
	rowCount := r.readUint32()
	if !r.ok {
		return nil, false
	}
	responses := make([][]group.Scalar, rowCount)
	for i := 0; i < rowCount; i++ {
		responses[i] = r.readScalars()
	}
	rings := r.readRings()
	images := r.readImages()
	if !r.done() {
		return nil, false
	}
	if len(responses) != len(rings) {
		return nil, false
	}
	cols := rings.columns()
	for _, row := range responses {
		if len(row) != cols {
			return nil, false
		}
	}
	if cols != len(images) {
		return nil, false
	}
	return &MLSAGSignature{Challenge0: c0, Responses: responses, Rings: rings, Images: images}, true
}
