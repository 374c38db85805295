package ring

import (
	"fmt"
	"io"

	"github.com/anupsv/ring-signatures/group"
)

// clsagRowDomainTag is the literal per-row domain separator of spec §4.3.
// Changing this breaks interoperability with any other CLSAG
// implementation — it must be emitted byte-for-byte.
var clsagRowDomainTag = []byte("CLSAG_c")

// CLSAGSignature is a Concise LSAG signature: the same capability as
// MLSAG (Y simultaneous secrets) aggregated into a single challenge chain
// of size X instead of X·Y, for a much smaller signature (spec §4.3). The
// wire form still carries the full X-by-Y rings and all Y images, since
// verifiers must recompute the column weights.
type CLSAGSignature struct {
	Challenge0 group.Scalar
	Responses  Scalars // length X
	Rings      Rings   // X rows x Y columns
	Images     []Image // Y images
}

// CLSAGSign signs message under Y secrets whose public keys form one
// column, hidden among decoyRows.
func CLSAGSign(rng io.Reader, newDigest group.Digest, secrets []Secret, decoyRows Rings, message []byte) (*CLSAGSignature, error) {
	y := len(secrets)
	if y == 0 {
		return nil, ErrEmptySecrets
	}
	if len(decoyRows) > 0 && decoyRows.columns() != y {
		return nil, ErrColumnMismatch
	}

	col := make(Ring, y)
	for j, s := range secrets {
		col[j] = s.PublicKey()
	}

	idx, err := randomIndex(rng, len(decoyRows))
	if err != nil {
		return nil, err
	}
	full := decoyRows.insertRowAt(col, idx)

	images := make([]Image, y)
	for j, s := range secrets {
		images[j] = DeriveImage(newDigest, s)
	}

	weights := columnWeights(newDigest, full, images)
	sStar := aggregateSecret(weights, secrets)
	aggregateRing, aggregateImage := aggregateRow(weights, full, images)
	baseRing := firstColumnHashRing(newDigest, full)

	walk := singleColumnWalk{
		newDigest: newDigest,
		message:   message,
		domainTag: clsagRowDomainTag,
		ring:      aggregateRing,
		hashRing:  baseRing,
		image:     &aggregateImage,
	}
	c0, responses, err := walk.sign(rng, idx, sStar)
	if err != nil {
		return nil, err
	}
	return &CLSAGSignature{Challenge0: c0, Responses: responses, Rings: full, Images: images}, nil
}

// Verify reports whether sig is a valid CLSAG signature over message.
func (sig *CLSAGSignature) Verify(newDigest group.Digest, message []byte) bool {
	if sig == nil || len(sig.Rings) == 0 || sig.Rings.columns() != len(sig.Images) {
		return false
	}
	weights := columnWeights(newDigest, sig.Rings, sig.Images)
	aggregateRing, aggregateImage := aggregateRow(weights, sig.Rings, sig.Images)
	baseRing := firstColumnHashRing(newDigest, sig.Rings)

	walk := singleColumnWalk{
		newDigest: newDigest,
		message:   message,
		domainTag: clsagRowDomainTag,
		ring:      aggregateRing,
		hashRing:  baseRing,
		image:     &aggregateImage,
	}
	return walk.verify(sig.Challenge0, sig.Responses)
}

// Marshal encodes sig per spec §6.3: challenge0, X responses, the full
// rings matrix, and all Y images.
func (sig *CLSAGSignature) Marshal() []byte {
	var buf []byte
	buf = append(buf, sig.Challenge0.Bytes()...)
	buf = appendScalars(buf, sig.Responses)
	buf = appendRings(buf, sig.Rings)
	buf = appendImages(buf, sig.Images)
	return buf
}

// UnmarshalCLSAGSignature decodes a CLSAG signature.
func UnmarshalCLSAGSignature(b []byte) (*CLSAGSignature, bool) {
	r := newWireReader(b)
	c0 := r.readScalar()
	responses := r.readScalars()
	rings := r.readRings()
	images := r.readImages()
	if !r.done() {
		return nil, false
	}
	if len(responses) != len(rings) {
		return nil, false
	}
	if rings.columns() != len(images) {
		return nil, false
	}
	return &CLSAGSignature{Challenge0: c0, Responses: responses, Rings: rings, Images: images}, true
}

// columnWeights derives w_0..w_{Y-1}, each a domain-separated hash of its
// column index, the full rings matrix, and all images (spec §4.3). The
// literal tag "CLSAG_" followed by the column index must be emitted as raw
// UTF-8 bytes (spec §9) — not the prefix and index as separate fields.
func columnWeights(newDigest group.Digest, rings Rings, images []Image) []group.Scalar {
	y := rings.columns()
	var ringsBuf []byte
	ringsBuf = appendRings(ringsBuf, rings)
	var imagesBuf []byte
	imagesBuf = appendImages(imagesBuf, images)

	weights := make([]group.Scalar, y)
	for j := 0; j < y; j++ {
		tag := []byte(fmt.Sprintf("CLSAG_%d", j))
		weights[j] = group.FoldChallenge(newDigest, tag, ringsBuf, imagesBuf)
	}
	return weights
}

// aggregateSecret computes s* = Σ w_j·s_j.
func aggregateSecret(weights []group.Scalar, secrets []Secret) group.Scalar {
	acc := group.Zero()
	for j, s := range secrets {
		acc = acc.Add(weights[j].Mul(s.scalar))
	}
	return acc
}

// aggregateRow computes P*_i = Σ w_j·P_{i,j} for every row, and
// I* = Σ w_j·I_j.
func aggregateRow(weights []group.Scalar, rings Rings, images []Image) ([]group.Point, group.Point) {
	imagePoints := make([]group.Point, len(images))
	for j, img := range images {
		imagePoints[j] = img.point
	}
	aggregateImage := group.MultiscalarMulN(weights, imagePoints)

	aggregateRing := make([]group.Point, len(rings))
	for i, row := range rings {
		rowPoints := make([]group.Point, len(row))
		for j, pk := range row {
			rowPoints[j] = pk.point
		}
		aggregateRing[i] = group.MultiscalarMulN(weights, rowPoints)
	}
	return aggregateRing, aggregateImage
}

// firstColumnHashRing computes Hₚ(P_{i,0}) for every row i: CLSAG's R
// channel base point is the first column's raw key, not the aggregate
// (spec §4.3).
func firstColumnHashRing(newDigest group.Digest, rings Rings) []group.Point {
	out := make([]group.Point, len(rings))
	for i, row := range rings {
		out[i] = group.HashToPoint(newDigest, row[0].point)
	}
	return out
}
