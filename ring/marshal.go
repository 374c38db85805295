package ring

import (
	"encoding/binary"

	"github.com/anupsv/ring-signatures/group"
)

// Wire format (spec §6.3): scalars and points are always 32 bytes;
// sequences are length-prefixed with a 4-byte big-endian element count.
// Decoding collapses every malformed-length or malformed-field case to a
// single "ok=false", so a verifier never has to distinguish a truncated
// buffer from a non-canonical field (spec §7).

const scalarLen = 32
const pointLen = 32

func appendUint32(buf []byte, n int) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], uint32(n))
	return append(buf, tmp[:]...)
}

func appendScalars(buf []byte, ss Scalars) []byte {
	buf = appendUint32(buf, len(ss))
	for _, s := range ss {
		buf = append(buf, s.Bytes()...)
	}
	return buf
}

func appendRing(buf []byte, r Ring) []byte {
	buf = appendUint32(buf, len(r))
	for _, k := range r {
		buf = append(buf, k.Bytes()...)
	}
	return buf
}

func appendRings(buf []byte, rs Rings) []byte {
	buf = appendUint32(buf, len(rs))
	for _, row := range rs {
		buf = appendRing(buf, row)
	}
	return buf
}

func appendImages(buf []byte, images []Image) []byte {
	buf = appendUint32(buf, len(images))
	for _, img := range images {
		buf = append(buf, img.Bytes()...)
	}
	return buf
}

// wireReader walks a byte slice field by field, failing closed: once ok is
// false every subsequent read is a no-op that keeps returning zero values.
type wireReader struct {
	buf []byte
	ok  bool
}

func newWireReader(buf []byte) *wireReader {
	return &wireReader{buf: buf, ok: true}
}

func (r *wireReader) fail() {
	r.ok = false
	r.buf = nil
}

func (r *wireReader) readUint32() int {
	if !r.ok || len(r.buf) < 4 {
		r.fail()
		return 0
	}
	n := binary.BigEndian.Uint32(r.buf[:4])
	r.buf = r.buf[4:]
	return int(n)
}

func (r *wireReader) readBytes(n int) []byte {
	if !r.ok || n < 0 || len(r.buf) < n {
		r.fail()
		return nil
	}
	b := r.buf[:n]
	r.buf = r.buf[n:]
	return b
}

func (r *wireReader) readScalar() group.Scalar {
	b := r.readBytes(scalarLen)
	if !r.ok {
		return group.Scalar{}
	}
	s, ok := group.ScalarFromCanonical(b)
	if !ok {
		r.fail()
		return group.Scalar{}
	}
	return s
}

func (r *wireReader) readScalars() Scalars {
	n := r.readUint32()
	if !r.ok {
		return nil
	}
	out := make(Scalars, n)
	for i := 0; i < n; i++ {
		out[i] = r.readScalar()
	}
	return out
}

func (r *wireReader) readPublicKey() PublicKey {
	b := r.readBytes(pointLen)
	if !r.ok {
		return PublicKey{}
	}
	pk, ok := PublicKeyFromBytes(b)
	if !ok {
		r.fail()
		return PublicKey{}
	}
	return pk
}

func (r *wireReader) readRing() Ring {
	n := r.readUint32()
	if !r.ok {
		return nil
	}
	out := make(Ring, n)
	for i := 0; i < n; i++ {
		out[i] = r.readPublicKey()
	}
	return out
}

func (r *wireReader) readRings() Rings {
	n := r.readUint32()
	if !r.ok {
		return nil
	}
	out := make(Rings, n)
	for i := 0; i < n; i++ {
		out[i] = r.readRing()
	}
	return out
}

func (r *wireReader) readImage() Image {
	b := r.readBytes(pointLen)
	if !r.ok {
		return Image{}
	}
	img, ok := ImageFromBytes(b)
	if !ok {
		r.fail()
		return Image{}
	}
	return img
}

func (r *wireReader) readImages() []Image {
	n := r.readUint32()
	if !r.ok {
		return nil
	}
	out := make([]Image, n)
	for i := 0; i < n; i++ {
		out[i] = r.readImage()
	}
	return out
}

// done reports whether the reader consumed the buffer with no trailing
// bytes and no prior failure.
func (r *wireReader) done() bool {
	return r.ok && len(r.buf) == 0
}
