package ring

import "github.com/anupsv/ring-signatures/group"

// DeriveImage computes I = s·Hₚ(P) for secret s with public key P = sG
// (spec §3.4, §4.5). BLSAG and each column of MLSAG/CLSAG call this once
// per secret.
func DeriveImage(newDigest group.Digest, secret Secret) Image {
	pk := secret.PublicKey()
	hp := group.HashToPoint(newDigest, pk.point)
	return Image{point: group.ScalarMul(secret.scalar, hp)}
}

// Link reports whether a set of image lists are linked: true iff every
// list is non-empty and every list's first image equals the first list's
// first image (spec §4.4). For MLSAG/CLSAG, callers pass each signature's
// first-column image only — linking never considers the other columns.
func Link(imageLists ...[]Image) bool {
	if len(imageLists) == 0 {
		return false
	}
	for _, l := range imageLists {
		if len(l) == 0 {
			return false
		}
	}
	first := imageLists[0][0]
	for _, l := range imageLists {
		if !l[0].Equal(first) {
			return false
		}
	}
	return true
}

// LinkImages is a convenience wrapper for the common case of linking two
// single images, as used by SAG-free schemes (BLSAG, and MLSAG/CLSAG's
// first column).
func LinkImages(images ...Image) bool {
	lists := make([][]Image, len(images))
	for i, img := range images {
		lists[i] = []Image{img}
	}
	return Link(lists...)
}
