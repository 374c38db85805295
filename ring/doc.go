/*
Package ring implements linkable ring signatures over the Ristretto255
group: SAG (unlinkable), BLSAG (linkable, single secret), MLSAG (linkable,
Y simultaneous secrets), and CLSAG (same as MLSAG, aggregated into a single
challenge chain for a smaller signature).

All four schemes share one state machine: a rotating Fiat-Shamir challenge
chain anchored at the signer's secret index, closed by the signer's secret
and verified by replaying the same walk from the published starting
challenge. See kernel.go for that shared machinery; sag.go, blsag.go,
mlsag.go and clsag.go each wire it to their own signature shape.

Usage:

	secret, _ := ring.NewSecret(rand.Reader)
	decoys := ring.Ring{decoy1, decoy2}
	sig, _ := ring.SAGSign(rand.Reader, sha512.New, secret, decoys, []byte("message"))
	ok := sig.Verify(sha512.New, []byte("message"))

For linkable schemes, two signatures produced by the same secret share an
image:

	linked := ring.LinkImages(sigA.Image, sigB.Image)
*/
package ring
