// Package group wraps the Ristretto255 group over Curve25519, the external
// collaborator the ring-signature kernels are built on top of.
//
// It exposes exactly the primitive contracts the shared challenge-chain
// kernel needs: uniform point sampling, canonical encode/decode of points
// and scalars, hash-to-point, and the two-term multiscalar multiply. No
// caller outside this package touches a ristretto255.Element or
// ristretto255.Scalar directly.
package group
