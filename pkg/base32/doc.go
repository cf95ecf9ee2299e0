// Package base32 encodes binary TOTP secrets into the unpadded RFC 4648
// alphabet (A-Z, 2-7) expected by authenticator apps in enrollment URIs.
//
// Encoding feeds bytes into a most-significant-bit-first accumulator and emits
// one symbol per five bits. Output is never padded:
//
//	base32.Encode([]byte("12345678901234567890"))
//	// GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ
//
// Decode is the inverse and exists mainly for tests and for tooling that
// accepts secrets typed in by an operator.
package base32
