package security

import "crypto/subtle"

// ConstantTimeEquals reports whether a and b are equal. It always performs len(a) byte
// comparisons, so the running time depends only on len(a), never on where the inputs differ.
// Use it wherever secrets are compared outside the adaptive-hash path.
func ConstantTimeEquals(a, b string) bool {
	var diff byte
	for i := 0; i < len(a); i++ {
		var c byte
		if i < len(b) {
			c = b[i]
		}
		diff |= a[i] ^ c
	}
	sameLen := subtle.ConstantTimeEq(int32(len(a)), int32(len(b))) // #nosec G115 -- secrets are far below 2^31 bytes.
	return subtle.ConstantTimeByteEq(diff, 0)&sameLen == 1
}
