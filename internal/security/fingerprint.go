package security

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"sort"
	"strings"
)

// Fingerprint returns a one-way hex digest of the device context. Fields are normalized
// (trimmed, user agent lower-cased) and length-prefixed so that adjacent fields cannot be
// shifted into each other. Extra keys are folded in sorted order.
//
// The digest is an anomaly signal only and must never be the sole input to an authorization decision.
func Fingerprint(userAgent, origin string, extra map[string]string) string {
	h := sha256.New()
	writeField(h, strings.ToLower(strings.TrimSpace(userAgent)))
	writeField(h, strings.TrimSpace(origin))

	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		writeField(h, k)
		writeField(h, strings.TrimSpace(extra[k]))
	}
	return hex.EncodeToString(h.Sum(nil))
}

func writeField(w interface{ Write([]byte) (int, error) }, s string) {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(len(s)))
	_, _ = w.Write(n[:])
	_, _ = w.Write([]byte(s))
}
