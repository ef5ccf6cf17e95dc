package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashSessionKey maps a session id to a fixed-length hex name safe for use
// as a directory.
func HashSessionKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
