// Package randx generates random secrets for the recovery flow.
package randx

import (
	"crypto/rand"
	"encoding/hex"
)

// HexString returns a random hexadecimal string built from size random
// bytes, so the result is 2*size characters long. It fails only when the
// system random source does.
func HexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
