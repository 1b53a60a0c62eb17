// Package password derives and verifies the bcrypt hashes stored on account
// rows. Permanent and temporary credentials go through the same Hasher.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor applied when no valid cost is
// configured.
const DefaultCost = bcrypt.DefaultCost

// Hasher hashes secrets at a fixed bcrypt work factor.
type Hasher struct {
	cost int
}

// New returns a Hasher with the given work factor. Costs outside bcrypt's
// supported range fall back to DefaultCost.
func New(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Cost reports the effective work factor.
func (h *Hasher) Cost() int { return h.cost }

// Hash derives a bcrypt hash of the secret.
func (h *Hasher) Hash(secret string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether secret matches hash. A plain mismatch is
// (false, nil); a malformed or truncated hash is an error.
func (h *Hasher) Verify(hash, secret string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}
