// Package shared provides small helpers used by both client apps.
package shared

import (
	"crypto/rand"
	"math/big"
)

const (
	linkIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	LinkIDLength   = 8
)

// MakeRandString returns size characters drawn uniformly from alphabet.
//
// It returns an error if the random number generator fails.
func MakeRandString(size int, alphabet string) (string, error) {
	limit := big.NewInt(int64(len(alphabet)))
	b := make([]byte, size)
	for i := range b {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b), nil
}

// NewLinkID generates a fresh share link identifier, e.g. "k3x9q0az".
func NewLinkID() (string, error) {
	return MakeRandString(LinkIDLength, linkIDAlphabet)
}
