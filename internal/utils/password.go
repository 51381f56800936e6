package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// temporaryPasswordAlphabet leaves out characters that are easy to misread
	// when a password is read off a terminal: 0/O, 1/l/I.
	temporaryPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	temporaryPasswordGroups   = 4
	temporaryPasswordGroupLen = 4
)

// GenerateTemporaryPassword returns a one-time password for accounts created
// from the command line: four dash-separated groups of four characters drawn
// uniformly from temporaryPasswordAlphabet, e.g. "Hq7x-M2pk-9aTz-Rwc4".
func GenerateTemporaryPassword() (string, error) {
	size := big.NewInt(int64(len(temporaryPasswordAlphabet)))

	groups := make([]string, temporaryPasswordGroups)
	for g := range groups {
		var sb strings.Builder
		for i := 0; i < temporaryPasswordGroupLen; i++ {
			n, err := rand.Int(rand.Reader, size)
			if err != nil {
				return "", fmt.Errorf("failed to generate temporary password: %w", err)
			}
			sb.WriteByte(temporaryPasswordAlphabet[n.Int64()])
		}
		groups[g] = sb.String()
	}
	return strings.Join(groups, "-"), nil
}
