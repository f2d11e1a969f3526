// Package trxcode generates human-readable transaction codes.
package trxcode

import (
	"crypto/rand"
	"fmt"
	"time"
)

// Prefix is the fixed leading segment of every transaction code.
const Prefix = "TRX"

// suffixLen is the number of random characters appended to the code.
const suffixLen = 5

// alphabet deliberately excludes lowercase to keep codes readable on receipts.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generate returns a code of the form TRX-YYYYMMDD-XXXXX where XXXXX is
// a cryptographically random suffix. Uniqueness is best-effort: with 36^5
// combinations per day the collision probability is negligible, but the
// caller must still retry with a fresh code if the store reports a
// uniqueness violation.
func Generate(now time.Time) (string, error) {
	b := make([]byte, suffixLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return fmt.Sprintf("%s-%s-%s", Prefix, now.Format("20060102"), string(b)), nil
}
