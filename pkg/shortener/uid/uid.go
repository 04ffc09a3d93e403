package uid

import (
	"crypto/rand"
	"fmt"
)

// Alphabet is the URL-safe character set codes are drawn from.
// Same 64 characters nanoid uses, so codes never need escaping in a path.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

// Generate returns a random code of the given length built from Alphabet.
// Randomness comes from crypto/rand; with 64 characters per position a
// 10-char code gives 64^10 possibilities, so collisions are left to the
// database's unique constraint rather than checked here.
func Generate(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("uid: length must be positive, got %d", length)
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("uid: reading random bytes: %w", err)
	}

	// len(Alphabet) is 64, so masking the low 6 bits maps each byte onto
	// the alphabet without modulo bias.
	for i, b := range buf {
		buf[i] = Alphabet[b&63]
	}
	return string(buf), nil
}
