package common

import (
	"crypto/rand"
)

// GenerateRandByteArray returns size cryptographically random bytes.
// Panics if the system randomness source is unavailable.
func GenerateRandByteArray(size int) []byte {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return buf
}

// WipeByteArray zeroes the buffer in place. Safe to call on nil.
// Used to limit the in-memory lifetime of decrypted credentials.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
