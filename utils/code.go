package utils

import (
	"crypto/rand"
	"math/big"
)

const codeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const codeLength = 10

// GenerateUniqueCode returns a 10-character code drawn uniformly from
// [a-zA-Z0-9] using a cryptographically strong source. Despite the name,
// uniqueness is not guaranteed here; callers check the account store and
// retry on collision.
func GenerateUniqueCode() string {
	max := big.NewInt(int64(len(codeAlphabet)))
	code := make([]byte, codeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken.
			panic(err)
		}
		code[i] = codeAlphabet[n.Int64()]
	}
	return string(code)
}
