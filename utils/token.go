package utils

import (
	"crypto/rand"
	"math/big"
)

const tokenCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomToken returns an opaque alphanumeric token. Used for password
// reset codes (short) and diet share ids (long); share ids gate
// unauthenticated read access, so this draws from crypto/rand.
func GenerateRandomToken(length int) string {
	token := make([]byte, length)
	max := big.NewInt(int64(len(tokenCharset)))
	for i := range token {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			panic(err)
		}
		token[i] = tokenCharset[n.Int64()]
	}
	return string(token)
}
