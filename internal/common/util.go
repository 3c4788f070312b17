package common

import (
	"crypto/rand"
	"encoding/base64"
	"io"
)

// randReader is the entropy source for token generation. It is always
// crypto/rand outside of tests.
var randReader io.Reader = rand.Reader

// MakeRandToken returns size bytes from a cryptographically secure source
// encoded as unpadded base64url text, suitable for opaque bearer values.
//
// It returns an error if the random number generator fails.
func MakeRandToken(size int) (string, error) {
	b := make([]byte, size)
	if _, err := io.ReadFull(randReader, b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
