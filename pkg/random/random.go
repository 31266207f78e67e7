package random

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const alphabet = "qwertyuiopasdfghjklzxcvbnm1234567890"

var ErrInvalidLength error = errors.New("length must be positive")

// Generator produces random alphanumeric strings used as share hashes.
type Generator struct{}

func (Generator) Generate(length int) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}

	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("read random index: %w", err)
		}
		out[i] = alphabet[n.Int64()]
	}

	return string(out), nil
}
