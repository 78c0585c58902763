package composer

import (
	"crypto/rand"
	"math/big"
)

// Source yields uniform random integers. Implementations must return a
// value in [0, n) for any n > 0. Tests substitute deterministic sources
// to make composition reproducible.
type Source interface {
	IntN(n int) (int, error)
}

// CryptoSource draws from the process-wide crypto/rand reader. It is safe
// for concurrent use.
type CryptoSource struct{}

// IntN returns a uniform random int in [0, n) using crypto/rand.
func (CryptoSource) IntN(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
