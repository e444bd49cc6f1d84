package crypto

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand/v2"
)

// Source yields uniform random integers in [0, n).
type Source interface {
	IntN(n int) (int, error)
}

type cryptoSource struct{}

// CryptoSource returns a Source backed by crypto/rand.
func CryptoSource() Source {
	return cryptoSource{}
}

func (cryptoSource) IntN(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// seededSource is deterministic and must only be used in tests.
type seededSource struct {
	r *mathrand.Rand
}

// NewSeededSource returns a reproducible Source for tests. It is not suitable
// for generating real secrets.
func NewSeededSource(seed [32]byte) Source {
	return &seededSource{r: mathrand.New(mathrand.NewChaCha8(seed))}
}

func (s *seededSource) IntN(n int) (int, error) {
	return s.r.IntN(n), nil
}
