// pkg/crypto/rng.go

package crypto

import (
	"crypto/rand"
	"io"
	"math/big"

	cerr "github.com/cockroachdb/errors"
)

//go:generate mockgen -source=rng.go -destination=mocks/mocks.go -package=mocks RandomSource

// RandomSource yields uniform integers. Implementations used outside tests
// must be cryptographically secure and safe for concurrent use.
type RandomSource interface {
	// Intn returns a uniform integer in [0, n). n must be positive.
	Intn(n int) (int, error)
}

// SecureSource draws from crypto/rand. The zero value reads rand.Reader.
type SecureSource struct {
	// Reader overrides the entropy source; nil means crypto/rand.Reader.
	Reader io.Reader
}

// Intn returns a uniform integer in [0, n) via rand.Int, which rejects
// out-of-range samples instead of reducing modulo n.
func (s SecureSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, cerr.AssertionFailedf("random bound must be positive, got %d", n)
	}
	reader := s.Reader
	if reader == nil {
		reader = rand.Reader
	}
	v, err := rand.Int(reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, cerr.Wrap(err, "read secure random")
	}
	return int(v.Int64()), nil
}

// Choose returns one element of seq selected uniformly by src.
func Choose[T any](src RandomSource, seq []T) (T, error) {
	var zero T
	if len(seq) == 0 {
		return zero, cerr.AssertionFailedf("cannot choose from an empty sequence")
	}
	i, err := src.Intn(len(seq))
	if err != nil {
		return zero, err
	}
	if i < 0 || i >= len(seq) {
		return zero, cerr.AssertionFailedf("random source returned %d outside [0,%d)", i, len(seq))
	}
	return seq[i], nil
}

// Shuffle permutes seq in place with Fisher–Yates; every swap index comes
// from src.
func Shuffle[T any](src RandomSource, seq []T) error {
	for i := len(seq) - 1; i > 0; i-- {
		j, err := src.Intn(i + 1)
		if err != nil {
			return err
		}
		if j < 0 || j > i {
			return cerr.AssertionFailedf("random source returned %d outside [0,%d]", j, i)
		}
		seq[i], seq[j] = seq[j], seq[i]
	}
	return nil
}
