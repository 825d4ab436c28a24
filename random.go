package encryptobj

import (
	"crypto/rand"
	"fmt"
)

// RandomSource draws random bytes and reports whether the draw came from a
// cryptographically strong generator. Sources that cannot make that
// distinction must report false so the weak-IV policy stays conservative.
type RandomSource interface {
	// ReadRandom returns n random bytes and a strength indicator
	ReadRandom(n int) (bytes []byte, strong bool, err error)
}

// cryptoRandSource implements RandomSource using crypto/rand
type cryptoRandSource struct{}

// ReadRandom draws n bytes from crypto/rand. crypto/rand is documented to
// always use a cryptographically secure generator, so draws are reported
// as strong.
func (cryptoRandSource) ReadRandom(n int) ([]byte, bool, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, false, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return buf, true, nil
}

// DefaultRandomSource returns the package's crypto/rand backed source
func DefaultRandomSource() RandomSource {
	return cryptoRandSource{}
}
