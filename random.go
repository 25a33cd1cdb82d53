package mlsag

import (
	"encoding/binary"
	"io"

	"github.com/bwesterb/go-ristretto"
	"golang.org/x/crypto/chacha20"
)

type seededReader struct {
	cipher *chacha20.Cipher
}

// NewSeededReader expands seed into a deterministic ChaCha20 keystream. It is
// meant for reproducible tests; production signing should pass crypto/rand.Reader
// to the *WithReader constructors instead.
func NewSeededReader(seed uint64) io.Reader {
	var key [chacha20.KeySize]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	nonce := make([]byte, chacha20.NonceSize)
	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		panic(err)
	}
	return &seededReader{cipher: cipher}
}

func (r *seededReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}

func randomScalar(rand io.Reader) (*ristretto.Scalar, error) {
	var buf [64]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return nil, err
	}
	var s ristretto.Scalar
	return s.SetReduced(&buf), nil
}

func randomScalars(rand io.Reader, n int) ([]*ristretto.Scalar, error) {
	scalars := make([]*ristretto.Scalar, n)
	for i := range scalars {
		s, err := randomScalar(rand)
		if err != nil {
			return nil, err
		}
		scalars[i] = s
	}
	return scalars, nil
}

func randomPoint(rand io.Reader) (*ristretto.Point, error) {
	var buf [64]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return nil, err
	}
	var r1Bytes, r2Bytes [32]byte
	copy(r1Bytes[:], buf[:32])
	copy(r2Bytes[:], buf[32:])
	var r, r1, r2 ristretto.Point
	return r.Add(r1.SetElligator(&r1Bytes), r2.SetElligator(&r2Bytes)), nil
}
