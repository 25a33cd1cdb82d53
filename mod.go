package mlsag

import (
	"github.com/bwesterb/go-ristretto"
	"github.com/dchest/blake2b"
)

const (
	HASH_TO_POINT_DOMAIN_TAG    = "mlsag_key_image_hash_to_point"
	MLSAG_TRANSCRIPT_DOMAIN_TAG = "mlsag_ring_challenge"

	WORD_SIZE = 32
)

// PublicKey returns private * G.
func PublicKey(private *ristretto.Scalar) *ristretto.Point {
	var point ristretto.Point
	return point.ScalarMultBase(private)
}

// keyImage computes private * Hp(public). The same private key always maps to
// the same image, whatever ring it signs in.
func keyImage(private *ristretto.Scalar, public *ristretto.Point) *ristretto.Point {
	var point ristretto.Point
	return point.ScalarMult(hashToPoint(public), private)
}

func hashToPoint(public *ristretto.Point) *ristretto.Point {
	hash := blake2b.New512()
	hash.Write([]byte(HASH_TO_POINT_DOMAIN_TAG))
	hash.Write(public.Bytes())
	var key [64]byte
	copy(key[:], hash.Sum(nil))

	var r1Bytes, r2Bytes [32]byte
	copy(r1Bytes[:], key[:32])
	copy(r2Bytes[:], key[32:])
	var r, r1, r2 ristretto.Point
	return r.Add(r1.SetElligator(&r1Bytes), r2.SetElligator(&r2Bytes))
}

func isZeroScalar(s *ristretto.Scalar) bool {
	var zero ristretto.Scalar
	return s.Equals(zero.SetZero())
}
