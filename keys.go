package mlsag

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/bwesterb/go-ristretto"
)

// CompressedPoint is the canonical 32-byte encoding of a ristretto point.
type CompressedPoint [WORD_SIZE]byte

func Compress(p *ristretto.Point) CompressedPoint {
	var c CompressedPoint
	copy(c[:], p.Bytes())
	return c
}

func (c CompressedPoint) Decompress() (*ristretto.Point, error) {
	buf := [WORD_SIZE]byte(c)
	var p ristretto.Point
	if !p.SetBytes(&buf) {
		return nil, fmt.Errorf("%w %s", ErrBadPoint, hex.EncodeToString(c[:]))
	}
	return &p, nil
}

func (c CompressedPoint) String() string {
	return hex.EncodeToString(c[:])
}

func compressAll(points []*ristretto.Point) []CompressedPoint {
	compressed := make([]CompressedPoint, len(points))
	for i, p := range points {
		compressed[i] = Compress(p)
	}
	return compressed
}

func decompressAll(compressed []CompressedPoint) ([]*ristretto.Point, error) {
	points := make([]*ristretto.Point, len(compressed))
	for i, c := range compressed {
		p, err := c.Decompress()
		if err != nil {
			return nil, err
		}
		points[i] = p
	}
	return points, nil
}

// decodeScalar accepts only canonical encodings, values below the group order.
func decodeScalar(buf [WORD_SIZE]byte) (*ristretto.Scalar, error) {
	var wide [64]byte
	copy(wide[:], buf[:])
	var s ristretto.Scalar
	s.SetReduced(&wide)
	if !bytes.Equal(s.Bytes(), buf[:]) {
		return nil, fmt.Errorf("%w %s", ErrBadScalar, hex.EncodeToString(buf[:]))
	}
	return &s, nil
}

func encodeScalar(s *ristretto.Scalar) [WORD_SIZE]byte {
	var buf [WORD_SIZE]byte
	copy(buf[:], s.Bytes())
	return buf
}

func HexToScalar(h string) (*ristretto.Scalar, error) {
	buf, err := hexToWord(h)
	if err != nil {
		return nil, err
	}
	return decodeScalar(buf)
}

func HexToPoint(h string) (*ristretto.Point, error) {
	buf, err := hexToWord(h)
	if err != nil {
		return nil, err
	}
	return CompressedPoint(buf).Decompress()
}

func hexToWord(h string) ([WORD_SIZE]byte, error) {
	var buf32 [WORD_SIZE]byte
	buf, err := hex.DecodeString(h)
	if err != nil {
		return buf32, err
	}
	if len(buf) != WORD_SIZE {
		return buf32, fmt.Errorf("%w %d", ErrBadLength, len(buf))
	}
	copy(buf32[:], buf)
	return buf32, nil
}
