package mlsag

import (
	"io"

	"github.com/bwesterb/go-ristretto"
)

// Member is one ring position. It is implemented by *Decoy and *Signer only.
type Member interface {
	PublicKeys() []CompressedPoint
	KeysPerMember() int

	points() []*ristretto.Point
}

// Decoy holds public keys only. Its responses are drawn freely at signing time.
type Decoy struct {
	publicKeys []*ristretto.Point
	rand       io.Reader
}

// NewDecoy builds a decoy whose responses are expanded from seed.
func NewDecoy(seed uint64, keys []*ristretto.Point) *Decoy {
	return NewDecoyWithReader(NewSeededReader(seed), keys)
}

func NewDecoyWithReader(rand io.Reader, keys []*ristretto.Point) *Decoy {
	publicKeys := make([]*ristretto.Point, len(keys))
	copy(publicKeys, keys)
	return &Decoy{publicKeys: publicKeys, rand: rand}
}

func (d *Decoy) PublicKeys() []CompressedPoint {
	return compressAll(d.publicKeys)
}

func (d *Decoy) KeysPerMember() int {
	return len(d.publicKeys)
}

func (d *Decoy) points() []*ristretto.Point {
	return d.publicKeys
}

func (d *Decoy) responses() ([]*ristretto.Scalar, error) {
	return randomScalars(d.rand, len(d.publicKeys))
}

// Signer holds the private keys of the real ring position.
type Signer struct {
	privateKeys []*ristretto.Scalar
	publicKeys  []*ristretto.Point
	keyImages   []*ristretto.Point
	rand        io.Reader
}

// NewSigner builds a signer whose nonces are expanded from seed. Signing two
// different messages with the same private keys and the same seed reveals the
// private keys: the nonces repeat while the challenges differ.
func NewSigner(seed uint64, privates []*ristretto.Scalar) *Signer {
	return NewSignerWithReader(NewSeededReader(seed), privates)
}

func NewSignerWithReader(rand io.Reader, privates []*ristretto.Scalar) *Signer {
	s := &Signer{
		privateKeys: make([]*ristretto.Scalar, len(privates)),
		publicKeys:  make([]*ristretto.Point, len(privates)),
		keyImages:   make([]*ristretto.Point, len(privates)),
		rand:        rand,
	}
	for i, private := range privates {
		var x ristretto.Scalar
		x.SetZero()
		x.Add(&x, private)
		s.privateKeys[i] = &x
		s.publicKeys[i] = PublicKey(&x)
		s.keyImages[i] = keyImage(&x, s.publicKeys[i])
	}
	return s
}

func (s *Signer) PublicKeys() []CompressedPoint {
	return compressAll(s.publicKeys)
}

func (s *Signer) KeysPerMember() int {
	return len(s.privateKeys)
}

func (s *Signer) KeyImages() []CompressedPoint {
	return compressAll(s.keyImages)
}

func (s *Signer) points() []*ristretto.Point {
	return s.publicKeys
}

func (s *Signer) validate() error {
	for _, x := range s.privateKeys {
		if isZeroScalar(x) {
			return ErrDegenerateScalar
		}
	}
	return nil
}

func (s *Signer) nonces() ([]*ristretto.Scalar, error) {
	return randomScalars(s.rand, len(s.privateKeys))
}

// nonceCommitments returns alpha_j*G and alpha_j*Hp(P_j).
func (s *Signer) nonceCommitments(alphas []*ristretto.Scalar) ([]*ristretto.Point, []*ristretto.Point) {
	ls := make([]*ristretto.Point, len(alphas))
	rs := make([]*ristretto.Point, len(alphas))
	for j, alpha := range alphas {
		var L, R ristretto.Point
		ls[j] = L.ScalarMultBase(alpha)
		rs[j] = R.ScalarMult(hashToPoint(s.publicKeys[j]), alpha)
	}
	return ls, rs
}

// closingResponses solves r_j = alpha_j - c*x_j.
func (s *Signer) closingResponses(alphas []*ristretto.Scalar, challenge *ristretto.Scalar) []*ristretto.Scalar {
	responses := make([]*ristretto.Scalar, len(alphas))
	for j, alpha := range alphas {
		var r, cx ristretto.Scalar
		responses[j] = r.Sub(alpha, cx.Mul(challenge, s.privateKeys[j]))
	}
	return responses
}
