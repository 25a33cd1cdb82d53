// Package sm exposes the SM2 and SM3 natives of the chain host on top of
// github.com/emmansun/gmsm.
package sm

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"errors"
	"io"
	"math/big"

	"github.com/emmansun/gmsm/sm2"
	"github.com/emmansun/gmsm/sm3"
)

const (
	SIGNATURE_SIZE = 64
	DEFAULT_UID    = "1234567812345678"
)

var (
	ErrInvalidPrivateKey    = errors.New("sm2: invalid private key")
	ErrInvalidPublicKey     = errors.New("sm2: invalid public key")
	ErrInvalidSignatureSize = errors.New("sm2: invalid signature size")
)

func Sm3(data []byte) [32]byte {
	return sm3.Sum(data)
}

func PublicKeyFromPrivate(sk []byte, compress bool) ([]byte, error) {
	priv, err := privateKey(sk)
	if err != nil {
		return nil, err
	}
	return marshalPublicKey(&priv.PublicKey, compress), nil
}

// Sign returns r || s, each left padded to 32 bytes.
func Sign(rand io.Reader, sk, message []byte) ([]byte, error) {
	priv, err := privateKey(sk)
	if err != nil {
		return nil, err
	}
	r, s, err := sm2.SignWithSM2(rand, &priv.PrivateKey, []byte(DEFAULT_UID), message)
	if err != nil {
		return nil, err
	}
	sig := make([]byte, SIGNATURE_SIZE)
	r.FillBytes(sig[:32])
	s.FillBytes(sig[32:])
	return sig, nil
}

func Verify(message, public, sig []byte) (bool, error) {
	if len(sig) != SIGNATURE_SIZE {
		return false, ErrInvalidSignatureSize
	}
	pub, err := parsePublicKey(public)
	if err != nil {
		return false, err
	}
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:])
	return sm2.VerifyWithSM2(pub, []byte(DEFAULT_UID), message, r, s), nil
}

func privateKey(sk []byte) (*sm2.PrivateKey, error) {
	if len(sk) != 32 || new(big.Int).SetBytes(sk).Sign() == 0 {
		return nil, ErrInvalidPrivateKey
	}
	curve := sm2.P256()
	var ec ecdsa.PrivateKey
	ec.Curve = curve
	ec.D = new(big.Int).SetBytes(sk)
	ec.X, ec.Y = curve.ScalarBaseMult(sk)
	priv, err := new(sm2.PrivateKey).FromECPrivateKey(&ec)
	if err != nil {
		return nil, ErrInvalidPrivateKey
	}
	return priv, nil
}

func marshalPublicKey(pub *ecdsa.PublicKey, compress bool) []byte {
	if compress {
		return elliptic.MarshalCompressed(pub.Curve, pub.X, pub.Y)
	}
	return elliptic.Marshal(pub.Curve, pub.X, pub.Y)
}

// parsePublicKey accepts the 33-byte compressed and 65-byte uncompressed forms.
func parsePublicKey(public []byte) (*ecdsa.PublicKey, error) {
	curve := sm2.P256()
	var x, y *big.Int
	switch len(public) {
	case 33:
		x, y = elliptic.UnmarshalCompressed(curve, public)
	case 65:
		x, y = elliptic.Unmarshal(curve, public)
	}
	if x == nil {
		return nil, ErrInvalidPublicKey
	}
	return &ecdsa.PublicKey{Curve: curve, X: x, Y: y}, nil
}
