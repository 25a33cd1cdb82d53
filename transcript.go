package mlsag

import (
	"github.com/bwesterb/go-ristretto"
	"github.com/gtank/merlin"
)

func InitialTranscript(label string) *merlin.Transcript {
	return merlin.NewTranscript(label)
}

// ringChallenge derives the challenge for the next ring position from the
// message, the position's public keys, the key images and the commitment
// points L and R. Signer and verifier must call it with identical inputs.
func ringChallenge(message []byte, publicKeys []*ristretto.Point, keyImages []*ristretto.Point, ls, rs []*ristretto.Point) *ristretto.Scalar {
	t := InitialTranscript(MLSAG_TRANSCRIPT_DOMAIN_TAG)
	appendBytes([]byte("msg"), message, t)
	for _, p := range publicKeys {
		appendPoint("pk", p, t)
	}
	for _, i := range keyImages {
		appendPoint("key_image", i, t)
	}
	for j := range ls {
		appendPoint("L", ls[j], t)
		appendPoint("R", rs[j], t)
	}
	return ChallengeScalar("challenge", t)
}

func appendBytes(field, data []byte, t *merlin.Transcript) {
	t.AppendMessage(field, data)
}

func appendPoint(label string, p *ristretto.Point, t *merlin.Transcript) {
	appendBytes([]byte(label), p.Bytes(), t)
}

func ChallengeScalar(label string, t *merlin.Transcript) *ristretto.Scalar {
	data := t.ExtractBytes([]byte(label), 64)
	var dataBytes [64]byte
	copy(dataBytes[:], data[:])

	var s ristretto.Scalar
	return s.SetReduced(&dataBytes)
}

// commitments computes L_j = r_j*G + c*P_j and R_j = r_j*Hp(P_j) + c*I_j for
// one ring position.
func commitments(publicKeys []*ristretto.Point, keyImages []*ristretto.Point, responses []*ristretto.Scalar, challenge *ristretto.Scalar) ([]*ristretto.Point, []*ristretto.Point) {
	ls := make([]*ristretto.Point, len(publicKeys))
	rs := make([]*ristretto.Point, len(publicKeys))
	for j, p := range publicKeys {
		var L, L0, L1 ristretto.Point
		L.Add(L0.ScalarMultBase(responses[j]), L1.ScalarMult(p, challenge))
		var R, R0, R1 ristretto.Point
		R.Add(R0.ScalarMult(hashToPoint(p), responses[j]), R1.ScalarMult(keyImages[j], challenge))
		ls[j] = &L
		rs[j] = &R
	}
	return ls, rs
}
