package mlsag

import (
	"fmt"

	"github.com/bwesterb/go-ristretto"
)

// Signature is an MLSAG ring signature. Responses are flattened in ring order,
// then key order. KeyImages holds one image per key slot of the signer.
type Signature struct {
	Challenge *ristretto.Scalar
	Responses []*ristretto.Scalar
	KeyImages []CompressedPoint
}

// Verify checks the signature against the ring's public key sets in the order
// they were signed with. No secret is needed.
func (sig *Signature) Verify(publicKeySets [][]CompressedPoint, message []byte) error {
	// ristretto has no cofactor, no subgroup check is needed
	numKeyImages := len(sig.KeyImages)
	numResponses := len(sig.Responses)
	if numKeyImages == 0 || numResponses%numKeyImages != 0 {
		return ErrIncorrectNumOfResponses
	}
	if len(publicKeySets) != numResponses/numKeyImages {
		return ErrIncorrectNumOfPubKeys
	}
	if sig.Challenge == nil {
		return fmt.Errorf("%w: missing challenge", ErrBadScalar)
	}
	for i, r := range sig.Responses {
		if r == nil {
			return fmt.Errorf("%w: missing response %d", ErrBadScalar, i)
		}
	}

	keyImages, err := decompressAll(sig.KeyImages)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadKeyImages, err)
	}

	ring := make([][]*ristretto.Point, len(publicKeySets))
	for i, set := range publicKeySets {
		if len(set) != numKeyImages {
			return &MemberError{Index: i, Err: fmt.Errorf("%w: %d keys, expected %d", ErrInconsistentKeys, len(set), numKeyImages)}
		}
		points, err := decompressAll(set)
		if err != nil {
			return &MemberError{Index: i, Err: err}
		}
		ring[i] = points
	}

	challenge := sig.Challenge
	for i, publicKeys := range ring {
		responses := sig.Responses[i*numKeyImages : (i+1)*numKeyImages]
		L, R := commitments(publicKeys, keyImages, responses, challenge)
		challenge = ringChallenge(message, publicKeys, keyImages, L, R)
	}

	if !sig.Challenge.Equals(challenge) {
		return ErrChallengeMismatch
	}
	return nil
}

// Linked reports whether two signatures share a key image, which proves they
// were made with at least one common private key.
func Linked(a, b *Signature) bool {
	images := make(map[CompressedPoint]bool, len(a.KeyImages))
	for _, i := range a.KeyImages {
		images[i] = true
	}
	for _, i := range b.KeyImages {
		if images[i] {
			return true
		}
	}
	return false
}

// Encode serializes the signature as challenge || responses || key images,
// 32 bytes each.
func (sig *Signature) Encode() []byte {
	buf := make([]byte, 0, WORD_SIZE*(1+len(sig.Responses)+len(sig.KeyImages)))
	buf = append(buf, sig.Challenge.Bytes()...)
	for _, r := range sig.Responses {
		buf = append(buf, r.Bytes()...)
	}
	for _, i := range sig.KeyImages {
		buf = append(buf, i[:]...)
	}
	return buf
}

// DecodeSignature parses the Encode layout. keysPerMember fixes the number of
// trailing key images. Points are not decompressed here, Verify does that.
func DecodeSignature(data []byte, keysPerMember int) (*Signature, error) {
	if keysPerMember <= 0 || len(data)%WORD_SIZE != 0 {
		return nil, fmt.Errorf("%w %d", ErrBadLength, len(data))
	}
	words := len(data) / WORD_SIZE
	numResponses := words - 1 - keysPerMember
	if numResponses <= 0 || numResponses%keysPerMember != 0 {
		return nil, fmt.Errorf("%w %d", ErrBadLength, len(data))
	}

	word := func(i int) [WORD_SIZE]byte {
		var w [WORD_SIZE]byte
		copy(w[:], data[i*WORD_SIZE:(i+1)*WORD_SIZE])
		return w
	}

	challenge, err := decodeScalar(word(0))
	if err != nil {
		return nil, err
	}
	sig := &Signature{
		Challenge: challenge,
		Responses: make([]*ristretto.Scalar, numResponses),
		KeyImages: make([]CompressedPoint, keysPerMember),
	}
	for i := range sig.Responses {
		r, err := decodeScalar(word(1 + i))
		if err != nil {
			return nil, err
		}
		sig.Responses[i] = r
	}
	for i := range sig.KeyImages {
		sig.KeyImages[i] = CompressedPoint(word(1 + numResponses + i))
	}
	return sig, nil
}
