package mlsag

import (
	"fmt"

	"github.com/bwesterb/go-ristretto"
)

// Mlsag is an ordered ring of members. It holds the signer's private keys and
// should be dropped once Sign returns.
type Mlsag struct {
	members []Member
}

func New() *Mlsag {
	return &Mlsag{}
}

func (m *Mlsag) AddMember(member Member) {
	m.members = append(m.members, member)
}

func (m *Mlsag) Len() int {
	return len(m.members)
}

// PublicKeys returns one key set per member in ring order, which is all a
// verifier needs.
func (m *Mlsag) PublicKeys() [][]CompressedPoint {
	keys := make([][]CompressedPoint, len(m.members))
	for i, member := range m.members {
		keys[i] = member.PublicKeys()
	}
	return keys
}

func (m *Mlsag) signer() (int, *Signer, error) {
	if len(m.members) == 0 {
		return 0, nil, ErrEmptyRing
	}
	keys := m.members[0].KeysPerMember()
	if keys == 0 {
		return 0, nil, ErrNoKeys
	}

	index, count := -1, 0
	var signer *Signer
	for i, member := range m.members {
		if member.KeysPerMember() != keys {
			return 0, nil, &MemberError{Index: i, Err: fmt.Errorf("%w: %d keys, expected %d", ErrInconsistentKeys, member.KeysPerMember(), keys)}
		}
		switch s := member.(type) {
		case *Signer:
			index, signer = i, s
			count++
		case *Decoy:
		default:
			return 0, nil, &MemberError{Index: i, Err: fmt.Errorf("%w %T", ErrUnknownMember, member)}
		}
	}
	switch {
	case count == 0:
		return 0, nil, ErrMissingSigner
	case count > 1:
		return 0, nil, ErrMultipleSigners
	}
	if err := signer.validate(); err != nil {
		return 0, nil, &MemberError{Index: index, Err: err}
	}
	return index, signer, nil
}

// Sign produces a ring signature over message. The walk starts right after
// the signer, chains challenges around the ring and closes at the signer with
// its private keys. The returned challenge is the one entering position 0, so
// verification starts from the first key set regardless of where the signer
// sits.
func (m *Mlsag) Sign(message []byte) (*Signature, error) {
	s, signer, err := m.signer()
	if err != nil {
		return nil, err
	}
	size := len(m.members)
	keys := signer.KeysPerMember()

	responses := make([][]*ristretto.Scalar, size)
	for i, member := range m.members {
		if i == s {
			continue
		}
		r, err := member.(*Decoy).responses()
		if err != nil {
			return nil, &MemberError{Index: i, Err: err}
		}
		responses[i] = r
	}

	alphas, err := signer.nonces()
	if err != nil {
		return nil, &MemberError{Index: s, Err: err}
	}

	c := make([]*ristretto.Scalar, size)
	L, R := signer.nonceCommitments(alphas)
	c[(s+1)%size] = ringChallenge(message, signer.publicKeys, signer.keyImages, L, R)

	for i := (s + 1) % size; i != s; i = (i + 1) % size {
		publicKeys := m.members[i].points()
		L, R := commitments(publicKeys, signer.keyImages, responses[i], c[i])
		c[(i+1)%size] = ringChallenge(message, publicKeys, signer.keyImages, L, R)
	}

	responses[s] = signer.closingResponses(alphas, c[s])

	flat := make([]*ristretto.Scalar, 0, size*keys)
	for i := range responses {
		flat = append(flat, responses[i]...)
	}
	return &Signature{
		Challenge: c[0],
		Responses: flat,
		KeyImages: signer.KeyImages(),
	}, nil
}
