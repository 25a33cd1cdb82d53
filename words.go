package mlsag

import (
	"encoding/hex"

	"github.com/bwesterb/go-ristretto"
)

// Word is a 32-byte scalar or compressed point as it crosses the host boundary.
type Word [WORD_SIZE]byte

func (w Word) String() string {
	return hex.EncodeToString(w[:])
}

type RingEntry struct {
	Signer bool
	Keys   []Word
	Seed   uint64
}

// BuildRing turns host entries into a ring, rejecting rings that could not be
// signed: empty, without exactly one signer, or with uneven key counts.
func BuildRing(entries []RingEntry) (*Mlsag, error) {
	ring := New()
	for i, entry := range entries {
		if entry.Signer {
			privates := make([]*ristretto.Scalar, len(entry.Keys))
			for j, key := range entry.Keys {
				s, err := decodeScalar(key)
				if err != nil {
					return nil, &MemberError{Index: i, Err: err}
				}
				privates[j] = s
			}
			ring.AddMember(NewSigner(entry.Seed, privates))
			continue
		}

		points := make([]*ristretto.Point, len(entry.Keys))
		for j, key := range entry.Keys {
			p, err := CompressedPoint(key).Decompress()
			if err != nil {
				return nil, &MemberError{Index: i, Err: err}
			}
			points[j] = p
		}
		ring.AddMember(NewDecoy(entry.Seed, points))
	}

	if _, _, err := ring.signer(); err != nil {
		return nil, err
	}
	return ring, nil
}

func SignRing(ring *Mlsag, message []byte) (Word, []Word, []Word, error) {
	sig, err := ring.Sign(message)
	if err != nil {
		return Word{}, nil, nil, err
	}
	responses := make([]Word, len(sig.Responses))
	for i, r := range sig.Responses {
		responses[i] = encodeScalar(r)
	}
	keyImages := make([]Word, len(sig.KeyImages))
	for i, image := range sig.KeyImages {
		keyImages[i] = Word(image)
	}
	return encodeScalar(sig.Challenge), responses, keyImages, nil
}

func VerifyWords(challenge Word, responses, keyImages []Word, publicKeySets [][]Word, message []byte) error {
	c, err := decodeScalar(challenge)
	if err != nil {
		return err
	}
	sig := &Signature{
		Challenge: c,
		Responses: make([]*ristretto.Scalar, len(responses)),
		KeyImages: make([]CompressedPoint, len(keyImages)),
	}
	for i, w := range responses {
		r, err := decodeScalar(w)
		if err != nil {
			return err
		}
		sig.Responses[i] = r
	}
	for i, w := range keyImages {
		sig.KeyImages[i] = CompressedPoint(w)
	}

	sets := make([][]CompressedPoint, len(publicKeySets))
	for i, set := range publicKeySets {
		sets[i] = make([]CompressedPoint, len(set))
		for j, w := range set {
			sets[i][j] = CompressedPoint(w)
		}
	}
	return sig.Verify(sets, message)
}

// PkFromSk derives the compressed public key of a private scalar.
func PkFromSk(sk Word) (Word, error) {
	s, err := decodeScalar(sk)
	if err != nil {
		return Word{}, err
	}
	return Word(Compress(PublicKey(s))), nil
}

func GenerateDecoys(seed uint64, count int) []Word {
	rand := NewSeededReader(seed)
	points := make([]Word, count)
	for i := range points {
		p, err := randomPoint(rand)
		if err != nil {
			panic(err)
		}
		points[i] = Word(Compress(p))
	}
	return points
}

func GenerateSigner(seed uint64) Word {
	s, err := randomScalar(NewSeededReader(seed))
	if err != nil {
		panic(err)
	}
	return encodeScalar(s)
}

// Sign signs message with a single-key ring made of decoys followed by signer.
func Sign(seed uint64, signer Word, decoys []Word, message []byte) (Word, []Word, []Word, error) {
	entries := make([]RingEntry, 0, len(decoys)+1)
	for _, d := range decoys {
		entries = append(entries, RingEntry{Keys: []Word{d}, Seed: seed})
	}
	entries = append(entries, RingEntry{
		Signer: true,
		Keys:   []Word{signer},
		Seed:   seed + uint64(len(decoys)),
	})
	ring, err := BuildRing(entries)
	if err != nil {
		return Word{}, nil, nil, err
	}
	return SignRing(ring, message)
}

// Verify checks a single-key ring signature, ring being every member's public
// key in signing order.
func Verify(message []byte, ring []Word, challenge Word, responses, keyImages []Word) bool {
	sets := make([][]Word, len(ring))
	for i, w := range ring {
		sets[i] = []Word{w}
	}
	return VerifyWords(challenge, responses, keyImages, sets, message) == nil
}
