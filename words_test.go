package mlsag

import (
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignWords(t *testing.T) {
	assert := assert.New(t)

	msg := []byte("hello world")
	decoys := GenerateDecoys(5, 5)
	signer := GenerateSigner(6)
	signerPk, err := PkFromSk(signer)
	assert.Nil(err)
	log.Println("signer pk:", signerPk)

	challenge, responses, keyImages, err := Sign(8, signer, decoys, msg)
	assert.Nil(err)
	assert.Len(responses, 6)
	assert.Len(keyImages, 1)

	ring := append(decoys, signerPk)
	assert.True(Verify(msg, ring, challenge, responses, keyImages))
	assert.False(Verify([]byte("hello"), ring, challenge, responses, keyImages))
	assert.False(Verify(msg, ring[1:], challenge, responses, keyImages))

	again, _, againImages, err := Sign(8, signer, decoys, msg)
	assert.Nil(err)
	assert.Equal(challenge, again)
	assert.Equal(keyImages, againImages)
}

func TestPkFromSk(t *testing.T) {
	assert := assert.New(t)

	privates := generateRandScalars(3, 1)
	pk, err := PkFromSk(encodeScalar(privates[0]))
	assert.Nil(err)
	assert.Equal(Word(Compress(PublicKey(privates[0]))), pk)

	var bad Word
	for i := range bad {
		bad[i] = 0xff
	}
	_, err = PkFromSk(bad)
	assert.ErrorIs(err, ErrBadScalar)
}

func TestBuildRing(t *testing.T) {
	assert := assert.New(t)
	msg := []byte("hello world")

	signerKeys := []Word{GenerateSigner(1), GenerateSigner(2)}
	var publicKeySets [][]Word
	var entries []RingEntry
	for i := 0; i < 4; i++ {
		keys := GenerateDecoys(uint64(10+i), 2)
		entries = append(entries, RingEntry{Keys: keys, Seed: uint64(20 + i)})
		publicKeySets = append(publicKeySets, keys)
	}
	entries = append(entries[:2], append([]RingEntry{{Signer: true, Keys: signerKeys, Seed: 99}}, entries[2:]...)...)
	var signerPks []Word
	for _, sk := range signerKeys {
		pk, err := PkFromSk(sk)
		assert.Nil(err)
		signerPks = append(signerPks, pk)
	}
	publicKeySets = append(publicKeySets[:2], append([][]Word{signerPks}, publicKeySets[2:]...)...)

	ring, err := BuildRing(entries)
	assert.Nil(err)
	challenge, responses, keyImages, err := SignRing(ring, msg)
	assert.Nil(err)
	assert.Len(responses, 10)
	assert.Nil(VerifyWords(challenge, responses, keyImages, publicKeySets, msg))
	assert.ErrorIs(VerifyWords(challenge, responses, keyImages, publicKeySets[1:], msg), ErrIncorrectNumOfPubKeys)

	_, err = BuildRing(nil)
	assert.ErrorIs(err, ErrEmptyRing)
	_, err = BuildRing(entries[:2])
	assert.ErrorIs(err, ErrMissingSigner)
	_, err = BuildRing(append(entries, RingEntry{Signer: true, Keys: signerKeys, Seed: 1}))
	assert.ErrorIs(err, ErrMultipleSigners)
	_, err = BuildRing(append(entries, RingEntry{Keys: GenerateDecoys(1, 3)}))
	assert.ErrorIs(err, ErrInconsistentKeys)

	var bad Word
	for i := range bad {
		bad[i] = 0xff
	}
	_, err = BuildRing([]RingEntry{{Keys: []Word{bad}}})
	assert.ErrorIs(err, ErrBadPoint)
	_, err = BuildRing([]RingEntry{{Signer: true, Keys: []Word{bad}}})
	assert.ErrorIs(err, ErrBadScalar)
}
