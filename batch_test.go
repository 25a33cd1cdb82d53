package mlsag

import (
	"crypto/rand"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func batchItems(t *testing.T, count int) []BatchItem {
	items := make([]BatchItem, count)
	for i := range items {
		msg := []byte(fmt.Sprintf("message %d", i))
		m := generateMlsagWith(i%4, 2)
		m.AddMember(NewSignerWithReader(rand.Reader, generateRandScalars(uint64(300+i), 2)))
		sig, err := m.Sign(msg)
		require.NoError(t, err)
		items[i] = BatchItem{Signature: sig, PublicKeySets: m.PublicKeys(), Message: msg}
	}
	return items
}

func TestBatchVerify(t *testing.T) {
	assert := assert.New(t)

	items := batchItems(t, 8)
	assert.Nil(BatchVerify(items, 0))
	assert.Nil(BatchVerify(items, 3))
	assert.Nil(BatchVerify(nil, 2))

	items[2].Message = []byte("another message")
	err := BatchVerify(items, 3)
	assert.ErrorIs(err, ErrChallengeMismatch)
	assert.Contains(err.Error(), "batch item 2")
}

func TestConcurrentSignVerify(t *testing.T) {
	var errGroup errgroup.Group
	for i := 0; i < 16; i++ {
		i := i
		errGroup.Go(func() error {
			msg := []byte(fmt.Sprintf("hello world %d", i))
			m := generateMlsagWith(5, 2)
			m.AddMember(generateSigner(uint64(i), 2))
			sig, err := m.Sign(msg)
			if err != nil {
				return err
			}
			return sig.Verify(m.PublicKeys(), msg)
		})
	}
	assert.Nil(t, errGroup.Wait())
}
