package mlsag

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

type BatchItem struct {
	Signature     *Signature
	PublicKeySets [][]CompressedPoint
	Message       []byte
}

// BatchVerify verifies items concurrently, at most limit at a time when limit
// is positive. The returned error names the index of a failing item.
func BatchVerify(items []BatchItem, limit int) error {
	var errGroup errgroup.Group
	if limit > 0 {
		errGroup.SetLimit(limit)
	}
	for i := range items {
		i, item := i, items[i]
		errGroup.Go(func() error {
			if err := item.Signature.Verify(item.PublicKeySets, item.Message); err != nil {
				return fmt.Errorf("batch item %d: %w", i, err)
			}
			return nil
		})
	}
	return errGroup.Wait()
}
