package mlsag

import (
	"github.com/bwesterb/go-ristretto"
)

func generateRandScalars(seed uint64, num int) []*ristretto.Scalar {
	scalars, err := randomScalars(NewSeededReader(seed), num)
	if err != nil {
		panic(err)
	}
	return scalars
}

func generateRandPoints(seed uint64, num int) []*ristretto.Point {
	rand := NewSeededReader(seed)
	points := make([]*ristretto.Point, num)
	for i := range points {
		p, err := randomPoint(rand)
		if err != nil {
			panic(err)
		}
		points[i] = p
	}
	return points
}

func generateDecoy(seed uint64, numKeys int) *Decoy {
	return NewDecoy(seed+1000, generateRandPoints(seed, numKeys))
}

func generateSigner(seed uint64, numKeys int) *Signer {
	return NewSigner(seed+1000, generateRandScalars(seed, numKeys))
}

func generateMlsagWith(numDecoys, numKeys int) *Mlsag {
	m := New()
	for i := 0; i < numDecoys; i++ {
		m.AddMember(generateDecoy(uint64(200+i), numKeys))
	}
	return m
}
