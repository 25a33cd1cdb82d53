// Package mlsag implements multilayer linkable spontaneous anonymous group
// signatures over the ristretto group.
//
// A ring is built from decoys, which contribute public keys only, and exactly
// one signer. Every member holds the same number of keys. The signature proves
// that one member knows the private keys of its key set without telling which,
// and carries one key image per key slot so that two signatures made with the
// same private key can be linked.
//
//	ring := mlsag.New()
//	ring.AddMember(mlsag.NewDecoy(seed, decoyKeys))
//	ring.AddMember(mlsag.NewSignerWithReader(rand.Reader, privateKeys))
//	sig, err := ring.Sign(msg)
//	err = sig.Verify(ring.PublicKeys(), msg)
//
// Randomness is always explicit. The seeded constructors are reproducible and
// therefore predictable; never sign two messages with the same signer seed.
package mlsag
