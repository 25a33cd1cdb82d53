package mlsag

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyRing        = errors.New("ring has no members")
	ErrMissingSigner    = errors.New("ring has no signer")
	ErrMultipleSigners  = errors.New("ring has more than one signer")
	ErrInconsistentKeys = errors.New("members hold different numbers of keys")
	ErrNoKeys           = errors.New("members hold no keys")
	ErrDegenerateScalar = errors.New("private key is zero")
	ErrUnknownMember    = errors.New("unknown member type")

	ErrIncorrectNumOfResponses = errors.New("number of responses does not match number of key images")
	ErrIncorrectNumOfPubKeys   = errors.New("number of public key sets does not match number of responses")
	ErrBadKeyImages            = errors.New("key image is not a valid point")
	ErrChallengeMismatch       = errors.New("computed challenge does not match signature challenge")

	ErrBadPoint  = errors.New("invalid point encoding")
	ErrBadScalar = errors.New("invalid scalar encoding")
	ErrBadLength = errors.New("invalid encoding length")
)

// MemberError reports a failure that belongs to one ring position.
type MemberError struct {
	Index int
	Err   error
}

func (e *MemberError) Error() string {
	return fmt.Sprintf("member %d: %v", e.Index, e.Err)
}

func (e *MemberError) Unwrap() error {
	return e.Err
}
