package state

import "errors"

var (
	// ErrNotUnlockOutput is returned when a lock-time check is called on an
	// output that is not of type UNLOCK. This is a caller bug; a silently
	// substituted default would be indistinguishable from a consensus fault.
	ErrNotUnlockOutput = errors.New("tx output must be of type UNLOCK")

	// ErrNotIssuanceCandidate is returned when a non-BSQ output of any type
	// other than ISSUANCE_CANDIDATE_OUTPUT is added.
	ErrNotIssuanceCandidate = errors.New("tx output must be of type ISSUANCE_CANDIDATE_OUTPUT")
)
