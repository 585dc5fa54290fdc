package model

import "fmt"

// TxOutputType classifies an output of a BSQ transaction. The set is closed;
// classification tables over it are consensus rules, so every switch over a
// TxOutputType must carry a defensive default arm.
type TxOutputType int32

const (
	UndefinedOutput TxOutputType = iota
	GenesisOutput
	BsqOutput
	BtcOutput
	ProposalOpReturnOutput
	CompReqOpReturnOutput
	IssuanceCandidateOutput
	BlindVoteLockStakeOutput
	BlindVoteOpReturnOutput
	VoteRevealUnlockStakeOutput
	VoteRevealOpReturnOutput
	LockupOutput
	LockupOpReturnOutput
	UnlockOutput
	InvalidOutput
)

// String returns the canonical name of the output type.
func (t TxOutputType) String() string {
	switch t {
	case UndefinedOutput:
		return "UNDEFINED"
	case GenesisOutput:
		return "GENESIS_OUTPUT"
	case BsqOutput:
		return "BSQ_OUTPUT"
	case BtcOutput:
		return "BTC_OUTPUT"
	case ProposalOpReturnOutput:
		return "PROPOSAL_OP_RETURN_OUTPUT"
	case CompReqOpReturnOutput:
		return "COMP_REQ_OP_RETURN_OUTPUT"
	case IssuanceCandidateOutput:
		return "ISSUANCE_CANDIDATE_OUTPUT"
	case BlindVoteLockStakeOutput:
		return "BLIND_VOTE_LOCK_STAKE_OUTPUT"
	case BlindVoteOpReturnOutput:
		return "BLIND_VOTE_OP_RETURN_OUTPUT"
	case VoteRevealUnlockStakeOutput:
		return "VOTE_REVEAL_UNLOCK_STAKE_OUTPUT"
	case VoteRevealOpReturnOutput:
		return "VOTE_REVEAL_OP_RETURN_OUTPUT"
	case LockupOutput:
		return "LOCKUP"
	case LockupOpReturnOutput:
		return "LOCKUP_OP_RETURN_OUTPUT"
	case UnlockOutput:
		return "UNLOCK"
	case InvalidOutput:
		return "INVALID_OUTPUT"
	default:
		return fmt.Sprintf("TxOutputType(%d)", int32(t))
	}
}

// TxOutputKey identifies a transaction output globally: txID plus the index
// of the output within its transaction.
type TxOutputKey struct {
	TxID  string
	Index int
}

// String formats the key as "txID:index".
func (k TxOutputKey) String() string {
	return fmt.Sprintf("%s:%d", k.TxID, k.Index)
}

// TxOutput is a single output of a BSQ transaction. Immutable once recorded.
type TxOutput struct {
	TxID        string
	Index       int
	Value       int64
	Address     string
	BlockHeight int32
	Type        TxOutputType
	// OpReturnData carries the raw auxiliary payload for OP_RETURN outputs,
	// nil for all others.
	OpReturnData []byte
}

// Key returns the globally unique key of the output.
func (o TxOutput) Key() TxOutputKey {
	return TxOutputKey{TxID: o.TxID, Index: o.Index}
}
