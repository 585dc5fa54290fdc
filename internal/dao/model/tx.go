package model

// TxType is the classification the parser assigned to a whole transaction.
type TxType int32

const (
	TxTypeUndefined TxType = iota
	TxTypeUnverified
	TxTypeInvalid
	TxTypeGenesis
	TxTypeTransferBsq
	TxTypePayTradeFee
	TxTypeProposal
	TxTypeCompensationRequest
	TxTypeBlindVote
	TxTypeVoteReveal
	TxTypeLockup
	TxTypeUnlock
)

// String returns the canonical name of the tx type.
func (t TxType) String() string {
	switch t {
	case TxTypeUndefined:
		return "UNDEFINED_TX_TYPE"
	case TxTypeUnverified:
		return "UNVERIFIED"
	case TxTypeInvalid:
		return "INVALID"
	case TxTypeGenesis:
		return "GENESIS"
	case TxTypeTransferBsq:
		return "TRANSFER_BSQ"
	case TxTypePayTradeFee:
		return "PAY_TRADE_FEE"
	case TxTypeProposal:
		return "PROPOSAL"
	case TxTypeCompensationRequest:
		return "COMPENSATION_REQUEST"
	case TxTypeBlindVote:
		return "BLIND_VOTE"
	case TxTypeVoteReveal:
		return "VOTE_REVEAL"
	case TxTypeLockup:
		return "LOCKUP"
	case TxTypeUnlock:
		return "UNLOCK"
	default:
		return "UNDEFINED_TX_TYPE"
	}
}

// TxInput references the output a transaction input spends.
type TxInput struct {
	ConnectedTxOutputTxID  string
	ConnectedTxOutputIndex int
}

// ConnectedKey returns the key of the spent output.
func (i TxInput) ConnectedKey() TxOutputKey {
	return TxOutputKey{TxID: i.ConnectedTxOutputTxID, Index: i.ConnectedTxOutputIndex}
}

// Tx is a parsed BSQ transaction. Immutable once its block completed parsing.
type Tx struct {
	ID          string
	BlockHeight int32
	Inputs      []TxInput
	Outputs     []TxOutput
	Type        TxType
	BurntFee    int64
	// LockTime is the bond lock duration in blocks for LOCKUP txs, 0 otherwise.
	LockTime int32
	// UnlockBlockHeight is the height at which an UNLOCK tx becomes spendable
	// (unlock tx height + lock time of the lockup). 0 means unset.
	UnlockBlockHeight int32
}

// LastOutput returns the final output of the tx and false when there are none.
func (t Tx) LastOutput() (TxOutput, bool) {
	if len(t.Outputs) == 0 {
		return TxOutput{}, false
	}
	return t.Outputs[len(t.Outputs)-1], true
}
