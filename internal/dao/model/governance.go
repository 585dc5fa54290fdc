package model

// Cycle is one voting period: an inclusive, non-overlapping range of block
// heights. Cycles are contiguous from genesis and kept in ascending order.
type Cycle struct {
	HeightOfFirstBlock int32
	HeightOfLastBlock  int32
}

// Contains reports whether height falls inside the cycle range.
func (c Cycle) Contains(height int32) bool {
	return c.HeightOfFirstBlock <= height && height <= c.HeightOfLastBlock
}

// Issuance records an accepted issuance transaction.
type Issuance struct {
	TxID        string
	ChainHeight int32
	Amount      int64
}

// ParamChange is one entry of the height-ordered parameter override log.
type ParamChange struct {
	ParamName        string
	Value            int64
	ActivationHeight int32
}

// SpentInfo records which later transaction input consumed an output. It is a
// traceability back-reference and never feeds spendability decisions.
type SpentInfo struct {
	BlockHeight int32
	TxID        string
	InputIndex  int
}

// ConfiscateBond is a governance event requesting confiscation of all bonded
// outputs carrying the given bond hash.
type ConfiscateBond struct {
	Hash []byte
}
