package state

import (
	"time"

	"github.com/goodnatureofminers/bsqledger-backend/internal/dao/model"
)

// Queries on the raw State. None of them lock; concurrent access is
// serialized by the Service.

// LastBlock returns the most recently added block.
func (s *State) LastBlock() (model.Block, bool) {
	if len(s.Blocks) == 0 {
		return model.Block{}, false
	}
	return s.Blocks[len(s.Blocks)-1], true
}

// BlockHeightOfLastBlock returns the height of the last block, 0 when empty.
func (s *State) BlockHeightOfLastBlock() int32 {
	if b, ok := s.LastBlock(); ok {
		return b.Height
	}
	return 0
}

// BlockAtHeight returns the block at the given height.
func (s *State) BlockAtHeight(height int32) (model.Block, bool) {
	for _, b := range s.Blocks {
		if b.Height == height {
			return b, true
		}
	}
	return model.Block{}, false
}

// ContainsBlockHash reports whether a block with the given hash is known.
func (s *State) ContainsBlockHash(hash string) bool {
	for _, b := range s.Blocks {
		if b.Hash == hash {
			return true
		}
	}
	return false
}

// BlockTime returns the timestamp of the block at height, zero time if the
// height is unknown.
func (s *State) BlockTime(height int32) time.Time {
	if b, ok := s.BlockAtHeight(height); ok {
		return b.Timestamp
	}
	return time.Time{}
}

// BlocksFromHeight returns all blocks at or above fromHeight, in chain order.
func (s *State) BlocksFromHeight(fromHeight int32) []model.Block {
	var blocks []model.Block
	for _, b := range s.Blocks {
		if b.Height >= fromHeight {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// Tx returns the transaction with the given id from any known block.
func (s *State) Tx(txID string) (model.Tx, bool) {
	for _, b := range s.Blocks {
		for _, tx := range b.Txs {
			if tx.ID == txID {
				return tx, true
			}
		}
	}
	return model.Tx{}, false
}

// ContainsTx reports whether a transaction with the given id is known.
func (s *State) ContainsTx(txID string) bool {
	_, ok := s.Tx(txID)
	return ok
}

// TxType returns the classified type of the transaction.
func (s *State) TxType(txID string) (model.TxType, bool) {
	tx, ok := s.Tx(txID)
	if !ok {
		return model.TxTypeUndefined, false
	}
	return tx.Type, true
}

// BurntFee returns the burnt fee of the transaction, 0 when unknown.
func (s *State) BurntFee(txID string) int64 {
	tx, ok := s.Tx(txID)
	if !ok {
		return 0
	}
	return tx.BurntFee
}

// HasTxBurntFee reports whether the transaction burnt a positive fee.
func (s *State) HasTxBurntFee(txID string) bool {
	return s.BurntFee(txID) > 0
}

// TotalBurntFee sums the burnt fees of all known transactions.
func (s *State) TotalBurntFee() int64 {
	var total int64
	s.eachTx(func(tx model.Tx) {
		total += tx.BurntFee
	})
	return total
}

// BurntFeeTxs returns all transactions that burnt a fee.
func (s *State) BurntFeeTxs() []model.Tx {
	var txs []model.Tx
	s.eachTx(func(tx model.Tx) {
		if tx.BurntFee > 0 {
			txs = append(txs, tx)
		}
	})
	return txs
}

// ConnectedTxOutput resolves the output a tx input spends.
func (s *State) ConnectedTxOutput(input model.TxInput) (model.TxOutput, bool) {
	tx, ok := s.Tx(input.ConnectedTxOutputTxID)
	if !ok {
		return model.TxOutput{}, false
	}
	if input.ConnectedTxOutputIndex < 0 || input.ConnectedTxOutputIndex >= len(tx.Outputs) {
		return model.TxOutput{}, false
	}
	return tx.Outputs[input.ConnectedTxOutputIndex], true
}

// ExistsTxOutput reports whether any known transaction produced the output.
func (s *State) ExistsTxOutput(key model.TxOutputKey) bool {
	found := false
	s.eachTxOutput(func(out model.TxOutput) {
		if out.Key() == key {
			found = true
		}
	})
	return found
}

// TxOutputsByType returns all outputs of the given type, spent or not.
func (s *State) TxOutputsByType(outputType model.TxOutputType) []model.TxOutput {
	var outputs []model.TxOutput
	s.eachTxOutput(func(out model.TxOutput) {
		if out.Type == outputType {
			outputs = append(outputs, out)
		}
	})
	return outputs
}

// IsUnspent reports whether the output is currently in the unspent index.
func (s *State) IsUnspent(key model.TxOutputKey) bool {
	_, ok := s.UnspentTxOutputs[key]
	return ok
}

// UnspentTxOutput returns the output from the unspent index.
func (s *State) UnspentTxOutput(key model.TxOutputKey) (model.TxOutput, bool) {
	out, ok := s.UnspentTxOutputs[key]
	return out, ok
}

// UnspentBlindVoteStakeTxOutputs returns the unspent blind-vote stake outputs.
func (s *State) UnspentBlindVoteStakeTxOutputs() []model.TxOutput {
	var outputs []model.TxOutput
	for _, out := range s.TxOutputsByType(model.BlindVoteLockStakeOutput) {
		if s.IsUnspent(out.Key()) {
			outputs = append(outputs, out)
		}
	}
	return outputs
}

// VoteRevealOpReturnTxOutputs returns all vote-reveal OP_RETURN outputs.
func (s *State) VoteRevealOpReturnTxOutputs() []model.TxOutput {
	return s.TxOutputsByType(model.VoteRevealOpReturnOutput)
}

// IssuanceCandidateTxOutputs returns all issuance candidate outputs.
func (s *State) IssuanceCandidateTxOutputs() []model.TxOutput {
	return s.TxOutputsByType(model.IssuanceCandidateOutput)
}

// Issuance returns the issuance record for the transaction.
func (s *State) Issuance(txID string) (model.Issuance, bool) {
	issuance, ok := s.Issuances[txID]
	return issuance, ok
}

// IsIssuanceTx reports whether the transaction is an accepted issuance.
func (s *State) IsIssuanceTx(txID string) bool {
	_, ok := s.Issuances[txID]
	return ok
}

// IssuanceBlockHeight returns the height at which the issuance was accepted,
// 0 when the tx is no accepted issuance.
func (s *State) IssuanceBlockHeight(txID string) int32 {
	issuance, ok := s.Issuances[txID]
	if !ok {
		return 0
	}
	return issuance.ChainHeight
}

// TotalIssuedAmount sums the amounts of all accepted issuances.
func (s *State) TotalIssuedAmount() int64 {
	var total int64
	for _, issuance := range s.Issuances {
		total += issuance.Amount
	}
	return total
}

// BtcTxOutput looks up a non-token output. Issuance candidates that did not
// get accepted in voting are covered by the dedicated index; plain BTC
// change outputs are found by type scan. The two paths are disjoint: the
// index only ever holds ISSUANCE_CANDIDATE_OUTPUT entries.
func (s *State) BtcTxOutput(key model.TxOutputKey) (model.TxOutput, bool) {
	if out, ok := s.NonBsqTxOutputs[key]; ok {
		return out, true
	}
	for _, out := range s.TxOutputsByType(model.BtcOutput) {
		if out.Key() == key {
			return out, true
		}
	}
	return model.TxOutput{}, false
}

// SpentInfo returns the spend back-reference of the output.
func (s *State) SpentInfo(key model.TxOutputKey) (model.SpentInfo, bool) {
	info, ok := s.SpentInfos[key]
	return info, ok
}

func (s *State) eachTx(fn func(model.Tx)) {
	for _, b := range s.Blocks {
		for _, tx := range b.Txs {
			fn(tx)
		}
	}
}

func (s *State) eachTxOutput(fn func(model.TxOutput)) {
	s.eachTx(func(tx model.Tx) {
		for _, out := range tx.Outputs {
			fn(out)
		}
	})
}
