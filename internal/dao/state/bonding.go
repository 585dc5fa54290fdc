package state

import (
	"bytes"

	"github.com/goodnatureofminers/bsqledger-backend/internal/dao/consensus"
	"github.com/goodnatureofminers/bsqledger-backend/internal/dao/model"
)

// Bonding lifecycle of an output:
//   - lockup: type LOCKUP, funds committed, unspendable while active
//   - unlocking: type UNLOCK, lock time not yet elapsed, unspendable
//   - unlocked: type UNLOCK, lock time elapsed, spendable
//
// A lock time of 0 means the funds unlock in the same block as the UNLOCK
// tx; confirmed usage starts at 1.

// LockTime returns the bond lock time of the transaction.
func (s *State) LockTime(txID string) (int32, bool) {
	tx, ok := s.Tx(txID)
	if !ok {
		return 0, false
	}
	return tx.LockTime, true
}

// UnlockBlockHeight returns the recorded unlock height of the transaction.
// A zero value counts as unset.
func (s *State) UnlockBlockHeight(txID string) (int32, bool) {
	tx, ok := s.Tx(txID)
	if !ok || tx.UnlockBlockHeight == 0 {
		return 0, false
	}
	return tx.UnlockBlockHeight, true
}

// IsLockTimeOverForUnlockTxOutput evaluates the shared consensus predicate
// for an UNLOCK output against the current chain height. Calling it with any
// other output type is a caller bug and returns ErrNotUnlockOutput. A missing
// unlock height resolves to "not over", never to an error.
func (s *State) IsLockTimeOverForUnlockTxOutput(out model.TxOutput) (bool, error) {
	if out.Type != model.UnlockOutput {
		return false, ErrNotUnlockOutput
	}
	unlockBlockHeight, ok := s.UnlockBlockHeight(out.TxID)
	if !ok {
		return false, nil
	}
	return consensus.IsLockTimeOver(unlockBlockHeight, s.ChainHeight), nil
}

// IsUnlockTxOutputAndLockTimeNotOver reports whether the output is an UNLOCK
// output still inside its lock time.
func (s *State) IsUnlockTxOutputAndLockTimeNotOver(out model.TxOutput) bool {
	if out.Type != model.UnlockOutput {
		return false
	}
	over, err := s.IsLockTimeOverForUnlockTxOutput(out)
	return err == nil && !over
}

// IsLockupOutput reports whether the unspent output under key is of type
// LOCKUP.
func (s *State) IsLockupOutput(key model.TxOutputKey) bool {
	out, ok := s.UnspentTxOutput(key)
	return ok && out.Type == model.LockupOutput
}

// IsUnlockingOutput reports whether the unspent output under key is an
// UNLOCK output whose lock time has not elapsed.
func (s *State) IsUnlockingOutput(key model.TxOutputKey) bool {
	out, ok := s.UnspentTxOutput(key)
	return ok && s.IsUnlockTxOutputAndLockTimeNotOver(out)
}

// LockupTxOutput returns the first LOCKUP output of the transaction.
func (s *State) LockupTxOutput(txID string) (model.TxOutput, bool) {
	tx, ok := s.Tx(txID)
	if !ok {
		return model.TxOutput{}, false
	}
	for _, out := range tx.Outputs {
		if out.Type == model.LockupOutput {
			return out, true
		}
	}
	return model.TxOutput{}, false
}

// LockupHash recovers the bond identity hash of a bonded output. For a LOCKUP
// output the hash comes from the OP_RETURN payload of the last output of its
// own tx; for a still-unlocking UNLOCK output the first input is traced back
// to the original lockup tx and the hash extracted there. Any other case
// resolves to absent.
func (s *State) LockupHash(out model.TxOutput) ([]byte, bool) {
	var lockupTx model.Tx
	var found bool
	if out.Type == model.LockupOutput {
		lockupTx, found = s.Tx(out.TxID)
	} else if s.IsUnlockTxOutputAndLockTimeNotOver(out) {
		if unlockTx, ok := s.Tx(out.TxID); ok && len(unlockTx.Inputs) > 0 {
			lockupTx, found = s.Tx(unlockTx.Inputs[0].ConnectedTxOutputTxID)
		}
	}
	if !found {
		return nil, false
	}
	last, ok := lockupTx.LastOutput()
	if !ok || last.OpReturnData == nil {
		return nil, false
	}
	return consensus.HashFromOpReturnData(last.OpReturnData), true
}

// TotalAmountOfLockupTxOutputs sums all LOCKUP outputs regardless of their
// current sub-state.
func (s *State) TotalAmountOfLockupTxOutputs() int64 {
	var total int64
	for _, out := range s.TxOutputsByType(model.LockupOutput) {
		total += out.Value
	}
	return total
}

// TotalLockupAmount is the currently locked amount, excluding unlocking and
// unlocked funds.
func (s *State) TotalLockupAmount() int64 {
	return s.TotalAmountOfLockupTxOutputs() -
		s.TotalAmountOfUnlockingTxOutputs() -
		s.TotalAmountOfUnlockedTxOutputs()
}

// UnspentUnlockingTxOutputs returns the UNLOCK outputs that are unspent and
// still inside their lock time.
func (s *State) UnspentUnlockingTxOutputs() []model.TxOutput {
	var outputs []model.TxOutput
	for _, out := range s.TxOutputsByType(model.UnlockOutput) {
		if s.IsUnspent(out.Key()) && s.IsUnlockTxOutputAndLockTimeNotOver(out) {
			outputs = append(outputs, out)
		}
	}
	return outputs
}

// TotalAmountOfUnlockingTxOutputs sums the unspent unlocking outputs.
func (s *State) TotalAmountOfUnlockingTxOutputs() int64 {
	var total int64
	for _, out := range s.UnspentUnlockingTxOutputs() {
		total += out.Value
	}
	return total
}

// UnlockedTxOutputs returns the UNLOCK outputs whose lock time elapsed. The
// unspent state does not matter here.
func (s *State) UnlockedTxOutputs() []model.TxOutput {
	var outputs []model.TxOutput
	for _, out := range s.TxOutputsByType(model.UnlockOutput) {
		if over, err := s.IsLockTimeOverForUnlockTxOutput(out); err == nil && over {
			outputs = append(outputs, out)
		}
	}
	return outputs
}

// TotalAmountOfUnlockedTxOutputs sums the unlocked outputs.
func (s *State) TotalAmountOfUnlockedTxOutputs() int64 {
	var total int64
	for _, out := range s.UnlockedTxOutputs() {
		total += out.Value
	}
	return total
}

// ConfiscateBond adds every currently unspent bonded output matching the
// bond hash to the confiscated index. Confiscation is overlay metadata: the
// outputs stay in the unspent index and consumers must additionally check
// the confiscated index. An empty hash is ignored so unset bond hashes can
// never match unrelated outputs.
func (s *State) ConfiscateBond(confiscateBond model.ConfiscateBond) {
	if len(confiscateBond.Hash) == 0 {
		return
	}
	s.eachTxOutput(func(out model.TxOutput) {
		if !s.IsUnspent(out.Key()) {
			return
		}
		if out.Type != model.LockupOutput && !s.IsUnlockTxOutputAndLockTimeNotOver(out) {
			return
		}
		if hash, ok := s.LockupHash(out); ok && bytes.Equal(hash, confiscateBond.Hash) {
			s.applyConfiscateBond(out)
		}
	})
}

func (s *State) applyConfiscateBond(out model.TxOutput) {
	s.ConfiscatedTxOutputs[out.Key()] = cloneTxOutput(out)
}

// IsConfiscated reports whether the output has been confiscated.
func (s *State) IsConfiscated(key model.TxOutputKey) bool {
	_, ok := s.ConfiscatedTxOutputs[key]
	return ok
}
