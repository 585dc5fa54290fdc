package state

import "github.com/goodnatureofminers/bsqledger-backend/internal/dao/model"

// The two classification tables below are the most consensus-critical code
// in the ledger. A single divergent arm forks the locally computed token
// ledger. Keep the switches exhaustive over model.TxOutputType and keep the
// default arm returning false.

// IsBsqTxOutputType reports whether the output counts as a token output.
// Issuance candidates count only once their tx got accepted in voting.
func (s *State) IsBsqTxOutputType(out model.TxOutput) bool {
	switch out.Type {
	case model.UndefinedOutput:
		return false
	case model.GenesisOutput,
		model.BsqOutput:
		return true
	case model.BtcOutput:
		return false
	case model.ProposalOpReturnOutput,
		model.CompReqOpReturnOutput:
		return true
	case model.IssuanceCandidateOutput:
		return s.IsIssuanceTx(out.TxID)
	case model.BlindVoteLockStakeOutput,
		model.BlindVoteOpReturnOutput,
		model.VoteRevealUnlockStakeOutput,
		model.VoteRevealOpReturnOutput,
		model.LockupOutput,
		model.LockupOpReturnOutput,
		model.UnlockOutput:
		return true
	case model.InvalidOutput:
		return false
	default:
		return false
	}
}

// IsTxOutputSpendable reports whether the output identified by key can be
// spent as BSQ right now. Outputs not in the unspent index are never
// spendable. UNLOCK outputs become spendable once their lock time elapsed.
func (s *State) IsTxOutputSpendable(key model.TxOutputKey) bool {
	out, ok := s.UnspentTxOutput(key)
	if !ok {
		return false
	}

	switch out.Type {
	case model.UndefinedOutput:
		return false
	case model.GenesisOutput,
		model.BsqOutput:
		return true
	case model.BtcOutput:
		return false
	case model.ProposalOpReturnOutput,
		model.CompReqOpReturnOutput,
		model.IssuanceCandidateOutput:
		return true
	case model.BlindVoteLockStakeOutput:
		return false
	case model.BlindVoteOpReturnOutput,
		model.VoteRevealUnlockStakeOutput,
		model.VoteRevealOpReturnOutput:
		return true
	case model.LockupOutput:
		return false
	case model.LockupOpReturnOutput:
		return true
	case model.UnlockOutput:
		over, err := s.IsLockTimeOverForUnlockTxOutput(out)
		return err == nil && over
	case model.InvalidOutput:
		return false
	default:
		return false
	}
}
