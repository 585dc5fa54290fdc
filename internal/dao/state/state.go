// Package state maintains the authoritative local view of the BSQ token
// ledger: which outputs count as spendable tokens, bond lockup status,
// confiscations, granted issuance and height-scoped governance parameters.
// Every query here is a consensus rule; downstream modules must all observe
// an identical, deterministic view.
package state

import "github.com/goodnatureofminers/bsqledger-backend/internal/dao/model"

// State is the complete chain-derived ledger state. It is the unit of
// snapshotting: a Clone is fully independent of the live instance, and
// applying a snapshot swaps the whole aggregate at once.
//
// Fields are exported for snapshot serialization; all access outside this
// package goes through the Service.
type State struct {
	ChainHeight int32
	Blocks      []model.Block
	Cycles      []model.Cycle

	UnspentTxOutputs     map[model.TxOutputKey]model.TxOutput
	ConfiscatedTxOutputs map[model.TxOutputKey]model.TxOutput
	// NonBsqTxOutputs holds issuance candidates that were not accepted in
	// voting and therefore stay BTC-denominated.
	NonBsqTxOutputs map[model.TxOutputKey]model.TxOutput
	Issuances       map[string]model.Issuance
	SpentInfos      map[model.TxOutputKey]model.SpentInfo
	ParamChanges    []model.ParamChange
}

// NewState returns an empty ledger state.
func NewState() *State {
	return &State{
		UnspentTxOutputs:     make(map[model.TxOutputKey]model.TxOutput),
		ConfiscatedTxOutputs: make(map[model.TxOutputKey]model.TxOutput),
		NonBsqTxOutputs:      make(map[model.TxOutputKey]model.TxOutput),
		Issuances:            make(map[string]model.Issuance),
		SpentInfos:           make(map[model.TxOutputKey]model.SpentInfo),
	}
}

// Clone returns a deep copy sharing no mutable structure with the receiver,
// so concurrent mutation of the live state cannot corrupt an in-flight clone.
func (s *State) Clone() *State {
	c := &State{
		ChainHeight:          s.ChainHeight,
		Blocks:               make([]model.Block, len(s.Blocks)),
		Cycles:               append([]model.Cycle(nil), s.Cycles...),
		UnspentTxOutputs:     cloneOutputMap(s.UnspentTxOutputs),
		ConfiscatedTxOutputs: cloneOutputMap(s.ConfiscatedTxOutputs),
		NonBsqTxOutputs:      cloneOutputMap(s.NonBsqTxOutputs),
		Issuances:            make(map[string]model.Issuance, len(s.Issuances)),
		SpentInfos:           make(map[model.TxOutputKey]model.SpentInfo, len(s.SpentInfos)),
		ParamChanges:         append([]model.ParamChange(nil), s.ParamChanges...),
	}
	for i, b := range s.Blocks {
		c.Blocks[i] = cloneBlock(b)
	}
	for id, issuance := range s.Issuances {
		c.Issuances[id] = issuance
	}
	for key, info := range s.SpentInfos {
		c.SpentInfos[key] = info
	}
	return c
}

func cloneBlock(b model.Block) model.Block {
	txs := make([]model.Tx, len(b.Txs))
	for i, tx := range b.Txs {
		txs[i] = cloneTx(tx)
	}
	b.Txs = txs
	return b
}

func cloneTx(tx model.Tx) model.Tx {
	tx.Inputs = append([]model.TxInput(nil), tx.Inputs...)
	outputs := make([]model.TxOutput, len(tx.Outputs))
	for i, out := range tx.Outputs {
		outputs[i] = cloneTxOutput(out)
	}
	tx.Outputs = outputs
	return tx
}

func cloneTxOutput(out model.TxOutput) model.TxOutput {
	if out.OpReturnData != nil {
		out.OpReturnData = append([]byte(nil), out.OpReturnData...)
	}
	return out
}

func cloneOutputMap(m map[model.TxOutputKey]model.TxOutput) map[model.TxOutputKey]model.TxOutput {
	c := make(map[model.TxOutputKey]model.TxOutput, len(m))
	for key, out := range m {
		c[key] = cloneTxOutput(out)
	}
	return c
}
