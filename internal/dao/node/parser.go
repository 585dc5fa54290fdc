package node

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/bsqledger-backend/internal/dao/genesis"
	"github.com/goodnatureofminers/bsqledger-backend/internal/dao/model"
)

// UnspentWriter adds outputs to the ledger's unspent index at parse time.
type UnspentWriter interface {
	AddUnspentTxOutput(out model.TxOutput)
}

// GenesisParser is the minimal BlockParser. It detects the genesis tx,
// verifies the issued supply and records the genesis outputs as unspent.
// Every other tx stays a plain base-chain tx and never enters the ledger
// block. Full BSQ classification replaces it by plugging another
// BlockParser into the follower.
type GenesisParser struct {
	genesis genesis.Info
	writer  UnspentWriter
}

func NewGenesisParser(info genesis.Info, writer UnspentWriter) (*GenesisParser, error) {
	if writer == nil {
		return nil, fmt.Errorf("unspent writer is required")
	}

	return &GenesisParser{genesis: info, writer: writer}, nil
}

func (p *GenesisParser) ParseBlock(_ context.Context, raw RawBlock) (model.Block, error) {
	block := model.Block{
		Height:            raw.Height,
		Hash:              raw.Hash,
		PreviousBlockHash: raw.PreviousBlockHash,
		Timestamp:         raw.Timestamp,
	}
	if raw.Height != p.genesis.BlockHeight {
		return block, nil
	}

	for _, rawTx := range raw.Txs {
		if rawTx.ID != p.genesis.TxID {
			continue
		}

		tx, err := p.parseGenesisTx(rawTx, raw.Height)
		if err != nil {
			return model.Block{}, err
		}

		for _, out := range tx.Outputs {
			p.writer.AddUnspentTxOutput(out)
		}
		block.Txs = append(block.Txs, tx)
	}

	return block, nil
}

func (p *GenesisParser) parseGenesisTx(rawTx RawTx, height int32) (model.Tx, error) {
	tx := model.Tx{
		ID:          rawTx.ID,
		BlockHeight: height,
		Type:        model.TxTypeGenesis,
	}
	for _, in := range rawTx.Inputs {
		tx.Inputs = append(tx.Inputs, model.TxInput{
			ConnectedTxOutputTxID:  in.ConnectedTxID,
			ConnectedTxOutputIndex: in.ConnectedOutputIndex,
		})
	}

	var issued int64
	for _, out := range rawTx.Outputs {
		issued += out.Value
		tx.Outputs = append(tx.Outputs, model.TxOutput{
			TxID:        rawTx.ID,
			Index:       out.Index,
			Value:       out.Value,
			Address:     out.Address,
			BlockHeight: height,
			Type:        model.GenesisOutput,
		})
	}
	if issued != p.genesis.TotalSupply {
		return model.Tx{}, fmt.Errorf("genesis tx %s issues %d, want total supply %d",
			rawTx.ID, issued, p.genesis.TotalSupply)
	}

	return tx, nil
}
