package export

import (
	"encoding/hex"

	"github.com/goodnatureofminers/bsqledger-backend/internal/dao/model"
	exportmodel "github.com/goodnatureofminers/bsqledger-backend/internal/export/model"
)

// blockRows flattens a parsed ledger block into warehouse rows.
func blockRows(network exportmodel.Network, block model.Block) (exportmodel.BlockRow, []exportmodel.TxRow, []exportmodel.TxOutputRow) {
	blockRow := exportmodel.BlockRow{
		Network:           network,
		Height:            block.Height,
		Hash:              block.Hash,
		PreviousBlockHash: block.PreviousBlockHash,
		Timestamp:         block.Timestamp,
		TxCount:           uint32(len(block.Txs)),
	}

	txRows := make([]exportmodel.TxRow, 0, len(block.Txs))
	var outputRows []exportmodel.TxOutputRow
	for _, tx := range block.Txs {
		txRows = append(txRows, exportmodel.TxRow{
			Network:           network,
			TxID:              tx.ID,
			BlockHeight:       tx.BlockHeight,
			Timestamp:         block.Timestamp,
			TxType:            tx.Type.String(),
			BurntFee:          tx.BurntFee,
			LockTime:          tx.LockTime,
			UnlockBlockHeight: tx.UnlockBlockHeight,
			InputCount:        uint32(len(tx.Inputs)),
			OutputCount:       uint32(len(tx.Outputs)),
		})

		for _, output := range tx.Outputs {
			outputRows = append(outputRows, exportmodel.TxOutputRow{
				Network:      network,
				TxID:         output.TxID,
				OutputIndex:  uint32(output.Index),
				BlockHeight:  output.BlockHeight,
				Value:        output.Value,
				Address:      output.Address,
				OutputType:   output.Type.String(),
				OpReturnData: hex.EncodeToString(output.OpReturnData),
			})
		}
	}

	return blockRow, txRows, outputRows
}
