package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/bsqledger-backend/internal/export/model"
)

// InsertTransactionOutputs stores output rows in ClickHouse.
func (r *Repository) InsertTransactionOutputs(ctx context.Context, outputs []model.TxOutputRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transaction_outputs", firstNetwork(outputs), err, start)
	}()

	if len(outputs) == 0 {
		return nil
	}

	const query = `
INSERT INTO bsq_transaction_outputs (
	network,
	txid,
	output_index,
	block_height,
	value,
	address,
	output_type,
	op_return_data
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transaction outputs batch: %w", err)
	}

	for _, output := range outputs {
		if err = batch.Append(
			string(output.Network),
			output.TxID,
			output.OutputIndex,
			output.BlockHeight,
			output.Value,
			output.Address,
			output.OutputType,
			output.OpReturnData,
		); err != nil {
			return fmt.Errorf("append transaction output: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transaction outputs: %w", err)
	}
	return nil
}
