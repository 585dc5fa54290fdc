package export

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	daomodel "github.com/goodnatureofminers/bsqledger-backend/internal/dao/model"
	exportmodel "github.com/goodnatureofminers/bsqledger-backend/internal/export/model"
	"github.com/goodnatureofminers/bsqledger-backend/pkg/workerpool"
)

// Backfill exports every ledger block above the warehouse's max exported
// height. Blocks are inserted one per task so a failure cancels the pool
// without losing whole-range progress.
func Backfill(ctx context.Context, ledger Ledger, repo Repository, network exportmodel.Network, workerCount int, logger *zap.Logger) error {
	if ledger == nil {
		return fmt.Errorf("ledger is not set")
	}
	if repo == nil {
		return fmt.Errorf("repository is not set")
	}
	if logger == nil {
		return fmt.Errorf("logger is not set")
	}
	if workerCount <= 0 {
		workerCount = 4
	}

	logger = logger.Named("backfill").With(zap.String("network", string(network)))

	exportedHeight, err := repo.MaxBlockHeight(ctx, network)
	if err != nil {
		return fmt.Errorf("max exported block height: %w", err)
	}

	blocks := ledger.BlocksFromHeight(exportedHeight + 1)
	if len(blocks) == 0 {
		logger.Info("warehouse is up to date", zap.Int32("exported_height", exportedHeight))
		return nil
	}

	logger.Info("backfilling blocks",
		zap.Int32("exported_height", exportedHeight),
		zap.Int("block_count", len(blocks)))

	err = workerpool.Process(ctx, workerCount, blocks, func(ctx context.Context, block daomodel.Block) error {
		return exportBlock(ctx, repo, network, block)
	}, func() {
		logger.Warn("backfill canceled")
	})
	if err != nil {
		return fmt.Errorf("backfill blocks: %w", err)
	}

	logger.Info("backfill complete", zap.Int32("tip_height", ledger.BlockHeightOfLastBlock()))
	return nil
}

func exportBlock(ctx context.Context, repo Repository, network exportmodel.Network, block daomodel.Block) error {
	blockRow, txRows, outputRows := blockRows(network, block)

	if err := repo.InsertBlocks(ctx, []exportmodel.BlockRow{blockRow}); err != nil {
		return fmt.Errorf("insert block %d: %w", block.Height, err)
	}
	if err := repo.InsertTransactions(ctx, txRows); err != nil {
		return fmt.Errorf("insert transactions of block %d: %w", block.Height, err)
	}
	if err := repo.InsertTransactionOutputs(ctx, outputRows); err != nil {
		return fmt.Errorf("insert transaction outputs of block %d: %w", block.Height, err)
	}
	return nil
}
