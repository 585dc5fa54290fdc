package export

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	daomodel "github.com/goodnatureofminers/bsqledger-backend/internal/dao/model"
	"github.com/goodnatureofminers/bsqledger-backend/internal/dao/state"
	exportmodel "github.com/goodnatureofminers/bsqledger-backend/internal/export/model"
	"github.com/goodnatureofminers/bsqledger-backend/pkg/batcher"
)

// Config tunes the export batching.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	RPS           int
}

// DefaultConfig returns batching defaults suited to block-at-a-time ingestion.
func DefaultConfig() Config {
	return Config{
		FlushSize:     1000,
		FlushInterval: 5 * time.Second,
		RPS:           10,
	}
}

// Exporter subscribes to the ledger service and ships every parsed block to
// the warehouse through size/interval batchers.
type Exporter struct {
	logger  *zap.Logger
	network exportmodel.Network

	blocks  *batcher.Batcher[exportmodel.BlockRow]
	txs     *batcher.Batcher[exportmodel.TxRow]
	outputs *batcher.Batcher[exportmodel.TxOutputRow]

	// ctx is the lifecycle context handed to Start; listener callbacks have
	// no context of their own.
	ctx context.Context
}

// NewExporter wires an exporter over the repository.
func NewExporter(repo Repository, network exportmodel.Network, cfg Config, logger *zap.Logger) (*Exporter, error) {
	if repo == nil {
		return nil, errors.New("repository is not set")
	}
	if network == "" {
		return nil, errors.New("network is not set")
	}
	if logger == nil {
		return nil, errors.New("logger is not set")
	}
	if cfg.FlushSize <= 0 || cfg.FlushInterval <= 0 || cfg.RPS <= 0 {
		cfg = DefaultConfig()
	}

	logger = logger.Named("exporter").With(zap.String("network", string(network)))

	return &Exporter{
		logger:  logger,
		network: network,
		blocks:  batcher.New(logger.Named("blocks"), repo.InsertBlocks, cfg.FlushSize, cfg.FlushInterval, cfg.RPS),
		txs:     batcher.New(logger.Named("transactions"), repo.InsertTransactions, cfg.FlushSize, cfg.FlushInterval, cfg.RPS),
		outputs: batcher.New(logger.Named("transaction-outputs"), repo.InsertTransactionOutputs, cfg.FlushSize, cfg.FlushInterval, cfg.RPS),
	}, nil
}

var _ state.Listener = (*Exporter)(nil)

// Start launches the background flush loops. Must be called before the
// exporter is subscribed to the ledger service.
func (e *Exporter) Start(ctx context.Context) {
	e.ctx = ctx
	e.blocks.Start(ctx)
	e.txs.Start(ctx)
	e.outputs.Start(ctx)
}

// Stop flushes pending rows and stops the loops.
func (e *Exporter) Stop() {
	e.blocks.Stop()
	e.txs.Stop()
	e.outputs.Stop()
}

// OnNewBlockHeight implements state.Listener.
func (e *Exporter) OnNewBlockHeight(int32) {}

// OnEmptyBlockAdded implements state.Listener.
func (e *Exporter) OnEmptyBlockAdded(daomodel.Block) {}

// OnParseTxsComplete exports the completed block.
func (e *Exporter) OnParseTxsComplete(block daomodel.Block) {
	ctx := e.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if err := e.Export(ctx, block); err != nil {
		e.logger.Error("failed to enqueue block for export",
			zap.Int32("height", block.Height), zap.Error(err))
	}
}

// OnParseBlockChainComplete implements state.Listener.
func (e *Exporter) OnParseBlockChainComplete() {}

// Export enqueues one block with its transactions and outputs.
func (e *Exporter) Export(ctx context.Context, block daomodel.Block) error {
	blockRow, txRows, outputRows := blockRows(e.network, block)

	if err := e.blocks.Add(ctx, blockRow); err != nil {
		return err
	}
	for _, row := range txRows {
		if err := e.txs.Add(ctx, row); err != nil {
			return err
		}
	}
	for _, row := range outputRows {
		if err := e.outputs.Add(ctx, row); err != nil {
			return err
		}
	}
	return nil
}
