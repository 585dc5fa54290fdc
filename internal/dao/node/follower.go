package node

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/bsqledger-backend/internal/clock"
	"github.com/goodnatureofminers/bsqledger-backend/internal/dao/model"
	"go.uber.org/zap"
)

const (
	pollInterval    = 10 * time.Second
	backoffInterval = 30 * time.Second
)

// ErrReorgDetected is returned from a run iteration when the fetched block
// does not connect to the last stored block. The iteration restores the
// latest snapshot and re-parses on the next run.
var ErrReorgDetected = errors.New("chain reorganization detected")

// FollowerService keeps the ledger in sync with the base chain tip. It is
// the single sequential writer: all ingestion events originate here, in
// strict per-block order.
type FollowerService struct {
	logger   *zap.Logger
	source   ChainSource
	parser   BlockParser
	ledger   LedgerService
	restorer SnapshotRestorer
	metrics  FollowerMetrics
	sleep    func(context.Context, time.Duration) error
}

// NewFollowerService builds a FollowerService with its dependencies.
func NewFollowerService(
	source ChainSource,
	parser BlockParser,
	ledger LedgerService,
	restorer SnapshotRestorer,
	metrics FollowerMetrics,
	logger *zap.Logger,
) (*FollowerService, error) {
	if source == nil {
		return nil, errors.New("chain source is required")
	}
	if parser == nil {
		return nil, errors.New("block parser is required")
	}
	if ledger == nil {
		return nil, errors.New("ledger service is required")
	}
	if metrics == nil {
		return nil, errors.New("follower metrics is required")
	}

	return &FollowerService{
		logger:   logger,
		source:   source,
		parser:   parser,
		ledger:   ledger,
		restorer: restorer,
		metrics:  metrics,
		sleep:    clock.SleepWithContext,
	}, nil
}

// Run follows the chain until the context is canceled.
func (s *FollowerService) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.run(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			s.logger.Warn("run iteration failed, backing off",
				zap.Error(err), zap.Duration("sleep", backoffInterval))
			if sleepErr := s.sleep(ctx, backoffInterval); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		if err := s.sleep(ctx, pollInterval); err != nil {
			return err
		}
	}
}

func (s *FollowerService) run(ctx context.Context) error {
	started := time.Now()
	tip, err := s.source.LatestHeight(ctx)
	s.metrics.ObserveFetchTip(err, started)
	if err != nil {
		return fmt.Errorf("fetch chain tip: %w", err)
	}

	from := s.ledger.BlockHeightOfLastBlock() + 1
	if genesisHeight := s.ledger.GenesisBlockHeight(); from < genesisHeight {
		from = genesisHeight
	}
	if from > tip {
		s.logger.Debug("ledger is at chain tip", zap.Int32("tip", tip))
		return nil
	}

	s.logger.Info("processing blocks", zap.Int32("from", from), zap.Int32("to", tip))
	for height := from; height <= tip; height++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		started = time.Now()
		err := s.processBlock(ctx, height)
		s.metrics.ObserveProcessBlock(err, height, started)
		if err != nil {
			if errors.Is(err, ErrReorgDetected) {
				return s.recoverFromReorg(height)
			}
			return err
		}
	}

	s.ledger.OnParseBlockChainComplete()
	return nil
}

// processBlock runs the per-block ingestion sequence: height event, empty
// block, parse, parse complete.
func (s *FollowerService) processBlock(ctx context.Context, height int32) error {
	raw, err := s.source.FetchBlock(ctx, height)
	if err != nil {
		return fmt.Errorf("fetch block %d: %w", height, err)
	}

	if last, ok := s.ledger.LastBlock(); ok && raw.PreviousBlockHash != last.Hash {
		return fmt.Errorf("block %d previous hash %s does not connect to %s: %w",
			height, raw.PreviousBlockHash, last.Hash, ErrReorgDetected)
	}

	s.ledger.OnNewBlockHeight(height)
	s.ledger.OnNewBlockWithEmptyTxs(model.Block{
		Height:            raw.Height,
		Hash:              raw.Hash,
		PreviousBlockHash: raw.PreviousBlockHash,
		Timestamp:         raw.Timestamp,
	})

	block, err := s.parser.ParseBlock(ctx, raw)
	if err != nil {
		return fmt.Errorf("parse block %d: %w", height, err)
	}
	s.ledger.OnParseBlockComplete(block)
	return nil
}

func (s *FollowerService) recoverFromReorg(height int32) error {
	s.metrics.ObserveReorg(height)
	s.logger.Warn("reorg detected, restoring latest snapshot", zap.Int32("height", height))

	if s.restorer == nil {
		return fmt.Errorf("reorg at height %d with no snapshot restorer configured", height)
	}
	snapshot, err := s.restorer.RestoreLatest()
	if err != nil {
		return fmt.Errorf("restore snapshot: %w", err)
	}
	s.ledger.ApplySnapshot(snapshot)
	return nil
}
