// Package node follows the base chain through a bitcoind-compatible RPC
// node and drives the ledger ingestion protocol: for every new block it
// fires the height event, adds the empty block, hands the raw block to the
// BSQ parser and completes the block once parsing finished.
package node

import (
	"context"
	"time"

	"github.com/goodnatureofminers/bsqledger-backend/internal/dao/model"
	"github.com/goodnatureofminers/bsqledger-backend/internal/dao/state"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// RawBlock is a base-chain block before BSQ classification.
type RawBlock struct {
	Height            int32
	Hash              string
	PreviousBlockHash string
	Timestamp         time.Time
	Txs               []RawTx
}

// RawTx is an unclassified base-chain transaction.
type RawTx struct {
	ID      string
	Inputs  []RawTxInput
	Outputs []RawTxOutput
}

// RawTxInput references the output the input spends.
type RawTxInput struct {
	ConnectedTxID        string
	ConnectedOutputIndex int
}

// RawTxOutput is an unclassified output with the raw OP_RETURN payload
// already extracted when present.
type RawTxOutput struct {
	Index        int
	Value        int64
	Address      string
	OpReturnData []byte
}

type (
	// ChainSource delivers base-chain blocks.
	ChainSource interface {
		LatestHeight(ctx context.Context) (int32, error)
		FetchBlock(ctx context.Context, height int32) (RawBlock, error)
	}

	// BlockParser validates and classifies the txs of a raw block per the
	// BSQ consensus rules, mutating the unspent/issuance/spent-info indices
	// through the ledger service as it goes. The implementation is external
	// to this module's core.
	BlockParser interface {
		ParseBlock(ctx context.Context, raw RawBlock) (model.Block, error)
	}

	// LedgerService is the mutation and lookup surface the follower needs
	// from the ledger state service.
	LedgerService interface {
		OnNewBlockHeight(height int32)
		OnNewBlockWithEmptyTxs(block model.Block)
		OnParseBlockComplete(block model.Block)
		OnParseBlockChainComplete()
		ApplySnapshot(snapshot *state.State)
		BlockHeightOfLastBlock() int32
		LastBlock() (model.Block, bool)
		GenesisBlockHeight() int32
	}

	// SnapshotRestorer rolls the ledger back to the last persisted valid
	// snapshot after a reorg was detected.
	SnapshotRestorer interface {
		RestoreLatest() (*state.State, error)
	}

	// FollowerMetrics records follower pipeline observations.
	FollowerMetrics interface {
		ObserveFetchTip(err error, started time.Time)
		ObserveProcessBlock(err error, height int32, started time.Time)
		ObserveReorg(height int32)
	}
)
