package node

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/bsqledger-backend/pkg/safe"
)

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// RPCSource implements ChainSource on top of a bitcoind-compatible RPC node,
// with metrics instrumentation on every call.
type RPCSource struct {
	client     *rpcclient.Client
	rpcMetrics RPCMetrics
}

// NewRPCSource constructs an instrumented chain source.
func NewRPCSource(client *rpcclient.Client, rpcMetrics RPCMetrics) *RPCSource {
	return &RPCSource{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// LatestHeight returns the current tip height of the node.
func (r *RPCSource) LatestHeight(ctx context.Context) (height int32, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_count", err, started)
	}()
	if err = ctx.Err(); err != nil {
		return 0, err
	}

	count, err := r.client.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("get block count: %w", err)
	}
	return safe.Int32(count)
}

// FetchBlock fetches the block at height and converts it to a RawBlock.
func (r *RPCSource) FetchBlock(ctx context.Context, height int32) (raw RawBlock, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("fetch_block", err, started)
	}()
	if err = ctx.Err(); err != nil {
		return RawBlock{}, err
	}

	hash, err := r.getBlockHash(int64(height))
	if err != nil {
		return RawBlock{}, fmt.Errorf("get block hash %d: %w", height, err)
	}
	verbose, err := r.getBlockVerboseTx(hash)
	if err != nil {
		return RawBlock{}, fmt.Errorf("get block %s: %w", hash, err)
	}
	raw, err = BuildRawBlock(*verbose)
	if err != nil {
		return RawBlock{}, fmt.Errorf("convert block %d: %w", height, err)
	}
	return raw, nil
}

func (r *RPCSource) getBlockHash(blockHeight int64) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_hash", err, started)
	}()
	return r.client.GetBlockHash(blockHeight)
}

func (r *RPCSource) getBlockVerboseTx(blockHash *chainhash.Hash) (res *btcjson.GetBlockVerboseTxResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_verbose_tx", err, started)
	}()
	return r.client.GetBlockVerboseTx(blockHash)
}
