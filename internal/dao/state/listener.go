package state

import "github.com/goodnatureofminers/bsqledger-backend/internal/dao/model"

// Listener receives the four ingestion events, strictly in order, one at a
// time, never concurrently for the same event. Subscribing or unsubscribing
// during a live dispatch is allowed and takes effect for the next event.
type Listener interface {
	// OnNewBlockHeight fires before any tx data exists for the new height,
	// so height-dependent computations can prepare.
	OnNewBlockHeight(height int32)
	// OnEmptyBlockAdded fires when the block was appended, txs still empty.
	OnEmptyBlockAdded(block model.Block)
	// OnParseTxsComplete fires once the block's txs are parsed and all
	// indices reflect them; the block state is final from here on.
	OnParseTxsComplete(block model.Block)
	// OnParseBlockChainComplete fires once after a batch of pending blocks
	// finished parsing; cumulative views should recompute now.
	OnParseBlockChainComplete()
}
