// Package model defines the flat row shapes exported to ClickHouse for the
// BSQ explorer. Rows are append-only projections of the in-memory ledger;
// mutable facts such as spentness are recomputed from the ledger, never
// exported.
package model

import (
	"time"

	daomodel "github.com/goodnatureofminers/bsqledger-backend/internal/dao/model"
)

// Network aliases the ledger network tag so every row carries it.
type Network = daomodel.Network

// BlockRow is one row of bsq_blocks.
type BlockRow struct {
	Network           Network
	Height            int32
	Hash              string
	PreviousBlockHash string
	Timestamp         time.Time
	TxCount           uint32
}

// TxRow is one row of bsq_transactions.
type TxRow struct {
	Network           Network
	TxID              string
	BlockHeight       int32
	Timestamp         time.Time
	TxType            string
	BurntFee          int64
	LockTime          int32
	UnlockBlockHeight int32
	InputCount        uint32
	OutputCount       uint32
}

// TxOutputRow is one row of bsq_transaction_outputs.
type TxOutputRow struct {
	Network      Network
	TxID         string
	OutputIndex  uint32
	BlockHeight  int32
	Value        int64
	Address      string
	OutputType   string
	OpReturnData string
}
