// Package export projects the in-memory BSQ ledger into ClickHouse rows for
// the explorer. A listener exports blocks as they finish parsing; a backfill
// run exports the historical range the warehouse is missing.
package export

import (
	"context"

	daomodel "github.com/goodnatureofminers/bsqledger-backend/internal/dao/model"
	"github.com/goodnatureofminers/bsqledger-backend/internal/export/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertBlocks(ctx context.Context, blocks []model.BlockRow) error
		InsertTransactions(ctx context.Context, txs []model.TxRow) error
		InsertTransactionOutputs(ctx context.Context, outputs []model.TxOutputRow) error
		MaxBlockHeight(ctx context.Context, network model.Network) (int32, error)
	}
	Ledger interface {
		BlockHeightOfLastBlock() int32
		BlocksFromHeight(fromHeight int32) []daomodel.Block
	}
)
