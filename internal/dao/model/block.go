// Package model defines the domain model of the BSQ token ledger: blocks and
// transactions as classified by the parser, governance records and the
// parameter set.
package model

import "time"

// Network selects the base-chain network the ledger is tracked on.
type Network string

var (
	Testnet Network = "testnet"
	Mainnet Network = "mainnet"
	Regtest Network = "regtest"
)

// Block is a base-chain block reduced to the data the ledger needs. It is
// added with an empty Txs slice first and becomes immutable once the parser
// reported it complete.
type Block struct {
	Height            int32
	Hash              string
	PreviousBlockHash string
	Timestamp         time.Time
	Txs               []Tx
}
