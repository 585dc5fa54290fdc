// Package genesis provides the fixed genesis transaction of the BSQ ledger,
// the root of all token-output provenance.
package genesis

import "github.com/goodnatureofminers/bsqledger-backend/internal/dao/model"

// Info identifies the genesis transaction of a network. Consulted read-only.
type Info struct {
	TxID        string
	BlockHeight int32
	// TotalSupply is the full initial token supply in BSQ satoshis.
	TotalSupply int64
}

var infoByNetwork = map[model.Network]Info{
	model.Mainnet: {
		TxID:        "81855ad8681d0d86d1e91e00167939cb6694d2c422acd208a0072939487f6999",
		BlockHeight: 524_717,
		TotalSupply: 250_000_000,
	},
	model.Testnet: {
		TxID:        "09efcce6b74375b5e1f7e7de37d921d12c260192337ba9fb0f969010adb27d70",
		BlockHeight: 1_292_195,
		TotalSupply: 250_000_000,
	},
	model.Regtest: {
		TxID:        "30af0050040befd8af25068cc697e418e09c2d8ebd8d411d2240591b9ec203cf",
		BlockHeight: 111,
		TotalSupply: 250_000_000,
	},
}

// ForNetwork returns the genesis info of the network and false when the
// network is unknown.
func ForNetwork(network model.Network) (Info, bool) {
	info, ok := infoByNetwork[network]
	return info, ok
}
