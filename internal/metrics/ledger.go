package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/bsqledger-backend/internal/dao/model"
)

var (
	ledgerChainHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "bsqledger",
		Subsystem: "ledger",
		Name:      "chain_height",
		Help:      "Chain height the ledger has been told about.",
	}, []string{"network"})

	ledgerBlocksParsedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bsqledger",
		Subsystem: "ledger",
		Name:      "blocks_parsed_total",
		Help:      "Count of blocks that completed parsing.",
	}, []string{"network"})

	ledgerTxsParsedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bsqledger",
		Subsystem: "ledger",
		Name:      "txs_parsed_total",
		Help:      "Count of BSQ transactions recorded by the ledger.",
	}, []string{"network"})
)

// Ledger mirrors ledger ingestion progress into Prometheus. It subscribes to
// the ledger service as a listener.
type Ledger struct {
	network model.Network
}

// NewLedger constructs a Ledger metrics collector.
func NewLedger(network model.Network) *Ledger {
	if network == "" {
		network = "unknown"
	}
	return &Ledger{network: network}
}

// OnNewBlockHeight records the announced chain height.
func (m *Ledger) OnNewBlockHeight(height int32) {
	ledgerChainHeight.WithLabelValues(string(m.network)).Set(float64(height))
}

// OnEmptyBlockAdded is a no-op; the block is counted once parsing completes.
func (m *Ledger) OnEmptyBlockAdded(model.Block) {}

// OnParseTxsComplete counts the parsed block and its transactions.
func (m *Ledger) OnParseTxsComplete(block model.Block) {
	ledgerBlocksParsedTotal.WithLabelValues(string(m.network)).Inc()
	ledgerTxsParsedTotal.WithLabelValues(string(m.network)).Add(float64(len(block.Txs)))
}

// OnParseBlockChainComplete is a no-op.
func (m *Ledger) OnParseBlockChainComplete() {}
