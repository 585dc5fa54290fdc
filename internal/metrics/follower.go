package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/bsqledger-backend/internal/dao/model"
)

var (
	followerFetchTipTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bsqledger",
		Subsystem: "follower",
		Name:      "fetch_tip_total",
		Help:      "Count of attempts to fetch the node tip height.",
	}, []string{"network", "status"})

	followerFetchTipDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bsqledger",
		Subsystem: "follower",
		Name:      "fetch_tip_duration_seconds",
		Help:      "Duration of fetching the node tip height.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	followerProcessBlockTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bsqledger",
		Subsystem: "follower",
		Name:      "process_block_total",
		Help:      "Count of blocks run through the ingestion protocol.",
	}, []string{"network", "status"})

	followerProcessBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bsqledger",
		Subsystem: "follower",
		Name:      "process_block_duration_seconds",
		Help:      "Duration of processing one block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	followerReorgTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bsqledger",
		Subsystem: "follower",
		Name:      "reorg_total",
		Help:      "Count of detected chain reorganizations.",
	}, []string{"network"})

	followerReorgHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "bsqledger",
		Subsystem: "follower",
		Name:      "last_reorg_height",
		Help:      "Height at which the last reorg was detected.",
	}, []string{"network"})
)

// Follower tracks metrics for the chain follower pipeline.
type Follower struct {
	network model.Network
}

// NewFollower constructs a Follower metrics collector.
func NewFollower(network model.Network) *Follower {
	if network == "" {
		network = "unknown"
	}
	return &Follower{network: network}
}

// ObserveFetchTip records a tip fetch attempt outcome and duration.
func (m Follower) ObserveFetchTip(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	followerFetchTipTotal.WithLabelValues(string(m.network), status).Inc()
	followerFetchTipDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
}

// ObserveProcessBlock records processing of one block.
func (m Follower) ObserveProcessBlock(err error, height int32, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	followerProcessBlockTotal.WithLabelValues(string(m.network), status).Inc()
	followerProcessBlockDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
}

// ObserveReorg records a detected reorg at the given height.
func (m Follower) ObserveReorg(height int32) {
	followerReorgTotal.WithLabelValues(string(m.network)).Inc()
	followerReorgHeight.WithLabelValues(string(m.network)).Set(float64(height))
}
