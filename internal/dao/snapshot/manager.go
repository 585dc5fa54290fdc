package snapshot

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/bsqledger-backend/internal/dao/model"
	"github.com/goodnatureofminers/bsqledger-backend/internal/dao/state"
)

// DefaultGrid is the block interval between snapshot candidates.
const DefaultGrid = 10

// DefaultKeep is how many persisted snapshots survive pruning.
const DefaultKeep = 20

// LedgerSource exposes the ledger reads the manager needs.
type LedgerSource interface {
	Snapshot() *state.State
	GenesisBlockHeight() int32
}

// SnapshotStore persists and restores ledger snapshots.
type SnapshotStore interface {
	Put(snap *state.State) error
	Latest() (*state.State, error)
	Delete(height int32) error
	Prune(keep int) error
}

// Manager captures ledger snapshots on a fixed block grid. At each grid
// height it persists the candidate taken at the previous grid height, so the
// persisted snapshot always trails the chain tip by at least one grid
// interval and a reorg shallower than that restores to a height behind the
// fork point.
//
// The manager subscribes to the ledger service as a listener and is driven
// by the sequential ingestion pipeline, so it needs no locking of its own.
type Manager struct {
	logger    *zap.Logger
	store     SnapshotStore
	source    LedgerSource
	grid      int32
	keep      int
	candidate *state.State

	// lastRestored is the height of the snapshot handed out by the previous
	// RestoreLatest, zero once ingestion persisted past it.
	lastRestored int32
}

// NewManager wires a snapshot manager. Grid and keep fall back to defaults
// when non-positive.
func NewManager(store SnapshotStore, source LedgerSource, grid int32, keep int, logger *zap.Logger) (*Manager, error) {
	if store == nil {
		return nil, errors.New("snapshot store is not set")
	}
	if source == nil {
		return nil, errors.New("ledger source is not set")
	}
	if logger == nil {
		return nil, errors.New("logger is not set")
	}
	if grid <= 0 {
		grid = DefaultGrid
	}
	if keep <= 0 {
		keep = DefaultKeep
	}
	return &Manager{
		logger: logger.Named("snapshot-manager"),
		store:  store,
		source: source,
		grid:   grid,
		keep:   keep,
	}, nil
}

var _ state.Listener = (*Manager)(nil)

// OnNewBlockHeight implements state.Listener.
func (m *Manager) OnNewBlockHeight(int32) {}

// OnEmptyBlockAdded implements state.Listener.
func (m *Manager) OnEmptyBlockAdded(model.Block) {}

// OnParseTxsComplete persists the pending candidate and captures a fresh one
// whenever the block height lands on the snapshot grid.
func (m *Manager) OnParseTxsComplete(block model.Block) {
	if !m.isSnapshotHeight(block.Height) {
		return
	}
	if m.candidate != nil {
		if err := m.store.Put(m.candidate); err != nil {
			m.logger.Error("failed to persist snapshot",
				zap.Int32("snapshot_height", m.candidate.ChainHeight), zap.Error(err))
		} else {
			m.logger.Info("persisted snapshot",
				zap.Int32("snapshot_height", m.candidate.ChainHeight),
				zap.Int32("chain_height", block.Height))
			if err := m.store.Prune(m.keep); err != nil {
				m.logger.Warn("failed to prune snapshots", zap.Error(err))
			}
			// Persisting again proves the last restore cleared the fork.
			m.lastRestored = 0
		}
	}
	m.candidate = m.source.Snapshot()
}

// OnParseBlockChainComplete implements state.Listener.
func (m *Manager) OnParseBlockChainComplete() {}

// RestoreLatest loads the most recent persisted snapshot. When the newest
// snapshot is the one already handed out by the previous restore and
// ingestion never persisted past it, the fork sits at or below its height;
// that snapshot is dropped and the next older one is returned so repeated
// rollbacks walk down the stored heights instead of looping on one.
func (m *Manager) RestoreLatest() (*state.State, error) {
	snap, err := m.store.Latest()
	if err != nil {
		return nil, fmt.Errorf("restore latest snapshot: %w", err)
	}
	if m.lastRestored != 0 && snap.ChainHeight == m.lastRestored {
		if err := m.store.Delete(snap.ChainHeight); err != nil {
			return nil, fmt.Errorf("drop snapshot at height %d: %w", snap.ChainHeight, err)
		}
		m.logger.Warn("snapshot did not clear the fork, falling back to an older one",
			zap.Int32("dropped_height", snap.ChainHeight))
		snap, err = m.store.Latest()
		if err != nil {
			return nil, fmt.Errorf("restore older snapshot: %w", err)
		}
	}
	m.lastRestored = snap.ChainHeight
	// The stale candidate must not be persisted after a rollback.
	m.candidate = nil
	return snap, nil
}

func (m *Manager) isSnapshotHeight(height int32) bool {
	genesis := m.source.GenesisBlockHeight()
	return height >= genesis && (height-genesis)%m.grid == 0
}
