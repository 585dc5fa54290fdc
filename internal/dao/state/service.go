package state

import (
	"reflect"
	"sync"
	"time"

	"github.com/goodnatureofminers/bsqledger-backend/internal/dao/genesis"
	"github.com/goodnatureofminers/bsqledger-backend/internal/dao/model"
	"go.uber.org/zap"
)

// Service is the single entry point to the ledger state. A single sequential
// ingestion pipeline drives the mutation commands while arbitrary readers
// issue queries concurrently; a reader/writer lock over the state aggregate
// serializes them. Snapshot capture and application are each atomic as a
// whole.
type Service struct {
	logger  *zap.Logger
	genesis genesis.Info

	mu    sync.RWMutex
	state *State

	listenersMu sync.Mutex
	listeners   []Listener
}

// NewService builds a Service starting from an empty ledger state.
func NewService(genesisInfo genesis.Info, logger *zap.Logger) *Service {
	return &Service{
		logger:  logger,
		genesis: genesisInfo,
		state:   NewState(),
	}
}

// Start initializes the chain height of a fresh ledger to the genesis block
// height. A state that already progressed past genesis, such as one restored
// from a snapshot, keeps its height: only ApplySnapshot moves the chain
// height backward.
func (s *Service) Start() {
	s.mu.Lock()
	if s.state.ChainHeight < s.genesis.BlockHeight {
		s.state.ChainHeight = s.genesis.BlockHeight
	}
	s.mu.Unlock()
}

// AddListener subscribes a listener to the ingestion events.
func (s *Service) AddListener(l Listener) {
	s.listenersMu.Lock()
	s.listeners = append(s.listeners, l)
	s.listenersMu.Unlock()
}

// RemoveListener unsubscribes the listener registered as l. Listeners are
// matched by interface identity, so subscribe and unsubscribe with the same
// value, typically a pointer.
func (s *Service) RemoveListener(l Listener) {
	s.listenersMu.Lock()
	for i, cur := range s.listeners {
		if sameListener(cur, l) {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			break
		}
	}
	s.listenersMu.Unlock()
}

// sameListener compares two listeners without panicking on dynamic types
// that are not comparable, which simply never match.
func sameListener(a, b Listener) bool {
	ta := reflect.TypeOf(a)
	if ta == nil || ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// snapshotListeners returns a stable copy of the subscriber list so
// subscribe/unsubscribe during a live dispatch cannot disturb the iteration.
func (s *Service) snapshotListeners() []Listener {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	return append([]Listener(nil), s.listeners...)
}

///////////////////////////////////////////////////////////////////////////
// Parser events
///////////////////////////////////////////////////////////////////////////

// OnNewBlockHeight records the new chain height. First event of the
// per-block sequence; no tx data exists for the height yet.
func (s *Service) OnNewBlockHeight(height int32) {
	s.mu.Lock()
	s.state.ChainHeight = height
	s.mu.Unlock()

	for _, l := range s.snapshotListeners() {
		l.OnNewBlockHeight(height)
	}
}

// OnNewBlockWithEmptyTxs appends the block, txs not populated yet. Second
// event of the per-block sequence.
func (s *Service) OnNewBlockWithEmptyTxs(block model.Block) {
	block.Txs = nil
	s.mu.Lock()
	s.state.Blocks = append(s.state.Blocks, block)
	s.mu.Unlock()

	for _, l := range s.snapshotListeners() {
		l.OnEmptyBlockAdded(block)
	}

	s.logger.Info("new block added", zap.Int32("height", block.Height))
}

// OnParseBlockComplete stores the parsed txs of the block and notifies that
// the block's state is final. Third event of the per-block sequence.
func (s *Service) OnParseBlockComplete(block model.Block) {
	block = cloneBlock(block)
	s.mu.Lock()
	for i := range s.state.Blocks {
		if s.state.Blocks[i].Height == block.Height {
			s.state.Blocks[i].Txs = block.Txs
			break
		}
	}
	s.mu.Unlock()

	for _, l := range s.snapshotListeners() {
		l.OnParseTxsComplete(block)
	}
}

// OnParseBlockChainComplete fires once after a batch of pending blocks has
// fully completed parsing.
func (s *Service) OnParseBlockChainComplete() {
	for _, l := range s.snapshotListeners() {
		l.OnParseBlockChainComplete()
	}
}

///////////////////////////////////////////////////////////////////////////
// Snapshot
///////////////////////////////////////////////////////////////////////////

// Snapshot captures a deep copy of the complete ledger state.
func (s *Service) Snapshot() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// ApplySnapshot replaces the entire ledger state with the snapshot in one
// indivisible swap. The parser must call this with a previously captured
// valid snapshot before re-parsing after a reorg; no reader ever observes a
// partially replaced state.
func (s *Service) ApplySnapshot(snapshot *State) {
	clone := snapshot.Clone()
	s.mu.Lock()
	s.state = clone
	s.mu.Unlock()

	s.logger.Info("snapshot applied", zap.Int32("chainHeight", clone.ChainHeight))
}

///////////////////////////////////////////////////////////////////////////
// Mutation commands issued by the parser and governance
///////////////////////////////////////////////////////////////////////////

// AddCycle appends a voting cycle.
func (s *Service) AddCycle(cycle model.Cycle) {
	s.mu.Lock()
	s.state.Cycles = append(s.state.Cycles, cycle)
	s.mu.Unlock()
}

// AddUnspentTxOutput puts the output into the unspent index. Re-adding the
// same output overwrites the existing entry.
func (s *Service) AddUnspentTxOutput(out model.TxOutput) {
	s.mu.Lock()
	s.state.UnspentTxOutputs[out.Key()] = cloneTxOutput(out)
	s.mu.Unlock()
}

// RemoveUnspentTxOutput removes the output from the unspent index. Removing
// an absent key is a no-op.
func (s *Service) RemoveUnspentTxOutput(out model.TxOutput) {
	s.mu.Lock()
	delete(s.state.UnspentTxOutputs, out.Key())
	s.mu.Unlock()
}

// AddIssuance records an accepted issuance. When the caller left Amount
// unset it is derived from the tx's issuance candidate output.
func (s *Service) AddIssuance(issuance model.Issuance) {
	s.mu.Lock()
	if issuance.Amount == 0 {
		for _, out := range s.state.IssuanceCandidateTxOutputs() {
			if out.TxID == issuance.TxID {
				issuance.Amount = out.Value
				break
			}
		}
	}
	s.state.Issuances[issuance.TxID] = issuance
	s.mu.Unlock()
}

// AddNonBsqTxOutput records an issuance candidate that was not accepted in
// voting. Any other output type is a caller bug.
func (s *Service) AddNonBsqTxOutput(out model.TxOutput) error {
	if out.Type != model.IssuanceCandidateOutput {
		return ErrNotIssuanceCandidate
	}
	s.mu.Lock()
	s.state.NonBsqTxOutputs[out.Key()] = cloneTxOutput(out)
	s.mu.Unlock()
	return nil
}

// SetSpentInfo records which input consumed the output.
func (s *Service) SetSpentInfo(key model.TxOutputKey, info model.SpentInfo) {
	s.mu.Lock()
	s.state.SpentInfos[key] = info
	s.mu.Unlock()
}

// ConfiscateBond flags all bonded outputs matching the bond hash as
// confiscated.
func (s *Service) ConfiscateBond(confiscateBond model.ConfiscateBond) {
	s.mu.Lock()
	s.state.ConfiscateBond(confiscateBond)
	s.mu.Unlock()
}

// SetNewParam schedules a parameter override for the next voting cycle.
func (s *Service) SetNewParam(blockHeight int32, param model.Param, value int64) {
	s.mu.Lock()
	s.state.SetNewParam(blockHeight, param, value)
	s.mu.Unlock()
}

///////////////////////////////////////////////////////////////////////////
// Genesis
///////////////////////////////////////////////////////////////////////////

// GenesisTxID returns the fixed genesis transaction id.
func (s *Service) GenesisTxID() string { return s.genesis.TxID }

// GenesisBlockHeight returns the fixed genesis block height.
func (s *Service) GenesisBlockHeight() int32 { return s.genesis.BlockHeight }

// GenesisTotalSupply returns the fixed initial token supply.
func (s *Service) GenesisTotalSupply() int64 { return s.genesis.TotalSupply }

// GenesisTx returns the genesis transaction once it has been parsed.
func (s *Service) GenesisTx() (model.Tx, bool) { return s.Tx(s.genesis.TxID) }

///////////////////////////////////////////////////////////////////////////
// Queries
///////////////////////////////////////////////////////////////////////////

// ChainHeight returns the current chain height.
func (s *Service) ChainHeight() int32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ChainHeight
}

// LastBlock returns the most recently added block.
func (s *Service) LastBlock() (model.Block, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.LastBlock()
}

// BlockHeightOfLastBlock returns the height of the last block, 0 when empty.
func (s *Service) BlockHeightOfLastBlock() int32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.BlockHeightOfLastBlock()
}

// BlockAtHeight returns the block at the given height.
func (s *Service) BlockAtHeight(height int32) (model.Block, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.BlockAtHeight(height)
}

// ContainsBlockHash reports whether a block with the given hash is known.
func (s *Service) ContainsBlockHash(hash string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ContainsBlockHash(hash)
}

// BlockTime returns the timestamp of the block at height.
func (s *Service) BlockTime(height int32) time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.BlockTime(height)
}

// BlocksFromHeight returns all blocks at or above fromHeight.
func (s *Service) BlocksFromHeight(fromHeight int32) []model.Block {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.BlocksFromHeight(fromHeight)
}

// Tx returns the transaction with the given id.
func (s *Service) Tx(txID string) (model.Tx, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Tx(txID)
}

// ContainsTx reports whether the transaction is known.
func (s *Service) ContainsTx(txID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ContainsTx(txID)
}

// TxType returns the classified type of the transaction.
func (s *Service) TxType(txID string) (model.TxType, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.TxType(txID)
}

// BurntFee returns the burnt fee of the transaction, 0 when unknown.
func (s *Service) BurntFee(txID string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.BurntFee(txID)
}

// HasTxBurntFee reports whether the transaction burnt a positive fee.
func (s *Service) HasTxBurntFee(txID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.HasTxBurntFee(txID)
}

// TotalBurntFee sums the burnt fees of all known transactions.
func (s *Service) TotalBurntFee() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.TotalBurntFee()
}

// BurntFeeTxs returns all transactions that burnt a fee.
func (s *Service) BurntFeeTxs() []model.Tx {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.BurntFeeTxs()
}

// ConnectedTxOutput resolves the output a tx input spends.
func (s *Service) ConnectedTxOutput(input model.TxInput) (model.TxOutput, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ConnectedTxOutput(input)
}

// ExistsTxOutput reports whether any known transaction produced the output.
func (s *Service) ExistsTxOutput(key model.TxOutputKey) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ExistsTxOutput(key)
}

// TxOutputsByType returns all outputs of the given type.
func (s *Service) TxOutputsByType(outputType model.TxOutputType) []model.TxOutput {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.TxOutputsByType(outputType)
}

// IsUnspent reports whether the output is in the unspent index.
func (s *Service) IsUnspent(key model.TxOutputKey) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsUnspent(key)
}

// UnspentTxOutput returns the output from the unspent index.
func (s *Service) UnspentTxOutput(key model.TxOutputKey) (model.TxOutput, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.UnspentTxOutput(key)
}

// IsBsqTxOutputType reports whether the output counts as a token output.
func (s *Service) IsBsqTxOutputType(out model.TxOutput) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsBsqTxOutputType(out)
}

// IsTxOutputSpendable reports whether the output can be spent as BSQ now.
func (s *Service) IsTxOutputSpendable(key model.TxOutputKey) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsTxOutputSpendable(key)
}

// UnspentBlindVoteStakeTxOutputs returns the unspent blind-vote stakes.
func (s *Service) UnspentBlindVoteStakeTxOutputs() []model.TxOutput {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.UnspentBlindVoteStakeTxOutputs()
}

// VoteRevealOpReturnTxOutputs returns all vote-reveal OP_RETURN outputs.
func (s *Service) VoteRevealOpReturnTxOutputs() []model.TxOutput {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.VoteRevealOpReturnTxOutputs()
}

// IssuanceCandidateTxOutputs returns all issuance candidate outputs.
func (s *Service) IssuanceCandidateTxOutputs() []model.TxOutput {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IssuanceCandidateTxOutputs()
}

// Issuance returns the issuance record for the transaction.
func (s *Service) Issuance(txID string) (model.Issuance, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Issuance(txID)
}

// IsIssuanceTx reports whether the transaction is an accepted issuance.
func (s *Service) IsIssuanceTx(txID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsIssuanceTx(txID)
}

// IssuanceBlockHeight returns the height the issuance was accepted at.
func (s *Service) IssuanceBlockHeight(txID string) int32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IssuanceBlockHeight(txID)
}

// TotalIssuedAmount sums the accepted issuance candidate output values.
func (s *Service) TotalIssuedAmount() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.TotalIssuedAmount()
}

// BtcTxOutput looks up a non-token output.
func (s *Service) BtcTxOutput(key model.TxOutputKey) (model.TxOutput, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.BtcTxOutput(key)
}

// SpentInfo returns the spend back-reference of the output.
func (s *Service) SpentInfo(key model.TxOutputKey) (model.SpentInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.SpentInfo(key)
}

// IsConfiscated reports whether the output has been confiscated.
func (s *Service) IsConfiscated(key model.TxOutputKey) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsConfiscated(key)
}

///////////////////////////////////////////////////////////////////////////
// Bonding queries
///////////////////////////////////////////////////////////////////////////

// LockTime returns the bond lock time of the transaction.
func (s *Service) LockTime(txID string) (int32, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.LockTime(txID)
}

// UnlockBlockHeight returns the recorded unlock height of the transaction.
func (s *Service) UnlockBlockHeight(txID string) (int32, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.UnlockBlockHeight(txID)
}

// IsLockTimeOverForUnlockTxOutput evaluates the lock-time consensus
// predicate for an UNLOCK output.
func (s *Service) IsLockTimeOverForUnlockTxOutput(out model.TxOutput) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsLockTimeOverForUnlockTxOutput(out)
}

// IsUnlockTxOutputAndLockTimeNotOver reports whether the output is an
// UNLOCK output still inside its lock time.
func (s *Service) IsUnlockTxOutputAndLockTimeNotOver(out model.TxOutput) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsUnlockTxOutputAndLockTimeNotOver(out)
}

// IsLockupOutput reports whether the unspent output under key is a LOCKUP.
func (s *Service) IsLockupOutput(key model.TxOutputKey) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsLockupOutput(key)
}

// IsUnlockingOutput reports whether the unspent output under key is an
// UNLOCK output inside its lock time.
func (s *Service) IsUnlockingOutput(key model.TxOutputKey) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsUnlockingOutput(key)
}

// LockupTxOutput returns the first LOCKUP output of the transaction.
func (s *Service) LockupTxOutput(txID string) (model.TxOutput, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.LockupTxOutput(txID)
}

// LockupHash recovers the bond identity hash of a bonded output.
func (s *Service) LockupHash(out model.TxOutput) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.LockupHash(out)
}

// TotalAmountOfLockupTxOutputs sums all LOCKUP outputs.
func (s *Service) TotalAmountOfLockupTxOutputs() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.TotalAmountOfLockupTxOutputs()
}

// TotalLockupAmount is the currently locked amount.
func (s *Service) TotalLockupAmount() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.TotalLockupAmount()
}

// UnspentUnlockingTxOutputs returns the unspent, still-unlocking outputs.
func (s *Service) UnspentUnlockingTxOutputs() []model.TxOutput {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.UnspentUnlockingTxOutputs()
}

// TotalAmountOfUnlockingTxOutputs sums the unspent unlocking outputs.
func (s *Service) TotalAmountOfUnlockingTxOutputs() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.TotalAmountOfUnlockingTxOutputs()
}

// UnlockedTxOutputs returns the UNLOCK outputs whose lock time elapsed.
func (s *Service) UnlockedTxOutputs() []model.TxOutput {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.UnlockedTxOutputs()
}

// TotalAmountOfUnlockedTxOutputs sums the unlocked outputs.
func (s *Service) TotalAmountOfUnlockedTxOutputs() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.TotalAmountOfUnlockedTxOutputs()
}

///////////////////////////////////////////////////////////////////////////
// Cycles and params
///////////////////////////////////////////////////////////////////////////

// Cycles returns a copy of the ordered cycle list.
func (s *Service) Cycles() []model.Cycle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Cycle(nil), s.state.Cycles...)
}

// CurrentCycle returns the last known voting cycle.
func (s *Service) CurrentCycle() (model.Cycle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.CurrentCycle()
}

// Cycle returns the cycle containing the given height.
func (s *Service) Cycle(height int32) (model.Cycle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Cycle(height)
}

// StartHeightOfNextCycle returns the first height of the following cycle.
func (s *Service) StartHeightOfNextCycle(blockHeight int32) (int32, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.StartHeightOfNextCycle(blockHeight)
}

// ParamValue returns the value of param effective at blockHeight.
func (s *Service) ParamValue(param model.Param, blockHeight int32) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ParamValue(param, blockHeight)
}
